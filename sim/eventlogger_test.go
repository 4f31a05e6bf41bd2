package sim

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("EventLogger", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *SerialEngine
		buf      *bytes.Buffer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewSerialEngine()
		buf = &bytes.Buffer{}
		engine.AcceptHook(NewEventLogger(log.New(buf, "", 0)))
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should log events before they are handled", func() {
		handler := NewMockHandler(mockCtrl)
		evt := NewMockEvent(mockCtrl)

		evt.EXPECT().Time().Return(VTimeInSec(1.5)).AnyTimes()
		evt.EXPECT().Handler().Return(handler).AnyTimes()
		evt.EXPECT().IsSecondary().Return(false).AnyTimes()
		handler.EXPECT().Handle(evt)

		engine.Schedule(evt)

		Expect(engine.Run()).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("1.5"))
		Expect(buf.String()).To(ContainSubstring("MockEvent"))
	})

	It("should name the component that handles the event", func() {
		ticker := NewMockTicker(mockCtrl)
		ticker.EXPECT().Tick().Return(false)

		comp := NewTickingComponent("Swarm", engine, 10*Hz, ticker)
		comp.TickNow()

		Expect(engine.Run()).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("TickEvent"))
		Expect(buf.String()).To(ContainSubstring("Swarm"))
	})
})
