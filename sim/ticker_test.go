package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("TickingComponent", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *SerialEngine
		ticker   *MockTicker
		comp     *TickingComponent
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewSerialEngine()
		ticker = NewMockTicker(mockCtrl)
		comp = NewTickingComponent("Comp", engine, 10*Hz, ticker)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should tick until no more progress is made", func() {
		ticker.EXPECT().Tick().Return(true).Times(3)
		ticker.EXPECT().Tick().Return(false)

		comp.TickNow()

		Expect(engine.Run()).To(Succeed())
		Expect(engine.CurrentTime()).To(BeNumerically("~", 0.3, 1e-9))
	})

	It("should not schedule the same tick twice", func() {
		ticker.EXPECT().Tick().Return(false)

		comp.TickNow()
		comp.TickNow()

		Expect(engine.Run()).To(Succeed())
	})
})
