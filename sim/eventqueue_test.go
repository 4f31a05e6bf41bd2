package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("EventQueueImpl", func() {
	var (
		mockCtrl *gomock.Controller
		queue    *EventQueueImpl
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		queue = NewEventQueue()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should pop events in time order", func() {
		evt1 := NewMockEvent(mockCtrl)
		evt2 := NewMockEvent(mockCtrl)
		evt3 := NewMockEvent(mockCtrl)

		evt1.EXPECT().Time().Return(VTimeInSec(3.0)).AnyTimes()
		evt2.EXPECT().Time().Return(VTimeInSec(1.0)).AnyTimes()
		evt3.EXPECT().Time().Return(VTimeInSec(2.0)).AnyTimes()

		queue.Push(evt1)
		queue.Push(evt2)
		queue.Push(evt3)

		Expect(queue.Len()).To(Equal(3))
		Expect(queue.Pop()).To(BeIdenticalTo(evt2))
		Expect(queue.Pop()).To(BeIdenticalTo(evt3))
		Expect(queue.Pop()).To(BeIdenticalTo(evt1))
	})

	It("should peek without removing", func() {
		evt := NewMockEvent(mockCtrl)
		evt.EXPECT().Time().Return(VTimeInSec(1.0)).AnyTimes()

		queue.Push(evt)

		Expect(queue.Peek()).To(BeIdenticalTo(evt))
		Expect(queue.Len()).To(Equal(1))
	})
})
