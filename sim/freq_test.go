package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Freq", func() {
	It("should get period", func() {
		var f = 1 * KHz
		Expect(f.Period()).To(BeNumerically("==", 1e-3))
	})

	It("should get the frequency of a control step duration", func() {
		f := FromPeriodMS(100)
		Expect(f).To(BeNumerically("~", 10.0, 1e-12))
	})

	It("should get the period back in milliseconds", func() {
		f := FromPeriodMS(32)
		Expect(f.PeriodMS()).To(Equal(uint32(32)))
	})

	It("should get this tick", func() {
		var f = 1 * Hz
		Expect(f.ThisTick(1)).To(BeNumerically("~", 1, 1e-12))
	})

	It("should get the next tick", func() {
		var f = 1 * KHz
		Expect(f.NextTick(102.001)).To(BeNumerically("~", 102.002, 1e-9))
	})

	It("should get the next tick, if currTime is not on a tick", func() {
		var f = 1 * KHz
		Expect(f.NextTick(102.0011)).To(BeNumerically("~", 102.002, 1e-9))
	})

	It("should get the n cycles later", func() {
		var f = 1 * KHz
		Expect(f.NCyclesLater(12, 102.001)).To(
			BeNumerically("~", 102.013, 1e-9))
	})

	It("should get the no-earlier-than time, on tick", func() {
		var f = 1 * KHz
		Expect(f.NoEarlierThan(102.00)).To(BeNumerically("~", 102.00, 1e-9))
	})

	It("should get the no-earlier-than time, off tick", func() {
		var f = 1 * KHz
		Expect(f.NoEarlierThan(102.0011)).To(
			BeNumerically("~", 102.002, 1e-9))
	})
})
