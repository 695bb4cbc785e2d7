package reactor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nlebedev/sfrcalc/internal/cell"
	"github.com/nlebedev/sfrcalc/internal/reactor"
	"github.com/nlebedev/sfrcalc/internal/xs"
)

var _ = Describe("Reference core", func() {
	var core reactor.Core

	BeforeEach(func() {
		core = reactor.Reference()
	})

	It("reproduces the reference design point at x=0.798", func() {
		k, err := core.KEff(0.798)
		Expect(err).NotTo(HaveOccurred())
		// Design target band for the reference calculation.
		Expect(k).To(BeNumerically("~", 1.035, 0.005))
	})

	It("is subcritical on pure fertile fuel and supercritical on pure fissile", func() {
		k0, err := core.KEff(0)
		Expect(err).NotTo(HaveOccurred())
		k1, err := core.KEff(1)
		Expect(err).NotTo(HaveOccurred())

		Expect(k0).To(BeNumerically("<", 1))
		Expect(k1).To(BeNumerically(">", 1))
		Expect(k0).To(BeNumerically("~", 0.19467006853687255, 1e-9))
		Expect(k1).To(BeNumerically("~", 1.1495477558858243, 1e-9))
	})

	It("increases monotonically with enrichment", func() {
		prev := -1.0
		for _, x := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1.0} {
			k, err := core.KEff(x)
			Expect(err).NotTo(HaveOccurred())
			Expect(k).To(BeNumerically(">", prev), "k_eff not increasing at x=%g", x)
			prev = k
		}
	})

	It("returns a strictly positive flux spectrum", func() {
		sol, err := core.Solve(0.798)
		Expect(err).NotTo(HaveOccurred())
		for g := 0; g < xs.Groups; g++ {
			Expect(sol.Flux[g]).To(BeNumerically(">", 0))
		}
		Expect(sol.Buckling).To(BeNumerically("~", 6.261116145614458e-3, 1e-15))
	})

	It("rejects out-of-range enrichment at the boundary", func() {
		_, err := core.KEff(1.5)
		Expect(err).To(MatchError(cell.ErrEnrichmentRange))
	})

	It("evaluates independently of prior calls", func() {
		k1, err := core.KEff(0.798)
		Expect(err).NotTo(HaveOccurred())

		// Interleave evaluations at other points and on perturbed copies.
		_, err = core.KEff(0.2)
		Expect(err).NotTo(HaveOccurred())
		perturbed := core.Geometry
		perturbed.CoreDiameter += 3
		_, err = core.WithGeometry(perturbed).KEff(0.798)
		Expect(err).NotTo(HaveOccurred())

		k2, err := core.KEff(0.798)
		Expect(err).NotTo(HaveOccurred())
		Expect(k2).To(Equal(k1))
	})
})
