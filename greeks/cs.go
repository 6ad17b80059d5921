package greeks

import (
	"math"

	"github.com/bcdannyboy/greekstep/bsm"
)

// ComplexStepGreeks holds Delta and two independent Gamma estimates
// obtained from complex-step differentiation with step h.
type ComplexStepGreeks struct {
	Delta     float64 `json:"delta"`
	GammaReal float64 `json:"gamma_real"`
	Gamma45   float64 `json:"gamma_45"`
}

// ComplexStep estimates the Greeks by pricing at complex-shifted spots.
// Per step this costs four complex pricer evaluations plus one real one.
func ComplexStep(p bsm.Params, h float64) ComplexStepGreeks {
	k := complex(p.K, 0)
	r := complex(p.R, 0)
	q := complex(p.Q, 0)
	sigma := complex(p.Sigma, 0)
	tau := complex(p.T, 0)

	// Delta = Im[C(S+ih)] / h. No subtraction of nearly equal reals
	// occurs, so there is no cancellation floor.
	c := bsm.PriceCall(complex(p.S, h), k, r, q, sigma, tau)
	delta := imag(c) / h

	// Gamma, real-part method: Γ = -2·(Re[C(S+ih)] - C(S)) / h².
	// One real subtraction survives, leaving a reduced cancellation error.
	c0 := bsm.Price(p)
	gammaReal := -2 * (real(c) - c0) / (h * h)

	// Gamma, 45-degree method: shifts along ω = e^{iπ/4} and its negation,
	// Γ = Im[C(S+hω) + C(S-hω)] / h². Summing imaginary parts leaves no
	// comparable-magnitude subtraction at all.
	omega := complex(1/math.Sqrt2, 1/math.Sqrt2)
	cPlus := bsm.PriceCall(complex(p.S, 0)+complex(h, 0)*omega, k, r, q, sigma, tau)
	cMinus := bsm.PriceCall(complex(p.S, 0)-complex(h, 0)*omega, k, r, q, sigma, tau)
	gamma45 := imag(cPlus+cMinus) / (h * h)

	return ComplexStepGreeks{
		Delta:     delta,
		GammaReal: gammaReal,
		Gamma45:   gamma45,
	}
}
