package greeks

import "github.com/bcdannyboy/greekstep/bsm"

// FiniteDifferenceGreeks holds Delta and Gamma estimated from forward
// finite differences with step h.
type FiniteDifferenceGreeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
}

// FiniteDifference estimates Delta and Gamma from a forward stencil at
// S, S+h, S+2h:
//
//	Delta = (C(S+h) - C(S)) / h
//	Gamma = (C(S+2h) - 2·C(S+h) + C(S)) / h²
//
// There is no guard for steps small enough that cancellation destroys the
// result. The step sweep exists precisely to expose that error floor.
func FiniteDifference(p bsm.Params, h float64) FiniteDifferenceGreeks {
	c0 := bsm.Price(p)

	shifted := p
	shifted.S = p.S + h
	c1 := bsm.Price(shifted)

	shifted.S = p.S + 2*h
	c2 := bsm.Price(shifted)

	return FiniteDifferenceGreeks{
		Delta: (c1 - c0) / h,
		Gamma: (c2 - 2*c1 + c0) / (h * h),
	}
}
