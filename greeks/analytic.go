package greeks

import (
	"math"

	"github.com/bcdannyboy/greekstep/bsm"
)

const (
	// Below this σ√T the model is at its expiry/zero-vol limit and the
	// Greeks take their discontinuous values.
	degenerateSigmaT = 1e-15

	// Within this relative distance of the money, ln(F/K) goes through
	// log1p to avoid cancellation.
	nearMoneyThreshold = 1e-12
)

// AnalyticGreeks holds the closed-form Delta and Gamma of a European
// call. This is the ground truth the approximate estimators are measured
// against, so it has to be exact to machine precision.
type AnalyticGreeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
}

// Analytic computes Delta and Gamma directly from the model parameters.
//
// The σ√T → 0 limit is a genuine discontinuity of the model: Delta jumps
// between 0 and e^{-qT} across the money and Gamma collapses to zero. It
// is reproduced exactly as a guarded branch, never smoothed.
func Analytic(p bsm.Params) AnalyticGreeks {
	f := p.S * math.Exp((p.R-p.Q)*p.T)
	sigmaT := p.Sigma * math.Sqrt(math.Max(p.T, 0))

	if sigmaT < degenerateSigmaT {
		g := AnalyticGreeks{}
		if f > p.K {
			g.Delta = math.Exp(-p.Q * p.T)
		}
		return g
	}

	x := (f - p.K) / p.K
	lnFK := math.Log(f / p.K)
	if math.Abs(x) <= nearMoneyThreshold {
		lnFK = math.Log1p(x)
	}

	d1 := (lnFK + 0.5*p.Sigma*p.Sigma*p.T) / sigmaT

	// φ(d1) through its logarithm, so large |d1| degrades gracefully
	// instead of underflowing inside the product.
	logPDF := -0.5*d1*d1 - 0.5*math.Log(2*math.Pi)

	return AnalyticGreeks{
		Delta: math.Exp(-p.Q*p.T) * bsm.NormCDF(d1),
		Gamma: math.Exp(-p.Q*p.T) * math.Exp(logPDF) / (p.S * sigmaT),
	}
}
