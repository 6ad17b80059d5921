package bsm

import "gonum.org/v1/gonum/stat/distuv"

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// NormCDF is the standard normal cumulative distribution function Φ(x).
func NormCDF(x float64) float64 {
	return stdNormal.CDF(x)
}

// NormPDF is the standard normal density φ(x).
func NormPDF(x float64) float64 {
	return stdNormal.Prob(x)
}

// NormCDFComplex extends Φ to a complex argument via the first-order
// Taylor expansion around the real axis:
//
//	Φ(z_r + i·z_i) = Φ(z_r) + i·z_i·φ(z_r)
//
// Exact to O(z_i²), which is what makes complex-step differentiation
// valid through a non-elementary special function. The real NormCDF must
// never be applied to a complex argument directly; this is the only
// complex entry point.
func NormCDFComplex(z complex128) complex128 {
	zr, zi := real(z), imag(z)
	return complex(NormCDF(zr), zi*NormPDF(zr))
}
