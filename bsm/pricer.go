package bsm

import (
	"math"
	"math/cmplx"
)

// Params holds the Black-Scholes model inputs for one evaluation.
// Callers construct valid parameters: S > 0, K > 0, T >= 0, Sigma >= 0.
// They are not re-validated here.
type Params struct {
	S     float64 `json:"s"`     // spot
	K     float64 `json:"k"`     // strike
	R     float64 `json:"r"`     // risk-free rate
	Q     float64 `json:"q"`     // dividend yield
	Sigma float64 `json:"sigma"` // volatility
	T     float64 `json:"t"`     // maturity in years
}

// Scalar is the numeric field the pricer is generic over. The complex
// instantiation is what carries complex-step perturbations through the
// whole pricing formula.
type Scalar interface {
	float64 | complex128
}

func sExp[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float64:
		return any(math.Exp(v)).(T)
	case complex128:
		return any(cmplx.Exp(v)).(T)
	}
	panic("bsm: unsupported scalar type")
}

func sLog[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float64:
		return any(math.Log(v)).(T)
	case complex128:
		return any(cmplx.Log(v)).(T)
	}
	panic("bsm: unsupported scalar type")
}

func sSqrt[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float64:
		return any(math.Sqrt(v)).(T)
	case complex128:
		return any(cmplx.Sqrt(v)).(T)
	}
	panic("bsm: unsupported scalar type")
}

// sNormCDF dispatches Φ on the scalar type: the real CDF for float64, the
// first-order complex extension for complex128.
func sNormCDF[T Scalar](z T) T {
	switch v := any(z).(type) {
	case float64:
		return any(NormCDF(v)).(T)
	case complex128:
		return any(NormCDFComplex(v)).(T)
	}
	panic("bsm: unsupported scalar type")
}

// PriceCall prices a European call,
//
//	C = e^{-rT}·(F·Φ(d1) - K·Φ(d2)),  F = S·e^{(r-q)T}
//
// with every operation performed in T.
func PriceCall[T Scalar](s, k, r, q, sigma, tau T) T {
	df := sExp(-r * tau)
	f := s * sExp((r-q)*tau)
	sigmaT := sigma * sSqrt(tau)

	d1 := (sLog(f/k) + T(0.5)*sigma*sigma*tau) / sigmaT
	d2 := d1 - sigmaT

	return df * (f*sNormCDF(d1) - k*sNormCDF(d2))
}

// Price is the real-valued entry point.
func Price(p Params) float64 {
	return PriceCall(p.S, p.K, p.R, p.Q, p.Sigma, p.T)
}
