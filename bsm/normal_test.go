package bsm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bcdannyboy/greekstep/bsm"
)

func TestNormCDFKnownValues(t *testing.T) {
	assert.InDelta(t, 0.5, bsm.NormCDF(0), 1e-15)
	assert.InDelta(t, 0.5398278372770290, bsm.NormCDF(0.1), 1e-14)
	assert.InDelta(t, 0.8413447460685429, bsm.NormCDF(1), 1e-14)
	assert.InDelta(t, 0.0227501319481792, bsm.NormCDF(-2), 1e-14)
}

func TestNormCDFMatchesErf(t *testing.T) {
	for _, x := range []float64{-3, -1.5, -0.2, 0, 0.7, 2.4} {
		want := 0.5 * (1 + math.Erf(x/math.Sqrt2))
		assert.InDelta(t, want, bsm.NormCDF(x), 1e-15, "x=%v", x)
	}
}

func TestNormPDFKnownValues(t *testing.T) {
	assert.InDelta(t, 0.3989422804014327, bsm.NormPDF(0), 1e-15)
	assert.InDelta(t, 0.3969525474770118, bsm.NormPDF(0.1), 1e-15)

	// symmetry
	for _, x := range []float64{0.3, 1.1, 2.7} {
		assert.Equal(t, bsm.NormPDF(x), bsm.NormPDF(-x))
	}
}

func TestNormCDFComplexRealAxis(t *testing.T) {
	// A zero imaginary part must reduce to the real CDF exactly.
	for _, x := range []float64{-1.2, 0, 0.1, 2.5} {
		z := bsm.NormCDFComplex(complex(x, 0))
		assert.Equal(t, bsm.NormCDF(x), real(z))
		assert.Zero(t, imag(z))
	}
}

func TestNormCDFComplexFirstOrder(t *testing.T) {
	// Φ(z_r + i·z_i) = Φ(z_r) + i·z_i·φ(z_r): the imaginary part carries
	// the derivative, scaled by the perturbation.
	zr, zi := 0.3, 2e-7
	z := bsm.NormCDFComplex(complex(zr, zi))

	assert.Equal(t, bsm.NormCDF(zr), real(z))
	assert.InEpsilon(t, zi*bsm.NormPDF(zr), imag(z), 1e-15)
}

func TestNormCDFComplexDerivativeRecovery(t *testing.T) {
	// Reading the imaginary part off a purely imaginary perturbation
	// recovers φ exactly, with no dependence on the step size.
	for _, h := range []float64{1e-6, 1e-10, 1e-14} {
		z := bsm.NormCDFComplex(complex(0.8, h))
		assert.InEpsilon(t, bsm.NormPDF(0.8), imag(z)/h, 1e-14, "h=%v", h)
	}
}
