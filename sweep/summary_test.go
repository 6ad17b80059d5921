package sweep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcdannyboy/greekstep/sweep"
)

func TestSummarizePicksGridMinimum(t *testing.T) {
	records := []sweep.Record{
		{HRel: 1e-10, ErrDeltaFD: 3, ErrDeltaCS: 0.3, ErrGammaFD: 5, ErrGammaCSReal: 2, ErrGammaCS45: 0.9},
		{HRel: 1e-8, ErrDeltaFD: 1, ErrDeltaCS: 0.1, ErrGammaFD: 4, ErrGammaCSReal: 3, ErrGammaCS45: 0.2},
		{HRel: 1e-6, ErrDeltaFD: 2, ErrDeltaCS: 0.2, ErrGammaFD: 3, ErrGammaCSReal: 1, ErrGammaCS45: 0.4},
	}

	s := sweep.Summarize(atmScenario, records)

	assert.Equal(t, atmScenario.Name, s.Scenario)
	assert.Equal(t, 1.0, s.DeltaFD.MinError)
	assert.Equal(t, 1e-8, s.DeltaFD.AtHRel)
	assert.Equal(t, 0.1, s.DeltaCS.MinError)
	assert.Equal(t, 3.0, s.GammaFD.MinError)
	assert.Equal(t, 1e-6, s.GammaFD.AtHRel)
	assert.Equal(t, 1.0, s.GammaCSReal.MinError)
	assert.Equal(t, 0.2, s.GammaCS45.MinError)
	assert.Equal(t, 1e-8, s.GammaCS45.AtHRel)
}

func TestSummarizeRealSweepOrdering(t *testing.T) {
	// On a real sweep the cancellation-free methods dominate: complex-step
	// Delta beats finite differences outright, and the 45-degree Gamma
	// beats both competing Gamma estimators.
	records := sweep.Run(atmScenario, nil)
	s := sweep.Summarize(atmScenario, records)

	require.Equal(t, records[0].Analytic, s.Analytic)

	assert.LessOrEqual(t, s.DeltaCS.MinError, s.DeltaFD.MinError)
	assert.LessOrEqual(t, s.GammaCS45.MinError, s.GammaFD.MinError)
	assert.LessOrEqual(t, s.GammaCS45.MinError, s.GammaCSReal.MinError)

	for _, m := range []sweep.MethodSummary{s.DeltaFD, s.DeltaCS, s.GammaFD, s.GammaCSReal, s.GammaCS45} {
		assert.GreaterOrEqual(t, m.AtHRel, 1e-16)
		assert.LessOrEqual(t, m.AtHRel, 1e-4)
	}
}
