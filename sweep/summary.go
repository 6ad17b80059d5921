package sweep

import (
	"gonum.org/v1/gonum/floats"

	"github.com/bcdannyboy/greekstep/bsm"
	"github.com/bcdannyboy/greekstep/greeks"
)

// MethodSummary is the smallest error a method achieved across the grid
// and the relative step size attaining it.
type MethodSummary struct {
	MinError float64 `json:"min_error"`
	AtHRel   float64 `json:"at_h_rel"`
}

// Summary condenses one scenario's sweep into the per-method optima.
type Summary struct {
	Scenario    string                `json:"scenario"`
	Params      bsm.Params            `json:"params"`
	Analytic    greeks.AnalyticGreeks `json:"analytic"`
	DeltaFD     MethodSummary         `json:"delta_fd"`
	DeltaCS     MethodSummary         `json:"delta_cs"`
	GammaFD     MethodSummary         `json:"gamma_fd"`
	GammaCSReal MethodSummary         `json:"gamma_cs_real"`
	GammaCS45   MethodSummary         `json:"gamma_cs_45"`
}

func bestOf(records []Record, pick func(Record) float64) MethodSummary {
	errs := make([]float64, len(records))
	for i, rec := range records {
		errs[i] = pick(rec)
	}
	idx := floats.MinIdx(errs)

	return MethodSummary{MinError: errs[idx], AtHRel: records[idx].HRel}
}

// Summarize reduces a sweep to its Summary. records must be non-empty.
func Summarize(sc Scenario, records []Record) Summary {
	return Summary{
		Scenario:    sc.Name,
		Params:      sc.Params,
		Analytic:    records[0].Analytic,
		DeltaFD:     bestOf(records, func(r Record) float64 { return r.ErrDeltaFD }),
		DeltaCS:     bestOf(records, func(r Record) float64 { return r.ErrDeltaCS }),
		GammaFD:     bestOf(records, func(r Record) float64 { return r.ErrGammaFD }),
		GammaCSReal: bestOf(records, func(r Record) float64 { return r.ErrGammaCSReal }),
		GammaCS45:   bestOf(records, func(r Record) float64 { return r.ErrGammaCS45 }),
	}
}
