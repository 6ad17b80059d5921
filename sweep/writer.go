package sweep

import (
	"encoding/csv"
	"os"
	"strconv"
)

// Header returns the fixed CSV column order, one column per reported
// quantity.
func Header() []string {
	return []string{
		"h_rel", "h",
		"Delta_analytic", "Delta_fd", "Delta_cs", "err_D_fd", "err_D_cs",
		"Gamma_analytic", "Gamma_fd", "Gamma_cs_real", "Gamma_cs_45",
		"err_G_fd", "err_G_cs_real", "err_G_cs_45",
	}
}

// sci formats with 17 significant digits in scientific notation, enough
// for an exact float64 round trip.
func sci(v float64) string {
	return strconv.FormatFloat(v, 'e', 16, 64)
}

// Row flattens one record into the CSV column order.
func Row(rec Record) []string {
	return []string{
		sci(rec.HRel), sci(rec.H),
		sci(rec.Analytic.Delta), sci(rec.FD.Delta), sci(rec.CS.Delta),
		sci(rec.ErrDeltaFD), sci(rec.ErrDeltaCS),
		sci(rec.Analytic.Gamma), sci(rec.FD.Gamma),
		sci(rec.CS.GammaReal), sci(rec.CS.Gamma45),
		sci(rec.ErrGammaFD), sci(rec.ErrGammaCSReal), sci(rec.ErrGammaCS45),
	}
}

// WriteCSV writes one sweep's records to path, header first, rows in the
// order given (increasing h_rel when they come from Run).
func WriteCSV(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(Row(rec)); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}
