package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"github.com/shirou/gopsutil/cpu"
	mpb "github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
	"github.com/xhhuango/json"

	"github.com/bcdannyboy/greekstep/bsm"
	"github.com/bcdannyboy/greekstep/sweep"
)

const summaryFile = "greeks_summary.json"

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment defaults")
	}

	outDir := os.Getenv("GREEKSTEP_OUTPUT")
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalf("Error creating output directory %s: %s", outDir, err.Error())
	}

	scenarios := []sweep.Scenario{
		{
			Name:   "Scenario 1 (ATM reference)",
			File:   "bs_fd_vs_complex_scenario1.csv",
			Params: bsm.Params{S: 100.0, K: 100.0, R: 0.0, Q: 0.0, Sigma: 0.20, T: 1.0},
		},
		{
			Name:   "Scenario 2 (Near-expiry, low-vol, ATM)",
			File:   "bs_fd_vs_complex_scenario2.csv",
			Params: bsm.Params{S: 100.0, K: 100.0, R: 0.0, Q: 0.0, Sigma: 0.01, T: 1.0 / 365.0},
		},
	}

	numWorkers := len(scenarios)
	if counts, err := cpu.Counts(true); err == nil && counts < numWorkers {
		numWorkers = counts
	}
	fmt.Printf("Running %d scenarios on %d workers\n", len(scenarios), numWorkers)

	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(len(scenarios)*sweep.GridSize()),
		mpb.PrependDecorators(
			decor.Name("Sweep"),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
		),
	)

	type result struct {
		idx     int
		summary sweep.Summary
	}

	jobs := make(chan int, len(scenarios))
	results := make(chan result, len(scenarios))
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				sc := scenarios[idx]

				// Each sweep walks its grid sequentially and emits
				// records in increasing h_rel order; only whole
				// scenarios run concurrently.
				records := sweep.Run(sc, bar.Increment)

				path := filepath.Join(outDir, sc.File)
				if err := sweep.WriteCSV(path, records); err != nil {
					log.Fatalf("Error writing %s: %s", path, err.Error())
				}

				results <- result{idx: idx, summary: sweep.Summarize(sc, records)}
			}
		}()
	}

	for i := range scenarios {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	summaries := make([]sweep.Summary, len(scenarios))
	for res := range results {
		summaries[res.idx] = res.summary
	}
	p.Wait()

	for i, s := range summaries {
		sc := scenarios[i]
		fmt.Printf("\n=== %s ===\n", sc.Name)
		fmt.Printf("S=%.2f, K=%.2f, r=%.4f, q=%.4f, sigma=%.4f, T=%.6f\n",
			sc.Params.S, sc.Params.K, sc.Params.R, sc.Params.Q, sc.Params.Sigma, sc.Params.T)
		fmt.Printf("Analytic Delta = %.15g\n", s.Analytic.Delta)
		fmt.Printf("Analytic Gamma = %.15g\n", s.Analytic.Gamma)
		fmt.Printf("Best Delta error: fd=%.2e (h_rel=%.2e), cs=%.2e (h_rel=%.2e)\n",
			s.DeltaFD.MinError, s.DeltaFD.AtHRel, s.DeltaCS.MinError, s.DeltaCS.AtHRel)
		fmt.Printf("Best Gamma error: fd=%.2e (h_rel=%.2e), cs_real=%.2e (h_rel=%.2e), cs_45=%.2e (h_rel=%.2e)\n",
			s.GammaFD.MinError, s.GammaFD.AtHRel,
			s.GammaCSReal.MinError, s.GammaCSReal.AtHRel,
			s.GammaCS45.MinError, s.GammaCS45.AtHRel)
		fmt.Printf("Results written to %s\n", filepath.Join(outDir, sc.File))
	}

	jsummaries, err := json.Marshal(summaries)
	if err != nil {
		log.Fatalf("Error marshalling summary: %s", err.Error())
	}

	sumPath := filepath.Join(outDir, summaryFile)
	if err := os.WriteFile(sumPath, jsummaries, 0644); err != nil {
		log.Fatalf("Error writing to file %s: %s", sumPath, err.Error())
	}

	fmt.Printf("\nSuccessfully wrote summary for %d scenarios to %s\n", len(summaries), sumPath)
}
