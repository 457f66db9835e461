// Package apr wires the core subsystems (lang, syntax, sandbox, coverage,
// localize, mutate, battery, harness, evolve, report, benchmark) behind the
// control surface spec.md §6 names: Run(benchmark_dir, generations,
// population, seed?).
package apr

import (
	"time"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"

	"github.com/joeycumines/go-apr/benchmark"
	"github.com/joeycumines/go-apr/evolve"
	"github.com/joeycumines/go-apr/lang"
	"github.com/joeycumines/go-apr/localize"
	"github.com/joeycumines/go-apr/report"
)

// Result is Run's return value: spec.md §6's
// {success, final_fitness, max_fitness, generations_run,
// discovery_generation?, diff, best_variant}.
type Result struct {
	Success             bool
	FinalFitness        float64
	MaxFitness          float64
	GenerationsRun      int
	DiscoveryGeneration int // only meaningful when Success
	Diff                []report.DiffLine
	BestVariant         lang.Program
	Weights             []localize.WeightedLine
}

// NewLogger builds the default stderr JSON logger used when a caller (the
// CLI) doesn't supply its own. Tests and embedders are free to construct
// their own *logiface.Logger[logiface.Event] and pass it to Run instead.
func NewLogger() *logiface.Logger[logiface.Event] {
	return stumpy.L.New(stumpy.L.WithStumpy()).Logger()
}

// Run loads the benchmark at dir, runs the generational driver to
// completion, writes repaired_solution.js/best_attempt.js and
// report_summary.txt, and returns the outcome. Errors returned here are
// always xgxerror values classified by report.ModeOf into one of the three
// control-surface failure modes; a failed repair is NOT an error — it is a
// successful run with Result.Success == false.
func Run(dir string, cfg evolve.Config, logger *logiface.Logger[logiface.Event]) (Result, error) {
	if logger == nil {
		logger = NewLogger()
	}
	cfg.Logger = logger

	bm, err := benchmark.Load(dir)
	if err != nil {
		logger.Err().Err(err).Str(`dir`, dir).Log(`benchmark load failed`)
		return Result{}, err
	}

	logger.Debug().Str(`benchmark`, bm.Name).Str(`function`, bm.Battery.FunctionName).Log(`run started`)

	driver := evolve.New(bm.Patient, bm.Battery, cfg)
	outcome := driver.Run()

	result := Result{
		Success:             outcome.Success,
		FinalFitness:        outcome.Best.Fitness,
		MaxFitness:          outcome.MaxFitness,
		GenerationsRun:      outcome.GenerationsRun,
		DiscoveryGeneration: outcome.DiscoveryGeneration,
		BestVariant:         outcome.Best.Variant,
		Weights:             outcome.Weights,
	}

	if outcome.Success {
		result.Diff = report.Diff(bm.Patient, outcome.Best.Variant)
		if err := benchmark.WriteRepaired(bm.Dir, outcome.Best.Variant); err != nil {
			logger.Err().Err(err).Log(`writing repaired_solution.js failed`)
		}
	} else if err := benchmark.WriteBestAttempt(bm.Dir, outcome.Best.Variant); err != nil {
		logger.Err().Err(err).Log(`writing best_attempt.js failed`)
	}

	summary := report.Summary{
		Timestamp:           time.Now(),
		BenchmarkName:       bm.Name,
		FunctionName:        bm.Battery.FunctionName,
		Success:             outcome.Success,
		FinalFitness:        outcome.Best.Fitness,
		MaxFitness:          outcome.MaxFitness,
		GenerationsRun:      outcome.GenerationsRun,
		DiscoveryGeneration: outcome.DiscoveryGeneration,
		Weights:             outcome.Weights,
		Patient:             bm.Patient,
		Repaired:            outcome.Best.Variant,
	}
	if err := benchmark.WriteSummary(bm.Dir, summary.String()); err != nil {
		logger.Err().Err(err).Log(`writing report_summary.txt failed`)
	}

	if outcome.Success {
		logger.Info().Float64(`fitness`, result.FinalFitness).Int(`generation`, result.DiscoveryGeneration).Log(`repair found`)
	} else {
		logger.Info().Float64(`fitness`, result.FinalFitness).Float64(`max_fitness`, result.MaxFitness).Log(`repair not found`)
	}

	return result, nil
}
