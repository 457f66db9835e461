// Command apr is the CLI front end for the automated program repair engine:
// a thin flag-parsing shell over the apr package's Run control surface.
package main

import (
	"flag"
	"fmt"
	"os"

	apr "github.com/joeycumines/go-apr"
	"github.com/joeycumines/go-apr/evolve"
	"github.com/joeycumines/go-apr/report"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("apr", flag.ContinueOnError)
	generations := fs.Int("generations", 50, "generation budget")
	population := fs.Int("population", 40, "population size")
	seed := fs.Int64("seed", 0, "PRNG seed")
	survivorRatio := fs.Float64("survivor-ratio", 0.5, "fraction of the population kept at selection")
	crossover := fs.Bool("crossover", false, "alternate crossover with mutation during repopulation")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: apr <benchmark_dir>")
		return 2
	}
	dir := fs.Arg(0)

	cfg := evolve.Config{
		Generations:      *generations,
		Population:       *population,
		Seed:             *seed,
		SurvivorRatio:    *survivorRatio,
		CrossoverEnabled: *crossover,
	}

	result, err := apr.Run(dir, cfg, nil)
	if err != nil {
		mode := report.ModeOf(err)
		fmt.Fprintf(os.Stderr, "apr: %v (%s)\n", err, mode)
		return 1
	}

	if result.Success {
		fmt.Printf("repair found: fitness %g/%g at generation %d\n", result.FinalFitness, result.MaxFitness, result.DiscoveryGeneration)
	} else {
		fmt.Printf("no repair found after %d generations: best fitness %g/%g\n", result.GenerationsRun, result.FinalFitness, result.MaxFitness)
	}
	return 0
}
