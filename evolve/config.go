// Package evolve implements the Generational Driver: the state machine that
// seeds, evaluates, selects, and repopulates a variant pool until a perfect
// score is reached or the generation budget is exhausted.
package evolve

import (
	"time"

	"github.com/joeycumines/logiface"
)

// mutateRetries bounds how many times the engine retries a failed mutation
// before falling back to a clone of the patient, both at seed time and
// during repopulation.
const mutateRetries = 10

// Config controls one repair run. Zero-value fields fall back to the
// defaults DefaultConfig documents.
type Config struct {
	// Generations is G, the generation budget. Default 50.
	Generations int
	// Population is N, the fixed population size. Default 40.
	Population int
	// Seed drives the deterministic PRNG backing mutation and selection.
	Seed int64
	// SurvivorRatio is the fraction of the population kept at selection.
	// Default 0.5.
	SurvivorRatio float64
	// CrossoverEnabled switches repopulation from mutation-only to
	// alternating crossover-of-two-survivors and single-parent mutation.
	// Off by default — the baseline specification is mutation-only.
	CrossoverEnabled bool
	// Deadline is the per-invocation wall-clock cap passed to the harness.
	// Zero uses sandbox.DefaultDeadline.
	Deadline time.Duration
	// Logger receives one Info event per generation (best fitness so far,
	// population size, zero-fitness count). Nil disables per-generation
	// logging.
	Logger *logiface.Logger[logiface.Event]
}

// DefaultConfig returns the driver's baseline configuration.
func DefaultConfig() Config {
	return Config{
		Generations:   50,
		Population:    40,
		SurvivorRatio: 0.5,
	}
}

// normalized fills in zero-valued fields with their defaults without
// mutating the caller's Config.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.Generations > 0 {
		d.Generations = c.Generations
	}
	if c.Population > 0 {
		d.Population = c.Population
	}
	if c.SurvivorRatio > 0 {
		d.SurvivorRatio = c.SurvivorRatio
	}
	d.Seed = c.Seed
	d.CrossoverEnabled = c.CrossoverEnabled
	d.Deadline = c.Deadline
	d.Logger = c.Logger
	return d
}

// survivorCount returns ⌊N · SurvivorRatio⌋, at least 1 so selection never
// empties the population.
func (c Config) survivorCount() int {
	n := int(float64(c.Population) * c.SurvivorRatio)
	if n < 1 {
		n = 1
	}
	if n > c.Population {
		n = c.Population
	}
	return n
}
