package evolve

import (
	"sort"

	"github.com/joeycumines/go-apr/battery"
	"github.com/joeycumines/go-apr/harness"
	"github.com/joeycumines/go-apr/lang"
	"github.com/joeycumines/go-apr/localize"
	"github.com/joeycumines/go-apr/mutate"
)

// Scored pairs a Variant with its fitness.
type Scored struct {
	Variant lang.Program
	Fitness float64
}

// Result is the driver's terminal outcome — success or exhaustion, both
// reported the same shape per spec.md §4.7 ("Outputs on success: ... On
// failure: the best-scoring variant observed and the same report with a
// failure flag").
type Result struct {
	Success             bool
	Best                Scored
	MaxFitness          float64
	GenerationsRun      int
	DiscoveryGeneration int // 1-based; only meaningful when Success
	Weights             []localize.WeightedLine
}

// Driver owns one repair run's population and PRNG stream.
type Driver struct {
	Patient lang.Program
	Battery *battery.Battery
	Config  Config

	harness *harness.Harness
	mutator *mutate.Mutator
	weights []localize.WeightedLine

	crossoverToggle bool
}

// New prepares a Driver: it runs the localizer once against the patient
// (per spec.md §4.4, "the localizer runs once per repair session") and
// constructs the harness and seeded mutator the whole run reuses.
func New(patient lang.Program, b *battery.Battery, cfg Config) *Driver {
	cfg = cfg.normalized()
	h := harness.New(b)
	if cfg.Deadline > 0 {
		h.Deadline = cfg.Deadline
	}
	return &Driver{
		Patient: patient,
		Battery: b,
		Config:  cfg,
		harness: h,
		mutator: mutate.New(cfg.Seed),
		weights: localize.Weights(patient, b),
	}
}

// Run executes the state machine: seed → evaluate → (success | select) →
// repopulate → evaluate … until a variant reaches MaxFitness or the
// generation budget is spent.
func (d *Driver) Run() Result {
	maxFitness := d.Battery.MaxFitness()
	pop := d.seed()

	var best Scored
	for gen := 1; gen <= d.Config.Generations; gen++ {
		scored := d.evaluateAll(pop)
		gen0 := bestOf(scored)
		best = gen0

		if d.Config.Logger != nil {
			d.Config.Logger.Info().
				Int(`generation`, gen).
				Float64(`best_fitness`, gen0.Fitness).
				Float64(`max_fitness`, maxFitness).
				Int(`population`, len(pop)).
				Int(`zero_fitness`, countZero(scored)).
				Log(`generation evaluated`)
		}

		if gen0.Fitness >= maxFitness {
			return Result{
				Success:             true,
				Best:                gen0,
				MaxFitness:          maxFitness,
				GenerationsRun:      gen,
				DiscoveryGeneration: gen,
				Weights:             d.weights,
			}
		}

		if gen == d.Config.Generations {
			break
		}
		survivors := d.selectSurvivors(scored)
		pop = d.repopulate(survivors)
	}

	return Result{
		Success:        false,
		Best:           best,
		MaxFitness:     maxFitness,
		GenerationsRun: d.Config.Generations,
		Weights:        d.weights,
	}
}

// seed builds the initial population: the patient at index 0 (baseline),
// the rest filled by mutating the patient with the standard retry policy.
func (d *Driver) seed() []lang.Program {
	pop := make([]lang.Program, 0, d.Config.Population)
	pop = append(pop, d.Patient.Clone())
	for len(pop) < d.Config.Population {
		v, _ := d.mutator.MutateWithRetry(d.Patient, d.weights, mutateRetries, d.Patient.Clone())
		pop = append(pop, v)
	}
	return pop
}

// evaluateAll scores every member in declaration order.
func (d *Driver) evaluateAll(pop []lang.Program) []Scored {
	out := make([]Scored, len(pop))
	for i, v := range pop {
		out[i] = Scored{Variant: v, Fitness: d.harness.Fitness(v)}
	}
	return out
}

// selectSurvivors sorts by fitness descending (stable, so ties keep
// original population order) and keeps the top survivorCount.
func (d *Driver) selectSurvivors(scored []Scored) []lang.Program {
	ranked := make([]Scored, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Fitness > ranked[j].Fitness })

	k := d.Config.survivorCount()
	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]lang.Program, k)
	for i := 0; i < k; i++ {
		out[i] = ranked[i].Variant
	}
	return out
}

// repopulate fills the population back up to Population, starting from
// survivors and repeatedly drawing a uniform-random survivor to mutate
// (or, with crossover enabled, alternating with a crossover of two
// uniform-random survivors).
func (d *Driver) repopulate(survivors []lang.Program) []lang.Program {
	pop := make([]lang.Program, len(survivors))
	copy(pop, survivors)

	rng := d.mutator.Rand()
	for len(pop) < d.Config.Population {
		if d.Config.CrossoverEnabled && d.crossoverToggle && len(survivors) > 1 {
			a := survivors[rng.Intn(len(survivors))]
			b := survivors[rng.Intn(len(survivors))]
			childA, childB, ok := d.mutator.Crossover(a, b)
			if ok {
				pop = append(pop, childA)
				if len(pop) < d.Config.Population {
					pop = append(pop, childB)
				}
				d.crossoverToggle = !d.crossoverToggle
				continue
			}
			// Crossover failed even after its internal pivot retries;
			// fall through to single-parent mutation this round.
		}
		parent := survivors[rng.Intn(len(survivors))]
		v, _ := d.mutator.MutateWithRetry(parent, d.weights, mutateRetries, d.Patient.Clone())
		pop = append(pop, v)
		d.crossoverToggle = !d.crossoverToggle
	}
	return pop
}

// countZero counts variants that scored no credit at all — the aggregate a
// generation log reports in place of per-candidate fault logging.
func countZero(scored []Scored) int {
	n := 0
	for _, s := range scored {
		if s.Fitness == 0 {
			n++
		}
	}
	return n
}

// bestOf returns the highest-fitness Scored, first occurrence wins ties.
func bestOf(scored []Scored) Scored {
	best := scored[0]
	for _, s := range scored[1:] {
		if s.Fitness > best.Fitness {
			best = s
		}
	}
	return best
}
