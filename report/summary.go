package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/joeycumines/go-apr/lang"
	"github.com/joeycumines/go-apr/localize"
)

// Summary holds everything report_summary.txt needs, in the exact field
// order spec.md §6 specifies: timestamp, benchmark name, function name,
// success/failure flag, achieved vs. maximum fitness, generations run and
// (on success) the discovery generation, the weighted-line table, the
// diff, the original source with 1-based line numbers, and (when
// applicable) the repaired source.
type Summary struct {
	Timestamp           time.Time
	BenchmarkName       string
	FunctionName        string
	Success             bool
	FinalFitness        float64
	MaxFitness          float64
	GenerationsRun      int
	DiscoveryGeneration int // only meaningful when Success
	Weights             []localize.WeightedLine
	Patient             lang.Program
	Repaired            lang.Program // the repaired variant, or the best attempt when !Success
}

// String renders the report in the order described above.
func (s Summary) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "timestamp: %s\n", s.Timestamp.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "benchmark: %s\n", s.BenchmarkName)
	fmt.Fprintf(&b, "function: %s\n", s.FunctionName)
	fmt.Fprintf(&b, "success: %t\n", s.Success)
	fmt.Fprintf(&b, "fitness: %g / %g\n", s.FinalFitness, s.MaxFitness)
	fmt.Fprintf(&b, "generations_run: %d\n", s.GenerationsRun)
	if s.Success {
		fmt.Fprintf(&b, "discovery_generation: %d\n", s.DiscoveryGeneration)
	}

	b.WriteString("\nweighted lines:\n")
	for _, wl := range s.Weights {
		fmt.Fprintf(&b, "  line %d: %.1f\n", wl.Line, wl.Weight)
	}

	if s.Success {
		b.WriteString("\ndiff (patient -> repaired):\n")
	} else {
		b.WriteString("\ndiff (patient -> best attempt):\n")
	}
	b.WriteString(Render(Diff(s.Patient, s.Repaired)))

	b.WriteString("\noriginal source:\n")
	writeNumbered(&b, s.Patient)

	if s.Success {
		b.WriteString("\nrepaired source:\n")
		writeNumbered(&b, s.Repaired)
	}

	return b.String()
}

func writeNumbered(b *strings.Builder, p lang.Program) {
	for i := 0; i < p.Len(); i++ {
		fmt.Fprintf(b, "%4d  %s\n", i+1, p.Line(i))
	}
}
