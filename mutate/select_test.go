package mutate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouletteWheelFavoursHeavierCandidates(t *testing.T) {
	cands := []target{
		{index: 0, weight: 0.0},
		{index: 1, weight: 1.0},
		{index: 2, weight: 0.1},
	}
	rng := rand.New(rand.NewSource(3))

	counts := map[int]int{}
	for i := 0; i < 500; i++ {
		counts[rouletteWheel(cands, rng)]++
	}

	// Weight-0 candidates are never selectable via the cumulative scan.
	assert.Zero(t, counts[0])
	assert.Greater(t, counts[1], counts[2])
}

func TestRouletteWheelSingleCandidateAlwaysWins(t *testing.T) {
	cands := []target{{index: 7, weight: 1.0}}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		assert.Equal(t, 7, rouletteWheel(cands, rng))
	}
}

func TestUniformSourceStaysWithinCandidateSet(t *testing.T) {
	cands := []target{{index: 2}, {index: 5}, {index: 9}}
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		idx := uniformSource(cands, rng)
		assert.Contains(t, []int{2, 5, 9}, idx)
	}
}
