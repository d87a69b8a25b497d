// Package engine implements the stack optimization pipeline: orientation
// expansion, a reuse-tolerant dynamic-programming seeder, single-use
// pruning, and simulated-annealing refinement.
package engine

import (
	"errors"
	"math/rand"
	"time"

	"github.com/piwi3910/BoxStack/internal/model"
)

// ErrNoBoxes is returned when there are no boxes to stack.
var ErrNoBoxes = errors.New("no boxes to stack")

// Solver runs the seed-construction + annealing pipeline.
type Solver struct {
	Settings model.SolveSettings
	rng      *rand.Rand
}

// New creates a Solver. A zero Seed in the settings seeds the random source
// from the clock; any other value gives reproducible runs.
func New(settings model.SolveSettings) *Solver {
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Solver{
		Settings: settings,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Solve computes the tallest stack it can find for the given boxes.
// Configuration and empty-input errors are reported before any optimization
// work begins.
func (s *Solver) Solve(boxes []model.Box) (model.Stack, error) {
	if err := s.Settings.Validate(); err != nil {
		return nil, err
	}
	if len(boxes) == 0 {
		return nil, ErrNoBoxes
	}

	pool := ExpandOrientations(boxes)
	seed := buildSeed(pool)

	ann := newAnnealer(s.Settings, pool, s.rng)
	return ann.refine(seed), nil
}

// SeedStack exposes the pre-annealing seed (DP chain pruned to single use)
// for diagnostics and comparison output. The seed is repaired so the heights
// reported to users always describe a buildable stack.
func (s *Solver) SeedStack(boxes []model.Box) (model.Stack, error) {
	if len(boxes) == 0 {
		return nil, ErrNoBoxes
	}
	return repairFrom(buildSeed(ExpandOrientations(boxes)), 1), nil
}
