package engine

import (
	"sync"

	"github.com/piwi3910/BoxStack/internal/model"
)

// SolveParallel runs the annealing pipeline several times with derived seeds
// and returns the tallest result. Each run keeps its current/best pair
// private to its own goroutine; only the final best-of-all selection is
// synchronized. Ties keep the lowest run index so results are stable for a
// fixed base seed.
func SolveParallel(settings model.SolveSettings, boxes []model.Box, runs int) (model.Stack, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if len(boxes) == 0 {
		return nil, ErrNoBoxes
	}
	if runs < 1 {
		runs = 1
	}

	results := make([]model.Stack, runs)
	errs := make([]error, runs)

	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func(run int) {
			defer wg.Done()
			s := settings
			if s.Seed != 0 {
				s.Seed += int64(run)
			}
			results[run], errs[run] = New(s).Solve(boxes)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Height() > best.Height() {
			best = r
		}
	}
	return best, nil
}
