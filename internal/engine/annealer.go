package engine

import (
	"math"
	"math/rand"

	"github.com/piwi3910/BoxStack/internal/model"
)

// annealer refines a seed stack by simulated annealing over a neighborhood
// of structural stack edits. It owns a private current/best pair; every move
// produces a new stack value so the two never alias.
type annealer struct {
	settings model.SolveSettings
	pool     []model.Orientation
	rng      *rand.Rand
}

func newAnnealer(settings model.SolveSettings, pool []model.Orientation, rng *rand.Rand) *annealer {
	return &annealer{settings: settings, pool: pool, rng: rng}
}

// refine runs the annealing loop and returns the tallest valid stack seen.
// The seed may be geometrically invalid (the pruner does not re-verify
// containment); the working copy is repaired before the first trial so an
// invalid seed never escapes.
func (a *annealer) refine(seed model.Stack) model.Stack {
	current := repairFrom(seed.Clone(), 1)
	best := current.Clone()

	t := a.settings.InitialTemperature
	for t > a.settings.MinTemperature {
		for trial := 0; trial < a.settings.TrialsPerStep; trial++ {
			candidate := a.neighbor(current)
			delta := float64(candidate.Height() - current.Height())

			// Metropolis criterion: always accept improvements, accept
			// regressions with probability exp(delta/t).
			if delta > 0 || a.rng.Float64() < math.Exp(delta/t) {
				current = candidate
				if current.Height() > best.Height() {
					best = current.Clone()
				}
			}
		}
		t = a.cool(t)
	}
	return best
}

// cool applies the configured cooling schedule to the temperature.
func (a *annealer) cool(t float64) float64 {
	switch a.settings.Schedule {
	case model.ScheduleLinear:
		return t - a.settings.CoolingRate
	default:
		return t * (1 - a.settings.CoolingRate/a.settings.InitialTemperature)
	}
}

// Move kinds for the neighborhood.
const (
	moveSwap = iota
	moveRemoveInsert
	moveReplace
	moveRebuild
	moveCount
)

// neighbor produces one candidate stack from current. Moves that need an
// existing entry degrade to an unchanged candidate on an empty stack; so do
// moves whose candidate set turns out empty.
func (a *annealer) neighbor(current model.Stack) model.Stack {
	s := current.Clone()

	switch a.rng.Intn(moveCount) {
	case moveSwap:
		if len(s) < 2 {
			return s
		}
		i := a.rng.Intn(len(s))
		j := a.rng.Intn(len(s) - 1)
		if j >= i {
			j++
		}
		if j < i {
			i, j = j, i
		}
		s[i], s[j] = s[j], s[i]
		return repairFrom(s, i)

	case moveRemoveInsert:
		if len(s) == 0 {
			return s
		}
		p := a.rng.Intn(len(s))
		s = append(s[:p], s[p+1:]...)
		if unused := a.unusedOrientations(s); len(unused) > 0 {
			o := unused[a.rng.Intn(len(unused))]
			if fitsAt(s, o, p) {
				s = insertAt(s, o, p)
			}
		}
		return repairFrom(s, p)

	case moveReplace:
		if len(s) == 0 {
			return s
		}
		p := a.rng.Intn(len(s))
		trimmed := append(s[:p:p], s[p+1:]...)
		var fitting []model.Orientation
		for _, o := range a.unusedOrientations(trimmed) {
			if fitsAt(trimmed, o, p) {
				fitting = append(fitting, o)
			}
		}
		if len(fitting) == 0 {
			return s
		}
		s = insertAt(trimmed, fitting[a.rng.Intn(len(fitting))], p)
		return repairFrom(s, p+1)

	default: // moveRebuild
		cut := a.rng.Intn(len(s) + 1)
		prefix := s[:cut].Clone()
		var candidates []model.Orientation
		for _, o := range a.unusedOrientations(prefix) {
			if cut == 0 || o.FitsInside(s[cut-1]) {
				candidates = append(candidates, o)
			}
		}
		a.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		for _, o := range candidates {
			if len(prefix) == 0 || o.FitsInside(prefix[len(prefix)-1]) {
				if !prefix.ContainsBox(o.SourceBox) {
					prefix = append(prefix, o)
				}
			}
		}
		return prefix
	}
}

// unusedOrientations returns the pool entries whose source box does not
// appear in the stack.
func (a *annealer) unusedOrientations(s model.Stack) []model.Orientation {
	used := make(map[int]bool, len(s))
	for _, o := range s {
		used[o.SourceBox] = true
	}
	var out []model.Orientation
	for _, o := range a.pool {
		if !used[o.SourceBox] {
			out = append(out, o)
		}
	}
	return out
}

// fitsAt reports whether o can sit at position pos: strictly inside the
// entry below and strictly around the entry above.
func fitsAt(s model.Stack, o model.Orientation, pos int) bool {
	if pos > 0 && !o.FitsInside(s[pos-1]) {
		return false
	}
	if pos < len(s) && !s[pos].FitsInside(o) {
		return false
	}
	return true
}

// insertAt returns a stack with o inserted at position pos.
func insertAt(s model.Stack, o model.Orientation, pos int) model.Stack {
	s = append(s, model.Orientation{})
	copy(s[pos+1:], s[pos:])
	s[pos] = o
	return s
}

// repairFrom removes every entry at or above index from that no longer fits
// strictly inside the entry now below it. A single upward pass suffices:
// after a removal the same index is re-checked against the unchanged entry
// below, so cascading violations are caught in O(len) without rescanning.
func repairFrom(s model.Stack, from int) model.Stack {
	k := from
	if k < 1 {
		k = 1
	}
	for k < len(s) {
		if s[k].FitsInside(s[k-1]) {
			k++
			continue
		}
		s = append(s[:k], s[k+1:]...)
	}
	return s
}
