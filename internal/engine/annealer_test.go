package engine

import (
	"math/rand"
	"testing"

	"github.com/piwi3910/BoxStack/internal/model"
)

func testBoxes() []model.Box {
	return []model.Box{
		{Label: "A", DimA: 4, DimB: 4, DimC: 4},
		{Label: "B", DimA: 3, DimB: 3, DimC: 3},
		{Label: "C", DimA: 2, DimB: 2, DimC: 2},
	}
}

func fastSettings() model.SolveSettings {
	s := model.DefaultSettings()
	s.Seed = 1
	return s
}

func TestRepairFromRemovesViolations(t *testing.T) {
	// Entry 1 does not fit inside entry 0; entry 2 fits inside entry 0 but
	// must be re-checked once entry 1 is gone.
	s := model.Stack{
		{Width: 4, Depth: 4, Height: 1, SourceBox: 0},
		{Width: 6, Depth: 6, Height: 1, SourceBox: 1},
		{Width: 3, Depth: 3, Height: 1, SourceBox: 2},
	}
	repaired := repairFrom(s.Clone(), 1)

	if !repaired.IsValid() {
		t.Fatalf("repaired stack is invalid: %v", repaired)
	}
	if len(repaired) != 2 {
		t.Errorf("expected 2 survivors, got %d: %v", len(repaired), repaired)
	}
}

func TestRepairFromCascades(t *testing.T) {
	// Removing the oversized middle entry exposes a new adjacency that is
	// also broken, so the cascade must remove the top entry too.
	s := model.Stack{
		{Width: 4, Depth: 4, Height: 1, SourceBox: 0},
		{Width: 9, Depth: 9, Height: 1, SourceBox: 1},
		{Width: 5, Depth: 5, Height: 1, SourceBox: 2},
	}
	repaired := repairFrom(s, 1)

	if len(repaired) != 1 {
		t.Fatalf("expected only the base to survive, got %v", repaired)
	}
	if !repaired.IsValid() {
		t.Errorf("repaired stack is invalid: %v", repaired)
	}
}

func TestRepairFromIsIdempotent(t *testing.T) {
	s := model.Stack{
		{Width: 8, Depth: 8, Height: 2, SourceBox: 0},
		{Width: 9, Depth: 3, Height: 2, SourceBox: 1},
		{Width: 5, Depth: 5, Height: 2, SourceBox: 2},
		{Width: 2, Depth: 2, Height: 2, SourceBox: 3},
	}
	once := repairFrom(s.Clone(), 1)
	twice := repairFrom(once.Clone(), 1)

	if len(once) != len(twice) {
		t.Fatalf("second repair changed length from %d to %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("entry %d changed on second repair: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestNeighborPreservesValidity(t *testing.T) {
	boxes := []model.Box{
		{DimA: 10, DimB: 12, DimC: 1},
		{DimA: 9, DimB: 11, DimC: 5},
		{DimA: 8, DimB: 10, DimC: 2},
		{DimA: 4, DimB: 5, DimC: 20},
		{DimA: 3, DimB: 4, DimC: 3},
		{DimA: 7, DimB: 7, DimC: 7},
	}
	pool := ExpandOrientations(boxes)
	rng := rand.New(rand.NewSource(7))
	a := newAnnealer(fastSettings(), pool, rng)

	current := repairFrom(buildSeed(pool), 1)
	if !current.IsValid() {
		t.Fatalf("repaired seed is invalid: %v", current)
	}

	for i := 0; i < 2000; i++ {
		candidate := a.neighbor(current)
		if !candidate.IsValid() {
			t.Fatalf("iteration %d: neighbor produced an invalid stack: %v", i, candidate)
		}
		current = candidate
	}
}

func TestNeighborDoesNotMutateInput(t *testing.T) {
	pool := ExpandOrientations(testBoxes())
	rng := rand.New(rand.NewSource(3))
	a := newAnnealer(fastSettings(), pool, rng)

	current := repairFrom(buildSeed(pool), 1)
	snapshot := current.Clone()

	for i := 0; i < 200; i++ {
		a.neighbor(current)
		for j := range snapshot {
			if current[j] != snapshot[j] {
				t.Fatalf("iteration %d: neighbor mutated its input at entry %d", i, j)
			}
		}
	}
}

func TestRefineToleratesInvalidSeed(t *testing.T) {
	pool := ExpandOrientations(testBoxes())
	rng := rand.New(rand.NewSource(11))
	a := newAnnealer(fastSettings(), pool, rng)

	// Deliberately broken seed: middle entry wider than the base.
	seed := model.Stack{
		{Width: 4, Depth: 4, Height: 4, SourceBox: 0},
		{Width: 7, Depth: 7, Height: 1, SourceBox: 1},
		{Width: 2, Depth: 2, Height: 2, SourceBox: 2},
	}

	result := a.refine(seed)
	if !result.IsValid() {
		t.Fatalf("refine returned an invalid stack: %v", result)
	}
}

func TestNestedCubesReachFullHeight(t *testing.T) {
	stack, err := New(fastSettings()).Solve(testBoxes())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if stack.Height() != 9 {
		t.Errorf("expected total height 9, got %d (stack %v)", stack.Height(), stack)
	}
	if !stack.IsValid() {
		t.Errorf("result stack is invalid: %v", stack)
	}
}

func TestSingleBoxUsesTallestOrientation(t *testing.T) {
	stack, err := New(fastSettings()).Solve([]model.Box{{Label: "only", DimA: 5, DimB: 6, DimC: 7}})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(stack) != 1 {
		t.Fatalf("expected a single-entry stack, got %v", stack)
	}
	if stack.Height() != 7 {
		t.Errorf("expected height 7, got %d", stack.Height())
	}
}

func TestResultNeverBelowSeedHeight(t *testing.T) {
	boxes := []model.Box{
		{DimA: 10, DimB: 12, DimC: 1},
		{DimA: 9, DimB: 11, DimC: 5},
		{DimA: 8, DimB: 10, DimC: 2},
		{DimA: 4, DimB: 5, DimC: 20},
		{DimA: 3, DimB: 4, DimC: 3},
		{DimA: 2, DimB: 2, DimC: 2},
	}

	for seed := int64(1); seed <= 5; seed++ {
		settings := fastSettings()
		settings.Seed = seed

		solver := New(settings)
		seedStack, err := solver.SeedStack(boxes)
		if err != nil {
			t.Fatalf("SeedStack failed: %v", err)
		}
		result, err := solver.Solve(boxes)
		if err != nil {
			t.Fatalf("Solve failed: %v", err)
		}

		if result.Height() < seedStack.Height() {
			t.Errorf("seed %d: result height %d fell below seed height %d",
				seed, result.Height(), seedStack.Height())
		}
	}
}

func TestLinearScheduleTerminates(t *testing.T) {
	settings := fastSettings()
	settings.Schedule = model.ScheduleLinear

	stack, err := New(settings).Solve(testBoxes())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !stack.IsValid() {
		t.Errorf("result stack is invalid: %v", stack)
	}
	if stack.Height() != 9 {
		t.Errorf("expected total height 9, got %d", stack.Height())
	}
}
