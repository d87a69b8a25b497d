package engine

import (
	"fmt"

	"github.com/piwi3910/BoxStack/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.SolveSettings
}

// ComparisonResult holds the solve result and computed statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario  ComparisonScenario
	Stack     model.Stack
	Height    int
	BoxesUsed int
	Err       error
}

// CompareScenarios runs the solver for each scenario and returns the results
// in scenario order. This enables side-by-side comparison of different
// annealing parameters (schedules, cooling rates, starting temperatures).
func CompareScenarios(scenarios []ComparisonScenario, boxes []model.Box) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		stack, err := New(scenario.Settings).Solve(boxes)
		results = append(results, ComparisonResult{
			Scenario:  scenario,
			Stack:     stack,
			Height:    stack.Height(),
			BoxesUsed: len(stack),
			Err:       err,
		})
	}

	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios based on the
// current settings, varying key parameters to show what-if alternatives.
func BuildDefaultScenarios(baseSettings model.SolveSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: baseSettings,
		},
	}

	// Scenario: the other cooling schedule
	altSchedule := baseSettings
	if baseSettings.Schedule == model.ScheduleLinear {
		altSchedule.Schedule = model.ScheduleGeometric
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Geometric Cooling",
			Settings: altSchedule,
		})
	} else {
		altSchedule.Schedule = model.ScheduleLinear
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Linear Cooling",
			Settings: altSchedule,
		})
	}

	// Scenario: slower cooling (longer search)
	if baseSettings.CoolingRate > 0.2 {
		slow := baseSettings
		slow.CoolingRate = baseSettings.CoolingRate * 0.5
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Cooling Rate %.2g (half)", slow.CoolingRate),
			Settings: slow,
		})
	}

	// Scenario: hotter start (wider early exploration)
	hot := baseSettings
	hot.InitialTemperature = baseSettings.InitialTemperature * 2
	scenarios = append(scenarios, ComparisonScenario{
		Name:     fmt.Sprintf("Initial Temperature %.4g", hot.InitialTemperature),
		Settings: hot,
	})

	return scenarios
}
