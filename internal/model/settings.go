package model

import (
	"errors"
	"fmt"
)

// CoolingSchedule selects how the annealer lowers its temperature.
type CoolingSchedule string

const (
	// ScheduleGeometric multiplies the temperature by
	// 1 - coolingRate/initialTemperature each step (default).
	ScheduleGeometric CoolingSchedule = "geometric"
	// ScheduleLinear subtracts coolingRate each step.
	ScheduleLinear CoolingSchedule = "linear"
)

// Configuration errors surfaced before any optimization work begins.
var (
	ErrNonPositiveTemperature = errors.New("initial temperature must be positive")
	ErrNonPositiveCoolingRate = errors.New("cooling rate must be positive")
	ErrUnknownSchedule        = errors.New("unknown cooling schedule")
)

// SolveSettings holds solver configuration.
type SolveSettings struct {
	InitialTemperature float64         `json:"initial_temperature"`
	CoolingRate        float64         `json:"cooling_rate"`
	Schedule           CoolingSchedule `json:"schedule"`
	TrialsPerStep      int             `json:"trials_per_step"`
	MinTemperature     float64         `json:"min_temperature"`

	// Seed for the injected random source. Zero means seed from the clock.
	Seed int64 `json:"seed"`
}

func DefaultSettings() SolveSettings {
	return SolveSettings{
		InitialTemperature: 10.0,
		CoolingRate:        1.0,
		Schedule:           ScheduleGeometric,
		TrialsPerStep:      20,
		MinTemperature:     1e-3,
		Seed:               0,
	}
}

// Validate rejects settings under which the annealing loop must not run.
func (s SolveSettings) Validate() error {
	if s.InitialTemperature <= 0 {
		return fmt.Errorf("%w: got %g", ErrNonPositiveTemperature, s.InitialTemperature)
	}
	if s.CoolingRate <= 0 {
		return fmt.Errorf("%w: got %g", ErrNonPositiveCoolingRate, s.CoolingRate)
	}
	switch s.Schedule {
	case ScheduleGeometric, ScheduleLinear:
	case "":
		// Unset schedule falls back to geometric in the engine.
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSchedule, s.Schedule)
	}
	if s.MinTemperature <= 0 {
		return fmt.Errorf("minimum temperature must be positive, got %g", s.MinTemperature)
	}
	if s.TrialsPerStep <= 0 {
		return fmt.Errorf("trials per step must be positive, got %d", s.TrialsPerStep)
	}
	return nil
}
