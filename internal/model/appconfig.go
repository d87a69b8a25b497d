package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default solver settings applied when flags are not given
	DefaultInitialTemperature float64         `json:"default_initial_temperature"`
	DefaultCoolingRate        float64         `json:"default_cooling_rate"`
	DefaultSchedule           CoolingSchedule `json:"default_schedule"`
	DefaultTrialsPerStep      int             `json:"default_trials_per_step"`

	// Application preferences
	RecentInputs []string `json:"recent_inputs"`
}

// DefaultAppConfig returns an AppConfig populated with defaults matching
// the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultInitialTemperature: defaults.InitialTemperature,
		DefaultCoolingRate:        defaults.CoolingRate,
		DefaultSchedule:           defaults.Schedule,
		DefaultTrialsPerStep:      defaults.TrialsPerStep,
		RecentInputs:              []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a
// SolveSettings struct. Used when starting a run so it inherits the user's
// saved defaults.
func (c AppConfig) ApplyToSettings(s *SolveSettings) {
	s.InitialTemperature = c.DefaultInitialTemperature
	s.CoolingRate = c.DefaultCoolingRate
	s.Schedule = c.DefaultSchedule
	s.TrialsPerStep = c.DefaultTrialsPerStep
}

// RememberInput records an input path at the front of the recent list,
// dropping duplicates and keeping at most ten entries.
func (c *AppConfig) RememberInput(path string) {
	recent := []string{path}
	for _, p := range c.RecentInputs {
		if p != path && len(recent) < 10 {
			recent = append(recent, p)
		}
	}
	c.RecentInputs = recent
}
