package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsValidate(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())
}

func TestValidateRejectsBadSettings(t *testing.T) {
	s := DefaultSettings()
	s.InitialTemperature = 0
	assert.True(t, errors.Is(s.Validate(), ErrNonPositiveTemperature))

	s = DefaultSettings()
	s.InitialTemperature = -5
	assert.True(t, errors.Is(s.Validate(), ErrNonPositiveTemperature))

	s = DefaultSettings()
	s.CoolingRate = 0
	assert.True(t, errors.Is(s.Validate(), ErrNonPositiveCoolingRate))

	s = DefaultSettings()
	s.Schedule = "exponential"
	assert.True(t, errors.Is(s.Validate(), ErrUnknownSchedule))

	s = DefaultSettings()
	s.MinTemperature = 0
	assert.Error(t, s.Validate())

	s = DefaultSettings()
	s.TrialsPerStep = 0
	assert.Error(t, s.Validate())
}

func TestValidateAllowsEmptySchedule(t *testing.T) {
	s := DefaultSettings()
	s.Schedule = ""
	assert.NoError(t, s.Validate())
}
