package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, time.Sunday, cfg.WeekStartDay())
	assert.Equal(t, 30*time.Minute, cfg.SlotDuration())
}

func TestConfigValidateRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"view", func(c *Config) { c.DefaultView = "agenda" }},
		{"week start", func(c *Config) { c.WeekStart = "friday" }},
		{"slot minutes", func(c *Config) { c.SlotMinutes = 7 }},
		{"day start", func(c *Config) { c.DayStartHour = 24 }},
		{"day end", func(c *Config) { c.DayEndHour = 25 }},
		{"inverted hours", func(c *Config) { c.DayStartHour, c.DayEndHour = 18, 9 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseView(t *testing.T) {
	v, err := ParseView(" Week ")
	assert.NoError(t, err)
	assert.Equal(t, ViewWeek, v)
	assert.Equal(t, "Week", v.Label())

	_, err = ParseView("year")
	assert.Error(t, err)
}

func TestWeekStartDayMonday(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeekStart = "Monday"
	assert.Equal(t, time.Monday, cfg.WeekStartDay())
}

func TestConfigEqual(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()
	assert.True(t, a.Equal(b))

	b.ChimeOnAdd = true
	assert.False(t, a.Equal(b))
}
