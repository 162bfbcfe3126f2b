package models

import (
	"fmt"
	"strings"
	"time"
)

// View is the layout mode of the calendar grid
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// Views lists the supported layout modes in toolbar order
var Views = []View{ViewMonth, ViewWeek, ViewDay}

// ParseView converts a user supplied name into a View
func ParseView(name string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Views {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q (want month, week or day)", name)
}

// Label returns the capitalised view name for buttons and selects
func (v View) Label() string {
	if v == "" {
		return ""
	}
	return strings.ToUpper(string(v[:1])) + string(v[1:])
}

// SlotMinuteChoices are the supported time-grid steps
var SlotMinuteChoices = []int{5, 10, 15, 20, 30, 60}

// Config holds application configuration
type Config struct {
	AutoStart    bool   `json:"auto_start" toml:"auto_start"`
	DefaultView  View   `json:"default_view" toml:"default_view"`
	WeekStart    string `json:"week_start" toml:"week_start"`         // "sunday" or "monday"
	SlotMinutes  int    `json:"slot_minutes" toml:"slot_minutes"`     // time-grid step
	DayStartHour int    `json:"day_start_hour" toml:"day_start_hour"` // 0-23
	DayEndHour   int    `json:"day_end_hour" toml:"day_end_hour"`     // 1-24
	ChimeOnAdd   bool   `json:"chime_on_add" toml:"chime_on_add"`     // play a tone when an event is added
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		AutoStart:    false,
		DefaultView:  ViewMonth,
		WeekStart:    "sunday",
		SlotMinutes:  30,
		DayStartHour: 0,
		DayEndHour:   24,
		ChimeOnAdd:   false,
	}
}

// WeekStartDay returns the first weekday of calendar rows
func (c *Config) WeekStartDay() time.Weekday {
	if strings.EqualFold(c.WeekStart, "monday") {
		return time.Monday
	}
	return time.Sunday
}

// SlotDuration returns the time-grid step as a duration
func (c *Config) SlotDuration() time.Duration {
	return time.Duration(c.SlotMinutes) * time.Minute
}

// Validate checks that every field is in range
func (c *Config) Validate() error {
	if _, err := ParseView(string(c.DefaultView)); err != nil {
		return fmt.Errorf("default_view: %w", err)
	}

	switch strings.ToLower(c.WeekStart) {
	case "sunday", "monday":
	default:
		return fmt.Errorf("week_start: %q is not sunday or monday", c.WeekStart)
	}

	validStep := false
	for _, m := range SlotMinuteChoices {
		if c.SlotMinutes == m {
			validStep = true
			break
		}
	}
	if !validStep {
		return fmt.Errorf("slot_minutes: %d is not one of %v", c.SlotMinutes, SlotMinuteChoices)
	}

	if c.DayStartHour < 0 || c.DayStartHour > 23 {
		return fmt.Errorf("day_start_hour: %d out of range 0-23", c.DayStartHour)
	}
	if c.DayEndHour < 1 || c.DayEndHour > 24 {
		return fmt.Errorf("day_end_hour: %d out of range 1-24", c.DayEndHour)
	}
	if c.DayStartHour >= c.DayEndHour {
		return fmt.Errorf("day_start_hour %d must be before day_end_hour %d", c.DayStartHour, c.DayEndHour)
	}

	return nil
}

// Equal reports whether two configs hold the same values
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}
