package store

import (
	"log"

	"fyne.io/fyne/v2"
	"github.com/borgmon/slot-calendar/pkg/models"
)

// ConfigStore handles configuration persistence using Fyne preferences
type ConfigStore struct {
	app fyne.App
}

// NewConfigStore creates a new ConfigStore instance
func NewConfigStore(app fyne.App) *ConfigStore {
	return &ConfigStore{app: app}
}

// Load loads configuration from preferences. Keys that were never saved
// take their value from fallback. A stored config that fails validation
// is discarded in favour of fallback.
func (cs *ConfigStore) Load(fallback *models.Config) *models.Config {
	if fallback == nil {
		fallback = models.DefaultConfig()
	}
	prefs := cs.app.Preferences()

	config := &models.Config{
		AutoStart:    prefs.BoolWithFallback("auto_start", fallback.AutoStart),
		DefaultView:  models.View(prefs.StringWithFallback("default_view", string(fallback.DefaultView))),
		WeekStart:    prefs.StringWithFallback("week_start", fallback.WeekStart),
		SlotMinutes:  prefs.IntWithFallback("slot_minutes", fallback.SlotMinutes),
		DayStartHour: prefs.IntWithFallback("day_start_hour", fallback.DayStartHour),
		DayEndHour:   prefs.IntWithFallback("day_end_hour", fallback.DayEndHour),
		ChimeOnAdd:   prefs.BoolWithFallback("chime_on_add", fallback.ChimeOnAdd),
	}

	if err := config.Validate(); err != nil {
		log.Printf("[CONFIG] Ignoring stored preferences: %v", err)
		copied := *fallback
		return &copied
	}

	return config
}

// Save saves configuration to preferences
func (cs *ConfigStore) Save(config *models.Config) {
	prefs := cs.app.Preferences()

	prefs.SetBool("auto_start", config.AutoStart)
	prefs.SetString("default_view", string(config.DefaultView))
	prefs.SetString("week_start", config.WeekStart)
	prefs.SetInt("slot_minutes", config.SlotMinutes)
	prefs.SetInt("day_start_hour", config.DayStartHour)
	prefs.SetInt("day_end_hour", config.DayEndHour)
	prefs.SetBool("chime_on_add", config.ChimeOnAdd)
}
