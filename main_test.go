package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/borgmon/slot-calendar/pkg/calendar"
	"github.com/borgmon/slot-calendar/pkg/models"
	"github.com/borgmon/slot-calendar/pkg/store"
	"github.com/borgmon/slot-calendar/pkg/ui/view"
	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStartupDefaultsToConfig(t *testing.T) {
	config := models.DefaultConfig()
	config.DefaultView = models.ViewWeek

	mode, date, err := resolveStartup(&startupOptions{}, config)

	require.NoError(t, err)
	assert.Equal(t, models.ViewWeek, mode)
	assert.True(t, date.IsZero())
}

func TestResolveStartupFlags(t *testing.T) {
	mode, date, err := resolveStartup(&startupOptions{view: "Day", date: "2026-12-24"}, models.DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, models.ViewDay, mode)
	assert.Equal(t, time.Date(2026, time.December, 24, 0, 0, 0, 0, time.Local), date)
}

func TestResolveStartupRejectsBadFlags(t *testing.T) {
	_, _, err := resolveStartup(&startupOptions{view: "year"}, models.DefaultConfig())
	assert.ErrorContains(t, err, "--view")

	_, _, err = resolveStartup(&startupOptions{date: "24/12/2026"}, models.DefaultConfig())
	assert.ErrorContains(t, err, "--date")
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("default_view = \"day\"\nslot_minutes = 15\n"), 0o644))

	config, err := loadFileConfig(path)

	require.NoError(t, err)
	assert.Equal(t, models.ViewDay, config.DefaultView)
	assert.Equal(t, 15, config.SlotMinutes)
	assert.Equal(t, "sunday", config.WeekStart)
}

func TestLoadFileConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := loadFileConfig(filepath.Join(t.TempDir(), "missing.toml"))

	require.NoError(t, err)
	assert.Equal(t, models.DefaultConfig(), config)
}

func TestRootCommandRejectsBadView(t *testing.T) {
	cmd := newRootCommand(func() fyne.App { return test.NewTempApp(t) })
	cmd.SetArgs([]string{"--view", "year", "--config", filepath.Join(t.TempDir(), "none.toml")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	assert.ErrorContains(t, err, "unknown view")
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cmd := newRootCommand(func() fyne.App { return test.NewTempApp(t) })
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}

func TestGridOptionsFromConfig(t *testing.T) {
	config := models.DefaultConfig()
	config.SlotMinutes = 15
	config.DayStartHour = 8
	config.DayEndHour = 18

	assert.Equal(t, calendar.TimeGridOptions{Step: 15 * time.Minute, DayStartHour: 8, DayEndHour: 18}, gridOptions(config))
}

func TestUpcomingToday(t *testing.T) {
	now := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	at := func(h int, title string) models.Event {
		start := time.Date(2026, time.October, 19, h, 0, 0, 0, time.UTC)
		return models.Event{ID: title, Title: title, Start: start, End: start.Add(time.Hour)}
	}
	tomorrow := at(9, "Tomorrow")
	tomorrow.Start = tomorrow.Start.AddDate(0, 0, 1)
	tomorrow.End = tomorrow.End.AddDate(0, 0, 1)

	events := []models.Event{at(16, "Gym"), at(9, "Standup"), at(12, "Lunch"), tomorrow, at(10, "Review")}

	var got []string
	for _, e := range upcomingToday(events, now, 5) {
		got = append(got, e.Title)
	}
	assert.Equal(t, []string{"Review", "Lunch", "Gym"}, got)

	assert.Len(t, upcomingToday(events, now, 1), 1)
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "Lunch", truncateString("Lunch", 10))
	assert.Equal(t, "Quarterly...", truncateString("Quarterly planning", 12))
	assert.Equal(t, "Café ...", truncateString("Café au lait", 8))
}

func TestHourAndMinuteLabels(t *testing.T) {
	for h := 0; h <= 24; h++ {
		got, err := parseHour(formatHour(h))
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}
	_, err := parseHour("8am")
	assert.Error(t, err)

	for _, m := range models.SlotMinuteChoices {
		got, err := parseMinutes(formatMinutes(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestExportEventsWritesCalendar(t *testing.T) {
	start := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	events := []models.Event{{ID: "lunch", Title: "Lunch", Start: start, End: start.Add(time.Hour)}}
	out := &closeRecorder{}

	require.NoError(t, exportEvents(out, events))

	assert.True(t, out.closed)
	cal, err := ical.NewDecoder(strings.NewReader(out.String())).Decode()
	require.NoError(t, err)
	require.Len(t, cal.Events(), 1)
}

func TestExportEventsClosesOnError(t *testing.T) {
	out := &closeRecorder{}

	err := exportEvents(out, nil)

	assert.ErrorIs(t, err, calendar.ErrNothingToExport)
	assert.True(t, out.closed)
}

func TestSettingsWindowTracksChanges(t *testing.T) {
	a := test.NewTempApp(t)
	config := models.DefaultConfig()
	var saved *models.Config
	sw := NewSettingsWindow(a, config, store.NewConfigStore(a), func(c *models.Config) { saved = c })
	defer sw.window.Close()

	current, err := sw.getConfigFromUI()
	require.NoError(t, err)
	assert.True(t, current.Equal(config))
	assert.False(t, sw.hasActualChanges())
	assert.True(t, sw.saveButton.Disabled())

	sw.weekStartSelect.SetSelected("Monday")
	sw.slotSelect.SetSelected("15 min")

	assert.True(t, sw.hasActualChanges())
	assert.False(t, sw.saveButton.Disabled())
	current, err = sw.getConfigFromUI()
	require.NoError(t, err)
	assert.Equal(t, "monday", current.WeekStart)
	assert.Equal(t, 15, current.SlotMinutes)
	assert.Nil(t, saved)
}

func TestCalendarWindowRefresh(t *testing.T) {
	a := test.NewTempApp(t)
	now := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

	cw := NewCalendarWindow(a)
	defer cw.window.Close()
	v := view.New(store.NewEventStore(), view.Options{
		Localizer: calendar.NewLocalizer(calendar.WithClock(func() time.Time { return now })),
		Mode:      models.ViewMonth,
	})
	cw.Bind(v, func() {})
	v.Initialize()
	cw.Refresh()

	assert.Equal(t, "October 2026", cw.titleLabel.Text)
	assert.Equal(t, "Month", cw.modeSelect.Selected)
	require.Len(t, cw.agenda.Events(), 1)
	assert.Equal(t, models.SampleTitle, cw.agenda.Events()[0].Title)

	cw.modeSelect.SetSelected("Day")
	assert.Equal(t, models.ViewDay, v.Mode())
	assert.Equal(t, "Monday, October 19, 2026", cw.titleLabel.Text)
}
