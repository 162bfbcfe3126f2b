package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/slot-calendar/pkg/models"
	"github.com/borgmon/slot-calendar/pkg/store"
)

const savedMessage = "Settings saved successfully"

type SettingsWindow struct {
	window      fyne.Window
	config      *models.Config
	configStore *store.ConfigStore
	onSave      func(*models.Config)

	autoStartCheck  *widget.Check
	viewSelect      *widget.Select
	weekStartSelect *widget.Select
	slotSelect      *widget.Select
	dayStartSelect  *widget.Select
	dayEndSelect    *widget.Select
	chimeCheck      *widget.Check

	// UI state
	hasUnsavedChanges bool
	saveStatusLabel   *widget.Label
	saveButton        *widget.Button
}

func NewSettingsWindow(app fyne.App, config *models.Config, configStore *store.ConfigStore, onSave func(*models.Config)) *SettingsWindow {
	sw := &SettingsWindow{
		config:      config,
		configStore: configStore,
		onSave:      onSave,
	}

	sw.window = app.NewWindow("Slot Calendar - Settings")
	sw.buildUI()

	return sw
}

func (sw *SettingsWindow) buildUI() {
	sw.saveStatusLabel = widget.NewLabel("")
	sw.saveStatusLabel.Importance = widget.SuccessImportance

	sw.saveButton = widget.NewButton("Save", func() {
		sw.save()
	})
	sw.saveButton.Importance = widget.HighImportance
	sw.saveButton.Disable() // enabled once something changes

	closeButton := widget.NewButton("Close", func() {
		sw.handleClose()
	})

	buttonRow := container.NewBorder(
		nil,
		nil,
		container.NewHBox(sw.saveButton, sw.saveStatusLabel),
		closeButton,
		container.NewHBox(),
	)

	content := container.NewBorder(
		nil,
		container.NewPadded(buttonRow),
		nil,
		nil,
		sw.buildForm(),
	)

	sw.window.SetContent(content)
	sw.window.Resize(fyne.NewSize(560, 480))
	sw.window.CenterOnScreen()

	sw.window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			sw.handleClose()
		}
	})

	sw.window.SetCloseIntercept(func() {
		sw.handleClose()
	})
}

func (sw *SettingsWindow) buildForm() fyne.CanvasObject {
	changed := func(string) { sw.markChanged() }

	sw.autoStartCheck = widget.NewCheck("Launch Slot Calendar when your system starts", func(bool) {
		sw.markChanged()
	})
	sw.autoStartCheck.SetChecked(sw.config.AutoStart)

	viewOptions := make([]string, len(models.Views))
	for i, v := range models.Views {
		viewOptions[i] = v.Label()
	}
	sw.viewSelect = widget.NewSelect(viewOptions, changed)
	sw.viewSelect.SetSelected(sw.config.DefaultView.Label())

	sw.weekStartSelect = widget.NewSelect([]string{"Sunday", "Monday"}, changed)
	sw.weekStartSelect.SetSelected(sw.config.WeekStartDay().String())

	slotOptions := make([]string, len(models.SlotMinuteChoices))
	for i, m := range models.SlotMinuteChoices {
		slotOptions[i] = formatMinutes(m)
	}
	sw.slotSelect = widget.NewSelect(slotOptions, changed)
	sw.slotSelect.SetSelected(formatMinutes(sw.config.SlotMinutes))

	startHours := make([]string, 24)
	endHours := make([]string, 24)
	for h := 0; h < 24; h++ {
		startHours[h] = formatHour(h)
		endHours[h] = formatHour(h + 1)
	}
	sw.dayStartSelect = widget.NewSelect(startHours, changed)
	sw.dayStartSelect.SetSelected(formatHour(sw.config.DayStartHour))
	sw.dayEndSelect = widget.NewSelect(endHours, changed)
	sw.dayEndSelect.SetSelected(formatHour(sw.config.DayEndHour))

	sw.chimeCheck = widget.NewCheck("Play a chime when an event is added", func(bool) {
		sw.markChanged()
	})
	sw.chimeCheck.SetChecked(sw.config.ChimeOnAdd)

	// SetSelected fires the change callbacks
	sw.hasUnsavedChanges = false
	sw.updateSaveButtonState()

	hoursHelp := widget.NewLabel("Rows shown in the week and day views")
	hoursHelp.Importance = widget.LowImportance

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Auto Start:"), sw.autoStartCheck,
		widget.NewLabel("Default View:"), sw.viewSelect,
		widget.NewLabel("Week Starts On:"), sw.weekStartSelect,
		widget.NewLabel("Time Slot:"), sw.slotSelect,
		container.NewVBox(widget.NewLabel("Day Hours:"), hoursHelp),
		container.NewHBox(sw.dayStartSelect, widget.NewLabel("to"), sw.dayEndSelect),
		widget.NewLabel("Sound:"), sw.chimeCheck,
	)

	content := container.NewVBox(
		widget.NewLabel("Calendar Settings"),
		widget.NewSeparator(),
		form,
	)

	return container.NewPadded(container.NewVScroll(content))
}

func (sw *SettingsWindow) save() {
	newConfig, err := sw.getConfigFromUI()
	if err == nil {
		err = newConfig.Validate()
	}
	if err != nil {
		dialog.ShowError(err, sw.window)
		return
	}

	sw.saveButton.Disable()
	sw.setStatus("Saving...", widget.MediumImportance)

	go func() {
		if err := setupAutostart(newConfig.AutoStart); err != nil {
			log.Printf("Error setting autostart: %v", err)
			fyne.Do(func() {
				sw.setStatus("Error: Failed to set autostart", widget.DangerImportance)
				sw.updateSaveButtonState()
			})
			return
		}

		sw.configStore.Save(newConfig)
		log.Printf("[CONFIG] Saved settings")
		if sw.onSave != nil {
			sw.onSave(newConfig)
		}

		fyne.Do(func() {
			sw.config = newConfig
			sw.hasUnsavedChanges = false
			sw.setStatus(savedMessage, widget.SuccessImportance)
			sw.updateSaveButtonState()

			// Clear success message after 3 seconds
			go func() {
				time.Sleep(3 * time.Second)
				fyne.Do(func() {
					if sw.saveStatusLabel.Text == savedMessage {
						sw.setStatus("", widget.SuccessImportance)
					}
				})
			}()
		})
	}()
}

func (sw *SettingsWindow) setStatus(text string, importance widget.Importance) {
	sw.saveStatusLabel.SetText(text)
	sw.saveStatusLabel.Importance = importance
	sw.saveStatusLabel.Refresh()
}

func (sw *SettingsWindow) getConfigFromUI() (*models.Config, error) {
	mode, err := models.ParseView(sw.viewSelect.Selected)
	if err != nil {
		return nil, err
	}
	slotMinutes, err := parseMinutes(sw.slotSelect.Selected)
	if err != nil {
		return nil, err
	}
	dayStart, err := parseHour(sw.dayStartSelect.Selected)
	if err != nil {
		return nil, err
	}
	dayEnd, err := parseHour(sw.dayEndSelect.Selected)
	if err != nil {
		return nil, err
	}

	weekStart := "sunday"
	if sw.weekStartSelect.Selected == "Monday" {
		weekStart = "monday"
	}

	return &models.Config{
		AutoStart:    sw.autoStartCheck.Checked,
		DefaultView:  mode,
		WeekStart:    weekStart,
		SlotMinutes:  slotMinutes,
		DayStartHour: dayStart,
		DayEndHour:   dayEnd,
		ChimeOnAdd:   sw.chimeCheck.Checked,
	}, nil
}

func (sw *SettingsWindow) Show() {
	sw.window.Show()
}

// markChanged marks the config as having unsaved changes
func (sw *SettingsWindow) markChanged() {
	sw.hasUnsavedChanges = true
	sw.updateSaveButtonState()
}

func (sw *SettingsWindow) updateSaveButtonState() {
	if sw.saveButton == nil {
		return
	}
	if sw.hasUnsavedChanges {
		sw.saveButton.Enable()
	} else {
		sw.saveButton.Disable()
	}
}

// handleClose asks before discarding unsaved changes
func (sw *SettingsWindow) handleClose() {
	if sw.hasActualChanges() {
		dialog.ShowConfirm("Unsaved Changes",
			"You have unsaved changes. Are you sure you want to close?",
			func(confirmed bool) {
				if confirmed {
					sw.window.Close()
				}
			}, sw.window)
		return
	}
	sw.window.Close()
}

// hasActualChanges checks if the form differs from the saved config
func (sw *SettingsWindow) hasActualChanges() bool {
	current, err := sw.getConfigFromUI()
	if err != nil {
		return true
	}
	return !current.Equal(sw.config)
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%d min", m)
}

func parseMinutes(s string) (int, error) {
	var m int
	if _, err := fmt.Sscanf(s, "%d min", &m); err != nil {
		return 0, fmt.Errorf("time slot %q: %w", s, err)
	}
	return m, nil
}

func formatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}

func parseHour(s string) (int, error) {
	if len(s) != 5 || s[2:] != ":00" {
		return 0, fmt.Errorf("hour %q is not HH:00", s)
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, fmt.Errorf("hour %q: %w", s, err)
	}
	return h, nil
}
