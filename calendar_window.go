package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/slot-calendar/pkg/models"
	"github.com/borgmon/slot-calendar/pkg/ui/components"
	"github.com/borgmon/slot-calendar/pkg/ui/view"
)

type CalendarWindow struct {
	window   fyne.Window
	view     *view.CalendarView
	prompter *dialogPrompter
	hasTray  bool

	titleLabel *widget.Label
	modeSelect *widget.Select
	grid       *fyne.Container
	agenda     *components.EventList
}

func NewCalendarWindow(app fyne.App) *CalendarWindow {
	cw := &CalendarWindow{
		window: app.NewWindow("Slot Calendar"),
	}
	cw.prompter = &dialogPrompter{window: cw.window}

	_, cw.hasTray = app.(desktop.App)
	cw.window.SetCloseIntercept(cw.handleClose)

	return cw
}

// handleClose cancels an open prompt, then hides to the system tray where one exists
func (cw *CalendarWindow) handleClose() {
	cw.prompter.cancel()
	if cw.hasTray {
		cw.window.Hide()
	} else {
		cw.window.Close()
	}
}

// Bind attaches the calendar view and builds the window content
func (cw *CalendarWindow) Bind(v *view.CalendarView, onSettings func()) {
	cw.view = v

	cw.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	prevButton := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		cw.view.Navigate(-1)
		cw.Refresh()
	})
	nextButton := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		cw.view.Navigate(1)
		cw.Refresh()
	})
	todayButton := widget.NewButton("Today", func() {
		cw.view.Today()
		cw.Refresh()
	})

	labels := make([]string, len(models.Views))
	for i, mode := range models.Views {
		labels[i] = mode.Label()
	}
	cw.modeSelect = widget.NewSelect(labels, func(selected string) {
		for _, mode := range models.Views {
			if mode.Label() == selected && mode != cw.view.Mode() {
				cw.view.SetMode(mode)
				cw.Refresh()
			}
		}
	})

	exportButton := widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), func() {
		cw.showExportDialog()
	})
	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), onSettings)

	toolbar := container.NewBorder(
		nil,
		nil,
		container.NewHBox(prevButton, todayButton, nextButton),
		container.NewHBox(cw.modeSelect, exportButton, settingsButton),
		cw.titleLabel,
	)

	cw.grid = container.NewStack()

	var agendaContent *fyne.Container
	cw.agenda, agendaContent = components.NewEventList(components.EventListConfig{
		Title:     "Agenda",
		EmptyText: "No events in this range. Tap a slot to add one.",
		RenderItem: func(e models.Event) string {
			return fmt.Sprintf("%s  %s", cw.view.Localizer().FormatRange(e.Start, e.End), e.Title)
		},
		OnSelected: func(e models.Event) {
			cw.view.SetDate(e.Start)
			cw.Refresh()
		},
	})

	split := container.NewHSplit(cw.grid, container.NewPadded(agendaContent))
	split.Offset = 0.75

	cw.window.SetContent(container.NewBorder(
		container.NewPadded(toolbar),
		nil,
		nil,
		nil,
		split,
	))
	cw.modeSelect.SetSelected(v.Mode().Label())

	cw.window.Resize(fyne.NewSize(1100, 720))
	cw.window.CenterOnScreen()
}

// Refresh re-renders the grid and agenda. Must run on the UI thread.
func (cw *CalendarWindow) Refresh() {
	if cw.view == nil {
		return
	}

	cw.titleLabel.SetText(cw.view.Title())
	cw.grid.Objects = []fyne.CanvasObject{cw.view.Render()}
	cw.grid.Refresh()
	cw.agenda.SetEvents(cw.view.VisibleEvents())
}

func (cw *CalendarWindow) Show() {
	cw.window.Show()
}
