package view

import (
	"fmt"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/slot-calendar/pkg/calendar"
	"github.com/borgmon/slot-calendar/pkg/models"
	"github.com/borgmon/slot-calendar/pkg/ui/components"
)

const maxCellLines = 3

// Render builds the calendar grid for the current mode and event list.
// Tapping a cell starts a slot selection through the dispatcher.
func (v *CalendarView) Render() fyne.CanvasObject {
	events := v.store.Events()

	v.mu.RLock()
	l := v.localizer
	mode := v.mode
	date := v.focusedDate()
	opts := v.gridOpts
	v.mu.RUnlock()

	if mode == models.ViewMonth {
		return v.renderMonth(calendar.BuildMonth(l, date, events))
	}

	grid, err := calendar.BuildTimeGrid(l, mode, date, events, opts)
	if err != nil {
		log.Printf("[RENDER] %v", err)
		return widget.NewLabel(fmt.Sprintf("Cannot show %s view: %v", mode, err))
	}
	return v.renderTimeGrid(grid)
}

func (v *CalendarView) renderMonth(grid calendar.MonthGrid) fyne.CanvasObject {
	header := container.NewGridWithColumns(len(grid.Weekdays))
	for _, name := range grid.Weekdays {
		header.Add(widget.NewLabelWithStyle(name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
	}

	body := container.NewGridWithColumns(len(grid.Weekdays))
	for _, week := range grid.Weeks {
		for _, cell := range week {
			sc := v.newCell(cell, cell.Label, monthLines(cell))
			sc.Muted = !cell.InRange
			body.Add(sc)
		}
	}

	return container.NewBorder(header, nil, nil, nil, body)
}

func (v *CalendarView) renderTimeGrid(grid calendar.TimeGrid) fyne.CanvasObject {
	columns := len(grid.Days) + 1

	header := container.NewGridWithColumns(columns, widget.NewLabel(""))
	for _, label := range grid.DayLabels {
		header.Add(widget.NewLabelWithStyle(label, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
	}

	body := container.NewGridWithColumns(columns)
	for row := 0; row < grid.Rows(); row++ {
		body.Add(widget.NewLabelWithStyle(grid.RowLabels[row], fyne.TextAlignTrailing, fyne.TextStyle{}))
		for day := range grid.Days {
			cell := grid.Columns[day][row]
			body.Add(v.newCell(cell, "", titles(cell.Starts)))
		}
	}

	return container.NewBorder(header, nil, nil, nil, container.NewVScroll(body))
}

func (v *CalendarView) newCell(cell calendar.Cell, heading string, lines []string) *components.SlotCell {
	slot := cell.Slot
	sc := components.NewSlotCell(heading, lines, func() {
		v.dispatch(func() { v.OnSlotSelected(slot) })
	})
	sc.Filled = len(cell.Events) > 0
	sc.Today = cell.Today
	return sc
}

// monthLines lists the events of a day, marking ones carried over from an
// earlier day, and collapses the overflow into a count.
func monthLines(cell calendar.Cell) []string {
	starts := make(map[string]bool, len(cell.Starts))
	for _, e := range cell.Starts {
		starts[e.ID] = true
	}

	var lines []string
	for i, e := range cell.Events {
		if i == maxCellLines {
			lines = append(lines, "+"+strconv.Itoa(len(cell.Events)-maxCellLines)+" more")
			break
		}
		if starts[e.ID] {
			lines = append(lines, e.Title)
		} else {
			lines = append(lines, "… "+e.Title)
		}
	}
	return lines
}

func titles(events []models.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Title)
	}
	return out
}
