package calendar

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/borgmon/slot-calendar/pkg/models"
)

// monthGridDays is six full weeks, enough for any month at any week start
const monthGridDays = 42

// Cell is one selectable slot of the grid together with the events drawn in it
type Cell struct {
	Slot    models.Slot
	Label   string         // day number in month view, time of day in time grids
	InRange bool           // false for leading/trailing days outside the focused month
	Today   bool           // slot lies on the current day
	Events  []models.Event // every event overlapping the slot
	Starts  []models.Event // events whose label is drawn in this slot
}

// MonthGrid is six rows of seven day cells
type MonthGrid struct {
	Title    string
	Weekdays []string
	Weeks    [][]Cell
}

// TimeGridOptions controls the rows of week and day grids
type TimeGridOptions struct {
	Step         time.Duration
	DayStartHour int
	DayEndHour   int
}

// TimeGrid is one column of time cells per day. Columns[d][r] is day d, row r.
type TimeGrid struct {
	Title     string
	Days      []time.Time
	DayLabels []string
	RowLabels []string
	Columns   [][]Cell
}

// Rows returns the number of time rows per day
func (g TimeGrid) Rows() int {
	return len(g.RowLabels)
}

// BuildMonth lays out the month containing date
func BuildMonth(l *Localizer, date time.Time, events []models.Event) MonthGrid {
	start, _ := l.Range(models.ViewMonth, date)
	now := l.Now()
	sorted := sortedEvents(events)

	grid := MonthGrid{
		Title:    l.Title(models.ViewMonth, date),
		Weekdays: l.WeekdayNames(),
		Weeks:    make([][]Cell, monthGridDays/7),
	}

	for i := 0; i < monthGridDays; i++ {
		day := start.AddDate(0, 0, i)
		slot := models.Slot{Start: day, End: day.AddDate(0, 0, 1)}

		cell := Cell{
			Slot:    slot,
			Label:   fmt.Sprintf("%d", day.Day()),
			InRange: day.Month() == date.Month() && day.Year() == date.Year(),
			Today:   l.SameDay(day, now),
		}
		for _, e := range sorted {
			if !e.Overlaps(slot) {
				continue
			}
			cell.Events = append(cell.Events, e)
			if slot.Contains(e.Start) || i%7 == 0 {
				cell.Starts = append(cell.Starts, e)
			}
		}

		week := i / 7
		grid.Weeks[week] = append(grid.Weeks[week], cell)
	}

	return grid
}

// BuildTimeGrid lays out the week or day containing date
func BuildTimeGrid(l *Localizer, view models.View, date time.Time, events []models.Event, opts TimeGridOptions) (TimeGrid, error) {
	if view != models.ViewWeek && view != models.ViewDay {
		return TimeGrid{}, fmt.Errorf("time grid does not support %q view", view)
	}
	if opts.Step < time.Minute || opts.Step > time.Hour || opts.Step%time.Minute != 0 {
		return TimeGrid{}, fmt.Errorf("time grid step %s out of range", opts.Step)
	}
	if opts.DayStartHour < 0 || opts.DayEndHour > 24 || opts.DayStartHour >= opts.DayEndHour {
		return TimeGrid{}, fmt.Errorf("time grid hours %d-%d out of range", opts.DayStartHour, opts.DayEndHour)
	}

	start, end := l.Range(view, date)
	now := l.Now()
	sorted := sortedEvents(events)

	stepMinutes := int(opts.Step / time.Minute)
	firstMinute := opts.DayStartHour * 60
	lastMinute := opts.DayEndHour * 60

	grid := TimeGrid{Title: l.Title(view, date)}

	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		grid.Days = append(grid.Days, day)
		grid.DayLabels = append(grid.DayLabels, l.FormatDayHeader(day))

		y, m, d := day.Date()
		column := []Cell{}
		for minute := firstMinute; minute < lastMinute; minute += stepMinutes {
			// time.Date normalises minute overflow, which keeps rows on wall-clock times across DST
			slotStart := time.Date(y, m, d, 0, minute, 0, 0, day.Location())
			slotEnd := time.Date(y, m, d, 0, min(minute+stepMinutes, lastMinute), 0, 0, day.Location())
			slot := models.Slot{Start: slotStart, End: slotEnd}

			cell := Cell{
				Slot:    slot,
				Label:   l.FormatTime(slotStart),
				InRange: true,
				Today:   l.SameDay(slotStart, now),
			}
			for _, e := range sorted {
				if !e.Overlaps(slot) {
					continue
				}
				cell.Events = append(cell.Events, e)
				if slot.Contains(e.Start) || (minute == firstMinute && e.Start.Before(slotStart)) {
					cell.Starts = append(cell.Starts, e)
				}
			}
			column = append(column, cell)
		}
		grid.Columns = append(grid.Columns, column)
	}

	if len(grid.Columns) > 0 {
		for _, cell := range grid.Columns[0] {
			grid.RowLabels = append(grid.RowLabels, cell.Label)
		}
	}

	return grid, nil
}

// EventsInRange returns the events overlapping [start, end), sorted by start then title
func EventsInRange(events []models.Event, start, end time.Time) []models.Event {
	window := models.Slot{Start: start, End: end}
	result := []models.Event{}
	for _, e := range sortedEvents(events) {
		if e.Overlaps(window) {
			result = append(result, e)
		}
	}
	return result
}

func sortedEvents(events []models.Event) []models.Event {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b models.Event) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.Title, b.Title)
	})
	return sorted
}
