package calendar

import (
	"fmt"
	"time"

	"github.com/borgmon/slot-calendar/pkg/models"
)

// Localizer is the date utility behind the grid: it owns "now", date
// arithmetic and the display formats used in headers and labels.
type Localizer struct {
	clock     func() time.Time
	weekStart time.Weekday
}

// Option configures a Localizer
type Option func(*Localizer)

// WithClock replaces time.Now, mainly for tests
func WithClock(clock func() time.Time) Option {
	return func(l *Localizer) {
		l.clock = clock
	}
}

// WithWeekStart sets the first column of week rows
func WithWeekStart(day time.Weekday) Option {
	return func(l *Localizer) {
		l.weekStart = day
	}
}

// NewLocalizer creates a Localizer using the wall clock and Sunday week starts
func NewLocalizer(opts ...Option) *Localizer {
	l := &Localizer{
		clock:     time.Now,
		weekStart: time.Sunday,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Now returns the current time
func (l *Localizer) Now() time.Time {
	return l.clock()
}

// Add offsets t by d
func (l *Localizer) Add(t time.Time, d time.Duration) time.Time {
	return t.Add(d)
}

// WeekStart returns the configured first weekday
func (l *Localizer) WeekStart() time.Weekday {
	return l.weekStart
}

// StartOfDay returns local midnight of t's day
func (l *Localizer) StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the first day of t's week
func (l *Localizer) StartOfWeek(t time.Time) time.Time {
	day := l.StartOfDay(t)
	offset := (int(day.Weekday()) - int(l.weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns midnight of the first day of t's month
func (l *Localizer) StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day
func (l *Localizer) SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// Range returns the half-open interval shown by view around date.
// Month ranges cover the full six-week grid, not just the month.
func (l *Localizer) Range(view models.View, date time.Time) (time.Time, time.Time) {
	switch view {
	case models.ViewWeek:
		start := l.StartOfWeek(date)
		return start, start.AddDate(0, 0, 7)
	case models.ViewDay:
		start := l.StartOfDay(date)
		return start, start.AddDate(0, 0, 1)
	default:
		start := l.StartOfWeek(l.StartOfMonth(date))
		return start, start.AddDate(0, 0, monthGridDays)
	}
}

// Navigate moves date by steps months, weeks or days depending on view
func (l *Localizer) Navigate(view models.View, date time.Time, steps int) time.Time {
	switch view {
	case models.ViewWeek:
		return l.StartOfDay(date).AddDate(0, 0, 7*steps)
	case models.ViewDay:
		return l.StartOfDay(date).AddDate(0, 0, steps)
	default:
		// Anchor on the 1st so Jan 31 + 1 month does not skip February
		return l.StartOfMonth(date).AddDate(0, steps, 0)
	}
}

// Title returns the toolbar label for the range shown by view
func (l *Localizer) Title(view models.View, date time.Time) string {
	switch view {
	case models.ViewWeek:
		start, end := l.Range(view, date)
		last := end.AddDate(0, 0, -1)
		switch {
		case start.Year() != last.Year():
			return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), last.Format("Jan 2, 2006"))
		case start.Month() != last.Month():
			return fmt.Sprintf("%s - %s", start.Format("Jan 2"), last.Format("Jan 2, 2006"))
		default:
			return fmt.Sprintf("%s - %s", start.Format("Jan 2"), last.Format("2, 2006"))
		}
	case models.ViewDay:
		return date.Format("Monday, January 2, 2006")
	default:
		return date.Format("January 2006")
	}
}

// WeekdayNames returns short weekday names starting at the week start
func (l *Localizer) WeekdayNames() []string {
	names := make([]string, 7)
	for i := range names {
		names[i] = time.Weekday((int(l.weekStart) + i) % 7).String()[:3]
	}
	return names
}

// FormatTime formats a time-of-day label
func (l *Localizer) FormatTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatDayHeader formats a column header in the time grid
func (l *Localizer) FormatDayHeader(t time.Time) string {
	return t.Format("Mon 1/2")
}

// FormatRange formats an event or slot interval for lists and prompts
func (l *Localizer) FormatRange(start, end time.Time) string {
	midnight := l.StartOfDay(start)
	nextMidnight := midnight.AddDate(0, 0, 1)

	if start.Equal(midnight) && end.Equal(nextMidnight) {
		return start.Format("Mon Jan 2") + " (all day)"
	}
	if l.SameDay(start, end) || end.Equal(nextMidnight) {
		return fmt.Sprintf("%s, %s - %s", start.Format("Mon Jan 2"), l.FormatTime(start), l.FormatTime(end))
	}
	return fmt.Sprintf("%s - %s", start.Format("Mon Jan 2, 3:04 PM"), end.Format("Mon Jan 2, 3:04 PM"))
}
