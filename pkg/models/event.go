package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// SampleTitle is the title of the event seeded when the calendar opens
const SampleTitle = "Sample Event"

var (
	ErrInvalidSlot = errors.New("slot ends before it starts")
	ErrEmptyTitle  = errors.New("event title is empty")
)

// Event represents a titled time interval on the calendar
type Event struct {
	ID    string    // UUID assigned at creation
	Title string    // Display title, never blank
	Start time.Time // Inclusive start
	End   time.Time // Exclusive end, same convention as Slot
}

// Slot is an empty, selectable interval on the calendar grid
type Slot struct {
	Start time.Time
	End   time.Time
}

// NewSlot builds a slot starting at start and lasting d
func NewSlot(start time.Time, d time.Duration) Slot {
	return Slot{Start: start, End: start.Add(d)}
}

// Duration returns the length of the slot
func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Contains reports whether t falls in [Start, End)
func (s Slot) Contains(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}

// Validate checks that the slot does not end before it starts
func (s Slot) Validate() error {
	if s.End.Before(s.Start) {
		return fmt.Errorf("%w: start %s, end %s", ErrInvalidSlot,
			s.Start.Format(time.RFC3339), s.End.Format(time.RFC3339))
	}
	return nil
}

// Duration returns the length of the event
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Overlaps reports whether the event is visible in the given slot.
// Zero-length events belong to the slot containing their start.
func (e Event) Overlaps(s Slot) bool {
	if e.Start.Equal(e.End) {
		return s.Contains(e.Start)
	}
	return e.Start.Before(s.End) && e.End.After(s.Start)
}

// Validate checks the event invariants
func (e Event) Validate() error {
	if IsBlankTitle(e.Title) {
		return ErrEmptyTitle
	}
	return Slot{Start: e.Start, End: e.End}.Validate()
}

// IsBlankTitle reports whether a title is empty once whitespace is trimmed
func IsBlankTitle(title string) bool {
	return strings.TrimSpace(title) == ""
}
