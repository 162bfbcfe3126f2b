package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

func TestSlotValidate(t *testing.T) {
	assert.NoError(t, NewSlot(base, time.Hour).Validate())
	assert.NoError(t, Slot{Start: base, End: base}.Validate())

	err := Slot{Start: base, End: base.Add(-time.Minute)}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestSlotContainsIsHalfOpen(t *testing.T) {
	s := NewSlot(base, 30*time.Minute)

	assert.True(t, s.Contains(base))
	assert.True(t, s.Contains(base.Add(29*time.Minute)))
	assert.False(t, s.Contains(base.Add(30*time.Minute)))
	assert.False(t, s.Contains(base.Add(-time.Second)))
}

func TestEventOverlaps(t *testing.T) {
	slot := NewSlot(base, time.Hour)

	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"inside", Event{Start: base.Add(10 * time.Minute), End: base.Add(20 * time.Minute)}, true},
		{"spans", Event{Start: base.Add(-time.Hour), End: base.Add(2 * time.Hour)}, true},
		{"ends at slot start", Event{Start: base.Add(-time.Hour), End: base}, false},
		{"starts at slot end", Event{Start: base.Add(time.Hour), End: base.Add(2 * time.Hour)}, false},
		{"zero length at start", Event{Start: base, End: base}, true},
		{"zero length at end", Event{Start: base.Add(time.Hour), End: base.Add(time.Hour)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.Overlaps(slot))
		})
	}
}

func TestEventValidate(t *testing.T) {
	ok := Event{Title: "Lunch", Start: base, End: base.Add(time.Hour)}
	assert.NoError(t, ok.Validate())

	blank := Event{Title: "  \t", Start: base, End: base.Add(time.Hour)}
	assert.ErrorIs(t, blank.Validate(), ErrEmptyTitle)

	backwards := Event{Title: "Lunch", Start: base, End: base.Add(-time.Hour)}
	assert.ErrorIs(t, backwards.Validate(), ErrInvalidSlot)
}
