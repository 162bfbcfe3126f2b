package store

import (
	"sync"
	"testing"
	"time"

	"github.com/borgmon/slot-calendar/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedTime = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

func TestSeedSetsSingleSampleEvent(t *testing.T) {
	es := NewEventStore()
	_, err := es.Add(models.NewSlot(seedTime, time.Hour), "Stale")
	require.NoError(t, err)

	sample := es.Seed(seedTime)

	events := es.Events()
	require.Len(t, events, 1)
	assert.Equal(t, sample, events[0])
	assert.Equal(t, models.SampleTitle, sample.Title)
	assert.Equal(t, time.Hour, sample.Duration())
	assert.NotEmpty(t, sample.ID)
}

func TestAddAppendsInOrder(t *testing.T) {
	es := NewEventStore()
	es.Seed(seedTime)

	slot := models.NewSlot(seedTime.Add(2*time.Hour), time.Hour)
	lunch, err := es.Add(slot, "Lunch")
	require.NoError(t, err)

	events := es.Events()
	require.Len(t, events, 2)
	assert.Equal(t, models.SampleTitle, events[0].Title)
	assert.Equal(t, lunch, events[1])
	assert.Equal(t, slot.Start, events[1].Start)
	assert.Equal(t, slot.End, events[1].End)
	assert.Equal(t, "Lunch", events[1].Title)
}

func TestAddRejectsBlankTitleAndInvertedSlot(t *testing.T) {
	es := NewEventStore()
	es.Seed(seedTime)
	before := es.Events()

	_, err := es.Add(models.NewSlot(seedTime, time.Hour), "   ")
	assert.ErrorIs(t, err, models.ErrEmptyTitle)

	_, err = es.Add(models.Slot{Start: seedTime, End: seedTime.Add(-time.Hour)}, "Backwards")
	assert.ErrorIs(t, err, models.ErrInvalidSlot)

	assert.Equal(t, before, es.Events())
}

func TestSnapshotsAreNotAffectedByLaterAdds(t *testing.T) {
	es := NewEventStore()
	es.Seed(seedTime)

	snapshot := es.Events()
	_, err := es.Add(models.NewSlot(seedTime.Add(time.Hour), time.Hour), "Standup")
	require.NoError(t, err)

	assert.Len(t, snapshot, 1)

	snapshot[0].Title = "mutated"
	got, ok := es.Get(es.Events()[0].ID)
	require.True(t, ok)
	assert.Equal(t, models.SampleTitle, got.Title)
}

func TestConcurrentAdds(t *testing.T) {
	es := NewEventStore()
	es.Seed(seedTime)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := es.Add(models.NewSlot(seedTime.Add(time.Duration(i)*time.Hour), time.Hour), "Busy")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 51, es.Len())
	assert.Equal(t, models.SampleTitle, es.Events()[0].Title)
}

func TestGetMissing(t *testing.T) {
	_, ok := NewEventStore().Get("nope")
	assert.False(t, ok)
}
