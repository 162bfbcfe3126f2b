package store

import (
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/borgmon/slot-calendar/pkg/models"
	"github.com/google/uuid"
)

// EventStore holds the calendar's events for the lifetime of the window.
// The backing slice is replaced on every change, never written in place,
// so a snapshot handed out earlier keeps its contents.
type EventStore struct {
	mu     sync.RWMutex
	events []models.Event
}

// NewEventStore creates an empty EventStore
func NewEventStore() *EventStore {
	return &EventStore{}
}

// Seed replaces the event list with a single sample event from now to now+1h
func (es *EventStore) Seed(now time.Time) models.Event {
	sample := models.Event{
		ID:    uuid.New().String(),
		Title: models.SampleTitle,
		Start: now,
		End:   now.Add(time.Hour),
	}

	es.mu.Lock()
	es.events = []models.Event{sample}
	es.mu.Unlock()

	log.Printf("[SEED] %q from %s to %s", sample.Title,
		sample.Start.Format("2006-01-02 15:04"), sample.End.Format("2006-01-02 15:04"))
	return sample
}

// Add appends a new event spanning slot. Blank titles and inverted slots are rejected.
func (es *EventStore) Add(slot models.Slot, title string) (models.Event, error) {
	event := models.Event{
		ID:    uuid.New().String(),
		Title: title,
		Start: slot.Start,
		End:   slot.End,
	}
	if err := event.Validate(); err != nil {
		return models.Event{}, fmt.Errorf("add event: %w", err)
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	next := make([]models.Event, len(es.events), len(es.events)+1)
	copy(next, es.events)
	es.events = append(next, event)

	return event, nil
}

// Events returns a copy of all events in insertion order
func (es *EventStore) Events() []models.Event {
	es.mu.RLock()
	defer es.mu.RUnlock()

	return slices.Clone(es.events)
}

// Len returns the number of events
func (es *EventStore) Len() int {
	es.mu.RLock()
	defer es.mu.RUnlock()

	return len(es.events)
}

// Get returns an event by ID
func (es *EventStore) Get(id string) (models.Event, bool) {
	es.mu.RLock()
	defer es.mu.RUnlock()

	for _, e := range es.events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}
