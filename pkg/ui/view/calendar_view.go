package view

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/borgmon/slot-calendar/pkg/calendar"
	"github.com/borgmon/slot-calendar/pkg/models"
	"github.com/borgmon/slot-calendar/pkg/store"
)

// State is the lifecycle state of a CalendarView
type State int

const (
	StateUninitialized State = iota // created, not yet shown
	StateReady                      // seeded and accepting selections
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Prompter asks the user for one line of text. It blocks until the user
// answers. ok is false when the prompt was cancelled or could not be shown.
type Prompter interface {
	Prompt(message string) (text string, ok bool)
}

// PromptFunc adapts a function to the Prompter interface
type PromptFunc func(message string) (string, bool)

// Prompt implements Prompter
func (f PromptFunc) Prompt(message string) (string, bool) {
	return f(message)
}

// Options configures a CalendarView
type Options struct {
	Localizer *calendar.Localizer
	Prompter  Prompter
	Mode      models.View
	Date      time.Time // focused date, defaults to now
	Grid      calendar.TimeGridOptions

	// Dispatch runs slot selections started from the grid. It defaults to
	// a new goroutine so the blocking prompt never runs on the UI thread.
	Dispatch func(func())

	// OnChange is called after an event has been added
	OnChange func(models.Event)
}

// CalendarView owns the event list shown in the calendar window and turns
// slot selections into new events
type CalendarView struct {
	store     *store.EventStore
	prompter  Prompter
	dispatch  func(func())
	onChange  func(models.Event)
	prompting sync.Mutex // held while a prompt is open

	mu        sync.RWMutex
	state     State
	localizer *calendar.Localizer
	gridOpts  calendar.TimeGridOptions
	mode      models.View
	date      time.Time
}

// New creates a CalendarView backed by es
func New(es *store.EventStore, opts Options) *CalendarView {
	if opts.Localizer == nil {
		opts.Localizer = calendar.NewLocalizer()
	}
	if opts.Prompter == nil {
		opts.Prompter = PromptFunc(func(string) (string, bool) { return "", false })
	}
	if opts.Mode == "" {
		opts.Mode = models.ViewMonth
	}
	if opts.Grid.Step == 0 {
		opts.Grid = calendar.TimeGridOptions{Step: 30 * time.Minute, DayStartHour: 0, DayEndHour: 24}
	}
	if opts.Dispatch == nil {
		opts.Dispatch = func(f func()) { go f() }
	}

	return &CalendarView{
		store:     es,
		prompter:  opts.Prompter,
		dispatch:  opts.Dispatch,
		onChange:  opts.OnChange,
		localizer: opts.Localizer,
		gridOpts:  opts.Grid,
		mode:      opts.Mode,
		date:      opts.Date,
	}
}

// Initialize seeds the view with the sample event. Only the first call has any effect.
func (v *CalendarView) Initialize() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state == StateReady {
		return
	}

	now := v.localizer.Now()
	v.store.Seed(now)
	if v.date.IsZero() {
		v.date = now
	}
	v.state = StateReady
}

// State returns the lifecycle state
func (v *CalendarView) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// OnSlotSelected prompts for a title and appends an event spanning slot.
// It reports the new event, or false when nothing was added: the prompt
// was cancelled, the title was blank, another prompt is already open, or
// the view is not ready.
func (v *CalendarView) OnSlotSelected(slot models.Slot) (models.Event, bool) {
	if v.State() != StateReady {
		log.Printf("[SLOT] Selection ignored, calendar not initialized")
		return models.Event{}, false
	}
	if err := slot.Validate(); err != nil {
		log.Printf("[SLOT] Selection ignored: %v", err)
		return models.Event{}, false
	}

	if !v.prompting.TryLock() {
		log.Printf("[SLOT] Selection ignored, a prompt is already open")
		return models.Event{}, false
	}
	title, ok := v.prompter.Prompt(v.PromptMessage(slot))
	v.prompting.Unlock()

	l := v.Localizer()

	if !ok {
		log.Printf("[SLOT] Prompt cancelled for %s", l.FormatRange(slot.Start, slot.End))
		return models.Event{}, false
	}
	if models.IsBlankTitle(title) {
		log.Printf("[SLOT] Empty title, no event created")
		return models.Event{}, false
	}

	event, err := v.store.Add(slot, title)
	if err != nil {
		log.Printf("[SLOT] Could not add event: %v", err)
		return models.Event{}, false
	}

	log.Printf("[SLOT] Added %q (%s)", event.Title, l.FormatRange(event.Start, event.End))
	if v.onChange != nil {
		v.onChange(event)
	}
	return event, true
}

// PromptMessage returns the text shown when asking for a title
func (v *CalendarView) PromptMessage(slot models.Slot) string {
	return fmt.Sprintf("New event: %s", v.Localizer().FormatRange(slot.Start, slot.End))
}

// Events returns a snapshot of all events in insertion order
func (v *CalendarView) Events() []models.Event {
	return v.store.Events()
}

// VisibleEvents returns the events overlapping the visible range, sorted by start
func (v *CalendarView) VisibleEvents() []models.Event {
	start, end := v.Range()
	return calendar.EventsInRange(v.store.Events(), start, end)
}

// Range returns the interval covered by the current mode and date
func (v *CalendarView) Range() (time.Time, time.Time) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.localizer.Range(v.mode, v.focusedDate())
}

// Title returns the label of the visible range
func (v *CalendarView) Title() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.localizer.Title(v.mode, v.focusedDate())
}

// Mode returns the active layout
func (v *CalendarView) Mode() models.View {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.mode
}

// SetMode switches between month, week and day layouts
func (v *CalendarView) SetMode(mode models.View) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mode = mode
}

// Date returns the focused date
func (v *CalendarView) Date() time.Time {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.focusedDate()
}

// SetDate focuses the view on t
func (v *CalendarView) SetDate(t time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.date = t
}

// Navigate moves the focused date by steps months, weeks or days
func (v *CalendarView) Navigate(steps int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.date = v.localizer.Navigate(v.mode, v.focusedDate(), steps)
}

// Today focuses the view on the current date
func (v *CalendarView) Today() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.date = v.localizer.Now()
}

// Localizer returns the date utility used by the view
func (v *CalendarView) Localizer() *calendar.Localizer {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.localizer
}

// Configure swaps the localizer and time-grid options after a settings change
func (v *CalendarView) Configure(l *calendar.Localizer, opts calendar.TimeGridOptions) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.localizer = l
	v.gridOpts = opts
}

// focusedDate must be called with mu held
func (v *CalendarView) focusedDate() time.Time {
	if v.date.IsZero() {
		return v.localizer.Now()
	}
	return v.date
}
