package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/slot-calendar/pkg/models"
)

// EventList is a read-only agenda of events with a heading and an empty state
type EventList struct {
	list        *widget.List
	events      []models.Event
	renderItem  func(models.Event) string
	onSelected  func(models.Event)
	emptyLabel  *widget.Label
	body        *fyne.Container
	headerLabel *widget.Label
}

// EventListConfig configures the event list
type EventListConfig struct {
	Title      string                    // Heading shown above the list
	EmptyText  string                    // Shown when there are no events
	RenderItem func(models.Event) string // Renders an event for display
	OnSelected func(models.Event)        // Called when an event is picked (optional)
}

// NewEventList creates a new event list component
func NewEventList(config EventListConfig) (*EventList, *fyne.Container) {
	el := &EventList{
		renderItem: config.RenderItem,
		onSelected: config.OnSelected,
	}
	if el.renderItem == nil {
		el.renderItem = func(e models.Event) string { return e.Title }
	}

	el.list = widget.NewList(
		func() int {
			return len(el.events)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("template")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			if i < len(el.events) {
				label.SetText(el.renderItem(el.events[i]))
			}
		})

	el.list.OnSelected = func(id widget.ListItemID) {
		if id < len(el.events) && el.onSelected != nil {
			el.onSelected(el.events[id])
		}
		el.list.UnselectAll()
	}

	el.emptyLabel = widget.NewLabel(config.EmptyText)
	el.emptyLabel.Wrapping = fyne.TextWrapWord
	el.emptyLabel.Importance = widget.LowImportance

	el.headerLabel = widget.NewLabel(config.Title)
	el.headerLabel.TextStyle.Bold = true

	el.body = container.NewStack(el.emptyLabel)

	listContainer := container.NewBorder(
		container.NewVBox(el.headerLabel, widget.NewSeparator()),
		nil,
		nil,
		nil,
		el.body,
	)

	return el, listContainer
}

// SetEvents replaces the displayed events
func (el *EventList) SetEvents(events []models.Event) {
	el.events = events

	if len(events) == 0 {
		el.body.Objects = []fyne.CanvasObject{el.emptyLabel}
	} else {
		el.body.Objects = []fyne.CanvasObject{el.list}
	}
	el.body.Refresh()
	el.list.Refresh()
}

// SetTitle updates the heading
func (el *EventList) SetTitle(title string) {
	el.headerLabel.SetText(title)
}

// Events returns the displayed events
func (el *EventList) Events() []models.Event {
	return el.events
}
