package calendar

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/borgmon/slot-calendar/pkg/models"
	"github.com/emersion/go-ical"
)

const productID = "-//borgmon//slot-calendar//EN"

// ErrNothingToExport is returned when there are no events to write
var ErrNothingToExport = errors.New("no events to export")

// ExportICS writes events as a single VCALENDAR. All times are written in UTC.
func ExportICS(w io.Writer, events []models.Event, stamp time.Time) error {
	if len(events) == 0 {
		return ErrNothingToExport
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, e := range events {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("export event %q: %w", e.ID, err)
		}

		vevent := ical.NewEvent()
		vevent.Props.SetText(ical.PropUID, e.ID)
		vevent.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		vevent.Props.SetDateTime(ical.PropDateTimeStart, e.Start.UTC())
		vevent.Props.SetDateTime(ical.PropDateTimeEnd, e.End.UTC())
		vevent.Props.SetText(ical.PropSummary, e.Title)

		cal.Children = append(cal.Children, vevent.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}

	log.Printf("[EXPORT] Wrote %d events", len(events))
	return nil
}
