package main

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/slot-calendar/pkg/calendar"
	"github.com/borgmon/slot-calendar/pkg/models"
	"github.com/borgmon/slot-calendar/pkg/platform"
)

// dialogPrompter asks for an event title with a form dialog on the calendar
// window. Prompt blocks the calling goroutine, so it must not run on the UI thread.
type dialogPrompter struct {
	window fyne.Window

	mu   sync.Mutex
	open *openPrompt
}

type openPrompt struct {
	form  *dialog.FormDialog
	entry *widget.Entry
}

type promptReply struct {
	text string
	ok   bool
}

func (p *dialogPrompter) Prompt(message string) (string, bool) {
	replies := make(chan promptReply, 1)

	fyne.Do(func() {
		platform.BringToFront()
		p.window.Show()

		entry := widget.NewEntry()
		entry.SetPlaceHolder("Event name")

		items := []*widget.FormItem{
			widget.NewFormItem("Name", entry),
		}
		var form *dialog.FormDialog
		form = dialog.NewForm(message, "Add", "Cancel", items, func(confirmed bool) {
			p.mu.Lock()
			if p.open != nil && p.open.form == form {
				p.open = nil
			}
			p.mu.Unlock()
			replies <- promptReply{text: entry.Text, ok: confirmed}
		}, p.window)
		entry.OnSubmitted = func(string) {
			form.Submit()
		}

		form.Resize(fyne.NewSize(420, form.MinSize().Height))
		form.Show()
		p.window.Canvas().Focus(entry)

		p.mu.Lock()
		p.open = &openPrompt{form: form, entry: entry}
		p.mu.Unlock()
	})

	reply := <-replies
	return reply.text, reply.ok
}

// current returns the prompt on screen, or nil
func (p *dialogPrompter) current() *openPrompt {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

// cancel dismisses an open prompt as if Cancel was pressed. Must run on the UI thread.
func (p *dialogPrompter) cancel() {
	if open := p.current(); open != nil {
		open.form.Hide()
	}
}

func (cw *CalendarWindow) showExportDialog() {
	events := cw.view.Events()
	if len(events) == 0 {
		dialog.ShowError(calendar.ErrNothingToExport, cw.window)
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, cw.window)
			return
		}
		if writer == nil {
			// Cancelled
			return
		}

		if err := exportEvents(writer, events); err != nil {
			log.Printf("[EXPORT] %v", err)
			dialog.ShowError(err, cw.window)
			return
		}

		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Saved %d events to %s", len(events), writer.URI().Name()), cw.window)
	}, cw.window)

	save.SetFileName("calendar.ics")
	save.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
	save.Show()
}

// exportEvents writes events as iCalendar and closes w
func exportEvents(w io.WriteCloser, events []models.Event) error {
	if err := calendar.ExportICS(w, events, time.Now()); err != nil {
		w.Close()
		return fmt.Errorf("export calendar: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("export calendar: %w", err)
	}
	return nil
}
