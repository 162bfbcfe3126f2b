package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/borgmon/slot-calendar/pkg/calendar"
	"github.com/borgmon/slot-calendar/pkg/models"
)

const (
	trayEventLimit    = 5
	trayRefreshPeriod = time.Minute
)

func (sc *SlotCalendar) setupSystemTray() {
	desk, ok := sc.app.(desktop.App)
	if !ok {
		return
	}
	desk.SetSystemTrayIcon(theme.CalendarIcon())
	sc.updateSystemTrayMenu()

	// Started events drop out of the list and it empties at midnight
	sc.trayTicker = time.NewTicker(trayRefreshPeriod)
	go func() {
		for range sc.trayTicker.C {
			fyne.Do(sc.updateSystemTrayMenu)
		}
	}()
}

// updateSystemTrayMenu must run on the UI thread
func (sc *SlotCalendar) updateSystemTrayMenu() {
	desk, ok := sc.app.(desktop.App)
	if !ok {
		return
	}
	desk.SetSystemTrayMenu(sc.trayMenu(time.Now()))
}

func (sc *SlotCalendar) trayMenu(now time.Time) *fyne.Menu {
	menuItems := []*fyne.MenuItem{}

	upcoming := upcomingToday(sc.events.Events(), now, trayEventLimit)
	if len(upcoming) > 0 {
		headerItem := fyne.NewMenuItem("Upcoming Today:", nil)
		headerItem.Disabled = true
		menuItems = append(menuItems, headerItem)

		for _, event := range upcoming {
			eventItem := fyne.NewMenuItem(fmt.Sprintf("  %s - %s",
				event.Start.Format("3:04 PM"),
				truncateString(event.Title, 35)), nil)
			eventItem.Disabled = true
			menuItems = append(menuItems, eventItem)
		}

		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	}

	menuItems = append(menuItems,
		fyne.NewMenuItem("Show Calendar", func() {
			sc.showCalendarWindow()
		}),
		fyne.NewMenuItem("Settings", func() {
			sc.showSettingsWindow()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			sc.quit()
		}),
	)

	return fyne.NewMenu("Slot Calendar", menuItems...)
}

// upcomingToday returns up to limit events starting between now and midnight
func upcomingToday(events []models.Event, now time.Time, limit int) []models.Event {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	upcoming := []models.Event{}
	for _, event := range calendar.EventsInRange(events, now, midnight) {
		if event.Start.Before(now) {
			continue
		}
		upcoming = append(upcoming, event)
		if len(upcoming) >= limit {
			break
		}
	}
	return upcoming
}

// truncateString shortens s to maxLen runes, adding "..." if needed
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
