package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/borgmon/slot-calendar/pkg/audio"
	"github.com/borgmon/slot-calendar/pkg/calendar"
	"github.com/borgmon/slot-calendar/pkg/models"
	"github.com/borgmon/slot-calendar/pkg/store"
	"github.com/borgmon/slot-calendar/pkg/ui/view"
	"github.com/spf13/cobra"
)

const appID = "com.borgmon.slot-calendar"

type SlotCalendar struct {
	app            fyne.App
	config         *models.Config
	configStore    *store.ConfigStore
	events         *store.EventStore
	view           *view.CalendarView
	calendarWindow *CalendarWindow
	settingsWindow *SettingsWindow
	chime          *audio.Chime
	trayTicker     *time.Ticker
}

// startupOptions are the command line flags
type startupOptions struct {
	configPath string
	view       string
	date       string
}

func main() {
	if err := newRootCommand(func() fyne.App { return app.NewWithID(appID) }).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(newApp func() fyne.App) *cobra.Command {
	opts := &startupOptions{}

	cmd := &cobra.Command{
		Use:          "slot-calendar",
		Short:        "A desktop calendar that creates events from selected time slots",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := newSlotCalendar(newApp(), opts)
			if err != nil {
				return err
			}
			sc.run()
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/slot-calendar/config.toml)")
	flags.StringVar(&opts.view, "view", "", "initial view: month, week or day")
	flags.StringVar(&opts.date, "date", "", "initial date as YYYY-MM-DD")

	return cmd
}

func newSlotCalendar(a fyne.App, opts *startupOptions) (*SlotCalendar, error) {
	fileConfig, err := loadFileConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	configStore := store.NewConfigStore(a)
	config := configStore.Load(fileConfig)

	mode, date, err := resolveStartup(opts, config)
	if err != nil {
		return nil, err
	}

	sc := &SlotCalendar{
		app:         a,
		config:      config,
		configStore: configStore,
		events:      store.NewEventStore(),
		chime:       audio.NewChime(),
	}

	// Sync autostart state with config on startup
	if err := setupAutostart(config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	sc.calendarWindow = NewCalendarWindow(a)
	sc.view = view.New(sc.events, view.Options{
		Localizer: newLocalizer(config),
		Prompter:  sc.calendarWindow.prompter,
		Mode:      mode,
		Date:      date,
		Grid:      gridOptions(config),
		OnChange:  sc.onEventAdded,
	})
	sc.calendarWindow.Bind(sc.view, sc.showSettingsWindow)

	return sc, nil
}

// loadFileConfig reads the TOML layer. An empty path means the default location.
func loadFileConfig(path string) (*models.Config, error) {
	if path == "" {
		defaultPath, err := store.DefaultConfigPath()
		if err != nil {
			log.Printf("[CONFIG] %v, using defaults", err)
			return models.DefaultConfig(), nil
		}
		path = defaultPath
	}

	config, err := store.LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	log.Printf("[CONFIG] Loaded %s", path)
	return config, nil
}

// resolveStartup applies the --view and --date flags on top of the config
func resolveStartup(opts *startupOptions, config *models.Config) (models.View, time.Time, error) {
	mode := config.DefaultView
	if opts.view != "" {
		v, err := models.ParseView(opts.view)
		if err != nil {
			return "", time.Time{}, fmt.Errorf("--view: %w", err)
		}
		mode = v
	}

	var date time.Time
	if opts.date != "" {
		d, err := time.ParseInLocation(time.DateOnly, opts.date, time.Local)
		if err != nil {
			return "", time.Time{}, fmt.Errorf("--date: %w", err)
		}
		date = d
	}

	return mode, date, nil
}

func newLocalizer(config *models.Config) *calendar.Localizer {
	return calendar.NewLocalizer(calendar.WithWeekStart(config.WeekStartDay()))
}

func gridOptions(config *models.Config) calendar.TimeGridOptions {
	return calendar.TimeGridOptions{
		Step:         config.SlotDuration(),
		DayStartHour: config.DayStartHour,
		DayEndHour:   config.DayEndHour,
	}
}

func (sc *SlotCalendar) run() {
	sc.view.Initialize()
	sc.calendarWindow.Refresh()
	sc.setupSystemTray()
	sc.calendarWindow.Show()
	sc.app.Run()
}

// onEventAdded runs on the selection goroutine after an event was stored
func (sc *SlotCalendar) onEventAdded(event models.Event) {
	fyne.Do(func() {
		if sc.config.ChimeOnAdd {
			go sc.chime.Ring()
		}
		sc.calendarWindow.Refresh()
		sc.updateSystemTrayMenu()
	})
}

// applyConfig is called by the settings window after a save
func (sc *SlotCalendar) applyConfig(config *models.Config) {
	sc.view.Configure(newLocalizer(config), gridOptions(config))

	fyne.Do(func() {
		sc.config = config
		sc.calendarWindow.Refresh()
		sc.updateSystemTrayMenu()
	})
}

func (sc *SlotCalendar) showSettingsWindow() {
	// If the settings window is already open, just bring it to front
	if sc.settingsWindow != nil {
		sc.settingsWindow.window.RequestFocus()
		sc.settingsWindow.window.Show()
		return
	}

	sc.settingsWindow = NewSettingsWindow(sc.app, sc.config, sc.configStore, sc.applyConfig)
	sc.settingsWindow.window.SetOnClosed(func() {
		sc.settingsWindow = nil
	})
	sc.settingsWindow.Show()
}

func (sc *SlotCalendar) showCalendarWindow() {
	sc.calendarWindow.Show()
	sc.calendarWindow.window.RequestFocus()
}

func (sc *SlotCalendar) quit() {
	if sc.trayTicker != nil {
		sc.trayTicker.Stop()
	}
	sc.chime.Close()
	sc.app.Quit()
}
