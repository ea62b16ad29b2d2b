package cli

import (
	"fmt"
	"strconv"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/settings"
	"github.com/spf13/cobra"
)

var configCmd = GroupCommand{
	Use:   "config",
	Short: "Inspect and change settings",
	Subcommands: []*cobra.Command{
		configGetCmd,
		configSetCmd,
		configResetCmd,
		configPathCmd,
	},
}.Build()

// configKeys maps a settable key to accessor functions over Settings.
// Set validates and clamps; Get renders the current value.
var configKeys = map[string]struct {
	get func(s *settings.Settings) string
	set func(s *settings.Settings, value string) error
}{
	"font_pt": {
		get: func(s *settings.Settings) string { return strconv.Itoa(s.FontPt) },
		set: func(s *settings.Settings, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return fmt.Errorf("font_pt must be a positive integer")
			}
			s.FontPt = n
			return nil
		},
	},
	"theme": {
		get: func(s *settings.Settings) string { return s.Theme },
		set: func(s *settings.Settings, v string) error {
			if v != "light" && v != "dark" {
				return fmt.Errorf("theme must be 'light' or 'dark'")
			}
			s.Theme = v
			return nil
		},
	},
	"autosave_enabled": {
		get: func(s *settings.Settings) string { return strconv.FormatBool(s.AutosaveEnabled) },
		set: func(s *settings.Settings, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("autosave_enabled must be true or false")
			}
			s.AutosaveEnabled = b
			return nil
		},
	},
	"autosave_interval_sec": {
		get: func(s *settings.Settings) string { return strconv.Itoa(s.AutosaveIntervalSec) },
		set: func(s *settings.Settings, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("autosave_interval_sec must be an integer")
			}
			if n < settings.MinAutosaveIntervalSec {
				n = settings.MinAutosaveIntervalSec
			}
			s.AutosaveIntervalSec = n
			return nil
		},
	},
	"autosave_path": {
		get: func(s *settings.Settings) string { return s.AutosavePath },
		set: func(s *settings.Settings, v string) error {
			if v == "" {
				return fmt.Errorf("autosave_path cannot be empty")
			}
			s.AutosavePath = v
			return nil
		},
	},
	"expand_days_each": {
		get: func(s *settings.Settings) string { return strconv.Itoa(s.ExpandDaysEach) },
		set: func(s *settings.Settings, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("expand_days_each must be an integer")
			}
			if n < settings.MinExpandDays {
				n = settings.MinExpandDays
			}
			if n > settings.MaxExpandDays {
				n = settings.MaxExpandDays
			}
			s.ExpandDaysEach = n
			return nil
		},
	},
	"always_today_top": {
		get: func(s *settings.Settings) string { return strconv.FormatBool(s.AlwaysTodayTop) },
		set: func(s *settings.Settings, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("always_today_top must be true or false")
			}
			s.AlwaysTodayTop = b
			return nil
		},
	},
}

func settingsOnlyFlags() []StringFlag {
	return []StringFlag{
		{Name: "settings", Usage: "settings file path (default: ~/.d-scheduler/settings.json)"},
	}
}
