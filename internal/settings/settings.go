// Package settings stores process-wide preferences as an explicit value
// with load/save functions taking a path parameter. There is no ambient
// global; callers thread the value through.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/sheet"
)

// Bounds for clamped numeric settings.
const (
	MinAutosaveIntervalSec = 3
	MinExpandDays          = 7
	MaxExpandDays          = 120
	DefaultExpandDays      = 61
)

// Settings holds the persisted preferences. Unknown keys in the file are
// ignored and missing keys keep their defaults, so older settings files
// remain loadable.
type Settings struct {
	FontPt              int            `json:"font_pt"`
	Columns             []sheet.Column `json:"columns"`
	Holidays            string         `json:"holidays"`
	HolidayRules        []string       `json:"holiday_rules,omitempty"`
	AutosaveEnabled     bool           `json:"autosave_enabled"`
	AutosaveIntervalSec int            `json:"autosave_interval_sec"`
	AutosavePath        string         `json:"autosave_path"`
	LastFile            string         `json:"last_file,omitempty"`
	Theme               string         `json:"theme"`
	ExpandDaysEach      int            `json:"expand_days_each"`
	AlwaysTodayTop      bool           `json:"always_today_top"`
}

// Dir returns the application's config directory under the home dir.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".d-scheduler")
}

// Path returns the settings file location.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "settings.json")
}

// DefaultDocumentPath returns the fallback document location used when no
// document path is configured.
func DefaultDocumentPath(homeDir string) string {
	return filepath.Join(Dir(homeDir), "autosave.json")
}

// Default returns the built-in settings for the given home directory.
func Default(homeDir string) Settings {
	return Settings{
		FontPt:              11,
		Columns:             sheet.DefaultColumns(),
		AutosaveEnabled:     true,
		AutosaveIntervalSec: 30,
		AutosavePath:        DefaultDocumentPath(homeDir),
		Theme:               "light",
		ExpandDaysEach:      DefaultExpandDays,
		AlwaysTodayTop:      true,
	}
}

// Load reads settings from path. A missing file yields the defaults with
// no error. An unreadable or corrupt file yields the defaults wholesale,
// never a partial merge, along with a diagnostic error the caller may
// surface as a warning.
func Load(path, homeDir string) (Settings, error) {
	defaults := Default(homeDir)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("reading settings: %w", err)
	}

	// Unmarshal onto a pre-filled copy so missing keys keep defaults.
	s := defaults
	if err := json.Unmarshal(data, &s); err != nil {
		return defaults, fmt.Errorf("parsing settings: %w", err)
	}
	s.normalize(defaults)
	return s, nil
}

// Save writes settings to path, creating the parent directory if needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// normalize clamps out-of-range values and restores defaults for fields a
// file set to something unusable.
func (s *Settings) normalize(defaults Settings) {
	if s.FontPt <= 0 {
		s.FontPt = defaults.FontPt
	}
	valid := s.Columns[:0]
	for _, c := range s.Columns {
		if c.ID == "" {
			continue
		}
		if c.Title == "" {
			c.Title = c.ID
		}
		c.Width = sheet.ClampWidth(c.Width)
		valid = append(valid, c)
	}
	s.Columns = valid
	if len(s.Columns) == 0 {
		s.Columns = defaults.Columns
	}
	if s.AutosaveIntervalSec < MinAutosaveIntervalSec {
		s.AutosaveIntervalSec = MinAutosaveIntervalSec
	}
	if s.AutosavePath == "" {
		s.AutosavePath = defaults.AutosavePath
	}
	if s.Theme != "light" && s.Theme != "dark" {
		s.Theme = defaults.Theme
	}
	if s.ExpandDaysEach < MinExpandDays {
		s.ExpandDaysEach = MinExpandDays
	}
	if s.ExpandDaysEach > MaxExpandDays {
		s.ExpandDaysEach = MaxExpandDays
	}
}
