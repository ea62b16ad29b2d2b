package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// LayoutISO is the canonical external form of a calendar date.
const LayoutISO = "2006-01-02"

// Midnight truncates t to 00:00:00 UTC. All dates are handled as UTC
// midnights internally so day arithmetic never crosses a DST boundary.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Format renders a date in ISO form.
func Format(t time.Time) string {
	return t.Format(LayoutISO)
}

// ParseISO parses a strict YYYY-MM-DD date. Tokens that do not round-trip
// back to the same string (wrong padding, out-of-range days the lenient
// parser would shift) are rejected.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(LayoutISO, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	if t.Format(LayoutISO) != s {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// IsISO reports whether s is a valid YYYY-MM-DD calendar date.
func IsISO(s string) bool {
	_, err := ParseISO(s)
	return err == nil
}

// DaysBetween returns the number of days from a to b. Both are expected to
// be UTC midnights; the result is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// ParseDate parses a date expression relative to the current time.
func ParseDate(s string) (time.Time, error) {
	return parseDate(s, time.Now())
}

// parseDate parses a date expression relative to now.
// Supports: "today", "tomorrow", "yesterday", weekday names with an
// optional "next " prefix, "2024-01-15", "Jan 2", "Jan 2 2006",
// "2 Jan", "2 Jan 2006" and the long month-name variants.
func parseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	switch s {
	case "today":
		return Midnight(now), nil
	case "tomorrow":
		return Midnight(now).AddDate(0, 0, 1), nil
	case "yesterday":
		return Midnight(now).AddDate(0, 0, -1), nil
	}

	// Weekday names (with optional "next " prefix)
	cleaned := strings.TrimPrefix(s, "next ")
	if wd, ok := parseWeekday(cleaned); ok {
		return nextWeekday(now, wd), nil
	}

	layouts := []string{
		LayoutISO,
		"jan 2",
		"jan 2 2006",
		"january 2",
		"january 2 2006",
		"2 jan",
		"2 jan 2006",
		"2 january",
		"2 january 2006",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			// For layouts without a year, use the current year
			if !strings.Contains(layout, "2006") {
				t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			}
			return Midnight(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdays[s]
	return wd, ok
}

// nextWeekday returns the next occurrence of the given weekday after now.
// If now is that weekday, it returns the following week.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	today := Midnight(now)
	daysAhead := int(wd) - int(today.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return today.AddDate(0, 0, daysAhead)
}
