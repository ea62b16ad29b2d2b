package holiday

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/teambition/rrule-go"
)

// ParseRule parses a recurring holiday rule: either a raw RRULE string
// (with or without the "RRULE:" prefix) or a small natural-language subset
// such as "every sunday" or "every weekend". Returns the canonical RRULE
// string stored in settings.
func ParseRule(s string) (string, error) {
	r, err := parseRule(s)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func parseRule(s string) (*rrule.RRule, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	// Raw RRULE passthrough
	if strings.Contains(s, "freq=") {
		raw := strings.ToUpper(s)
		raw = strings.TrimPrefix(raw, "RRULE:")
		r, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RRULE %q: %w", raw, err)
		}
		return r, nil
	}

	switch s {
	case "every day", "daily":
		return rrule.NewRRule(rrule.ROption{
			Freq: rrule.DAILY,
		})

	case "every weekend", "weekends":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.SA, rrule.SU},
		})
	}

	// "every monday", "every tuesday", etc.
	if strings.HasPrefix(s, "every ") {
		if wd, ok := ruleWeekday(strings.TrimPrefix(s, "every ")); ok {
			return rrule.NewRRule(rrule.ROption{
				Freq:      rrule.WEEKLY,
				Byweekday: []rrule.Weekday{wd},
			})
		}
	}

	return nil, fmt.Errorf("unrecognized rule %q", s)
}

var ruleWeekdays = map[string]rrule.Weekday{
	"sunday":    rrule.SU,
	"monday":    rrule.MO,
	"tuesday":   rrule.TU,
	"wednesday": rrule.WE,
	"thursday":  rrule.TH,
	"friday":    rrule.FR,
	"saturday":  rrule.SA,
}

func ruleWeekday(s string) (rrule.Weekday, bool) {
	wd, ok := ruleWeekdays[s]
	return wd, ok
}

// ExpandRules expands stored RRULE strings over the inclusive [from, to]
// date window and returns the matching dates as UTC midnights, sorted and
// deduplicated. Unparseable rules are skipped.
func ExpandRules(rules []string, from, to time.Time) []time.Time {
	from = dateutil.Midnight(from)
	// Cover the full final day.
	until := dateutil.Midnight(to).Add(24*time.Hour - time.Second)

	seen := make(map[string]bool)
	var dates []time.Time
	for _, raw := range rules {
		r, err := rrule.StrToRRule(raw)
		if err != nil {
			continue
		}
		// For unbounded rules (no DTSTART), anchor the expansion at the
		// window start so Between() covers the requested range.
		opts := r.OrigOptions
		if opts.Dtstart.IsZero() {
			opts.Dtstart = from
			if r, err = rrule.NewRRule(opts); err != nil {
				continue
			}
		}
		for _, occ := range r.Between(from, until, true) {
			d := dateutil.Midnight(occ)
			key := dateutil.Format(d)
			if seen[key] {
				continue
			}
			seen[key] = true
			dates = append(dates, d)
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// RulesFunc pre-expands the rules over a window and returns a predicate
// over the result. Dates outside the window report false.
func RulesFunc(rules []string, from, to time.Time) Func {
	set := make(Set)
	for _, d := range ExpandRules(rules, from, to) {
		set[dateutil.Format(d)] = struct{}{}
	}
	return set.Contains
}
