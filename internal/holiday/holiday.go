// Package holiday classifies calendar dates as holidays. The portable
// baseline is a manually entered date set; recurring rules and external
// locale lookups compose on top as predicates.
package holiday

import (
	"sort"
	"strings"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
)

// Func reports whether a date is a holiday.
type Func func(date time.Time) bool

// Set is a manually entered set of holiday dates, keyed by ISO date.
type Set map[string]struct{}

// ParseSet parses a newline- or comma-separated blob of YYYY-MM-DD tokens.
// Malformed tokens are dropped silently rather than rejecting the blob.
func ParseSet(blob string) Set {
	s := make(Set)
	for _, token := range strings.FieldsFunc(blob, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r' || r == ' ' || r == '\t'
	}) {
		if dateutil.IsISO(token) {
			s[token] = struct{}{}
		}
	}
	return s
}

// Format renders the set back as a sorted newline-separated blob.
func (s Set) Format() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, "\n")
}

// Add inserts a date. Returns false when the token is not a valid date.
func (s Set) Add(token string) bool {
	if !dateutil.IsISO(token) {
		return false
	}
	s[token] = struct{}{}
	return true
}

// Remove deletes a date. Removing an absent date is a no-op.
func (s Set) Remove(token string) {
	delete(s, token)
}

// Contains reports whether the set holds the given date.
func (s Set) Contains(date time.Time) bool {
	_, ok := s[dateutil.Format(date)]
	return ok
}

// Dates returns the sorted dates in the set.
func (s Set) Dates() []time.Time {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	dates := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		d, err := dateutil.ParseISO(k)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// Func returns a predicate over the set.
func (s Set) Func() Func {
	return s.Contains
}

// Compose combines predicates; a date is a holiday when any predicate says
// so. Nil predicates are skipped.
func Compose(fns ...Func) Func {
	var active []Func
	for _, fn := range fns {
		if fn != nil {
			active = append(active, fn)
		}
	}
	return func(date time.Time) bool {
		for _, fn := range active {
			if fn(date) {
				return true
			}
		}
		return false
	}
}
