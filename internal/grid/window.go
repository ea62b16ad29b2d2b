// Package grid maintains the contiguous materialized date window backing
// the visible day rows: growing it on demand at either end, rebuilding it
// around a new anchor, and translating between dates and row offsets.
package grid

import (
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/holiday"
)

// State is the window's lifecycle state. Extension and rebuild requests
// that arrive while the window is not Idle are ignored, which suppresses
// the recursive re-trigger an extension's own scroll adjustment would
// otherwise cause.
type State int

const (
	Idle State = iota
	Extending
	Rebuilding
)

func (s State) String() string {
	switch s {
	case Extending:
		return "extending"
	case Rebuilding:
		return "rebuilding"
	default:
		return "idle"
	}
}

// Direction selects which end of the window an extension grows.
type Direction int

const (
	Backward Direction = iota
	Forward
)

// Kind classifies a day for row styling. Sundays and holidays share the
// same accent; Saturdays get their own.
type Kind int

const (
	KindWeekday Kind = iota
	KindSaturday
	KindSunday
	KindHoliday
)

// DayRow is one materialized row: a date, its kind, and the text fields
// for each column that has content.
type DayRow struct {
	Date   time.Time
	Kind   Kind
	Fields map[string]string
}

// RecordSource supplies the stored fields for a date. Absent records must
// come back as an empty map so every date materializes a row.
type RecordSource interface {
	Fields(date time.Time) map[string]string
}

// Window is the contiguous materialized date range [Start, End], one row
// per date, with an anchor date pinned to the top of the visible area.
type Window struct {
	src       RecordSource
	holidayFn holiday.Func

	start  time.Time
	end    time.Time
	anchor time.Time
	rows   []DayRow
	state  State
}

// New builds a window spanning [anchor, anchor+spanDays] with every row
// materialized. Any anchor date is accepted.
func New(src RecordSource, holidayFn holiday.Func, anchor time.Time, spanDays int) *Window {
	w := &Window{src: src, holidayFn: holidayFn}
	w.rebuild(dateutil.Midnight(anchor), spanDays)
	return w
}

func (w *Window) Start() time.Time  { return w.start }
func (w *Window) End() time.Time    { return w.end }
func (w *Window) Anchor() time.Time { return w.anchor }
func (w *Window) State() State      { return w.state }
func (w *Window) Len() int          { return len(w.rows) }

// Row returns the materialized row at index i.
func (w *Window) Row(i int) DayRow { return w.rows[i] }

// DateAt translates a row index to its date.
func (w *Window) DateAt(i int) time.Time { return w.rows[i].Date }

// IndexOf translates a date to its row index, or -1 when the date is
// outside the window.
func (w *Window) IndexOf(date time.Time) int {
	d := dateutil.Midnight(date)
	if d.Before(w.start) || d.After(w.end) {
		return -1
	}
	return dateutil.DaysBetween(w.start, d)
}

// Extend grows the window by n days in the given direction and
// materializes only the new rows; existing rows are untouched. After a
// backward extension every existing date's index shifts by exactly n,
// which lets the caller restore the top-visible date to the same visual
// position. Returns false without effect when n <= 0 or the window is not
// Idle.
func (w *Window) Extend(dir Direction, n int) bool {
	if n <= 0 || w.state != Idle {
		return false
	}
	w.state = Extending
	defer func() { w.state = Idle }()

	if dir == Forward {
		fresh := w.materialize(w.end.AddDate(0, 0, 1), n)
		w.rows = append(w.rows, fresh...)
		w.end = w.end.AddDate(0, 0, n)
		return true
	}

	newStart := w.start.AddDate(0, 0, -n)
	fresh := w.materialize(newStart, n)
	w.rows = append(fresh, w.rows...)
	w.start = newStart
	return true
}

// JumpTo discards the window and rebuilds it around target, spanning
// [target, target+spanDays]. The previous window is never merged. Returns
// false when the window is busy.
func (w *Window) JumpTo(target time.Time, spanDays int) bool {
	if w.state != Idle {
		return false
	}
	w.rebuild(dateutil.Midnight(target), spanDays)
	return true
}

// Refresh re-materializes the row for a single date after an edit. Dates
// outside the window are ignored.
func (w *Window) Refresh(date time.Time) {
	i := w.IndexOf(date)
	if i < 0 {
		return
	}
	w.rows[i] = w.buildRow(w.rows[i].Date)
}

func (w *Window) rebuild(anchor time.Time, spanDays int) {
	if spanDays < 0 {
		spanDays = 0
	}
	w.state = Rebuilding
	defer func() { w.state = Idle }()

	w.start = anchor
	w.end = anchor.AddDate(0, 0, spanDays)
	w.anchor = anchor
	w.rows = w.materialize(anchor, spanDays+1)
}

func (w *Window) materialize(from time.Time, n int) []DayRow {
	rows := make([]DayRow, n)
	for i := 0; i < n; i++ {
		rows[i] = w.buildRow(from.AddDate(0, 0, i))
	}
	return rows
}

func (w *Window) buildRow(date time.Time) DayRow {
	return DayRow{
		Date:   date,
		Kind:   w.classify(date),
		Fields: w.src.Fields(date),
	}
}

func (w *Window) classify(date time.Time) Kind {
	if w.holidayFn != nil && w.holidayFn(date) {
		return KindHoliday
	}
	switch date.Weekday() {
	case time.Saturday:
		return KindSaturday
	case time.Sunday:
		return KindSunday
	}
	return KindWeekday
}

// NearEdge reports whether the viewport [top, top+visible) sits within the
// edge-trigger threshold of either extreme, and which direction to extend.
// The threshold scales with the window (5% of its length) with a fixed
// floor so short windows still trigger before the literal edge. Callers
// must consult this only for genuine user-driven scrolling; programmatic
// scrolls (jumps, search navigation, post-extension restores) never do.
func (w *Window) NearEdge(top, visible int) (Direction, bool) {
	threshold := w.Len() / 20
	if threshold < 8 {
		threshold = 8
	}
	if top < threshold {
		return Backward, true
	}
	if top+visible > w.Len()-threshold {
		return Forward, true
	}
	return Backward, false
}
