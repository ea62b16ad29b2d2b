package sheet

import "time"

// MinAutosaveInterval is the floor for the autosave timer. Sub-floor
// configured values are clamped rather than honored.
const MinAutosaveInterval = 3 * time.Second

// Autosaver flushes a dirty document to a fixed path on a recurring
// interval, skipping ticks where nothing changed.
type Autosaver struct {
	Path string

	interval time.Duration
	lastSave time.Time
}

// NewAutosaver creates an autosaver for the given path. The interval is
// clamped to MinAutosaveInterval.
func NewAutosaver(path string, intervalSec int) *Autosaver {
	interval := time.Duration(intervalSec) * time.Second
	if interval < MinAutosaveInterval {
		interval = MinAutosaveInterval
	}
	return &Autosaver{Path: path, interval: interval}
}

// Interval returns the effective (clamped) autosave interval.
func (a *Autosaver) Interval() time.Duration { return a.interval }

// LastSave returns when the autosaver last wrote successfully.
func (a *Autosaver) LastSave() time.Time { return a.lastSave }

// MaybeSave writes the document if it is dirty and the interval has elapsed
// since the last successful write. Returns whether a write happened. A
// failed write leaves the dirty flag set so the next tick retries.
func (a *Autosaver) MaybeSave(d *Document, rangeStart, now time.Time) (bool, error) {
	if !d.Dirty() {
		return false, nil
	}
	if !a.lastSave.IsZero() && now.Sub(a.lastSave) < a.interval {
		return false, nil
	}
	return a.flush(d, rangeStart, now)
}

// Flush writes the document immediately if dirty, regardless of timer
// phase. Used for explicit saves and the final write on shutdown.
func (a *Autosaver) Flush(d *Document, rangeStart, now time.Time) (bool, error) {
	if !d.Dirty() {
		return false, nil
	}
	return a.flush(d, rangeStart, now)
}

func (a *Autosaver) flush(d *Document, rangeStart, now time.Time) (bool, error) {
	if err := Write(a.Path, d, rangeStart, now); err != nil {
		return false, err
	}
	d.MarkClean()
	a.lastSave = now
	return true, nil
}
