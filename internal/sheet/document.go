package sheet

import (
	"sort"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/hashutil"
)

// Column width bounds in advisory display units. Widths outside this range
// are clamped, both on load and on resize.
const (
	MinColumnWidth     = 80
	MaxColumnWidth     = 1200
	DefaultColumnWidth = 260
)

// Column is a named field slot applied uniformly across all day records.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Width int    `json:"width"`
}

// Document is the full in-memory sheet: the column set plus the sparse
// mapping from ISO date key to per-column text. It is independent of the
// currently materialized view window.
type Document struct {
	Columns []Column
	Cells   map[string]map[string]string

	dirty bool
}

// DefaultColumns returns the column set used for brand-new documents.
func DefaultColumns() []Column {
	return []Column{
		{ID: "col-plan", Title: "Plan", Width: DefaultColumnWidth},
		{ID: "col-notes", Title: "Notes", Width: DefaultColumnWidth},
	}
}

// New creates an empty document with the given column set.
// A nil or empty column set falls back to the defaults.
func New(columns []Column) *Document {
	if len(columns) == 0 {
		columns = DefaultColumns()
	}
	cols := make([]Column, len(columns))
	copy(cols, columns)
	return &Document{
		Columns: cols,
		Cells:   make(map[string]map[string]string),
	}
}

// Dirty reports whether the document has unsaved edits.
func (d *Document) Dirty() bool { return d.dirty }

// MarkClean clears the dirty flag after a successful write.
func (d *Document) MarkClean() { d.dirty = false }

// MarkDirty flags the document as having unsaved edits.
func (d *Document) MarkDirty() { d.dirty = true }

// Cell returns the text stored for a date and column. Absent records and
// absent fields both read back as empty.
func (d *Document) Cell(date time.Time, columnID string) string {
	rec, ok := d.Cells[dateutil.Format(date)]
	if !ok {
		return ""
	}
	return rec[columnID]
}

// SetCell stores text for a date and column. Setting empty text removes the
// field, and a record with no remaining fields is pruned, so an all-empty
// record never lingers in the mapping.
func (d *Document) SetCell(date time.Time, columnID, text string) {
	key := dateutil.Format(date)
	rec := d.Cells[key]

	if text == "" {
		if rec == nil {
			return
		}
		if _, ok := rec[columnID]; !ok {
			return
		}
		delete(rec, columnID)
		if len(rec) == 0 {
			delete(d.Cells, key)
		}
		d.dirty = true
		return
	}

	if rec == nil {
		rec = make(map[string]string)
		d.Cells[key] = rec
	}
	if rec[columnID] == text {
		return
	}
	rec[columnID] = text
	d.dirty = true
}

// Fields returns a copy of the record for a date, or an empty map when no
// record exists. Implements the record source the grid materializes from.
func (d *Document) Fields(date time.Time) map[string]string {
	rec := d.Cells[dateutil.Format(date)]
	out := make(map[string]string, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

// Dates returns the sorted list of dates that have a record.
func (d *Document) Dates() []time.Time {
	keys := make([]string, 0, len(d.Cells))
	for k := range d.Cells {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	dates := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		t, err := dateutil.ParseISO(k)
		if err != nil {
			continue
		}
		dates = append(dates, t)
	}
	return dates
}

// RecordCount returns the number of dates with at least one stored field.
func (d *Document) RecordCount() int { return len(d.Cells) }

// Column looks up a column definition by ID. Returns nil if not found.
func (d *Document) Column(id string) *Column {
	for i := range d.Columns {
		if d.Columns[i].ID == id {
			return &d.Columns[i]
		}
	}
	return nil
}

// AddColumn appends a new column with a freshly generated ID.
// A blank title defaults to the ID.
func (d *Document) AddColumn(title string) Column {
	col := Column{
		ID:    hashutil.NewColumnID(),
		Title: title,
		Width: DefaultColumnWidth,
	}
	if col.Title == "" {
		col.Title = col.ID
	}
	d.Columns = append(d.Columns, col)
	d.dirty = true
	return col
}

// RenameColumn changes a column's display title. Returns false when the
// column does not exist.
func (d *Document) RenameColumn(id, title string) bool {
	col := d.Column(id)
	if col == nil {
		return false
	}
	if title == "" {
		title = id
	}
	if col.Title == title {
		return true
	}
	col.Title = title
	d.dirty = true
	return true
}

// ResizeColumn changes a column's advisory width, clamped to the sane range.
// Returns false when the column does not exist.
func (d *Document) ResizeColumn(id string, width int) bool {
	col := d.Column(id)
	if col == nil {
		return false
	}
	width = ClampWidth(width)
	if col.Width == width {
		return true
	}
	col.Width = width
	d.dirty = true
	return true
}

// RemoveColumn deletes a column definition and cascades the removal across
// every day record holding an entry for it. Removing an unreferenced or
// unknown column is a no-op, not an error.
func (d *Document) RemoveColumn(id string) {
	idx := -1
	for i := range d.Columns {
		if d.Columns[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	d.Columns = append(d.Columns[:idx], d.Columns[idx+1:]...)

	for key, rec := range d.Cells {
		if _, ok := rec[id]; !ok {
			continue
		}
		delete(rec, id)
		if len(rec) == 0 {
			delete(d.Cells, key)
		}
	}
	d.dirty = true
}

// ClampWidth forces a column width into [MinColumnWidth, MaxColumnWidth].
func ClampWidth(w int) int {
	if w < MinColumnWidth {
		return MinColumnWidth
	}
	if w > MaxColumnWidth {
		return MaxColumnWidth
	}
	return w
}
