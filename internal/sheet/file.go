package sheet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/hashutil"
)

// fileDocument is the on-disk JSON shape. Year/month are compatibility
// fields derived from the window start at save time; savedAt is
// informational only. Load tolerates all three being absent.
type fileDocument struct {
	Year    int                        `json:"year,omitempty"`
	Month   int                        `json:"month,omitempty"`
	Columns []json.RawMessage          `json:"columns"`
	Cells   map[string]json.RawMessage `json:"cells"`
	SavedAt string                     `json:"savedAt,omitempty"`
}

type fileColumn struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Width int    `json:"width"`
}

// Write serializes the document and atomically replaces the file at path.
// The data is written to a temporary sibling first and renamed into place,
// so a reader never observes a half-written file.
func Write(path string, d *Document, rangeStart, now time.Time) error {
	out := struct {
		Year    int                          `json:"year"`
		Month   int                          `json:"month"`
		Columns []Column                     `json:"columns"`
		Cells   map[string]map[string]string `json:"cells"`
		SavedAt string                       `json:"savedAt"`
	}{
		Year:    rangeStart.Year(),
		Month:   int(rangeStart.Month()),
		Columns: d.Columns,
		Cells:   d.Cells,
		SavedAt: now.UTC().Format(time.RFC3339),
	}
	if out.Cells == nil {
		out.Cells = map[string]map[string]string{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads and validates a document file. It never returns a partially
// adopted document: the result is either a fully validated document or an
// error, leaving the caller's state untouched.
//
// Validation is defensive. Column entries must be objects; a missing or
// duplicate id is regenerated, a blank title defaults to the id, and the
// width is clamped. If no valid column survives, the file is rejected as
// corrupt. Cell keys must be real YYYY-MM-DD calendar dates and cell values
// objects mapping column id to text; nulls become empty strings, numbers
// and booleans are coerced to their string form, and everything
// non-conforming is dropped silently.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw fileDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	columns := validateColumns(raw.Columns)
	if len(columns) == 0 {
		return nil, fmt.Errorf("%s: no valid columns, refusing to load", filepath.Base(path))
	}

	doc := New(columns)
	doc.Cells = validateCells(raw.Cells)
	return doc, nil
}

func validateColumns(raws []json.RawMessage) []Column {
	var columns []Column
	seen := make(map[string]bool)

	for i, r := range raws {
		var fc fileColumn
		if err := json.Unmarshal(r, &fc); err != nil {
			continue
		}
		id := fc.ID
		if id == "" || seen[id] {
			id = "col-" + hashutil.GenerateIDFromSeed(fmt.Sprintf("%s#%d", fc.ID, i))
			for seen[id] {
				id += "x"
			}
		}
		seen[id] = true

		title := fc.Title
		if title == "" {
			title = id
		}

		columns = append(columns, Column{
			ID:    id,
			Title: title,
			Width: ClampWidth(fc.Width),
		})
	}
	return columns
}

func validateCells(raws map[string]json.RawMessage) map[string]map[string]string {
	cells := make(map[string]map[string]string)

	for key, r := range raws {
		if !dateutil.IsISO(key) {
			continue
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(r, &fields); err != nil {
			continue
		}

		rec := make(map[string]string)
		for col, fv := range fields {
			text, ok := coerceText(fv)
			if !ok || text == "" {
				continue
			}
			rec[col] = text
		}
		if len(rec) > 0 {
			cells[key] = rec
		}
	}
	return cells
}

// coerceText converts a cell value to text: strings pass through, null
// becomes empty, numbers and booleans take their literal form. Objects and
// arrays are rejected.
func coerceText(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	switch val := v.(type) {
	case nil:
		return "", true
	case bool:
		return fmt.Sprintf("%t", val), true
	case float64:
		return trimFloat(val), true
	}
	return "", false
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
