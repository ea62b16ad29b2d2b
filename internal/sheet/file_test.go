package sheet

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestWriteThenLoadRoundTrip(t *testing.T) {
	doc := New([]Column{{ID: "col-1", Title: "Notes", Width: 300}})
	doc.SetCell(date(2025, 1, 5), "col-1", "meeting")
	doc.SetCell(date(2025, 2, 10), "col-1", "dentist\n9am")

	path := filepath.Join(t.TempDir(), "notes.json")
	now := time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)
	require.NoError(t, Write(path, doc, date(2025, 1, 1), now))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, doc.Columns, loaded.Columns)
	assert.Equal(t, doc.Cells, loaded.Cells)
	assert.False(t, loaded.Dirty())
}

func TestWriteCompatibilityFields(t *testing.T) {
	doc := New(nil)
	path := filepath.Join(t.TempDir(), "notes.json")
	now := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

	require.NoError(t, Write(path, doc, date(2025, 3, 15), now))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, float64(2025), raw["year"])
	assert.Equal(t, float64(3), raw["month"])
	assert.Equal(t, "2025-06-01T08:30:00Z", raw["savedAt"])
}

func TestWriteCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "notes.json")

	require.NoError(t, Write(path, New(nil), date(2025, 1, 1), time.Now()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.json")

	require.NoError(t, Write(path, New(nil), date(2025, 1, 1), time.Now()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "notes.json", entries[0].Name())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeFixture(t, `{"columns": [`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadDropsInvalidCellKeys(t *testing.T) {
	path := writeFixture(t, `{
		"columns": [{"id": "col-1", "title": "Notes", "width": 300}],
		"cells": {
			"bad-key": {"col-1": "x"},
			"2025-02-30": {"col-1": "impossible day"},
			"2025-01-05": {"col-1": "meeting"}
		}
	}`)

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, doc.RecordCount())
	assert.Equal(t, "meeting", doc.Cell(date(2025, 1, 5), "col-1"))
}

func TestLoadCoercesCellValues(t *testing.T) {
	path := writeFixture(t, `{
		"columns": [{"id": "col-1", "title": "Notes", "width": 300}],
		"cells": {
			"2025-01-01": {"col-1": null},
			"2025-01-02": {"col-1": 42},
			"2025-01-03": {"col-1": true},
			"2025-01-04": {"col-1": {"nested": "object"}},
			"2025-01-05": {"col-1": "plain"}
		}
	}`)

	doc, err := Load(path)
	require.NoError(t, err)

	// null coerces to empty, which reads back as "no content"
	assert.Equal(t, "", doc.Cell(date(2025, 1, 1), "col-1"))
	assert.Equal(t, "42", doc.Cell(date(2025, 1, 2), "col-1"))
	assert.Equal(t, "true", doc.Cell(date(2025, 1, 3), "col-1"))
	assert.Equal(t, "", doc.Cell(date(2025, 1, 4), "col-1"))
	assert.Equal(t, "plain", doc.Cell(date(2025, 1, 5), "col-1"))
}

func TestLoadNonObjectCellDropped(t *testing.T) {
	path := writeFixture(t, `{
		"columns": [{"id": "col-1", "title": "Notes", "width": 300}],
		"cells": {"2025-01-05": "not an object"}
	}`)

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, doc.RecordCount())
}

func TestLoadColumnDefaults(t *testing.T) {
	path := writeFixture(t, `{
		"columns": [
			{"id": "col-1", "width": 20},
			{"id": "col-1", "title": "Duplicate", "width": 9999},
			{"title": "No ID", "width": 300}
		],
		"cells": {}
	}`)

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Columns, 3)

	// Blank title defaults to the id, width clamps to the floor.
	assert.Equal(t, "col-1", doc.Columns[0].ID)
	assert.Equal(t, "col-1", doc.Columns[0].Title)
	assert.Equal(t, MinColumnWidth, doc.Columns[0].Width)

	// Duplicate id is regenerated; title is preserved, width clamps to cap.
	assert.NotEqual(t, "col-1", doc.Columns[1].ID)
	assert.Equal(t, "Duplicate", doc.Columns[1].Title)
	assert.Equal(t, MaxColumnWidth, doc.Columns[1].Width)

	// Missing id is generated.
	assert.NotEmpty(t, doc.Columns[2].ID)
	assert.Equal(t, "No ID", doc.Columns[2].Title)

	ids := map[string]bool{}
	for _, c := range doc.Columns {
		assert.False(t, ids[c.ID], "column ids must be unique")
		ids[c.ID] = true
	}
}

func TestLoadRejectsEmptyColumnSet(t *testing.T) {
	path := writeFixture(t, `{"columns": [], "cells": {}}`)

	_, err := Load(path)
	assert.Error(t, err, "a document with no valid columns is corrupt")
}

func TestLoadRejectsNonObjectColumns(t *testing.T) {
	path := writeFixture(t, `{"columns": ["just a string", 42], "cells": {}}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadIgnoresUnknownTopLevelKeys(t *testing.T) {
	path := writeFixture(t, `{
		"columns": [{"id": "col-1", "title": "Notes", "width": 300}],
		"cells": {},
		"futureFeature": {"whatever": true}
	}`)

	_, err := Load(path)
	assert.NoError(t, err)
}

func TestLoadToleratesMissingOptionalFields(t *testing.T) {
	path := writeFixture(t, `{
		"columns": [{"id": "col-1", "title": "Notes", "width": 300}],
		"cells": {"2025-01-05": {"col-1": "meeting"}}
	}`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "meeting", doc.Cell(date(2025, 1, 5), "col-1"))
}

func TestSaveLoadSaveIdempotent(t *testing.T) {
	path := writeFixture(t, `{
		"columns": [{"id": "col-1", "title": "Notes", "width": 300}],
		"cells": {
			"2025-01-05": {"col-1": "meeting"},
			"bad-key": {"col-1": "dropped"}
		}
	}`)

	first, err := Load(path)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "again.json")
	require.NoError(t, Write(out, first, date(2025, 1, 1), time.Now()))

	second, err := Load(out)
	require.NoError(t, err)

	assert.Equal(t, first.Columns, second.Columns)
	assert.Equal(t, first.Cells, second.Cells)
}
