package cli

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/sheet"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSheetTest creates a home dir and a document file with the default
// columns, returning both paths.
func setupSheetTest(t *testing.T) (homeDir, docPath string) {
	t.Helper()
	homeDir = t.TempDir()
	docPath = filepath.Join(homeDir, "doc.json")

	doc := sheet.New(nil)
	require.NoError(t, sheet.Write(docPath, doc, fixedNow(), fixedNow()))
	return homeDir, docPath
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
}

func captureOut(cmd *cobra.Command) *bytes.Buffer {
	stdout := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(new(bytes.Buffer))
	return stdout
}

func TestNoteSetAndGet(t *testing.T) {
	homeDir, docPath := setupSheetTest(t)

	stdout := captureOut(noteSetCmd)
	err := runNoteSet(noteSetCmd, homeDir, "", docPath, "", "2025-06-20", "standup at 10", fixedNow)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "2025-06-20")
	assert.Contains(t, stdout.String(), "updated")

	stdout = captureOut(noteGetCmd)
	err = runNoteGet(noteGetCmd, homeDir, "", docPath, "col-plan", "2025-06-20")
	require.NoError(t, err)
	assert.Equal(t, "standup at 10\n", stdout.String())
}

func TestNoteSetResolvesColumnByTitle(t *testing.T) {
	homeDir, docPath := setupSheetTest(t)

	err := runNoteSet(noteSetCmd, homeDir, "", docPath, "Notes", "2025-06-20", "by title", fixedNow)
	require.NoError(t, err)

	doc, err := sheet.Load(docPath)
	require.NoError(t, err)
	assert.Equal(t, "by title", doc.Cell(fixedNow().AddDate(0, 0, 5), "col-notes"))
}

func TestNoteSetUnknownColumn(t *testing.T) {
	homeDir, docPath := setupSheetTest(t)

	err := runNoteSet(noteSetCmd, homeDir, "", docPath, "col-nope", "2025-06-20", "x", fixedNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestNoteSetBadDate(t *testing.T) {
	homeDir, docPath := setupSheetTest(t)

	err := runNoteSet(noteSetCmd, homeDir, "", docPath, "", "not-a-date", "x", fixedNow)
	require.Error(t, err)
}

func TestNoteAppend(t *testing.T) {
	homeDir, docPath := setupSheetTest(t)

	require.NoError(t, runNoteSet(noteSetCmd, homeDir, "", docPath, "", "2025-06-20", "first", fixedNow))
	require.NoError(t, runNoteAppend(noteAppendCmd, homeDir, "", docPath, "", "2025-06-20", "second", fixedNow))

	doc, err := sheet.Load(docPath)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", doc.Cell(fixedNow().AddDate(0, 0, 5), "col-plan"))
}

func TestNoteAppendToEmptyCell(t *testing.T) {
	homeDir, docPath := setupSheetTest(t)

	require.NoError(t, runNoteAppend(noteAppendCmd, homeDir, "", docPath, "", "2025-06-20", "only", fixedNow))

	doc, err := sheet.Load(docPath)
	require.NoError(t, err)
	assert.Equal(t, "only", doc.Cell(fixedNow().AddDate(0, 0, 5), "col-plan"))
}

func TestNoteClearWholeDay(t *testing.T) {
	homeDir, docPath := setupSheetTest(t)

	require.NoError(t, runNoteSet(noteSetCmd, homeDir, "", docPath, "col-plan", "2025-06-20", "a", fixedNow))
	require.NoError(t, runNoteSet(noteSetCmd, homeDir, "", docPath, "col-notes", "2025-06-20", "b", fixedNow))
	require.NoError(t, runNoteClear(noteClearCmd, homeDir, "", docPath, "", "2025-06-20", fixedNow))

	doc, err := sheet.Load(docPath)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.RecordCount())
}

func TestNoteClearSingleColumn(t *testing.T) {
	homeDir, docPath := setupSheetTest(t)

	require.NoError(t, runNoteSet(noteSetCmd, homeDir, "", docPath, "col-plan", "2025-06-20", "a", fixedNow))
	require.NoError(t, runNoteSet(noteSetCmd, homeDir, "", docPath, "col-notes", "2025-06-20", "b", fixedNow))
	require.NoError(t, runNoteClear(noteClearCmd, homeDir, "", docPath, "col-plan", "2025-06-20", fixedNow))

	doc, err := sheet.Load(docPath)
	require.NoError(t, err)
	date := fixedNow().AddDate(0, 0, 5)
	assert.Equal(t, "", doc.Cell(date, "col-plan"))
	assert.Equal(t, "b", doc.Cell(date, "col-notes"))
}

func TestNoteURLs(t *testing.T) {
	homeDir, docPath := setupSheetTest(t)

	require.NoError(t, runNoteSet(noteSetCmd, homeDir, "", docPath, "col-plan", "2025-06-20",
		"see https://example.com/agenda and https://example.com/agenda again", fixedNow))

	stdout := captureOut(noteURLsCmd)
	err := runNoteURLs(noteURLsCmd, homeDir, "", docPath, "2025-06-20")
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(stdout.Bytes(), []byte("example.com/agenda")))
}

func TestNoteURLsNone(t *testing.T) {
	homeDir, docPath := setupSheetTest(t)

	stdout := captureOut(noteURLsCmd)
	err := runNoteURLs(noteURLsCmd, homeDir, "", docPath, "2025-06-20")
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "no URLs")
}
