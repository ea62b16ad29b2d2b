package cli

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/grid"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/settings"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/sheet"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSheetModel(t *testing.T, spanDays int) (sheetModel, *sheet.Document) {
	t.Helper()
	homeDir := t.TempDir()
	docPath := filepath.Join(homeDir, "doc.json")

	doc := sheet.New(nil)
	anchor := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	doc.SetCell(anchor.AddDate(0, 0, 2), "col-plan", "meeting at noon")
	doc.MarkClean()

	ctx := appContext{
		homeDir:      homeDir,
		settingsPath: settings.Path(homeDir),
		settings:     settings.Default(homeDir),
		docPath:      docPath,
	}
	win := grid.New(doc, nil, anchor, spanDays)

	m := newSheetModel(ctx, doc, win)
	m.termWidth = 100
	m.termHeight = 14 // 10 visible rows
	return m, doc
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUserScrollNearTopExtendsBackward(t *testing.T) {
	m, _ := setupSheetModel(t, 30)
	firstDate := m.win.DateAt(0)
	expand := m.ctx.settings.ExpandDaysEach

	nm, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m2 := nm.(sheetModel)

	assert.Equal(t, 31+expand, m2.win.Len())
	// The previously top-visible date keeps its visual position.
	assert.Equal(t, firstDate, m2.win.DateAt(m2.scrollY))
	assert.Equal(t, 1+expand, m2.cursorRow)
}

func TestUserScrollNearBottomExtendsForward(t *testing.T) {
	m, _ := setupSheetModel(t, 61)
	m.scrollY = m.maxScrollY()
	m.cursorRow = m.win.Len() - 1
	oldEnd := m.win.End()
	expand := m.ctx.settings.ExpandDaysEach

	nm, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m2 := nm.(sheetModel)

	assert.Equal(t, 62+expand, m2.win.Len())
	assert.Equal(t, oldEnd.AddDate(0, 0, expand), m2.win.End())
	// Forward growth never shifts existing indexes.
	assert.Equal(t, m.scrollY, m2.scrollY)
}

func TestMidWindowScrollDoesNotExtend(t *testing.T) {
	m, _ := setupSheetModel(t, 61)
	m.scrollY = 20
	m.cursorRow = 25

	nm, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m2 := nm.(sheetModel)

	assert.Equal(t, 62, m2.win.Len())
	assert.Equal(t, 26, m2.cursorRow)
}

func TestJumpToIsProgrammatic(t *testing.T) {
	m, _ := setupSheetModel(t, 30)
	target := time.Date(2030, 7, 15, 0, 0, 0, 0, time.UTC)

	m2 := m.jumpTo(target)

	assert.Equal(t, target, m2.win.Start())
	assert.Equal(t, 0, m2.scrollY)
	assert.Equal(t, 0, m2.cursorRow)
	// The jump rebuilds to the configured span; no edge trigger fires.
	assert.Equal(t, m.ctx.settings.ExpandDaysEach+1, m2.win.Len())
}

func TestTodayKeyAnchorsTodayOnTop(t *testing.T) {
	m, _ := setupSheetModel(t, 30)
	m.today = m.win.DateAt(20)

	nm, _ := m.Update(keyMsg("t"))
	m2 := nm.(sheetModel)

	assert.Equal(t, m.today, m2.win.Start())
	assert.Equal(t, 0, m2.scrollY)
	assert.Equal(t, 0, m2.cursorRow)
}

func TestTodayKeyCentersWhenTopAnchoringDisabled(t *testing.T) {
	m, _ := setupSheetModel(t, 30)
	m.ctx.settings.AlwaysTodayTop = false
	m.today = m.win.DateAt(20)
	start := m.win.Start()

	nm, _ := m.Update(keyMsg("t"))
	m2 := nm.(sheetModel)

	// The window is untouched; only the viewport moves.
	assert.Equal(t, start, m2.win.Start())
	assert.Equal(t, 31, m2.win.Len())
	assert.Equal(t, 20, m2.cursorRow)
	assert.Equal(t, 15, m2.scrollY)
}

func TestEditOverlayCommitsCell(t *testing.T) {
	m, doc := setupSheetModel(t, 30)
	m.cursorRow = 5
	date := m.win.DateAt(5)

	nm, _ := m.Update(keyMsg("e"))
	m2 := nm.(sheetModel)
	require.NotNil(t, m2.overlay)
	assert.Equal(t, modeEditing, m2.mode)

	editor := m2.overlay.(*editCellOverlay)
	editor.text = "new plan"

	nm, _ = m2.Update(overlayResult{action: "edit"})
	m3 := nm.(sheetModel)

	assert.Nil(t, m3.overlay)
	assert.Equal(t, modeNormal, m3.mode)
	assert.Equal(t, "new plan", doc.Cell(date, "col-plan"))
	assert.Equal(t, "new plan", m3.win.Row(5).Fields["col-plan"])
	assert.True(t, doc.Dirty())
}

func TestOverlayCancelRestoresNormalMode(t *testing.T) {
	m, _ := setupSheetModel(t, 30)

	nm, _ := m.Update(keyMsg("g"))
	m2 := nm.(sheetModel)
	require.NotNil(t, m2.overlay)
	assert.Equal(t, modeJumping, m2.mode)

	nm, _ = m2.Update(overlayResult{action: "cancel"})
	m3 := nm.(sheetModel)
	assert.Nil(t, m3.overlay)
	assert.Equal(t, modeNormal, m3.mode)
}

func TestSearchOverlayJumpMovesCursorToMatch(t *testing.T) {
	m, _ := setupSheetModel(t, 30)

	nm, _ := m.Update(keyMsg("/"))
	m2 := nm.(sheetModel)
	require.NotNil(t, m2.overlay)

	searcher := m2.overlay.(*searchOverlay)
	searcher.query = "meeting"
	_, _ = searcher.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotEmpty(t, searcher.results)

	nm, _ = m2.Update(overlayResult{action: "search-jump"})
	m3 := nm.(sheetModel)

	assert.Equal(t, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), m3.win.Start())
	assert.Equal(t, 0, m3.cursorRow)
	assert.Equal(t, 0, m3.cursorCol)
}

func TestURLKeyWithoutURLs(t *testing.T) {
	m, _ := setupSheetModel(t, 30)

	nm, _ := m.Update(keyMsg("u"))
	m2 := nm.(sheetModel)

	assert.Nil(t, m2.overlay)
	assert.Contains(t, m2.footerMsg, "No URLs")
}

func TestAutosaveTickWritesDirtyDocument(t *testing.T) {
	m, doc := setupSheetModel(t, 30)
	doc.SetCell(m.win.DateAt(0), "col-plan", "dirty edit")
	require.True(t, doc.Dirty())

	nm, cmd := m.Update(autosaveTickMsg(fixedNow()))
	m2 := nm.(sheetModel)

	assert.NotNil(t, cmd) // next tick is always scheduled
	assert.False(t, doc.Dirty())
	assert.Contains(t, m2.footerMsg, "saved")

	loaded, err := sheet.Load(m.ctx.docPath)
	require.NoError(t, err)
	assert.Equal(t, "dirty edit", loaded.Cell(m.win.DateAt(0), "col-plan"))
}

func TestAutosaveTickSkipsCleanDocument(t *testing.T) {
	m, doc := setupSheetModel(t, 30)
	require.False(t, doc.Dirty())

	nm, cmd := m.Update(autosaveTickMsg(fixedNow()))
	m2 := nm.(sheetModel)

	assert.NotNil(t, cmd)
	assert.Empty(t, m2.footerMsg)
	assert.NoFileExists(t, m.ctx.docPath)
}

func TestAutosaveFailureKeepsDirty(t *testing.T) {
	m, doc := setupSheetModel(t, 30)
	// Pointing the saver at a directory makes the final rename fail.
	m.saver = sheet.NewAutosaver(t.TempDir(), 3)
	doc.SetCell(m.win.DateAt(0), "col-plan", "will not save")

	nm, _ := m.Update(autosaveTickMsg(fixedNow()))
	m2 := nm.(sheetModel)

	assert.Contains(t, m2.footerMsg, "Autosave failed")
	assert.True(t, doc.Dirty())
}

func TestQuitFlushesAndRemembersFile(t *testing.T) {
	m, doc := setupSheetModel(t, 30)
	doc.SetCell(m.win.DateAt(0), "col-plan", "last edit")

	_, cmd := m.Update(keyMsg("q"))
	assert.NotNil(t, cmd)

	loaded, err := sheet.Load(m.ctx.docPath)
	require.NoError(t, err)
	assert.Equal(t, "last edit", loaded.Cell(m.win.DateAt(0), "col-plan"))

	s, err := settings.Load(m.ctx.settingsPath, m.ctx.homeDir)
	require.NoError(t, err)
	assert.Equal(t, m.ctx.docPath, s.LastFile)
}

func TestRenderSheetMarksContent(t *testing.T) {
	m, _ := setupSheetModel(t, 30)

	out := renderSheet(m.win, m.doc.Columns, 0, 10, 2, 0, m.today, false, "")

	assert.Contains(t, out, "Date")
	assert.Contains(t, out, "Plan")
	assert.Contains(t, out, "Notes")
	assert.Contains(t, out, "2025-01-03 (Fri)")
	assert.Contains(t, out, "meeting at noon")
}

func TestCellLineKeepsWideRunesIntact(t *testing.T) {
	line := cellLine("打ち合わせは正午から、資料を忘れずに", 10)

	assert.True(t, utf8.ValidString(line))
	assert.Equal(t, 10, runewidth.StringWidth(line))
	assert.True(t, strings.HasSuffix(strings.TrimRight(line, " "), "..."))
}

func TestPadRightMeasuresDisplayWidth(t *testing.T) {
	assert.Equal(t, "会議      ", padRight("会議", 10))
	assert.Equal(t, 10, runewidth.StringWidth(padRight("会議", 10)))
}

func TestJumpOverlayParsesDate(t *testing.T) {
	o := newJumpOverlay()

	_, _ = o.Update(keyMsg("2025-03-01"))
	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	result, ok := cmd().(overlayResult)
	require.True(t, ok)
	assert.Equal(t, "jump", result.action)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), o.target)
}

func TestJumpOverlayRejectsGarbage(t *testing.T) {
	o := newJumpOverlay()

	_, _ = o.Update(keyMsg("banana"))
	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.NotEmpty(t, o.err)
}
