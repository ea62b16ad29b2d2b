package cli

import (
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/grid"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/settings"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/sheet"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const dateColWidth = 16 // "2025-01-02 (Thu)"

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
	dotStyle      = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	saturdayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AFFF"))
	sundayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	todayStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
)

// sheetMode represents the current interaction mode of the sheet.
type sheetMode int

const (
	modeNormal sheetMode = iota
	modeEditing
	modeJumping
	modeSearching
	modeURLs
)

// autosaveTickMsg drives the periodic autosave check.
type autosaveTickMsg time.Time

func autosaveTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return autosaveTickMsg(t)
	})
}

type sheetModel struct {
	ctx   appContext
	doc   *sheet.Document
	win   *grid.Window
	saver *sheet.Autosaver

	scrollY    int // first visible row (0-indexed offset into window rows)
	cursorRow  int // selected row index (into window rows)
	cursorCol  int // selected column index (into doc.Columns)
	termWidth  int
	termHeight int
	mode       sheetMode
	overlay    tea.Model // active overlay (nil in normal mode)
	today      time.Time
	footerMsg  string // temporary message shown in footer
}

func newSheetModel(ctx appContext, doc *sheet.Document, win *grid.Window) sheetModel {
	saver := sheet.NewAutosaver(ctx.docPath, ctx.settings.AutosaveIntervalSec)
	return sheetModel{
		ctx:        ctx,
		doc:        doc,
		win:        win,
		saver:      saver,
		termWidth:  120,
		termHeight: 40,
		today:      dateutil.Midnight(time.Now()),
	}
}

func (m sheetModel) Init() tea.Cmd {
	return autosaveTick()
}

func (m sheetModel) visibleRows() int {
	// Reserve lines for: header(1) + separator(1) + footer(2)
	available := m.termHeight - 4
	if available < 1 {
		return 1
	}
	if available > m.win.Len() {
		return m.win.Len()
	}
	return available
}

func (m sheetModel) maxScrollY() int {
	max := m.win.Len() - m.visibleRows()
	if max < 0 {
		return 0
	}
	return max
}

// ensureCursorVisible adjusts scroll so the cursor is within the visible viewport.
func (m sheetModel) ensureCursorVisible() sheetModel {
	if m.cursorRow < m.scrollY {
		m.scrollY = m.cursorRow
	}
	if m.cursorRow >= m.scrollY+m.visibleRows() {
		m.scrollY = m.cursorRow - m.visibleRows() + 1
	}
	return m.clampScroll()
}

// clampScroll ensures scroll and cursor values are within valid bounds.
func (m sheetModel) clampScroll() sheetModel {
	if m.cursorRow > m.win.Len()-1 {
		m.cursorRow = m.win.Len() - 1
	}
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
	if m.scrollY > m.maxScrollY() {
		m.scrollY = m.maxScrollY()
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}
	if m.cursorCol > len(m.doc.Columns)-1 {
		m.cursorCol = len(m.doc.Columns) - 1
	}
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
	return m
}

// cursorDate returns the date of the row under the cursor.
func (m sheetModel) cursorDate() time.Time {
	return m.win.DateAt(m.cursorRow)
}

// cursorColumn returns the column definition under the cursor.
func (m sheetModel) cursorColumn() sheet.Column {
	return m.doc.Columns[m.cursorCol]
}

// maybeExtend consults the edge trigger after user-driven scrolling and
// grows the window when the viewport is near either end. For backward
// growth every index shifts by the prepended row count, so the scroll and
// cursor shift along and the top-visible date keeps its position.
func (m sheetModel) maybeExtend() sheetModel {
	dir, near := m.win.NearEdge(m.scrollY, m.visibleRows())
	if !near {
		return m
	}
	n := m.ctx.settings.ExpandDaysEach
	if !m.win.Extend(dir, n) {
		return m
	}
	if dir == grid.Backward {
		m.scrollY += n
		m.cursorRow += n
	}
	return m.clampScroll()
}

// saveNow flushes the document immediately and reports in the footer.
func (m sheetModel) saveNow(now time.Time) sheetModel {
	wrote, err := m.saver.Flush(m.doc, m.win.Start(), now)
	switch {
	case err != nil:
		m.footerMsg = "Save failed: " + err.Error()
	case wrote:
		m.footerMsg = "saved " + now.Format("15:04:05")
	default:
		m.footerMsg = "nothing to save"
	}
	return m
}

// flushOnQuit makes the final write and persists settings before exit.
func (m sheetModel) flushOnQuit() {
	now := time.Now()
	_, _ = m.saver.Flush(m.doc, m.win.Start(), now)

	m.ctx.settings.LastFile = m.ctx.docPath
	_ = settings.Save(m.ctx.settingsPath, m.ctx.settings)
}
