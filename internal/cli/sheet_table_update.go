package cli

import (
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/stringutil"
	tea "github.com/charmbracelet/bubbletea"
)

func (m sheetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The autosave tick runs regardless of overlay state so edits made in
	// an overlay session still hit the disk on schedule.
	if tick, ok := msg.(autosaveTickMsg); ok {
		return m.handleAutosaveTick(time.Time(tick))
	}

	// If overlay is active, delegate to it
	if m.overlay != nil {
		return m.updateOverlay(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m = m.clampScroll()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.flushOnQuit()
			return m, tea.Quit
		case "down", "j":
			if m.cursorRow < m.win.Len()-1 {
				m.cursorRow++
				m = m.ensureCursorVisible()
			}
			m = m.maybeExtend()
		case "up", "k":
			if m.cursorRow > 0 {
				m.cursorRow--
				m = m.ensureCursorVisible()
			}
			m = m.maybeExtend()
		case "pgdown":
			m.cursorRow += m.visibleRows()
			m.scrollY += m.visibleRows()
			m = m.clampScroll().maybeExtend()
		case "pgup":
			m.cursorRow -= m.visibleRows()
			m.scrollY -= m.visibleRows()
			m = m.clampScroll().maybeExtend()
		case "right", "l":
			if m.cursorCol < len(m.doc.Columns)-1 {
				m.cursorCol++
			}
		case "left", "h":
			if m.cursorCol > 0 {
				m.cursorCol--
			}
		case "t":
			m = m.jumpToToday()
		case "g":
			m.mode = modeJumping
			m.overlay = newJumpOverlay()
		case "/":
			m.mode = modeSearching
			m.overlay = newSearchOverlay(m.doc)
		case "enter", "e":
			return m.startEdit()
		case "u":
			return m.startURLs()
		case "s":
			m = m.saveNow(time.Now())
		}
	}
	return m, nil
}

// handleAutosaveTick runs the periodic save check and schedules the next tick.
func (m sheetModel) handleAutosaveTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.ctx.settings.AutosaveEnabled {
		wrote, err := m.saver.MaybeSave(m.doc, m.win.Start(), now)
		if err != nil {
			m.footerMsg = "Autosave failed: " + err.Error()
		} else if wrote {
			m.footerMsg = "saved " + now.Format("15:04:05")
		}
	}
	return m, autosaveTick()
}

// jumpToToday anchors today as the top row. With always_today_top
// disabled and today already materialized, the viewport centers on it
// instead of rebuilding the window.
func (m sheetModel) jumpToToday() sheetModel {
	if !m.ctx.settings.AlwaysTodayTop {
		if idx := m.win.IndexOf(m.today); idx >= 0 {
			m.cursorRow = idx
			m.scrollY = idx - m.visibleRows()/2
			return m.clampScroll()
		}
	}
	return m.jumpTo(m.today)
}

// jumpTo rebuilds the window with target as the anchored top row. This is
// a programmatic scroll: it never consults the edge trigger.
func (m sheetModel) jumpTo(target time.Time) sheetModel {
	if !m.win.JumpTo(target, m.ctx.settings.ExpandDaysEach) {
		return m
	}
	m.scrollY = 0
	m.cursorRow = 0
	return m.clampScroll()
}

func (m sheetModel) startEdit() (tea.Model, tea.Cmd) {
	date := m.cursorDate()
	col := m.cursorColumn()
	m.mode = modeEditing
	m.overlay = newEditCellOverlay(date, col.Title, m.doc.Cell(date, col.ID))
	return m, nil
}

func (m sheetModel) startURLs() (tea.Model, tea.Cmd) {
	date := m.cursorDate()
	col := m.cursorColumn()
	urls := stringutil.ExtractURLs(m.doc.Cell(date, col.ID))
	if len(urls) == 0 {
		m.footerMsg = "No URLs in this cell"
		return m, nil
	}
	m.mode = modeURLs
	m.overlay = newURLOverlay(date, urls)
	return m, nil
}

// updateOverlay delegates input to the active overlay and handles overlay results.
func (m sheetModel) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(overlayResult); ok {
		return m.handleOverlayResult(result)
	}

	updated, cmd := m.overlay.Update(msg)
	m.overlay = updated
	return m, cmd
}

// handleOverlayResult processes the result when an overlay completes.
func (m sheetModel) handleOverlayResult(result overlayResult) (tea.Model, tea.Cmd) {
	switch result.action {
	case "cancel":
		m.overlay = nil
		m.mode = modeNormal
		m.footerMsg = ""
		return m, nil

	case "edit":
		return m.handleEditResult()

	case "jump":
		return m.handleJumpResult()

	case "search-jump":
		return m.handleSearchResult()
	}

	m.overlay = nil
	m.mode = modeNormal
	return m, nil
}

func (m sheetModel) handleEditResult() (tea.Model, tea.Cmd) {
	editor, ok := m.overlay.(*editCellOverlay)
	if !ok {
		m.overlay = nil
		m.mode = modeNormal
		return m, nil
	}

	col := m.cursorColumn()
	m.doc.SetCell(editor.date, col.ID, editor.text)
	m.win.Refresh(editor.date)
	m.footerMsg = dateutil.Format(editor.date) + " updated"
	m.overlay = nil
	m.mode = modeNormal
	return m, nil
}

func (m sheetModel) handleJumpResult() (tea.Model, tea.Cmd) {
	jumper, ok := m.overlay.(*jumpOverlay)
	m.overlay = nil
	m.mode = modeNormal
	if !ok {
		return m, nil
	}
	m = m.jumpTo(jumper.target)
	m.footerMsg = "jumped to " + dateutil.Format(jumper.target)
	return m, nil
}

func (m sheetModel) handleSearchResult() (tea.Model, tea.Cmd) {
	searcher, ok := m.overlay.(*searchOverlay)
	m.overlay = nil
	m.mode = modeNormal
	if !ok {
		return m, nil
	}

	match := searcher.selectedMatch()
	m = m.jumpTo(match.Date)
	for i, col := range m.doc.Columns {
		if col.ID == match.ColumnID {
			m.cursorCol = i
			break
		}
	}
	m.footerMsg = "match: " + dateutil.Format(match.Date)
	return m, nil
}
