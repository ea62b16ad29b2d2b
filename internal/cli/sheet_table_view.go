package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/grid"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/sheet"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func (m sheetModel) View() string {
	tableStr := renderSheet(m.win, m.doc.Columns, m.scrollY, m.visibleRows(),
		m.cursorRow, m.cursorCol, m.today, m.doc.Dirty(), m.footerMsg)

	// If overlay is active, render it on top
	if m.overlay != nil {
		overlayStr := m.overlay.View()
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, overlayStr,
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	return tableStr
}

// termColWidth maps a column's advisory width (display units, 80..1200)
// onto terminal cells.
func termColWidth(c sheet.Column) int {
	w := c.Width / 10
	if w < 10 {
		w = 10
	}
	if w > 48 {
		w = 48
	}
	return w
}

// dateLabel renders the date cell: "2025-01-02 (Thu)".
func dateLabel(date time.Time) string {
	return fmt.Sprintf("%s (%s)", date.Format("2006-01-02"), date.Weekday().String()[:3])
}

// kindStyle picks the row accent for a day kind. Sundays and holidays
// share an accent; Saturdays get their own.
func kindStyle(kind grid.Kind) *lipgloss.Style {
	switch kind {
	case grid.KindSaturday:
		return &saturdayStyle
	case grid.KindSunday, grid.KindHoliday:
		return &sundayStyle
	}
	return nil
}

// cellLine flattens a cell's text into a single display line. Widths are
// terminal cells, not bytes, so wide runes count double.
func cellLine(text string, width int) string {
	flat := strings.Join(strings.Fields(text), " ")
	if runewidth.StringWidth(flat) > width {
		flat = runewidth.Truncate(flat, width, "...")
	}
	return padRight(flat, width)
}

// renderSheet produces the sheet string with cursor highlighting.
func renderSheet(win *grid.Window, columns []sheet.Column, scrollY, visibleRows, cursorRow, cursorCol int, today time.Time, dirty bool, footerMsg string) string {
	var b strings.Builder

	// Header row
	b.WriteString(headerStyle.Render(padRight("Date", dateColWidth)))
	for _, col := range columns {
		b.WriteString(" | ")
		b.WriteString(headerStyle.Render(padRight(col.Title, termColWidth(col))))
	}
	b.WriteString("\n")

	// Separator
	b.WriteString(strings.Repeat("-", dateColWidth))
	for _, col := range columns {
		b.WriteString("-+-")
		b.WriteString(strings.Repeat("-", termColWidth(col)))
	}
	b.WriteString("\n")

	// Day rows (respecting vertical scroll)
	endRow := scrollY + visibleRows
	if endRow > win.Len() {
		endRow = win.Len()
	}
	for rowIdx := scrollY; rowIdx < endRow; rowIdx++ {
		row := win.Row(rowIdx)
		accent := kindStyle(row.Kind)

		label := padRight(dateLabel(row.Date), dateColWidth)
		switch {
		case row.Date.Equal(today):
			b.WriteString(todayStyle.Render(label))
		case accent != nil:
			b.WriteString(accent.Render(label))
		default:
			b.WriteString(label)
		}

		for colIdx, col := range columns {
			b.WriteString(" | ")
			width := termColWidth(col)
			text := row.Fields[col.ID]

			var cellText string
			if text == "" {
				cellText = padRight(".", width)
			} else {
				cellText = cellLine(text, width)
			}

			switch {
			case rowIdx == cursorRow && colIdx == cursorCol:
				b.WriteString(selectedStyle.Render(cellText))
			case text == "":
				b.WriteString(dotStyle.Render(cellText))
			case accent != nil:
				b.WriteString(accent.Render(cellText))
			default:
				b.WriteString(cellText)
			}
		}
		b.WriteString("\n")
	}

	// Footer
	b.WriteString("\n")
	state := ""
	if dirty {
		state = "unsaved changes  |  "
	}
	footer := state + "↑/↓/←/→ move  |  t today  |  g goto  |  / search  |  e edit  |  u urls  |  s save  |  q quit"
	if footerMsg != "" {
		footer = footerMsg + "  |  " + footer
	}
	b.WriteString(footerStyle.Render(footer))
	b.WriteString("\n")

	return b.String()
}

func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}
