package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/sheet"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// overlayResult is sent when an overlay completes.
type overlayResult struct {
	action string // "cancel", "edit", "jump", "search-jump"
	err    error
}

func overlayResultMsg(action string, err error) tea.Cmd {
	return func() tea.Msg {
		return overlayResult{action: action, err: err}
	}
}

var (
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(60)
	overlayTitleStyle  = lipgloss.NewStyle().Bold(true)
	overlayActiveStyle = lipgloss.NewStyle().Reverse(true)
	overlayMutedStyle  = lipgloss.NewStyle().Faint(true)
)

// --- Edit Cell Overlay ---
// Multiline editor for a single day cell.

type editField int

const (
	editFieldText editField = iota
	editFieldConfirm
)

type editCellOverlay struct {
	date   time.Time
	column string
	text   string
	field  editField
}

func newEditCellOverlay(date time.Time, column, text string) *editCellOverlay {
	return &editCellOverlay{date: date, column: column, text: text}
}

func (o *editCellOverlay) Init() tea.Cmd { return nil }

func (o *editCellOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return o, overlayResultMsg("cancel", nil)
		case "tab":
			if o.field == editFieldText {
				o.field = editFieldConfirm
			} else {
				o.field = editFieldText
			}
		case "enter":
			if o.field == editFieldConfirm {
				return o, overlayResultMsg("edit", nil)
			}
			// Enter in the text area inserts a newline.
			o.text += "\n"
		case "backspace":
			if o.field == editFieldText && len(o.text) > 0 {
				o.text = trimLastRune(o.text)
			}
		case "space":
			if o.field == editFieldText {
				o.text += " "
			}
		default:
			if o.field == editFieldText && len(msg.Runes) > 0 {
				o.text += string(msg.Runes)
			}
		}
	}
	return o, nil
}

func trimLastRune(s string) string {
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

func (o *editCellOverlay) View() string {
	var b strings.Builder
	title := fmt.Sprintf("%s — %s", dateutil.Format(o.date), o.column)
	b.WriteString(overlayTitleStyle.Render(title))
	b.WriteString("\n\n")

	lines := strings.Split(o.text, "\n")
	for i, line := range lines {
		rendered := line
		if i == len(lines)-1 && o.field == editFieldText {
			rendered += overlayActiveStyle.Render(" ") // cursor block
		}
		b.WriteString("  " + rendered + "\n")
	}

	b.WriteString("\n")
	if o.field == editFieldConfirm {
		b.WriteString(overlayActiveStyle.Render("> [Save]"))
	} else {
		b.WriteString("  [Save]")
	}
	b.WriteString("\n\n")
	b.WriteString(overlayMutedStyle.Render("enter newline  |  tab to [Save]  |  esc cancel"))

	return overlayBoxStyle.Render(b.String())
}

// --- Jump Overlay ---
// Single input accepting a date expression.

type jumpOverlay struct {
	input  string
	target time.Time
	err    string
}

func newJumpOverlay() *jumpOverlay {
	return &jumpOverlay{}
}

func (o *jumpOverlay) Init() tea.Cmd { return nil }

func (o *jumpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return o, overlayResultMsg("cancel", nil)
		case "enter":
			target, err := dateutil.ParseDate(o.input)
			if err != nil {
				o.err = "Unrecognized date (e.g. 2025-03-01, today, friday)"
				return o, nil
			}
			o.target = target
			o.err = ""
			return o, overlayResultMsg("jump", nil)
		case "backspace":
			if len(o.input) > 0 {
				o.input = trimLastRune(o.input)
			}
		case "space":
			o.input += " "
		default:
			if len(msg.Runes) > 0 {
				o.input += string(msg.Runes)
			}
		}
	}
	return o, nil
}

func (o *jumpOverlay) View() string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("Jump to date"))
	b.WriteString("\n\n")
	b.WriteString("  > " + o.input + overlayActiveStyle.Render(" "))
	b.WriteString("\n")

	if o.err != "" {
		b.WriteString("\n")
		b.WriteString(Error(o.err))
	}

	b.WriteString("\n")
	b.WriteString(overlayMutedStyle.Render("enter confirm  |  esc cancel"))

	return overlayBoxStyle.Render(b.String())
}

// --- Search Overlay ---
// Query input; enter runs the search, then the result list is navigable
// and enter on a result jumps to it.

type searchOverlay struct {
	doc     *sheet.Document
	query   string
	results []sheet.Match
	ran     bool
	cursor  int
}

func newSearchOverlay(doc *sheet.Document) *searchOverlay {
	return &searchOverlay{doc: doc}
}

func (o *searchOverlay) Init() tea.Cmd { return nil }

func (o *searchOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return o, overlayResultMsg("cancel", nil)
		case "enter":
			if o.ran && len(o.results) > 0 {
				return o, overlayResultMsg("search-jump", nil)
			}
			o.results = o.doc.Search(o.query, nil, nil)
			o.ran = true
			o.cursor = 0
		case "up", "ctrl+p":
			if o.cursor > 0 {
				o.cursor--
			}
		case "down", "ctrl+n":
			if o.cursor < len(o.results)-1 {
				o.cursor++
			}
		case "backspace":
			if len(o.query) > 0 {
				o.query = trimLastRune(o.query)
				o.ran = false
			}
		case "space":
			o.query += " "
			o.ran = false
		default:
			if len(msg.Runes) > 0 {
				o.query += string(msg.Runes)
				o.ran = false
			}
		}
	}
	return o, nil
}

func (o *searchOverlay) selectedMatch() sheet.Match {
	return o.results[o.cursor]
}

func (o *searchOverlay) View() string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString("  / " + o.query + overlayActiveStyle.Render(" "))
	b.WriteString("\n\n")

	if o.ran {
		if len(o.results) == 0 {
			b.WriteString(overlayMutedStyle.Render("  no matches"))
			b.WriteString("\n")
		}
		for i, match := range o.results {
			if i >= 10 {
				b.WriteString(overlayMutedStyle.Render(
					fmt.Sprintf("  … %d more", len(o.results)-10)))
				b.WriteString("\n")
				break
			}
			label := fmt.Sprintf("%s  %s", dateutil.Format(match.Date), match.Snippet)
			if i == o.cursor {
				b.WriteString(overlayActiveStyle.Render("> "+label) + "\n")
			} else {
				b.WriteString("  " + label + "\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(overlayMutedStyle.Render("enter search/jump  |  ↑/↓ select  |  esc cancel"))

	return overlayBoxStyle.Render(b.String())
}

// --- URL Overlay ---
// Read-only list of the URLs found in the cell under the cursor.

type urlOverlay struct {
	date   time.Time
	urls   []string
	cursor int
}

func newURLOverlay(date time.Time, urls []string) *urlOverlay {
	return &urlOverlay{date: date, urls: urls}
}

func (o *urlOverlay) Init() tea.Cmd { return nil }

func (o *urlOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter", "u":
			return o, overlayResultMsg("cancel", nil)
		case "up", "k":
			if o.cursor > 0 {
				o.cursor--
			}
		case "down", "j":
			if o.cursor < len(o.urls)-1 {
				o.cursor++
			}
		}
	}
	return o, nil
}

func (o *urlOverlay) View() string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("URLs — " + dateutil.Format(o.date)))
	b.WriteString("\n\n")

	for i, u := range o.urls {
		if i == o.cursor {
			b.WriteString(overlayActiveStyle.Render("> "+u) + "\n")
		} else {
			b.WriteString("  " + u + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(overlayMutedStyle.Render("↑/↓ select  |  esc close"))

	return overlayBoxStyle.Render(b.String())
}
