package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/grid"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/sheet"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var openCmd = LeafCommand{
	Use:   "open",
	Short: "Open the interactive sheet",
	StrFlags: append(contextFlags(),
		StringFlag{Name: "start", Usage: "first visible date (default: today)"},
	),
	IntFlags: []IntFlag{
		{Name: "days", Usage: "initial window span in days (default: from settings)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, fileFlag, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		startFlag, _ := cmd.Flags().GetString("start")
		days, _ := cmd.Flags().GetInt("days")
		return runOpen(cmd, homeDir, settingsFlag, fileFlag, startFlag, days)
	},
}.Build()

func runOpen(cmd *cobra.Command, homeDir, settingsFlag, fileFlag, startFlag string, days int) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, fileFlag)
	doc, err := loadDocument(&ctx, fileFlag != "")
	if err != nil {
		return err
	}

	anchor := dateutil.Midnight(time.Now())
	if startFlag != "" {
		if anchor, err = dateutil.ParseDate(startFlag); err != nil {
			return err
		}
	}
	if days <= 0 {
		days = ctx.settings.ExpandDaysEach
	}

	// The predicate is pre-expanded over a wide margin so extensions and
	// jumps within a normal session keep their holiday accents.
	holidayFn := ctx.holidayFunc(anchor.AddDate(-1, 0, 0), anchor.AddDate(2, 0, 0))
	win := grid.New(doc, holidayFn, anchor, days)

	out := cmd.OutOrStdout()

	// Non-TTY fallback: print a static rendering of the window
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return printStaticSheet(out, win, doc, anchor)
	}

	m := newSheetModel(ctx, doc, win)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err = p.Run()
	return err
}

func printStaticSheet(w io.Writer, win *grid.Window, doc *sheet.Document, today time.Time) error {
	_, err := fmt.Fprint(w, renderSheet(win, doc.Columns, 0, win.Len(), -1, -1, today, false, ""))
	return err
}
