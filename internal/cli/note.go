package cli

import (
	"fmt"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/sheet"
	"github.com/spf13/cobra"
)

var noteCmd = GroupCommand{
	Use:   "note",
	Short: "Read and write day cells directly",
	Subcommands: []*cobra.Command{
		noteSetCmd,
		noteGetCmd,
		noteAppendCmd,
		noteClearCmd,
		noteURLsCmd,
	},
}.Build()

// resolveNoteTarget parses the date argument and resolves the column:
// by id first, then by title, and for a blank flag the first column.
func resolveNoteTarget(doc *sheet.Document, dateArg, columnFlag string) (time.Time, string, error) {
	date, err := dateutil.ParseDate(dateArg)
	if err != nil {
		return time.Time{}, "", err
	}

	if columnFlag == "" {
		return date, doc.Columns[0].ID, nil
	}
	if col := doc.Column(columnFlag); col != nil {
		return date, col.ID, nil
	}
	for _, col := range doc.Columns {
		if col.Title == columnFlag {
			return date, col.ID, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("column '%s' not found", columnFlag)
}

func noteColumnFlag() StringFlag {
	return StringFlag{Name: "column", Usage: "column id or title (default: first column)"}
}
