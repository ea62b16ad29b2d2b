package cli

import (
	"fmt"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/spf13/cobra"
)

var noteGetCmd = LeafCommand{
	Use:   "get <date>",
	Short: "Print a day's cells",
	Args:  cobra.ExactArgs(1),
	StrFlags: append(contextFlags(),
		noteColumnFlag(),
	),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, fileFlag, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		columnFlag, _ := cmd.Flags().GetString("column")
		return runNoteGet(cmd, homeDir, settingsFlag, fileFlag, columnFlag, args[0])
	},
}.Build()

func runNoteGet(cmd *cobra.Command, homeDir, settingsFlag, fileFlag, columnFlag, dateArg string) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, fileFlag)
	doc, err := loadDocument(&ctx, fileFlag != "")
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	// With an explicit column, print just that cell's raw text.
	if columnFlag != "" {
		date, columnID, err := resolveNoteTarget(doc, dateArg, columnFlag)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, doc.Cell(date, columnID))
		return nil
	}

	date, err := dateutil.ParseDate(dateArg)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", Primary(dateutil.Format(date)), Silent("("+date.Weekday().String()+")"))
	empty := true
	for _, col := range doc.Columns {
		text := doc.Cell(date, col.ID)
		if text == "" {
			continue
		}
		empty = false
		_, _ = fmt.Fprintf(w, "  %s\n", Info(col.Title))
		_, _ = fmt.Fprintf(w, "    %s\n", Text(text))
	}
	if empty {
		_, _ = fmt.Fprintf(w, "  %s\n", Silent("(no content)"))
	}
	return nil
}
