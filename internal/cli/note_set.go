package cli

import (
	"fmt"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/spf13/cobra"
)

var noteSetCmd = LeafCommand{
	Use:   "set <date> <text>",
	Short: "Replace a cell's text",
	Args:  cobra.ExactArgs(2),
	StrFlags: append(contextFlags(),
		noteColumnFlag(),
	),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, fileFlag, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		columnFlag, _ := cmd.Flags().GetString("column")
		return runNoteSet(cmd, homeDir, settingsFlag, fileFlag, columnFlag, args[0], args[1], time.Now)
	},
}.Build()

func runNoteSet(cmd *cobra.Command, homeDir, settingsFlag, fileFlag, columnFlag, dateArg, text string, nowFn func() time.Time) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, fileFlag)
	doc, err := loadDocument(&ctx, fileFlag != "")
	if err != nil {
		return err
	}

	date, columnID, err := resolveNoteTarget(doc, dateArg, columnFlag)
	if err != nil {
		return err
	}

	doc.SetCell(date, columnID, text)
	if err := saveDocument(cmd, &ctx, doc, firstRecordDate(doc, nowFn())); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		Primary(dateutil.Format(date)), Silent(columnID), Text("updated"))
	return nil
}
