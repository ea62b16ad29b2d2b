package cli

import (
	"fmt"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/spf13/cobra"
)

var noteClearCmd = LeafCommand{
	Use:   "clear <date>",
	Short: "Clear a day's cells",
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
		return runNoteClear(cmd, homeDir, settingsFlag, fileFlag, columnFlag, args[0], time.Now)
	},
}.Build()

func runNoteClear(cmd *cobra.Command, homeDir, settingsFlag, fileFlag, columnFlag, dateArg string, nowFn func() time.Time) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, fileFlag)
	doc, err := loadDocument(&ctx, fileFlag != "")
	if err != nil {
		return err
	}

	date, err := dateutil.ParseDate(dateArg)
	if err != nil {
		return err
	}

	if columnFlag != "" {
		_, columnID, err := resolveNoteTarget(doc, dateArg, columnFlag)
		if err != nil {
			return err
		}
		doc.SetCell(date, columnID, "")
	} else {
		for _, col := range doc.Columns {
			doc.SetCell(date, col.ID, "")
		}
	}

	if err := saveDocument(cmd, &ctx, doc, firstRecordDate(doc, nowFn())); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		Primary(dateutil.Format(date)), Text("cleared"))
	return nil
}
