package cli

import (
	"fmt"
	"os"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/holiday"
	"github.com/spf13/cobra"
)

var statusCmd = LeafCommand{
	Use:      "status",
	Short:    "Show the current document and configuration",
	StrFlags: contextFlags(),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, fileFlag, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		return runStatus(cmd, homeDir, settingsFlag, fileFlag)
	},
}.Build()

func runStatus(cmd *cobra.Command, homeDir, settingsFlag, fileFlag string) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, fileFlag)
	doc, err := loadDocument(&ctx, false)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	onDisk := "new (not yet saved)"
	if _, err := os.Stat(ctx.docPath); err == nil {
		onDisk = "on disk"
	}
	_, _ = fmt.Fprintf(w, "%s  %s  %s\n", Silent("Document:"), Primary(ctx.docPath), Silent(onDisk))
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Records:"), Text(fmt.Sprintf("%d dated entries", doc.RecordCount())))

	_, _ = fmt.Fprintf(w, "%s\n", Silent("Columns:"))
	for _, col := range doc.Columns {
		_, _ = fmt.Fprintf(w, "  %s  %s  %s\n",
			Silent(col.ID), Primary(col.Title), Text(fmt.Sprintf("width %d", col.Width)))
	}

	s := ctx.settings
	autosave := "disabled"
	if s.AutosaveEnabled {
		autosave = fmt.Sprintf("every %ds to %s", s.AutosaveIntervalSec, s.AutosavePath)
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Autosave:"), Text(autosave))
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Window:"),
		Text(fmt.Sprintf("extends by %d days, theme %s", s.ExpandDaysEach, s.Theme)))

	manual := holiday.ParseSet(s.Holidays)
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Holidays:"),
		Text(fmt.Sprintf("%d manual dates, %d recurring rules", len(manual), len(s.HolidayRules))))

	return nil
}
