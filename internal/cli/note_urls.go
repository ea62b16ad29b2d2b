package cli

import (
	"fmt"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/stringutil"
	"github.com/spf13/cobra"
)

var noteURLsCmd = LeafCommand{
	Use:      "urls <date>",
	Short:    "List URLs found in a day's cells",
	Args:     cobra.ExactArgs(1),
	StrFlags: contextFlags(),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, fileFlag, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		return runNoteURLs(cmd, homeDir, settingsFlag, fileFlag, args[0])
	},
}.Build()

func runNoteURLs(cmd *cobra.Command, homeDir, settingsFlag, fileFlag, dateArg string) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, fileFlag)
	doc, err := loadDocument(&ctx, fileFlag != "")
	if err != nil {
		return err
	}

	date, err := dateutil.ParseDate(dateArg)
	if err != nil {
		return err
	}

	var all []string
	seen := make(map[string]bool)
	for _, col := range doc.Columns {
		for _, u := range stringutil.ExtractURLs(doc.Cell(date, col.ID)) {
			if seen[u] {
				continue
			}
			seen[u] = true
			all = append(all, u)
		}
	}

	w := cmd.OutOrStdout()
	if len(all) == 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Silent("no URLs found"))
		return nil
	}
	for _, u := range all {
		_, _ = fmt.Fprintf(w, "%s\n", Info(u))
	}
	return nil
}
