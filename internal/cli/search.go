package cli

import (
	"fmt"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/spf13/cobra"
)

var searchCmd = LeafCommand{
	Use:   "search <query>",
	Short: "Search cell text across all dates",
	Args:  cobra.ExactArgs(1),
	StrFlags: append(contextFlags(),
		StringFlag{Name: "from", Usage: "earliest date to include"},
		StringFlag{Name: "to", Usage: "latest date to include"},
	),
	IntFlags: []IntFlag{
		{Name: "limit", Usage: "maximum number of matches to print (0 = all)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, fileFlag, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		fromFlag, _ := cmd.Flags().GetString("from")
		toFlag, _ := cmd.Flags().GetString("to")
		limit, _ := cmd.Flags().GetInt("limit")
		return runSearch(cmd, homeDir, settingsFlag, fileFlag, args[0], fromFlag, toFlag, limit)
	},
}.Build()

func runSearch(cmd *cobra.Command, homeDir, settingsFlag, fileFlag, query, fromFlag, toFlag string, limit int) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, fileFlag)
	doc, err := loadDocument(&ctx, fileFlag != "")
	if err != nil {
		return err
	}

	var from, to *time.Time
	if fromFlag != "" {
		d, err := dateutil.ParseDate(fromFlag)
		if err != nil {
			return err
		}
		from = &d
	}
	if toFlag != "" {
		d, err := dateutil.ParseDate(toFlag)
		if err != nil {
			return err
		}
		to = &d
	}

	matches := doc.Search(query, from, to)

	w := cmd.OutOrStdout()
	if len(matches) == 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Silent("no matches"))
		return nil
	}
	total := len(matches)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	for _, m := range matches {
		title := m.ColumnID
		if col := doc.Column(m.ColumnID); col != nil {
			title = col.Title
		}
		_, _ = fmt.Fprintf(w, "%s  %s  %s\n",
			Primary(dateutil.Format(m.Date)), Silent(title), Text(m.Snippet))
	}
	if len(matches) < total {
		_, _ = fmt.Fprintf(w, "\n%s\n", Silent(fmt.Sprintf("%d of %d match(es)", len(matches), total)))
	} else {
		_, _ = fmt.Fprintf(w, "\n%s\n", Silent(fmt.Sprintf("%d match(es)", total)))
	}
	return nil
}
