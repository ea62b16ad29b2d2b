package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var columnRemoveCmd = LeafCommand{
	Use:   "remove <id>",
	Short: "Remove a column and its cell contents",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip the confirmation prompt"},
	},
	StrFlags: contextFlags(),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, fileFlag, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		confirm := NewConfirmFunc()
		if yes {
			confirm = AlwaysYes()
		}
		return runColumnRemove(cmd, homeDir, settingsFlag, fileFlag, args[0], confirm, time.Now)
	},
}.Build()

func runColumnRemove(cmd *cobra.Command, homeDir, settingsFlag, fileFlag, id string, confirm ConfirmFunc, nowFn func() time.Time) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, fileFlag)
	doc, err := loadDocument(&ctx, fileFlag != "")
	if err != nil {
		return err
	}

	col := doc.Column(id)
	if col == nil {
		return fmt.Errorf("column '%s' not found", id)
	}
	if len(doc.Columns) == 1 {
		return fmt.Errorf("cannot remove the last column")
	}

	affected := 0
	for _, rec := range doc.Cells {
		if _, ok := rec[id]; ok {
			affected++
		}
	}

	title := col.Title
	ok, err := confirm(fmt.Sprintf("Remove column '%s' and its content on %d day(s)?", title, affected))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Silent("aborted"))
		return nil
	}

	doc.RemoveColumn(id)
	if err := saveDocument(cmd, &ctx, doc, firstRecordDate(doc, nowFn())); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		Text("removed"), Primary(title), Silent(fmt.Sprintf("(%d day(s) affected)", affected)))
	return nil
}
