package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var columnRenameCmd = LeafCommand{
	Use:      "rename <id> <title>",
	Short:    "Rename a column",
	Args:     cobra.ExactArgs(2),
	StrFlags: contextFlags(),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, fileFlag, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		return runColumnRename(cmd, homeDir, settingsFlag, fileFlag, args[0], args[1], time.Now)
	},
}.Build()

func runColumnRename(cmd *cobra.Command, homeDir, settingsFlag, fileFlag, id, title string, nowFn func() time.Time) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, fileFlag)
	doc, err := loadDocument(&ctx, fileFlag != "")
	if err != nil {
		return err
	}

	if !doc.RenameColumn(id, title) {
		return fmt.Errorf("column '%s' not found", id)
	}
	if err := saveDocument(cmd, &ctx, doc, firstRecordDate(doc, nowFn())); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		Silent(id), Text("renamed to"), Primary(title))
	return nil
}
