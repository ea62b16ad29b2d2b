package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var columnListCmd = LeafCommand{
	Use:      "list",
	Short:    "List columns in display order",
	StrFlags: contextFlags(),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, fileFlag, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		return runColumnList(cmd, homeDir, settingsFlag, fileFlag)
	},
}.Build()

func runColumnList(cmd *cobra.Command, homeDir, settingsFlag, fileFlag string) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, fileFlag)
	doc, err := loadDocument(&ctx, fileFlag != "")
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, col := range doc.Columns {
		_, _ = fmt.Fprintf(w, "%s  %s  %s\n",
			Silent(col.ID), Primary(col.Title), Text(fmt.Sprintf("width %d", col.Width)))
	}
	return nil
}
