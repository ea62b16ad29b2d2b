package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var columnResizeCmd = LeafCommand{
	Use:      "resize <id> <width>",
	Short:    "Set a column's display width",
	Args:     cobra.ExactArgs(2),
	StrFlags: contextFlags(),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, fileFlag, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		width, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid width '%s'", args[1])
		}
		return runColumnResize(cmd, homeDir, settingsFlag, fileFlag, args[0], width, time.Now)
	},
}.Build()

func runColumnResize(cmd *cobra.Command, homeDir, settingsFlag, fileFlag, id string, width int, nowFn func() time.Time) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, fileFlag)
	doc, err := loadDocument(&ctx, fileFlag != "")
	if err != nil {
		return err
	}

	if !doc.ResizeColumn(id, width) {
		return fmt.Errorf("column '%s' not found", id)
	}
	if err := saveDocument(cmd, &ctx, doc, firstRecordDate(doc, nowFn())); err != nil {
		return err
	}

	col := doc.Column(id)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		Silent(id), Text(fmt.Sprintf("width set to %d", col.Width)))
	return nil
}
