package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var columnAddCmd = LeafCommand{
	Use:      "add [title]",
	Short:    "Add a column",
	Args:     cobra.MaximumNArgs(1),
	StrFlags: contextFlags(),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, fileFlag, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		title := ""
		if len(args) == 1 {
			title = args[0]
		}
		return runColumnAdd(cmd, homeDir, settingsFlag, fileFlag, title, NewPromptKit(), time.Now)
	},
}.Build()

func runColumnAdd(cmd *cobra.Command, homeDir, settingsFlag, fileFlag, title string, kit PromptKit, nowFn func() time.Time) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, fileFlag)
	doc, err := loadDocument(&ctx, fileFlag != "")
	if err != nil {
		return err
	}

	if title == "" {
		if title, err = kit.Prompt("Column title"); err != nil {
			return err
		}
	}

	col := doc.AddColumn(title)
	if err := saveDocument(cmd, &ctx, doc, firstRecordDate(doc, nowFn())); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		Text("added"), Primary(col.Title), Silent("("+col.ID+")"))
	return nil
}
