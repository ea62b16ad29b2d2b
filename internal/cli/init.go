package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/sheet"
	"github.com/spf13/cobra"
)

var initCmd = LeafCommand{
	Use:   "init <path>",
	Short: "Create a new document file",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "force", Usage: "overwrite an existing file"},
	},
	StrFlags: []StringFlag{
		{Name: "settings", Usage: "settings file path (default: ~/.d-scheduler/settings.json)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, _, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")
		return runInit(cmd, homeDir, settingsFlag, args[0], force, time.Now)
	},
}.Build()

func runInit(cmd *cobra.Command, homeDir, settingsFlag, path string, force bool, nowFn func() time.Time) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, path)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("file '%s' already exists (use --force to overwrite)", path)
	}

	doc := sheet.New(ctx.settings.Columns)
	now := nowFn()
	if err := saveDocument(cmd, &ctx, doc, firstRecordDate(doc, now)); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		Text("created"), Primary(path))
	for _, col := range doc.Columns {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s\n", Silent(col.ID), Text(col.Title))
	}
	return nil
}
