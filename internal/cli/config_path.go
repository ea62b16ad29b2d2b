package cli

import (
	"fmt"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/settings"
	"github.com/spf13/cobra"
)

var configPathCmd = LeafCommand{
	Use:      "path",
	Short:    "Print the settings and document file locations",
	StrFlags: settingsOnlyFlags(),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, _, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		return runConfigPath(cmd, homeDir, settingsFlag)
	},
}.Build()

func runConfigPath(cmd *cobra.Command, homeDir, settingsFlag string) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, "")
	w := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("settings:"), Primary(ctx.settingsPath))
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("document:"), Primary(ctx.docPath))
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("config dir:"), Primary(settings.Dir(homeDir)))
	return nil
}
