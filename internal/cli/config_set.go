package cli

import (
	"fmt"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/settings"
	"github.com/spf13/cobra"
)

var configSetCmd = LeafCommand{
	Use:      "set <key> <value>",
	Short:    "Change a setting",
	Args:     cobra.ExactArgs(2),
	StrFlags: settingsOnlyFlags(),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, _, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		return runConfigSet(cmd, homeDir, settingsFlag, args[0], args[1])
	},
}.Build()

func runConfigSet(cmd *cobra.Command, homeDir, settingsFlag, key, value string) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, "")

	entry, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown setting '%s'", key)
	}
	if err := entry.set(&ctx.settings, value); err != nil {
		return err
	}

	if err := settings.Save(ctx.settingsPath, ctx.settings); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		Silent(key), Text("="), Primary(entry.get(&ctx.settings)))
	return nil
}
