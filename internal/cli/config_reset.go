package cli

import (
	"fmt"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/settings"
	"github.com/spf13/cobra"
)

var configResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Restore all settings to their defaults",
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip the confirmation prompt"},
	},
	StrFlags: settingsOnlyFlags(),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, _, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		confirm := NewConfirmFunc()
		if yes {
			confirm = AlwaysYes()
		}
		return runConfigReset(cmd, homeDir, settingsFlag, confirm)
	},
}.Build()

func runConfigReset(cmd *cobra.Command, homeDir, settingsFlag string, confirm ConfirmFunc) error {
	settingsPath := settingsFlag
	if settingsPath == "" {
		settingsPath = settings.Path(homeDir)
	}

	ok, err := confirm("Reset all settings to defaults?")
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Silent("aborted"))
		return nil
	}

	if err := settings.Save(settingsPath, settings.Default(homeDir)); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Text("settings reset"), Silent(settingsPath))
	return nil
}
