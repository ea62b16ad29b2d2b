package cli

import (
	"fmt"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/holiday"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/settings"
	"github.com/spf13/cobra"
)

var holidayRemoveCmd = LeafCommand{
	Use:   "remove <date>",
	Short: "Remove a manual holiday date",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "settings", Usage: "settings file path (default: ~/.d-scheduler/settings.json)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, _, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		return runHolidayRemove(cmd, homeDir, settingsFlag, args[0])
	},
}.Build()

func runHolidayRemove(cmd *cobra.Command, homeDir, settingsFlag, dateArg string) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, "")

	date, err := dateutil.ParseDate(dateArg)
	if err != nil {
		return err
	}

	set := holiday.ParseSet(ctx.settings.Holidays)
	key := dateutil.Format(date)
	if !set.Contains(date) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Primary(key), Silent("was not a holiday"))
		return nil
	}
	set.Remove(key)
	ctx.settings.Holidays = set.Format()

	if err := settings.Save(ctx.settingsPath, ctx.settings); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Primary(key), Text("removed"))
	return nil
}
