package cli

import (
	"fmt"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/holiday"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/settings"
	"github.com/spf13/cobra"
)

var holidayAddCmd = LeafCommand{
	Use:   "add <date>",
	Short: "Add a manual holiday date",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "settings", Usage: "settings file path (default: ~/.d-scheduler/settings.json)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, _, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		return runHolidayAdd(cmd, homeDir, settingsFlag, args[0])
	},
}.Build()

func runHolidayAdd(cmd *cobra.Command, homeDir, settingsFlag, dateArg string) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, "")

	date, err := dateutil.ParseDate(dateArg)
	if err != nil {
		return err
	}

	set := holiday.ParseSet(ctx.settings.Holidays)
	key := dateutil.Format(date)
	if !set.Add(key) {
		return fmt.Errorf("invalid date '%s'", dateArg)
	}
	ctx.settings.Holidays = set.Format()

	if err := settings.Save(ctx.settingsPath, ctx.settings); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Primary(key), Text("added as holiday"))
	return nil
}
