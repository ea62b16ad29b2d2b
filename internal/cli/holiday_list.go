package cli

import (
	"fmt"
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/dateutil"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/holiday"
	"github.com/spf13/cobra"
)

var holidayListCmd = LeafCommand{
	Use:   "list",
	Short: "List manual holiday dates and recurring rules",
	StrFlags: []StringFlag{
		{Name: "settings", Usage: "settings file path (default: ~/.d-scheduler/settings.json)"},
	},
	IntFlags: []IntFlag{
		{Name: "year", Usage: "also expand recurring rules over the given year"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, _, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		year, _ := cmd.Flags().GetInt("year")
		return runHolidayList(cmd, homeDir, settingsFlag, year)
	},
}.Build()

func runHolidayList(cmd *cobra.Command, homeDir, settingsFlag string, year int) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, "")
	w := cmd.OutOrStdout()

	manual := holiday.ParseSet(ctx.settings.Holidays)
	if len(manual) == 0 && len(ctx.settings.HolidayRules) == 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Silent("no holidays configured"))
		return nil
	}

	if len(manual) > 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Silent("Dates:"))
		for _, d := range manual.Dates() {
			_, _ = fmt.Fprintf(w, "  %s  %s\n",
				Primary(dateutil.Format(d)), Silent("("+d.Weekday().String()+")"))
		}
	}
	if len(ctx.settings.HolidayRules) > 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Silent("Rules:"))
		for i, r := range ctx.settings.HolidayRules {
			_, _ = fmt.Fprintf(w, "  %s  %s\n", Silent(fmt.Sprintf("[%d]", i)), Text(r))
		}
		if year > 0 {
			from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
			to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
			expanded := holiday.ExpandRules(ctx.settings.HolidayRules, from, to)
			_, _ = fmt.Fprintf(w, "%s\n", Silent(fmt.Sprintf("Expanded for %d:", year)))
			for _, d := range expanded {
				_, _ = fmt.Fprintf(w, "  %s  %s\n",
					Primary(dateutil.Format(d)), Silent("("+d.Weekday().String()+")"))
			}
		}
	}
	return nil
}
