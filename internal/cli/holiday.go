package cli

import (
	"time"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/holiday"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/settings"
	"github.com/spf13/cobra"
)

var holidayCmd = GroupCommand{
	Use:   "holiday",
	Short: "Manage manual holiday dates and recurring rules",
	Subcommands: []*cobra.Command{
		holidayListCmd,
		holidayAddCmd,
		holidayRemoveCmd,
		holidayRuleCmd,
	},
}.Build()

// composedHolidayFunc builds the predicate for a date window: the manual
// set from settings plus the recurring rules expanded over [from, to].
func composedHolidayFunc(s settings.Settings, from, to time.Time) holiday.Func {
	manual := holiday.ParseSet(s.Holidays)
	return holiday.Compose(
		manual.Func(),
		holiday.RulesFunc(s.HolidayRules, from, to),
	)
}
