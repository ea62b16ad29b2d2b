package cli

import (
	"fmt"
	"strconv"

	"github.com/Inamiobservationcenter/D-Scheduler/internal/holiday"
	"github.com/Inamiobservationcenter/D-Scheduler/internal/settings"
	"github.com/spf13/cobra"
)

var holidayRuleCmd = GroupCommand{
	Use:   "rule",
	Short: "Manage recurring holiday rules",
	Subcommands: []*cobra.Command{
		holidayRuleAddCmd,
		holidayRuleRemoveCmd,
	},
}.Build()

var holidayRuleAddCmd = LeafCommand{
	Use:   "add <rule>",
	Short: "Add a recurring rule (e.g. \"every sunday\" or an RRULE)",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "settings", Usage: "settings file path (default: ~/.d-scheduler/settings.json)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, _, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		return runHolidayRuleAdd(cmd, homeDir, settingsFlag, args[0])
	},
}.Build()

func runHolidayRuleAdd(cmd *cobra.Command, homeDir, settingsFlag, rule string) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, "")

	canonical, err := holiday.ParseRule(rule)
	if err != nil {
		return err
	}
	for _, existing := range ctx.settings.HolidayRules {
		if existing == canonical {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Text(canonical), Silent("already present"))
			return nil
		}
	}
	ctx.settings.HolidayRules = append(ctx.settings.HolidayRules, canonical)

	if err := settings.Save(ctx.settingsPath, ctx.settings); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Text("added rule"), Primary(canonical))
	return nil
}

var holidayRuleRemoveCmd = LeafCommand{
	Use:   "remove <index>",
	Short: "Remove a recurring rule by its list index",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "settings", Usage: "settings file path (default: ~/.d-scheduler/settings.json)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, _, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		idx, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index '%s'", args[0])
		}
		return runHolidayRuleRemove(cmd, homeDir, settingsFlag, idx)
	},
}.Build()

func runHolidayRuleRemove(cmd *cobra.Command, homeDir, settingsFlag string, idx int) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, "")

	rules := ctx.settings.HolidayRules
	if idx < 0 || idx >= len(rules) {
		return fmt.Errorf("no rule at index %d", idx)
	}
	removed := rules[idx]
	ctx.settings.HolidayRules = append(rules[:idx], rules[idx+1:]...)

	if err := settings.Save(ctx.settingsPath, ctx.settings); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Text("removed rule"), Primary(removed))
	return nil
}
