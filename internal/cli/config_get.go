package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var configGetCmd = LeafCommand{
	Use:      "get [key]",
	Short:    "Print one setting, or all settable keys",
	Args:     cobra.MaximumNArgs(1),
	StrFlags: settingsOnlyFlags(),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, settingsFlag, _, err := getContextPaths(cmd)
		if err != nil {
			return err
		}
		key := ""
		if len(args) == 1 {
			key = args[0]
		}
		return runConfigGet(cmd, homeDir, settingsFlag, key)
	},
}.Build()

func runConfigGet(cmd *cobra.Command, homeDir, settingsFlag, key string) error {
	ctx := resolveContext(cmd, homeDir, settingsFlag, "")
	w := cmd.OutOrStdout()

	if key != "" {
		entry, ok := configKeys[key]
		if !ok {
			return fmt.Errorf("unknown setting '%s'", key)
		}
		_, _ = fmt.Fprintln(w, entry.get(&ctx.settings))
		return nil
	}

	keys := make([]string, 0, len(configKeys))
	for k := range configKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent(k), Text(configKeys[k].get(&ctx.settings)))
	}
	return nil
}
