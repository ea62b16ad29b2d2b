package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "d-scheduler",
	Short: "A scrollable date-sheet notebook for the terminal",
}

func init() {
	rootCmd.SetHelpFunc(colorizedHelpFunc())
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(columnCmd)
	rootCmd.AddCommand(holidayCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
