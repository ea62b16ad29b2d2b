package cli

import (
	"github.com/spf13/cobra"
)

var columnCmd = GroupCommand{
	Use:   "column",
	Short: "Manage the document's column set",
	Subcommands: []*cobra.Command{
		columnListCmd,
		columnAddCmd,
		columnRenameCmd,
		columnResizeCmd,
		columnRemoveCmd,
	},
}.Build()
