package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"diaro/internal/adapters/editor"
	"diaro/internal/adapters/obsidian"
	"diaro/internal/application/commands"
)

var editCmd = &cobra.Command{
	Use:   "edit [date]",
	Short: "Open an entry in $EDITOR",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := commands.Today()
		if len(args) == 1 {
			date = args[0]
		}
		if err := requireEntry(date); err != nil {
			return err
		}
		return editor.NewOpener().OpenFile(GetStore().Path(date))
	},
}

var openCmd = &cobra.Command{
	Use:   "open [date]",
	Short: "Open an entry in Obsidian",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := commands.Today()
		if len(args) == 1 {
			date = args[0]
		}
		if err := requireEntry(date); err != nil {
			return err
		}
		return obsidian.NewOpener(GetStore().Root()).OpenFile(GetStore().Path(date))
	},
}

// requireEntry fails early with a readable error instead of opening a
// missing file.
func requireEntry(date string) error {
	readCmd := commands.NewReadEntryCommand(GetStore(), date)
	_, err := readCmd.Execute(context.Background())
	return err
}

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(openCmd)
}
