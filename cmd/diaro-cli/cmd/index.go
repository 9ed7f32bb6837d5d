package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"diaro/internal/application/commands"
)

var syncFull bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the SQLite index with the journal directory",
	Long: `Sync the SQLite index with the journal directory. Incremental by
default; a full rebuild is forced when the schema or journal path changed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		index, err := OpenIndex()
		if err != nil {
			return err
		}
		defer index.Close()

		syncCmd := commands.NewSyncIndexCommand(index, syncFull)
		result, err := syncCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show journal-wide statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		index, err := OpenIndex()
		if err != nil {
			return err
		}
		defer index.Close()

		if _, err := commands.NewSyncIndexCommand(index, false).Execute(ctx); err != nil {
			return err
		}

		statsCmd := commands.NewJournalStatsCommand(index)
		result, err := statsCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var linksCmd = &cobra.Command{
	Use:   "links <date>",
	Short: "Show which entries link to and from an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		index, err := OpenIndex()
		if err != nil {
			return err
		}
		defer index.Close()

		if _, err := commands.NewSyncIndexCommand(index, false).Execute(ctx); err != nil {
			return err
		}

		linksCmd := commands.NewEntryLinksCommand(index, args[0])
		result, err := linksCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Outgoing (%d):\n", len(result.Outgoing))
		for _, l := range result.Outgoing {
			fmt.Printf("  -> %s\n", l.TargetID)
		}
		fmt.Printf("Incoming (%d):\n", len(result.Incoming))
		for _, l := range result.Incoming {
			fmt.Printf("  <- %s\n", l.SourceID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(linksCmd)
	syncCmd.Flags().BoolVar(&syncFull, "full", false, "force a full rebuild")
}
