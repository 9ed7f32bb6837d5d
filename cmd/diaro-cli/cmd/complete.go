package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"diaro/internal/application/analysis"
	"diaro/internal/application/commands"
	"diaro/internal/config"
)

var completeCmd = &cobra.Command{
	Use:   "complete [date]",
	Short: "Analyze a finished entry and append its memory links",
	Long: `Analyze a finished entry and append a memory links section: wiki links
to thematically related entries plus topic tags. Defaults to today.

Examples:
  diaro-cli complete
  diaro-cli complete 2024-03-15`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := commands.Today()
		if len(args) == 1 {
			date = args[0]
		}
		ctx := context.Background()

		completeCmd := commands.NewCompleteEntryCommand(GetStore(), GetEngine(), date, analysis.DefaultMaxRelated)
		result, err := completeCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		if len(result.Tags) > 0 {
			fmt.Printf("Tags: %s\n", strings.Join(result.Tags, " "))
		}
		return nil
	},
}

var refreshCount int

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh backlinks on the most recent entries",
	Long: `Re-run relatedness analysis over the most recent entries so their
memory links pick up entries written after them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		refreshCmd := commands.NewRefreshRecentCommand(GetStore(), GetEngine(), refreshCount, analysis.DefaultMaxRelated)
		result, err := refreshCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, r := range result.Entries {
			if r.Err != nil {
				fmt.Printf("%s: %v\n", r.ID, r.Err)
				continue
			}
			fmt.Printf("%s: %d related\n", r.ID, r.RelatedCount)
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(refreshCmd)
	refreshCmd.Flags().IntVar(&refreshCount, "count", config.RecentEntries(), "how many recent entries to refresh")
}
