package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"diaro/internal/application/commands"
	"diaro/internal/domain"
)

var readCmd = &cobra.Command{
	Use:   "read <date>",
	Short: "Print an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		readCmd := commands.NewReadEntryCommand(GetStore(), args[0])
		result, err := readCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Content)
		return nil
	},
}

var listCount int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		listCmd := commands.NewListRecentCommand(GetStore(), listCount)
		result, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(result.Entries) == 0 {
			fmt.Println("No entries found")
			return nil
		}

		for _, e := range result.Entries {
			snippet := ""
			if content, err := GetStore().Read(e.ID); err == nil {
				snippet = domain.Snippet(domain.ExtractBrainDump(content), 60)
			}
			fmt.Printf("%s  %s\n", e.ID, snippet)
		}
		if result.Total > len(result.Entries) {
			fmt.Printf("(%d of %d entries)\n", len(result.Entries), result.Total)
		}
		return nil
	},
}

var themesDays int

var themesCmd = &cobra.Command{
	Use:   "themes [date]",
	Short: "Show extracted themes",
	Long: `Show the themes of one entry, or without a date, how often each theme
appears across recent entries.

Examples:
  diaro-cli themes 2024-03-15
  diaro-cli themes --days 90`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if len(args) == 0 {
			freqCmd := commands.NewThemeFrequencyCommand(GetStore(), GetEngine(), themesDays)
			result, err := freqCmd.Execute(ctx)
			if err != nil {
				return err
			}
			for _, f := range result.Themes {
				fmt.Printf("%3d  %3d%%  %s\n", f.Count, f.Percent, f.Theme)
			}
			fmt.Println(result.Message)
			return nil
		}

		themesCmd := commands.NewShowThemesCommand(GetStore(), GetEngine(), args[0])
		result, err := themesCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if result.Themes.IsEmpty() {
			fmt.Printf("No themes found in %s\n", result.ID)
			return nil
		}
		fmt.Printf("Themes: %s\n", strings.Join(result.Themes, ", "))
		if len(result.Tags) > 0 {
			fmt.Printf("Tags:   %s\n", strings.Join(result.Tags, " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(themesCmd)
	listCmd.Flags().IntVar(&listCount, "count", 10, "how many entries to list")
	themesCmd.Flags().IntVar(&themesDays, "days", 30, "frequency window in days (0 = all)")
}
