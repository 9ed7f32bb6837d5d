package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"diaro/internal/adapters/filesystem"
	"diaro/internal/application/commands"
	"diaro/internal/config"
)

var (
	traceDays int
	traceSave bool
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Generate a memory trace across the journal",
	Long: `Generate a longitudinal report across entries: theme evolution,
recurring patterns, relationships, and extracted reflections.

Examples:
  diaro-cli trace
  diaro-cli trace --days 30 --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		traceCmd := commands.NewMemoryTraceCommand(GetStore(), GetTracer(), traceDays, traceSave)
		result, err := traceCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Report)
		if result.SavedTo != "" {
			fmt.Printf("\nSaved to %s\n", result.SavedTo)
		}
		return nil
	},
}

var todosDryRun bool

var todosCmd = &cobra.Command{
	Use:   "todos [date]",
	Short: "Extract action items from an entry into the planner",
	Long: `Extract action items from an entry's brain dump and append them as
unchecked tasks to a dated planner file. Defaults to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := commands.Today()
		if len(args) == 1 {
			date = args[0]
		}
		ctx := context.Background()

		plannerFile := ""
		if !todosDryRun {
			plannerFile = commands.PlannerFile(filesystem.ExpandHome(config.PlannerPath()), date)
		}

		todosCmd := commands.NewExtractTodosCommand(GetStore(), GetEngine(), date, plannerFile)
		result, err := todosCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, todo := range result.Todos {
			fmt.Printf("- [ ] %s\n", todo)
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(todosCmd)
	traceCmd.Flags().IntVar(&traceDays, "days", 0, "limit the trace to the last N days (0 = all)")
	traceCmd.Flags().BoolVar(&traceSave, "save", false, "write the trace to memory-trace.md in the journal")
	todosCmd.Flags().BoolVar(&todosDryRun, "dry-run", false, "extract without writing to the planner")
}
