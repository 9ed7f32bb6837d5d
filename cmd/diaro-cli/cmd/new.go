package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"diaro/internal/application/commands"
)

var newFocus string

var newCmd = &cobra.Command{
	Use:   "new [date]",
	Short: "Create a new entry",
	Long: `Create a new journal entry from a generated template.

The template carries reflection prompts derived from the themes of recent
entries, plus an empty brain dump section. Defaults to today.

Examples:
  diaro-cli new
  diaro-cli new 2024-03-15
  diaro-cli new --focus work`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := commands.Today()
		if len(args) == 1 {
			date = args[0]
		}
		ctx := context.Background()

		createCmd := commands.NewCreateEntryCommand(GetStore(), GetTemplate(), date, newFocus)
		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		fmt.Println(result.Path)
		return nil
	},
}

var templateCmd = &cobra.Command{
	Use:   "template [date]",
	Short: "Preview the template an entry would be created with",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := commands.Today()
		if len(args) == 1 {
			date = args[0]
		}
		ctx := context.Background()

		previewCmd := commands.NewPreviewTemplateCommand(GetTemplate(), date, newFocus)
		result, err := previewCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(templateCmd)
	newCmd.Flags().StringVar(&newFocus, "focus", "", "optional focus area to slant the prompts toward")
	templateCmd.Flags().StringVar(&newFocus, "focus", "", "optional focus area to slant the prompts toward")
}
