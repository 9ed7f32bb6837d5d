package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"diaro/internal/adapters/claudecli"
	"diaro/internal/adapters/filesystem"
	"diaro/internal/adapters/ollama"
	"diaro/internal/adapters/sqlite"
	"diaro/internal/application/analysis"
	"diaro/internal/application/template"
	"diaro/internal/application/trace"
	"diaro/internal/config"
	"diaro/internal/logging"
	"diaro/internal/ports"
)

var (
	journalPath string
	store       *filesystem.Store
	engine      *analysis.Engine
	tmpl        *template.Generator
	tracer      *trace.Generator
)

var rootCmd = &cobra.Command{
	Use:   "diaro-cli",
	Short: "CLI for a markdown journal with memory links",
	Long: `diaro-cli manages a daily journal of markdown files: it creates entries
from a generated template, links finished entries to thematically related
ones, and reports on the journal as a whole.

Entries live in a flat directory as YYYY-MM-DD.md files and stay plain
markdown, readable without this tool.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if path := config.DebugLogPath(); path != "" {
			if err := logging.SetDebugFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
			}
		}

		var err error
		store, err = filesystem.NewStore(journalPath)
		if err != nil {
			return err
		}
		engine = analysis.NewEngine(store, newGenerator())
		tmpl = template.New(store, engine, config.RecentEntries())
		tracer = trace.New(store, engine)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&journalPath, "journal", "j", config.JournalPath(), "path to the journal directory")
}

// GetStore returns the initialized entry store
func GetStore() ports.EntryStore {
	return store
}

// GetEngine returns the initialized analysis engine
func GetEngine() *analysis.Engine {
	return engine
}

// GetTemplate returns the initialized template generator
func GetTemplate() *template.Generator {
	return tmpl
}

// GetTracer returns the initialized trace generator
func GetTracer() *trace.Generator {
	return tracer
}

// OpenIndex opens the SQLite index for the configured journal. Callers
// own the returned index and must Close it.
func OpenIndex() (*sqlite.Index, error) {
	index := sqlite.NewIndex()
	if err := index.Open(store.Root()); err != nil {
		return nil, err
	}
	return index, nil
}

func newGenerator() ports.TextGenerator {
	if config.Generator() == "claude" {
		return claudecli.New()
	}
	return ollama.New(ollama.Config{
		BaseURL:     config.OllamaURL(),
		Model:       config.OllamaModel(),
		Timeout:     config.OllamaTimeout(),
		Temperature: config.OllamaTemperature(),
		NumPredict:  config.OllamaNumPredict(),
	})
}
