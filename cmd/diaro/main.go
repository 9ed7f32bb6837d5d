package main

import (
	"fmt"
	"os"

	"diaro/internal/adapters/claudecli"
	"diaro/internal/adapters/editor"
	"diaro/internal/adapters/filesystem"
	"diaro/internal/adapters/obsidian"
	"diaro/internal/adapters/ollama"
	"diaro/internal/adapters/sqlite"
	"diaro/internal/adapters/tui"
	"diaro/internal/application/analysis"
	"diaro/internal/application/template"
	"diaro/internal/config"
	"diaro/internal/logging"
	"diaro/internal/ports"
)

func main() {
	if path := config.DebugLogPath(); path != "" {
		if err := logging.SetDebugFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
		}
		defer logging.Close()
	}

	store, err := filesystem.NewStore(config.JournalPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine := analysis.NewEngine(store, newGenerator())
	tmpl := template.New(store, engine, config.RecentEntries())

	index := sqlite.NewIndex()
	var journalIndex ports.JournalIndex
	if err := index.Open(store.Root()); err == nil {
		journalIndex = index
		defer index.Close()
	}

	app := tui.NewApp(store, tmpl, journalIndex, editor.NewOpener(), obsidian.NewOpener(store.Root()))

	if err := tui.Run(app); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
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
