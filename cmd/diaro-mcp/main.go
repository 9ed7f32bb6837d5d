package main

import (
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"diaro/internal/adapters/claudecli"
	"diaro/internal/adapters/filesystem"
	mcpadapter "diaro/internal/adapters/mcp"
	"diaro/internal/adapters/ollama"
	"diaro/internal/adapters/sqlite"
	"diaro/internal/application/analysis"
	"diaro/internal/application/template"
	"diaro/internal/application/trace"
	"diaro/internal/config"
	"diaro/internal/logging"
	"diaro/internal/ports"
)

func main() {
	journalFlag := flag.String("journal", config.JournalPath(), "path to the journal directory")
	flag.Parse()

	if path := config.DebugLogPath(); path != "" {
		if err := logging.SetDebugFile(path); err != nil {
			log.Printf("diaro-mcp: debug log: %v", err)
		}
		defer logging.Close()
	}

	store, err := filesystem.NewStore(*journalFlag)
	if err != nil {
		log.Fatalf("diaro-mcp: %v", err)
	}

	gen, pinger := newGenerator()
	engine := analysis.NewEngine(store, gen)
	tmpl := template.New(store, engine, config.RecentEntries())
	tracer := trace.New(store, engine)

	index := sqlite.NewIndex()
	var journalIndex ports.JournalIndex
	if err := index.Open(store.Root()); err != nil {
		log.Printf("diaro-mcp: index unavailable: %v", err)
	} else {
		journalIndex = index
		defer index.Close()
	}

	mcpServer := server.NewMCPServer(
		"diaro-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	deps := mcpadapter.Deps{
		Store:       store,
		Analyzer:    engine,
		Template:    tmpl,
		Tracer:      tracer,
		Index:       journalIndex,
		Pinger:      pinger,
		PlannerDir:  filesystem.ExpandHome(config.PlannerPath()),
		RecentCount: config.RecentEntries(),
		MaxRelated:  analysis.DefaultMaxRelated,
	}

	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("diaro-mcp: %v", err)
	}
}

// newGenerator picks the text backend from configuration. The claude CLI
// backend has no health endpoint, so its pinger is nil.
func newGenerator() (ports.TextGenerator, mcpadapter.Pinger) {
	if config.Generator() == "claude" {
		return claudecli.New(), nil
	}
	gen := ollama.New(ollama.Config{
		BaseURL:     config.OllamaURL(),
		Model:       config.OllamaModel(),
		Timeout:     config.OllamaTimeout(),
		Temperature: config.OllamaTemperature(),
		NumPredict:  config.OllamaNumPredict(),
	})
	return gen, gen
}
