package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"diaro/internal/application"
	"diaro/internal/domain"
	"diaro/internal/ports"
)

// TraceFileName is the report written into the journal root when a
// memory trace is saved.
const TraceFileName = "memory-trace.md"

// MemoryTraceResult contains a rendered memory trace
type MemoryTraceResult struct {
	Report     string
	EntryCount int
	SavedTo    string
	Message    string
}

// MemoryTraceCommand renders a longitudinal report across entries
type MemoryTraceCommand struct {
	store  ports.EntryStore
	tracer TraceSource

	Days int  // 0 means the whole journal
	Save bool // write the report next to the entries
}

// NewMemoryTraceCommand creates a new MemoryTraceCommand
func NewMemoryTraceCommand(store ports.EntryStore, tracer TraceSource, days int, save bool) *MemoryTraceCommand {
	return &MemoryTraceCommand{store: store, tracer: tracer, Days: days, Save: save}
}

// Validate checks if the trace operation is valid
func (c *MemoryTraceCommand) Validate() error {
	if c.Days < 0 {
		return &application.ValidationError{Field: "days", Message: "must not be negative"}
	}
	return nil
}

// Execute runs the memory trace command
func (c *MemoryTraceCommand) Execute(ctx context.Context) (*MemoryTraceResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entries, err := c.store.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	if c.Days > 0 {
		cutoff := time.Now().AddDate(0, 0, -c.Days)
		var recent []domain.Entry
		for _, entry := range entries {
			if !entry.Date.Before(cutoff) {
				recent = append(recent, entry)
			}
		}
		entries = recent
	}

	report := c.tracer.Generate(ctx, entries)
	result := &MemoryTraceResult{
		Report:     report,
		EntryCount: len(entries),
		Message:    fmt.Sprintf("Traced %d %s", len(entries), pluralize(len(entries), "entry", "entries")),
	}

	if c.Save && len(entries) > 0 {
		path := filepath.Join(c.store.Root(), TraceFileName)
		if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
			return nil, fmt.Errorf("failed to save trace: %w", err)
		}
		result.SavedTo = path
		result.Message = fmt.Sprintf("Traced %d %s, saved to %s", len(entries), pluralize(len(entries), "entry", "entries"), path)
	}

	return result, nil
}
