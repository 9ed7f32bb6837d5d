package mcp

import (
	"context"

	"diaro/internal/application/commands"
	"diaro/internal/ports"
)

// Pinger is an optional connectivity check on the text generator.
type Pinger interface {
	Ping(ctx context.Context) error
	ModelName() string
}

// Deps bundles the collaborators the MCP tools are wired to.
type Deps struct {
	Store    ports.EntryStore
	Analyzer commands.Analyzer
	Template commands.TemplateSource
	Tracer   commands.TraceSource
	Index    ports.JournalIndex

	// Pinger is nil when the generator has no health endpoint (claude CLI).
	Pinger Pinger

	// PlannerDir receives extracted todos, one dated file per entry.
	// Empty disables planner writes.
	PlannerDir string

	// RecentCount is the default window for list and refresh tools.
	RecentCount int

	// MaxRelated caps backlinks per entry.
	MaxRelated int
}
