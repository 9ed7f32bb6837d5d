package commands

import (
	"context"
	"time"

	"diaro/internal/domain"
)

// TemplateSource renders new-entry content; *template.Generator satisfies it.
type TemplateSource interface {
	Content(ctx context.Context, entryDate time.Time, focus string) (string, error)
}

// Analyzer is the slice of the analysis engine the commands need;
// *analysis.Engine satisfies it.
type Analyzer interface {
	ThemesCached(ctx context.Context, content, id string) domain.ThemeSet
	FindRelated(ctx context.Context, content, excludeID string, max int) []string
	ExtractTodos(ctx context.Context, content string) []string
}

// TraceSource renders a memory trace over a set of entries;
// *trace.Generator satisfies it.
type TraceSource interface {
	Generate(ctx context.Context, entries []domain.Entry) string
}
