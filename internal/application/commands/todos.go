package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"diaro/internal/application"
	"diaro/internal/ports"
)

// ExtractTodosResult contains the result of extracting action items
type ExtractTodosResult struct {
	ID          string
	Todos       []string
	PlannerPath string
	Message     string
}

// ExtractTodosCommand pulls action items out of an entry's reflections
// and optionally appends them as unchecked tasks to a planner file
type ExtractTodosCommand struct {
	store    ports.EntryStore
	analyzer Analyzer

	Date        string
	PlannerPath string // empty means extract only, do not persist
}

// NewExtractTodosCommand creates a new ExtractTodosCommand
func NewExtractTodosCommand(store ports.EntryStore, analyzer Analyzer, date, plannerPath string) *ExtractTodosCommand {
	return &ExtractTodosCommand{
		store:       store,
		analyzer:    analyzer,
		Date:        date,
		PlannerPath: plannerPath,
	}
}

// Validate checks if the extract operation is valid
func (c *ExtractTodosCommand) Validate() error {
	if _, err := application.ValidateDate("date", c.Date); err != nil {
		return err
	}
	if !c.store.Exists(c.Date) {
		return &application.EntryError{ID: c.Date, Reason: application.ErrNotFound}
	}
	return nil
}

// Execute runs the extract todos command
func (c *ExtractTodosCommand) Execute(ctx context.Context) (*ExtractTodosResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	content, err := c.store.Read(c.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry: %w", err)
	}

	todos := c.analyzer.ExtractTodos(ctx, content)
	result := &ExtractTodosResult{ID: c.Date, Todos: todos}

	if len(todos) == 0 {
		result.Message = fmt.Sprintf("No action items found in %s", c.Date)
		return result, nil
	}

	if c.PlannerPath != "" {
		if err := appendToPlanner(c.PlannerPath, c.Date, todos); err != nil {
			return nil, fmt.Errorf("failed to update planner: %w", err)
		}
		result.PlannerPath = c.PlannerPath
		result.Message = fmt.Sprintf("Added %d %s from %s to %s", len(todos), pluralize(len(todos), "task", "tasks"), c.Date, c.PlannerPath)
		return result, nil
	}

	result.Message = fmt.Sprintf("Found %d action %s in %s", len(todos), pluralize(len(todos), "item", "items"), c.Date)
	return result, nil
}

// PlannerFile returns the planner file path for one entry's extracted
// tasks. Returns "" when the planner directory is unset.
func PlannerFile(plannerDir, date string) string {
	if plannerDir == "" {
		return ""
	}
	return filepath.Join(plannerDir, "todos-"+date+".md")
}

// appendToPlanner appends tasks as unchecked checkboxes, creating the
// planner file and its directory on first use.
func appendToPlanner(plannerPath, sourceID string, todos []string) error {
	if err := os.MkdirAll(filepath.Dir(plannerPath), 0o755); err != nil {
		return err
	}

	var b strings.Builder
	existing, err := os.ReadFile(plannerPath)
	if err == nil && len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n## From %s\n\n", sourceID)
	for _, todo := range todos {
		fmt.Fprintf(&b, "- [ ] %s\n", todo)
	}

	f, err := os.OpenFile(plannerPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(b.String())
	return err
}
