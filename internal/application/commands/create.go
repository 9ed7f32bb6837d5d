package commands

import (
	"context"
	"fmt"
	"time"

	"diaro/internal/application"
	"diaro/internal/domain"
	"diaro/internal/ports"
)

// CreateEntryResult contains the result of creating an entry
type CreateEntryResult struct {
	ID      string
	Path    string
	Content string
	Message string
}

// CreateEntryCommand creates a new journal entry from a generated template
type CreateEntryCommand struct {
	store ports.EntryStore
	tmpl  TemplateSource

	Date  string
	Focus string
}

// NewCreateEntryCommand creates a new CreateEntryCommand
func NewCreateEntryCommand(store ports.EntryStore, tmpl TemplateSource, date, focus string) *CreateEntryCommand {
	return &CreateEntryCommand{
		store: store,
		tmpl:  tmpl,
		Date:  date,
		Focus: focus,
	}
}

// Validate checks if the create operation is valid
func (c *CreateEntryCommand) Validate() error {
	if _, err := application.ValidateDate("date", c.Date); err != nil {
		return err
	}
	if c.store.Exists(c.Date) {
		return &application.EntryError{ID: c.Date, Reason: application.ErrAlreadyExists}
	}
	return nil
}

// Execute runs the create entry command
func (c *CreateEntryCommand) Execute(ctx context.Context) (*CreateEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	date, _ := domain.ParseEntryDate(c.Date)
	content, err := c.tmpl.Content(ctx, date, c.Focus)
	if err != nil {
		return nil, fmt.Errorf("failed to generate template: %w", err)
	}

	if err := c.store.Write(c.Date, content); err != nil {
		return nil, fmt.Errorf("failed to write entry: %w", err)
	}

	return &CreateEntryResult{
		ID:      c.Date,
		Path:    c.store.Path(c.Date),
		Content: content,
		Message: fmt.Sprintf("Created entry %s", c.Date),
	}, nil
}

// PreviewTemplateResult contains a rendered template without persisting it
type PreviewTemplateResult struct {
	ID      string
	Content string
}

// PreviewTemplateCommand renders the template an entry would be created
// with, without writing anything
type PreviewTemplateCommand struct {
	tmpl TemplateSource

	Date  string
	Focus string
}

// NewPreviewTemplateCommand creates a new PreviewTemplateCommand
func NewPreviewTemplateCommand(tmpl TemplateSource, date, focus string) *PreviewTemplateCommand {
	return &PreviewTemplateCommand{tmpl: tmpl, Date: date, Focus: focus}
}

// Validate checks if the preview operation is valid
func (c *PreviewTemplateCommand) Validate() error {
	_, err := application.ValidateDate("date", c.Date)
	return err
}

// Execute runs the preview template command
func (c *PreviewTemplateCommand) Execute(ctx context.Context) (*PreviewTemplateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	date, _ := domain.ParseEntryDate(c.Date)
	content, err := c.tmpl.Content(ctx, date, c.Focus)
	if err != nil {
		return nil, fmt.Errorf("failed to generate template: %w", err)
	}

	return &PreviewTemplateResult{ID: c.Date, Content: content}, nil
}

// Today returns the current date formatted as an entry identifier.
func Today() string {
	return domain.EntryID(time.Now())
}
