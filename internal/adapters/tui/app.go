package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"diaro/internal/adapters/tui/views"
	"diaro/internal/application/commands"
	"diaro/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewViewer
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store    ports.EntryStore
	tmpl     commands.TemplateSource
	editor   ports.EditorOpener
	obsidian ports.ObsidianOpener

	state   ViewState
	browser *views.BrowserModel
	viewer  *views.ViewerModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store ports.EntryStore, tmpl commands.TemplateSource, index ports.JournalIndex, ed ports.EditorOpener, obs ports.ObsidianOpener) *App {
	return &App{
		store:    store,
		tmpl:     tmpl,
		editor:   ed,
		obsidian: obs,
		state:    ViewBrowser,
		browser:  views.NewBrowserModel(store, index),
		viewer:   views.NewViewerModel(store),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.viewer.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		// Let the viewer resize its viewport too
		_, cmd := a.viewer.Update(msg)
		return a, cmd

	// View switching messages
	case views.SwitchToViewerMsg:
		a.state = ViewViewer
		return a, a.viewer.SetEntry(msg.Entry)

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	case views.CreateTodayMsg:
		return a, a.createToday()

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case views.OpenObsidianMsg:
		return a, a.openObsidian(msg.Path)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewViewer:
		_, cmd = a.viewer.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (a *App) openObsidian(path string) tea.Cmd {
	if a.obsidian == nil {
		return nil
	}
	return func() tea.Msg {
		if err := a.obsidian.OpenFile(path); err != nil {
			return views.SwitchToBrowserMsg{}
		}
		return nil
	}
}

// createToday generates today's entry. Template generation can block on
// the text generator, so it runs as a command.
func (a *App) createToday() tea.Cmd {
	return func() tea.Msg {
		date := commands.Today()
		cmd := commands.NewCreateEntryCommand(a.store, a.tmpl, date, "")
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return views.CreateDoneMsg{Err: err}
		}
		return views.CreateDoneMsg{Message: result.Message}
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewViewer:
		return a.viewer.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}

// Run starts the TUI event loop
func Run(app *App) error {
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
