package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"diaro/internal/adapters/tui/styles"
	"diaro/internal/domain"
	"diaro/internal/ports"
)

// ViewerKeyMap defines key bindings for the entry viewer
type ViewerKeyMap struct {
	Back key.Binding
	Edit key.Binding
}

var ViewerKeys = ViewerKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "q", "h"),
		key.WithHelp("esc/q", "back"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
}

// ViewerModel renders one entry's content in a scrollable viewport
type ViewerModel struct {
	ViewState

	store    ports.EntryStore
	entry    domain.Entry
	viewport viewport.Model
	ready    bool
}

// NewViewerModel creates a new viewer model
func NewViewerModel(store ports.EntryStore) *ViewerModel {
	return &ViewerModel{store: store}
}

// SetEntry points the viewer at an entry and loads its content
func (m *ViewerModel) SetEntry(entry domain.Entry) tea.Cmd {
	m.entry = entry
	return m.loadContent
}

type contentLoadedMsg struct {
	content string
}

func (m *ViewerModel) loadContent() tea.Msg {
	content, err := m.store.Read(m.entry.ID)
	if err != nil {
		return errMsg{err}
	}
	return contentLoadedMsg{content: content}
}

// Init initializes the viewer
func (m *ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer
func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.resizeViewport()
		return m, nil

	case contentLoadedMsg:
		m.resizeViewport()
		m.viewport.SetContent(styles.ViewerBody.Render(msg.content))
		m.viewport.GotoTop()
		m.ready = true
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ViewerKeys.Back):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, ViewerKeys.Edit):
			path := m.entry.Path
			return m, func() tea.Msg {
				return OpenEditorMsg{Path: path}
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *ViewerModel) resizeViewport() {
	width := m.Width - 4
	height := m.Height - 6
	if width < 20 {
		width = 20
	}
	if height < 5 {
		height = 5
	}
	m.viewport.Width = width
	m.viewport.Height = height
}

// View renders the viewer
func (m *ViewerModel) View() string {
	var b strings.Builder

	header := m.entry.ID
	if domain.IsWeekly(m.entry.Date) {
		header += "  (weekly synthesis)"
	}
	b.WriteString(styles.ViewerHeader.Render(header))
	b.WriteString("\n\n")

	if !m.ready {
		b.WriteString(styles.MutedText.Render("Loading..."))
	} else {
		b.WriteString(m.viewport.View())
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(m.Message))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s%s%s %s",
		styles.HelpKey.Render("j/k"),
		styles.HelpDesc.Render("scroll"),
		styles.HelpSeparator.String(),
		styles.HelpKey.Render("e"),
		styles.HelpDesc.Render("edit"),
	))
	b.WriteString(styles.HelpSeparator.String())
	b.WriteString(fmt.Sprintf("%s %s",
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("back"),
	))

	return styles.App.Render(b.String())
}
