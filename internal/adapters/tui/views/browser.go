package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"diaro/internal/adapters/tui/styles"
	"diaro/internal/domain"
	"diaro/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	New      key.Binding
	Edit     key.Binding
	Obsidian key.Binding
	Yank     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", "l"),
		key.WithHelp("enter", "read"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new entry for today"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Obsidian: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open in Obsidian"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel is the model for the entry list view
type BrowserModel struct {
	ViewState

	store   ports.EntryStore
	index   ports.JournalIndex
	entries []domain.Entry
	info    map[string]entryInfo
	cursor  int
}

type entryInfo struct {
	snippet   string
	words     int
	backlinks int
}

// NewBrowserModel creates a new browser model. The index may be nil;
// backlink counts are then omitted.
func NewBrowserModel(store ports.EntryStore, index ports.JournalIndex) *BrowserModel {
	return &BrowserModel{
		store: store,
		index: index,
		info:  make(map[string]entryInfo),
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadEntries
}

type entriesLoadedMsg struct {
	entries []domain.Entry
	info    map[string]entryInfo
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

func (m *BrowserModel) loadEntries() tea.Msg {
	entries, err := m.store.ListAll()
	if err != nil {
		return errMsg{err}
	}

	backlinks := m.backlinkCounts()

	info := make(map[string]entryInfo, len(entries))
	for _, entry := range entries {
		content, err := m.store.Read(entry.ID)
		if err != nil {
			continue
		}
		info[entry.ID] = entryInfo{
			snippet:   domain.Snippet(domain.ExtractBrainDump(content), 60),
			words:     len(strings.Fields(content)),
			backlinks: backlinks[entry.ID],
		}
	}
	return entriesLoadedMsg{entries: entries, info: info}
}

// backlinkCounts refreshes the index and counts incoming links per entry.
// The browser stays usable when the index is missing or stale.
func (m *BrowserModel) backlinkCounts() map[string]int {
	if m.index == nil {
		return nil
	}
	if _, err := m.index.SyncIncremental(); err != nil {
		return nil
	}

	counts := make(map[string]int)
	indexed, err := m.index.Entries()
	if err != nil {
		return nil
	}
	for _, ie := range indexed {
		incoming, err := m.index.LinksTo(ie.ID)
		if err != nil {
			continue
		}
		counts[ie.ID] = len(incoming)
	}
	return counts
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case entriesLoadedMsg:
		m.entries = msg.entries
		m.info = msg.info
		if m.cursor >= len(m.entries) {
			m.cursor = len(m.entries) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, m.loadEntries

	case CreateDoneMsg:
		if msg.Err != nil {
			m.SetMessage(msg.Err.Error(), true)
			return m, nil
		}
		m.SetMessage(msg.Message, false)
		return m, m.loadEntries

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Enter):
			if entry, ok := m.selectedEntry(); ok {
				return m, func() tea.Msg {
					return SwitchToViewerMsg{Entry: entry}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.New):
			return m, func() tea.Msg {
				return CreateTodayMsg{}
			}

		case key.Matches(msg, BrowserKeys.Edit):
			if entry, ok := m.selectedEntry(); ok {
				path := entry.Path
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Obsidian):
			if entry, ok := m.selectedEntry(); ok {
				path := entry.Path
				return m, func() tea.Msg {
					return OpenObsidianMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Yank):
			if entry, ok := m.selectedEntry(); ok {
				if err := clipboard.WriteAll(entry.Path); err != nil {
					m.SetMessage(fmt.Sprintf("copy failed: %v", err), true)
				} else {
					m.SetMessage(fmt.Sprintf("Copied %s", entry.Path), false)
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.loadEntries

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) selectedEntry() (domain.Entry, bool) {
	if m.cursor >= 0 && m.cursor < len(m.entries) {
		return m.entries[m.cursor], true
	}
	return domain.Entry{}, false
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Diaro"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Journal Browser"))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(styles.MutedText.Render("No entries yet. Press n to create today's entry."))
		b.WriteString("\n")
	}

	visible := m.visibleWindow()
	for i, entry := range visible.entries {
		b.WriteString(m.renderEntry(entry, visible.offset+i == m.cursor))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

type window struct {
	entries []domain.Entry
	offset  int
}

// visibleWindow keeps the cursor on screen for long journals
func (m *BrowserModel) visibleWindow() window {
	max := m.Height - 10
	if max < 5 {
		max = 5
	}
	if len(m.entries) <= max {
		return window{entries: m.entries}
	}

	offset := m.cursor - max/2
	if offset < 0 {
		offset = 0
	}
	if offset+max > len(m.entries) {
		offset = len(m.entries) - max
	}
	return window{entries: m.entries[offset : offset+max], offset: offset}
}

func (m *BrowserModel) renderEntry(entry domain.Entry, selected bool) string {
	dateStyle := styles.EntryDate
	marker := "  "
	if domain.IsWeekly(entry.Date) {
		dateStyle = styles.EntryWeekly
		marker = "🌅"
	}

	date := entry.ID
	if selected {
		date = styles.EntrySelected.Render(date)
	} else {
		date = dateStyle.Render(date)
	}

	info := m.info[entry.ID]
	snippet := info.snippet
	if snippet == "" {
		snippet = "(empty)"
	}

	meta := fmt.Sprintf("%dw", info.words)
	if info.backlinks > 0 {
		meta += fmt.Sprintf(" %d←", info.backlinks)
	}

	return fmt.Sprintf("%s %s  %s  %s",
		marker, date, styles.EntrySnippet.Render(snippet), styles.MutedText.Render(meta))
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"enter", "read"},
		{"n", "new"},
		{"e", "edit"},
		{"y", "copy path"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// Reload reloads the entry list from disk
func (m *BrowserModel) Reload() tea.Cmd {
	return m.loadEntries
}
