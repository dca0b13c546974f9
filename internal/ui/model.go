// Package ui is a two-pane terminal browser for the project status timeline:
// entries on the left, the rendered entry body on the right.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"status-trace/internal/clipboard"
	"status-trace/internal/config"
	"status-trace/internal/timeline"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type Model struct {
	statusDir string

	list     list.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	width  int
	height int

	entries     []timeline.Entry
	selectedIdx int
	rendered    map[string]string

	status string
	err    error
}

type entriesMsg struct {
	entries []timeline.Entry
	err     error
}
type renderedMsg struct {
	cacheKey string
	content  string
}
type copiedMsg struct {
	err error
}

type entryItem struct {
	e timeline.Entry
}

func (i entryItem) Title() string {
	if i.e.Timestamp != "" {
		return i.e.Timestamp
	}
	return "(undated entry)"
}

func (i entryItem) Description() string {
	line := i.e.Body
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	return ansi.Truncate(strings.TrimSpace(line), 60, "...")
}

func (i entryItem) FilterValue() string {
	return strings.ToLower(i.e.Timestamp + " " + i.e.Body)
}

func NewModel(statusDir string) Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 40, 20)
	l.Title = "Session timeline"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	vp := viewport.New(60, 20)
	vp.SetContent("Loading timeline...")

	h := help.New()
	h.ShowAll = false

	return Model{
		statusDir: statusDir,
		list:      l,
		viewport:  vp,
		help:      h,
		keys:      defaultKeys(),
		rendered:  make(map[string]string),
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		entries, err := timeline.Entries(m.statusDir)
		return entriesMsg{entries: entries, err: err}
	}
}

func (m Model) renderCmd(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.entries) {
		return nil
	}
	entry := m.entries[idx]
	cacheKey := m.renderCacheKey(idx)
	wrap := m.viewport.Width - 2
	if wrap < 20 {
		wrap = 20
	}

	return func() tea.Msg {
		md := entryMarkdown(entry)
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(config.DefaultGlamourStyle),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return renderedMsg{cacheKey: cacheKey, content: md}
		}
		if out, renderErr := r.Render(md); renderErr == nil {
			return renderedMsg{cacheKey: cacheKey, content: out}
		}
		return renderedMsg{cacheKey: cacheKey, content: md}
	}
}

func (m Model) copyCmd(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.entries) {
		return nil
	}
	entry := m.entries[idx]
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return copiedMsg{err: clipboard.Copy(ctx, entryMarkdown(entry))}
	}
}

func entryMarkdown(e timeline.Entry) string {
	var b strings.Builder
	b.WriteString(timeline.EntryMarker + e.Timestamp + "\n\n")
	b.WriteString(e.Body)
	b.WriteString("\n")
	return b.String()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		cmds = append(cmds, m.renderCmd(m.selectedIdx))

	case entriesMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = "Timeline load failed"
			break
		}
		m.applyEntries(msg.entries)
		cmds = append(cmds, m.renderCmd(m.selectedIdx))

	case renderedMsg:
		m.rendered[msg.cacheKey] = msg.content
		if msg.cacheKey == m.renderCacheKey(m.selectedIdx) {
			m.viewport.SetContent(msg.content)
			m.viewport.GotoTop()
		}

	case copiedMsg:
		if msg.err != nil {
			m.err = msg.err
			if errors.Is(msg.err, clipboard.ErrToolNotFound) {
				m.status = "Could not copy: clipboard tool not found"
			} else {
				m.status = "Could not copy: " + msg.err.Error()
			}
		} else {
			m.status = "Copied entry to clipboard"
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			m.status = "Reloading..."
			return m, m.loadCmd()
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyCmd(m.selectedIdx)
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.HalfViewUp()
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.HalfViewDown()
			return m, nil
		}

		prev := m.selectedIdx
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
		m.selectedIdx = m.list.Index()
		if m.selectedIdx != prev {
			cmds = append(cmds, m.renderSelected())
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) applyEntries(in []timeline.Entry) {
	// Newest entry first in the list; the file itself stays oldest-first.
	m.entries = make([]timeline.Entry, 0, len(in))
	for i := len(in) - 1; i >= 0; i-- {
		m.entries = append(m.entries, in[i])
	}

	items := make([]list.Item, 0, len(m.entries))
	for _, e := range m.entries {
		items = append(items, entryItem{e: e})
	}
	m.list.SetItems(items)

	if len(m.entries) == 0 {
		m.selectedIdx = -1
		m.viewport.SetContent("No timeline entries yet.\n\nRun the stop hook against a project to create " + timeline.StatusFileName + ".")
		m.status = "Empty timeline"
		return
	}
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.entries) {
		m.selectedIdx = 0
	}
	m.list.Select(m.selectedIdx)
	m.status = fmt.Sprintf("%d entries", len(m.entries))
}

func (m *Model) renderSelected() tea.Cmd {
	if m.selectedIdx < 0 {
		return nil
	}
	cacheKey := m.renderCacheKey(m.selectedIdx)
	if content, ok := m.rendered[cacheKey]; ok {
		m.viewport.SetContent(content)
		m.viewport.GotoTop()
		return nil
	}
	m.viewport.SetContent("Rendering entry...")
	return m.renderCmd(m.selectedIdx)
}

func (m Model) renderCacheKey(idx int) string {
	return fmt.Sprintf("%d|w=%d", idx, m.viewport.Width)
}

func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	left, right := m.paneWidths()

	bodyHeight := m.height - 2
	if bodyHeight < 8 {
		bodyHeight = 8
	}
	m.list.SetSize(left-2, bodyHeight-2)
	m.viewport.Width = right - 2
	m.viewport.Height = bodyHeight - 2
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Starting..."
	}

	left, right := m.paneWidths()
	leftPane := panelStyle(true).Width(left).Height(m.height - 2).Render(m.list.View())
	rightPane := panelStyle(false).Width(right).Height(m.height - 2).Render(m.viewport.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.statusLine(),
		body,
		m.help.View(m.keys),
	)
}

func (m Model) statusLine() string {
	status := "dir=" + m.statusDir
	if strings.TrimSpace(m.status) != "" {
		status += "  " + m.status
	}
	if m.err != nil {
		status += "  err=" + m.err.Error()
	}
	return statusStyle.Render(ansi.Truncate(status, maxInt(m.width, 20), "..."))
}

func (m *Model) paneWidths() (int, int) {
	left := m.width / 3
	if left < 28 {
		left = 28
	}
	if left > m.width-28 {
		left = m.width - 28
	}
	if left < 20 {
		left = 20
	}
	right := m.width - left - 1
	if right < 20 {
		right = 20
	}
	return left, right
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	Background(lipgloss.Color("24")).
	Padding(0, 1)

func panelStyle(active bool) lipgloss.Style {
	border := lipgloss.NormalBorder()
	if active {
		return lipgloss.NewStyle().
			Border(border, true).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
	}
	return lipgloss.NewStyle().
		Border(border, true).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Reload   key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy entry"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageDown, k.PageUp, k.Reload, k.Copy, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Reload, k.Copy, k.Quit},
	}
}
