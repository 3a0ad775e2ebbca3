package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
)

// MenuKeyMap defines the key bindings for the level picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	levels   []levels.Level
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	config   core.RuntimeConfig
	quitting bool
	selected string // ID of the chosen level
}

// NewMenuModel creates a new menu model listing lvls.
func NewMenuModel(lvls []levels.Level, cfg core.RuntimeConfig) MenuModel {
	h := help.New()
	h.Width = cfg.ScreenW

	m := MenuModel{
		levels: lvls,
		help:   h,
		keys:   DefaultMenuKeyMap(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
	m.table = m.createTable()
	return m
}

// createTable creates the level table sized to the window.
func (m *MenuModel) createTable() table.Model {
	nameWidth := core.Clamp(m.width-4-(4+8+8+6)-10, 10, 30)
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "ID", Width: 8},
		{Title: "Name", Width: nameWidth},
		{Title: "Size", Width: 8},
		{Title: "Pairs", Width: 6},
	}

	rows := make([]table.Row, len(m.levels))
	for i, l := range m.levels {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			l.ID,
			l.Name,
			fmt.Sprintf("%dx%d", l.Width(), l.Height()),
			fmt.Sprintf("%d", l.Pairs()),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-9, 3)), // Title, borders and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				m.selected = m.levels[m.table.Cursor()].ID
				return m, tea.Quit // Exit menu to start the level
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("P I P E S", m.width)))
	b.WriteString("\n")
	b.WriteString(centerText("Connect every pair of matching marks", m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
		b.WriteString(emptyStyle.Render(centerText("No levels found.", m.width)))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		box := tableStyle.Render(m.table.View())
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the ID of the chosen level, or "" if none.
func (m MenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	LevelID string
	Config  core.RuntimeConfig
	Quit    bool
}

// RunMenu runs the level picker and returns the selection result.
func RunMenu(lvls []levels.Level, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(lvls, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.Selected() == "" || m.IsQuitting() {
		result.Quit = true
		return result, nil
	}
	result.LevelID = m.Selected()
	return result, nil
}
