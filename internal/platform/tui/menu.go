package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// MenuItem represents a selectable entry in the level menu.
type MenuItem struct {
	LevelID string // empty plays the whole campaign from the start
	Title   string
	Detail  string
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	scrollOffset   int
	width          int
	height         int
	highScore      int
	loadErr        error
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a level
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model listing the campaign and its levels.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	m.items = append(m.items, MenuItem{Title: "Campaign", Detail: "all levels"})
	all, err := platformer.Catalogue()
	if err != nil {
		m.loadErr = err
	}
	for _, lvl := range all {
		m.items = append(m.items, MenuItem{
			LevelID: lvl.ID,
			Title:   lvl.Name,
			Detail:  fmt.Sprintf("%dx%d", lvl.Grid.Width(), lvl.Grid.Height()),
		})
	}

	if store != nil {
		if hs, err := store.HighScore(platformer.GameID); err == nil {
			m.highScore = hs
		}
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.updateScroll()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.updateScroll()
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// visibleItems returns how many entries fit between header and footer.
func (m MenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// Menu styles
var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuItemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	menuCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuDetailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	subtitle := "Select a level"
	if m.highScore > 0 {
		subtitle = fmt.Sprintf("Select a level  |  Best: %d", m.highScore)
	}

	lines := []string{
		"",
		menuTitleStyle.Render("P L A T F O R M E R"),
		"",
		menuSubtitleStyle.Render(subtitle),
		"",
	}

	var list []string
	end := min(m.scrollOffset+m.visibleItems(), len(m.items))
	for i := m.scrollOffset; i < end; i++ {
		item := m.items[i]
		title := fmt.Sprintf("%-12s", item.Title)
		if i == m.cursor {
			list = append(list, menuCursorStyle.Render("> "+title)+" "+menuDetailStyle.Render(item.Detail))
			continue
		}
		list = append(list, menuItemStyle.Render(title)+" "+menuDetailStyle.Render(item.Detail))
	}
	// The list block is centered as a whole so entries stay left-aligned.
	lines = append(lines, lipgloss.JoinVertical(lipgloss.Left, list...))

	if m.loadErr != nil {
		lines = append(lines, "", menuErrorStyle.Render("Could not load levels: "+m.loadErr.Error()))
	}

	lines = append(lines, "", menuSubtitleStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"))

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 {
		return body
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	LevelID         string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

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

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.LevelID = m.Selected().LevelID
	} else {
		result.Quit = true
	}

	return result, nil
}
