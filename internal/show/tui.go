package show

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/QuesmaOrg/git-time-extractor/internal/display"
	"github.com/QuesmaOrg/git-time-extractor/internal/report"
)

// Styles
var (
	// Panel styles
	listPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	detailPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	// Selection styles
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("255"))

	// Tree indent
	indentStr = "  "

	// Expansion indicators
	expandedIndicator   = "▼"
	collapsedIndicator  = "▶"
	nonExpandablePrefix = " "
)

// model is the Bubble Tea model for the worklog viewer
type model struct {
	tree         *Tree
	visible      []Node
	cursor       int
	listOffset   int
	detailOffset int
	width        int
	height       int
	title        string
	quitting     bool
}

// NewModel creates a new TUI model over tree
func NewModel(tree *Tree, title string) tea.Model {
	return model{
		tree:    tree,
		visible: tree.FlattenVisible(),
		title:   title,
	}
}

// Init implements tea.Model
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		// Navigation
		case "j", "down":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				m.detailOffset = 0
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
				m.detailOffset = 0
			}
		case "g", "home":
			m.cursor = 0
			m.detailOffset = 0
		case "G", "end":
			m.cursor = max(len(m.visible)-1, 0)
			m.detailOffset = 0
		case "ctrl+d":
			m.cursor = max(min(m.cursor+m.listHeight()/2, len(m.visible)-1), 0)
			m.detailOffset = 0
		case "ctrl+u":
			m.cursor = max(m.cursor-m.listHeight()/2, 0)
			m.detailOffset = 0

		// Detail pane scrolling
		case "J", "shift+down":
			m.detailOffset++
		case "K", "shift+up":
			if m.detailOffset > 0 {
				m.detailOffset--
			}

		// Expand/Collapse
		case "e", "enter", "l", "right":
			m.tree.Expand(m.visible, m.cursor)
			m.visible = m.tree.FlattenVisible()
		case "c", "h", "left":
			m.cursor = m.tree.Collapse(m.visible, m.cursor)
			m.visible = m.tree.FlattenVisible()
		case "E":
			m.tree.ExpandAll()
			m.visible = m.tree.FlattenVisible()
		case "C":
			day := m.currentDay()
			m.tree.CollapseAll()
			m.visible = m.tree.FlattenVisible()
			m.cursor = indexOf(m.visible, day)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	// Ensure cursor stays in bounds
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}

	m.adjustListScroll()

	return m, nil
}

// currentDay returns the day node under or above the cursor
func (m model) currentDay() Node {
	for i := min(m.cursor, len(m.visible)-1); i >= 0; i-- {
		if m.visible[i].Type() == NodeTypeDay {
			return m.visible[i]
		}
	}
	return nil
}

func indexOf(nodes []Node, n Node) int {
	for i, candidate := range nodes {
		if candidate == n {
			return i
		}
	}
	return 0
}

// View implements tea.Model
func (m model) View() string {
	if m.quitting {
		return ""
	}

	if len(m.visible) == 0 {
		return "No commits to display\n"
	}

	// Wait for terminal dimensions
	if m.width < 20 || m.height < 10 {
		return "Loading..."
	}

	// Leave room for status bar (1 line) and borders (2 lines each panel)
	contentHeight := max(m.height-3, 5)
	listWidth := max(m.width*2/5, 10)
	detailWidth := max(m.width-listWidth-1, 10)

	listPanel := m.renderList(max(listWidth-2, 5), max(contentHeight-2, 3))
	detailPanel := m.renderDetail(max(detailWidth-2, 5), max(contentHeight-2, 3))

	listPanel = listPanelStyle.
		Width(max(listWidth-2, 5)).
		Height(max(contentHeight-2, 3)).
		Render(listPanel)

	detailPanel = detailPanelStyle.
		Width(max(detailWidth-2, 5)).
		Height(max(contentHeight-2, 3)).
		Render(detailPanel)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatusBar())
}

// renderList renders the tree list panel
func (m model) renderList(width, height int) string {
	var lines []string

	visibleStart := m.listOffset
	visibleEnd := min(m.listOffset+height, len(m.visible))

	for i := visibleStart; i < visibleEnd; i++ {
		lines = append(lines, m.renderTreeLine(m.visible[i], width, i == m.cursor))
	}

	// Pad with empty lines if needed
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// renderTreeLine renders a single tree line
func (m model) renderTreeLine(node Node, width int, selected bool) string {
	indent := strings.Repeat(indentStr, node.Depth())

	var indicator string
	if node.IsExpandable() {
		if node.IsExpanded() {
			indicator = expandedIndicator
		} else {
			indicator = collapsedIndicator
		}
	} else {
		indicator = nonExpandablePrefix
	}

	line := fmt.Sprintf("%s%s %s", indent, indicator, node.Label())
	line = truncateLine(line, width)

	// Pad to width
	if n := lipgloss.Width(line); n < width {
		line += strings.Repeat(" ", width-n)
	}

	if selected {
		line = selectedStyle.Render(line)
	}

	return line
}

// renderDetail renders the detail panel for the selected node
func (m model) renderDetail(width, height int) string {
	if m.cursor >= len(m.visible) {
		return "No selection"
	}

	var content string
	switch n := m.visible[m.cursor].(type) {
	case *DayNode:
		content = n.Detail()
		if !n.IsExpanded() && len(n.Children()) > 0 {
			var sb strings.Builder
			sb.WriteString(content)
			sb.WriteString(strings.Repeat("─", min(width-2, 40)))
			sb.WriteString("\nCommits - press 'e' to expand:\n")
			for _, child := range n.Children() {
				sb.WriteString(display.TruncateText(child.Label(), width-2))
				sb.WriteString("\n")
			}
			content = sb.String()
		}
	case *CommitNode:
		content = n.Detail()
	}

	lines := strings.Split(wrapText(content, width-2), "\n")

	// Apply scroll offset
	if m.detailOffset > 0 && m.detailOffset < len(lines) {
		lines = lines[m.detailOffset:]
	}

	if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

// renderStatusBar renders the status bar
func (m model) renderStatusBar() string {
	position := fmt.Sprintf("%d/%d", m.cursor+1, len(m.visible))

	context := fmt.Sprintf("%s, %s, %sh",
		display.Pluralize(m.tree.TotalDays, "day"),
		display.Pluralize(m.tree.TotalCommits, "commit"),
		report.FormatHours(m.tree.TotalMinutes))
	if m.title != "" {
		context = m.title + " | " + context
	}

	help := "j/k:nav  e:expand  c:collapse  E/C:all  J/K:scroll  q:quit"

	status := fmt.Sprintf(" %s | %s | %s", position, context, help)

	return statusBarStyle.Width(m.width).Render(status)
}

// Helper functions

func (m model) listHeight() int {
	return max(m.height-5, 1) // Account for borders and status bar
}

func (m *model) adjustListScroll() {
	visibleHeight := m.listHeight()

	// Scroll up if cursor is above visible area
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}

	// Scroll down if cursor is below visible area
	if m.cursor >= m.listOffset+visibleHeight {
		m.listOffset = m.cursor - visibleHeight + 1
	}
}

// truncateLine shortens line to width runes, keeping leading indentation
func truncateLine(line string, width int) string {
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	if width <= 3 {
		return string(runes[:max(width, 0)])
	}
	return string(runes[:width-3]) + "..."
}

func wrapText(s string, width int) string {
	if width < 1 {
		width = 1
	}

	var result strings.Builder
	for _, line := range strings.Split(s, "\n") {
		runes := []rune(line)
		for len(runes) > width {
			result.WriteString(string(runes[:width]))
			result.WriteString("\n")
			runes = runes[width:]
		}
		result.WriteString(string(runes))
		result.WriteString("\n")
	}
	return strings.TrimSuffix(result.String(), "\n")
}

// RunTUI starts the interactive worklog viewer
func RunTUI(tree *Tree, title string) error {
	p := tea.NewProgram(NewModel(tree, title), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
