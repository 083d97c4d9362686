// Package help implements `faceswap help -i`, a two-pane terminal browser
// over every command and its merged flag set.
package help

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/ui/style"
)

// Browser returns the action bound to `help --interactive` for root.
func Browser(root *dispatchers.DispatchNode) dispatchers.CommandFunc {
	return func(_ []string, _ *dispatchers.ParsedArgs) error {
		return browser(root, DefaultDeps())
	}
}

func browser(root *dispatchers.DispatchNode, deps Deps) error {
	if !deps.IsTerminal() {
		return errors.New("help browser requires an interactive terminal")
	}
	return deps.Run(newModel(root, style.Colors()))
}

type sidebarItem struct {
	Name     string
	IsHeader bool
	Node     *dispatchers.DispatchNode
}

func buildSidebarItems(root *dispatchers.DispatchNode) []sidebarItem {
	grouped := make(map[dispatchers.CommandCategory][]*dispatchers.DispatchNode)
	for _, cmd := range dispatchers.CollectLeafCommands(root) {
		if cmd.Hidden {
			continue
		}
		grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
	}

	var items []sidebarItem
	for _, cat := range dispatchers.CategoryOrder() {
		cmds := grouped[cat]
		if len(cmds) == 0 {
			continue
		}
		items = append(items, sidebarItem{Name: strings.ToUpper(cat.String()), IsHeader: true})
		for _, cmd := range cmds {
			items = append(items, sidebarItem{Name: displayName(cmd), Node: cmd})
		}
	}
	return items
}

func displayName(node *dispatchers.DispatchNode) string {
	return strings.Join(node.Path[1:], " ")
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Search key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "switch pane")),
	Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

const (
	headerHeight = 2
	footerHeight = 1
)

type model struct {
	root         *dispatchers.DispatchNode
	allItems     []sidebarItem
	items        []sidebarItem
	cursor       int
	focusSidebar bool
	searching    bool
	search       textinput.Model
	content      viewport.Model
	help         help.Model
	colors       style.Palette
	width        int
	height       int
}

func newModel(root *dispatchers.DispatchNode, colors style.Palette) model {
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "filter commands"

	items := buildSidebarItems(root)
	m := model{
		root:         root,
		allItems:     items,
		items:        items,
		focusSidebar: true,
		search:       search,
		content:      viewport.New(72, 20),
		help:         help.New(),
		colors:       colors,
	}
	m.cursor = firstSelectable(m.items)
	m.refreshContent()
	return m
}

func firstSelectable(items []sidebarItem) int {
	for i, item := range items {
		if !item.IsHeader {
			return i
		}
	}
	return 0
}

func (m model) selected() *dispatchers.DispatchNode {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return m.items[m.cursor].Node
}

// filterItems keeps commands whose name or summary contains the query,
// along with the header of each category that still has a match.
func (m *model) filterItems() {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if query == "" {
		m.items = m.allItems
	} else {
		var filtered []sidebarItem
		var header *sidebarItem
		for i := range m.allItems {
			item := m.allItems[i]
			if item.IsHeader {
				header = &m.allItems[i]
				continue
			}
			if !strings.Contains(strings.ToLower(item.Name), query) &&
				!strings.Contains(strings.ToLower(item.Node.Summary), query) {
				continue
			}
			if header != nil {
				filtered = append(filtered, *header)
				header = nil
			}
			filtered = append(filtered, item)
		}
		m.items = filtered
	}
	m.cursor = firstSelectable(m.items)
	m.refreshContent()
}

func (m *model) moveCursor(delta int) {
	next := m.cursor
	for {
		next += delta
		if next < 0 || next >= len(m.items) {
			return
		}
		if !m.items[next].IsHeader {
			break
		}
	}
	m.cursor = next
	m.refreshContent()
}

func (m *model) refreshContent() {
	node := m.selected()
	if node == nil {
		m.content.SetContent(lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted)).Render("No matches"))
		return
	}
	m.content.SetContent(renderCommand(node, m.colors, m.content.Width))
	m.content.GotoTop()
}

func (m model) sidebarWidth() int {
	w := m.width / 4
	return max(24, min(w, 36))
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.content.Width = max(20, m.width-m.sidebarWidth()-3)
		m.content.Height = max(3, m.height-headerHeight-footerHeight)
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}

		switch {
		case msg.Type == tea.KeyEsc && m.search.Value() != "":
			m.search.SetValue("")
			m.filterItems()
			return m, nil
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Search):
			m.searching = true
			cmd := m.search.Focus()
			return m, cmd
		case key.Matches(msg, keys.Switch):
			m.focusSidebar = !m.focusSidebar
			return m, nil
		}

		if m.focusSidebar {
			switch {
			case key.Matches(msg, keys.Up):
				m.moveCursor(-1)
			case key.Matches(msg, keys.Down):
				m.moveCursor(1)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.filterItems()
		return m, nil
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.filterItems()
	return m, cmd
}

func (m model) View() string {
	width := m.width
	if width == 0 {
		width = 100
	}
	height := m.height
	if height == 0 {
		height = 30
	}
	mainHeight := height - headerHeight - footerHeight

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(mainHeight),
		lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(m.borderColor(!m.focusSidebar))).
			PaddingLeft(1).
			Render(m.content.View()),
	)

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(width), main, m.renderFooter(width))
}

func (m model) borderColor(focused bool) string {
	if focused {
		return m.colors.Info
	}
	return m.colors.Muted
}

func (m model) renderHeader(width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.Info)).Render("faceswap help")
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted))

	count := 0
	for _, item := range m.items {
		if !item.IsHeader {
			count++
		}
	}
	line := title + muted.Render(fmt.Sprintf(" (%d commands)", count))
	if m.searching || m.search.Value() != "" {
		line += "  " + m.search.View()
	}
	return lipgloss.NewStyle().Width(width).Padding(0, 1).Render(line) + "\n"
}

func (m model) renderSidebar(height int) string {
	width := m.sidebarWidth()
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted))

	offset := 0
	if m.cursor >= height {
		offset = m.cursor - height + 1
	}

	var lines []string
	if len(m.items) == 0 {
		lines = append(lines, muted.Italic(true).Render("No matches found"))
	}
	for i := offset; i < len(m.items) && len(lines) < height; i++ {
		item := m.items[i]
		switch {
		case item.IsHeader:
			lines = append(lines, muted.Bold(true).Render(item.Name))
		case i == m.cursor:
			selected := lipgloss.NewStyle().Bold(true)
			if m.focusSidebar {
				selected = selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color(m.colors.Info))
			} else {
				selected = selected.Foreground(lipgloss.Color(m.colors.Warning))
			}
			lines = append(lines, "> "+selected.Render(item.Name))
		default:
			lines = append(lines, "  "+item.Name)
		}
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

func (m model) renderFooter(width int) string {
	bindings := []key.Binding{keys.Search, keys.Switch, keys.Up, keys.Down, keys.Quit}
	if m.searching {
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "confirm")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "cancel")),
		}
	}
	return lipgloss.NewStyle().Width(width).Padding(0, 1).Render(m.help.ShortHelpView(bindings))
}

// renderCommand describes a command and every flag of its merged set:
// type, default, choices, path handling and file filters.
func renderCommand(node *dispatchers.DispatchNode, colors style.Palette, width int) string {
	info := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Info))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted))
	section := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Success))

	var b strings.Builder
	b.WriteString(info.Bold(true).Render(displayName(node)) + "\n")
	if node.Summary != "" {
		b.WriteString(muted.Render(node.Summary) + "\n")
	}
	b.WriteString("\n" + section.Render("USAGE") + "\n")
	b.WriteString("   " + info.Render(node.Usage) + "\n\n")

	if node.Description != "" {
		b.WriteString(section.Render("DESCRIPTION") + "\n")
		b.WriteString(wrapText(node.Description, width-3) + "\n\n")
	}

	var flags []dispatchers.FlagDescriptor
	for _, f := range node.Flags {
		if !f.Hidden {
			flags = append(flags, f)
		}
	}
	if len(flags) > 0 {
		b.WriteString(section.Render("FLAGS") + "\n")
		for _, f := range flags {
			name := strings.Join(f.Names, ", ")
			if hint := f.Hint(); hint != "" {
				name += " " + hint
			}
			b.WriteString("   " + info.Render(name) + "\n")
			if f.Description != "" {
				b.WriteString(indent(wrapText(f.Description, width-6), "      ") + "\n")
			}
			for _, detail := range flagDetails(f) {
				b.WriteString("      " + muted.Render(detail) + "\n")
			}
		}
		b.WriteString("\n")
	}

	if len(node.Args) > 0 {
		b.WriteString(section.Render("ARGUMENTS") + "\n")
		for _, a := range node.Args {
			desc := a.Description
			if a.Required {
				desc += " (required)"
			}
			b.WriteString("   " + info.Render(fmt.Sprintf("%-12s", a.Name)) + "  " + muted.Render(desc) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func flagDetails(f dispatchers.FlagDescriptor) []string {
	var details []string
	if f.TakesValue() {
		details = append(details, "type: "+f.Type.String())
	}
	if def := dispatchers.FormatDefault(f.Default); def != "" {
		details = append(details, "default: "+def)
	}
	if len(f.Choices) > 0 {
		details = append(details, "choices: "+strings.Join(f.Choices, ", "))
	}
	switch f.Path {
	case dispatchers.PathDir:
		details = append(details, "path: directory")
	case dispatchers.PathFile:
		details = append(details, "path: file")
	}
	for _, filter := range f.Filters {
		details = append(details, "filter: "+filter.String())
	}
	return details
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

func wrapText(text string, width int) string {
	if width <= 0 {
		width = 72
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		if len(line) <= width {
			out = append(out, line)
			continue
		}
		current := ""
		for _, word := range strings.Fields(line) {
			switch {
			case current == "":
				current = word
			case len(current)+1+len(word) <= width:
				current += " " + word
			default:
				out = append(out, current)
				current = word
			}
		}
		if current != "" {
			out = append(out, current)
		}
	}
	return strings.Join(out, "\n")
}
