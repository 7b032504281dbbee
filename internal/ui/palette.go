package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// Command is an action reachable from the palette
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Key         string
}

// DefaultCommands returns the commands the browser understands
func DefaultCommands() []Command {
	return []Command{
		{Name: "home", Aliases: []string{"dashboard"}, Description: "Show the overview", Key: "1"},
		{Name: "work-logs", Aliases: []string{"logs"}, Description: "Browse work logs", Key: "2"},
		{Name: "presentations", Aliases: []string{"slides", "decks"}, Description: "Browse presentations", Key: "3"},
		{Name: "filter", Aliases: []string{"search", "find"}, Description: "Filter the current view", Key: "/"},
		{Name: "clear", Description: "Clear the filter", Key: "esc"},
		{Name: "sort-title", Description: "Sort by title", Key: "t"},
		{Name: "sort-date", Description: "Sort by creation date", Key: "d"},
		{Name: "sort-slides", Description: "Sort by slide count", Key: "s"},
		{Name: "export", Aliases: []string{"csv", "download"}, Description: "Save the visible rows as CSV", Key: "e"},
		{Name: "copy", Aliases: []string{"yank"}, Description: "Copy the visible rows as CSV", Key: "y"},
		{Name: "reload", Aliases: []string{"refresh"}, Description: "Reload the catalog", Key: "r"},
		{Name: "quit", Aliases: []string{"exit"}, Description: "Exit", Key: "q"},
	}
}

// commandSource exposes names and aliases to fuzzy matching
type commandSource []Command

func (s commandSource) String(i int) string {
	return s[i].Name + " " + strings.Join(s[i].Aliases, " ")
}

func (s commandSource) Len() int {
	return len(s)
}

// Palette is a command palette with fuzzy matching
type Palette struct {
	input    textinput.Model
	commands []Command
	filtered []Command
	cursor   int
	width    int
	active   bool
}

// NewPalette creates a palette over the default commands
func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.Prompt = ": "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	ti.CharLimit = 32

	return Palette{
		input:    ti,
		commands: DefaultCommands(),
		filtered: DefaultCommands(),
	}
}

// Activate shows the palette with an empty query
func (p *Palette) Activate() tea.Cmd {
	p.active = true
	p.input.SetValue("")
	p.input.Focus()
	p.filtered = p.commands
	p.cursor = 0
	return textinput.Blink
}

// Deactivate hides the palette
func (p *Palette) Deactivate() {
	p.active = false
	p.input.Blur()
}

func (p Palette) IsActive() bool {
	return p.active
}

func (p *Palette) SetWidth(w int) {
	p.width = w
	p.input.Width = w - 10
}

// SelectedCommand returns the highlighted command name
func (p Palette) SelectedCommand() string {
	if p.cursor >= 0 && p.cursor < len(p.filtered) {
		return p.filtered[p.cursor].Name
	}
	return ""
}

// Update handles input. The returned string is the chosen command, if any.
func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd, string) {
	if !p.active {
		return p, nil, ""
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.Deactivate()
			return p, nil, ""
		case "enter":
			cmd := p.SelectedCommand()
			p.Deactivate()
			return p, nil, cmd
		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil, ""
		case "down", "ctrl+n":
			if p.cursor < len(p.filtered)-1 {
				p.cursor++
			}
			return p, nil, ""
		case "tab":
			if len(p.filtered) > 0 {
				p.input.SetValue(p.filtered[p.cursor].Name)
				p.input.CursorEnd()
			}
			return p, nil, ""
		}
	}

	oldValue := p.input.Value()

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)

	if p.input.Value() != oldValue {
		p.filter()
	}
	return p, cmd, ""
}

// filter ranks commands by fuzzy score, best first
func (p *Palette) filter() {
	query := strings.TrimSpace(p.input.Value())
	p.cursor = 0
	if query == "" {
		p.filtered = p.commands
		return
	}

	matches := fuzzy.FindFrom(query, commandSource(p.commands))
	p.filtered = make([]Command, 0, len(matches))
	for _, m := range matches {
		p.filtered = append(p.filtered, p.commands[m.Index])
	}
}

// View renders the palette
func (p Palette) View() string {
	if !p.active {
		return ""
	}

	width := max(p.width-4, 20)
	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		Padding(0, 1).
		Width(width)

	lines := []string{p.input.View(), ""}
	if len(p.filtered) == 0 {
		lines = append(lines, mutedTextStyle.Render("No matching commands"))
	}
	for i, c := range p.filtered {
		if i >= 8 {
			lines = append(lines, mutedTextStyle.Render("  ..."))
			break
		}
		line := c.Name
		if c.Key != "" {
			line += " [" + c.Key + "]"
		}
		line += "  " + mutedTextStyle.Render(c.Description)
		if i == p.cursor {
			lines = append(lines, selectedItemStyle.Render(line))
		} else {
			lines = append(lines, itemStyle.Render(line))
		}
	}
	return containerStyle.Render(strings.Join(lines, "\n"))
}
