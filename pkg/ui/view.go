package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"lsi/pkg/todotxt"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode, FilterMode:
		sb.WriteString(m.titleBar(" lsi — " + m.store.Path() + " "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderList())
		sb.WriteString("\n")
		sb.WriteString(m.statusLine())

	case DialogMode:
		sb.WriteString(m.titleBar(" Item Actions "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderDialog())

	case HelpViewMode:
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderHelp())
	}

	// Notice or error message if any
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.ErrorColor))
		sb.WriteString("\n")
		sb.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	} else if m.notice != "" {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.AccentColor)).Render(m.notice))
	}

	// Bottom line: the filter input while editing it, the help bar otherwise
	sb.WriteString("\n")
	if m.mode == FilterMode {
		sb.WriteString(m.filterInput.View())
	} else {
		sb.WriteString(m.helpBar())
	}

	return sb.String()
}

// titleBar renders the accent-colored application title
func (m Model) titleBar(text string) string {
	if m.opts.Simple {
		return text
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.AccentColor)).
		Padding(0, 1).
		Render(text)
}

// renderList renders the visible window of items with line numbers
func (m Model) renderList() string {
	if len(m.items) == 0 {
		empty := "no items"
		if m.filterText != "" {
			empty = fmt.Sprintf("no items match %q", m.filterText)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.LineNumberColor)).Render(empty)
	}

	numWidth := 1
	for _, it := range m.items {
		if w := len(fmt.Sprint(it.SourceLine)); w > numWidth {
			numWidth = w
		}
	}

	var rows []string
	end := m.scrollOffset + m.visibleRows()
	if end > len(m.items) {
		end = len(m.items)
	}
	for i := m.scrollOffset; i < end; i++ {
		rows = append(rows, m.renderRow(i, m.items[i], numWidth))
	}
	return strings.Join(rows, "\n")
}

// renderRow renders a single item line: a dim line number, then the raw
// todo.txt line colored by priority.
func (m Model) renderRow(i int, it todotxt.Item, numWidth int) string {
	num := fmt.Sprintf("%*d", numWidth, it.SourceLine)
	body := it.String()
	selected := i == m.cursor

	if m.opts.Simple {
		marker := "  "
		if selected {
			marker = "> "
		}
		return fmt.Sprintf("%s%s %s", marker, num, body)
	}

	numStr := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.LineNumberColor)).Render(num)

	if selected {
		line := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.SelectedBgColor)).
			Bold(true).
			Render(" " + body)
		return numStr + line
	}

	if it.Done {
		line := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.DoneColor)).
			Faint(true).
			Render(body)
		return numStr + " " + line
	}

	base := lipgloss.NewStyle().Foreground(lipgloss.Color(priorityColor(it, m.styles)))
	n := prefixLen(it, body)
	return numStr + " " + base.Render(body[:n]) + highlightTags(body[n:], base, m.styles)
}

// prefixLen is the length of the structural prefix of a serialized line
// (markers, dates, priority) before the free text begins.
func prefixLen(it todotxt.Item, body string) int {
	n := len(body) - len(it.Text)
	if n < 0 || n > len(body) {
		return 0
	}
	return n
}

// statusLine summarizes position, filter and sort state
func (m Model) statusLine() string {
	pos := "0/0"
	if len(m.items) > 0 {
		pos = fmt.Sprintf("%d/%d", m.cursor+1, len(m.items))
	}

	parts := []string{pos}
	if m.filterText != "" {
		parts = append(parts, fmt.Sprintf("filter: %s", m.filterText))
	}
	if m.sortByPriority {
		parts = append(parts, "sorted by priority")
	}

	line := strings.Join(parts, " | ")
	if m.opts.Simple {
		return line
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor)).Render(line)
}

// renderDialog renders the per-item action picker
func (m Model) renderDialog() string {
	var sb strings.Builder

	sb.WriteString(m.dialogItem.String())
	sb.WriteString("\n\n")

	for i, action := range m.dialogActions {
		marker := "  "
		if i == m.dialogCursor {
			marker = "> "
		}
		label := action.label
		if !m.opts.Simple && i == m.dialogCursor {
			label = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
				Background(lipgloss.Color(m.styles.SelectedBgColor)).
				Bold(true).
				Render(label)
		}
		sb.WriteString(marker + label + "\n")
	}

	return sb.String()
}

// renderHelp renders the fullscreen key listing
func (m Model) renderHelp() string {
	var sb strings.Builder

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))

	addCommand := func(binding key.Binding) {
		sb.WriteString(fmt.Sprintf("%s: %s\n",
			descStyle.Render(binding.Help().Desc),
			keyStyle.Render(binding.Help().Key)))
	}

	addCommand(m.keyMap.CursorUp)
	addCommand(m.keyMap.CursorDown)
	addCommand(m.keyMap.Home)
	addCommand(m.keyMap.End)
	addCommand(m.keyMap.Filter)
	addCommand(m.keyMap.Reload)
	addCommand(m.keyMap.MarkDone)
	addCommand(m.keyMap.IncPriority)
	addCommand(m.keyMap.DecPriority)
	addCommand(m.keyMap.ClearPriority)
	addCommand(m.keyMap.ToggleSort)
	addCommand(m.keyMap.Edit)
	addCommand(m.keyMap.OpenURL)
	addCommand(m.keyMap.Dialog)
	addCommand(m.keyMap.ShowHelp)
	addCommand(m.keyMap.Quit)

	sb.WriteString("\n")
	sb.WriteString(descStyle.Render("A-Z: set that priority on the selected item"))
	sb.WriteString("\n")

	return sb.String()
}

// helpBar renders a sleek status bar with available actions
func (m Model) helpBar() string {
	var actions []string

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BorderColor))

	separator := separatorStyle.Render(" • ")

	addAction := func(k, desc string) {
		if m.opts.Simple {
			actions = append(actions, fmt.Sprintf("%s %s", k, desc))
			return
		}
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(k), descStyle.Render(desc)))
	}

	switch m.mode {
	case NormalMode:
		addAction("j/k", "move")
		addAction("/", "filter")
		addAction("d", "done")
		addAction("=/-", "priority")
		addAction("e", "edit")
		addAction("space", "actions")
		addAction("ctrl+b", "help")
		addAction("q", "quit")

	case DialogMode:
		addAction("j/k", "move")
		addAction("enter", "run")
		addAction("esc", "cancel")

	case HelpViewMode:
		addAction("ctrl+b/esc", "back")
	}

	if m.opts.Simple {
		return strings.Join(actions, " • ")
	}
	return strings.Join(actions, separator)
}
