package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lsi/pkg/config"
	"lsi/pkg/filter"
	"lsi/pkg/todotxt"
)

// listTopMargin is the number of chrome lines above the first list row:
// the title bar and the blank line under it.
const listTopMargin = 2

// listBottomMargin covers the status line and help bar below the list.
const listBottomMargin = 3

// refresh recomputes the visible items from the store, re-applying the
// filter and sort, and keeps the selection on the same file line when it
// survives.
func (m *Model) refresh() {
	prevLine := 0
	if it, ok := m.selected(); ok {
		prevLine = it.SourceLine
	}

	m.items = filter.Apply(m.store.Items(), m.filterText)
	if m.sortByPriority {
		sortByPriority(m.items)
	}

	m.restoreSelection(prevLine)
}

// restoreSelection moves the cursor back to the item with the given source
// line. When that line is gone the cursor clamps to the nearest valid index.
func (m *Model) restoreSelection(sourceLine int) {
	if sourceLine > 0 {
		for i, it := range m.items {
			if it.SourceLine == sourceLine {
				m.cursor = i
				m.clampScroll()
				return
			}
		}
	}

	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampScroll()
}

// clampScroll keeps the cursor inside the visible window with minimal
// scrolling.
func (m *Model) clampScroll() {
	if m.cursor < 0 {
		m.cursor = 0
	}
	if len(m.items) == 0 {
		m.cursor = 0
		m.scrollOffset = 0
		return
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}

	rows := m.visibleRows()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+rows {
		m.scrollOffset = m.cursor - rows + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// visibleRows is how many list rows fit in the current terminal.
func (m Model) visibleRows() int {
	if m.height == 0 {
		// No WindowSizeMsg yet.
		return 20
	}
	rows := m.height - listTopMargin - listBottomMargin
	if rows < 1 {
		rows = 1
	}
	return rows
}

// selected returns the item under the cursor.
func (m Model) selected() (todotxt.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return todotxt.Item{}, false
	}
	return m.items[m.cursor], true
}

var urlRe = regexp.MustCompile(`https?://[^\s]+`)

// findURL returns the first http(s) URL in the text.
func findURL(text string) (string, bool) {
	url := urlRe.FindString(text)
	return url, url != ""
}

// highlightTags highlights project and context tags in text; all other
// words are rendered with the base style.
func highlightTags(text string, base lipgloss.Style, styles config.Styles) string {
	words := strings.Fields(text)
	var result strings.Builder

	for i, word := range words {
		if i > 0 {
			result.WriteString(" ")
		}

		if strings.HasPrefix(word, "+") && len(word) > 1 {
			result.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(styles.ProjectColor)).Render(word))
		} else if strings.HasPrefix(word, "@") && len(word) > 1 {
			result.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(styles.ContextColor)).Render(word))
		} else {
			result.WriteString(base.Render(word))
		}
	}

	return result.String()
}

// priorityColor picks the line color for an item. Priorities A through D
// have their own colors, everything else shares the last palette entry.
func priorityColor(it todotxt.Item, styles config.Styles) string {
	palette := styles.PriorityColors
	if len(palette) == 0 {
		return styles.NormalTextColor
	}
	idx := len(palette) - 1
	if it.HasPriority() {
		if p := int(it.Priority - 'A'); p < idx {
			idx = p
		}
	}
	return palette[idx]
}
