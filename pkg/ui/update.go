package ui

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lsi/pkg/todotxt"
	"lsi/pkg/utils"
)

// fileChangedMsg reports an external modification of the todo file.
type fileChangedMsg struct{}

// editorFinishedMsg reports that the external editor exited.
type editorFinishedMsg struct{ err error }

// waitForFileChange blocks on the watcher channel and converts the next
// notification into a message. It is re-issued after every delivery.
func waitForFileChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.Quit):
				// A quit key first clears an active filter; quitting takes
				// a second press.
				if m.filterText != "" {
					m.filterText = ""
					m.refresh()
					return m, nil
				}
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.CursorUp):
				m.moveCursor(-1)

			case key.Matches(msg, m.keyMap.CursorDown):
				m.moveCursor(1)

			case key.Matches(msg, m.keyMap.Home):
				m.cursor = 0
				m.clampScroll()

			case key.Matches(msg, m.keyMap.End):
				m.cursor = len(m.items) - 1
				m.clampScroll()

			case key.Matches(msg, m.keyMap.Filter):
				m.mode = FilterMode
				m.filterInput.SetValue(m.filterText)
				m.filterInput.CursorEnd()
				m.filterInput.Focus()

			case key.Matches(msg, m.keyMap.Reload):
				m.reload()

			case key.Matches(msg, m.keyMap.Edit):
				if cmd := m.editCmd(); cmd != nil {
					return m, cmd
				}

			case key.Matches(msg, m.keyMap.OpenURL):
				m.openSelectedURL()

			case key.Matches(msg, m.keyMap.MarkDone):
				if it, ok := m.selected(); ok {
					m.toggleDone(it)
				}

			case key.Matches(msg, m.keyMap.IncPriority):
				if it, ok := m.selected(); ok {
					m.setPriority(it, todotxt.NextPriority(it.Priority))
				}

			case key.Matches(msg, m.keyMap.DecPriority):
				if it, ok := m.selected(); ok {
					m.setPriority(it, todotxt.PrevPriority(it.Priority))
				}

			case key.Matches(msg, m.keyMap.ClearPriority):
				if it, ok := m.selected(); ok && it.HasPriority() {
					m.setPriority(it, 0)
				}

			case key.Matches(msg, m.keyMap.ToggleSort):
				m.sortByPriority = !m.sortByPriority
				m.refresh()

			case key.Matches(msg, m.keyMap.Dialog):
				m.openDialog()

			default:
				// Shifted letters assign that priority directly.
				if s := msg.String(); len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
					if it, ok := m.selected(); ok {
						m.setPriority(it, s[0])
					}
				}
			}

		case FilterMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.filterInput.Blur()
				if m.filterText != "" {
					m.filterText = ""
					m.refresh()
					return m, nil
				}
				return m, tea.Quit

			case "enter":
				m.filterText = m.filterInput.Value()
				m.mode = NormalMode
				m.filterInput.Blur()
				m.refresh()

			default:
				m.filterInput, cmd = m.filterInput.Update(msg)
				cmds = append(cmds, cmd)

				// Filter as the user types.
				if v := m.filterInput.Value(); v != m.filterText {
					m.filterText = v
					m.refresh()
				}
			}

		case DialogMode:
			switch {
			case msg.String() == "esc" || msg.String() == "q":
				m.mode = NormalMode
				m.dialogActions = nil

			case key.Matches(msg, m.keyMap.CursorUp):
				if m.dialogCursor > 0 {
					m.dialogCursor--
				}

			case key.Matches(msg, m.keyMap.CursorDown):
				if m.dialogCursor < len(m.dialogActions)-1 {
					m.dialogCursor++
				}

			case msg.String() == "enter" || msg.String() == " ":
				if m.dialogCursor < len(m.dialogActions) {
					action := m.dialogActions[m.dialogCursor]
					m.mode = NormalMode
					m.dialogActions = nil
					if cmd := action.run(&m); cmd != nil {
						return m, cmd
					}
				}
			}

		case HelpViewMode:
			switch msg.String() {
			case "esc", "ctrl+b", "q":
				m.mode = NormalMode
			}
		}

	case tea.MouseMsg:
		if m.mode != NormalMode {
			break
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			m.moveCursor(1)
		case tea.MouseButtonLeft:
			if msg.Action != tea.MouseActionPress {
				break
			}
			// Rows start below the title bar.
			row := m.scrollOffset + msg.Y - listTopMargin
			if row >= 0 && row < len(m.items) {
				m.cursor = row
				m.clampScroll()
			}
		}

	case fileChangedMsg:
		utils.Log.Debug("file changed on disk, reloading")
		m.reload()
		m.notice = "reloaded: file changed on disk"
		cmds = append(cmds, waitForFileChange(m.fileEvents))

	case editorFinishedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.reload()
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.clampScroll()
	}

	return m, tea.Batch(cmds...)
}

// moveCursor shifts the selection, clamping at both ends.
func (m *Model) moveCursor(delta int) {
	m.notice = ""
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	m.clampScroll()
}

// reload re-reads the file and re-applies filter and selection.
func (m *Model) reload() {
	m.err = nil
	m.notice = ""
	if err := m.store.Reload(); err != nil {
		m.err = err
		return
	}
	m.refresh()
}

// toggleDone flips the completion state of an item.
func (m *Model) toggleDone(it todotxt.Item) {
	m.err = nil
	if err := m.store.SetDone(it.SourceLine, !it.Done); err != nil {
		m.err = err
		return
	}
	m.refresh()
}

// setPriority writes a new priority for an item. No-op transitions (for
// example decrementing an unset priority) skip the write entirely.
func (m *Model) setPriority(it todotxt.Item, priority byte) {
	if it.Priority == priority {
		return
	}
	m.err = nil
	if err := m.store.SetPriority(it.SourceLine, priority); err != nil {
		m.err = err
		return
	}
	m.refresh()
}

// editCmd suspends the TUI and opens the todo file in the user's editor,
// jumping to the selected line.
func (m *Model) editCmd() tea.Cmd {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vi"
	}

	var args []string
	if it, ok := m.selected(); ok {
		args = append(args, fmt.Sprintf("+%d", it.SourceLine))
	}
	args = append(args, m.store.Path())

	c := exec.Command(editor, args...)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// openSelectedURL opens the first URL found in the selected item.
func (m *Model) openSelectedURL() {
	it, ok := m.selected()
	if !ok {
		return
	}
	url, ok := findURL(it.Text)
	if !ok {
		m.notice = "no url in selected item"
		return
	}
	if err := utils.OpenBrowserURL(url); err != nil {
		m.err = err
		return
	}
	m.notice = "opened " + url
}

// openDialog builds the action list for the selected item.
func (m *Model) openDialog() {
	it, ok := m.selected()
	if !ok {
		return
	}

	doneLabel := "mark done"
	if it.Done {
		doneLabel = "mark not done"
	}

	actions := []dialogAction{
		{label: doneLabel, run: func(m *Model) tea.Cmd {
			m.toggleDone(it)
			return nil
		}},
		{label: "edit in editor", run: func(m *Model) tea.Cmd {
			return m.editCmd()
		}},
	}
	if url, ok := findURL(it.Text); ok {
		actions = append(actions, dialogAction{
			label: "open " + url,
			run: func(m *Model) tea.Cmd {
				m.openSelectedURL()
				return nil
			},
		})
	}

	m.dialogItem = it
	m.dialogActions = actions
	m.dialogCursor = 0
	m.mode = DialogMode
}
