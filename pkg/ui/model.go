package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lsi/pkg/config"
	"lsi/pkg/keymaps"
	"lsi/pkg/store"
	"lsi/pkg/todotxt"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	FilterMode   // Mode for editing the filter text
	DialogMode   // Mode for the per-item action dialog
	HelpViewMode // Mode for displaying help
)

// dialogAction is one entry in the per-item action dialog.
type dialogAction struct {
	label string
	run   func(*Model) tea.Cmd
}

// Options control session behavior picked on the command line.
type Options struct {
	Simple        bool   // plain display, no colors
	InitialFilter string // filter text active at startup
}

// Model represents the application state
type Model struct {
	store         *store.Store
	items         []todotxt.Item // visible items after filtering and sorting
	cursor        int            // index into items
	scrollOffset  int            // first visible row
	width, height int
	err           error
	notice        string

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap
	opts   Options

	// View state
	filterText     string
	sortByPriority bool

	// Filter entry state
	mode        InputMode
	filterInput textinput.Model

	// Dialog state
	dialogItem    todotxt.Item
	dialogActions []dialogAction
	dialogCursor  int

	// External change notifications, nil when watching is off
	fileEvents <-chan struct{}
}

// NewModel creates a new UI model with the provided configuration
func NewModel(s *store.Store, cfg config.Config, styles config.Styles, opts Options) Model {
	filterInput := textinput.New()
	filterInput.Placeholder = "filter (text, @context, +project)"
	filterInput.Prompt = "/"
	filterInput.Width = 40

	m := Model{
		store:       s,
		config:      cfg,
		styles:      styles,
		keyMap:      keymaps.BuildKeyMap(cfg.KeyMap),
		opts:        opts,
		mode:        NormalMode,
		filterInput: filterInput,
		filterText:  opts.InitialFilter,
	}

	m.refresh()
	return m
}

// SetFileEvents wires the model to a channel of external change
// notifications, typically from store.Watch.
func (m *Model) SetFileEvents(ch <-chan struct{}) {
	m.fileEvents = ch
}

// Init initializes the model (required by Bubble Tea Model interface)
func (m Model) Init() tea.Cmd {
	if m.fileEvents != nil {
		return waitForFileChange(m.fileEvents)
	}
	return nil
}
