package keymaps

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestBuildKeyMapDefaults(t *testing.T) {
	km := BuildKeyMap(nil)

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
	if !key.Matches(down, km.CursorDown) {
		t.Errorf("j does not match CursorDown")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyDown}, km.CursorDown) {
		t.Errorf("down arrow does not match CursorDown")
	}
	if key.Matches(down, km.CursorUp) {
		t.Errorf("j matches CursorUp")
	}
}

func TestBuildKeyMapOverride(t *testing.T) {
	km := BuildKeyMap(map[string]string{"Quit": "x"})

	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, km.Quit) {
		t.Errorf("override x does not match Quit")
	}
	if key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, km.Quit) {
		t.Errorf("default q still matches overridden Quit")
	}
}

func TestSpaceKeywordTranslation(t *testing.T) {
	km := BuildKeyMap(nil)

	if !key.Matches(tea.KeyMsg{Type: tea.KeySpace}, km.Dialog) {
		t.Errorf("space does not match Dialog")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, km.Dialog) {
		t.Errorf("enter does not match Dialog")
	}
}
