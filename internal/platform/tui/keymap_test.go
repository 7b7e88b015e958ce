package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dome-defender/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Key
	}{
		{"w", runeKey('w'), core.KeyW},
		{"upper W", runeKey('W'), core.KeyW},
		{"l", runeKey('l'), core.KeyL},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{"digit 8", runeKey('8'), core.KeyNum8},
		{"digit 2", runeKey('2'), core.KeyNum2},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.KeySpace},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape},
		{"unmapped letter", runeKey('x'), core.KeyNone},
		{"unmapped upper", runeKey('X'), core.KeyNone},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapKey(tt.msg); got != tt.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestDefaultKeyMapBindings(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"q quits", runeKey('q'), keys.Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, keys.Quit},
		{"p pauses", runeKey('p'), keys.Pause},
		{"k moves up", runeKey('k'), keys.Up},
		{"down arrow moves down", tea.KeyMsg{Type: tea.KeyDown}, keys.Down},
		{"enter selects", tea.KeyMsg{Type: tea.KeyEnter}, keys.Select},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("key.Matches(%q) = false, expected true", tt.msg.String())
			}
		})
	}

	// Player movement keys must reach the game.
	for _, r := range []rune{'a', 'd', 'i', 'l', '4', '6'} {
		msg := runeKey(r)
		if key.Matches(msg, keys.Quit) || key.Matches(msg, keys.Pause) {
			t.Errorf("%q is bound by the host", r)
		}
	}
}

func TestHelpBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if got := len(keys.GameHelp()); got != 2 {
		t.Errorf("len(GameHelp()) = %d, expected 2", got)
	}
	if got := len(keys.MenuHelp()); got != 4 {
		t.Errorf("len(MenuHelp()) = %d, expected 4", got)
	}
}
