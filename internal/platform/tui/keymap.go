package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dome-defender/internal/core"
)

// KeyMap holds the host-level bindings. Everything else is forwarded to the
// game as a polled key.
type KeyMap struct {
	Quit   key.Binding
	Pause  key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// DefaultKeyMap returns the default host bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
	}
}

// GameHelp returns the bindings shown while a game runs.
func (k KeyMap) GameHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Quit}
}

// MenuHelp returns the bindings shown in the game picker.
func (k KeyMap) MenuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// terminalKeys translates Bubble Tea key names to polled keys. Digits stand
// in for the numeric keypad, which terminals report as plain digits.
var terminalKeys = map[string]core.Key{
	"a":     core.KeyA,
	"d":     core.KeyD,
	"i":     core.KeyI,
	"j":     core.KeyJ,
	"k":     core.KeyK,
	"l":     core.KeyL,
	"s":     core.KeyS,
	"w":     core.KeyW,
	"up":    core.KeyUp,
	"down":  core.KeyDown,
	"left":  core.KeyLeft,
	"right": core.KeyRight,
	"2":     core.KeyNum2,
	"4":     core.KeyNum4,
	"6":     core.KeyNum6,
	"8":     core.KeyNum8,
	" ":     core.KeySpace,
	"space": core.KeySpace,
	"enter": core.KeyEnter,
	"esc":   core.KeyEscape,
}

// MapKey translates a key message to a polled key, or core.KeyNone.
// Upper-case letters map like lower-case ones so Caps Lock does not freeze a player.
func MapKey(msg tea.KeyMsg) core.Key {
	name := msg.String()
	if k, ok := terminalKeys[name]; ok {
		return k
	}
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		return terminalKeys[string(name[0]+'a'-'A')]
	}
	return core.KeyNone
}
