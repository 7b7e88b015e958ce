package tui

import (
	"time"

	"github.com/vovakirdan/dome-defender/internal/core"
)

// DefaultHoldWindow is how long a key reads as pressed after its last event.
// Terminals report key presses and auto-repeats but never releases.
const DefaultHoldWindow = 150 * time.Millisecond

// Keyboard implements core.Keyboard on top of terminal key events. A key is
// held from its press event until the hold window elapses without a repeat.
type Keyboard struct {
	hold  time.Duration
	until map[core.Key]time.Time
	now   func() time.Time
}

// NewKeyboard creates a keyboard with the given hold window.
func NewKeyboard(hold time.Duration) *Keyboard {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &Keyboard{
		hold:  hold,
		until: make(map[core.Key]time.Time),
		now:   time.Now,
	}
}

// Press records a key event.
func (k *Keyboard) Press(key core.Key) {
	if key == core.KeyNone {
		return
	}
	k.until[key] = k.now().Add(k.hold)
}

// Release forgets a key.
func (k *Keyboard) Release(key core.Key) {
	delete(k.until, key)
}

// ReleaseAll forgets every key.
func (k *Keyboard) ReleaseAll() {
	clear(k.until)
}

// IsKeyPressed implements core.Keyboard.
func (k *Keyboard) IsKeyPressed(key core.Key) bool {
	until, ok := k.until[key]
	if !ok {
		return false
	}
	if !k.now().Before(until) {
		delete(k.until, key)
		return false
	}
	return true
}

var _ core.Keyboard = (*Keyboard)(nil)
