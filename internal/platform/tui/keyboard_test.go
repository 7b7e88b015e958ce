package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/dome-defender/internal/core"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestKeyboard(hold time.Duration) (*Keyboard, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	kb := NewKeyboard(hold)
	kb.now = clock.now
	return kb, clock
}

func TestKeyboardHoldWindow(t *testing.T) {
	kb, clock := newTestKeyboard(100 * time.Millisecond)

	if kb.IsKeyPressed(core.KeyW) {
		t.Error("IsKeyPressed(W) = true before any press")
	}

	kb.Press(core.KeyW)
	if !kb.IsKeyPressed(core.KeyW) {
		t.Error("IsKeyPressed(W) = false right after press")
	}

	clock.advance(99 * time.Millisecond)
	if !kb.IsKeyPressed(core.KeyW) {
		t.Error("IsKeyPressed(W) = false inside the hold window")
	}

	clock.advance(time.Millisecond)
	if kb.IsKeyPressed(core.KeyW) {
		t.Error("IsKeyPressed(W) = true after the hold window")
	}
}

func TestKeyboardRepeatExtendsHold(t *testing.T) {
	kb, clock := newTestKeyboard(100 * time.Millisecond)

	kb.Press(core.KeyUp)
	clock.advance(80 * time.Millisecond)
	kb.Press(core.KeyUp)
	clock.advance(80 * time.Millisecond)

	if !kb.IsKeyPressed(core.KeyUp) {
		t.Error("IsKeyPressed(Up) = false, expected the repeat to extend the hold")
	}
}

func TestKeyboardRelease(t *testing.T) {
	kb, _ := newTestKeyboard(time.Second)

	kb.Press(core.KeyA)
	kb.Press(core.KeyD)
	kb.Release(core.KeyA)

	if kb.IsKeyPressed(core.KeyA) {
		t.Error("IsKeyPressed(A) = true after Release")
	}
	if !kb.IsKeyPressed(core.KeyD) {
		t.Error("IsKeyPressed(D) = false, expected it still held")
	}

	kb.ReleaseAll()
	if kb.IsKeyPressed(core.KeyD) {
		t.Error("IsKeyPressed(D) = true after ReleaseAll")
	}
}

func TestKeyboardIgnoresNone(t *testing.T) {
	kb, _ := newTestKeyboard(time.Second)
	kb.Press(core.KeyNone)
	if len(kb.until) != 0 {
		t.Errorf("len(until) = %d, expected 0", len(kb.until))
	}
}

func TestNewKeyboardDefaultHold(t *testing.T) {
	kb := NewKeyboard(0)
	if kb.hold != DefaultHoldWindow {
		t.Errorf("hold = %v, expected %v", kb.hold, DefaultHoldWindow)
	}
}
