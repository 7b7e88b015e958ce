package tui

import (
	"time"

	"github.com/vovakirdan/dome-defender/internal/core"
)

// MaxFrameDelta caps a single frame step so a stalled terminal does not
// teleport players across the arena.
const MaxFrameDelta = 250 * time.Millisecond

// FrameTimer implements core.Timer with monotonic frame deltas.
type FrameTimer struct {
	last    time.Time
	elapsed time.Duration
	now     func() time.Time
}

// NewFrameTimer creates a timer starting now.
func NewFrameTimer() *FrameTimer {
	t := &FrameTimer{now: time.Now}
	t.Reset()
	return t
}

// Reset restarts the measurement, discarding the time since the last frame.
func (t *FrameTimer) Reset() {
	t.last = t.now()
	t.elapsed = 0
}

// Tick closes the current frame and records its duration.
func (t *FrameTimer) Tick() {
	now := t.now()
	t.elapsed = min(max(now.Sub(t.last), 0), MaxFrameDelta)
	t.last = now
}

// SecondsSinceLastTick implements core.Timer.
func (t *FrameTimer) SecondsSinceLastTick() float64 {
	return t.elapsed.Seconds()
}

var _ core.Timer = (*FrameTimer)(nil)
