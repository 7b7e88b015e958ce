package tui

import (
	"math"
	"testing"
	"time"
)

func newTestTimer() (*FrameTimer, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	timer := &FrameTimer{now: clock.now}
	timer.Reset()
	return timer, clock
}

func TestFrameTimerTick(t *testing.T) {
	tests := []struct {
		name     string
		step     time.Duration
		expected float64
	}{
		{"one frame", 16 * time.Millisecond, 0.016},
		{"tenth of a second", 100 * time.Millisecond, 0.1},
		{"capped", 2 * time.Second, MaxFrameDelta.Seconds()},
		{"no time", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer, clock := newTestTimer()
			clock.advance(tt.step)
			timer.Tick()
			if got := timer.SecondsSinceLastTick(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("SecondsSinceLastTick() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestFrameTimerMeasuresEachFrame(t *testing.T) {
	timer, clock := newTestTimer()

	clock.advance(50 * time.Millisecond)
	timer.Tick()
	clock.advance(20 * time.Millisecond)
	timer.Tick()

	if got := timer.SecondsSinceLastTick(); math.Abs(got-0.02) > 1e-9 {
		t.Errorf("SecondsSinceLastTick() = %v, expected 0.02", got)
	}
}

func TestFrameTimerReset(t *testing.T) {
	timer, clock := newTestTimer()

	clock.advance(50 * time.Millisecond)
	timer.Tick()
	clock.advance(time.Minute)
	timer.Reset()

	if got := timer.SecondsSinceLastTick(); got != 0 {
		t.Errorf("SecondsSinceLastTick() after Reset = %v, expected 0", got)
	}

	clock.advance(10 * time.Millisecond)
	timer.Tick()
	if got := timer.SecondsSinceLastTick(); math.Abs(got-0.01) > 1e-9 {
		t.Errorf("SecondsSinceLastTick() = %v, expected 0.01", got)
	}
}
