// Package sandbox is a minimal engine exercising the drawing and input
// primitives: a caption and a circle that the arrow keys move around.
package sandbox

import (
	"math/rand"

	"github.com/vovakirdan/dome-defender/internal/core"
	"github.com/vovakirdan/dome-defender/internal/registry"
)

const (
	Width  = 800.0
	Height = 600.0

	CircleSpeed = 150.0 // world units per second
	JumpLength  = 2.5   // Space displacement per frame
)

// Game implements the sandbox demo.
type Game struct {
	rng     *rand.Rand
	caption core.Text
	circle  core.Circle
}

// New creates a new sandbox instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "sandbox"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sandbox"
}

func (g *Game) Width() float64  { return Width }
func (g *Game) Height() float64 { return Height }

// Reset places the caption and the circle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.caption = core.NewTextEdged("This is a test!", 36, core.NewVector2(400, 300),
		core.ColorWhite, core.ColorTransparent, 0, core.AlignCenterCenter)
	g.circle = core.NewCircleEdged(50, core.NewVector2(400, 450), core.ColorYellow, core.ColorRed, 5)
}

// Tic moves the circle with the arrow keys; Space nudges it in a random direction.
func (g *Game) Tic(kb core.Keyboard, timer core.Timer) bool {
	if kb.IsKeyPressed(core.KeyEscape) {
		return false
	}

	step := CircleSpeed * max(timer.SecondsSinceLastTick(), 0)
	moves := []struct {
		key core.Key
		dir core.Vector2
	}{
		{core.KeyLeft, core.NewVector2(-1, 0)},
		{core.KeyRight, core.NewVector2(1, 0)},
		{core.KeyUp, core.NewVector2(0, -1)},
		{core.KeyDown, core.NewVector2(0, 1)},
	}
	for _, m := range moves {
		if kb.IsKeyPressed(m.key) {
			g.circle.Move(m.dir.Mul(step))
		}
	}
	if kb.IsKeyPressed(core.KeySpace) {
		g.circle.Move(core.RandomUnit(g.rng).Mul(JumpLength))
	}
	return true
}

// Draw clears the screen and draws the caption and the circle.
func (g *Game) Draw(dst core.Screen) {
	dst.Clear(core.ColorBlack)
	dst.DrawText(g.caption)
	dst.DrawCircle(g.circle)
}

// Circle returns the movable circle.
func (g *Game) Circle() core.Circle {
	return g.circle
}

func init() {
	registry.Register("sandbox", func() registry.Game {
		return New()
	})
}
