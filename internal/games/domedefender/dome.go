package domedefender

import (
	"github.com/vovakirdan/dome-defender/internal/config"
	"github.com/vovakirdan/dome-defender/internal/core"
)

// Dome is the goal circle at the center of the arena. It takes the color of
// the current defender.
type Dome struct {
	shape        core.Circle
	lighterRatio float64
}

// NewDome creates a yellow dome at the arena center with a radius of a quarter
// of the arena's shorter side.
func NewDome(arena Arena, cfg config.DomeShape) Dome {
	d := Dome{lighterRatio: cfg.EdgeLighterRatio}
	d.shape = core.NewCircleEdged(arena.SmallerSize()/4, arena.Center(), core.ColorYellow, core.ColorYellow, cfg.EdgeSize)
	d.SetColor(core.ColorYellow)
	return d
}

func (d Dome) Radius() float64        { return d.shape.Radius() }
func (d Dome) Position() core.Vector2 { return d.shape.Position() }
func (d Dome) Circle() core.Circle    { return d.shape }
func (d Dome) Color() core.Color      { return d.shape.FillColor() }
func (d Dome) EdgeColor() core.Color  { return d.shape.EdgeColor() }

// SetColor fills the dome with c and edges it with a lighter shade of c.
func (d *Dome) SetColor(c core.Color) {
	d.shape.SetColors(c, c.Lighter(d.lighterRatio))
}

func (d Dome) Draw(dst core.Screen) {
	dst.DrawCircle(d.shape)
}
