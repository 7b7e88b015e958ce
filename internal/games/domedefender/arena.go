package domedefender

import "github.com/vovakirdan/dome-defender/internal/core"

// Arena size limits per axis.
const (
	MinArenaSize = 50.0
	MaxArenaSize = 2000.0
)

// Arena is the bounded playfield. It owns no entities; it only answers
// geometric questions about positions.
type Arena struct {
	width  float64
	height float64
}

// NewArena creates an arena, clamping each axis to [MinArenaSize, MaxArenaSize].
func NewArena(width, height float64) Arena {
	return Arena{
		width:  core.ClampF(width, MinArenaSize, MaxArenaSize),
		height: core.ClampF(height, MinArenaSize, MaxArenaSize),
	}
}

func (a Arena) Width() float64  { return a.width }
func (a Arena) Height() float64 { return a.height }

// Center returns the middle of the playfield.
func (a Arena) Center() core.Vector2 {
	return core.NewVector2(a.width/2, a.height/2)
}

// SmallerSize returns the shorter dimension.
func (a Arena) SmallerSize() float64 {
	return min(a.width, a.height)
}

// LargerSize returns the longer dimension.
func (a Arena) LargerSize() float64 {
	return max(a.width, a.height)
}

// RestrictedPosition clamps an out-of-bounds axis onto the border.
// Axes are checked in the order x < 0, x > width, y < 0, y > height and only
// the first offending one is corrected.
func (a Arena) RestrictedPosition(p core.Vector2) core.Vector2 {
	switch {
	case p.X < 0:
		p.X = 0
	case p.X > a.width:
		p.X = a.width
	case p.Y < 0:
		p.Y = 0
	case p.Y > a.height:
		p.Y = a.height
	}
	return p
}

// WarpedPosition moves an out-of-bounds axis to the opposite border, using the
// same check order as RestrictedPosition.
func (a Arena) WarpedPosition(p core.Vector2) core.Vector2 {
	switch {
	case p.X < 0:
		p.X = a.width
	case p.X > a.width:
		p.X = 0
	case p.Y < 0:
		p.Y = a.height
	case p.Y > a.height:
		p.Y = 0
	}
	return p
}

// Draw paints the playfield background.
func (a Arena) Draw(dst core.Screen, background core.Color) {
	dst.Clear(background)
}
