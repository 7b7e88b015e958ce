package domedefender

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/dome-defender/internal/config"
	"github.com/vovakirdan/dome-defender/internal/core"
)

// ErrUnknownMapping is returned by ParseMapping for unrecognized names.
var ErrUnknownMapping = errors.New("domedefender: unknown key mapping")

// Direction is one of the four movement directions.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

// StandardMapping names a predefined set of direction keys.
type StandardMapping int

const (
	MappingWASD StandardMapping = iota
	MappingIJKL
	MappingArrows
	MappingNum8426
)

// ParseMapping resolves a configuration name from config.KnownMappings. The
// position of a name in that list is its StandardMapping.
func ParseMapping(name string) (StandardMapping, error) {
	i := slices.Index(config.KnownMappings, name)
	if i < 0 {
		return 0, fmt.Errorf("%w %q", ErrUnknownMapping, name)
	}
	return StandardMapping(i), nil
}

// DirectionKeyMapping binds one key to each direction.
type DirectionKeyMapping struct {
	left  core.Key
	right core.Key
	up    core.Key
	down  core.Key
}

// NewDirectionKeyMapping creates a mapping from a standard layout.
func NewDirectionKeyMapping(m StandardMapping) DirectionKeyMapping {
	var km DirectionKeyMapping
	km.SetStandard(m)
	return km
}

// Key returns the key bound to a direction.
func (km DirectionKeyMapping) Key(d Direction) core.Key {
	switch d {
	case DirectionLeft:
		return km.left
	case DirectionRight:
		return km.right
	case DirectionUp:
		return km.up
	case DirectionDown:
		return km.down
	default:
		return core.KeyNone
	}
}

// SetKey rebinds a single direction.
func (km *DirectionKeyMapping) SetKey(d Direction, k core.Key) {
	switch d {
	case DirectionLeft:
		km.left = k
	case DirectionRight:
		km.right = k
	case DirectionUp:
		km.up = k
	case DirectionDown:
		km.down = k
	}
}

// SetKeys rebinds all four directions.
func (km *DirectionKeyMapping) SetKeys(left, up, right, down core.Key) {
	km.left = left
	km.up = up
	km.right = right
	km.down = down
}

// SetStandard rebinds all directions to a standard layout.
// Num8426 uses 8 for up and 2 for down, as printed on a numeric keypad.
func (km *DirectionKeyMapping) SetStandard(m StandardMapping) {
	switch m {
	case MappingWASD:
		km.SetKeys(core.KeyA, core.KeyW, core.KeyD, core.KeyS)
	case MappingIJKL:
		km.SetKeys(core.KeyJ, core.KeyI, core.KeyL, core.KeyK)
	case MappingArrows:
		km.SetKeys(core.KeyLeft, core.KeyUp, core.KeyRight, core.KeyDown)
	case MappingNum8426:
		km.SetKeys(core.KeyNum4, core.KeyNum8, core.KeyNum6, core.KeyNum2)
	}
}

// Direction returns the unit vector for the first held key in the order
// left, right, up, down, or the zero vector when none is held.
// Screen y grows downward, so up is (0, -1).
func (km DirectionKeyMapping) Direction(kb core.Keyboard) core.Vector2 {
	switch {
	case kb.IsKeyPressed(km.left):
		return core.NewVector2(-1, 0)
	case kb.IsKeyPressed(km.right):
		return core.NewVector2(1, 0)
	case kb.IsKeyPressed(km.up):
		return core.NewVector2(0, -1)
	case kb.IsKeyPressed(km.down):
		return core.NewVector2(0, 1)
	default:
		return core.Vector2{}
	}
}
