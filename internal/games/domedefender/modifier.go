package domedefender

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dome-defender/internal/config"
	"github.com/vovakirdan/dome-defender/internal/core"
)

// ModifierType says whether a pickup helps or hinders.
type ModifierType int

const (
	TypeBonus ModifierType = iota
	TypeMalus
)

func (t ModifierType) String() string {
	if t == TypeMalus {
		return "malus"
	}
	return "bonus"
}

// Effect is what a pickup changes on the player who takes it.
type Effect int

const (
	EffectSpeed Effect = iota
	EffectSize
	EffectWarping
	EffectHit
)

var effectLabels = [...]string{"Speed", "Size", "Warping", "Hit"}

// String returns the label drawn above the pickup.
func (e Effect) String() string {
	if e < 0 || int(e) >= len(effectLabels) {
		return "Unknown"
	}
	return effectLabels[e]
}

var (
	modifierShapeColor = core.NewColor(0.9, 0.9, 0.9)
	modifierTextColor  = core.NewColorRGBA(1, 1, 1, 0.5)
)

// Modifier is a pickup placed at random around the dome. Whenever a single
// player touches it, its effect is applied to that player and it respawns with
// a new type, effect and position.
type Modifier struct {
	cfg        config.ModifierConfig
	bonusColor core.Color
	malusColor core.Color
	rng        *rand.Rand

	kind      ModifierType
	effect    Effect
	shape     core.Circle
	typeShape core.Circle
	label     core.Text
}

// Pickup describes what happened during a Modifier tic.
type Pickup struct {
	Player    *Player // receiver of the effect, nil when none
	Type      ModifierType
	Effect    Effect
	Discarded bool // both players touched it at once
}

// NewModifier creates a modifier and gives it a first random placement.
func NewModifier(cfg config.ModifierConfig, bonus, malus core.Color, arena Arena, dome Dome, rng *rand.Rand) *Modifier {
	m := &Modifier{
		cfg:        cfg,
		bonusColor: bonus,
		malusColor: malus,
		rng:        rng,
		shape:      core.NewCircle(cfg.Radius, core.Vector2{}, modifierShapeColor),
		typeShape:  core.NewCircle(cfg.TypeRadius, core.Vector2{}, bonus),
		label:      core.NewTextEdged("", cfg.TextSize, core.Vector2{}, modifierTextColor, core.ColorTransparent, 0, core.AlignCenterCenter),
	}
	m.Randomize(arena, dome)
	return m
}

func (m *Modifier) Type() ModifierType      { return m.kind }
func (m *Modifier) Effect() Effect          { return m.effect }
func (m *Modifier) Position() core.Vector2  { return m.shape.Position() }
func (m *Modifier) Circle() core.Circle     { return m.shape }
func (m *Modifier) Label() core.Text        { return m.label }
func (m *Modifier) TypeCircle() core.Circle { return m.typeShape }

// Randomize draws a new type and effect, each uniformly, and a new position in
// the ring between the dome and half the arena's shorter side. The distance
// from the center is uniform in radius, so spawns are denser near the dome.
func (m *Modifier) Randomize(arena Arena, dome Dome) {
	m.kind = ModifierType(m.rng.Intn(2))
	m.effect = Effect(m.rng.Intn(len(effectLabels)))

	if m.kind == TypeBonus {
		m.typeShape.SetFill(m.bonusColor)
	} else {
		m.typeShape.SetFill(m.malusColor)
	}
	m.label.SetText(m.effect.String())

	ring := max(arena.SmallerSize()/2-dome.Radius(), 0)
	radius := dome.Radius() + m.rng.Float64()*ring
	angle := m.rng.Float64() * 2 * math.Pi
	m.place(arena.Center().Add(core.FromPolar(radius, angle)))
}

// place moves the pickup with its label above and its type dot below.
func (m *Modifier) place(pos core.Vector2) {
	r := m.shape.Radius()
	m.shape.SetPosition(pos)
	m.label.SetPosition(pos.Sub(core.NewVector2(0, 2*r)))
	m.typeShape.SetPosition(pos.Add(core.NewVector2(0, r+m.typeShape.Radius())))
}

// Tic checks both players against the pickup. A simultaneous touch is
// discarded without effect; a single touch applies the effect. In both cases
// the pickup respawns.
func (m *Modifier) Tic(p0, p1 *Player, arena Arena, dome Dome) Pickup {
	hit0, hit1 := p0.IsColliding(m.shape), p1.IsColliding(m.shape)
	if !hit0 && !hit1 {
		return Pickup{}
	}

	result := Pickup{Type: m.kind, Effect: m.effect}
	switch {
	case hit0 && hit1:
		result.Discarded = true
	case hit0:
		result.Player = p0
	default:
		result.Player = p1
	}
	if result.Player != nil {
		m.apply(result.Player)
	}
	m.Randomize(arena, dome)
	return result
}

func (m *Modifier) apply(p *Player) {
	bonus := m.kind == TypeBonus
	switch m.effect {
	case EffectSpeed:
		p.AdjustSpeed(ratio(m.cfg.SpeedRatio, bonus))
	case EffectSize:
		p.AdjustSize(ratio(m.cfg.SizeRatio, bonus))
	case EffectWarping:
		if bonus {
			p.SetBorderManagement(BorderWarping)
		} else {
			p.SetBorderManagement(BorderRestrict)
		}
	case EffectHit:
		if bonus {
			p.AddHit()
		} else {
			p.RemoveHit()
		}
	}
}

// ratio returns r for a bonus and its reciprocal for a malus.
func ratio(r float64, bonus bool) float64 {
	if bonus {
		return r
	}
	return 1 / r
}

func (m *Modifier) Draw(dst core.Screen) {
	dst.DrawCircle(m.shape)
	dst.DrawCircle(m.typeShape)
	dst.DrawText(m.label)
}
