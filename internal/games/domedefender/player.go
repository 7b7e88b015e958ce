package domedefender

import (
	"math/rand"

	"github.com/vovakirdan/dome-defender/internal/config"
	"github.com/vovakirdan/dome-defender/internal/core"
)

// Role is the part a player plays in the current match.
type Role int

const (
	RoleDefender Role = iota
	RoleContender
)

// Opposite returns the other role.
func (r Role) Opposite() Role {
	if r == RoleDefender {
		return RoleContender
	}
	return RoleDefender
}

func (r Role) String() string {
	if r == RoleDefender {
		return "defender"
	}
	return "contender"
}

// ParseRole resolves a configuration role name.
func ParseRole(name string) Role {
	if name == config.RoleContender {
		return RoleContender
	}
	return RoleDefender
}

// BorderManagement is the policy applied when a player leaves the arena.
type BorderManagement int

const (
	BorderRestrict BorderManagement = iota // clamp onto the border
	BorderWarping                          // reappear on the opposite border
)

func (b BorderManagement) String() string {
	if b == BorderWarping {
		return "warping"
	}
	return "restrict"
}

// Player is one of the two competitors. Role, position, speed, size and
// border policy change from match to match; the hit score and role timers
// accumulate over the whole game.
type Player struct {
	name     string
	color    core.Color
	role     Role
	defaults config.PlayerConfig
	mapping  DirectionKeyMapping
	rng      *rand.Rand

	speed     float64
	shape     core.Circle
	indicator core.Circle
	border    BorderManagement

	hitScore        uint
	timeAsDefender  float64
	timeAsContender float64
}

// NewPlayer creates a player at the origin with the default speed, radius and
// the Restrict border policy. Call NewGame or NewMatch to place it.
func NewPlayer(role Role, name string, color core.Color, mapping DirectionKeyMapping, cfg config.PlayerConfig, rng *rand.Rand) *Player {
	p := &Player{
		name:     name,
		color:    color,
		role:     role,
		defaults: cfg,
		mapping:  mapping,
		rng:      rng,
	}
	p.restoreDefaults()
	return p
}

func (p *Player) restoreDefaults() {
	p.speed = p.defaults.Speed
	p.border = BorderRestrict
	p.shape = core.NewCircle(p.defaults.Radius, p.shape.Position(), p.color)
	p.indicator = core.NewCircle(p.defaults.BorderIndicatorRadius, p.shape.Position(), core.ColorWhite)
}

func (p *Player) Name() string                       { return p.name }
func (p *Player) Color() core.Color                  { return p.color }
func (p *Player) Role() Role                         { return p.role }
func (p *Player) Speed() float64                     { return p.speed }
func (p *Player) Radius() float64                    { return p.shape.Radius() }
func (p *Player) Position() core.Vector2             { return p.shape.Position() }
func (p *Player) Circle() core.Circle                { return p.shape }
func (p *Player) HitScore() uint                     { return p.hitScore }
func (p *Player) TimeAsDefender() float64            { return p.timeAsDefender }
func (p *Player) TimeAsContender() float64           { return p.timeAsContender }
func (p *Player) BorderManagement() BorderManagement { return p.border }
func (p *Player) Mapping() DirectionKeyMapping       { return p.mapping }

// SetPosition moves the player and its border indicator.
func (p *Player) SetPosition(pos core.Vector2) {
	p.shape.SetPosition(pos)
	p.indicator.SetPosition(pos)
}

// Tic accumulates the elapsed time into the current role's timer, moves the
// player along the held direction and applies the border policy.
func (p *Player) Tic(kb core.Keyboard, elapsed float64, arena Arena) {
	if p.role == RoleDefender {
		p.timeAsDefender += elapsed
	} else {
		p.timeAsContender += elapsed
	}

	pos := p.shape.Position().Add(p.mapping.Direction(kb).Mul(p.speed * elapsed))
	if p.border == BorderWarping {
		pos = arena.WarpedPosition(pos)
	} else {
		pos = arena.RestrictedPosition(pos)
	}
	p.SetPosition(pos)
}

// NewMatch ends a match: it records a hit, optionally swaps roles, and
// repositions the player according to its role.
func (p *Player) NewMatch(scoredHit, swapRoles bool, arena Arena) {
	if scoredHit {
		p.AddHit()
	}
	if swapRoles {
		p.role = p.role.Opposite()
	}
	p.place(arena)
}

// NewGame starts a whole new game with the given role. Speed, size and border
// policy return to their defaults; hit score and role timers are cleared only
// when resetCounters is set.
func (p *Player) NewGame(role Role, arena Arena, resetCounters bool) {
	p.role = role
	p.restoreDefaults()
	if resetCounters {
		p.hitScore = 0
		p.timeAsDefender = 0
		p.timeAsContender = 0
	}
	p.place(arena)
}

// place puts a defender at the arena center and a contender at a random point
// on the circle of radius SmallerSize/2 around it.
func (p *Player) place(arena Arena) {
	if p.role == RoleDefender {
		p.SetPosition(arena.Center())
		return
	}
	offset := core.RandomUnit(p.rng).Mul(arena.SmallerSize() / 2)
	p.SetPosition(arena.Center().Add(offset))
}

// IsColliding reports whether the player overlaps a circle. Tangent circles
// do not collide.
func (p *Player) IsColliding(c core.Circle) bool {
	return p.shape.IsColliding(c)
}

// IsCollidingPlayer reports whether two players overlap.
func (p *Player) IsCollidingPlayer(other *Player) bool {
	return p.IsColliding(other.shape)
}

// IsCollidingDome reports whether the player overlaps the dome.
func (p *Player) IsCollidingDome(d Dome) bool {
	return p.IsColliding(d.Circle())
}

func (p *Player) AddHit() {
	p.hitScore++
}

// RemoveHit decrements the hit score, stopping at zero.
func (p *Player) RemoveHit() {
	if p.hitScore > 0 {
		p.hitScore--
	}
}

// AdjustSize scales the radius by a relative factor.
func (p *Player) AdjustSize(ratio float64) {
	p.shape.AdjustSize(ratio)
}

// AdjustSpeed scales the speed by a relative factor.
func (p *Player) AdjustSpeed(ratio float64) {
	p.speed *= ratio
}

// SetBorderManagement switches the border policy, effective on the next Tic.
func (p *Player) SetBorderManagement(b BorderManagement) {
	p.border = b
}

// Draw paints the player and its border indicator: white when restricted,
// black when warping.
func (p *Player) Draw(dst core.Screen) {
	dst.DrawCircle(p.shape)
	c := core.ColorWhite
	if p.border == BorderWarping {
		c = core.ColorBlack
	}
	p.indicator.SetColors(c, c)
	dst.DrawCircle(p.indicator)
}
