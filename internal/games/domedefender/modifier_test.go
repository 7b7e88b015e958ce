package domedefender

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/dome-defender/internal/config"
	"github.com/vovakirdan/dome-defender/internal/core"
)

type modifierFixture struct {
	arena    Arena
	dome     Dome
	modifier *Modifier
	p0, p1   *Player
}

func newModifierFixture(seed int64) modifierFixture {
	cfg := config.DefaultDomeConfig()
	rng := rand.New(rand.NewSource(seed))
	arena := NewArena(800, 600)
	dome := NewDome(arena, cfg.Dome)

	f := modifierFixture{
		arena:    arena,
		dome:     dome,
		modifier: NewModifier(cfg.Modifier, core.ColorGreen, core.ColorRed, arena, dome, rng),
		p0:       NewPlayer(RoleDefender, "P0", core.ColorSky, NewDirectionKeyMapping(MappingWASD), cfg.Player, rng),
		p1:       NewPlayer(RoleContender, "P1", core.ColorOrange, NewDirectionKeyMapping(MappingArrows), cfg.Player, rng),
	}
	// Park both players in opposite corners, away from any spawn.
	f.p0.SetPosition(core.NewVector2(0, 0))
	f.p1.SetPosition(core.NewVector2(800, 600))
	return f
}

func TestModifierSpawnRing(t *testing.T) {
	f := newModifierFixture(42)
	center := f.arena.Center()

	for range 2000 {
		f.modifier.Randomize(f.arena, f.dome)
		d := f.modifier.Position().Distance(center)
		if d < 150-1e-9 || d > 300+1e-9 {
			t.Fatalf("spawn distance %v outside [150, 300]", d)
		}
	}
}

func TestModifierRandomizeCoversTypesAndEffects(t *testing.T) {
	f := newModifierFixture(5)
	types := map[ModifierType]int{}
	effects := map[Effect]int{}

	for range 400 {
		f.modifier.Randomize(f.arena, f.dome)
		types[f.modifier.Type()]++
		effects[f.modifier.Effect()]++

		if f.modifier.Label().String() != f.modifier.Effect().String() {
			t.Fatalf("label %q does not match effect %v", f.modifier.Label().String(), f.modifier.Effect())
		}
		expectedDot := core.ColorGreen
		if f.modifier.Type() == TypeMalus {
			expectedDot = core.ColorRed
		}
		if f.modifier.TypeCircle().FillColor() != expectedDot {
			t.Fatalf("type dot %v does not match type %v", f.modifier.TypeCircle().FillColor(), f.modifier.Type())
		}
	}

	if len(types) != 2 || len(effects) != 4 {
		t.Errorf("saw types %v and effects %v, expected all of them", types, effects)
	}
}

func TestModifierLayout(t *testing.T) {
	f := newModifierFixture(3)
	pos := f.modifier.Position()

	if f.modifier.Label().Position() != core.NewVector2(pos.X, pos.Y-30) {
		t.Errorf("label at %v, expected 2 radii above %v", f.modifier.Label().Position(), pos)
	}
	if f.modifier.TypeCircle().Position() != core.NewVector2(pos.X, pos.Y+20) {
		t.Errorf("type dot at %v, expected below %v", f.modifier.TypeCircle().Position(), pos)
	}
	if f.modifier.Label().Alignment() != core.AlignCenterCenter {
		t.Errorf("label alignment = %v, expected centered", f.modifier.Label().Alignment())
	}
}

func TestModifierNoTouch(t *testing.T) {
	f := newModifierFixture(8)
	before := f.modifier.Position()

	if pick := f.modifier.Tic(f.p0, f.p1, f.arena, f.dome); pick != (Pickup{}) {
		t.Errorf("Tic() = %+v, expected no pickup", pick)
	}
	if f.modifier.Position() != before {
		t.Error("an untouched modifier should stay in place")
	}
}

func TestModifierBothPlayersDiscard(t *testing.T) {
	f := newModifierFixture(11)

	for range 50 {
		pos := f.modifier.Position()
		f.p0.SetPosition(pos)
		f.p1.SetPosition(pos.Add(core.NewVector2(5, 0)))

		pick := f.modifier.Tic(f.p0, f.p1, f.arena, f.dome)

		if !pick.Discarded || pick.Player != nil {
			t.Fatalf("Tic() = %+v, expected a discarded pickup", pick)
		}
		for _, p := range []*Player{f.p0, f.p1} {
			if p.Speed() != 250 || p.Radius() != 25 || p.HitScore() != 0 || p.BorderManagement() != BorderRestrict {
				t.Fatalf("%s changed after a discarded pickup: speed %v radius %v hits %d border %v",
					p.Name(), p.Speed(), p.Radius(), p.HitScore(), p.BorderManagement())
			}
		}
		if f.modifier.Position() == pos {
			t.Fatal("a discarded pickup should still relocate")
		}
	}
}

func TestModifierEffects(t *testing.T) {
	tests := []struct {
		kind   ModifierType
		effect Effect
		check  func(p *Player) bool
	}{
		{TypeBonus, EffectSpeed, func(p *Player) bool { return math.Abs(p.Speed()-250*1.15) < 1e-9 }},
		{TypeMalus, EffectSpeed, func(p *Player) bool { return math.Abs(p.Speed()-250/1.15) < 1e-9 }},
		{TypeBonus, EffectSize, func(p *Player) bool { return math.Abs(p.Radius()-25*1.15) < 1e-9 }},
		{TypeMalus, EffectSize, func(p *Player) bool { return math.Abs(p.Radius()-25/1.15) < 1e-9 }},
		{TypeBonus, EffectWarping, func(p *Player) bool { return p.BorderManagement() == BorderWarping }},
		{TypeMalus, EffectWarping, func(p *Player) bool { return p.BorderManagement() == BorderRestrict }},
		{TypeBonus, EffectHit, func(p *Player) bool { return p.HitScore() == 2 }},
		{TypeMalus, EffectHit, func(p *Player) bool { return p.HitScore() == 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String()+"/"+tc.effect.String(), func(t *testing.T) {
			f := newModifierFixture(13)
			f.p1.AddHit()
			f.p1.SetBorderManagement(BorderWarping)
			if tc.kind == TypeBonus {
				f.p1.SetBorderManagement(BorderRestrict)
			}

			f.modifier.kind = tc.kind
			f.modifier.effect = tc.effect
			f.p1.SetPosition(f.modifier.Position())

			pick := f.modifier.Tic(f.p0, f.p1, f.arena, f.dome)

			if pick.Player != f.p1 || pick.Type != tc.kind || pick.Effect != tc.effect {
				t.Fatalf("Tic() = %+v, expected %v %v for P1", pick, tc.kind, tc.effect)
			}
			if !tc.check(f.p1) {
				t.Errorf("effect not applied: speed %v radius %v hits %d border %v",
					f.p1.Speed(), f.p1.Radius(), f.p1.HitScore(), f.p1.BorderManagement())
			}
			if f.p0.Speed() != 250 || f.p0.Radius() != 25 || f.p0.HitScore() != 0 {
				t.Error("the other player should be untouched")
			}
		})
	}
}

func TestModifierDraw(t *testing.T) {
	f := newModifierFixture(1)

	var s recordingScreen
	f.modifier.Draw(&s)

	expected := []string{"circle", "circle", "text"}
	if len(s.calls) != len(expected) {
		t.Fatalf("Draw() calls = %v, expected %v", s.calls, expected)
	}
	for i := range expected {
		if s.calls[i] != expected[i] {
			t.Errorf("Draw() calls = %v, expected %v", s.calls, expected)
			break
		}
	}
}
