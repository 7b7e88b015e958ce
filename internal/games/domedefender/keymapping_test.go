package domedefender

import (
	"errors"
	"testing"

	"github.com/vovakirdan/dome-defender/internal/config"
	"github.com/vovakirdan/dome-defender/internal/core"
)

func TestStandardMappings(t *testing.T) {
	tests := []struct {
		mapping               StandardMapping
		left, up, right, down core.Key
	}{
		{MappingWASD, core.KeyA, core.KeyW, core.KeyD, core.KeyS},
		{MappingIJKL, core.KeyJ, core.KeyI, core.KeyL, core.KeyK},
		{MappingArrows, core.KeyLeft, core.KeyUp, core.KeyRight, core.KeyDown},
		{MappingNum8426, core.KeyNum4, core.KeyNum8, core.KeyNum6, core.KeyNum2},
	}

	for _, tc := range tests {
		km := NewDirectionKeyMapping(tc.mapping)
		got := [4]core.Key{km.Key(DirectionLeft), km.Key(DirectionUp), km.Key(DirectionRight), km.Key(DirectionDown)}
		expected := [4]core.Key{tc.left, tc.up, tc.right, tc.down}
		if got != expected {
			t.Errorf("mapping %d keys = %v, expected %v", tc.mapping, got, expected)
		}
	}
}

func TestDirection(t *testing.T) {
	km := NewDirectionKeyMapping(MappingWASD)

	tests := []struct {
		name     string
		keys     []core.Key
		expected core.Vector2
	}{
		{"none", nil, core.Vector2{}},
		{"left", []core.Key{core.KeyA}, core.NewVector2(-1, 0)},
		{"right", []core.Key{core.KeyD}, core.NewVector2(1, 0)},
		{"up", []core.Key{core.KeyW}, core.NewVector2(0, -1)},
		{"down", []core.Key{core.KeyS}, core.NewVector2(0, 1)},
		{"left wins over right", []core.Key{core.KeyD, core.KeyA}, core.NewVector2(-1, 0)},
		{"horizontal wins over vertical", []core.Key{core.KeyS, core.KeyD}, core.NewVector2(1, 0)},
		{"up wins over down", []core.Key{core.KeyS, core.KeyW}, core.NewVector2(0, -1)},
		{"other mapping ignored", []core.Key{core.KeyLeft}, core.Vector2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Direction(core.NewKeyState(tc.keys...)); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSetKey(t *testing.T) {
	km := NewDirectionKeyMapping(MappingWASD)
	km.SetKey(DirectionUp, core.KeySpace)

	if km.Key(DirectionUp) != core.KeySpace {
		t.Errorf("Key(Up) = %v, expected Space", km.Key(DirectionUp))
	}
	if got := km.Direction(core.NewKeyState(core.KeySpace)); got != core.NewVector2(0, -1) {
		t.Errorf("Direction() = %v, expected up", got)
	}
}

func TestParseMapping(t *testing.T) {
	for _, name := range config.KnownMappings {
		if _, err := ParseMapping(name); err != nil {
			t.Errorf("ParseMapping(%q) failed: %v", name, err)
		}
	}

	tests := []struct {
		name     string
		expected StandardMapping
	}{
		{config.MappingWASD, MappingWASD},
		{config.MappingIJKL, MappingIJKL},
		{config.MappingArrows, MappingArrows},
		{config.MappingNumpad, MappingNum8426},
	}
	for _, tt := range tests {
		if m, _ := ParseMapping(tt.name); m != tt.expected {
			t.Errorf("ParseMapping(%q) = %d, expected %d", tt.name, m, tt.expected)
		}
	}
	if got := len(config.KnownMappings); got != int(MappingNum8426)+1 {
		t.Errorf("len(KnownMappings) = %d, expected one name per standard mapping", got)
	}
	if _, err := ParseMapping("hjkl"); !errors.Is(err, ErrUnknownMapping) {
		t.Errorf("ParseMapping(hjkl) error = %v, expected ErrUnknownMapping", err)
	}
}
