// Package config provides YAML-based tuning for Dome Defender: arena size,
// player and modifier constants, the two player slots and orchestration options.
package config

// DomeConfig contains all configuration for the Dome Defender game.
type DomeConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Player   PlayerConfig   `yaml:"player"`
	Players  []PlayerSlot   `yaml:"players"`
	Dome     DomeShape      `yaml:"dome"`
	Modifier ModifierConfig `yaml:"modifier"`
	Score    ScoreConfig    `yaml:"score"`
	Game     GameConfig     `yaml:"game"`
}

// ArenaConfig defines the playfield size in world units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the values every player starts a game with.
type PlayerConfig struct {
	Radius                float64 `yaml:"radius"`
	Speed                 float64 `yaml:"speed"` // world units per second
	BorderIndicatorRadius float64 `yaml:"border_indicator_radius"`
}

// PlayerSlot describes one of the two players.
type PlayerSlot struct {
	Name    string `yaml:"name"`
	Color   string `yaml:"color"`   // preset name or #rrggbb
	Mapping string `yaml:"mapping"` // wasd, ijkl, arrows or numpad
	Role    string `yaml:"role"`    // defender or contender
}

// DomeShape defines how the dome is painted.
type DomeShape struct {
	EdgeSize         float64 `yaml:"edge_size"`
	EdgeLighterRatio float64 `yaml:"edge_lighter_ratio"`
}

// ModifierConfig defines the pickup appearance and effect strength.
type ModifierConfig struct {
	Radius     float64 `yaml:"radius"`
	TypeRadius float64 `yaml:"type_radius"`
	TextSize   float64 `yaml:"text_size"`
	SpeedRatio float64 `yaml:"speed_ratio"` // bonus multiplies by it, malus divides
	SizeRatio  float64 `yaml:"size_ratio"`
	BonusColor string  `yaml:"bonus_color"`
	MalusColor string  `yaml:"malus_color"`
}

// ScoreConfig defines the score board layout.
type ScoreConfig struct {
	HorizontalOffset float64 `yaml:"horizontal_offset"`
	VerticalOffset   float64 `yaml:"vertical_offset"`
	TextSize         float64 `yaml:"text_size"`
	EdgeSize         float64 `yaml:"edge_size"`
	FillLighterRatio float64 `yaml:"fill_lighter_ratio"`
	EdgeDarkerRatio  float64 `yaml:"edge_darker_ratio"`
}

// GameConfig defines orchestration options.
type GameConfig struct {
	ResetCounters bool   `yaml:"reset_counters"` // full reset clears hits and role timers
	Background    string `yaml:"background"`
}
