package config

import (
	_ "embed"
)

//go:embed defaults/dome.yaml
var defaultDomeYAML []byte

// DefaultDomeConfig returns the default Dome Defender configuration.
func DefaultDomeConfig() DomeConfig {
	return DomeConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Radius:                25,
			Speed:                 250,
			BorderIndicatorRadius: 5,
		},
		Players: []PlayerSlot{
			{Name: "Player 1", Color: "sky", Mapping: MappingWASD, Role: RoleDefender},
			{Name: "Player 2", Color: "orange", Mapping: MappingArrows, Role: RoleContender},
		},
		Dome: DomeShape{
			EdgeSize:         1.5,
			EdgeLighterRatio: 0.75,
		},
		Modifier: ModifierConfig{
			Radius:     15,
			TypeRadius: 5,
			TextSize:   25,
			SpeedRatio: 1.15,
			SizeRatio:  1.15,
			BonusColor: "green",
			MalusColor: "red",
		},
		Score: ScoreConfig{
			HorizontalOffset: 150,
			VerticalOffset:   25,
			TextSize:         54,
			EdgeSize:         2.5,
			FillLighterRatio: 0.5,
			EdgeDarkerRatio:  0.5,
		},
		Game: GameConfig{
			ResetCounters: true,
			Background:    "black",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDomeYAML
}
