package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/vovakirdan/dome-defender/internal/core"
	"gopkg.in/yaml.v3"
)

// Role names accepted in player slots.
const (
	RoleDefender  = "defender"
	RoleContender = "contender"
)

// Mapping names accepted in player slots.
const (
	MappingWASD   = "wasd"
	MappingIJKL   = "ijkl"
	MappingArrows = "arrows"
	MappingNumpad = "numpad"
)

// KnownMappings lists the mapping names in the order of the game's standard
// mappings.
var KnownMappings = []string{MappingWASD, MappingIJKL, MappingArrows, MappingNumpad}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Load loads Dome Defender configuration.
// Search order: customPath -> ~/.dome-defender/config.yaml -> ./configs/dome.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func Load(customPath string) (DomeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DomeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DomeConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "dome.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDomeYAML)
	if err != nil {
		return DefaultDomeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (DomeConfig, error) {
	cfg := DefaultDomeConfig()
	cfg.Players = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DomeConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if cfg.Players == nil {
		cfg.Players = DefaultDomeConfig().Players
	}
	if err := cfg.Validate(); err != nil {
		return DomeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c DomeConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate rejects non-positive sizes, speeds and ratios, unknown colors,
// unknown mappings and player slots that do not form one defender and one contender.
func (c DomeConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"arena.width", c.Arena.Width},
		{"arena.height", c.Arena.Height},
		{"player.radius", c.Player.Radius},
		{"player.speed", c.Player.Speed},
		{"player.border_indicator_radius", c.Player.BorderIndicatorRadius},
		{"modifier.radius", c.Modifier.Radius},
		{"modifier.type_radius", c.Modifier.TypeRadius},
		{"modifier.text_size", c.Modifier.TextSize},
		{"modifier.speed_ratio", c.Modifier.SpeedRatio},
		{"modifier.size_ratio", c.Modifier.SizeRatio},
		{"score.text_size", c.Score.TextSize},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.value)
		}
	}

	unit := []struct {
		name  string
		value float64
	}{
		{"dome.edge_lighter_ratio", c.Dome.EdgeLighterRatio},
		{"score.fill_lighter_ratio", c.Score.FillLighterRatio},
		{"score.edge_darker_ratio", c.Score.EdgeDarkerRatio},
	}
	for _, u := range unit {
		if u.value < 0 || u.value > 1 {
			return fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalid, u.name, u.value)
		}
	}
	if c.Dome.EdgeSize < 0 || c.Score.EdgeSize < 0 {
		return fmt.Errorf("%w: edge sizes must not be negative", ErrInvalid)
	}

	for _, name := range []string{c.Modifier.BonusColor, c.Modifier.MalusColor, c.Game.Background} {
		if _, err := core.ParseColor(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}

	if len(c.Players) != 2 {
		return fmt.Errorf("%w: expected 2 players, got %d", ErrInvalid, len(c.Players))
	}
	for i, p := range c.Players {
		if _, err := core.ParseColor(p.Color); err != nil {
			return fmt.Errorf("%w: players[%d]: %v", ErrInvalid, i, err)
		}
		if !slices.Contains(KnownMappings, p.Mapping) {
			return fmt.Errorf("%w: players[%d]: unknown mapping %q", ErrInvalid, i, p.Mapping)
		}
		if p.Role != RoleDefender && p.Role != RoleContender {
			return fmt.Errorf("%w: players[%d]: unknown role %q", ErrInvalid, i, p.Role)
		}
	}
	if c.Players[0].Role == c.Players[1].Role {
		return fmt.Errorf("%w: players must have different roles", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dome-defender", filename)
}
