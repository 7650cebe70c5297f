// Package config provides YAML-based game configuration loading and
// difficulty management for the glider game.
package config

import (
	"errors"
	"fmt"
)

// GliderConfig contains all configuration for Meteor Glider.
// Sizes, speeds and positions are in simulation units; intervals in milliseconds.
type GliderConfig struct {
	Player      GliderPlayer      `yaml:"player"`
	Obstacles   GliderObstacles   `yaml:"obstacles"`
	Projectiles GliderProjectiles `yaml:"projectiles"`
	Scoring     GliderScoring     `yaml:"scoring"`
	Render      GliderRender      `yaml:"render"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// GliderPlayer defines player parameters.
type GliderPlayer struct {
	Size          float64 `yaml:"size"`           // Square hitbox side
	SpawnOffset   float64 `yaml:"spawn_offset"`   // Distance from the bottom edge on reset
	KeyboardSpeed float64 `yaml:"keyboard_speed"` // Units moved per key press
}

// GliderObstacles defines meteor spawning and movement.
type GliderObstacles struct {
	Size              float64 `yaml:"size"`
	Speed             float64 `yaml:"speed"` // Units per tick
	MaxCount          int     `yaml:"max_count"`
	SpawnIntervalMs   float64 `yaml:"spawn_interval_ms"`
	HazardsEnabled    bool    `yaml:"hazards_enabled"`
	HazardIntervalMs  float64 `yaml:"hazard_interval_ms"`
	PlacementAttempts int     `yaml:"placement_attempts"`
	PatternSpacing    float64 `yaml:"pattern_spacing"` // Multiple of Size between pattern members
	ClusterSize       int     `yaml:"cluster_size"`
	DiagonalSteps     int     `yaml:"diagonal_steps"`
}

// GliderProjectiles defines projectile parameters.
type GliderProjectiles struct {
	Speed          float64 `yaml:"speed"`
	Radius         float64 `yaml:"radius"`
	FireCooldownMs float64 `yaml:"fire_cooldown_ms"` // 0 = unlimited
	MaxLive        int     `yaml:"max_live"`         // 0 = unlimited
}

// GliderScoring defines point awards.
type GliderScoring struct {
	DestroyPoints int `yaml:"destroy_points"`
	SpawnPoints   int `yaml:"spawn_points"`
}

// GliderRender defines how simulation units map onto terminal cells.
type GliderRender struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// Validate checks that the config describes a playable game.
func (c GliderConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}

	positive("player.size", c.Player.Size)
	positive("player.keyboard_speed", c.Player.KeyboardSpeed)
	nonNegative("player.spawn_offset", c.Player.SpawnOffset)
	positive("obstacles.size", c.Obstacles.Size)
	positive("obstacles.speed", c.Obstacles.Speed)
	positive("obstacles.max_count", float64(c.Obstacles.MaxCount))
	nonNegative("obstacles.spawn_interval_ms", c.Obstacles.SpawnIntervalMs)
	nonNegative("obstacles.hazard_interval_ms", c.Obstacles.HazardIntervalMs)
	positive("obstacles.placement_attempts", float64(c.Obstacles.PlacementAttempts))
	positive("obstacles.pattern_spacing", c.Obstacles.PatternSpacing)
	nonNegative("obstacles.cluster_size", float64(c.Obstacles.ClusterSize))
	nonNegative("obstacles.diagonal_steps", float64(c.Obstacles.DiagonalSteps))
	positive("projectiles.speed", c.Projectiles.Speed)
	positive("projectiles.radius", c.Projectiles.Radius)
	nonNegative("projectiles.fire_cooldown_ms", c.Projectiles.FireCooldownMs)
	nonNegative("projectiles.max_live", float64(c.Projectiles.MaxLive))
	nonNegative("scoring.destroy_points", float64(c.Scoring.DestroyPoints))
	nonNegative("scoring.spawn_points", float64(c.Scoring.SpawnPoints))
	positive("render.cell_width", c.Render.CellWidth)
	positive("render.cell_height", c.Render.CellHeight)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid glider config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
