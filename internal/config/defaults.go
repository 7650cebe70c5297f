package config

import (
	_ "embed"
)

//go:embed defaults/glider.yaml
var defaultGliderYAML []byte

// DefaultGliderConfig returns the default Meteor Glider configuration.
func DefaultGliderConfig() GliderConfig {
	return GliderConfig{
		Player: GliderPlayer{
			Size:          30,
			SpawnOffset:   100,
			KeyboardSpeed: 15,
		},
		Obstacles: GliderObstacles{
			Size:              50,
			Speed:             5,
			MaxCount:          10,
			SpawnIntervalMs:   1500,
			HazardsEnabled:    true,
			HazardIntervalMs:  4000,
			PlacementAttempts: 20,
			PatternSpacing:    2.5,
			ClusterSize:       2,
			DiagonalSteps:     2,
		},
		Projectiles: GliderProjectiles{
			Speed:          7,
			Radius:         5,
			FireCooldownMs: 0,
			MaxLive:        0,
		},
		Scoring: GliderScoring{
			DestroyPoints: 20,
			SpawnPoints:   10,
		},
		Render: GliderRender{
			CellWidth:  10,
			CellHeight: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "glider", "glider_classic":
		return defaultGliderYAML
	default:
		return nil
	}
}
