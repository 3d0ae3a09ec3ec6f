package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used when the embed cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			BaseSpeed:     390,
			Acceleration:  5.5,
			Gravity:       1900,
			JumpVelocity:  760,
			SlideDuration: 0.58,
			MaxStep:       0.033,
			MaxElapsed:    1.0,
		},
		Spawn: RunnerSpawn{
			MaxDepth:          1400,
			PickupDepthOffset: 80,
			ObstacleFirst:     0.5,
			ObstacleInterval:  0.58,
			ObstacleJitter:    0.38,
			LowChance:         0.62,
			PickupFirst:       1.1,
			PickupInterval:    1.3,
			PickupJitter:      1.2,
			DiscardDepth:      -100,
		},
		Collision: RunnerCollision{
			ResolveDepth:      65,
			ObstacleNear:      -20,
			ObstacleFar:       80,
			PickupNear:        -15,
			PickupFar:         85,
			JumpClearance:     95,
			SlideClearance:    1,
			AirborneThreshold: 1,
		},
		Scoring: RunnerScoring{
			PerSecond:     18,
			ObstacleBonus: 14,
			PickupBonus:   35,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "runner":
		return defaultRunnerYAML
	default:
		return nil
	}
}
