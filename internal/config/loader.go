package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Only a custom path reports errors; the other locations are skipped when
// missing or unparsable.
func LoadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		cfg, err := readRunner(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if cfg, err := readRunner(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readRunner(filepath.Join("configs", "runner.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readRunner parses a YAML file on top of the defaults, so a file only needs
// to name the values it changes.
func readRunner(path string) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Limits on the integration step. A tick call runs at most
// max_elapsed/max_step integration steps.
const (
	minMaxStep  = 1e-4
	maxSubSteps = 10000
)

// Validate reports configuration values the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error

	for _, f := range c.floatFields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			errs = append(errs, fmt.Errorf("%s must be a finite number, got %v", f.name, f.value))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	p := c.Physics
	if !positive(p.BaseSpeed) {
		errs = append(errs, fmt.Errorf("physics.base_speed must be positive, got %v", p.BaseSpeed))
	}
	if p.Acceleration < 0 {
		errs = append(errs, fmt.Errorf("physics.acceleration must not be negative, got %v", p.Acceleration))
	}
	if !positive(p.Gravity) {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", p.Gravity))
	}
	if !positive(p.JumpVelocity) {
		errs = append(errs, fmt.Errorf("physics.jump_velocity must be positive, got %v", p.JumpVelocity))
	}
	if !positive(p.SlideDuration) {
		errs = append(errs, fmt.Errorf("physics.slide_duration must be positive, got %v", p.SlideDuration))
	}
	if p.MaxStep < minMaxStep {
		errs = append(errs, fmt.Errorf("physics.max_step must be at least %v, got %v", minMaxStep, p.MaxStep))
	} else if p.MaxElapsed < p.MaxStep || p.MaxElapsed/p.MaxStep > maxSubSteps {
		errs = append(errs, fmt.Errorf("physics.max_elapsed must be between max_step and %d steps, got %v", maxSubSteps, p.MaxElapsed))
	}

	s := c.Spawn
	if !positive(s.MaxDepth) {
		errs = append(errs, fmt.Errorf("spawn.max_depth must be positive, got %v", s.MaxDepth))
	}
	if !positive(s.ObstacleInterval) || !positive(s.PickupInterval) {
		errs = append(errs, errors.New("spawn intervals must be positive"))
	}
	if s.ObstacleJitter < 0 || s.PickupJitter < 0 {
		errs = append(errs, errors.New("spawn jitter must not be negative"))
	}
	if s.LowChance < 0 || s.LowChance > 1 {
		errs = append(errs, fmt.Errorf("spawn.low_chance must be within [0, 1], got %v", s.LowChance))
	}

	col := c.Collision
	if col.ObstacleNear >= col.ObstacleFar {
		errs = append(errs, fmt.Errorf("collision obstacle band is empty: (%v, %v)", col.ObstacleNear, col.ObstacleFar))
	}
	if col.PickupNear >= col.PickupFar {
		errs = append(errs, fmt.Errorf("collision pickup band is empty: (%v, %v)", col.PickupNear, col.PickupFar))
	}

	sc := c.Scoring
	if !positive(sc.PerSecond) {
		errs = append(errs, fmt.Errorf("scoring.per_second must be positive, got %v", sc.PerSecond))
	}
	if sc.ObstacleBonus < 0 || sc.PickupBonus < 0 {
		errs = append(errs, errors.New("scoring bonuses must not be negative"))
	}

	return errors.Join(errs...)
}

type floatField struct {
	name  string
	value float64
}

func (c RunnerConfig) floatFields() []floatField {
	p, s, col, sc := c.Physics, c.Spawn, c.Collision, c.Scoring
	return []floatField{
		{"physics.base_speed", p.BaseSpeed},
		{"physics.acceleration", p.Acceleration},
		{"physics.gravity", p.Gravity},
		{"physics.jump_velocity", p.JumpVelocity},
		{"physics.slide_duration", p.SlideDuration},
		{"physics.max_step", p.MaxStep},
		{"physics.max_elapsed", p.MaxElapsed},
		{"spawn.max_depth", s.MaxDepth},
		{"spawn.pickup_depth_offset", s.PickupDepthOffset},
		{"spawn.obstacle_first", s.ObstacleFirst},
		{"spawn.obstacle_interval", s.ObstacleInterval},
		{"spawn.obstacle_jitter", s.ObstacleJitter},
		{"spawn.low_chance", s.LowChance},
		{"spawn.pickup_first", s.PickupFirst},
		{"spawn.pickup_interval", s.PickupInterval},
		{"spawn.pickup_jitter", s.PickupJitter},
		{"spawn.discard_depth", s.DiscardDepth},
		{"collision.resolve_depth", col.ResolveDepth},
		{"collision.obstacle_near", col.ObstacleNear},
		{"collision.obstacle_far", col.ObstacleFar},
		{"collision.pickup_near", col.PickupNear},
		{"collision.pickup_far", col.PickupFar},
		{"collision.jump_clearance", col.JumpClearance},
		{"collision.slide_clearance", col.SlideClearance},
		{"collision.airborne_threshold", col.AirborneThreshold},
		{"scoring.per_second", sc.PerSecond},
		{"scoring.obstacle_bonus", sc.ObstacleBonus},
		{"scoring.pickup_bonus", sc.PickupBonus},
	}
}

func positive(v float64) bool {
	return v > 0
}
