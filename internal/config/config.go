// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// RunnerConfig contains all configuration for the Night Shift runner.
// Distances are in depth units, times in seconds.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Spawn      RunnerSpawn      `yaml:"spawn"`
	Collision  RunnerCollision  `yaml:"collision"`
	Scoring    RunnerScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines movement and timing parameters.
type RunnerPhysics struct {
	BaseSpeed     float64 `yaml:"base_speed"`     // Approach speed at run start
	Acceleration  float64 `yaml:"acceleration"`   // Speed gained per second
	Gravity       float64 `yaml:"gravity"`        // Jump velocity lost per second
	JumpVelocity  float64 `yaml:"jump_velocity"`  // Launch velocity of a jump
	SlideDuration float64 `yaml:"slide_duration"` // Seconds a slide lasts
	MaxStep       float64 `yaml:"max_step"`       // Largest single integration step
	MaxElapsed    float64 `yaml:"max_elapsed"`    // Largest time consumed by one tick call
}

// RunnerSpawn defines obstacle and pickup spawning.
type RunnerSpawn struct {
	MaxDepth          float64 `yaml:"max_depth"`           // Depth new obstacles appear at
	PickupDepthOffset float64 `yaml:"pickup_depth_offset"` // Extra depth for new pickups
	ObstacleFirst     float64 `yaml:"obstacle_first"`      // Delay before the first obstacle
	ObstacleInterval  float64 `yaml:"obstacle_interval"`   // Minimum gap between obstacles
	ObstacleJitter    float64 `yaml:"obstacle_jitter"`     // Random extra gap, uniform in [0, jitter)
	LowChance         float64 `yaml:"low_chance"`          // Probability an obstacle is low
	PickupFirst       float64 `yaml:"pickup_first"`        // Delay before the first pickup
	PickupInterval    float64 `yaml:"pickup_interval"`     // Minimum gap between pickups
	PickupJitter      float64 `yaml:"pickup_jitter"`       // Random extra gap for pickups
	DiscardDepth      float64 `yaml:"discard_depth"`       // Entities below this depth are removed
}

// RunnerCollision defines the depth bands and clearances for collisions.
type RunnerCollision struct {
	ResolveDepth      float64 `yaml:"resolve_depth"`      // Obstacle counts as passed below this depth
	ObstacleNear      float64 `yaml:"obstacle_near"`      // Collision band, exclusive lower bound
	ObstacleFar       float64 `yaml:"obstacle_far"`       // Collision band, exclusive upper bound
	PickupNear        float64 `yaml:"pickup_near"`        // Pickup band, exclusive lower bound
	PickupFar         float64 `yaml:"pickup_far"`         // Pickup band, exclusive upper bound
	JumpClearance     float64 `yaml:"jump_clearance"`     // Height needed to clear a low obstacle
	SlideClearance    float64 `yaml:"slide_clearance"`    // Height a slide must stay under
	AirborneThreshold float64 `yaml:"airborne_threshold"` // Above this height jump and slide are refused
}

// RunnerScoring defines how points are awarded.
type RunnerScoring struct {
	PerSecond     float64 `yaml:"per_second"`     // Continuous survival score
	ObstacleBonus float64 `yaml:"obstacle_bonus"` // Awarded once per passed obstacle
	PickupBonus   float64 `yaml:"pickup_bonus"`   // Awarded per collected pickup
}

// DifficultyConfig selects a difficulty preset for the speed ramp.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty strings return
// "" meaning the config's own preset is kept.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables the speed ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// IsKnownPreset reports whether s names a difficulty preset.
func IsKnownPreset(s string) bool {
	return ParsePreset(s) != ""
}
