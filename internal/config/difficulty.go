package config

// presetScaling describes how a preset changes the speed ramp relative to the
// normal preset.
type presetScaling struct {
	speedMultiplier float64 // Applied to base speed
	accelMultiplier float64 // Applied to acceleration
}

var presetScales = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {speedMultiplier: 0.85, accelMultiplier: 0.6},
	DifficultyNormal: {speedMultiplier: 1.0, accelMultiplier: 1.0},
	DifficultyHard:   {speedMultiplier: 1.2, accelMultiplier: 1.5},
	DifficultyFixed:  {speedMultiplier: 1.0, accelMultiplier: 0},
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// The config's values are treated as the normal preset. An empty or unknown
// preset leaves the config unchanged.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}
	cfg.Physics.BaseSpeed *= scale.speedMultiplier
	cfg.Physics.Acceleration *= scale.accelMultiplier
	cfg.Difficulty.Preset = preset
}

// Presets returns the known difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}
