// Package runner implements Night Shift Run, a three-lane endless runner.
// The player switches lanes, jumps low barriers and slides under gates while
// the run speeds up.
package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/nightshift/internal/config"
	"github.com/vovakirdan/nightshift/internal/core"
	"github.com/vovakirdan/nightshift/internal/registry"
)

// GameID is the registry identifier and score key of the runner.
const GameID = "runner"

// Game adapts Simulation to the arcade platform.
type Game struct {
	sim       *Simulation
	rng       *rand.Rand
	runtime   core.RuntimeConfig
	cfg       config.RunnerConfig
	best      int  // Best score known to the platform
	newBest   bool // Whether the last finished run beat best
	lastFinal int  // Score of the last finished run
	started   bool // Whether a run has been started since Reset
	paused    bool
	tickCount int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Night Shift Run"
}

// Reset loads the configuration, reseeds the RNG and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}

	preset := difficultyPreset
	if preset == "" {
		preset = cfg.Difficulty.Preset
	}
	config.ApplyRunnerPreset(&cfg, preset)
	g.cfg = cfg

	g.sim = NewSimulation(cfg)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.paused = false
	g.tickCount = 0
	g.newBest = false
	g.lastFinal = 0
	g.sim.StartRun()
	g.started = true
}

// Step applies this frame's input and advances the run by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	if !g.sim.Running() {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		if intent, ok := intentFor(a); ok {
			g.sim.ApplyIntent(intent)
		}
	}

	g.tickCount++
	dt := math.Min(g.runtime.FrameSeconds(), g.cfg.Physics.MaxStep)
	out := g.sim.Tick(dt, g.rng)
	if out.Ended {
		g.lastFinal = out.FinalScore
		g.best, g.newBest = CompareBest(g.best, out.FinalScore)
	}

	return core.StepResult{State: g.State(), Ended: out.Ended}
}

// restart begins a new run with the current configuration and RNG stream.
func (g *Game) restart() {
	g.sim.StartRun()
	g.paused = false
	g.tickCount = 0
	g.newBest = false
}

// intentFor maps platform actions to simulation intents.
func intentFor(a core.Action) (Intent, bool) {
	switch a {
	case core.ActionLeft:
		return IntentMoveLeft, true
	case core.ActionRight:
		return IntentMoveRight, true
	case core.ActionJump:
		return IntentJump, true
	case core.ActionSlide:
		return IntentSlide, true
	}
	return 0, false
}

// SetBestScore tells the game the best score recorded by the platform.
func (g *Game) SetBestScore(best int) {
	if best > g.best {
		g.best = best
	}
}

// BestScore returns the best score seen by this game instance.
func (g *Game) BestScore() int {
	return g.best
}

// Simulation exposes the underlying simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.started && !g.sim.Running(),
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
