package runner

import (
	"math"

	"github.com/vovakirdan/nightshift/internal/config"
)

// stepEpsilon is the smallest remainder of a tick worth simulating.
const stepEpsilon = 1e-9

// Rand is the randomness source used for spawn decisions.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Outcome reports the run status after StartRun or Tick.
type Outcome struct {
	Running    bool
	Ended      bool // True only for the tick that ended the run
	FinalScore int  // Set when Ended
}

// Simulation advances one run of the lane runner. It owns all run and player
// state; every mutation goes through StartRun, ApplyIntent and Tick.
//
// Simulation is not safe for concurrent use. The driver calls it from a single
// loop, applying intents and ticks in sequence.
type Simulation struct {
	cfg    config.RunnerConfig
	phase  Phase
	player Player

	elapsed float64
	speed   float64
	score   float64

	obstacles []Obstacle
	pickups   []Pickup

	spawnTimer  float64
	pickupTimer float64
}

// NewSimulation creates an idle simulation using the given configuration.
func NewSimulation(cfg config.RunnerConfig) *Simulation {
	return &Simulation{
		cfg:       cfg,
		obstacles: make([]Obstacle, 0, 16),
		pickups:   make([]Pickup, 0, 8),
	}
}

// Config returns the configuration the simulation runs with.
func (s *Simulation) Config() config.RunnerConfig {
	return s.cfg
}

// StartRun resets run and player state and enters the running phase.
func (s *Simulation) StartRun() Outcome {
	s.phase = PhaseRunning
	s.elapsed = 0
	s.speed = s.cfg.Physics.BaseSpeed
	s.score = 0
	s.obstacles = s.obstacles[:0]
	s.pickups = s.pickups[:0]
	s.spawnTimer = s.cfg.Spawn.ObstacleFirst
	s.pickupTimer = s.cfg.Spawn.PickupFirst
	s.player = Player{Lane: LaneCenter}
	return s.outcome()
}

// ApplyIntent applies a player intent and reports whether it changed state.
// Intents are ignored while idle. Jump and slide are refused while airborne
// or already sliding.
func (s *Simulation) ApplyIntent(in Intent) bool {
	if s.phase != PhaseRunning {
		return false
	}

	switch in {
	case IntentMoveLeft:
		return s.moveLane(-1)
	case IntentMoveRight:
		return s.moveLane(1)
	case IntentJump:
		if !s.grounded() {
			return false
		}
		s.player.JumpVelocity = s.cfg.Physics.JumpVelocity
		return true
	case IntentSlide:
		if !s.grounded() {
			return false
		}
		s.player.Sliding = true
		s.player.SlideRemaining = s.cfg.Physics.SlideDuration
		return true
	}
	return false
}

func (s *Simulation) moveLane(dir Lane) bool {
	next := clampLane(s.player.Lane + dir)
	if next == s.player.Lane {
		return false
	}
	s.player.Lane = next
	return true
}

// grounded reports whether a jump or slide may start.
func (s *Simulation) grounded() bool {
	return s.player.JumpHeight <= s.cfg.Collision.AirborneThreshold && !s.player.Sliding
}

// Tick advances the run by dt seconds. The elapsed time is integrated in
// steps of at most Physics.MaxStep, and at most Physics.MaxElapsed is
// consumed per call. Non-positive dt and ticks while idle are no-ops.
//
// rng drives spawn lanes, kinds and intervals. A nil rng disables spawning.
func (s *Simulation) Tick(dt float64, rng Rand) Outcome {
	if s.phase != PhaseRunning || !(dt > 0) {
		return s.outcome()
	}

	remaining := math.Min(dt, s.cfg.Physics.MaxElapsed)
	for remaining > stepEpsilon {
		step := math.Min(remaining, s.cfg.Physics.MaxStep)
		remaining -= step
		if ended := s.step(step, rng); ended {
			return Outcome{Ended: true, FinalScore: s.Score()}
		}
	}
	return s.outcome()
}

// step runs one bounded integration step. It returns true if the run ended.
func (s *Simulation) step(dt float64, rng Rand) bool {
	s.elapsed += dt
	s.speed += s.cfg.Physics.Acceleration * dt
	s.score += s.cfg.Scoring.PerSecond * dt

	s.integratePlayer(dt)
	if rng != nil {
		s.updateSpawners(dt, rng)
	}

	if s.advanceObstacles(dt) {
		s.phase = PhaseIdle
		return true
	}
	s.advancePickups(dt)
	s.discard()
	return false
}

func (s *Simulation) integratePlayer(dt float64) {
	p := &s.player

	p.JumpVelocity -= s.cfg.Physics.Gravity * dt
	p.JumpHeight += p.JumpVelocity * dt
	if p.JumpHeight < 0 {
		p.JumpHeight = 0
		p.JumpVelocity = 0
	}

	if p.Sliding {
		p.SlideRemaining -= dt
		if p.SlideRemaining <= 0 {
			p.Sliding = false
			p.SlideRemaining = 0
		}
	}
}

func (s *Simulation) updateSpawners(dt float64, rng Rand) {
	sp := s.cfg.Spawn

	s.spawnTimer -= dt
	if s.spawnTimer <= 0 {
		lane := Lane(rng.Intn(laneCount))
		kind := ObstacleHigh
		if rng.Float64() < sp.LowChance {
			kind = ObstacleLow
		}
		s.obstacles = append(s.obstacles, Obstacle{Lane: lane, Kind: kind, Depth: sp.MaxDepth})
		s.spawnTimer = sp.ObstacleInterval + rng.Float64()*sp.ObstacleJitter
	}

	s.pickupTimer -= dt
	if s.pickupTimer <= 0 {
		lane := Lane(rng.Intn(laneCount))
		s.pickups = append(s.pickups, Pickup{Lane: lane, Depth: sp.MaxDepth + sp.PickupDepthOffset})
		s.pickupTimer = sp.PickupInterval + rng.Float64()*sp.PickupJitter
	}
}

// advanceObstacles moves obstacles, awards pass bonuses and resolves
// collisions. It returns true on the first unavoided obstacle.
func (s *Simulation) advanceObstacles(dt float64) bool {
	col := s.cfg.Collision
	for i := range s.obstacles {
		o := &s.obstacles[i]
		o.Depth -= s.speed * dt

		if !o.Resolved && o.Depth < col.ResolveDepth {
			o.Resolved = true
			s.score += s.cfg.Scoring.ObstacleBonus
		}

		if o.Depth > col.ObstacleNear && o.Depth < col.ObstacleFar && o.Lane == s.player.Lane {
			if !s.avoids(o.Kind) {
				return true
			}
		}
	}
	return false
}

// avoids reports whether the player's current pose clears an obstacle kind.
func (s *Simulation) avoids(kind ObstacleKind) bool {
	col := s.cfg.Collision
	switch kind {
	case ObstacleLow:
		return s.player.JumpHeight > col.JumpClearance
	case ObstacleHigh:
		return s.player.Sliding && s.player.JumpHeight < col.SlideClearance
	}
	return true
}

func (s *Simulation) advancePickups(dt float64) {
	col := s.cfg.Collision
	for i := range s.pickups {
		p := &s.pickups[i]
		p.Depth -= s.speed * dt
		if !p.Collected && p.Depth > col.PickupNear && p.Depth < col.PickupFar && p.Lane == s.player.Lane {
			p.Collected = true
			s.score += s.cfg.Scoring.PickupBonus
		}
	}
}

// discard drops entities that are behind the player, and collected pickups.
func (s *Simulation) discard() {
	limit := s.cfg.Spawn.DiscardDepth

	obstacles := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Depth >= limit {
			obstacles = append(obstacles, o)
		}
	}
	s.obstacles = obstacles

	pickups := s.pickups[:0]
	for _, p := range s.pickups {
		if !p.Collected && p.Depth >= limit {
			pickups = append(pickups, p)
		}
	}
	s.pickups = pickups
}

func (s *Simulation) outcome() Outcome {
	return Outcome{Running: s.phase == PhaseRunning}
}

// PlaceObstacle adds an obstacle at the given lane and depth.
// It reports false and does nothing while idle.
func (s *Simulation) PlaceObstacle(lane Lane, kind ObstacleKind, depth float64) bool {
	if s.phase != PhaseRunning {
		return false
	}
	s.obstacles = append(s.obstacles, Obstacle{Lane: clampLane(lane), Kind: kind, Depth: depth})
	return true
}

// PlacePickup adds a pickup at the given lane and depth.
// It reports false and does nothing while idle.
func (s *Simulation) PlacePickup(lane Lane, depth float64) bool {
	if s.phase != PhaseRunning {
		return false
	}
	s.pickups = append(s.pickups, Pickup{Lane: clampLane(lane), Depth: depth})
	return true
}

// Player returns the current player state.
func (s *Simulation) Player() Player {
	return s.player
}

// Obstacles returns a copy of the live obstacles in spawn order.
func (s *Simulation) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// Pickups returns a copy of the live pickups in spawn order.
func (s *Simulation) Pickups() []Pickup {
	out := make([]Pickup, len(s.pickups))
	copy(out, s.pickups)
	return out
}

// Score returns the accumulated score rounded down.
func (s *Simulation) Score() int {
	return int(math.Floor(s.score))
}

// Running reports whether a run is in progress.
func (s *Simulation) Running() bool {
	return s.phase == PhaseRunning
}

// Phase returns the lifecycle phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Speed returns the current approach speed.
func (s *Simulation) Speed() float64 {
	return s.speed
}

// Elapsed returns the simulated seconds since the run started.
func (s *Simulation) Elapsed() float64 {
	return s.elapsed
}

// CompareBest returns the better of best and final, and whether final beat best.
func CompareBest(best, final int) (int, bool) {
	if final > best {
		return final, true
	}
	return best, false
}
