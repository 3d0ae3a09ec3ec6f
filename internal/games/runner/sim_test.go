package runner

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/nightshift/internal/config"
)

const frame = 1.0 / 60

// fixedRand returns constant values so spawn decisions are predictable.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(int) int     { return r.n }

func newRunningSim(t *testing.T) *Simulation {
	t.Helper()
	s := NewSimulation(config.DefaultRunnerConfig())
	if out := s.StartRun(); !out.Running {
		t.Fatal("StartRun should enter the running phase")
	}
	return s
}

func TestStartRunDefaults(t *testing.T) {
	s := newRunningSim(t)

	if s.Speed() != 390 {
		t.Errorf("Speed() = %v, expected 390", s.Speed())
	}
	if s.Score() != 0 || s.Elapsed() != 0 {
		t.Errorf("new run should have zero score and time, got %d / %v", s.Score(), s.Elapsed())
	}
	if s.spawnTimer != 0.5 || s.pickupTimer != 1.1 {
		t.Errorf("timers = %v / %v, expected 0.5 / 1.1", s.spawnTimer, s.pickupTimer)
	}
	if got := s.Player(); got != (Player{Lane: LaneCenter}) {
		t.Errorf("Player() = %+v, expected centered idle player", got)
	}
	if len(s.Obstacles()) != 0 || len(s.Pickups()) != 0 {
		t.Error("new run should have no entities")
	}
	if s.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected Running", s.Phase())
	}
}

func TestIdleIgnoresIntentsAndTicks(t *testing.T) {
	s := NewSimulation(config.DefaultRunnerConfig())

	for _, in := range []Intent{IntentMoveLeft, IntentMoveRight, IntentJump, IntentSlide} {
		if s.ApplyIntent(in) {
			t.Errorf("ApplyIntent(%v) while idle should be ignored", in)
		}
	}
	if s.Player() != (Player{}) {
		t.Errorf("idle intents changed the player: %+v", s.Player())
	}

	out := s.Tick(0.5, rand.New(rand.NewSource(1)))
	if out.Running || out.Ended {
		t.Errorf("Tick while idle = %+v, expected not running and not ended", out)
	}
	if s.Elapsed() != 0 || s.Score() != 0 {
		t.Error("Tick while idle should not advance the run")
	}
}

func TestPlaceRequiresRunningPhase(t *testing.T) {
	s := NewSimulation(config.DefaultRunnerConfig())
	if s.PlaceObstacle(LaneCenter, ObstacleLow, 10) || s.PlacePickup(LaneCenter, 10) {
		t.Error("placing entities while idle should be refused")
	}
	if len(s.Obstacles()) != 0 || len(s.Pickups()) != 0 {
		t.Fatal("idle simulation should stay empty")
	}

	s.StartRun()
	if !s.PlaceObstacle(LaneCenter, ObstacleLow, 10) || !s.PlacePickup(LaneLeft, 50) {
		t.Fatal("placing entities while running should succeed")
	}
	s.Tick(frame, nil)
	if s.Running() {
		t.Fatal("low barrier at depth 10 should end the run")
	}

	if s.PlaceObstacle(LaneLeft, ObstacleHigh, 500) {
		t.Error("placing after the run ended should be refused")
	}
}

func TestLaneChangesClamp(t *testing.T) {
	s := newRunningSim(t)

	if !s.ApplyIntent(IntentMoveLeft) {
		t.Error("first MoveLeft should succeed")
	}
	if s.ApplyIntent(IntentMoveLeft) {
		t.Error("MoveLeft at the left lane should be a no-op")
	}
	if s.Player().Lane != LaneLeft {
		t.Errorf("Lane = %d, expected %d", s.Player().Lane, LaneLeft)
	}

	for i := 0; i < 5; i++ {
		s.ApplyIntent(IntentMoveRight)
	}
	if s.Player().Lane != LaneRight {
		t.Errorf("Lane = %d, expected %d", s.Player().Lane, LaneRight)
	}
}

func TestJumpGuard(t *testing.T) {
	t.Run("airborne", func(t *testing.T) {
		s := newRunningSim(t)
		if !s.ApplyIntent(IntentJump) {
			t.Fatal("Jump from the ground should succeed")
		}
		if s.Player().JumpVelocity != 760 {
			t.Errorf("JumpVelocity = %v, expected 760", s.Player().JumpVelocity)
		}

		s.Tick(frame, nil)
		before := s.Player()
		if before.JumpHeight <= 1 {
			t.Fatalf("player should be airborne, height %v", before.JumpHeight)
		}

		if s.ApplyIntent(IntentJump) {
			t.Error("Jump while airborne should be refused")
		}
		if s.ApplyIntent(IntentSlide) {
			t.Error("Slide while airborne should be refused")
		}
		if s.Player() != before {
			t.Errorf("refused intents changed state: %+v -> %+v", before, s.Player())
		}
	})

	t.Run("sliding", func(t *testing.T) {
		s := newRunningSim(t)
		if !s.ApplyIntent(IntentSlide) {
			t.Fatal("Slide from the ground should succeed")
		}
		before := s.Player()
		if !before.Sliding || before.SlideRemaining != 0.58 {
			t.Fatalf("slide state = %+v, expected sliding for 0.58s", before)
		}

		if s.ApplyIntent(IntentJump) {
			t.Error("Jump while sliding should be refused")
		}
		if s.ApplyIntent(IntentSlide) {
			t.Error("Slide while sliding should be refused")
		}
		if s.Player() != before {
			t.Errorf("refused intents changed state: %+v -> %+v", before, s.Player())
		}
	})
}

func TestSlideExpires(t *testing.T) {
	s := newRunningSim(t)
	s.ApplyIntent(IntentSlide)

	s.Tick(0.3, nil)
	if !s.Player().Sliding {
		t.Fatal("slide should still be active after 0.3s")
	}

	s.Tick(0.3, nil)
	p := s.Player()
	if p.Sliding || p.SlideRemaining != 0 {
		t.Errorf("slide should end after 0.58s, got %+v", p)
	}
	if !s.ApplyIntent(IntentJump) {
		t.Error("Jump should be allowed once the slide ended")
	}
}

func TestJumpLands(t *testing.T) {
	s := newRunningSim(t)
	s.ApplyIntent(IntentJump)

	peak := 0.0
	for i := 0; i < 120; i++ {
		s.Tick(frame, nil)
		peak = math.Max(peak, s.Player().JumpHeight)
	}

	p := s.Player()
	if p.JumpHeight != 0 || p.JumpVelocity != 0 {
		t.Errorf("player should have landed with zero velocity, got %+v", p)
	}
	// Continuous peak is 760^2 / (2*1900) = 152
	if peak < 140 || peak > 160 {
		t.Errorf("jump peak = %v, expected about 152", peak)
	}
}

func TestSimulationInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	intents := rand.New(rand.NewSource(99))

	for run := 0; run < 20; run++ {
		s := newRunningSim(t)
		prevSpeed := s.Speed()
		prevScore := s.score

		for i := 0; i < 3000 && s.Running(); i++ {
			if intents.Intn(4) == 0 {
				s.ApplyIntent(Intent(intents.Intn(4)))
			}
			dt := intents.Float64() * 0.05
			out := s.Tick(dt, rng)

			if s.Speed() < prevSpeed {
				t.Fatalf("speed decreased: %v -> %v", prevSpeed, s.Speed())
			}
			if s.Player().JumpHeight < 0 {
				t.Fatalf("negative jump height %v", s.Player().JumpHeight)
			}
			if dt > 1e-6 && s.score <= prevScore {
				t.Fatalf("score did not increase over dt=%v: %v -> %v", dt, prevScore, s.score)
			}
			if out.Ended && out.FinalScore != s.Score() {
				t.Fatalf("FinalScore = %d, expected %d", out.FinalScore, s.Score())
			}
			if !s.Running() {
				break
			}
			for _, o := range s.Obstacles() {
				if o.Depth < -100 {
					t.Fatalf("obstacle below discard depth survived: %+v", o)
				}
			}
			for _, p := range s.Pickups() {
				if p.Collected || p.Depth < -100 {
					t.Fatalf("stale pickup survived: %+v", p)
				}
			}

			prevSpeed = s.Speed()
			prevScore = s.score
		}
	}
}

func TestTickOneSecondAccruesSurvivalScore(t *testing.T) {
	s := newRunningSim(t)

	out := s.Tick(1.0, rand.New(rand.NewSource(1)))
	if !out.Running {
		t.Fatal("run should still be active after one second")
	}
	if math.Abs(s.score-18) > 1e-6 {
		t.Errorf("score = %v, expected 18", s.score)
	}
	if math.Abs(s.Elapsed()-1) > 1e-9 {
		t.Errorf("Elapsed() = %v, expected 1", s.Elapsed())
	}
	if math.Abs(s.Speed()-395.5) > 1e-6 {
		t.Errorf("Speed() = %v, expected 395.5", s.Speed())
	}
	// The first obstacle spawns at 0.5s and is still far away.
	if n := len(s.Obstacles()); n != 1 {
		t.Errorf("expected one spawned obstacle, got %d", n)
	}
	if n := len(s.Pickups()); n != 0 {
		t.Errorf("first pickup is due at 1.1s, got %d pickups", n)
	}
}

func TestTickBounds(t *testing.T) {
	s := newRunningSim(t)

	for _, dt := range []float64{0, -1, math.NaN()} {
		s.Tick(dt, nil)
	}
	if s.Elapsed() != 0 {
		t.Errorf("non-positive ticks advanced time to %v", s.Elapsed())
	}

	s.Tick(5, nil)
	if math.Abs(s.Elapsed()-1) > 1e-9 {
		t.Errorf("a 5s tick should consume at most 1s, got %v", s.Elapsed())
	}
}

func TestSpawning(t *testing.T) {
	tests := []struct {
		name string
		rng  fixedRand
		kind ObstacleKind
	}{
		{"low barrier", fixedRand{f: 0.5, n: 2}, ObstacleLow},
		{"high gate", fixedRand{f: 0.9, n: 0}, ObstacleHigh},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newRunningSim(t)
			for i := 0; i < 16; i++ {
				s.Tick(0.033, tc.rng)
			}

			obstacles := s.Obstacles()
			if len(obstacles) != 1 {
				t.Fatalf("expected one obstacle after 0.528s, got %d", len(obstacles))
			}
			o := obstacles[0]
			if o.Lane != Lane(tc.rng.n) || o.Kind != tc.kind {
				t.Errorf("obstacle = %+v, expected lane %d kind %v", o, tc.rng.n, tc.kind)
			}
			// Spawned at max depth then moved during the same step
			if o.Depth >= 1400 || o.Depth < 1380 {
				t.Errorf("obstacle depth = %v, expected just under 1400", o.Depth)
			}

			wantTimer := 0.58 + tc.rng.f*0.38
			if math.Abs(s.spawnTimer-wantTimer) > 1e-9 {
				t.Errorf("spawn timer = %v, expected %v", s.spawnTimer, wantTimer)
			}
		})
	}
}

func TestPickupSpawnDepth(t *testing.T) {
	s := newRunningSim(t)
	rng := fixedRand{f: 0, n: 1}

	// 34 steps of 0.033s pass the 1.1s pickup timer
	for i := 0; i < 34; i++ {
		s.Tick(0.033, rng)
	}

	pickups := s.Pickups()
	if len(pickups) != 1 {
		t.Fatalf("expected one pickup, got %d", len(pickups))
	}
	if d := pickups[0].Depth; d >= 1480 || d < 1460 {
		t.Errorf("pickup depth = %v, expected just under 1480", d)
	}
	if math.Abs(s.pickupTimer-1.3) > 1e-9 {
		t.Errorf("pickup timer = %v, expected 1.3", s.pickupTimer)
	}
}

func TestLowObstacleWithoutJumpEndsRun(t *testing.T) {
	s := newRunningSim(t)
	s.PlaceObstacle(LaneCenter, ObstacleLow, 10)

	out := s.Tick(frame, nil)
	if !out.Ended || out.Running {
		t.Fatalf("Tick = %+v, expected the run to end", out)
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected Idle", s.Phase())
	}
	// Survival score plus the pass bonus awarded before the collision check
	if out.FinalScore != 14 {
		t.Errorf("FinalScore = %d, expected 14", out.FinalScore)
	}

	// Ended is reported once; the run no longer advances.
	elapsed := s.Elapsed()
	again := s.Tick(frame, nil)
	if again.Ended || again.Running {
		t.Errorf("Tick after end = %+v, expected idle", again)
	}
	if s.Elapsed() != elapsed {
		t.Error("ticks after the end should not advance time")
	}
}

func TestLowObstacleClearedByJump(t *testing.T) {
	s := newRunningSim(t)
	// Enters the collision band about 0.22s into the jump, above 95 units.
	s.PlaceObstacle(LaneCenter, ObstacleLow, 160)
	s.ApplyIntent(IntentJump)

	for i := 0; i < 60; i++ {
		if out := s.Tick(frame, nil); !out.Running {
			t.Fatalf("run ended on tick %d at height %v", i+1, s.Player().JumpHeight)
		}
	}

	if len(s.Obstacles()) != 0 {
		t.Errorf("cleared obstacle should be discarded, got %+v", s.Obstacles())
	}
	if math.Abs(s.score-32) > 1e-6 {
		t.Errorf("score = %v, expected 18 survival + 14 bonus", s.score)
	}
}

func TestHighObstacle(t *testing.T) {
	t.Run("no slide ends run", func(t *testing.T) {
		s := newRunningSim(t)
		s.PlaceObstacle(LaneCenter, ObstacleHigh, 10)
		if out := s.Tick(frame, nil); !out.Ended {
			t.Error("High obstacle without a slide should end the run")
		}
	})

	t.Run("jumping does not clear a gate", func(t *testing.T) {
		s := newRunningSim(t)
		s.PlaceObstacle(LaneCenter, ObstacleHigh, 10)
		s.ApplyIntent(IntentJump)
		if out := s.Tick(frame, nil); !out.Ended {
			t.Error("High obstacle while jumping should end the run")
		}
	})

	t.Run("slide clears gate", func(t *testing.T) {
		s := newRunningSim(t)
		s.PlaceObstacle(LaneCenter, ObstacleHigh, 10)
		s.ApplyIntent(IntentSlide)
		for i := 0; i < 30; i++ {
			if out := s.Tick(frame, nil); !out.Running {
				t.Fatalf("run ended on tick %d while sliding", i+1)
			}
		}
	})
}

func TestCollisionRequiresMatchingLane(t *testing.T) {
	s := newRunningSim(t)
	s.PlaceObstacle(LaneLeft, ObstacleLow, 10)
	s.PlaceObstacle(LaneRight, ObstacleHigh, 10)

	if out := s.Tick(frame, nil); !out.Running {
		t.Fatal("obstacles in other lanes should not end the run")
	}
	// Pass bonus is independent of the lane.
	if math.Abs(s.score-(0.3+28)) > 1e-6 {
		t.Errorf("score = %v, expected two pass bonuses", s.score)
	}
}

func TestObstacleBonusAwardedOnce(t *testing.T) {
	s := newRunningSim(t)
	s.PlaceObstacle(LaneLeft, ObstacleLow, 70)

	for i := 0; i < 10; i++ {
		s.Tick(frame, nil)
	}

	bonus := s.score - 18*10*frame
	if math.Abs(bonus-14) > 1e-6 {
		t.Errorf("bonus = %v, expected exactly one 14 point bonus", bonus)
	}
	if o := s.Obstacles(); len(o) != 1 || !o[0].Resolved {
		t.Errorf("obstacle should be resolved and still tracked, got %+v", o)
	}
}

func TestPickupCollection(t *testing.T) {
	s := newRunningSim(t)
	s.PlacePickup(LaneCenter, 50)
	s.PlacePickup(LaneLeft, 50)

	s.Tick(frame, nil)

	pickups := s.Pickups()
	if len(pickups) != 1 || pickups[0].Lane != LaneLeft {
		t.Fatalf("collected pickup should be removed on the same tick, got %+v", pickups)
	}
	if math.Abs(s.score-(0.3+35)) > 1e-6 {
		t.Errorf("score = %v, expected 35 point pickup bonus", s.score)
	}
}

func TestDiscardBehindPlayer(t *testing.T) {
	s := newRunningSim(t)
	s.PlaceObstacle(LaneLeft, ObstacleHigh, -95)
	s.PlacePickup(LaneRight, -95)
	s.PlaceObstacle(LaneRight, ObstacleLow, 500)

	s.Tick(frame, nil)

	obstacles := s.Obstacles()
	if len(obstacles) != 1 || obstacles[0].Depth < 400 {
		t.Errorf("only the far obstacle should remain, got %+v", obstacles)
	}
	if len(s.Pickups()) != 0 {
		t.Errorf("pickup behind the player should be discarded, got %+v", s.Pickups())
	}
}

func TestDeterministicReplay(t *testing.T) {
	play := func() (int, []Obstacle, Player) {
		s := newRunningSim(t)
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 600 && s.Running(); i++ {
			switch i % 45 {
			case 0:
				s.ApplyIntent(IntentJump)
			case 20:
				s.ApplyIntent(IntentMoveLeft)
			case 30:
				s.ApplyIntent(IntentSlide)
			case 40:
				s.ApplyIntent(IntentMoveRight)
			}
			s.Tick(frame, rng)
		}
		return s.Score(), s.Obstacles(), s.Player()
	}

	score1, obs1, p1 := play()
	score2, obs2, p2 := play()

	if score1 != score2 || p1 != p2 {
		t.Errorf("replay diverged: %d/%+v vs %d/%+v", score1, p1, score2, p2)
	}
	if len(obs1) != len(obs2) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(obs1), len(obs2))
	}
	for i := range obs1 {
		if obs1[i] != obs2[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, obs1[i], obs2[i])
		}
	}
}

func TestRestartAfterEnd(t *testing.T) {
	s := newRunningSim(t)
	s.PlaceObstacle(LaneCenter, ObstacleLow, 0)
	s.Tick(frame, nil)
	if s.Running() {
		t.Fatal("run should have ended")
	}

	s.StartRun()
	if !s.Running() || s.Score() != 0 || len(s.Obstacles()) != 0 {
		t.Errorf("StartRun should reset the run, got score %d and %d obstacles", s.Score(), len(s.Obstacles()))
	}
}

func TestQueriesReturnCopies(t *testing.T) {
	s := newRunningSim(t)
	s.PlaceObstacle(LaneLeft, ObstacleLow, 300)

	obstacles := s.Obstacles()
	obstacles[0].Depth = -1000

	if s.Obstacles()[0].Depth != 300 {
		t.Error("mutating the returned slice should not affect the simulation")
	}
}

func TestFixedPresetKeepsSpeed(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	config.ApplyRunnerPreset(&cfg, config.DifficultyFixed)

	s := NewSimulation(cfg)
	s.StartRun()
	s.Tick(1, nil)

	if s.Speed() != 390 {
		t.Errorf("fixed preset speed = %v, expected constant 390", s.Speed())
	}
}

func TestCompareBest(t *testing.T) {
	tests := []struct {
		best, final int
		want        int
		beat        bool
	}{
		{0, 10, 10, true},
		{50, 10, 50, false},
		{50, 50, 50, false},
	}

	for _, tc := range tests {
		got, beat := CompareBest(tc.best, tc.final)
		if got != tc.want || beat != tc.beat {
			t.Errorf("CompareBest(%d, %d) = %d, %v; expected %d, %v", tc.best, tc.final, got, beat, tc.want, tc.beat)
		}
	}
}
