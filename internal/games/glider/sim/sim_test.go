package sim

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/meteor-glider/internal/config"
)

const (
	testFieldW = 800.0
	testFieldH = 480.0
)

// newTestWorld returns a reset world whose spawn timers will not fire
// for timestamps below 1500ms.
func newTestWorld(t *testing.T, mutate func(*config.GliderConfig)) *World {
	t.Helper()
	cfg := config.DefaultGliderConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	w := New(cfg, rand.New(rand.NewSource(1)))
	w.Reset(testFieldW, testFieldH)
	return w
}

func TestResetInitialState(t *testing.T) {
	w := newTestWorld(t, nil)
	snap := w.Snapshot()

	if snap.Player.X != testFieldW/2 || snap.Player.Y != testFieldH-100 {
		t.Errorf("player at (%v, %v), expected (%v, %v)", snap.Player.X, snap.Player.Y, testFieldW/2, testFieldH-100)
	}
	if snap.Player.Size != 30 {
		t.Errorf("player size = %v, expected 30", snap.Player.Size)
	}
	if snap.Score != 0 || snap.Status != StatusRunning {
		t.Errorf("session = (%d, %v), expected (0, running)", snap.Score, snap.Status)
	}
	if len(snap.Obstacles) != 0 || len(snap.Projectiles) != 0 {
		t.Error("reset world should have no obstacles or projectiles")
	}
}

func TestResetIdempotent(t *testing.T) {
	w := newTestWorld(t, nil)

	// Dirty the world first
	w.Fire()
	for i := 1; i <= 200; i++ {
		w.Step(float64(i) * 50)
	}

	w.Reset(testFieldW, testFieldH)
	first := w.Snapshot()
	w.Reset(testFieldW, testFieldH)
	second := w.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Reset twice should yield identical state:\n%+v\n%+v", first, second)
	}
	if first.Score != 0 || first.Status != StatusRunning || len(first.Obstacles) != 0 || len(first.Projectiles) != 0 {
		t.Errorf("reset state not clean: %+v", first)
	}
}

func TestResetRejectsBadField(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 100},
		{"zero height", 100, 0},
		{"negative", -5, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Reset should panic on a non-positive field")
				}
			}()
			New(config.DefaultGliderConfig(), rand.New(rand.NewSource(1))).Reset(tc.w, tc.h)
		})
	}
}

func TestStepBeforeResetPanics(t *testing.T) {
	w := New(config.DefaultGliderConfig(), rand.New(rand.NewSource(1)))
	defer func() {
		if recover() == nil {
			t.Error("Step before Reset should panic")
		}
	}()
	w.Step(16)
}

func TestPlayerCollisionEndsSession(t *testing.T) {
	w := newTestWorld(t, nil)
	p := w.store.Player()

	// After moving 5 units the meteor is 35 units away, inside (30+50)/2 = 40.
	w.store.AddObstacles(Obstacle{X: p.X, Y: p.Y - 40, Width: 50, Height: 50})

	snap := w.Step(16)
	if snap.Status != StatusEnded {
		t.Fatal("collision should end the session")
	}

	// Further steps are no-ops
	before := w.Snapshot()
	after := w.Step(5000)
	if !reflect.DeepEqual(before, after) {
		t.Error("Step after the session ended should not change state")
	}
}

func TestNearMissKeepsRunning(t *testing.T) {
	w := newTestWorld(t, nil)
	p := w.store.Player()

	// After moving 5 units the meteor is 45 units away, outside 40.
	w.store.AddObstacles(Obstacle{X: p.X, Y: p.Y - 50, Width: 50, Height: 50})

	if snap := w.Step(16); snap.Status != StatusRunning {
		t.Error("a near miss should not end the session")
	}
}

func TestProjectileDestroysStandard(t *testing.T) {
	w := newTestWorld(t, nil)
	w.store.AddObstacles(Obstacle{X: 200, Y: 170, Width: 50, Height: 50})
	w.store.AddProjectile(Projectile{X: 200, Y: 200, Speed: 7})

	snap := w.Step(16)

	if len(snap.Obstacles) != 0 {
		t.Errorf("standard meteor should be destroyed, %d left", len(snap.Obstacles))
	}
	if len(snap.Projectiles) != 0 {
		t.Errorf("projectile should be consumed, %d left", len(snap.Projectiles))
	}
	if snap.Score != 20 {
		t.Errorf("score = %d, expected 20", snap.Score)
	}
	if w.Stats().MeteorsDestroyed != 1 {
		t.Errorf("MeteorsDestroyed = %d, expected 1", w.Stats().MeteorsDestroyed)
	}
}

func TestProjectileDoesNotDestroyHazard(t *testing.T) {
	w := newTestWorld(t, nil)
	w.store.AddObstacles(Obstacle{X: 200, Y: 170, Width: 50, Height: 50, Variant: VariantHazard})
	w.store.AddProjectile(Projectile{X: 200, Y: 200, Speed: 7})

	snap := w.Step(16)

	if len(snap.Obstacles) != 1 {
		t.Fatalf("hazard should survive, %d obstacles left", len(snap.Obstacles))
	}
	if snap.Obstacles[0].Y != 175 {
		t.Errorf("hazard should keep falling, y = %v", snap.Obstacles[0].Y)
	}
	if len(snap.Projectiles) != 0 {
		t.Error("projectile should be absorbed by the hazard")
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0", snap.Score)
	}
}

func TestMultipleHitsInOneTick(t *testing.T) {
	w := newTestWorld(t, nil)
	w.store.AddObstacles(
		Obstacle{X: 100, Y: 170, Width: 50, Height: 50},
		Obstacle{X: 600, Y: 170, Width: 50, Height: 50},
	)
	w.store.AddProjectile(Projectile{X: 100, Y: 200, Speed: 7})
	w.store.AddProjectile(Projectile{X: 600, Y: 200, Speed: 7})

	snap := w.Step(16)
	if snap.Score != 40 || len(snap.Obstacles) != 0 || len(snap.Projectiles) != 0 {
		t.Errorf("two hits expected: score=%d obstacles=%d projectiles=%d", snap.Score, len(snap.Obstacles), len(snap.Projectiles))
	}
}

func TestProjectileConsumedByFirstHit(t *testing.T) {
	w := newTestWorld(t, nil)
	// Two stacked meteors both within range of one projectile.
	w.store.AddObstacles(
		Obstacle{X: 200, Y: 175, Width: 50, Height: 50},
		Obstacle{X: 205, Y: 175, Width: 50, Height: 50},
	)
	w.store.AddProjectile(Projectile{X: 200, Y: 200, Speed: 7})

	snap := w.Step(16)
	if snap.Score != 20 {
		t.Errorf("score = %d, expected a single 20 point hit", snap.Score)
	}
	if len(snap.Obstacles) != 1 || snap.Obstacles[0].X != 205 {
		t.Errorf("only the first meteor should be destroyed, left: %+v", snap.Obstacles)
	}
}

func TestOffFieldCleanup(t *testing.T) {
	w := newTestWorld(t, nil)
	w.store.AddObstacles(
		Obstacle{X: 50, Y: testFieldH + 50 + 1, Width: 50, Height: 50},
		Obstacle{X: 700, Y: 100, Width: 50, Height: 50},
	)
	w.store.AddProjectile(Projectile{X: 300, Y: -1, Speed: 7})
	w.store.AddProjectile(Projectile{X: 300, Y: 3, Speed: 7})
	w.store.AddProjectile(Projectile{X: 500, Y: 300, Speed: 7})

	snap := w.Step(16)

	if len(snap.Obstacles) != 1 || snap.Obstacles[0].X != 700 {
		t.Errorf("only the on-field meteor should remain, got %+v", snap.Obstacles)
	}
	if len(snap.Projectiles) != 1 || snap.Projectiles[0].Y != 293 {
		t.Errorf("only the on-field projectile should remain, got %+v", snap.Projectiles)
	}
	if s := w.Stats(); s.ObstaclesEscaped != 1 || s.ProjectilesWasted != 2 {
		t.Errorf("stats = %+v", s)
	}
}

func TestPlayerClampedToField(t *testing.T) {
	w := newTestWorld(t, nil)
	half := 15.0

	tests := []struct {
		name     string
		apply    func()
		expected float64
	}{
		{"target far left", func() { w.SetPlayerTargetX(-1000) }, half},
		{"target far right", func() { w.SetPlayerTargetX(1e6) }, testFieldW - half},
		{"target inside", func() { w.SetPlayerTargetX(321) }, 321},
		{"nudge left past edge", func() { w.SetPlayerTargetX(20); w.NudgePlayer(-15) }, half},
		{"nudge right past edge", func() { w.SetPlayerTargetX(780); w.NudgePlayer(15) }, testFieldW - half},
		{"nudge inside", func() { w.SetPlayerTargetX(400); w.NudgePlayer(-15) }, 385},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.apply()
			if got := w.store.Player().X; got != tc.expected {
				t.Errorf("player x = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestFireSpawnsAtNose(t *testing.T) {
	w := newTestWorld(t, nil)
	p := w.store.Player()

	if !w.Fire() || !w.Fire() {
		t.Fatal("Fire should succeed without limits")
	}

	projectiles := w.store.Projectiles()
	if len(projectiles) != 2 {
		t.Fatalf("two fire events should create two projectiles, got %d", len(projectiles))
	}
	pr := projectiles[0]
	if pr.X != p.X || pr.Y != p.Y-p.Size/2 || pr.Speed != 7 {
		t.Errorf("projectile = %+v, expected at (%v, %v) speed 7", pr, p.X, p.Y-p.Size/2)
	}
}

func TestFireCooldown(t *testing.T) {
	w := newTestWorld(t, func(c *config.GliderConfig) {
		c.Projectiles.FireCooldownMs = 100
	})

	if !w.Fire() {
		t.Fatal("first shot should fire")
	}
	if w.Fire() {
		t.Error("second shot inside the cooldown should be rejected")
	}

	w.Step(50)
	if w.Fire() {
		t.Error("shot at 50ms should still be cooling down")
	}

	w.Step(150)
	if !w.Fire() {
		t.Error("shot after the cooldown should fire")
	}
}

func TestFireMaxLive(t *testing.T) {
	w := newTestWorld(t, func(c *config.GliderConfig) {
		c.Projectiles.MaxLive = 1
	})

	if !w.Fire() {
		t.Fatal("first shot should fire")
	}
	if w.Fire() {
		t.Error("second shot should be rejected while one is live")
	}
}

func TestFireAfterEndIgnored(t *testing.T) {
	w := newTestWorld(t, nil)
	w.session.End()
	if w.Fire() {
		t.Error("Fire should be ignored once the session ended")
	}
}

func TestStandardSpawnTiming(t *testing.T) {
	w := newTestWorld(t, func(c *config.GliderConfig) {
		c.Obstacles.HazardsEnabled = false
	})

	if snap := w.Step(1500); len(snap.Obstacles) != 0 {
		t.Error("no spawn expected until the interval is strictly exceeded")
	}

	snap := w.Step(1501)
	if len(snap.Obstacles) == 0 {
		t.Fatal("spawn expected once the interval elapsed")
	}
	if snap.Score != 10 {
		t.Errorf("score = %d, expected 10 for a spawned pattern", snap.Score)
	}
	for _, o := range snap.Obstacles {
		if o.Variant != VariantStandard {
			t.Errorf("pattern spawns must be standard, got %v", o.Variant)
		}
	}

	// Timer reset: nothing new until another interval passes
	count := len(snap.Obstacles)
	snap = w.Step(2000)
	if len(snap.Obstacles) != count {
		t.Error("no second spawn expected before the interval elapsed again")
	}
}

func TestHazardSpawnTiming(t *testing.T) {
	w := newTestWorld(t, func(c *config.GliderConfig) {
		c.Obstacles.SpawnIntervalMs = 1e9
	})

	if snap := w.Step(4000); snap.CountVariant(VariantHazard) != 0 {
		t.Error("no hazard expected before its interval")
	}

	snap := w.Step(4001)
	if snap.CountVariant(VariantHazard) != 1 {
		t.Fatalf("one hazard expected, got %d", snap.CountVariant(VariantHazard))
	}
	if snap.Score != 0 {
		t.Errorf("hazard spawns award no points, score = %d", snap.Score)
	}
}

func TestClassicModeSpawnsNoHazards(t *testing.T) {
	w := newTestWorld(t, func(c *config.GliderConfig) {
		c.Obstacles.HazardsEnabled = false
		c.Obstacles.SpawnIntervalMs = 0
	})

	for i := 1; i <= 500; i++ {
		snap := w.Step(float64(i) * 10)
		if snap.CountVariant(VariantHazard) != 0 {
			t.Fatal("hazards disabled but one spawned")
		}
		if snap.Status == StatusEnded {
			break
		}
	}
}

func TestSameTickSpawnsDoNotOverlap(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		cfg := config.DefaultGliderConfig()
		cfg.Obstacles.SpawnIntervalMs = 0
		cfg.Obstacles.HazardIntervalMs = 0
		w := New(cfg, rand.New(rand.NewSource(seed)))
		w.Reset(testFieldW, testFieldH)

		snap := w.Step(1)
		assertNoOverlap(t, snap.Obstacles)
		if snap.CountVariant(VariantStandard) > 0 && snap.CountVariant(VariantHazard) != 1 {
			t.Errorf("seed %d: expected a hazard alongside the pattern", seed)
		}
	}
}

func TestObstacleCapAndScoreMonotonic(t *testing.T) {
	for _, maxCount := range []int{1, 3, 10} {
		cfg := config.DefaultGliderConfig()
		cfg.Obstacles.MaxCount = maxCount
		cfg.Obstacles.SpawnIntervalMs = 0
		cfg.Obstacles.HazardIntervalMs = 0
		w := New(cfg, rand.New(rand.NewSource(int64(maxCount))))
		w.Reset(testFieldW, testFieldH)

		lastScore := 0
		for i := 1; i <= 2000; i++ {
			if i%3 == 0 {
				w.Fire()
			}
			w.SetPlayerTargetX(float64((i * 37) % int(testFieldW)))
			snap := w.Step(float64(i) * 16)

			if len(snap.Obstacles) > maxCount {
				t.Fatalf("max=%d tick %d: %d obstacles live", maxCount, i, len(snap.Obstacles))
			}
			if snap.Score < lastScore {
				t.Fatalf("max=%d tick %d: score dropped from %d to %d", maxCount, i, lastScore, snap.Score)
			}
			lastScore = snap.Score

			half := snap.Player.Size / 2
			if snap.Player.X < half || snap.Player.X > testFieldW-half {
				t.Fatalf("player x %v out of bounds", snap.Player.X)
			}
			if snap.Status == StatusEnded {
				break
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		w := New(config.DefaultGliderConfig(), rand.New(rand.NewSource(99)))
		w.Reset(testFieldW, testFieldH)
		var snap Snapshot
		for i := 1; i <= 600; i++ {
			if i%20 == 0 {
				w.Fire()
			}
			w.NudgePlayer(float64((i%7)-3) * 5)
			snap = w.Step(float64(i) * 1000 / 60)
		}
		return snap
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and inputs should produce identical snapshots")
	}
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	w := newTestWorld(t, nil)
	w.store.AddObstacles(Obstacle{X: 100, Y: 100, Width: 50, Height: 50})

	snap := w.Snapshot()
	snap.Obstacles[0].Y = -999

	if w.store.Obstacles()[0].Y == -999 {
		t.Error("mutating a snapshot must not affect the world")
	}
}

func TestDifficultySpeedsUpObstacles(t *testing.T) {
	w := newTestWorld(t, func(c *config.GliderConfig) {
		config.ApplyGliderPreset(c, config.DifficultyHard)
	})

	if got := w.Speed(); got <= 5 {
		t.Errorf("hard preset should start faster than base speed, got %v", got)
	}
}

func assertNoOverlap(t *testing.T, obstacles []Obstacle) {
	t.Helper()
	for i := range obstacles {
		for j := i + 1; j < len(obstacles); j++ {
			a, b := obstacles[i], obstacles[j]
			if a.Overlaps(b.X, b.Y, b.Width, b.Height) {
				t.Errorf("obstacles %d and %d overlap: %+v %+v", a.ID, b.ID, a, b)
			}
		}
	}
}
