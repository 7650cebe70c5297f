package sim

import (
	"math/rand"

	"github.com/vovakirdan/meteor-glider/internal/config"
	"github.com/vovakirdan/meteor-glider/internal/core"
)

// World is one Meteor Glider simulation: entities, session and spawn timers.
// It is driven by the host calling Step once per rendered frame.
type World struct {
	cfg        config.GliderConfig
	difficulty *config.DifficultyManager
	store      *Store
	generator  *Generator
	session    Session

	fieldW, fieldH float64
	initialized    bool

	tick              int
	now               float64 // Timestamp of the latest Step
	lastStandardSpawn float64
	lastHazardSpawn   float64
	lastFire          float64
	hasFired          bool

	stats Stats
}

// Stats counts run events for the host's records.
type Stats struct {
	ShotsFired        int
	MeteorsDestroyed  int
	HazardHits        int // Projectiles absorbed by hazards
	StandardSpawned   int
	HazardsSpawned    int
	MissedPlacements  int // Spawn attempts that found no safe position
	ObstaclesEscaped  int // Obstacles that left through the bottom edge
	ProjectilesWasted int // Projectiles that left through the top edge
}

// New creates a world using cfg and the given random source.
// Reset must be called before Step.
func New(cfg config.GliderConfig, rng *rand.Rand) *World {
	gen := NewGenerator(GeneratorConfig{
		ObstacleSize:  cfg.Obstacles.Size,
		MaxAttempts:   cfg.Obstacles.PlacementAttempts,
		Spacing:       cfg.Obstacles.PatternSpacing,
		ClusterSize:   cfg.Obstacles.ClusterSize,
		DiagonalSteps: cfg.Obstacles.DiagonalSteps,
	}, rng)

	return &World{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		store:      NewStore(),
		generator:  gen,
	}
}

// Reset starts a new session on a fieldW x fieldH field.
// Panics if either dimension is not positive.
func (w *World) Reset(fieldW, fieldH float64) {
	if !(fieldW > 0) || !(fieldH > 0) {
		panic("sim: Reset requires a positive field size")
	}

	w.fieldW = fieldW
	w.fieldH = fieldH
	w.initialized = true

	size := w.cfg.Player.Size
	y := fieldH - w.cfg.Player.SpawnOffset
	if y < size/2 {
		y = size / 2
	}
	w.store.Reset(Player{X: w.clampX(fieldW / 2), Y: y, Size: size})

	w.session.Reset()
	w.tick = 0
	w.now = 0
	w.lastStandardSpawn = 0
	w.lastHazardSpawn = 0
	w.lastFire = 0
	w.hasFired = false
	w.stats = Stats{}
}

// Session returns the current score and status.
func (w *World) Session() Session {
	return w.session
}

// Stats returns the run counters.
func (w *World) Stats() Stats {
	return w.stats
}

// Speed returns the current obstacle speed in units per tick.
func (w *World) Speed() float64 {
	return w.difficulty.Speed(w.cfg.Obstacles.Speed, w.session.Score, w.tick)
}

// SetPlayerTargetX moves the player to x, clamped to the field.
func (w *World) SetPlayerTargetX(x float64) {
	w.mustBeInitialized()
	if !w.session.Running() {
		return
	}
	w.store.SetPlayerPosition(w.clampX(x))
}

// NudgePlayer moves the player by dx, clamped to the field.
func (w *World) NudgePlayer(dx float64) {
	w.mustBeInitialized()
	if !w.session.Running() {
		return
	}
	w.store.SetPlayerPosition(w.clampX(w.store.Player().X + dx))
}

// Fire launches one projectile from the glider's nose.
// Returns false when the session has ended or a fire limit applies.
func (w *World) Fire() bool {
	w.mustBeInitialized()
	if !w.session.Running() {
		return false
	}

	pc := w.cfg.Projectiles
	if pc.MaxLive > 0 && len(w.store.Projectiles()) >= pc.MaxLive {
		return false
	}
	if pc.FireCooldownMs > 0 && w.hasFired && w.now-w.lastFire < pc.FireCooldownMs {
		return false
	}

	p := w.store.Player()
	w.store.AddProjectile(Projectile{
		X:     p.X,
		Y:     p.Y - p.Size/2,
		Speed: pc.Speed,
	})
	w.lastFire = w.now
	w.hasFired = true
	w.stats.ShotsFired++
	return true
}

// Step advances the simulation by one tick at timestamp t (milliseconds).
// When the session has ended the world is left untouched.
func (w *World) Step(t float64) Snapshot {
	w.mustBeInitialized()
	if !w.session.Running() {
		return w.Snapshot()
	}

	w.tick++
	w.now = t

	obstacles := w.store.Obstacles()
	projectiles := w.store.Projectiles()
	obsSize := w.cfg.Obstacles.Size

	deadProjectiles := make([]bool, len(projectiles))
	deadObstacles := make([]bool, len(obstacles))

	// Projectiles move first and leave through the top edge.
	for i := range projectiles {
		projectiles[i].Y -= projectiles[i].Speed
		if projectiles[i].Y < 0 {
			deadProjectiles[i] = true
			w.stats.ProjectilesWasted++
		}
	}

	// A projectile is consumed by the first meteor it touches.
	hitRange := w.cfg.Projectiles.Radius + obsSize/2
	for pi, p := range projectiles {
		if deadProjectiles[pi] {
			continue
		}
		for oi, o := range obstacles {
			if deadObstacles[oi] || !core.CirclesWithin(p.X, p.Y, o.X, o.Y, hitRange) {
				continue
			}
			deadProjectiles[pi] = true
			if o.Variant == VariantStandard {
				deadObstacles[oi] = true
				w.session.Award(w.cfg.Scoring.DestroyPoints)
				w.stats.MeteorsDestroyed++
			} else {
				w.stats.HazardHits++
			}
			break
		}
	}

	speed := w.Speed()
	for i := range obstacles {
		if deadObstacles[i] {
			continue
		}
		obstacles[i].Y += speed
		if obstacles[i].Y > w.fieldH+obsSize {
			deadObstacles[i] = true
			w.stats.ObstaclesEscaped++
		}
	}

	player := w.store.Player()
	crashRange := (player.Size + obsSize) / 2
	for i, o := range obstacles {
		if deadObstacles[i] {
			continue
		}
		if core.CirclesWithin(player.X, player.Y, o.X, o.Y, crashRange) {
			w.session.End()
			break
		}
	}

	w.store.RemoveProjectilesAt(markedIndices(deadProjectiles))
	w.store.RemoveObstaclesAt(markedIndices(deadObstacles))

	if w.session.Running() {
		w.spawn(t)
	}

	return w.Snapshot()
}

// spawn runs the standard and hazard timers. Both validate against the
// obstacle list as it stands, so a hazard never overlaps a same-tick pattern.
func (w *World) spawn(t float64) {
	maxCount := w.cfg.Obstacles.MaxCount
	interval := w.difficulty.Interval(w.cfg.Obstacles.SpawnIntervalMs, w.session.Score, w.tick)

	if t-w.lastStandardSpawn > interval && len(w.store.Obstacles()) < maxCount {
		pattern := w.generator.GenerateObstaclePattern(w.fieldW, w.fieldH, w.store.Obstacles())
		if headroom := maxCount - len(w.store.Obstacles()); len(pattern) > headroom {
			pattern = pattern[:headroom]
		}
		if len(pattern) > 0 {
			w.store.AddObstacles(pattern...)
			w.lastStandardSpawn = t
			w.session.Award(w.cfg.Scoring.SpawnPoints)
			w.stats.StandardSpawned += len(pattern)
		} else {
			w.stats.MissedPlacements++
		}
	}

	if !w.cfg.Obstacles.HazardsEnabled {
		return
	}
	hazardInterval := w.difficulty.Interval(w.cfg.Obstacles.HazardIntervalMs, w.session.Score, w.tick)
	if t-w.lastHazardSpawn > hazardInterval && len(w.store.Obstacles()) < maxCount {
		if hazard, ok := w.generator.GenerateHazard(w.fieldW, w.fieldH, w.store.Obstacles()); ok {
			w.store.AddObstacles(hazard)
			w.lastHazardSpawn = t
			w.stats.HazardsSpawned++
		} else {
			w.stats.MissedPlacements++
		}
	}
}

func (w *World) clampX(x float64) float64 {
	half := w.cfg.Player.Size / 2
	if w.fieldW < w.cfg.Player.Size {
		return w.fieldW / 2
	}
	return core.ClampF(x, half, w.fieldW-half)
}

func (w *World) mustBeInitialized() {
	if !w.initialized {
		panic("sim: World used before Reset")
	}
}

func markedIndices(marks []bool) []int {
	var out []int
	for i, m := range marks {
		if m {
			out = append(out, i)
		}
	}
	return out
}
