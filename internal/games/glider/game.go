// Package glider implements Meteor Glider, a vertical shooter where the
// player steers a glider along the bottom of the field, dodging falling
// meteors and shooting the ones that can be destroyed.
//
// The simulation lives in the sim subpackage and works in abstract field
// units. This package maps the terminal grid onto those units, translates
// platform input, and renders the world into a core.Screen.
package glider

import (
	"math/rand"

	"github.com/vovakirdan/meteor-glider/internal/config"
	"github.com/vovakirdan/meteor-glider/internal/core"
	"github.com/vovakirdan/meteor-glider/internal/games/glider/sim"
	"github.com/vovakirdan/meteor-glider/internal/registry"
)

// Mode selects which obstacle mix a game runs with.
type Mode int

const (
	ModeStandard Mode = iota // Destroyable meteors plus indestructible hazards
	ModeClassic              // Destroyable meteors only
)

// Game adapts a sim.World to the registry.Game interface.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.GliderConfig
	world   *sim.World
	snap    sim.Snapshot
	paused  bool
	ticks   int // Unpaused ticks since Reset
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config file's own difficulty section.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a game in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "glider_classic"
	}
	return "glider"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Meteor Glider Classic"
	}
	return "Meteor Glider"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	cfg, err := config.LoadGlider(configPath)
	if err != nil {
		cfg = config.DefaultGliderConfig()
	}
	if difficultyPreset != "" {
		config.ApplyGliderPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeClassic {
		cfg.Obstacles.HazardsEnabled = false
	}
	g.cfg = cfg

	g.world = sim.New(cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.world.Reset(
		float64(runtime.ScreenW)*cfg.Render.CellWidth,
		float64(runtime.ScreenH)*cfg.Render.CellHeight,
	)
	g.snap = g.world.Snapshot()
	g.paused = false
	g.ticks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.snap.Status == sim.StatusEnded {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.Apply(g.translate(in))

	g.ticks++
	g.snap = g.world.Step(g.timestamp())

	return core.StepResult{State: g.State()}
}

// translate converts platform actions into sim input. The pointer column
// maps to the center of that cell in field units.
func (g *Game) translate(in core.InputFrame) sim.Input {
	out := sim.Input{Fire: in.Count(core.ActionFire)}
	if in.HasPointer {
		out.HasTarget = true
		out.TargetX = (float64(in.PointerX) + 0.5) * g.cfg.Render.CellWidth
		return out
	}
	steps := in.Count(core.ActionRight) - in.Count(core.ActionLeft)
	out.Nudge = float64(steps) * g.cfg.Player.KeyboardSpeed
	return out
}

// timestamp converts the unpaused tick count to milliseconds.
func (g *Game) timestamp() float64 {
	return float64(g.ticks) * 1000 / float64(g.runtime.TickRate)
}

// Snapshot returns the world state after the latest tick.
func (g *Game) Snapshot() sim.Snapshot {
	return g.snap
}

// Stats returns the simulation counters for the current run.
func (g *Game) Stats() sim.Stats {
	return g.world.Stats()
}

// RunStats implements registry.StatsReporter.
func (g *Game) RunStats() core.RunStats {
	st := g.world.Stats()
	return core.RunStats{
		Ticks:            g.snap.Tick,
		ShotsFired:       st.ShotsFired,
		MeteorsDestroyed: st.MeteorsDestroyed,
		HazardsSpawned:   st.HazardsSpawned,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		GameOver: g.snap.Status == sim.StatusEnded,
		Paused:   g.paused,
	}
}

// Register both modes with the registry
func init() {
	registry.Register("glider", func() registry.Game {
		return New(ModeStandard)
	})
	registry.Register("glider_classic", func() registry.Game {
		return New(ModeClassic)
	})
}
