package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/meteor-glider/internal/core"
	"github.com/vovakirdan/meteor-glider/internal/games/glider"
	"github.com/vovakirdan/meteor-glider/internal/storage"
)

// endingGame ends on its first step and reports fixed run stats.
type endingGame struct {
	resets int
	steps  int
}

func (g *endingGame) ID() string               { return "ending" }
func (g *endingGame) Title() string            { return "Ending" }
func (g *endingGame) Reset(core.RuntimeConfig) { g.resets++; g.steps = 0 }
func (g *endingGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "ending") }

func (g *endingGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *endingGame) State() core.GameState {
	return core.GameState{Score: 70, GameOver: g.steps > 0}
}

func (g *endingGame) RunStats() core.RunStats {
	return core.RunStats{Ticks: g.steps, ShotsFired: 4, MeteorsDestroyed: 3, HazardsSpawned: 1}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelFiresOnTick(t *testing.T) {
	game := glider.New(glider.ModeStandard)
	m := NewModel(game, nil, testConfig()).WithLogger(quietLogger())
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, cmd := update(t, m, TickMsg(time.Now()))

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if n := len(game.Snapshot().Projectiles); n != 1 {
		t.Errorf("projectiles = %d, expected 1", n)
	}
	if m.inputFrame.Has(core.ActionFire) {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelMouseSteers(t *testing.T) {
	game := glider.New(glider.ModeStandard)
	m := NewModel(game, nil, testConfig()).WithLogger(quietLogger())
	m.Init()

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	update(t, m, TickMsg(time.Now()))

	if x := game.Snapshot().Player.X; x != 105 {
		t.Errorf("player x = %v, expected 105", x)
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &endingGame{}
	m := NewModel(game, store, testConfig()).WithLogger(quietLogger())
	m.Init()

	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))

	if !m.State().GameOver {
		t.Fatal("game should be over")
	}
	if m.LastRunID() == "" {
		t.Error("run ID should be recorded")
	}

	scores, _ := store.TopScores("ending", 10)
	if len(scores) != 1 || scores[0].Score != 70 {
		t.Errorf("scores = %+v, expected a single 70", scores)
	}

	run, err := store.RunByID(m.LastRunID())
	if err != nil || run == nil {
		t.Fatalf("RunByID() = %v, %v", run, err)
	}
	if run.ShotsFired != 4 || run.MeteorsDestroyed != 3 || run.HazardsSpawned != 1 {
		t.Errorf("run stats not persisted: %+v", run)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &endingGame{}
	m := NewModel(game, nil, testConfig()).WithLogger(quietLogger())
	m.Init()

	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg(time.Now()))

	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	if m.State().GameOver {
		t.Error("restart should clear game over")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	game := &endingGame{}
	m := NewModel(game, nil, testConfig()).WithLogger(quietLogger())
	m.Init()

	// Back is ignored while the game is running
	m, _ = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("back should be ignored mid-game")
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	m, cmd := update(t, m, runeKey('b'))
	if !m.BackToMenu() || cmd == nil {
		t.Error("back after game over should leave the game")
	}

	m, _ = update(t, m, runeKey('q'))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit and blank the view")
	}
}

func TestModelResizeRebuildsField(t *testing.T) {
	game := glider.New(glider.ModeStandard)
	m := NewModel(game, nil, testConfig()).WithLogger(quietLogger())
	m.Init()

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	snap := game.Snapshot()
	if snap.FieldW != 1000 || snap.FieldH != 600 {
		t.Errorf("field = %vx%v after resize, expected 1000x600", snap.FieldW, snap.FieldH)
	}
}

func TestRenderScreenWithoutColor(t *testing.T) {
	screen := core.NewScreen(6, 2)
	screen.DrawText(0, 0, "ab")
	screen.SetColored(3, 0, 'x', core.ColorRed)
	screen.DrawTextColored(0, 1, "cd", core.ColorGray)

	plain := NewPalette(lipgloss.NewRenderer(io.Discard))
	out := RenderScreen(screen, plain)

	if out != screen.String() {
		t.Errorf("uncolored render = %q, expected %q", out, screen.String())
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func TestTickInterval(t *testing.T) {
	if d := tickInterval(50); d != 20*time.Millisecond {
		t.Errorf("tickInterval(50) = %v", d)
	}
	if d := tickInterval(0); d != time.Second/60 {
		t.Errorf("tickInterval(0) = %v, expected 60Hz fallback", d)
	}
}
