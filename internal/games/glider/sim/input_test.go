package sim

import (
	"testing"

	"github.com/vovakirdan/meteor-glider/internal/config"
)

func TestApplyPointerWinsOverNudge(t *testing.T) {
	w := newTestWorld(t, nil)

	w.Apply(Input{HasTarget: true, TargetX: 100, Nudge: 300})
	if x := w.Snapshot().Player.X; x != 100 {
		t.Errorf("player x = %v, expected pointer target 100", x)
	}

	w.Apply(Input{Nudge: -15})
	if x := w.Snapshot().Player.X; x != 85 {
		t.Errorf("player x = %v, expected 85 after nudge", x)
	}
}

func TestApplyFiresEachPress(t *testing.T) {
	w := newTestWorld(t, nil)

	if n := w.Apply(Input{Fire: 3}); n != 3 {
		t.Errorf("launched %d, expected 3", n)
	}
	if got := len(w.Snapshot().Projectiles); got != 3 {
		t.Errorf("projectiles = %d, expected 3", got)
	}
}

func TestApplyRespectsFireLimits(t *testing.T) {
	w := newTestWorld(t, func(c *config.GliderConfig) {
		c.Projectiles.MaxLive = 2
	})

	if n := w.Apply(Input{Fire: 5}); n != 2 {
		t.Errorf("launched %d, expected 2 with max_live 2", n)
	}
}

func TestApplyIgnoredWhenEnded(t *testing.T) {
	w := newTestWorld(t, nil)
	w.session.End()
	before := w.Snapshot().Player.X

	if n := w.Apply(Input{HasTarget: true, TargetX: 50, Fire: 1}); n != 0 {
		t.Errorf("launched %d after end", n)
	}
	if w.Snapshot().Player.X != before {
		t.Error("player should not move after the session ended")
	}
}
