package glider

import (
	"fmt"
	"math"

	"github.com/vovakirdan/meteor-glider/internal/core"
	"github.com/vovakirdan/meteor-glider/internal/games/glider/sim"
)

// Visual characters for rendering
const (
	MeteorChar     = '▓'
	HazardChar     = '█'
	ProjectileChar = '•'
	GliderNose     = '▲'
	GliderWingL    = '◢'
	GliderWingR    = '◣'
	GliderBody     = '█'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, o := range g.snap.Obstacles {
		g.drawObstacle(dst, o)
	}
	for _, p := range g.snap.Projectiles {
		x, y := g.toCell(p.X, p.Y)
		dst.SetColored(x, y, ProjectileChar, core.ColorBrightYellow)
	}
	g.drawGlider(dst)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.snap.Score))
	if st := g.world.Stats(); st.MeteorsDestroyed > 0 {
		dst.DrawTextColored(16, 0, fmt.Sprintf(" Hits: %d ", st.MeteorsDestroyed), core.ColorGray)
	}
	if g.cfg.Difficulty.Enabled {
		speedText := fmt.Sprintf(" Spd: %.1f ", g.world.Speed())
		dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.snap.Status == sim.StatusEnded {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.snap.Score))
	}
}

// toCell maps field units to the screen cell containing them.
func (g *Game) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / g.cfg.Render.CellWidth)), int(math.Floor(y / g.cfg.Render.CellHeight))
}

// drawObstacle draws an obstacle as a filled disc.
func (g *Game) drawObstacle(dst *core.Screen, o sim.Obstacle) {
	ch, color := MeteorChar, core.ColorGray
	if o.Variant == sim.VariantHazard {
		ch, color = HazardChar, core.ColorRed
	}

	dst.FillDisc(o.X, o.Y, o.Width/2, g.cfg.Render.CellWidth, g.cfg.Render.CellHeight, ch, color)
}

// drawGlider renders the player as a small triangle.
//
//	 ▲
//	◢█◣
func (g *Game) drawGlider(dst *core.Screen) {
	p := g.snap.Player
	x, y := g.toCell(p.X, p.Y)

	color := core.ColorBrightCyan
	if g.snap.Status == sim.StatusEnded {
		color = core.ColorBrightRed
	}

	dst.SetColored(x, y-1, GliderNose, color)
	dst.SetColored(x-1, y, GliderWingL, color)
	dst.SetColored(x, y, GliderBody, color)
	dst.SetColored(x+1, y, GliderWingR, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
