package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/meteor-glider/internal/core"
)

// Pattern is a spawn template.
type Pattern int

const (
	PatternSingle Pattern = iota
	PatternCluster
	PatternDiagonal
	PatternRandom
)

var allPatterns = [...]Pattern{PatternSingle, PatternCluster, PatternDiagonal, PatternRandom}

// String returns the pattern name.
func (p Pattern) String() string {
	switch p {
	case PatternSingle:
		return "single"
	case PatternCluster:
		return "cluster"
	case PatternDiagonal:
		return "diagonal"
	case PatternRandom:
		return "random"
	default:
		return "unknown"
	}
}

// GeneratorConfig tunes obstacle placement.
type GeneratorConfig struct {
	ObstacleSize  float64
	MaxAttempts   int     // Placement samples per safe-position search
	Spacing       float64 // Multiple of ObstacleSize between pattern members
	ClusterSize   int     // Satellites around a cluster anchor
	DiagonalSteps int     // Obstacles after the anchor in a diagonal
}

// DefaultGeneratorConfig returns the stock placement settings.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ObstacleSize:  50,
		MaxAttempts:   20,
		Spacing:       2.5,
		ClusterSize:   2,
		DiagonalSteps: 2,
	}
}

// Generator produces obstacles that do not overlap the live ones.
// A failed placement is a normal outcome: the caller simply spawns nothing.
type Generator struct {
	cfg GeneratorConfig
	rng *rand.Rand
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(cfg GeneratorConfig, rng *rand.Rand) *Generator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultGeneratorConfig().MaxAttempts
	}
	return &Generator{cfg: cfg, rng: rng}
}

// GenerateSafePosition samples up to MaxAttempts candidates above the visible
// field and returns the first whose objW x objH box overlaps no existing obstacle.
func (g *Generator) GenerateSafePosition(fieldW, fieldH float64, existing []Obstacle, objW, objH float64) (core.Vec2, bool) {
	minX := objW / 2
	maxX := fieldW - objW/2
	if maxX < minX {
		return core.Vec2{}, false
	}

	for range g.cfg.MaxAttempts {
		x := minX + g.rng.Float64()*(maxX-minX)
		y := -objH*3 + g.rng.Float64()*(objH*2)

		if !overlapsAny(x, y, objW, objH, existing) {
			return core.Vec2{X: x, Y: y}, true
		}
	}
	return core.Vec2{}, false
}

// GenerateObstaclePattern picks a pattern uniformly at random and emits 1 or
// more standard obstacles. Returns nil when even the anchor could not be placed.
func (g *Generator) GenerateObstaclePattern(fieldW, fieldH float64, existing []Obstacle) []Obstacle {
	pattern := allPatterns[g.rng.Intn(len(allPatterns))]
	return g.GeneratePattern(pattern, fieldW, fieldH, existing)
}

// GeneratePattern emits the obstacles for a specific pattern.
func (g *Generator) GeneratePattern(pattern Pattern, fieldW, fieldH float64, existing []Obstacle) []Obstacle {
	size := g.cfg.ObstacleSize
	anchor, ok := g.GenerateSafePosition(fieldW, fieldH, existing, size, size)
	if !ok {
		return nil
	}

	placed := []Obstacle{g.obstacle(anchor.X, anchor.Y, VariantStandard)}
	step := g.cfg.Spacing * size

	switch pattern {
	case PatternCluster:
		n := g.cfg.ClusterSize
		for i := range n {
			angle := 2 * math.Pi * float64(i) / float64(n)
			x := anchor.X + math.Cos(angle)*step
			y := anchor.Y + math.Sin(angle)*step
			placed = g.tryAppend(placed, x, y, fieldW, existing)
		}

	case PatternDiagonal:
		dir := 1.0
		if g.rng.Float64() < 0.5 {
			dir = -1.0
		}
		for i := 1; i <= g.cfg.DiagonalSteps; i++ {
			x := anchor.X + dir*float64(i)*step
			y := anchor.Y + float64(i)*step
			placed = g.tryAppend(placed, x, y, fieldW, existing)
		}
	}

	return placed
}

// GenerateHazard places a single hazard meteor.
func (g *Generator) GenerateHazard(fieldW, fieldH float64, existing []Obstacle) (Obstacle, bool) {
	size := g.cfg.ObstacleSize
	pos, ok := g.GenerateSafePosition(fieldW, fieldH, existing, size, size)
	if !ok {
		return Obstacle{}, false
	}
	return g.obstacle(pos.X, pos.Y, VariantHazard), true
}

// tryAppend adds a pattern member at (x, y) when it is inside the horizontal
// bounds and clear of both the pre-existing and the already placed obstacles.
func (g *Generator) tryAppend(placed []Obstacle, x, y, fieldW float64, existing []Obstacle) []Obstacle {
	size := g.cfg.ObstacleSize
	if x < size/2 || x > fieldW-size/2 {
		return placed
	}
	if overlapsAny(x, y, size, size, existing) || overlapsAny(x, y, size, size, placed) {
		return placed
	}
	return append(placed, g.obstacle(x, y, VariantStandard))
}

func (g *Generator) obstacle(x, y float64, v Variant) Obstacle {
	return Obstacle{
		X:       x,
		Y:       y,
		Width:   g.cfg.ObstacleSize,
		Height:  g.cfg.ObstacleSize,
		Variant: v,
	}
}

func overlapsAny(x, y, w, h float64, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if o.Overlaps(x, y, w, h) {
			return true
		}
	}
	return false
}
