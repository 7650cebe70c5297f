// Package sim is the Meteor Glider simulation core: entity storage, obstacle
// placement, the per-tick update and the session state machine.
//
// The package is pure and single-threaded. It never reads the clock, the
// terminal or any global state; field size, timestamps and input are passed
// in by the host, and randomness comes from a caller-seeded *rand.Rand so
// runs are reproducible.
package sim

import "github.com/vovakirdan/meteor-glider/internal/core"

// Variant distinguishes destructible meteors from hazards.
type Variant int

const (
	// VariantStandard meteors are destroyed by projectiles and award points.
	VariantStandard Variant = iota
	// VariantHazard meteors ignore projectiles and can only be dodged.
	VariantHazard
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantStandard:
		return "standard"
	case VariantHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Player is the glider. Position is the hitbox center.
type Player struct {
	X, Y float64
	Size float64
}

// Obstacle is a falling meteor. Position is the hitbox center.
type Obstacle struct {
	ID      uint64
	X, Y    float64
	Width   float64
	Height  float64
	Variant Variant
}

// Overlaps reports whether the obstacle's box overlaps a box of size w x h centered at (x, y).
func (o Obstacle) Overlaps(x, y, w, h float64) bool {
	return core.RectsOverlap(o.X, o.Y, o.Width, o.Height, x, y, w, h)
}

// Projectile travels upward (toward negative y) by Speed units per tick.
type Projectile struct {
	X, Y  float64
	Speed float64
}
