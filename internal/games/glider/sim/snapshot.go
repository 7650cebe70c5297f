package sim

// Snapshot is a read-only copy of the world after a tick.
// It shares no memory with the world, so hosts may keep it across ticks.
type Snapshot struct {
	Tick        int
	Timestamp   float64
	FieldW      float64
	FieldH      float64
	Player      Player
	Obstacles   []Obstacle
	Projectiles []Projectile
	Score       int
	Status      Status
}

// Snapshot copies the current world state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:        w.tick,
		Timestamp:   w.now,
		FieldW:      w.fieldW,
		FieldH:      w.fieldH,
		Player:      w.store.Player(),
		Obstacles:   append([]Obstacle(nil), w.store.Obstacles()...),
		Projectiles: append([]Projectile(nil), w.store.Projectiles()...),
		Score:       w.session.Score,
		Status:      w.session.Status,
	}
}

// CountVariant returns how many obstacles of variant v are live.
func (s Snapshot) CountVariant(v Variant) int {
	n := 0
	for _, o := range s.Obstacles {
		if o.Variant == v {
			n++
		}
	}
	return n
}
