package sim

import "fmt"

// Store owns the authoritative entity collections: the single player and
// the insertion-ordered obstacles and projectiles.
type Store struct {
	player      Player
	obstacles   []Obstacle
	projectiles []Projectile
	nextID      uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		obstacles:   make([]Obstacle, 0, 16),
		projectiles: make([]Projectile, 0, 16),
	}
}

// Reset clears every collection and places the player.
func (s *Store) Reset(initial Player) {
	s.player = initial
	s.obstacles = s.obstacles[:0]
	s.projectiles = s.projectiles[:0]
	s.nextID = 0
}

// Player returns the player entity.
func (s *Store) Player() Player {
	return s.player
}

// SetPlayerPosition moves the player horizontally. Callers clamp.
func (s *Store) SetPlayerPosition(x float64) {
	s.player.X = x
}

// Obstacles returns the live obstacles. The slice is owned by the store.
func (s *Store) Obstacles() []Obstacle {
	return s.obstacles
}

// Projectiles returns the live projectiles. The slice is owned by the store.
func (s *Store) Projectiles() []Projectile {
	return s.projectiles
}

// AddObstacles appends obstacles, assigning each a fresh ID.
func (s *Store) AddObstacles(obs ...Obstacle) {
	for _, o := range obs {
		s.nextID++
		o.ID = s.nextID
		s.obstacles = append(s.obstacles, o)
	}
}

// AddProjectile appends a projectile.
func (s *Store) AddProjectile(p Projectile) {
	s.projectiles = append(s.projectiles, p)
}

// RemoveObstaclesAt drops the obstacles at the given indices, keeping survivor order.
// Panics on an out-of-range index.
func (s *Store) RemoveObstaclesAt(indices []int) {
	s.obstacles = removeAt(s.obstacles, indices, "obstacle")
}

// RemoveProjectilesAt drops the projectiles at the given indices, keeping survivor order.
// Panics on an out-of-range index.
func (s *Store) RemoveProjectilesAt(indices []int) {
	s.projectiles = removeAt(s.projectiles, indices, "projectile")
}

func removeAt[T any](items []T, indices []int, kind string) []T {
	if len(indices) == 0 {
		return items
	}

	drop := make([]bool, len(items))
	for _, i := range indices {
		if i < 0 || i >= len(items) {
			panic(fmt.Sprintf("sim: %s index %d out of range [0,%d)", kind, i, len(items)))
		}
		drop[i] = true
	}

	kept := items[:0]
	for i, item := range items {
		if !drop[i] {
			kept = append(kept, item)
		}
	}
	return kept
}
