package sim

import "testing"

func TestStoreAddAssignsIDs(t *testing.T) {
	s := NewStore()
	s.AddObstacles(Obstacle{X: 1}, Obstacle{X: 2})
	s.AddObstacles(Obstacle{X: 3})

	obs := s.Obstacles()
	if len(obs) != 3 {
		t.Fatalf("expected 3 obstacles, got %d", len(obs))
	}
	for i, o := range obs {
		if o.ID != uint64(i+1) {
			t.Errorf("obstacle %d has ID %d, expected %d", i, o.ID, i+1)
		}
	}
}

func TestStoreRemovePreservesOrder(t *testing.T) {
	s := NewStore()
	for i := 0; i < 6; i++ {
		s.AddObstacles(Obstacle{X: float64(i)})
		s.AddProjectile(Projectile{X: float64(i)})
	}

	s.RemoveObstaclesAt([]int{4, 0, 2, 2})
	s.RemoveProjectilesAt([]int{5})

	var xs []float64
	for _, o := range s.Obstacles() {
		xs = append(xs, o.X)
	}
	expected := []float64{1, 3, 5}
	if len(xs) != len(expected) {
		t.Fatalf("obstacles = %v, expected %v", xs, expected)
	}
	for i := range expected {
		if xs[i] != expected[i] {
			t.Errorf("obstacles = %v, expected %v", xs, expected)
			break
		}
	}

	if len(s.Projectiles()) != 5 || s.Projectiles()[4].X != 4 {
		t.Errorf("projectiles after removing the last: %+v", s.Projectiles())
	}
}

func TestStoreRemoveNothing(t *testing.T) {
	s := NewStore()
	s.AddProjectile(Projectile{X: 1})
	s.RemoveProjectilesAt(nil)
	if len(s.Projectiles()) != 1 {
		t.Error("removing no indices should keep everything")
	}
}

func TestStoreRemoveOutOfRangePanics(t *testing.T) {
	s := NewStore()
	s.AddObstacles(Obstacle{})

	defer func() {
		if recover() == nil {
			t.Error("out-of-range index should panic")
		}
	}()
	s.RemoveObstaclesAt([]int{1})
}

func TestStoreReset(t *testing.T) {
	s := NewStore()
	s.AddObstacles(Obstacle{}, Obstacle{})
	s.AddProjectile(Projectile{})
	s.SetPlayerPosition(99)

	s.Reset(Player{X: 10, Y: 20, Size: 30})

	if len(s.Obstacles()) != 0 || len(s.Projectiles()) != 0 {
		t.Error("Reset should clear collections")
	}
	if p := s.Player(); p.X != 10 || p.Y != 20 || p.Size != 30 {
		t.Errorf("player = %+v after reset", p)
	}

	s.AddObstacles(Obstacle{})
	if s.Obstacles()[0].ID != 1 {
		t.Error("Reset should restart obstacle IDs")
	}
}
