package systems

import (
	"testing"

	"github.com/reddwarf405/TommysAdventure/internal/domain"
)

func TestFindClosestTarget(t *testing.T) {
	m := createTestMap(t, 10, 10)
	user := newActor("Tommy", 1, 1, 30, 2, 5)
	near := newActor("Near", 3, 1, 8, 0, 0)
	far := newActor("Far", 6, 1, 8, 0, 0)
	m.AddEntity(user)
	m.AddEntity(far)
	m.AddEntity(near)

	if got := FindClosestTarget(m, user, 5); got != near {
		t.Errorf("Got %v, want near target", got)
	}
	if got := FindClosestTarget(m, user, 1); got != nil {
		t.Errorf("Nothing should be in range 1, got %v", got)
	}

	// Стена на линии y=1 закрывает обе цели
	m.SetTile(2, 1, domain.TileWall)
	if got := FindClosestTarget(m, user, 10); got != nil {
		t.Errorf("Targets behind wall should be skipped, got %v", got)
	}
}

func TestActorsInRadius(t *testing.T) {
	m := createTestMap(t, 10, 10)
	a := newActor("A", 5, 5, 8, 0, 0)
	b := newActor("B", 7, 5, 8, 0, 0)
	c := newActor("C", 9, 9, 8, 0, 0)
	m.AddEntity(a)
	m.AddEntity(b)
	m.AddEntity(c)

	got := ActorsInRadius(m, domain.Position{X: 5, Y: 5}, 2)
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Got %v, want [A B]", got)
	}
}
