package dungeon

import (
	"math/rand"
	"testing"

	"github.com/reddwarf405/TommysAdventure/internal/domain"
)

func generateTestFloor(t *testing.T, seed int64) (*domain.GameMap, *domain.Entity) {
	t.Helper()
	c, err := DefaultContent()
	if err != nil {
		t.Fatalf("DefaultContent: %v", err)
	}
	ids := &domain.IDAllocator{}
	player := CreatePlayer(c, ids)
	m, err := Generate(DefaultParams(), c, 1, player, rand.New(rand.NewSource(seed)), ids)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return m, player
}

func TestGenerate(t *testing.T) {
	m, player := generateTestFloor(t, 42)

	// 1. Проверка размеров мира
	p := DefaultParams()
	if m.Width != p.Width || m.Height != p.Height {
		t.Errorf("Expected map size %dx%d, got %dx%d", p.Width, p.Height, m.Width, m.Height)
	}
	if m.Depth != 1 {
		t.Errorf("Got depth %d, want 1", m.Depth)
	}

	// 2. Игрок не должен появиться в стене
	if !m.Contains(player) || !m.IsWalkable(player.Pos.X, player.Pos.Y) {
		t.Errorf("Start position %v is not a walkable cell on the map", player.Pos)
	}

	// 3. Лестница на проходимой клетке
	if !m.IsWalkable(m.UpStairs.X, m.UpStairs.Y) {
		t.Errorf("Stairs %v are inside a wall", m.UpStairs)
	}

	// 4. Никаких двух блокирующих в одной клетке
	seen := make(map[domain.Position]bool)
	for _, e := range m.Entities() {
		if !m.IsWalkable(e.Pos.X, e.Pos.Y) {
			t.Errorf("%s spawned inside a wall", e)
		}
		if !e.BlocksMovement {
			continue
		}
		if seen[e.Pos] {
			t.Errorf("Two blockers at %v", e.Pos)
		}
		seen[e.Pos] = true
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _ := generateTestFloor(t, 7)
	b, _ := generateTestFloor(t, 7)

	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.TileAt(x, y) != b.TileAt(x, y) {
				t.Fatalf("Tile (%d,%d) differs for the same seed", x, y)
			}
		}
	}
	ea, eb := a.Entities(), b.Entities()
	if len(ea) != len(eb) {
		t.Fatalf("Got %d and %d entities for the same seed", len(ea), len(eb))
	}
	for i := range ea {
		if ea[i].ID != eb[i].ID || ea[i].Pos != eb[i].Pos || ea[i].Name != eb[i].Name {
			t.Errorf("Entity %d differs: %s vs %s", i, ea[i], eb[i])
		}
	}
}

func TestGenerate_TooSmall(t *testing.T) {
	c, _ := DefaultContent()
	p := DefaultParams()
	p.Width, p.Height = 5, 5

	_, err := Generate(p, c, 1, nil, rand.New(rand.NewSource(1)), &domain.IDAllocator{})
	if err == nil {
		t.Error("Expected error when no room fits")
	}
}

// Тест вспомогательной функции пересечения комнат
func TestRect_Intersects(t *testing.T) {
	r1 := Rect{0, 0, 10, 10}
	r2 := Rect{5, 5, 10, 10} // Пересекается
	r3 := Rect{20, 20, 5, 5} // Не пересекается

	if !r1.Intersects(r2) {
		t.Error("Rects should intersect")
	}

	if r1.Intersects(r3) {
		t.Error("Rects should NOT intersect")
	}
}
