package domain

import (
	"os"
	"testing"

	"github.com/reddwarf405/TommysAdventure/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newFloorMap(t *testing.T, w, h int) *GameMap {
	t.Helper()
	m, err := NewGameMap(w, h)
	if err != nil {
		t.Fatalf("NewGameMap(%d, %d) failed: %v", w, h, err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetTile(x, y, TileFloor)
		}
	}
	return m
}

func newMonster(id uint64, x, y int) *Entity {
	return &Entity{
		ID:             PackEntityID(EntityTypeEnemy, 1, id),
		Type:           EntityTypeEnemy,
		Name:           "Security Bot",
		Pos:            Position{X: x, Y: y},
		BlocksMovement: true,
		RenderOrder:    RenderActor,
		Fighter:        &FighterComponent{HP: 8, MaxHP: 8, Defense: 2, Power: 2},
	}
}

func newItem(id uint64, x, y int) *Entity {
	return &Entity{
		ID:          PackEntityID(EntityTypeItem, 1, id),
		Type:        EntityTypeItem,
		Name:        "med kit",
		Pos:         Position{X: x, Y: y},
		RenderOrder: RenderItem,
		Consumable:  &ConsumableComponent{Kind: ConsumableHealing, Amount: 4},
	}
}

func TestNewGameMap(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"Normal", 80, 43, false},
		{"Single cell", 1, 1, false},
		{"Zero width", 0, 10, true},
		{"Negative height", 10, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewGameMap(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Got err %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			// Новая карта залита стенами
			if m.IsWalkable(0, 0) {
				t.Error("New map should be filled with walls")
			}
		})
	}
}

func TestGameMap_InBounds(t *testing.T) {
	m, _ := NewGameMap(10, 5)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 4, true},
		{10, 4, false},
		{9, 5, false},
		{-1, 0, false},
		{0, -1, false},
	}

	for _, tt := range tests {
		if got := m.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGameMap_TileQueries(t *testing.T) {
	m, _ := NewGameMap(3, 3)
	m.SetTile(1, 1, TileFloor)

	if !m.IsWalkable(1, 1) || !m.IsTransparent(1, 1) {
		t.Error("Floor should be walkable and transparent")
	}
	if m.IsWalkable(0, 0) || m.IsTransparent(0, 0) {
		t.Error("Wall should be neither walkable nor transparent")
	}
	if m.TileAt(1, 1) != TileFloor {
		t.Errorf("TileAt(1,1) = %v, want floor", m.TileAt(1, 1))
	}
}

func TestGameMap_AddRemoveEntity(t *testing.T) {
	m := newFloorMap(t, 10, 10)
	e := newMonster(1, 5, 5)

	if !m.AddEntity(e) {
		t.Fatal("AddEntity should accept a new entity")
	}
	if m.AddEntity(e) {
		t.Error("AddEntity should reject a duplicate")
	}
	if len(m.Entities()) != 1 {
		t.Errorf("Got %d entities, want 1", len(m.Entities()))
	}
	if m.GetEntityByID(e.ID) != e {
		t.Error("GetEntityByID returned wrong entity")
	}

	if !m.RemoveEntity(e) {
		t.Error("RemoveEntity should report removal")
	}
	if m.Contains(e) {
		t.Error("Entity should be gone after removal")
	}
	if m.RemoveEntity(e) {
		t.Error("Second RemoveEntity should report false")
	}
}

func TestGameMap_EntitiesIsCopy(t *testing.T) {
	m := newFloorMap(t, 5, 5)
	m.AddEntity(newMonster(1, 1, 1))

	list := m.Entities()
	list[0] = nil

	if m.Entities()[0] == nil {
		t.Error("Mutating the returned slice must not affect the map")
	}
}

func TestGameMap_GetBlockingEntityAt(t *testing.T) {
	m := newFloorMap(t, 10, 10)
	item := newItem(1, 3, 3)
	bot := newMonster(2, 3, 3)
	m.AddEntity(item)
	m.AddEntity(bot)

	if got := m.GetBlockingEntityAt(3, 3); got != bot {
		t.Errorf("Got %v, want the bot", got)
	}
	if got := m.GetBlockingEntityAt(4, 4); got != nil {
		t.Errorf("Empty cell returned %v", got)
	}

	// Второй блокирующий: возвращается первый в порядке вставки
	other := newMonster(3, 3, 3)
	m.AddEntity(other)
	if got := m.GetBlockingEntityAt(3, 3); got != bot {
		t.Errorf("Got %v, want first blocker", got)
	}
}

func TestGameMap_GetBlockingEntityAt_SkipsDeadActors(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(e *Entity)
		blocks bool
	}{
		{"Alive", func(e *Entity) {}, true},
		{"Zero HP without Die", func(e *Entity) { e.Fighter.SetHP(0) }, false},
		{"Corpse", func(e *Entity) { e.Fighter.SetHP(0); e.Die() }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newFloorMap(t, 5, 5)
			bot := newMonster(1, 2, 2)
			tt.setup(bot)
			m.AddEntity(bot)

			got := m.GetBlockingEntityAt(2, 2)
			if (got != nil) != tt.blocks {
				t.Errorf("Got blocker %v, want blocks=%v", got, tt.blocks)
			}
		})
	}
}

func TestGameMap_GetActorAt_SkipsCorpses(t *testing.T) {
	m := newFloorMap(t, 10, 10)
	corpse := newMonster(1, 2, 2)
	corpse.Fighter.SetHP(0)
	corpse.Die()
	m.AddEntity(corpse)

	if got := m.GetActorAt(2, 2); got != nil {
		t.Errorf("Corpse should not count as actor, got %v", got)
	}

	alive := newMonster(2, 2, 2)
	m.AddEntity(alive)
	if got := m.GetActorAt(2, 2); got != alive {
		t.Errorf("Got %v, want living actor", got)
	}
	if n := len(m.Actors()); n != 1 {
		t.Errorf("Actors() = %d, want 1", n)
	}
}

func TestGameMap_Items(t *testing.T) {
	m := newFloorMap(t, 10, 10)
	a := newItem(1, 1, 1)
	b := newItem(2, 1, 1)
	c := newItem(3, 4, 4)
	m.AddEntity(a)
	m.AddEntity(newMonster(4, 1, 1))
	m.AddEntity(b)
	m.AddEntity(c)

	if n := len(m.Items()); n != 3 {
		t.Errorf("Items() = %d, want 3", n)
	}
	at := m.ItemsAt(1, 1)
	if len(at) != 2 || at[0] != a || at[1] != b {
		t.Errorf("ItemsAt(1,1) = %v, want [a b] in insertion order", at)
	}
}

func TestGameMap_RenderOrderSequence(t *testing.T) {
	m := newFloorMap(t, 10, 10)
	orders := []RenderOrder{RenderActor, RenderItem, RenderItem, RenderOrder(3)}
	var added []*Entity
	for i, o := range orders {
		e := &Entity{ID: PackEntityID(EntityTypeItem, 1, uint64(i+1)), RenderOrder: o}
		m.AddEntity(e)
		added = append(added, e)
	}

	got := m.RenderOrderSequence()
	// [2,1,1,3] -> [1,1,2,3], равные в порядке вставки
	want := []*Entity{added[1], added[2], added[0], added[3]}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Position %d: got order %d (id %s), want id %s",
				i, got[i].RenderOrder, got[i].ID, want[i].ID)
		}
	}
}

func TestGameMap_Graphic(t *testing.T) {
	m := newFloorMap(t, 3, 3)

	if m.Graphic(1, 1) != Shroud {
		t.Error("Unseen cell should be shroud")
	}

	m.SetExplored(1, 1, true)
	if m.Graphic(1, 1) != TileFloor.Type().Dark {
		t.Error("Explored cell should use dark graphic")
	}

	m.SetVisible(1, 1, true)
	if m.Graphic(1, 1) != TileFloor.Type().Light {
		t.Error("Visible cell should use light graphic")
	}

	m.ClearVisible()
	if m.IsVisible(1, 1) {
		t.Error("ClearVisible should reset visibility")
	}
	if !m.IsExplored(1, 1) {
		t.Error("ClearVisible must keep explored cells")
	}
}

func TestGameMap_VisibleEntities(t *testing.T) {
	m := newFloorMap(t, 5, 5)
	seen := newMonster(1, 1, 1)
	hidden := newMonster(2, 3, 3)
	m.AddEntity(seen)
	m.AddEntity(hidden)
	m.SetVisible(1, 1, true)

	got := m.VisibleEntities()
	if len(got) != 1 || got[0] != seen {
		t.Errorf("VisibleEntities() = %v, want only the visible bot", got)
	}
}
