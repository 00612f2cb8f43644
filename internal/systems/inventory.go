package systems

import (
	"errors"

	"github.com/reddwarf405/TommysAdventure/internal/domain"
)

var (
	ErrNoInventory   = errors.New("actor has no inventory")
	ErrInventoryFull = errors.New("inventory is full")
	ErrNothingHere   = errors.New("nothing to pick up")
	ErrNotCarried    = errors.New("item is not carried")
)

// FirstItemAt - первый предмет в клетке актора (порядок набора карты).
func FirstItemAt(m *domain.GameMap, pos domain.Position) *domain.Entity {
	items := m.ItemsAt(pos.X, pos.Y)
	if len(items) == 0 {
		return nil
	}
	return items[0]
}

// --- PICKUP ---

// TryPickup переносит первый предмет под ногами в инвентарь.
// При ошибке мир не меняется.
func TryPickup(m *domain.GameMap, actor *domain.Entity) (*domain.Entity, error) {
	item := FirstItemAt(m, actor.Pos)
	if item == nil {
		return nil, ErrNothingHere
	}
	if actor.Inventory == nil || actor.Inventory.IsFull() {
		return nil, ErrInventoryFull
	}

	m.RemoveEntity(item)
	actor.Inventory.Add(item)
	return item, nil
}

// --- DROP ---

// TryDrop кладет предмет из инвентаря на клетку актора.
func TryDrop(m *domain.GameMap, actor *domain.Entity, item *domain.Entity) error {
	if actor.Inventory == nil {
		return ErrNoInventory
	}
	if !actor.Inventory.Remove(item) {
		return ErrNotCarried
	}
	placeOnGround(m, actor, item)
	return nil
}

func placeOnGround(m *domain.GameMap, actor *domain.Entity, item *domain.Entity) {
	item.Pos = actor.Pos
	m.AddEntity(item)
}

// Consume убирает использованный предмет из инвентаря.
func Consume(actor *domain.Entity, item *domain.Entity) bool {
	if actor.Inventory == nil {
		return false
	}
	return actor.Inventory.Remove(item)
}
