package systems

import (
	"errors"
	"testing"
)

func TestTryPickupAndDrop(t *testing.T) {
	m := createTestMap(t, 5, 5)
	actor := newActor("Tommy", 2, 2, 30, 2, 5)
	item := newTestItem("med kit", 2, 2)
	m.AddEntity(actor)
	m.AddEntity(item)

	got, err := TryPickup(m, actor)
	if err != nil || got != item {
		t.Fatalf("TryPickup = %v, %v", got, err)
	}
	if m.Contains(item) || !actor.Inventory.Contains(item) {
		t.Fatal("Item should move from map to inventory")
	}

	if _, err := TryPickup(m, actor); !errors.Is(err, ErrNothingHere) {
		t.Errorf("Got %v, want ErrNothingHere", err)
	}

	actor.Pos.X = 3
	if err := TryDrop(m, actor, item); err != nil {
		t.Fatalf("TryDrop: %v", err)
	}
	if !m.Contains(item) || item.Pos != actor.Pos {
		t.Error("Dropped item should lie at actor position")
	}
	if err := TryDrop(m, actor, item); !errors.Is(err, ErrNotCarried) {
		t.Errorf("Got %v, want ErrNotCarried", err)
	}
}

func TestTryPickup_Full(t *testing.T) {
	m := createTestMap(t, 5, 5)
	actor := newActor("Tommy", 1, 1, 30, 2, 5)
	actor.Inventory.Capacity = 0
	item := newTestItem("taser", 1, 1)
	m.AddEntity(actor)
	m.AddEntity(item)

	if _, err := TryPickup(m, actor); !errors.Is(err, ErrInventoryFull) {
		t.Errorf("Got %v, want ErrInventoryFull", err)
	}
	if !m.Contains(item) {
		t.Error("Failed pickup must leave the item on the map")
	}
}
