package actions

import (
	"errors"
	"fmt"

	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/internal/systems"
)

// --- PICKUP ---

func performPickUp(ctx Context, actor *domain.Entity) error {
	item, err := systems.TryPickup(ctx.Map, actor)
	switch {
	case errors.Is(err, systems.ErrNothingHere):
		return Impossible(msgNothingHere)
	case errors.Is(err, systems.ErrInventoryFull):
		return Impossible(msgInventoryFull)
	case err != nil:
		return err
	}
	ctx.message(fmt.Sprintf("You picked up the %s.", item.Name), domain.TagInfo)
	return nil
}

// --- DROP ---

func performDrop(ctx Context, actor *domain.Entity, a Drop) error {
	if a.Item == nil {
		return Impossible(msgNotCarried)
	}
	if err := systems.TryDrop(ctx.Map, actor, a.Item); err != nil {
		return Impossible(msgNotCarried)
	}
	ctx.message(fmt.Sprintf("You dropped the %s.", a.Item.Name), domain.TagInfo)
	return nil
}

// --- USE ---

func performItemUse(ctx Context, actor *domain.Entity, a ItemUse) error {
	if a.Item == nil {
		return Impossible(msgNotCarried)
	}
	consumable, err := consumableFor(a.Item)
	if err != nil {
		return err
	}
	if !actor.Inventory.Contains(a.Item) {
		return Impossible(msgNotCarried)
	}

	return consumable.Activate(ActivationContext{
		Context: ctx,
		User:    actor,
		Item:    a.Item,
		Target:  a.Target,
	})
}
