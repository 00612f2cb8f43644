package handlers

import (
	"github.com/reddwarf405/TommysAdventure/internal/actions"
	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/pkg/api"
)

// Default - реестр всех команд игрока.
func Default() Registry {
	return Registry{
		domain.ActionMove:   WithPayload(DecodeBump),
		domain.ActionStep:   WithPayload(DecodeStep),
		domain.ActionAttack: WithPayload(DecodeAttack),
		domain.ActionPickup: WithEmptyPayload(constant(actions.PickUp{})),
		domain.ActionUse:    WithPayload(DecodeUse),
		domain.ActionDrop:   WithPayload(DecodeDrop),
		domain.ActionWait:   WithEmptyPayload(constant(actions.Wait{})),
		domain.ActionStairs: WithEmptyPayload(constant(actions.TakeStairs{})),
		domain.ActionEscape: WithEmptyPayload(constant(actions.Escape{})),
	}
}

func constant(a actions.Action) EmptyDecoder {
	return func(Context) (actions.Action, error) { return a, nil }
}

// --- НАПРАВЛЕНИЯ ---

// DecodeBump - обычное движение: атака, если в клетке кто-то стоит.
func DecodeBump(_ Context, p api.DirectionPayload) (actions.Action, error) {
	return actions.Bump{DX: p.Dx, DY: p.Dy}, nil
}

func DecodeStep(_ Context, p api.DirectionPayload) (actions.Action, error) {
	return actions.Move{DX: p.Dx, DY: p.Dy}, nil
}

func DecodeAttack(_ Context, p api.DirectionPayload) (actions.Action, error) {
	return actions.MeleeAttack{DX: p.Dx, DY: p.Dy}, nil
}

// --- ПРЕДМЕТЫ ---

// DecodeUse ищет предмет в инвентаре актора. Чужой или неизвестный предмет
// дает ItemUse без предмета: действие само ответит "You do not carry that."
func DecodeUse(ctx Context, p api.UsePayload) (actions.Action, error) {
	a := actions.ItemUse{Item: findCarried(ctx.Actor, p.ItemID)}
	if p.Target != nil {
		a.Target = &domain.Position{X: p.Target.X, Y: p.Target.Y}
	}
	return a, nil
}

func DecodeDrop(ctx Context, p api.ItemPayload) (actions.Action, error) {
	return actions.Drop{Item: findCarried(ctx.Actor, p.ItemID)}, nil
}

func findCarried(actor *domain.Entity, rawID string) *domain.Entity {
	if actor == nil {
		return nil
	}
	id, err := domain.ParseEntityID(rawID)
	if err != nil {
		return nil
	}
	return actor.Inventory.Find(id)
}
