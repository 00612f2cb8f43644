package actions

import (
	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/internal/systems"
)

func performMove(ctx Context, actor *domain.Entity, a Move) error {
	res := systems.CalculateMove(ctx.Map, actor, a.DX, a.DY)
	if !res.HasMoved {
		return Impossible(msgBlocked)
	}
	actor.Move(a.DX, a.DY)
	return nil
}

// performBump связывает вариант только сейчас: кто стоит в клетке на момент хода.
func performBump(ctx Context, actor *domain.Entity, a Bump) (int, error) {
	dest := actor.Pos.Shift(a.DX, a.DY)
	if target := ctx.Map.GetActorAt(dest.X, dest.Y); target != nil && target != actor {
		return domain.TimeCostAttack, performMeleeAttack(ctx, actor, MeleeAttack(a))
	}
	return domain.TimeCostMove, performMove(ctx, actor, Move(a))
}
