package actions

import (
	"fmt"

	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/internal/systems"
)

func performMeleeAttack(ctx Context, actor *domain.Entity, a MeleeAttack) error {
	dest := actor.Pos.Shift(a.DX, a.DY)
	if !ctx.Map.InBounds(dest.X, dest.Y) {
		return Impossible(msgNothingToAttack)
	}
	target := ctx.Map.GetActorAt(dest.X, dest.Y)
	if target == nil || target == actor || actor.Fighter == nil {
		return Impossible(msgNothingToAttack)
	}

	tag := domain.TagEnemyAttack
	if ctx.isPlayer(actor) {
		tag = domain.TagPlayerAttack
	}

	out := systems.ResolveAttack(actor, target)
	desc := fmt.Sprintf("%s attacks %s", actor.Name, target.Name)
	if out.Damage > 0 {
		ctx.message(fmt.Sprintf("%s for %d hit points.", desc, out.Damage), tag)
	} else {
		ctx.message(desc+" but does no damage.", tag)
	}

	if out.Died {
		kill(ctx, target)
	}
	return nil
}

// kill превращает погибшего в труп и сообщает об этом.
func kill(ctx Context, victim *domain.Entity) {
	if ctx.isPlayer(victim) {
		victim.Die()
		ctx.message("You died!", domain.TagPlayerDie)
		return
	}
	name := victim.Name
	victim.Die()
	ctx.message(fmt.Sprintf("%s is dead!", name), domain.TagEnemyDie)
}
