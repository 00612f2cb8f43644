package actions

import (
	"fmt"

	"github.com/reddwarf405/TommysAdventure/internal/domain"
)

func performTakeStairs(ctx Context, actor *domain.Entity) error {
	if actor.Pos != ctx.Map.UpStairs {
		return Impossible(msgNoStairs)
	}
	if ctx.Floors == nil {
		return fmt.Errorf("take stairs: no floor generator")
	}
	if err := ctx.Floors.GenerateFloor(); err != nil {
		return fmt.Errorf("generate floor: %w", err)
	}
	ctx.message("You ascend the staircase.", domain.TagDescend)
	return nil
}
