package systems

import (
	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/pkg/logger"

	"github.com/sirupsen/logrus"
)

// NPCDecision - что решил сделать NPC.
type NPCDecision struct {
	Action domain.ActionType // ActionWait, ActionAttack или ActionMove
	DX, DY int
}

var waitDecision = NPCDecision{Action: domain.ActionWait}

// ComputeNPCAction решает, что делать враждебному NPC.
func ComputeNPCAction(m *domain.GameMap, npc, player *domain.Entity) NPCDecision {
	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"npc_id":    npc.ID.String(),
		"npc_name":  npc.Name,
	})

	if npc.AI == nil || !npc.IsAlive() || !npc.AI.IsHostile || player == nil || !player.IsAlive() {
		aiLogger.Debug("Invalid state (dead, not hostile, no target). Action: WAIT")
		return waitDecision
	}

	// Соседняя клетка (включая диагональ) - атакуем
	if npc.Pos.IsAdjacent(player.Pos) {
		dx, dy := npc.Pos.DirectionTo(player.Pos)
		aiLogger.Debug("Target in attack range. Action: ATTACK")
		return NPCDecision{Action: domain.ActionAttack, DX: dx, DY: dy}
	}

	dist := npc.Pos.DistanceTo(player.Pos)
	if dist > domain.AggroRadius {
		return waitDecision
	}

	if !HasLineOfSight(m, npc.Pos, player.Pos) {
		aiLogger.Debug("Target not visible. Action: WAIT")
		return waitDecision
	}

	dx, dy := calculateSmartMove(m, npc, player)
	if dx == 0 && dy == 0 {
		aiLogger.Debug("Path is blocked. Action: WAIT")
		return waitDecision
	}

	aiLogger.WithFields(logrus.Fields{"dx": dx, "dy": dy}).Debug("Pursuing target. Action: MOVE")
	return NPCDecision{Action: domain.ActionMove, DX: dx, DY: dy}
}

// Внутренние утилиты (приватные для пакета systems)

func calculateSmartMove(m *domain.GameMap, npc, target *domain.Entity) (int, int) {
	dxRaw := target.Pos.X - npc.Pos.X
	dyRaw := target.Pos.Y - npc.Pos.Y

	stepX, stepY := npc.Pos.DirectionTo(target.Pos)

	// Попытка 1: Идеальный путь
	if CalculateMove(m, npc, stepX, stepY).HasMoved {
		return stepX, stepY
	}

	// Попытка 2: Smart Sliding (выбор приоритетной оси)
	tryXFirst := absInt(dxRaw) > absInt(dyRaw)

	if tryXFirst {
		if stepX != 0 && CalculateMove(m, npc, stepX, 0).HasMoved {
			return stepX, 0
		}
		if stepY != 0 && CalculateMove(m, npc, 0, stepY).HasMoved {
			return 0, stepY
		}
	} else {
		if stepY != 0 && CalculateMove(m, npc, 0, stepY).HasMoved {
			return 0, stepY
		}
		if stepX != 0 && CalculateMove(m, npc, stepX, 0).HasMoved {
			return stepX, 0
		}
	}

	return 0, 0 // Тупик
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
