package engine

import (
	"errors"

	"github.com/reddwarf405/TommysAdventure/internal/actions"
	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/internal/systems"

	"github.com/sirupsen/logrus"
)

// HostileAI переводит решение системы ИИ в действие.
func HostileAI(m *domain.GameMap, npc, player *domain.Entity) actions.Action {
	if npc.AI == nil || npc.AI.Kind != domain.AIHostile {
		return actions.Wait{}
	}

	decision := systems.ComputeNPCAction(m, npc, player)
	switch decision.Action {
	case domain.ActionAttack:
		return actions.MeleeAttack{DX: decision.DX, DY: decision.DY}
	case domain.ActionMove:
		return actions.Bump{DX: decision.DX, DY: decision.DY}
	default:
		return actions.Wait{}
	}
}

// processAITurn выполняет ход NPC. Невозможное действие NPC не попадает
// в лог игрока: NPC просто ждет, чтобы очередь не зациклилась.
func (s *Session) processAITurn(npc *domain.Entity) {
	action := HostileAI(s.Map, npc, s.Player)

	err := actions.New(npc, action).Perform(s.actionContext())
	if err == nil {
		return
	}

	fields := logrus.Fields{"npc_id": npc.ID.String(), "npc_name": npc.Name}
	switch {
	case actions.IsImpossible(err):
		s.log.WithFields(fields).WithError(err).Debug("NPC action impossible, waiting")
	case errors.Is(err, actions.ErrEscape):
		s.log.WithFields(fields).Warn("NPC tried to escape")
	default:
		s.log.WithFields(fields).WithError(err).Error("NPC turn failed")
	}

	if npc.AI != nil {
		npc.AI.Wait(domain.TimeCostWait)
	}
}
