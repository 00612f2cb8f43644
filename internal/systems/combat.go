package systems

import (
	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AttackOutcome - итог одного удара.
type AttackOutcome struct {
	Damage int  // <= 0 значит "без урона"
	Died   bool // цель погибла этим ударом
}

// ResolveAttack применяет формулу урона: power - defense.
// Меняет только HP цели. Превращение в труп - забота вызывающего.
func ResolveAttack(attacker, target *domain.Entity) AttackOutcome {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID.String(),
		"attacker_name": attacker.Name,
		"target_id":     target.ID.String(),
		"target_name":   target.Name,
	})

	if attacker.Fighter == nil || target.Fighter == nil {
		combatLogger.Warn("Attack skipped: fighter component missing.")
		return AttackOutcome{}
	}

	damage := attacker.Fighter.Power - target.Fighter.Defense
	hpBefore := target.Fighter.HP

	out := AttackOutcome{Damage: damage}
	if damage > 0 {
		out.Died = target.Fighter.TakeDamage(damage)
	}

	combatLogger.WithFields(logrus.Fields{
		"power":       attacker.Fighter.Power,
		"defense":     target.Fighter.Defense,
		"damage":      damage,
		"hp_before":   hpBefore,
		"hp_after":    target.Fighter.HP,
		"target_died": out.Died,
	}).Debug("Attack resolved.")

	return out
}

// ApplyDamage - урон в обход формулы (магия, взрывы).
func ApplyDamage(target *domain.Entity, amount int) bool {
	if target.Fighter == nil {
		return false
	}
	return target.Fighter.TakeDamage(amount)
}
