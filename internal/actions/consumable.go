package actions

import (
	"fmt"

	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/internal/systems"
)

// ActivationContext - все, что нужно расходнику для срабатывания.
type ActivationContext struct {
	Context
	User   *domain.Entity
	Item   *domain.Entity
	Target *domain.Position
}

// consume убирает предмет из инвентаря пользователя.
func (c ActivationContext) consume() {
	systems.Consume(c.User, c.Item)
}

// Consumable - эффект предмета. При ошибке состояние не меняется.
type Consumable interface {
	Activate(c ActivationContext) error
}

// consumableFor строит эффект по данным предмета.
func consumableFor(item *domain.Entity) (Consumable, error) {
	data := item.Consumable
	if data == nil {
		return nil, Impossible(fmt.Sprintf("%s cannot be used.", item.Name))
	}
	switch data.Kind {
	case domain.ConsumableHealing:
		return HealingConsumable{Amount: data.Amount}, nil
	case domain.ConsumableLightning:
		return LightningConsumable{Damage: data.Amount, Range: data.Range}, nil
	case domain.ConsumableFireball:
		return FireballConsumable{Damage: data.Amount, Radius: data.Radius}, nil
	default:
		return nil, Impossible(fmt.Sprintf("%s cannot be used.", item.Name))
	}
}

// --- HEALING ---

type HealingConsumable struct {
	Amount int
}

func (h HealingConsumable) Activate(c ActivationContext) error {
	if c.User.Fighter == nil {
		return Impossible(fmt.Sprintf("%s cannot be used.", c.Item.Name))
	}
	recovered := c.User.Fighter.Heal(h.Amount)
	if recovered <= 0 {
		return Impossible(msgFullHealth)
	}
	c.message(fmt.Sprintf("You consume the %s, and recover %d HP!", c.Item.Name, recovered), domain.TagHealthRecovered)
	c.consume()
	return nil
}

// --- LIGHTNING ---

// LightningConsumable бьет ближайшего видимого противника в радиусе.
type LightningConsumable struct {
	Damage int
	Range  int
}

func (l LightningConsumable) Activate(c ActivationContext) error {
	target := systems.FindClosestTarget(c.Map, c.User, float64(l.Range))
	if target == nil {
		return Impossible(msgNoEnemyClose)
	}

	c.message(fmt.Sprintf("A lightning bolt strikes the %s with a loud thunder, for %d damage!", target.Name, l.Damage), domain.TagPlayerAttack)
	if systems.ApplyDamage(target, l.Damage) {
		kill(c.Context, target)
	}
	c.consume()
	return nil
}

// --- FIREBALL ---

// FireballConsumable взрывается в выбранной точке и задевает всех в радиусе,
// включая самого пользователя.
type FireballConsumable struct {
	Damage int
	Radius int
}

func (f FireballConsumable) Activate(c ActivationContext) error {
	if c.Target == nil {
		return Impossible(msgNoTarget)
	}
	pos := *c.Target
	if !c.Map.InBounds(pos.X, pos.Y) || !systems.HasLineOfSight(c.Map, c.User.Pos, pos) {
		return Impossible(msgCantSeeTarget)
	}

	victims := systems.ActorsInRadius(c.Map, pos, f.Radius)
	if len(victims) == 0 {
		return Impossible(msgNoTargetsRadius)
	}

	for _, v := range victims {
		c.message(fmt.Sprintf("The %s is engulfed in a fiery explosion, taking %d damage!", v.Name, f.Damage), domain.TagPlayerAttack)
		if systems.ApplyDamage(v, f.Damage) {
			kill(c.Context, v)
		}
	}
	c.consume()
	return nil
}
