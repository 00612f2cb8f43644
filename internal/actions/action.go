package actions

import (
	"fmt"

	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/pkg/logger"

	"github.com/sirupsen/logrus"
)

// --- ВАРИАНТЫ ДЕЙСТВИЙ ---

// Action - закрытый набор действий. Новые варианты добавляются только здесь.
type Action interface {
	isAction()
}

// Move - шаг без атаки.
type Move struct{ DX, DY int }

// MeleeAttack - удар по соседней клетке.
type MeleeAttack struct{ DX, DY int }

// Bump решает при выполнении: атака, если в клетке живой актор, иначе шаг.
type Bump struct{ DX, DY int }

// PickUp подбирает первый предмет под ногами.
type PickUp struct{}

// ItemUse активирует расходник. Target нужен только предметам с прицелом.
type ItemUse struct {
	Item   *domain.Entity
	Target *domain.Position
}

// Drop кладет предмет из инвентаря на пол.
type Drop struct{ Item *domain.Entity }

type Wait struct{}

// TakeStairs - подъем по лестнице на новый этаж.
type TakeStairs struct{}

// Escape завершает сессию.
type Escape struct{}

func (Move) isAction()        {}
func (MeleeAttack) isAction() {}
func (Bump) isAction()        {}
func (PickUp) isAction()      {}
func (ItemUse) isAction()     {}
func (Drop) isAction()        {}
func (Wait) isAction()        {}
func (TakeStairs) isAction()  {}
func (Escape) isAction()      {}

// --- КОНТЕКСТ ---

// MessageSink - куда пишутся сообщения для игрока.
type MessageSink interface {
	Add(text string, tag domain.MessageTag)
}

// FloorGenerator строит следующий этаж.
type FloorGenerator interface {
	GenerateFloor() error
}

// Context передается в каждое действие явно.
type Context struct {
	Map      *domain.GameMap
	Log      MessageSink
	Floors   FloorGenerator
	IsPlayer func(e *domain.Entity) bool
}

func (c Context) isPlayer(e *domain.Entity) bool {
	if c.IsPlayer != nil {
		return c.IsPlayer(e)
	}
	return e.Type == domain.EntityTypePlayer
}

func (c Context) message(text string, tag domain.MessageTag) {
	if c.Log != nil {
		c.Log.Add(text, tag)
	}
}

// --- INTENT ---

// Intent связывает актора с одним действием. Выполняется один раз.
type Intent struct {
	actor     *domain.Entity
	action    Action
	performed bool
}

func New(actor *domain.Entity, action Action) *Intent {
	return &Intent{actor: actor, action: action}
}

func (i *Intent) Actor() *domain.Entity { return i.actor }
func (i *Intent) Action() Action        { return i.action }
func (i *Intent) Performed() bool       { return i.performed }

// Perform выполняет действие. Повторный вызов - ErrAlreadyPerformed.
// Возвращает nil, *ImpossibleError, ErrEscape или ошибку контракта.
func (i *Intent) Perform(ctx Context) error {
	if i.performed {
		return ErrAlreadyPerformed
	}
	i.performed = true

	if i.actor == nil {
		return ErrNoActor
	}
	if ctx.Map == nil {
		return ErrNoMap
	}

	log := logger.Log.WithFields(logrus.Fields{
		"component":  "actions",
		"actor_id":   i.actor.ID.String(),
		"actor_name": i.actor.Name,
		"action":     fmt.Sprintf("%T", i.action),
	})

	// Мертвые не ходят. Выйти из игры можно всегда.
	if _, escape := i.action.(Escape); !escape && i.actor.IsActor() && !i.actor.IsAlive() {
		log.Debug("Dead actor tried to act.")
		return Impossible(msgDead)
	}

	cost, err := perform(ctx, i.actor, i.action)
	if err != nil {
		log.WithError(err).Debug("Action not performed.")
		return err
	}

	if i.actor.AI != nil {
		i.actor.AI.Wait(cost)
	}
	log.WithField("cost", cost).Debug("Action performed.")
	return nil
}

// Do - сокращение для New(actor, action).Perform(ctx).
func Do(ctx Context, actor *domain.Entity, action Action) error {
	return New(actor, action).Perform(ctx)
}

// perform - единая точка диспетчеризации. Возвращает стоимость в тиках.
func perform(ctx Context, actor *domain.Entity, action Action) (int, error) {
	switch a := action.(type) {
	case Move:
		return domain.TimeCostMove, performMove(ctx, actor, a)
	case MeleeAttack:
		return domain.TimeCostAttack, performMeleeAttack(ctx, actor, a)
	case Bump:
		return performBump(ctx, actor, a)
	case PickUp:
		return domain.TimeCostPickup, performPickUp(ctx, actor)
	case ItemUse:
		return domain.TimeCostUse, performItemUse(ctx, actor, a)
	case Drop:
		return domain.TimeCostDrop, performDrop(ctx, actor, a)
	case Wait:
		return domain.TimeCostWait, nil
	case TakeStairs:
		return domain.TimeCostStairs, performTakeStairs(ctx, actor)
	case Escape:
		return 0, ErrEscape
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}
}
