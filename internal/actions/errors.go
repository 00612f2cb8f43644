package actions

import "errors"

// ImpossibleError - действие не может быть выполнено по правилам игры.
// Состояние мира при этом не меняется.
type ImpossibleError struct {
	Reason string
}

func (e *ImpossibleError) Error() string {
	return e.Reason
}

// Impossible создает ошибку "нельзя" с текстом для игрока.
func Impossible(reason string) error {
	return &ImpossibleError{Reason: reason}
}

// IsImpossible проверяет (в том числе в обертках), что err - ImpossibleError.
func IsImpossible(err error) bool {
	var target *ImpossibleError
	return errors.As(err, &target)
}

// ReasonOf возвращает текст причины, если err - ImpossibleError.
func ReasonOf(err error) (string, bool) {
	var target *ImpossibleError
	if errors.As(err, &target) {
		return target.Reason, true
	}
	return "", false
}

var (
	// ErrEscape - игрок завершает сессию. Передается наверх без изменений.
	ErrEscape = errors.New("escape requested")

	ErrAlreadyPerformed = errors.New("intent already performed")
	ErrNoActor          = errors.New("intent has no actor")
	ErrNoMap            = errors.New("context has no map")
	ErrUnknownAction    = errors.New("unknown action variant")
)

// Тексты для игрока
const (
	msgBlocked         = "That way is blocked."
	msgNothingToAttack = "Nothing to attack."
	msgInventoryFull   = "Your inventory is full."
	msgNothingHere     = "There is nothing here to pick up."
	msgNotCarried      = "You do not carry that."
	msgNoStairs        = "There are no stairs here."
	msgDead            = "You are dead."
	msgFullHealth      = "Your health is already full."
	msgNoEnemyClose    = "No enemy is close enough to strike."
	msgNoTargetsRadius = "There are no targets in the radius."
	msgNoTarget        = "You need to pick a target."
	msgCantSeeTarget   = "You cannot target an area that you cannot see."
)
