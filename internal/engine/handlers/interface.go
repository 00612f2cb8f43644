package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/reddwarf405/TommysAdventure/internal/actions"
	"github.com/reddwarf405/TommysAdventure/internal/domain"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidPayload = errors.New("invalid payload")
)

// Context передает декодеру того, кто выполняет команду.
// Декодер не меняет мир: он только собирает действие.
type Context struct {
	Actor *domain.Entity
}

// Decoder - это контракт для любой команды (MOVE, USE, etc).
type Decoder func(ctx Context, payload json.RawMessage) (actions.Action, error)

// Registry сопоставляет тип команды с декодером.
type Registry map[domain.ActionType]Decoder

// Decode собирает действие для команды.
func (r Registry) Decode(ctx Context, cmd domain.InternalCommand) (actions.Action, error) {
	decode, ok := r[cmd.Action]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Action)
	}
	return decode(ctx, cmd.Payload)
}
