package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/reddwarf405/TommysAdventure/internal/actions"
	"github.com/reddwarf405/TommysAdventure/pkg/api"
)

// TypedDecoder - это "чистый" декодер, который работает с готовой структурой T
type TypedDecoder[T any] func(ctx Context, payload T) (actions.Action, error)

// EmptyDecoder - декодер, которому НЕ нужны данные (WAIT, PICKUP)
type EmptyDecoder func(ctx Context) (actions.Action, error)

// WithPayload берет "чистый" декодер и превращает его в стандартный Decoder.
// Она берет на себя Unmarshal и Validate.
func WithPayload[T any](decode TypedDecoder[T]) Decoder {
	return func(ctx Context, raw json.RawMessage) (actions.Action, error) {
		var payload T

		// 1. Распаковка JSON
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}

		// 2. Автоматическая валидация
		// Проверяем, реализует ли структура T интерфейс Validator
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("%w: validation failed: %v", ErrInvalidPayload, err)
			}
		}

		// 3. Вызов чистой логики
		return decode(ctx, payload)
	}
}

// WithEmptyPayload - обертка для команд без данных
func WithEmptyPayload(decode EmptyDecoder) Decoder {
	return func(ctx Context, _ json.RawMessage) (actions.Action, error) {
		return decode(ctx)
	}
}
