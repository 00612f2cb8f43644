package domain

import (
	"fmt"
	"strconv"
)

// EntityID - упакованный идентификатор (Type + Depth + Index)
type EntityID uint64

// NilEntityID - аналог nil для идентификаторов.
const NilEntityID EntityID = 0

// Конфигурация битов
const (
	bitsIndex = 40
	bitsDepth = 16
	bitsType  = 8

	// Сдвиги
	shiftDepth = bitsIndex
	shiftType  = bitsIndex + bitsDepth

	// Маски (для извлечения значений)
	maskIndex = (1 << bitsIndex) - 1 // 0x000000FFFFFFFFFF
	maskDepth = (1 << bitsDepth) - 1 // 0xFFFF
	maskType  = (1 << bitsType) - 1  // 0xFF
)

// --- КОНСТРУКТОР ---

// PackEntityID создает ID из компонентов.
// Проверок диапазонов нет: лишние старшие биты просто отрезаются масками.
func PackEntityID(typeID EntityType, depth uint16, index uint64) EntityID {
	id := index & maskIndex
	id |= (uint64(depth) & maskDepth) << shiftDepth
	id |= (uint64(typeID) & maskType) << shiftType
	return EntityID(id)
}

// --- МЕТОДЫ ДОСТУПА ---

func (id EntityID) Type() EntityType {
	return EntityType((id >> shiftType) & maskType)
}

// Depth - этаж, на котором сущность была создана.
func (id EntityID) Depth() uint16 {
	return uint16((id >> shiftDepth) & maskDepth)
}

func (id EntityID) Index() uint64 {
	return uint64(id & maskIndex)
}

func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// --- СЕРИАЛИЗАЦИЯ (Для фронтенда) ---

// MarshalJSON сериализует ID в строку, так как JS теряет точность для больших int64
func (id EntityID) MarshalJSON() ([]byte, error) {
	s := strconv.FormatUint(uint64(id), 10)
	return []byte(`"` + s + `"`), nil
}

// UnmarshalJSON парсит строку или число из JSON
func (id *EntityID) UnmarshalJSON(data []byte) error {
	// Удаляем кавычки, если есть
	if len(data) > 1 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	if len(data) == 0 {
		*id = NilEntityID
		return nil
	}
	val, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}
	*id = EntityID(val)
	return nil
}

// ParseEntityID разбирает десятичное представление из команд клиента.
func ParseEntityID(s string) (EntityID, error) {
	val, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return NilEntityID, fmt.Errorf("invalid entity id %q: %w", s, err)
	}
	return EntityID(val), nil
}

// String для логов: выводим красиво [Type:Depth:Idx]
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[%s:%d:%d]", id.Type(), id.Depth(), id.Index())
}

// IDAllocator выдает последовательные индексы в рамках одной сессии.
// Последовательность детерминирована, поэтому реплей получает те же ID.
type IDAllocator struct {
	next uint64
}

// Next возвращает новый ID указанного типа.
func (a *IDAllocator) Next(typeID EntityType, depth int) EntityID {
	a.next++
	return PackEntityID(typeID, uint16(depth), a.next)
}
