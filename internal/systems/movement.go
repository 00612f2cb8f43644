package systems

import (
	"github.com/reddwarf405/TommysAdventure/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewX, NewY  int
	HasMoved    bool
	OutOfBounds bool           // Цель за краем карты
	IsWall      bool           // Если врезались в стену
	BlockedBy   *domain.Entity // Если врезались в кого-то
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
// Порядок проверок: границы, проходимость, блокирующие сущности.
func CalculateMove(m *domain.GameMap, e *domain.Entity, dx, dy int) MovementResult {
	// Shift возвращает новую Position, не меняя текущую
	targetPos := e.Pos.Shift(dx, dy)

	res := MovementResult{NewX: targetPos.X, NewY: targetPos.Y}

	// 1. Проверка границ
	if !m.InBounds(targetPos.X, targetPos.Y) {
		res.OutOfBounds = true
		return res
	}

	// 2. Проверка стен
	if !m.IsWalkable(targetPos.X, targetPos.Y) {
		res.IsWall = true
		return res
	}

	// 3. Проверка сущностей
	if blocker := m.GetBlockingEntityAt(targetPos.X, targetPos.Y); blocker != nil && blocker != e {
		res.BlockedBy = blocker
		return res
	}

	res.HasMoved = true
	return res
}
