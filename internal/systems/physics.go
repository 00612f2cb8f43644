package systems

import (
	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HasLineOfSight проверяет прямую видимость между двумя точками.
// Алгоритм Брезенхэма (только целочисленная арифметика) по прозрачности клеток.
// Сетка видимости карты не используется.
func HasLineOfSight(m *domain.GameMap, p1, p2 domain.Position) bool {
	losLogger := logger.Log.WithFields(logrus.Fields{
		"component": "physics_system",
		"function":  "HasLineOfSight",
		"start_pos": p1,
		"end_pos":   p2,
	})

	if p1 == p2 {
		return true
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	sx, sy := p1.DirectionTo(p2)

	err := dx - dy

	for {
		// Проверяем препятствия, ИСКЛЮЧАЯ стартовую и конечную точки.
		isStartPoint := x0 == p1.X && y0 == p1.Y
		isEndPoint := x0 == p2.X && y0 == p2.Y

		if !isStartPoint && !isEndPoint {
			// 1. Проверка границ карты
			if !m.InBounds(x0, y0) {
				losLogger.WithField("blocking_point", domain.Position{X: x0, Y: y0}).
					Debug("Line is blocked by map bounds.")
				return false
			}
			// 2. Проверка непрозрачной клетки
			if !m.IsTransparent(x0, y0) {
				losLogger.WithField("blocking_point", domain.Position{X: x0, Y: y0}).
					Debug("Line is blocked by opaque tile.")
				return false
			}
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}
