package systems

import (
	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeFOV пересчитывает видимость карты с точки pos.
// Видимые клетки также помечаются исследованными.
func ComputeFOV(m *domain.GameMap, pos domain.Position, radius int) int {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": pos,
		"radius":       radius,
	})

	m.ClearVisible()
	if radius <= 0 || !m.InBounds(pos.X, pos.Y) {
		fovLogger.Warn("FOV calculation skipped (blind observer or out of bounds).")
		return 0
	}

	// 1. Центр всегда виден
	count := 0
	mark := func(x, y int) {
		if !m.IsVisible(x, y) {
			count++
		}
		m.SetVisible(x, y, true)
		m.SetExplored(x, y, true)
	}
	mark(pos.X, pos.Y)

	// 2. Рекурсивный Shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		castLight(m, pos.X, pos.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], mark)
	}

	fovLogger.WithField("visible_tiles", count).Debug("FOV calculation complete.")
	return count
}

func castLight(m *domain.GameMap, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, mark func(x, y int)) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			if m.InBounds(X, Y) && float64(dx*dx+dy*dy) < radiusSq {
				mark(X, Y)
			}

			// Логика теней
			if blocked {
				if isBlocking(m, X, Y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if isBlocking(m, X, Y) && j < radius {
				blocked = true
				castLight(m, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, mark)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// isBlocking проверяет, блокирует ли клетка взгляд
func isBlocking(m *domain.GameMap, x, y int) bool {
	// Выход за границы считается блокирующим
	if !m.InBounds(x, y) {
		return true
	}
	return !m.IsTransparent(x, y)
}
