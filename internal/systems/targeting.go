package systems

import (
	"github.com/reddwarf405/TommysAdventure/internal/domain"
)

// FindClosestTarget ищет ближайшего живого актора (кроме origin)
// в пределах rangeLimit с прямой видимостью.
// При равной дистанции побеждает тот, кто раньше в наборе карты.
func FindClosestTarget(m *domain.GameMap, origin *domain.Entity, rangeLimit float64) *domain.Entity {
	var closest *domain.Entity
	best := rangeLimit + 1

	for _, actor := range m.Actors() {
		if actor == origin {
			continue
		}
		dist := origin.Pos.DistanceTo(actor.Pos)
		if dist > rangeLimit || dist >= best {
			continue
		}
		if !HasLineOfSight(m, origin.Pos, actor.Pos) {
			continue
		}
		closest = actor
		best = dist
	}
	return closest
}

// ActorsInRadius - все живые акторы в радиусе от точки (включительно).
func ActorsInRadius(m *domain.GameMap, center domain.Position, radius int) []*domain.Entity {
	var out []*domain.Entity
	limit := float64(radius)
	for _, actor := range m.Actors() {
		if center.DistanceTo(actor.Pos) <= limit {
			out = append(out, actor)
		}
	}
	return out
}
