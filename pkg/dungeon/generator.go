package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/reddwarf405/TommysAdventure/internal/domain"
)

// Params - параметры генерации этажа
type Params struct {
	Width              int
	Height             int
	MaxRooms           int
	RoomMinSize        int
	RoomMaxSize        int
	MaxMonstersPerRoom int
	MaxItemsPerRoom    int
}

// DefaultParams - размеры из оригинальной игры
func DefaultParams() Params {
	return Params{
		Width:              80,
		Height:             43,
		MaxRooms:           30,
		RoomMinSize:        6,
		RoomMaxSize:        10,
		MaxMonstersPerRoom: 2,
		MaxItemsPerRoom:    2,
	}
}

// Generate создает новый этаж: комнаты, коридоры, лестница в последней комнате,
// игрок в первой. Одинаковый rng дает одинаковый этаж.
func Generate(p Params, c *Content, depth int, player *domain.Entity, rng *rand.Rand, ids *domain.IDAllocator) (*domain.GameMap, error) {
	m, err := NewLevel(depth, rng, ids).
		WithSize(p.Width, p.Height).
		WithRooms(p.MaxRooms, p.RoomMinSize, p.RoomMaxSize).
		PlacePlayer(player).
		PlaceStairs().
		SpawnMonsters(c, p.MaxMonstersPerRoom).
		SpawnItems(c, p.MaxItemsPerRoom).
		Build()
	if err != nil {
		return nil, fmt.Errorf("generate depth %d: %w", depth, err)
	}
	return m, nil
}
