package dungeon

import (
	"github.com/reddwarf405/TommysAdventure/internal/domain"
)

// CreatePlayer создает игрока по шаблону каталога. Позицию выставит генератор этажа.
func CreatePlayer(c *Content, ids *domain.IDAllocator) *domain.Entity {
	p := c.Player.Spawn(ids.Next(domain.EntityTypePlayer, 0), domain.Position{})
	if p.Inventory.Capacity == 0 {
		p.Inventory.Capacity = 26
	}
	return p
}
