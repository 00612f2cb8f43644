package dungeon

import (
	"errors"
	"math/rand"

	"github.com/reddwarf405/TommysAdventure/internal/domain"
)

var ErrNoRooms = errors.New("dungeon: no rooms were placed")

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// LevelBuilder предоставляет fluent API для создания этажа
type LevelBuilder struct {
	depth   int
	width   int
	height  int
	rooms   []Rect
	gameMap *domain.GameMap
	rng     *rand.Rand
	ids     *domain.IDAllocator
	err     error
}

// NewLevel создает новый builder для этажа
func NewLevel(depth int, rng *rand.Rand, ids *domain.IDAllocator) *LevelBuilder {
	return &LevelBuilder{
		depth:  depth,
		width:  80,
		height: 43,
		rng:    rng,
		ids:    ids,
	}
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

// WithRooms генерирует комнаты и коридоры
func (b *LevelBuilder) WithRooms(maxRooms, minSize, maxSize int) *LevelBuilder {
	if b.err != nil {
		return b
	}
	// Карта изначально залита стенами
	b.gameMap, b.err = domain.NewGameMap(b.width, b.height)
	if b.err != nil {
		return b
	}
	b.gameMap.Depth = b.depth

	b.rooms = make([]Rect, 0, maxRooms)
	for i := 0; i < maxRooms; i++ {
		w := b.randRange(minSize, maxSize)
		h := b.randRange(minSize, maxSize)
		if w >= b.width-1 || h >= b.height-1 {
			continue // комната не влезает
		}
		x := b.randRange(0, b.width-w-1)
		y := b.randRange(0, b.height-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}

		// Проверяем пересечения
		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		b.carveRoom(newRoom)

		// Соединяем с предыдущей комнатой
		if len(b.rooms) > 0 {
			prevX, prevY := b.rooms[len(b.rooms)-1].Center()
			currX, currY := newRoom.Center()

			if b.rng.Intn(2) == 0 {
				b.carveHCorridor(prevX, currX, prevY)
				b.carveVCorridor(prevY, currY, currX)
			} else {
				b.carveVCorridor(prevY, currY, prevX)
				b.carveHCorridor(prevX, currX, currY)
			}
		}
		b.rooms = append(b.rooms, newRoom)
	}

	if len(b.rooms) == 0 {
		b.err = ErrNoRooms
	}
	return b
}

// PlacePlayer ставит игрока в центр первой комнаты.
func (b *LevelBuilder) PlacePlayer(player *domain.Entity) *LevelBuilder {
	if b.err != nil || player == nil {
		return b
	}
	cx, cy := b.rooms[0].Center()
	player.Pos = domain.Position{X: cx, Y: cy}
	b.gameMap.AddEntity(player)
	return b
}

// PlaceStairs ставит лестницу в центр последней комнаты.
func (b *LevelBuilder) PlaceStairs() *LevelBuilder {
	if b.err != nil {
		return b
	}
	cx, cy := b.rooms[len(b.rooms)-1].Center()
	b.gameMap.UpStairs = domain.Position{X: cx, Y: cy}
	return b
}

// SpawnMonsters - до maxPerRoom врагов в каждой комнате, кроме первой.
func (b *LevelBuilder) SpawnMonsters(c *Content, maxPerRoom int) *LevelBuilder {
	if b.err != nil || len(c.Monsters) == 0 {
		return b
	}
	weights := make([]int, len(c.Monsters))
	for i, m := range c.Monsters {
		weights[i] = m.Weight
	}

	for _, room := range b.roomsExceptFirst() {
		n := b.rng.Intn(maxPerRoom + 1)
		for i := 0; i < n; i++ {
			pos, ok := b.freeCell(room)
			if !ok {
				continue
			}
			t := c.Monsters[pickWeighted(b.rng, weights)]
			b.gameMap.AddEntity(t.Spawn(b.ids.Next(domain.EntityTypeEnemy, b.depth), pos))
		}
	}
	return b
}

// SpawnItems - до maxPerRoom предметов в каждой комнате.
func (b *LevelBuilder) SpawnItems(c *Content, maxPerRoom int) *LevelBuilder {
	if b.err != nil || len(c.Items) == 0 {
		return b
	}
	weights := make([]int, len(c.Items))
	for i, it := range c.Items {
		weights[i] = it.Weight
	}

	for _, room := range b.rooms {
		n := b.rng.Intn(maxPerRoom + 1)
		for i := 0; i < n; i++ {
			pos, ok := b.freeCell(room)
			if !ok {
				continue
			}
			t := c.Items[pickWeighted(b.rng, weights)]
			b.gameMap.AddEntity(t.Spawn(b.ids.Next(domain.EntityTypeItem, b.depth), pos))
		}
	}
	return b
}

// Build собирает и возвращает готовый этаж
func (b *LevelBuilder) Build() (*domain.GameMap, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.gameMap, nil
}

// --- Helper functions ---

func (b *LevelBuilder) roomsExceptFirst() []Rect {
	if len(b.rooms) < 2 {
		return nil
	}
	return b.rooms[1:]
}

// freeCell ищет пустую клетку внутри комнаты (макс 20 попыток)
func (b *LevelBuilder) freeCell(room Rect) (domain.Position, bool) {
	for attempt := 0; attempt < 20; attempt++ {
		x := b.randRange(room.X+1, room.X+room.W-1)
		y := b.randRange(room.Y+1, room.Y+room.H-1)
		if !b.gameMap.IsWalkable(x, y) {
			continue
		}
		if b.occupied(x, y) {
			continue
		}
		return domain.Position{X: x, Y: y}, true
	}
	return domain.Position{}, false
}

func (b *LevelBuilder) occupied(x, y int) bool {
	for _, e := range b.gameMap.Entities() {
		if e.Pos.X == x && e.Pos.Y == y {
			return true
		}
	}
	return false
}

func (b *LevelBuilder) carveRoom(room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			b.gameMap.SetTile(x, y, domain.TileFloor)
		}
	}
}

func (b *LevelBuilder) carveHCorridor(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		b.gameMap.SetTile(x, y, domain.TileFloor)
	}
}

func (b *LevelBuilder) carveVCorridor(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		b.gameMap.SetTile(x, y, domain.TileFloor)
	}
}

func (b *LevelBuilder) randRange(min, max int) int {
	return b.rng.Intn(max-min+1) + min
}
