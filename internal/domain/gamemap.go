package domain

import (
	"errors"
	"sort"

	"github.com/reddwarf405/TommysAdventure/pkg/logger"
	"github.com/sirupsen/logrus"
)

var ErrInvalidMapSize = errors.New("map dimensions must be positive")

// GameMap - сетка клеток одного этажа и все сущности на нем.
type GameMap struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Depth  int `json:"depth"`

	UpStairs Position `json:"upStairs"`

	tiles    []TileKind // индекс: y*Width + x
	visible  []bool
	explored []bool

	// Порядок вставки сохраняется, поэтому обход детерминирован.
	entities []*Entity
}

// NewGameMap создает карту, целиком залитую стенами.
func NewGameMap(width, height int) (*GameMap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidMapSize
	}
	size := width * height
	return &GameMap{
		Width:    width,
		Height:   height,
		tiles:    make([]TileKind, size), // TileWall == 0
		visible:  make([]bool, size),
		explored: make([]bool, size),
	}, nil
}

func (m *GameMap) index(x, y int) int {
	return y*m.Width + x
}

// --- КЛЕТКИ ---

// InBounds - координаты внутри карты.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsWalkable не проверяет границы: это делает вызывающий.
func (m *GameMap) IsWalkable(x, y int) bool {
	return m.tiles[m.index(x, y)].Type().Walkable
}

func (m *GameMap) IsTransparent(x, y int) bool {
	return m.tiles[m.index(x, y)].Type().Transparent
}

func (m *GameMap) TileAt(x, y int) TileKind {
	return m.tiles[m.index(x, y)]
}

func (m *GameMap) SetTile(x, y int, kind TileKind) {
	m.tiles[m.index(x, y)] = kind
}

// --- ВИДИМОСТЬ ---
// Сетки пишет только расчет поля зрения. Действия их не читают.

func (m *GameMap) IsVisible(x, y int) bool {
	return m.InBounds(x, y) && m.visible[m.index(x, y)]
}

func (m *GameMap) SetVisible(x, y int, v bool) {
	m.visible[m.index(x, y)] = v
}

func (m *GameMap) IsExplored(x, y int) bool {
	return m.InBounds(x, y) && m.explored[m.index(x, y)]
}

func (m *GameMap) SetExplored(x, y int, v bool) {
	m.explored[m.index(x, y)] = v
}

// ClearVisible гасит поле зрения перед пересчетом.
func (m *GameMap) ClearVisible() {
	for i := range m.visible {
		m.visible[i] = false
	}
}

// Graphic - как клетка выглядит сейчас: светлая в поле зрения,
// темная если исследована, иначе туман.
func (m *GameMap) Graphic(x, y int) Graphic {
	idx := m.index(x, y)
	switch {
	case m.visible[idx]:
		return m.tiles[idx].Type().Light
	case m.explored[idx]:
		return m.tiles[idx].Type().Dark
	default:
		return Shroud
	}
}

// --- СУЩНОСТИ ---

// AddEntity добавляет сущность. Повторное добавление игнорируется.
func (m *GameMap) AddEntity(e *Entity) bool {
	if e == nil || m.Contains(e) {
		return false
	}
	m.entities = append(m.entities, e)
	return true
}

// RemoveEntity удаляет сущность с сохранением порядка остальных.
func (m *GameMap) RemoveEntity(e *Entity) bool {
	for i, other := range m.entities {
		if other == e {
			m.entities = append(m.entities[:i], m.entities[i+1:]...)
			return true
		}
	}
	return false
}

func (m *GameMap) Contains(e *Entity) bool {
	for _, other := range m.entities {
		if other == e {
			return true
		}
	}
	return false
}

// Entities возвращает копию набора в порядке вставки.
func (m *GameMap) Entities() []*Entity {
	out := make([]*Entity, len(m.entities))
	copy(out, m.entities)
	return out
}

// GetEntityByID ищет сущность на карте по ID.
func (m *GameMap) GetEntityByID(id EntityID) *Entity {
	for _, e := range m.entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// GetBlockingEntityAt - первый блокирующий в порядке набора.
// Актор с нулевым HP не блокирует, даже если Die() еще не вызван.
// Два блокирующих в одной клетке - нарушение инварианта, пишем в лог ошибку.
func (m *GameMap) GetBlockingEntityAt(x, y int) *Entity {
	var found *Entity
	for _, e := range m.entities {
		if !e.BlocksMovement || e.Pos.X != x || e.Pos.Y != y {
			continue
		}
		if e.IsActor() && !e.IsAlive() {
			continue
		}
		if found == nil {
			found = e
			continue
		}
		logger.Log.WithFields(logrus.Fields{
			"component": "gamemap",
			"x":         x,
			"y":         y,
			"first":     found.ID.String(),
			"second":    e.ID.String(),
		}).Error("Two blocking entities share a cell")
		break
	}
	return found
}

// GetActorAt - первый живой актор в клетке.
func (m *GameMap) GetActorAt(x, y int) *Entity {
	for _, e := range m.entities {
		if e.IsAlive() && e.Pos.X == x && e.Pos.Y == y {
			return e
		}
	}
	return nil
}

// Actors - все живые акторы.
func (m *GameMap) Actors() []*Entity {
	var out []*Entity
	for _, e := range m.entities {
		if e.IsAlive() {
			out = append(out, e)
		}
	}
	return out
}

// Items - все предметы, лежащие на карте.
func (m *GameMap) Items() []*Entity {
	var out []*Entity
	for _, e := range m.entities {
		if e.IsItem() {
			out = append(out, e)
		}
	}
	return out
}

func (m *GameMap) ItemsAt(x, y int) []*Entity {
	var out []*Entity
	for _, e := range m.entities {
		if e.IsItem() && e.Pos.X == x && e.Pos.Y == y {
			out = append(out, e)
		}
	}
	return out
}

// RenderOrderSequence - сущности по возрастанию RenderOrder.
// Сортировка стабильная: равные остаются в порядке вставки.
func (m *GameMap) RenderOrderSequence() []*Entity {
	out := m.Entities()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RenderOrder < out[j].RenderOrder
	})
	return out
}

// VisibleEntities - то, что нужно нарисовать игроку.
func (m *GameMap) VisibleEntities() []*Entity {
	var out []*Entity
	for _, e := range m.RenderOrderSequence() {
		if m.IsVisible(e.Pos.X, e.Pos.Y) {
			out = append(out, e)
		}
	}
	return out
}
