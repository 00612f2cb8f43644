package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrCorruptMap = errors.New("corrupt map data")

// gameMapJSON - полное состояние этажа для сохранения.
// Сетки хранятся построчно: индекс y*Width + x.
type gameMapJSON struct {
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Depth    int        `json:"depth"`
	UpStairs Position   `json:"upStairs"`
	Tiles    []TileKind `json:"tiles"`
	Visible  []bool     `json:"visible"`
	Explored []bool     `json:"explored"`
	Entities []*Entity  `json:"entities"`
}

func (m *GameMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(gameMapJSON{
		Width:    m.Width,
		Height:   m.Height,
		Depth:    m.Depth,
		UpStairs: m.UpStairs,
		Tiles:    m.tiles,
		Visible:  m.visible,
		Explored: m.explored,
		Entities: m.entities,
	})
}

// UnmarshalJSON восстанавливает карту и проверяет размеры сеток.
func (m *GameMap) UnmarshalJSON(data []byte) error {
	var raw gameMapJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// 1. Размеры
	if raw.Width <= 0 || raw.Height <= 0 {
		return ErrInvalidMapSize
	}
	size := raw.Width * raw.Height
	if len(raw.Tiles) != size || len(raw.Visible) != size || len(raw.Explored) != size {
		return fmt.Errorf("%w: grids do not match %dx%d", ErrCorruptMap, raw.Width, raw.Height)
	}

	// 2. Клетки только из каталога
	for i, k := range raw.Tiles {
		if int(k) >= len(tileCatalog) {
			return fmt.Errorf("%w: unknown tile %d at index %d", ErrCorruptMap, k, i)
		}
	}

	// 3. Сущности без nil и без повторов
	entities := make([]*Entity, 0, len(raw.Entities))
	seen := make(map[EntityID]bool, len(raw.Entities))
	for _, e := range raw.Entities {
		if e == nil || seen[e.ID] {
			return fmt.Errorf("%w: nil or duplicate entity", ErrCorruptMap)
		}
		seen[e.ID] = true
		entities = append(entities, e)
	}

	*m = GameMap{
		Width:    raw.Width,
		Height:   raw.Height,
		Depth:    raw.Depth,
		UpStairs: raw.UpStairs,
		tiles:    raw.Tiles,
		visible:  raw.Visible,
		explored: raw.Explored,
		entities: entities,
	}
	return nil
}
