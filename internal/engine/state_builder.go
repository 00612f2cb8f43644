package engine

import (
	"strconv"

	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/pkg/api"
)

// Snapshot собирает "снимок" видимого игроку мира и забирает новые записи лога.
func (s *Session) Snapshot() *api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	respType := api.ResponseUpdate
	if !s.Player.IsAlive() {
		respType = api.ResponseGameOver
	}

	m := s.Map

	// 1. Карта: только то, что игрок видит или видел
	var mapDTO []api.TileView
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.IsExplored(x, y) {
				continue
			}
			g := m.Graphic(x, y)
			mapDTO = append(mapDTO, api.TileView{
				X: x, Y: y,
				Symbol:     string(g.Char()),
				Color:      g.FG().Hex(),
				BG:         g.BG.Hex(),
				IsWall:     !m.IsWalkable(x, y),
				IsVisible:  m.IsVisible(x, y),
				IsExplored: true,
			})
		}
	}

	// 2. Сущности в порядке отрисовки. Себя видим всегда.
	var viewEntities []api.EntityView
	for _, e := range m.RenderOrderSequence() {
		if e != s.Player && !m.IsVisible(e.Pos.X, e.Pos.Y) {
			continue
		}
		viewEntities = append(viewEntities, toEntityView(e, e == s.Player))
	}

	return &api.ServerResponse{
		Type:       respType,
		SessionID:  s.ID,
		Tick:       s.currentTick,
		Depth:      s.depth,
		MyEntityID: entityIDString(s.Player.ID),
		Grid:       &api.GridMeta{Width: m.Width, Height: m.Height},
		Map:        mapDTO,
		Entities:   viewEntities,
		Logs:       s.Log.Drain(),
	}
}

func entityIDString(id domain.EntityID) string {
	return strconv.FormatUint(uint64(id), 10)
}

// toEntityView конвертирует доменную сущность в DTO для отправки клиенту.
func toEntityView(e *domain.Entity, isMe bool) api.EntityView {
	view := api.EntityView{
		ID:   entityIDString(e.ID),
		Type: e.Type.String(),
		Name: e.Name,
	}
	view.Pos.X = e.Pos.X
	view.Pos.Y = e.Pos.Y
	view.Render.Symbol = string(e.Glyph.Char())
	view.Render.Color = e.Glyph.Color().Hex()
	view.Render.Order = int(e.RenderOrder)

	if e.Fighter != nil {
		view.Stats = &api.StatsView{
			HP:     e.Fighter.HP,
			MaxHP:  e.Fighter.MaxHP,
			IsDead: e.Fighter.HP == 0,
		}
		// Владелец видит всё
		if isMe {
			view.Stats.Defense = e.Fighter.Defense
			view.Stats.Power = e.Fighter.Power
		}
	}

	if isMe && e.Inventory != nil {
		inv := &api.InventoryView{
			Items:    make([]api.ItemView, 0, e.Inventory.Len()),
			Capacity: e.Inventory.Capacity,
		}
		for _, item := range e.Inventory.Items {
			inv.Items = append(inv.Items, toItemView(item))
		}
		view.Inventory = inv
	}

	return view
}

func toItemView(item *domain.Entity) api.ItemView {
	v := api.ItemView{
		ID:     entityIDString(item.ID),
		Name:   item.Name,
		Symbol: string(item.Glyph.Char()),
		Color:  item.Glyph.Color().Hex(),
	}
	if c := item.Consumable; c != nil {
		v.Kind = string(c.Kind)
		v.Amount = c.Amount
		v.Range = c.Range
		v.Radius = c.Radius
	}
	return v
}
