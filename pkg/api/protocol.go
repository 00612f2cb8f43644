package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" мира, видимого игроку.
// Отправляется после каждого хода игрока.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" или "GAME_OVER".
	Type string `json:"type"`

	// SessionID идентификатор сессии (для переподключения и отладки).
	SessionID string `json:"sessionId,omitempty"`

	// Tick текущее игровое время. Растет с каждым действием.
	Tick int `json:"tick"`

	// Depth номер текущего этажа, начиная с 1.
	Depth int `json:"depth"`

	// MyEntityID ID сущности, которой управляет данный клиент.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех видимых и/или исследованных тайлов.
	Map []TileView `json:"map,omitempty"`

	// Entities срез всех видимых сущностей в порядке отрисовки.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого ответа.
	Logs []LogEntry `json:"logs,omitempty"`
}

// Типы ответов
const (
	ResponseUpdate   = "UPDATE"
	ResponseGameOver = "GAME_OVER"
)

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Symbol, Color и BG - визуальное представление: символ, цвет символа, фон.
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
	BG     string `json:"bg"`

	// IsWall true, если тайл является непроходимым препятствием.
	IsWall bool `json:"isWall"`

	// IsVisible true, если тайл находится в текущем поле зрения. Рендерится ярко.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если тайл когда-либо был увиден.
	// Если IsVisible=false, а IsExplored=true, рендерится тускло.
	IsExplored bool `json:"isExplored"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, ENEMY, ITEM
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
		Order  int    `json:"order"`
	} `json:"render"`

	// Stats характеристики сущности. Поле отсутствует у предметов.
	Stats *StatsView `json:"stats,omitempty"`

	// Inventory инвентарь (только для самого игрока)
	Inventory *InventoryView `json:"inventory,omitempty"`
}

// StatsView это DTO для характеристик сущности.
type StatsView struct {
	HP      int  `json:"hp"`
	MaxHP   int  `json:"maxHp"`
	Defense int  `json:"defense,omitempty"`
	Power   int  `json:"power,omitempty"`
	IsDead  bool `json:"isDead"`
}

// LogEntry представляет одну запись в игровом логе (чате).
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // тег сообщения: PLAYER_ATTACK, IMPOSSIBLE, ...
	Color     string `json:"color"`     // цвет тега, #RRGGBB
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// ItemView представляет предмет для клиента
type ItemView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
	Kind   string `json:"kind,omitempty"` // healing, lightning, fireball
	Amount int    `json:"amount,omitempty"`
	Range  int    `json:"range,omitempty"`
	Radius int    `json:"radius,omitempty"`
}

// InventoryView представляет инвентарь для клиента
type InventoryView struct {
	Items    []ItemView `json:"items"`
	Capacity int        `json:"capacity"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload используется для действий с направлением (MOVE, STEP, ATTACK).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// PositionPayload - точка на карте (цель для гранаты).
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ItemPayload используется для действий с предметами (DROP).
type ItemPayload struct {
	ItemID string `json:"itemId"`
}

// UsePayload - предмет и, если нужно, точка прицеливания.
type UsePayload struct {
	ItemID string           `json:"itemId"`
	Target *PositionPayload `json:"target,omitempty"`
}
