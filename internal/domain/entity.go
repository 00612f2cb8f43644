package domain

import "fmt"

// --- КОМПОНЕНТЫ ---

// FighterComponent - боевые характеристики.
// HP всегда в диапазоне [0, MaxHP]; HP == 0 означает "мертв".
type FighterComponent struct {
	HP      int `json:"hp"`
	MaxHP   int `json:"maxHp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`
}

// AIKind - какой "мозг" управляет сущностью.
type AIKind string

const (
	AIHostile AIKind = "hostile"
)

// AIComponent - поведение и время.
// Примечание: у игрока тоже есть этот компонент, чтобы хранить NextActionTick
type AIComponent struct {
	Kind           AIKind `json:"kind,omitempty"`
	IsHostile      bool   `json:"isHostile"`
	NextActionTick int    `json:"nextActionTick"` // <-- Очередь ходов
}

// Wait добавляет задержку к следующему действию
func (a *AIComponent) Wait(ticks int) {
	a.NextActionTick += ticks
}

// ConsumableKind - эффект расходуемого предмета.
type ConsumableKind string

const (
	ConsumableHealing   ConsumableKind = "healing"
	ConsumableLightning ConsumableKind = "lightning"
	ConsumableFireball  ConsumableKind = "fireball"
)

// ConsumableComponent - данные расходуемого предмета.
// Логика активации живет в пакете actions, здесь только параметры.
type ConsumableComponent struct {
	Kind   ConsumableKind `json:"kind" yaml:"kind"`
	Amount int            `json:"amount" yaml:"amount"`                     // лечение или урон
	Range  int            `json:"range,omitempty" yaml:"range,omitempty"`   // дальность (lightning)
	Radius int            `json:"radius,omitempty" yaml:"radius,omitempty"` // радиус взрыва (fireball)
}

// --- СУЩНОСТЬ ---

type Entity struct {
	// Идентификация
	ID   EntityID   `json:"id"`
	Type EntityType `json:"type"`
	Name string     `json:"name"`

	Pos Position `json:"pos"`

	Glyph          Glyph       `json:"glyph"`
	BlocksMovement bool        `json:"blocksMovement"`
	RenderOrder    RenderOrder `json:"renderOrder"`

	// Компоненты (Если nil - значит свойство отсутствует)
	Fighter    *FighterComponent    `json:"fighter,omitempty"`
	Inventory  *InventoryComponent  `json:"inventory,omitempty"`
	AI         *AIComponent         `json:"ai,omitempty"`
	Consumable *ConsumableComponent `json:"consumable,omitempty"`
}

// IsActor - сущность умеет сражаться.
func (e *Entity) IsActor() bool {
	return e.Fighter != nil
}

// IsAlive - актор с положительным HP. Предметы живыми не бывают.
func (e *Entity) IsAlive() bool {
	return e.Fighter != nil && e.Fighter.HP > 0
}

// IsItem - предмет, который можно подобрать.
func (e *Entity) IsItem() bool {
	return e.Type == EntityTypeItem
}

// Move сдвигает сущность. Проверки - забота вызывающего.
func (e *Entity) Move(dx, dy int) {
	e.Pos.X += dx
	e.Pos.Y += dy
}

// Die превращает актора в труп: он больше не блокирует клетку,
// рисуется под всеми и не ходит.
func (e *Entity) Die() {
	e.Glyph = MakeGlyph(MakeRGB(191, 0, 0), '%')
	e.BlocksMovement = false
	e.RenderOrder = RenderCorpse
	e.AI = nil
	e.Name = fmt.Sprintf("remains of %s", e.Name)
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s %q at (%d,%d)", e.ID, e.Name, e.Pos.X, e.Pos.Y)
}
