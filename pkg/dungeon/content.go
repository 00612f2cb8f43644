package dungeon

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/reddwarf405/TommysAdventure/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// ActorTemplate определяет шаблон для создания актора
type ActorTemplate struct {
	Name     string     `yaml:"name"`
	Char     string     `yaml:"char"`
	Color    domain.RGB `yaml:"color"`
	HP       int        `yaml:"hp"`
	Defense  int        `yaml:"defense"`
	Power    int        `yaml:"power"`
	Capacity int        `yaml:"capacity"`
	Weight   int        `yaml:"weight"`
}

// ItemTemplate определяет шаблон предмета
type ItemTemplate struct {
	Name       string                     `yaml:"name"`
	Char       string                     `yaml:"char"`
	Color      domain.RGB                 `yaml:"color"`
	Weight     int                        `yaml:"weight"`
	Consumable *domain.ConsumableComponent `yaml:"consumable"`
}

// Content - каталог всего, что может появиться на этаже.
type Content struct {
	Player   ActorTemplate   `yaml:"player"`
	Monsters []ActorTemplate `yaml:"monsters"`
	Items    []ItemTemplate  `yaml:"items"`
}

// DefaultContent - встроенный каталог.
func DefaultContent() (*Content, error) {
	return ParseContent(defaultContent)
}

// LoadContent читает каталог из файла. Пустой путь - встроенный каталог.
func LoadContent(path string) (*Content, error) {
	if path == "" {
		return DefaultContent()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	return ParseContent(raw)
}

func ParseContent(raw []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate проверяет, что из каталога можно собрать игру.
func (c *Content) Validate() error {
	if c.Player.Name == "" || c.Player.HP <= 0 {
		return errors.New("content: player template needs a name and positive hp")
	}
	for _, m := range c.Monsters {
		if m.HP <= 0 {
			return fmt.Errorf("content: monster %q needs positive hp", m.Name)
		}
	}
	for _, it := range c.Items {
		if it.Consumable == nil {
			return fmt.Errorf("content: item %q has no consumable block", it.Name)
		}
	}
	return nil
}

// --- SPAWN ---

func glyphOf(char string, color domain.RGB) domain.Glyph {
	ch := byte('?')
	if char != "" {
		ch = char[0]
	}
	return domain.MakeGlyph(color, ch)
}

// Spawn создает актора из шаблона на заданной позиции
func (t ActorTemplate) Spawn(id domain.EntityID, pos domain.Position) *domain.Entity {
	e := &domain.Entity{
		ID:             id,
		Type:           id.Type(),
		Name:           t.Name,
		Pos:            pos,
		Glyph:          glyphOf(t.Char, t.Color),
		BlocksMovement: true,
		RenderOrder:    domain.RenderActor,
		Fighter: &domain.FighterComponent{
			HP:      t.HP,
			MaxHP:   t.HP,
			Defense: t.Defense,
			Power:   t.Power,
		},
		Inventory: &domain.InventoryComponent{Capacity: t.Capacity},
		AI:        &domain.AIComponent{},
	}
	if e.Type == domain.EntityTypeEnemy {
		e.AI.Kind = domain.AIHostile
		e.AI.IsHostile = true
	}
	return e
}

// Spawn создает предмет из шаблона
func (t ItemTemplate) Spawn(id domain.EntityID, pos domain.Position) *domain.Entity {
	e := &domain.Entity{
		ID:          id,
		Type:        domain.EntityTypeItem,
		Name:        t.Name,
		Pos:         pos,
		Glyph:       glyphOf(t.Char, t.Color),
		RenderOrder: domain.RenderItem,
	}
	if t.Consumable != nil {
		c := *t.Consumable
		e.Consumable = &c
	}
	return e
}

// pickWeighted выбирает индекс по весам. Нулевые веса считаются единицей.
func pickWeighted(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += max(w, 1)
	}
	roll := rng.Intn(total)
	for i, w := range weights {
		roll -= max(w, 1)
		if roll < 0 {
			return i
		}
	}
	return len(weights) - 1
}
