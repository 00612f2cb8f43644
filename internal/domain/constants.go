package domain

import "strings"

// EntityType - тип сущности
type EntityType uint8

const (
	EntityTypeUnknown EntityType = iota
	EntityTypePlayer
	EntityTypeEnemy
	EntityTypeItem
)

var entityTypeToString = map[EntityType]string{
	EntityTypePlayer: "PLAYER",
	EntityTypeEnemy:  "ENEMY",
	EntityTypeItem:   "ITEM",
}

var entityTypeStringToType = map[string]EntityType{
	"PLAYER": EntityTypePlayer,
	"ENEMY":  EntityTypeEnemy,
	"ITEM":   EntityTypeItem,
}

// String возвращает строковое представление (для логов и дебага)
func (e EntityType) String() string {
	if val, ok := entityTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityType конвертирует строку в Enum (нужно для загрузки шаблонов)
func ParseEntityType(s string) EntityType {
	if val, ok := entityTypeStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return EntityTypeUnknown
}

// MarshalText / UnmarshalText - чтобы в YAML/JSON был "ENEMY", а не 2.
func (e EntityType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EntityType) UnmarshalText(text []byte) error {
	*e = ParseEntityType(string(text))
	return nil
}

// RenderOrder - порядок отрисовки. Меньшее значение рисуется раньше (ниже).
type RenderOrder uint8

const (
	RenderCorpse RenderOrder = iota
	RenderItem
	RenderActor
)

// Стоимость действий в тиках (Time Units)
const (
	TimeCostMove   = 100
	TimeCostAttack = 80
	TimeCostWait   = 50
	TimeCostPickup = 50
	TimeCostDrop   = 30
	TimeCostUse    = 60
	TimeCostStairs = 100
)

// Параметры восприятия
const (
	VisionRadius = 8
	AggroRadius  = 10
)

// MessageTag - цветовая метка записи в игровом логе.
type MessageTag string

const (
	TagNone            MessageTag = ""
	TagWelcome         MessageTag = "WELCOME"
	TagPlayerAttack    MessageTag = "PLAYER_ATTACK"
	TagEnemyAttack     MessageTag = "ENEMY_ATTACK"
	TagPlayerDie       MessageTag = "PLAYER_DIE"
	TagEnemyDie        MessageTag = "ENEMY_DIE"
	TagImpossible      MessageTag = "IMPOSSIBLE"
	TagHealthRecovered MessageTag = "HEALTH_RECOVERED"
	TagDescend         MessageTag = "DESCEND"
	TagInfo            MessageTag = "INFO"
)

var messageTagColors = map[MessageTag]RGB{
	TagWelcome:         MakeRGB(32, 160, 255),
	TagPlayerAttack:    MakeRGB(224, 224, 224),
	TagEnemyAttack:     MakeRGB(255, 192, 192),
	TagPlayerDie:       MakeRGB(255, 48, 48),
	TagEnemyDie:        MakeRGB(255, 160, 48),
	TagImpossible:      MakeRGB(128, 128, 128),
	TagHealthRecovered: MakeRGB(0, 255, 0),
	TagDescend:         MakeRGB(159, 63, 255),
	TagInfo:            MakeRGB(255, 255, 255),
}

// Color возвращает цвет метки; для пустой метки - белый.
func (t MessageTag) Color() RGB {
	if c, ok := messageTagColors[t]; ok {
		return c
	}
	return MakeRGB(255, 255, 255)
}
