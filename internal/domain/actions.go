package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove   // Bump: атака, если в клетке кто-то есть
	ActionStep   // Чистое перемещение
	ActionAttack // Чистая атака
	ActionPickup
	ActionUse
	ActionDrop
	ActionWait
	ActionStairs
	ActionEscape
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":   ActionInit,
	"MOVE":   ActionMove,
	"STEP":   ActionStep,
	"ATTACK": ActionAttack,
	"PICKUP": ActionPickup,
	"USE":    ActionUse,
	"DROP":   ActionDrop,
	"WAIT":   ActionWait,
	"STAIRS": ActionStairs,
	"ESCAPE": ActionEscape,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:   "INIT",
	ActionMove:   "MOVE",
	ActionStep:   "STEP",
	ActionAttack: "ATTACK",
	ActionPickup: "PICKUP",
	ActionUse:    "USE",
	ActionDrop:   "DROP",
	ActionWait:   "WAIT",
	ActionStairs: "STAIRS",
	ActionEscape: "ESCAPE",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
