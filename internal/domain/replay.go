package domain

import "encoding/json"

// ReplayAction - это запись одного действия извне (от игрока)
type ReplayAction struct {
	Tick    int             `json:"tick"`
	Token   EntityID        `json:"token"`   // Кто сделал
	Action  ActionType      `json:"action"`  // Что сделал
	Payload json.RawMessage `json:"payload"` // С какими параметрами
}

// ReplaySession - полная запись партии.
// Мир восстанавливается из Seed, поэтому хранить карты не нужно.
type ReplaySession struct {
	SessionID string         `json:"sessionId"`
	Depth     int            `json:"depth"` // Этаж на момент сохранения
	Seed      int64          `json:"seed"`  // Зерно генерации мира и рандома
	Timestamp int64          `json:"timestamp"`
	Actions   []ReplayAction `json:"actions"`
}

// Record добавляет действие в запись.
func (r *ReplaySession) Record(tick int, cmd InternalCommand) {
	r.Actions = append(r.Actions, ReplayAction{
		Tick:    tick,
		Token:   cmd.Token,
		Action:  cmd.Action,
		Payload: cmd.Payload,
	})
}
