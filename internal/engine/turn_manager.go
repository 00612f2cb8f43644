package engine

import (
	"container/heap"

	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/pkg/logger"

	"github.com/sirupsen/logrus"
)

// TurnManager manages the priority queue of actor turns.
type TurnManager struct {
	queue   TurnQueue
	itemMap map[domain.EntityID]*TurnItem
	seq     int
}

func NewTurnManager() *TurnManager {
	return &TurnManager{
		queue:   make(TurnQueue, 0),
		itemMap: make(map[domain.EntityID]*TurnItem),
	}
}

// AddEntity registers an actor in the turn system. Entities without AI are ignored.
func (tm *TurnManager) AddEntity(e *domain.Entity) {
	if e == nil || e.AI == nil {
		return
	}
	if _, ok := tm.itemMap[e.ID]; ok {
		return
	}

	item := &TurnItem{
		Value:    e,
		Priority: e.AI.NextActionTick,
		Seq:      tm.seq,
	}
	tm.seq++

	heap.Push(&tm.queue, item)
	tm.itemMap[e.ID] = item

	logger.Log.WithFields(logrus.Fields{
		"component": "turn_manager",
		"entity_id": e.ID.String(),
		"tick":      item.Priority,
	}).Debug("Entity added to TurnManager")
}

// UpdatePriority updates an entity's position in the queue (e.g. after they acted).
func (tm *TurnManager) UpdatePriority(entityID domain.EntityID, newTick int) {
	if item, ok := tm.itemMap[entityID]; ok {
		tm.queue.Update(item, newTick)
	}
}

// PeekNext returns the entity whose turn is next, without removing them.
func (tm *TurnManager) PeekNext() *TurnItem {
	if tm.queue.Len() == 0 {
		return nil
	}
	return tm.queue[0]
}

// RemoveEntity removes an entity from the turn system (e.g. death).
func (tm *TurnManager) RemoveEntity(entityID domain.EntityID) {
	if item, ok := tm.itemMap[entityID]; ok {
		heap.Remove(&tm.queue, item.Index)
		delete(tm.itemMap, entityID)
	}
}

// Has reports whether the entity is queued.
func (tm *TurnManager) Has(entityID domain.EntityID) bool {
	_, ok := tm.itemMap[entityID]
	return ok
}

func (tm *TurnManager) Len() int {
	return tm.queue.Len()
}

// Rebuild очищает очередь и ставит в нее всех живых акторов с AI.
// Порядок постановки задает порядок ходов при равном тике.
func (tm *TurnManager) Rebuild(entities []*domain.Entity) {
	tm.queue = make(TurnQueue, 0, len(entities))
	tm.itemMap = make(map[domain.EntityID]*TurnItem, len(entities))
	tm.seq = 0
	for _, e := range entities {
		if e.IsAlive() {
			tm.AddEntity(e)
		}
	}
}

// DebugDump возвращает снимок очереди для отладки
func (tm *TurnManager) DebugDump() []map[string]interface{} {
	// Инициализируем как пустой слайс, а не nil. Тогда в JSON это будет "[]", а не "null"
	result := make([]map[string]interface{}, 0)

	for _, item := range tm.queue {
		result = append(result, map[string]interface{}{
			"id":       item.Value.ID,
			"name":     item.Value.Name,
			"priority": item.Priority,
			"index":    item.Index,
		})
	}
	return result
}
