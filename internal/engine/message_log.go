package engine

import (
	"fmt"
	"time"

	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/pkg/api"
	"github.com/reddwarf405/TommysAdventure/pkg/logger"

	"github.com/sirupsen/logrus"
)

// MessageLog - игровой лог сессии. Новые записи копятся до следующего Drain.
type MessageLog struct {
	sessionID string
	seq       int
	history   []api.LogEntry
	pending   []api.LogEntry
}

func NewMessageLog(sessionID string) *MessageLog {
	return &MessageLog{sessionID: sessionID}
}

// Add добавляет запись в лог и дублирует ее в logrus.
func (l *MessageLog) Add(text string, tag domain.MessageTag) {
	l.seq++
	entry := api.LogEntry{
		ID:        fmt.Sprintf("%s_%d", l.sessionID, l.seq),
		Text:      text,
		Type:      string(tag),
		Color:     tag.Color().Hex(),
		Timestamp: time.Now().UnixMilli(),
	}
	l.history = append(l.history, entry)
	l.pending = append(l.pending, entry)

	logger.Log.WithFields(logrus.Fields{
		"session":   l.sessionID,
		"component": "game_log",
		"log_type":  entry.Type,
	}).Info(text)
}

// Drain отдает записи, накопленные с прошлого вызова, и очищает очередь.
func (l *MessageLog) Drain() []api.LogEntry {
	out := l.pending
	l.pending = nil
	return out
}

// History - копия всех записей сессии.
func (l *MessageLog) History() []api.LogEntry {
	out := make([]api.LogEntry, len(l.history))
	copy(out, l.history)
	return out
}

func (l *MessageLog) Len() int {
	return len(l.history)
}
