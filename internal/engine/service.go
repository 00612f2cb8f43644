package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/reddwarf405/TommysAdventure/internal/actions"
	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/internal/network"
	"github.com/reddwarf405/TommysAdventure/pkg/dungeon"
	"github.com/reddwarf405/TommysAdventure/pkg/logger"
	"github.com/reddwarf405/TommysAdventure/pkg/utils"

	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

// ReplayStore сохраняет записи завершенных партий.
type ReplayStore interface {
	Save(session *domain.ReplaySession) (string, error)
}

// GameService - реестр живых сессий.
type GameService struct {
	cfg     Config
	content *dungeon.Content
	replays ReplayStore

	Hub *network.Broadcaster

	mu       sync.RWMutex
	sessions map[string]*Session
	created  int
}

// NewService создает сервис. replays может быть nil: тогда реплеи не пишутся.
func NewService(cfg Config, content *dungeon.Content, replays ReplayStore) *GameService {
	return &GameService{
		cfg:      cfg,
		content:  content,
		replays:  replays,
		Hub:      network.NewBroadcaster(),
		sessions: make(map[string]*Session),
	}
}

// CreateSession запускает новую партию. Сид каждой сессии выводится из мастер-сида.
func (s *GameService) CreateSession() (*Session, error) {
	id := utils.GenerateID()

	// Без мастер-сида зерно выводится из ID сессии
	s.mu.Lock()
	s.created++
	seed := utils.SeedFromString(id)
	if s.cfg.Seed != 0 {
		seed = utils.DeriveSeed(s.cfg.Seed, s.created)
	}
	s.mu.Unlock()

	session, err := NewSession(id, s.cfg, s.content, seed)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session, nil
}

func (s *GameService) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// Execute выполняет команду в сессии и рассылает новый снимок подписчику.
// Невозможное действие не считается ошибкой: причина уже в логе снимка.
func (s *GameService) Execute(id string, cmd domain.InternalCommand) error {
	session, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	err := session.Execute(cmd)
	if err != nil && !actions.IsImpossible(err) {
		return err
	}
	s.Publish(session)
	return nil
}

// Publish отправляет снимок сессии ее подписчику.
func (s *GameService) Publish(session *Session) {
	s.Hub.SendTo(session.ID, *session.Snapshot())
}

// CloseSession убирает сессию из реестра и сохраняет реплей.
func (s *GameService) CloseSession(id string) error {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	s.Hub.Unregister(id)

	log := logger.Log.WithFields(logrus.Fields{"component": "service", "session": id})
	if s.replays == nil {
		log.Info("Session closed")
		return nil
	}

	path, err := s.replays.Save(session.Replay())
	if err != nil {
		return fmt.Errorf("save replay for %s: %w", id, err)
	}
	log.WithField("path", path).Info("Session closed, replay saved")
	return nil
}

// CloseAll закрывает все сессии (при остановке сервера).
func (s *GameService) CloseAll() {
	for _, info := range s.Sessions() {
		if err := s.CloseSession(info.ID); err != nil {
			logger.Log.WithError(err).WithField("session", info.ID).Warn("Failed to close session")
		}
	}
}

// Sessions - сводка по всем живым сессиям, по ID.
func (s *GameService) Sessions() []SessionInfo {
	s.mu.RLock()
	list := make([]*Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		list = append(list, session)
	}
	s.mu.RUnlock()

	out := make([]SessionInfo, 0, len(list))
	for _, session := range list {
		out = append(out, session.Info())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- REPLAY ---

// PlayReplay заново проигрывает запись: тот же сид дает тот же мир,
// те же команды - тот же результат.
func PlayReplay(cfg Config, content *dungeon.Content, replay *domain.ReplaySession) (*Session, error) {
	session, err := NewSession(replay.SessionID, cfg, content, replay.Seed)
	if err != nil {
		return nil, fmt.Errorf("replay %s: %w", replay.SessionID, err)
	}

	log := logger.Log.WithFields(logrus.Fields{"component": "replay", "session": replay.SessionID})

	for i, act := range replay.Actions {
		err := session.Execute(domain.InternalCommand{
			Action:  act.Action,
			Token:   act.Token,
			Payload: act.Payload,
		})
		switch {
		case err == nil, actions.IsImpossible(err):
		case errors.Is(err, actions.ErrEscape):
			log.WithField("step", i).Info("Replay reached escape")
			return session, nil
		default:
			return session, fmt.Errorf("replay step %d (%s): %w", i, act.Action, err)
		}
	}

	log.WithFields(logrus.Fields{
		"actions": len(replay.Actions),
		"depth":   session.Depth(),
	}).Info("Replay finished")
	return session, nil
}
