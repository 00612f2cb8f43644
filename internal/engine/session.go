package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/reddwarf405/TommysAdventure/internal/actions"
	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/internal/engine/handlers"
	"github.com/reddwarf405/TommysAdventure/internal/systems"
	"github.com/reddwarf405/TommysAdventure/pkg/dungeon"
	"github.com/reddwarf405/TommysAdventure/pkg/logger"

	"github.com/sirupsen/logrus"
)

// maxNPCTurns ограничивает один проход NPC между ходами игрока.
const maxNPCTurns = 10000

var ErrNoPlayer = errors.New("session has no player")

// Session - одна партия одного игрока: этаж, очередь ходов, лог и запись реплея.
// Сессию ведет одна горутина; мьютекс нужен только для чтения снаружи (debug).
type Session struct {
	ID string

	mu sync.Mutex

	cfg     Config
	content *dungeon.Content
	seed    int64
	rng     *rand.Rand
	ids     *domain.IDAllocator

	Map    *domain.GameMap
	Player *domain.Entity
	Log    *MessageLog

	turns    *TurnManager
	decoders handlers.Registry
	replay   *domain.ReplaySession

	depth       int
	currentTick int
	playerTick  int
	closed      bool

	log *logrus.Entry
}

// NewSession создает партию и генерирует первый этаж.
func NewSession(id string, cfg Config, content *dungeon.Content, seed int64) (*Session, error) {
	s := &Session{
		ID:       id,
		cfg:      cfg,
		content:  content,
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)),
		ids:      &domain.IDAllocator{},
		Log:      NewMessageLog(id),
		turns:    NewTurnManager(),
		decoders: handlers.Default(),
		replay: &domain.ReplaySession{
			SessionID: id,
			Seed:      seed,
			Timestamp: time.Now().Unix(),
			Actions:   make([]domain.ReplayAction, 0),
		},
		log: logger.Log.WithFields(logrus.Fields{
			"component": "session",
			"session":   id,
		}),
	}

	s.Player = dungeon.CreatePlayer(content, s.ids)
	if err := s.GenerateFloor(); err != nil {
		return nil, err
	}

	s.Log.Add(fmt.Sprintf("Welcome to the dungeon, %s!", s.Player.Name), domain.TagWelcome)
	s.log.WithField("seed", seed).Info("Session started")
	return s, nil
}

// --- КОМАНДЫ ---

// Execute декодирует и выполняет команду игрока. INIT ничего не делает.
func (s *Session) Execute(cmd domain.InternalCommand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cmd.Action == domain.ActionInit {
		return nil
	}

	action, err := s.decoders.Decode(handlers.Context{Actor: s.Player}, cmd)
	if err != nil {
		return err
	}

	cmd.Token = s.Player.ID
	s.replay.Record(s.currentTick, cmd)

	return s.submit(action)
}

// Submit выполняет действие игрока и прокручивает ходы NPC до следующего хода игрока.
// Возвращает *actions.ImpossibleError (время не идет), actions.ErrEscape или ошибку движка.
func (s *Session) Submit(action actions.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submit(action)
}

func (s *Session) submit(action actions.Action) error {
	if s.Player == nil {
		return ErrNoPlayer
	}

	// 1. Ход игрока
	err := actions.New(s.Player, action).Perform(s.actionContext())
	if errors.Is(err, actions.ErrEscape) {
		s.closed = true
		return err
	}
	if reason, ok := actions.ReasonOf(err); ok {
		s.Log.Add(reason, domain.TagImpossible)
		return err
	}
	if err != nil {
		return fmt.Errorf("player turn: %w", err)
	}

	// 2. Время игрока. После смерти AI у трупа нет, тик остается прежним.
	if s.Player.AI != nil {
		s.playerTick = s.Player.AI.NextActionTick
	}
	s.turns.UpdatePriority(s.Player.ID, s.playerTick)

	// 3. Ходы NPC, пока снова не придет очередь игрока
	s.runNPCTurns()

	// 4. Поле зрения
	s.updateFOV()
	return nil
}

// runNPCTurns крутит очередь, пока первым не окажется игрок.
func (s *Session) runNPCTurns() {
	for n := 0; n < maxNPCTurns; n++ {
		if !s.Player.IsAlive() {
			s.turns.RemoveEntity(s.Player.ID)
			return
		}

		item := s.turns.PeekNext()
		if item == nil || item.Value == s.Player {
			if item != nil {
				s.currentTick = item.Priority
			}
			return
		}

		npc := item.Value
		s.currentTick = item.Priority

		// Убитые во время хода игрока покидают очередь
		if !npc.IsAlive() || npc.AI == nil || !s.Map.Contains(npc) {
			s.turns.RemoveEntity(npc.ID)
			continue
		}

		s.processAITurn(npc)
		if npc.AI != nil {
			s.turns.UpdatePriority(npc.ID, npc.AI.NextActionTick)
		} else {
			s.turns.RemoveEntity(npc.ID)
		}
	}
	s.log.WithField("limit", maxNPCTurns).Error("NPC turn limit reached")
}

// --- ЭТАЖИ ---

// GenerateFloor строит следующий этаж и переносит туда игрока.
// Вызывается при создании сессии и из TakeStairs во время Submit.
func (s *Session) GenerateFloor() error {
	m, err := dungeon.Generate(s.cfg.DungeonParams(), s.content, s.depth+1, s.Player, s.rng, s.ids)
	if err != nil {
		return fmt.Errorf("session %s: %w", s.ID, err)
	}

	s.depth++
	m.Depth = s.depth
	s.Map = m
	s.replay.Depth = s.depth

	// Игрок встает в очередь первым: при равном тике он ходит раньше
	entities := m.Entities()
	ordered := make([]*domain.Entity, 0, len(entities))
	ordered = append(ordered, s.Player)
	for _, e := range entities {
		if e == s.Player {
			continue
		}
		if e.AI != nil {
			e.AI.NextActionTick = s.playerTick
		}
		ordered = append(ordered, e)
	}
	s.turns.Rebuild(ordered)

	s.updateFOV()

	s.log.WithFields(logrus.Fields{
		"depth":    s.depth,
		"entities": len(entities),
	}).Info("Floor generated")
	return nil
}

func (s *Session) updateFOV() {
	radius := s.cfg.FOVRadius
	if radius <= 0 {
		radius = domain.VisionRadius
	}
	systems.ComputeFOV(s.Map, s.Player.Pos, radius)
}

func (s *Session) actionContext() actions.Context {
	return actions.Context{
		Map:    s.Map,
		Log:    s.Log,
		Floors: s,
		IsPlayer: func(e *domain.Entity) bool {
			return e == s.Player
		},
	}
}

// --- СОСТОЯНИЕ ---

func (s *Session) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.depth
}

func (s *Session) Tick() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTick
}

func (s *Session) Seed() int64 { return s.seed }

// GameOver - игрок погиб.
func (s *Session) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.Player.IsAlive()
}

// Closed - игрок вышел через Escape.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Replay возвращает копию записи партии.
func (s *Session) Replay() *domain.ReplaySession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := *s.replay
	out.Actions = make([]domain.ReplayAction, len(s.replay.Actions))
	copy(out.Actions, s.replay.Actions)
	return &out
}

// SessionInfo - краткая сводка для /debug.
type SessionInfo struct {
	ID       string                   `json:"id"`
	Depth    int                      `json:"depth"`
	Tick     int                      `json:"tick"`
	Seed     int64                    `json:"seed"`
	PlayerHP int                      `json:"playerHp"`
	Actions  int                      `json:"actions"`
	Entities int                      `json:"entities"`
	Queue    []map[string]interface{} `json:"queue"`
}

func (s *Session) Info() SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := SessionInfo{
		ID:       s.ID,
		Depth:    s.depth,
		Tick:     s.currentTick,
		Seed:     s.seed,
		Actions:  len(s.replay.Actions),
		Entities: len(s.Map.Entities()),
		Queue:    s.turns.DebugDump(),
	}
	if s.Player.Fighter != nil {
		info.PlayerHP = s.Player.Fighter.HP
	}
	return info
}
