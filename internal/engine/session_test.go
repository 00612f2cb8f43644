package engine

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/reddwarf405/TommysAdventure/internal/actions"
	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/pkg/api"
)

func TestNewSession(t *testing.T) {
	s, err := NewSession("fresh", testConfig(), testContent(t), 42)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	if s.Depth() != 1 || s.Map.Depth != 1 {
		t.Errorf("Got depth %d (map %d), want 1", s.Depth(), s.Map.Depth)
	}
	if !s.Map.Contains(s.Player) {
		t.Fatal("Player should be on the first floor")
	}
	if !s.Map.IsVisible(s.Player.Pos.X, s.Player.Pos.Y) {
		t.Error("FOV should be computed for the start position")
	}
	if !s.turns.Has(s.Player.ID) {
		t.Error("Player should be in the turn queue")
	}

	logs := s.Log.Drain()
	if len(logs) != 1 || logs[0].Type != string(domain.TagWelcome) {
		t.Errorf("Got logs %+v, want one welcome message", logs)
	}
}

func TestSubmit_ImpossibleDoesNotAdvanceTime(t *testing.T) {
	s := newTestSession(t, 1)
	s.Player.Pos = domain.Position{X: 1, Y: 1}
	far := bot(8, 8, 8, 0, 2)
	s.useArena(t, 10, 10, far)

	err := s.Submit(actions.Move{DX: -1, DY: 0})
	if !actions.IsImpossible(err) {
		t.Fatalf("Got %v, want Impossible", err)
	}

	if s.Player.AI.NextActionTick != 0 || s.Tick() != 0 {
		t.Errorf("Time advanced: player tick %d, session tick %d", s.Player.AI.NextActionTick, s.Tick())
	}
	if far.Pos != (domain.Position{X: 8, Y: 8}) {
		t.Errorf("NPC moved during an impossible turn: %v", far.Pos)
	}

	logs := s.Log.Drain()
	if len(logs) != 1 || logs[0].Text != "That way is blocked." || logs[0].Type != string(domain.TagImpossible) {
		t.Errorf("Got logs %+v, want one impossible message", logs)
	}
}

func TestSubmit_NPCsActUntilPlayerTurn(t *testing.T) {
	s := newTestSession(t, 1)
	s.Player.Pos = domain.Position{X: 5, Y: 5}
	b := bot(7, 5, 8, 0, 4)
	s.useArena(t, 12, 12, b)

	if err := s.Submit(actions.Bump{DX: 1, DY: 0}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if s.Player.Pos != (domain.Position{X: 6, Y: 5}) {
		t.Fatalf("Got player at %v, want (6,5)", s.Player.Pos)
	}

	// Бот ходит в тики 0 и 80, игрок снова на 100: две атаки по 4-2=2
	if hp := s.Player.Fighter.HP; hp != 26 {
		t.Errorf("Got player HP %d, want 26", hp)
	}
	if next := s.turns.PeekNext(); next.Value != s.Player {
		t.Errorf("Player should be next, got %s", next.Value.Name)
	}
	if s.Tick() != 100 {
		t.Errorf("Got tick %d, want 100", s.Tick())
	}

	got := drainTexts(s)
	if !hasText(got, "Security Bot attacks Tommy for 2 hit points.") {
		t.Errorf("Got logs %v, want the bot attack", got)
	}
}

func TestSubmit_KilledNPCLeavesQueue(t *testing.T) {
	s := newTestSession(t, 1)
	s.Player.Pos = domain.Position{X: 5, Y: 5}
	victim := bot(6, 5, 1, 0, 2)
	s.useArena(t, 10, 10, victim)

	if err := s.Submit(actions.MeleeAttack{DX: 1, DY: 0}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if victim.IsAlive() || victim.BlocksMovement {
		t.Error("Victim should be a corpse")
	}
	if s.turns.Has(victim.ID) {
		t.Error("Corpse should leave the turn queue")
	}
	if !s.Map.Contains(victim) {
		t.Error("Corpse stays on the map")
	}
	if got := drainTexts(s); !hasText(got, "Security Bot is dead!") {
		t.Errorf("Got logs %v, want death message", got)
	}
}

func TestSubmit_PlayerDeath(t *testing.T) {
	s := newTestSession(t, 1)
	s.Player.Pos = domain.Position{X: 5, Y: 5}
	s.Player.Fighter.SetHP(1)
	killer := bot(6, 5, 8, 0, 10)
	s.useArena(t, 10, 10, killer)

	if err := s.Submit(actions.Wait{}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if !s.GameOver() {
		t.Fatal("Player should be dead")
	}
	if got := drainTexts(s); !hasText(got, "You died!") {
		t.Errorf("Got logs %v, want player death message", got)
	}
	if snap := s.Snapshot(); snap.Type != api.ResponseGameOver {
		t.Errorf("Got snapshot type %s, want GAME_OVER", snap.Type)
	}

	// Мертвый может только выйти
	err := s.Submit(actions.Wait{})
	if reason, _ := actions.ReasonOf(err); reason != "You are dead." {
		t.Errorf("Got %v, want 'You are dead.'", err)
	}
	if err := s.Submit(actions.Escape{}); !errors.Is(err, actions.ErrEscape) {
		t.Errorf("Got %v, want ErrEscape", err)
	}
}

func TestSubmit_Escape(t *testing.T) {
	s := newTestSession(t, 1)

	err := s.Submit(actions.Escape{})
	if !errors.Is(err, actions.ErrEscape) {
		t.Fatalf("Got %v, want ErrEscape", err)
	}
	if !s.Closed() {
		t.Error("Session should be closed after escape")
	}
}

func TestSubmit_TakeStairs(t *testing.T) {
	s := newTestSession(t, 3)
	oldMap := s.Map
	s.Player.Pos = oldMap.UpStairs

	if err := s.Submit(actions.TakeStairs{}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if s.Depth() != 2 || s.Map == oldMap || s.Map.Depth != 2 {
		t.Fatalf("Got depth %d, want a fresh floor 2", s.Depth())
	}
	if !s.Map.Contains(s.Player) {
		t.Error("Player should be re-homed on the new floor")
	}
	if got := drainTexts(s); !hasText(got, "You ascend the staircase.") {
		t.Errorf("Got logs %v, want stairs message", got)
	}
	for _, e := range s.Map.Actors() {
		if e != s.Player && !s.turns.Has(e.ID) {
			t.Errorf("Monster %s is missing from the queue", e.ID)
		}
	}
}

func TestExecute_RecordsReplay(t *testing.T) {
	s := newTestSession(t, 1)

	cmds := []domain.InternalCommand{
		{Action: domain.ActionInit},
		{Action: domain.ActionWait},
		{Action: domain.ActionMove, Payload: json.RawMessage(`{"dx":0,"dy":0}`)},
		{Action: domain.ActionStairs},
	}
	for _, cmd := range cmds {
		_ = s.Execute(cmd)
	}

	rec := s.Replay()
	// INIT не пишется, неверный payload не пишется, невозможное действие пишется
	if len(rec.Actions) != 2 {
		t.Fatalf("Got %d recorded actions, want 2", len(rec.Actions))
	}
	if rec.Actions[0].Action != domain.ActionWait || rec.Actions[0].Token != s.Player.ID {
		t.Errorf("Got first action %+v", rec.Actions[0])
	}
	if rec.Seed != 1 || rec.SessionID != s.ID {
		t.Errorf("Got replay header %+v", rec)
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestSession(t, 1)
	s.Player.Pos = domain.Position{X: 2, Y: 2}
	hidden := bot(8, 8, 8, 0, 2)
	seen := bot(3, 2, 8, 0, 2)
	s.useArena(t, 12, 12, hidden, seen)

	// Стена между игроком и дальним ботом
	for y := 1; y < 11; y++ {
		s.Map.SetTile(6, y, domain.TileWall)
	}
	s.updateFOV()
	s.Log.Add("hello", domain.TagInfo)

	snap := s.Snapshot()
	if snap.Type != api.ResponseUpdate || snap.Depth != 1 || snap.Grid.Width != 12 {
		t.Errorf("Got header %+v", snap)
	}

	ids := map[string]bool{}
	for _, e := range snap.Entities {
		ids[e.ID] = true
		if e.ID == entityIDString(s.Player.ID) && e.Inventory == nil {
			t.Error("Player view should include inventory")
		}
		if e.ID == entityIDString(seen.ID) && e.Inventory != nil {
			t.Error("Other actors should not expose inventory")
		}
	}
	if !ids[entityIDString(seen.ID)] || ids[entityIDString(hidden.ID)] {
		t.Errorf("Got entities %v, want only the visible bot and the player", ids)
	}
	if len(snap.Logs) != 1 || snap.Logs[0].Text != "hello" {
		t.Errorf("Got logs %+v", snap.Logs)
	}
	if len(s.Snapshot().Logs) != 0 {
		t.Error("Logs should be drained by the first snapshot")
	}

	for _, tile := range snap.Map {
		if !s.Map.IsExplored(tile.X, tile.Y) {
			t.Fatalf("Unexplored tile (%d,%d) leaked into snapshot", tile.X, tile.Y)
		}
	}
}

func TestPlayReplay_Deterministic(t *testing.T) {
	cfg := testConfig()
	content := testContent(t)

	live, err := NewSession("replayed", cfg, content, 99)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	moves := []string{
		`{"dx":1,"dy":0}`, `{"dx":1,"dy":0}`, `{"dx":0,"dy":1}`,
		`{"dx":-1,"dy":0}`, `{"dx":0,"dy":-1}`, `{"dx":1,"dy":1}`,
	}
	for _, p := range moves {
		_ = live.Execute(domain.InternalCommand{Action: domain.ActionMove, Payload: json.RawMessage(p)})
		_ = live.Execute(domain.InternalCommand{Action: domain.ActionWait})
	}
	_ = live.Execute(domain.InternalCommand{Action: domain.ActionPickup})

	replayed, err := PlayReplay(cfg, content, live.Replay())
	if err != nil {
		t.Fatalf("PlayReplay failed: %v", err)
	}

	if replayed.Player.Pos != live.Player.Pos {
		t.Errorf("Got replayed position %v, want %v", replayed.Player.Pos, live.Player.Pos)
	}
	if replayed.Tick() != live.Tick() || replayed.Player.Fighter.HP != live.Player.Fighter.HP {
		t.Errorf("Replay diverged: tick %d/%d, hp %d/%d",
			replayed.Tick(), live.Tick(), replayed.Player.Fighter.HP, live.Player.Fighter.HP)
	}

	a, b := live.Log.History(), replayed.Log.History()
	if len(a) != len(b) {
		t.Fatalf("Got %d replayed log entries, want %d", len(b), len(a))
	}
	for i := range a {
		if a[i].Text != b[i].Text {
			t.Errorf("Log %d: got %q, want %q", i, b[i].Text, a[i].Text)
		}
	}
}

func TestHostileAI(t *testing.T) {
	s := newTestSession(t, 1)
	s.Player.Pos = domain.Position{X: 5, Y: 5}
	near := bot(6, 6, 8, 0, 2)
	chaser := bot(5, 8, 8, 0, 2)
	idle := bot(1, 1, 8, 0, 2)
	idle.AI.Kind = ""
	s.useArena(t, 12, 12, near, chaser, idle)

	tests := []struct {
		name string
		npc  *domain.Entity
		want actions.Action
	}{
		{"Adjacent attacks", near, actions.MeleeAttack{DX: -1, DY: -1}},
		{"In range chases", chaser, actions.Bump{DX: 0, DY: -1}},
		{"Not hostile waits", idle, actions.Wait{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HostileAI(s.Map, tt.npc, s.Player); got != tt.want {
				t.Errorf("Got %#v, want %#v", got, tt.want)
			}
		})
	}
}
