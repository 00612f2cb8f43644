package engine

import "testing"

func TestLoadConfig(t *testing.T) {
	t.Setenv("CD_SEED", "1234")
	t.Setenv("CD_PORT", "9090")
	t.Setenv("CD_MAP_WIDTH", "40")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Seed != 1234 || cfg.Port != "9090" {
		t.Errorf("Got seed %d port %s", cfg.Seed, cfg.Port)
	}

	p := cfg.DungeonParams()
	if p.Width != 40 || p.Height != 43 || p.MaxRooms != 30 {
		t.Errorf("Got params %+v", p)
	}
	if cfg.ReplayDir != "replays" || cfg.FOVRadius != 8 {
		t.Errorf("Defaults not applied: %+v", cfg)
	}
}

func TestLoadConfig_RandomSeed(t *testing.T) {
	t.Setenv("CD_SEED", "0")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Seed == 0 {
		t.Error("Zero seed should be replaced with a random one")
	}
}

func TestLoadConfig_BadValue(t *testing.T) {
	t.Setenv("CD_MAP_WIDTH", "wide")

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error for non-numeric width")
	}
}
