package engine

import (
	"fmt"
	"time"

	"github.com/reddwarf405/TommysAdventure/pkg/dungeon"

	"github.com/caarlos0/env/v11"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. 0 - выбрать случайно при старте.
	Seed int64  `env:"CD_SEED" envDefault:"0"`
	Port string `env:"CD_PORT" envDefault:"8080"`

	// Генерация этажа
	MapWidth           int `env:"CD_MAP_WIDTH" envDefault:"80"`
	MapHeight          int `env:"CD_MAP_HEIGHT" envDefault:"43"`
	MaxRooms           int `env:"CD_MAX_ROOMS" envDefault:"30"`
	RoomMinSize        int `env:"CD_ROOM_MIN_SIZE" envDefault:"6"`
	RoomMaxSize        int `env:"CD_ROOM_MAX_SIZE" envDefault:"10"`
	MaxMonstersPerRoom int `env:"CD_MAX_MONSTERS_PER_ROOM" envDefault:"2"`
	MaxItemsPerRoom    int `env:"CD_MAX_ITEMS_PER_ROOM" envDefault:"2"`

	// ContentPath - YAML-каталог монстров и предметов. Пусто - встроенный.
	ContentPath string `env:"CD_CONTENT_PATH"`
	ReplayDir   string `env:"CD_REPLAY_DIR" envDefault:"replays"`
	FOVRadius   int    `env:"CD_FOV_RADIUS" envDefault:"8"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	p := dungeon.DefaultParams()
	return Config{
		Seed:               time.Now().UnixNano(),
		Port:               "8080",
		MapWidth:           p.Width,
		MapHeight:          p.Height,
		MaxRooms:           p.MaxRooms,
		RoomMinSize:        p.RoomMinSize,
		RoomMaxSize:        p.RoomMaxSize,
		MaxMonstersPerRoom: p.MaxMonstersPerRoom,
		MaxItemsPerRoom:    p.MaxItemsPerRoom,
		ReplayDir:          "replays",
		FOVRadius:          8,
	}
}

// LoadConfig читает конфиг из окружения. Нулевой сид заменяется случайным.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// DungeonParams - параметры генератора этажа.
func (c Config) DungeonParams() dungeon.Params {
	return dungeon.Params{
		Width:              c.MapWidth,
		Height:             c.MapHeight,
		MaxRooms:           c.MaxRooms,
		RoomMinSize:        c.RoomMinSize,
		RoomMaxSize:        c.RoomMaxSize,
		MaxMonstersPerRoom: c.MaxMonstersPerRoom,
		MaxItemsPerRoom:    c.MaxItemsPerRoom,
	}
}
