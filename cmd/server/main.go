package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/reddwarf405/TommysAdventure/internal/engine"
	"github.com/reddwarf405/TommysAdventure/internal/infrastructure/storage"
	"github.com/reddwarf405/TommysAdventure/internal/server"
	"github.com/reddwarf405/TommysAdventure/pkg/dungeon"
	"github.com/reddwarf405/TommysAdventure/pkg/logger"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Флаги перекрывают окружение
	var seed int64
	var replayPath string
	flag.Int64Var(&seed, "seed", 0, "Master world seed (0 keeps CD_SEED or picks a random one)")
	flag.StringVar(&replayPath, "replay", "", "Path to a .tarp replay file to simulate")
	flag.Parse()

	cfg, err := engine.LoadConfig()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	content, err := dungeon.LoadContent(cfg.ContentPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load content")
	}

	logger.Log.Info("Starting Tommy's Adventure...")

	replays, err := storage.NewReplayService(cfg.ReplayDir)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to prepare replay storage")
	}

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		runReplay(cfg, content, replays, replayPath)
		return
	}

	logger.Log.WithField("seed", cfg.Seed).Info("Using master seed")

	// 2. Ядро и транспорт
	gameService := engine.NewService(cfg, content, replays)
	srv := server.New(gameService, cfg.Port)

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Log.WithError(err).Error("Server error")
	}

	logger.Log.Info("Shutting down...")
	// Сохраняем реплеи всех активных сессий
	gameService.CloseAll()
	logger.Log.Info("Done.")
}

func runReplay(cfg engine.Config, content *dungeon.Content, replays *storage.ReplayService, path string) {
	logger.Log.WithField("path", path).Info("Mode: Replay Simulation")

	rec, err := replays.Load(path)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load replay")
	}

	session, err := engine.PlayReplay(cfg, content, rec)
	if err != nil {
		logger.Log.WithError(err).Error("Replay diverged")
	}
	if session == nil {
		os.Exit(1)
	}

	logger.Log.WithFields(logrus.Fields{
		"session":  session.ID,
		"depth":    session.Depth(),
		"tick":     session.Tick(),
		"gameOver": session.GameOver(),
	}).Info("Replay complete")
}
