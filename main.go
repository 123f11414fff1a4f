package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a json, yaml or toml config file")
	flag.Parse()

	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if _, statErr := os.Stat(*configPath); !os.IsNotExist(statErr) {
			utils.NewLogger("error", "").Fatal("invalid configuration", zap.Error(err))
		}
		config, err = utils.LoadConfig("")
		if err != nil {
			utils.NewLogger("error", "").Fatal("invalid configuration", zap.Error(err))
		}
	}

	logger := utils.NewLogger(config.LogLevel, config.LogFile)
	defer logger.Sync()

	g, err := initializeGame(config, logger, os.Stdout)
	if err != nil {
		logger.Fatal("failed to initialize game", zap.Error(err))
	}
	logger.Info("game started",
		zap.Int("width", g.engine.Width()),
		zap.Int("height", g.engine.Height()),
		zap.String("seed_mode", config.SeedMode),
		zap.Int("population", g.engine.Population()),
	)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(max(config.FrameRate, time.Millisecond))
	defer ticker.Stop()

	for {
		running, err := g.tick()
		if err != nil {
			logger.Error("game stopped", zap.Error(err))
			return
		}
		if !running {
			return
		}

		select {
		case <-sigChan:
			logger.Info("shutting down",
				zap.Uint64("total_generations", g.stats.TotalGenerations),
				zap.Duration("runtime", g.stats.Runtime()),
				zap.Float64("average_population", g.stats.AveragePopulation),
			)
			return
		case <-ticker.C:
		}
	}
}
