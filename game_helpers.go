package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// seedFor builds the initial pattern selected by config.SeedMode
func seedFor(config utils.Config) model.SeedFunc {
	randomSeed := func() model.SeedFunc {
		seed := config.RandomSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return model.RandomSeed(config.RandomDensity, rand.NewSource(seed))
	}

	switch config.SeedMode {
	case utils.SeedModeRandom:
		return randomSeed()
	case utils.SeedModePattern:
		patterns := model.PatternSeed(config.Width, model.InterestingPatterns(config.Width, config.Height)...)
		return model.OverlaySeed(patterns, randomSeed())
	default:
		return model.DefaultSeed
	}
}

// game holds everything one run of the driver needs between frames
type game struct {
	config   utils.Config
	engine   *model.Engine
	history  *model.History
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	logger   *zap.Logger
	out      io.Writer

	stagnantCount int
	lastFrameTime time.Time
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, logger *zap.Logger, out io.Writer) (*game, error) {
	engine, err := model.NewEngine(config.Width, config.Height,
		model.WithSeed(seedFor(config)),
		model.WithWorkers(config.Workers),
		model.WithLogger(logger),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create engine")
	}

	return &game{
		config:        config,
		engine:        engine,
		history:       model.NewHistory(model.DefaultHistorySize),
		renderer:      model.NewTerminalRenderer(out),
		stats:         utils.NewStats(),
		logger:        logger,
		out:           out,
		lastFrameTime: time.Now(),
	}, nil
}

// tick renders the current generation, handles restarts and advances once.
// It returns false when the run is over.
func (g *game) tick() (bool, error) {
	frameStart := time.Now()
	if err := g.renderer.Clear(); err != nil {
		g.logger.Warn("failed to clear terminal", zap.Error(err))
	}

	state := updateGameState(g.engine, g.history, g.lastFrameTime, g.stats)
	g.lastFrameTime = frameStart

	if state.isStagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	displayGameStatus(g.out, g.engine, state, g.stats)
	if err := g.renderer.Display(g.engine); err != nil {
		return false, errors.Wrap(err, "[tick] failed to render frame")
	}

	// the cap counts generations across restarts, which reset the engine's own counter
	if g.stats.ReachedLimit(g.config.MaxGenerations) {
		g.logger.Info("reached maximum generations",
			zap.Int("max_generations", g.config.MaxGenerations),
			zap.Uint64("total_generations", g.stats.TotalGenerations),
		)
		return false, nil
	}

	if shouldRestart, reason := checkRestartConditions(state.livingCells, g.stagnantCount, g.config); shouldRestart {
		if !g.config.AutoRestart {
			g.logger.Info("stopping", zap.String("reason", reason), zap.Uint64("generation", g.engine.Generation()))
			return false, nil
		}
		g.logger.Info("restarting", zap.String("reason", reason), zap.Uint64("generation", g.engine.Generation()))
		restartGame(g.engine, g.history, g.config)
		g.stagnantCount = 0
	}

	g.engine.Advance()
	g.stats.RecordGeneration()
	return true, nil
}

// gameState summarises one rendered generation
type gameState struct {
	livingCells int
	density     float64
	status      string
	isStagnant  bool
}

// updateGameState records the current generation and returns status information
func updateGameState(
	engine *model.Engine,
	history *model.History,
	lastFrameTime time.Time,
	stats *utils.Stats,
) gameState {
	livingCells := engine.Population()
	density := float64(livingCells) / float64(engine.Width()*engine.Height()) * 100

	stats.Update(livingCells, time.Since(lastFrameTime))

	hash := engine.Hash()
	isStagnant := history.Stagnant(hash)
	history.Record(hash)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return gameState{
		livingCells: livingCells,
		density:     density,
		status:      status,
		isStagnant:  isStagnant,
	}
}

// displayGameStatus shows the current game status above the grid
func displayGameStatus(out io.Writer, engine *model.Engine, state gameState, stats *utils.Stats) {
	fmt.Fprintf(out, "Gen: %d (total %d) | Living: %d | Density: %.1f%% | Status: %s\n",
		engine.Generation(), stats.TotalGenerations, state.livingCells, state.density, state.status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame reseeds the engine in place
func restartGame(engine *model.Engine, history *model.History, config utils.Config) {
	engine.Reseed(seedFor(config))
	history.Clear()
}
