package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/score"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.LookupEnv)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(2)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "vi-snake: an interactive terminal is required")
		os.Exit(1)
	}

	logger, logFile := setupLogging(cfg.Debug, cfg.LogDir, cfg.LogLevel)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("exit")
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger zerolog.Logger) error {
	ledger := score.NewLedger(score.NewFileStore(cfg.ScoreFile), logger)
	if err := ledger.Load(); err != nil {
		// Already logged by the ledger; play on with an empty history
		logger.Warn().Str("file", cfg.ScoreFile).Msg("high scores reset for this session")
	}

	keys, err := input.LoadKeyFile(cfg.KeymapFile)
	if err != nil {
		logger.Warn().Err(err).Msg("keymap ignored")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	session := engine.NewSession(ledger, engine.Options{
		Grid:          engine.Grid{Width: cfg.GridWidth, Height: cfg.GridHeight},
		InitialLength: cfg.InitialLength,
		Speed:         engine.SpeedModel{BaseRate: cfg.BaseTickRate, MaxRate: cfg.MaxTickRate},
		Placer:        engine.NewRandomPlacer(seed),
		Logger:        logger,
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	setCrashScreen(screen)
	defer func() {
		handleCrash(recover())
	}()

	var sound *audio.SoundManager
	if cfg.Audio {
		sound = audio.NewSoundManager(logger)
		if err := sound.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		}
		defer sound.Cleanup()
	}

	renderer := render.NewTerminalRenderer(screen, render.NewTheme(cfg.ColorMode))
	clock := engine.NewTickClock(engine.NewMonotonicTimeProvider(), constants.MaxFrameCatchUp)
	game := NewGame(screen, session, renderer, keys, clock, sound, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Int("width", cfg.GridWidth).
		Int("height", cfg.GridHeight).
		Uint64("seed", seed).
		Int("high_scores", len(ledger.Entries())).
		Msg("starting")
	return game.Run(ctx)
}
