package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// setupLogging applies --log-level to the default logger.
func setupLogging() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	log.SetLevel(level)
	return nil
}

// fileLogger returns a logger writing to ~/.invaders/invaders.log so that
// log lines do not tear the full-screen display. It falls back to a
// discarding logger when the file cannot be opened.
func fileLogger() (*log.Logger, func()) {
	opts := log.Options{
		ReportTimestamp: true,
		Level:           log.GetLevel(),
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	dir := filepath.Join(home, ".invaders")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "invaders.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	return log.NewWithOptions(f, opts), func() { f.Close() }
}

// loadGameConfig validates --config and --difficulty up front and returns
// the rules a new game will run with.
func loadGameConfig() (config.InvadersConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// newGame creates a game honoring --config and --difficulty. Call it after
// loadGameConfig has validated both. Config reload failures go to logger.
func newGame(logger *log.Logger) *invaders.Game {
	g := invaders.NewFromFile(flagConfig, config.DifficultyPreset(flagDifficulty))
	g.SetLogger(logger)
	return g
}

// runtimeConfig builds the host config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.RuntimeConfig{TickRate: flagFPS, Player: flagPlayer}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg.WithDefaults()
}

// openStore opens the score database, warning and continuing without
// storage when it is unavailable.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openSound starts audio when --sound is set. Failures degrade to silence.
func openSound(logger *log.Logger) *audio.SoundManager {
	if !flagSound {
		return nil
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return sm
}
