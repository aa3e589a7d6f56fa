package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/platform/tcell"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var flagRenderer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game straight away.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Down/S       - Stop moving
  Space/Up/W   - Fire
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Leave (after game over or while paused)
  Ctrl+S       - Screenshot (bubbletea renderer)
  Q/Ctrl+C     - Quit

Difficulty options:
` + config.PresetHelp + `

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --renderer tcell
  invaders play --config ./my-invaders.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "bubbletea", "Terminal renderer: bubbletea or tcell")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagRenderer != "bubbletea" && flagRenderer != "tcell" {
		fmt.Fprintf(os.Stderr, "Error: unknown renderer %q (want bubbletea or tcell)\n", flagRenderer)
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	store := openStore()
	sound := openSound(logger)

	game := newGame(logger)
	cfg := runtimeConfig()

	var runErr error
	if flagRenderer == "tcell" {
		runErr = tcell.Run(game, cfg, tcell.Options{
			Store:     store,
			Sound:     sound,
			Logger:    logger,
			HoldTicks: gameCfg.Input.HoldTicks,
		})
	} else {
		runErr = tui.Run(game, cfg, tui.ModelOptions{
			Store:     store,
			Sound:     sound,
			Logger:    logger,
			HoldTicks: gameCfg.Input.HoldTicks,
		})
	}

	// Release resources before potential exit
	sound.Cleanup()
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
