// invaders is a Space Invaders style shooter for the terminal.
//
// Usage:
//
//	invaders play            - Play a game
//	invaders menu            - Title menu with play and high scores
//	invaders scores          - Print the high score table
//	invaders serve           - Start SSH server for remote play
//	invaders config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.invaders/scores.db)
//	--config <path>       - Load a custom YAML or TOML config
//	--difficulty <name>   - easy, normal, hard or fixed
//	--sound               - Enable sound effects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagSound      bool
	flagPlayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - Defend the bottom of your terminal",
	Long: `Invaders is a terminal shooter: move the cannon, fire upward and
clear the descending grid of ships before one crosses the fail line.

Available commands:
  play     - Play a game directly
  menu     - Title menu with play and high scores
  scores   - Print the high score table
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  invaders play
  invaders play --difficulty hard --sound
  invaders play --renderer tcell
  invaders menu
  invaders serve --ssh :2222
  invaders config --format toml > ~/.invaders/configs/invaders.toml`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name recorded with saved scores")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
