// Package config provides file-based game configuration loading and
// difficulty management. Configs are YAML or TOML, chosen by extension.
package config

import "fmt"

// InvadersConfig contains every tunable rule of the game.
// The defaults reproduce the classic 800x600 layout exactly.
type InvadersConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield" toml:"playfield"`
	Cannon     CannonConfig     `yaml:"cannon" toml:"cannon"`
	Projectile ProjectileConfig `yaml:"projectile" toml:"projectile"`
	Enemies    EnemiesConfig    `yaml:"enemies" toml:"enemies"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Input      InputConfig      `yaml:"input" toml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PlayfieldConfig defines the logical coordinate space.
type PlayfieldConfig struct {
	Width      int `yaml:"width" toml:"width"`
	Height     int `yaml:"height" toml:"height"`
	FailMargin int `yaml:"fail_margin" toml:"fail_margin"` // Fail line sits this far above the bottom
}

// CannonConfig defines the player cannon.
type CannonConfig struct {
	Width        int `yaml:"width" toml:"width"`
	Height       int `yaml:"height" toml:"height"`
	Speed        int `yaml:"speed" toml:"speed"`                 // Units per tick while a direction is held
	StartX       int `yaml:"start_x" toml:"start_x"`             // Negative means centered
	DrawOffset   int `yaml:"draw_offset" toml:"draw_offset"`     // Cannon top sits this far above the bottom
	MuzzleOffset int `yaml:"muzzle_offset" toml:"muzzle_offset"` // New projectiles spawn this far above the bottom
}

// ProjectileConfig defines the cannon's shots.
type ProjectileConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	Speed  int `yaml:"speed" toml:"speed"` // Units per tick, upward
}

// EnemiesConfig defines the ship grid and its sweep.
type EnemiesConfig struct {
	Width    int `yaml:"width" toml:"width"`
	Height   int `yaml:"height" toml:"height"`
	Speed    int `yaml:"speed" toml:"speed"` // Horizontal units per tick
	Drop     int `yaml:"drop" toml:"drop"`   // Downward step on each edge bounce
	Rows     int `yaml:"rows" toml:"rows"`
	Cols     int `yaml:"cols" toml:"cols"`
	OriginX  int `yaml:"origin_x" toml:"origin_x"`
	OriginY  int `yaml:"origin_y" toml:"origin_y"`
	SpacingX int `yaml:"spacing_x" toml:"spacing_x"`
	SpacingY int `yaml:"spacing_y" toml:"spacing_y"`
}

// ScoringConfig defines point awards.
type ScoringConfig struct {
	PointsPerKill int `yaml:"points_per_kill" toml:"points_per_kill"`
}

// InputConfig defines host input handling.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks" toml:"hold_ticks"` // Ticks a direction stays held without a repeat
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to enemy speed factor at max difficulty
}

// FailLine returns the y threshold past which an enemy ends the game.
func (c InvadersConfig) FailLine() int {
	return c.Playfield.Height - c.Playfield.FailMargin
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty input yields "" with no error.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// PresetHelp is the CLI description of each preset, in menu order. Keep it
// in step with ApplyPreset.
const PresetHelp = `  easy   - Ships move at half speed (at least 1), speeds up with score
  normal - Starts at 30% of the speed-up
  hard   - Starts at 70% of the speed-up, ships drop half as far again per bounce
  fixed  - No progression, config values as written`

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "score"
	}

	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Speed = max(cfg.Enemies.Speed/2, 1)
	case DifficultyHard:
		cfg.Enemies.Drop += cfg.Enemies.Drop / 2
	}
}
