package config

import (
	_ "embed"
	"errors"
	"fmt"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in rules.
// It mirrors defaults/invaders.yaml and is used when the embedded file cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Playfield: PlayfieldConfig{
			Width:      800,
			Height:     600,
			FailMargin: 100,
		},
		Cannon: CannonConfig{
			Width:        50,
			Height:       40,
			Speed:        5,
			StartX:       400,
			DrawOffset:   60,
			MuzzleOffset: 70,
		},
		Projectile: ProjectileConfig{
			Width:  4,
			Height: 10,
			Speed:  5,
		},
		Enemies: EnemiesConfig{
			Width:    50,
			Height:   30,
			Speed:    2,
			Drop:     20,
			Rows:     4,
			Cols:     8,
			OriginX:  50,
			OriginY:  50,
			SpacingX: 80,
			SpacingY: 60,
		},
		Scoring: ScoringConfig{
			PointsPerKill: 100,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks that the rules describe a playable game.
func (c InvadersConfig) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"cannon.width", c.Cannon.Width},
		{"cannon.height", c.Cannon.Height},
		{"cannon.speed", c.Cannon.Speed},
		{"projectile.width", c.Projectile.Width},
		{"projectile.height", c.Projectile.Height},
		{"projectile.speed", c.Projectile.Speed},
		{"enemies.width", c.Enemies.Width},
		{"enemies.height", c.Enemies.Height},
		{"enemies.speed", c.Enemies.Speed},
		{"enemies.rows", c.Enemies.Rows},
		{"enemies.cols", c.Enemies.Cols},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.v)
		}
	}

	if c.Enemies.Drop < 0 || c.Scoring.PointsPerKill < 0 || c.Input.HoldTicks < 0 {
		return fmt.Errorf("%w: enemies.drop, scoring.points_per_kill and input.hold_ticks must not be negative", ErrInvalidConfig)
	}

	if c.Cannon.Width > c.Playfield.Width {
		return fmt.Errorf("%w: cannon (%d) wider than playfield (%d)", ErrInvalidConfig, c.Cannon.Width, c.Playfield.Width)
	}

	if c.Enemies.Cols > 1 && c.Enemies.SpacingX < c.Enemies.Width {
		return fmt.Errorf("%w: enemies.spacing_x (%d) smaller than enemies.width (%d)", ErrInvalidConfig, c.Enemies.SpacingX, c.Enemies.Width)
	}
	if c.Enemies.Rows > 1 && c.Enemies.SpacingY < c.Enemies.Height {
		return fmt.Errorf("%w: enemies.spacing_y (%d) smaller than enemies.height (%d)", ErrInvalidConfig, c.Enemies.SpacingY, c.Enemies.Height)
	}

	gridRight := c.Enemies.OriginX + (c.Enemies.Cols-1)*c.Enemies.SpacingX + c.Enemies.Width
	if c.Enemies.OriginX < 0 || gridRight > c.Playfield.Width {
		return fmt.Errorf("%w: enemy grid spans x=%d..%d outside playfield width %d", ErrInvalidConfig, c.Enemies.OriginX, gridRight, c.Playfield.Width)
	}

	gridBottom := c.Enemies.OriginY + (c.Enemies.Rows-1)*c.Enemies.SpacingY
	if c.Enemies.OriginY < 0 || gridBottom > c.FailLine() {
		return fmt.Errorf("%w: enemy grid starts below the fail line (%d)", ErrInvalidConfig, c.FailLine())
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return fmt.Errorf("%w: difficulty.progression.type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}

	return nil
}
