// Package invaders implements a single-screen shooter: a cannon at the bottom
// of the playfield fires upward at a grid of ships sweeping side to side and
// stepping down at each edge.
//
// The game is pure logic on a fixed logical playfield. Hosts feed it key
// state and ticks and draw it through a core.Canvas.
package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Rules holds every constant the simulation depends on, in playfield units.
type Rules struct {
	Width    int
	Height   int
	FailLine int // An enemy with y beyond this ends the game

	CannonW          int
	CannonH          int
	CannonSpeed      int
	CannonStartX     int
	CannonDrawOffset int // Cannon top is drawn at Height - CannonDrawOffset
	MuzzleOffset     int // Projectiles spawn at Height - MuzzleOffset

	ProjectileW     int
	ProjectileH     int
	ProjectileSpeed int

	EnemyW     int
	EnemyH     int
	EnemySpeed int
	EnemyDrop  int
	Rows       int
	Cols       int
	OriginX    int
	OriginY    int
	SpacingX   int
	SpacingY   int

	PointsPerKill int
}

// RulesFromConfig flattens a validated config into simulation rules.
func RulesFromConfig(cfg config.InvadersConfig) Rules {
	startX := cfg.Cannon.StartX
	if startX < 0 {
		startX = (cfg.Playfield.Width - cfg.Cannon.Width) / 2
	}
	return Rules{
		Width:    cfg.Playfield.Width,
		Height:   cfg.Playfield.Height,
		FailLine: cfg.FailLine(),

		CannonW:          cfg.Cannon.Width,
		CannonH:          cfg.Cannon.Height,
		CannonSpeed:      cfg.Cannon.Speed,
		CannonStartX:     startX,
		CannonDrawOffset: cfg.Cannon.DrawOffset,
		MuzzleOffset:     cfg.Cannon.MuzzleOffset,

		ProjectileW:     cfg.Projectile.Width,
		ProjectileH:     cfg.Projectile.Height,
		ProjectileSpeed: cfg.Projectile.Speed,

		EnemyW:     cfg.Enemies.Width,
		EnemyH:     cfg.Enemies.Height,
		EnemySpeed: cfg.Enemies.Speed,
		EnemyDrop:  cfg.Enemies.Drop,
		Rows:       cfg.Enemies.Rows,
		Cols:       cfg.Enemies.Cols,
		OriginX:    cfg.Enemies.OriginX,
		OriginY:    cfg.Enemies.OriginY,
		SpacingX:   cfg.Enemies.SpacingX,
		SpacingY:   cfg.Enemies.SpacingY,

		PointsPerKill: cfg.Scoring.PointsPerKill,
	}
}

// DefaultRules returns the classic 800x600 rules.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultInvadersConfig())
}

// Projectile is a shot travelling straight up.
type Projectile struct {
	X, Y int
}

// Bounds returns the projectile's bounding box.
func (p Projectile) Bounds(r Rules) core.Rect {
	return core.NewRect(p.X, p.Y, r.ProjectileW, r.ProjectileH)
}

// Enemy is one ship of the grid. Dir is +1 (moving right) or -1 (moving left).
type Enemy struct {
	X, Y int
	Dir  int
}

// Bounds returns the enemy's bounding box.
func (e Enemy) Bounds(r Rules) core.Rect {
	return core.NewRect(e.X, e.Y, r.EnemyW, r.EnemyH)
}

// Outcome describes how a game stands.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// State is the complete mutable state of one game.
type State struct {
	Rules Rules

	CannonX  int
	Score    int
	GameOver bool
	Ticks    int

	LeftHeld  bool
	RightHeld bool

	// EnemySpeed is the horizontal step applied on the next tick.
	// It starts at Rules.EnemySpeed; difficulty progression may raise it.
	EnemySpeed int

	Projectiles []Projectile
	Enemies     []Enemy
}

// NewState creates a game with the cannon at its start position and the
// full enemy grid, every ship moving right.
func NewState(rules Rules) *State {
	s := &State{
		Rules:       rules,
		CannonX:     core.Clamp(rules.CannonStartX, 0, rules.Width-rules.CannonW),
		EnemySpeed:  rules.EnemySpeed,
		Projectiles: make([]Projectile, 0, 8),
		Enemies:     make([]Enemy, 0, rules.Rows*rules.Cols),
	}
	for row := range rules.Rows {
		for col := range rules.Cols {
			s.Enemies = append(s.Enemies, Enemy{
				X:   rules.OriginX + col*rules.SpacingX,
				Y:   rules.OriginY + row*rules.SpacingY,
				Dir: 1,
			})
		}
	}
	return s
}

// CannonBounds returns the cannon's bounding box as drawn.
func (s *State) CannonBounds() core.Rect {
	r := s.Rules
	return core.NewRect(s.CannonX, r.Height-r.CannonDrawOffset, r.CannonW, r.CannonH)
}

// Outcome reports whether the game is still running, won or lost.
func (s *State) Outcome() Outcome {
	switch {
	case !s.GameOver:
		return OutcomePlaying
	case len(s.Enemies) == 0:
		return OutcomeWon
	default:
		return OutcomeLost
	}
}

// Won reports whether the game ended with every enemy destroyed.
func (s *State) Won() bool {
	return s.Outcome() == OutcomeWon
}
