package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Key is a held direction the cannon responds to.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
)

// KeyDown marks a direction as held. Ignored once the game is over.
func (s *State) KeyDown(k Key) {
	s.setHeld(k, true)
}

// KeyUp releases a held direction. Ignored once the game is over.
func (s *State) KeyUp(k Key) {
	s.setHeld(k, false)
}

func (s *State) setHeld(k Key, held bool) {
	if s.GameOver {
		return
	}
	switch k {
	case KeyLeft:
		s.LeftHeld = held
	case KeyRight:
		s.RightHeld = held
	}
}

// Fire launches a projectile centered on the cannon's muzzle.
// Returns false when the game is over and nothing was spawned.
func (s *State) Fire() bool {
	if s.GameOver {
		return false
	}
	r := s.Rules
	s.Projectiles = append(s.Projectiles, Projectile{
		X: s.CannonX + r.CannonW/2 - r.ProjectileW/2,
		Y: r.Height - r.MuzzleOffset,
	})
	return true
}

// Tick advances the game by one step and returns what happened.
// A finished game is left untouched.
func (s *State) Tick() []core.Event {
	if s.GameOver {
		return nil
	}

	if len(s.Enemies) == 0 {
		s.GameOver = true
		return []core.Event{core.EventWin}
	}

	s.Ticks++
	s.moveCannon()
	s.dropEscapedProjectiles()
	events := s.advanceProjectiles()
	s.advanceEnemies()

	for _, e := range s.Enemies {
		if e.Y > s.Rules.FailLine {
			s.GameOver = true
			return append(events, core.EventLoss)
		}
	}

	if len(s.Enemies) == 0 {
		s.GameOver = true
		events = append(events, core.EventWin)
	}
	return events
}

func (s *State) moveCannon() {
	r := s.Rules
	if s.LeftHeld {
		s.CannonX -= r.CannonSpeed
	}
	if s.RightHeld {
		s.CannonX += r.CannonSpeed
	}
	s.CannonX = core.Clamp(s.CannonX, 0, r.Width-r.CannonW)
}

// dropEscapedProjectiles removes shots that left the top on a previous tick.
func (s *State) dropEscapedProjectiles() {
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if p.Y >= 0 {
			kept = append(kept, p)
		}
	}
	s.Projectiles = kept
}

// advanceProjectiles moves every shot up and resolves hits. A shot destroys
// at most one enemy: the first overlapping one in grid order.
func (s *State) advanceProjectiles() []core.Event {
	var events []core.Event
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		p.Y -= s.Rules.ProjectileSpeed

		hit := -1
		pb := p.Bounds(s.Rules)
		for i, e := range s.Enemies {
			if pb.Intersects(e.Bounds(s.Rules)) {
				hit = i
				break
			}
		}
		if hit < 0 {
			kept = append(kept, p)
			continue
		}

		s.Enemies = append(s.Enemies[:hit], s.Enemies[hit+1:]...)
		s.Score += s.Rules.PointsPerKill
		events = append(events, core.EventKill)
	}
	s.Projectiles = kept
	return events
}

// advanceEnemies sweeps each ship sideways; a ship touching either edge
// turns around and steps down.
func (s *State) advanceEnemies() {
	r := s.Rules
	for i := range s.Enemies {
		e := &s.Enemies[i]
		e.X += e.Dir * s.EnemySpeed
		if e.X <= 0 || e.X >= r.Width-r.EnemyW {
			e.Dir = -e.Dir
			e.Y += r.EnemyDrop
		}
	}
}
