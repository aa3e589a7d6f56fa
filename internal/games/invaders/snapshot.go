package invaders

// Snapshot contains the complete game state for determinism testing.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       int
	CannonX    int
	Score      int
	GameOver   bool
	LeftHeld   bool
	RightHeld  bool
	EnemySpeed int

	// Each projectile is 2 ints: X, Y
	ProjectileData []int

	// Each enemy is 3 ints: X, Y, Dir
	EnemyData []int
}

// Snapshot returns the current state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	projectileData := make([]int, 0, len(s.Projectiles)*2)
	for _, p := range s.Projectiles {
		projectileData = append(projectileData, p.X, p.Y)
	}

	enemyData := make([]int, 0, len(s.Enemies)*3)
	for _, e := range s.Enemies {
		enemyData = append(enemyData, e.X, e.Y, e.Dir)
	}

	return Snapshot{
		Tick:           s.Ticks,
		CannonX:        s.CannonX,
		Score:          s.Score,
		GameOver:       s.GameOver,
		LeftHeld:       s.LeftHeld,
		RightHeld:      s.RightHeld,
		EnemySpeed:     s.EnemySpeed,
		ProjectileData: projectileData,
		EnemyData:      enemyData,
	}
}

// Snapshot returns the adapter's current state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CannonX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.LeftHeld)
	h = h*31 + boolBit(snap.RightHeld)
	h = h*31 + uint64(snap.EnemySpeed) //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.ProjectileData))
	h = h*31 + uint64(len(snap.EnemyData))

	for _, v := range snap.ProjectileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
