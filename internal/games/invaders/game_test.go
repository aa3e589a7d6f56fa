package invaders

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func newTestGame(t *testing.T, cfg config.InvadersConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(core.DefaultConfig())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "invaders" {
		t.Errorf("ID() = %q, expected invaders", g.ID())
	}
	if g.Title() != "Invaders" {
		t.Errorf("Title() = %q, expected Invaders", g.Title())
	}
}

func TestGameDeterminism(t *testing.T) {
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		switch {
		case i%9 == 0:
			inputSequence[i] = frame(core.ActionFire)
		case (i/40)%2 == 0:
			inputSequence[i] = frame(core.ActionLeft)
		default:
			inputSequence[i] = frame(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, config.DefaultInvadersConfig())
		for _, in := range inputSequence {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: score/tick differ: %d/%d vs %d/%d", snap1.Score, snap1.Tick, snap2.Score, snap2.Tick)
	}
}

func TestGameStepHeldAndFire(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())

	result := g.Step(frame(core.ActionRight, core.ActionFire))
	if !slices.Contains(result.Events, core.EventFire) {
		t.Errorf("events = %v, expected fire", result.Events)
	}
	if g.state.CannonX != 405 {
		t.Errorf("CannonX = %d, expected 405", g.state.CannonX)
	}
	if len(g.state.Projectiles) != 1 {
		t.Errorf("expected 1 projectile, got %d", len(g.state.Projectiles))
	}

	// A frame without Right releases it.
	g.Step(core.NewInputFrame())
	if g.state.RightHeld || g.state.CannonX != 405 {
		t.Errorf("cannon should stop when the direction is absent (x=%d)", g.state.CannonX)
	}
	if result.State.Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", result.State.Ticks)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())
	g.Step(core.NewInputFrame())

	result := g.Step(frame(core.ActionPause))
	if !result.State.Paused {
		t.Fatal("expected paused after Pause")
	}

	snap := g.Snapshot()
	before := snap.Hash()
	for range 20 {
		g.Step(frame(core.ActionLeft, core.ActionFire))
	}
	snap = g.Snapshot()
	if snap.Hash() != before {
		t.Error("paused game should not change")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should show PAUSED")
	}

	result = g.Step(frame(core.ActionPause))
	if result.State.Paused {
		t.Error("second Pause should resume")
	}
}

func TestGameStateReportsOutcome(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())
	g.state.Enemies = g.state.Enemies[:0]

	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver || !result.State.Won {
		t.Errorf("state = %+v, expected a won game", result.State)
	}
	if !slices.Contains(result.Events, core.EventWin) {
		t.Errorf("events = %v, expected win", result.Events)
	}
	if g.Outcome() != OutcomeWon {
		t.Errorf("Outcome = %s, expected won", g.Outcome())
	}

	// Pause is ignored once the game is over.
	if g.Step(frame(core.ActionPause)).State.Paused {
		t.Error("game over should not pause")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "YOU WIN") {
		t.Error("won game should show YOU WIN")
	}
}

func TestGameResetRestoresGrid(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())
	for range 30 {
		g.Step(frame(core.ActionLeft, core.ActionFire))
	}
	g.state.Score = 500

	g.Reset(core.DefaultConfig())

	st := g.State()
	if st.Score != 0 || st.Ticks != 0 || st.GameOver || st.Paused {
		t.Errorf("Reset should clear state, got %+v", st)
	}
	if len(g.state.Enemies) != 32 || len(g.state.Projectiles) != 0 {
		t.Errorf("Reset should restore the grid, got %d enemies, %d projectiles", len(g.state.Enemies), len(g.state.Projectiles))
	}
}

func TestGameUsesConfigRules(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Enemies.Rows = 2
	cfg.Enemies.Cols = 3
	cfg.Cannon.Speed = 10

	g := newTestGame(t, cfg)
	g.Step(frame(core.ActionLeft))

	if len(g.state.Enemies) != 6 {
		t.Errorf("expected 6 enemies, got %d", len(g.state.Enemies))
	}
	if g.state.CannonX != 390 {
		t.Errorf("CannonX = %d, expected 390", g.state.CannonX)
	}
	if g.Config().Enemies.Cols != 3 {
		t.Error("Config() should expose the active config")
	}
}

func TestGameDifficultyScalesEnemySpeed(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.Progression = config.ProgressionConfig{Type: "score", MaxAt: 3200}
	cfg.Difficulty.Scaling.SpeedMultiplier = 1.0

	g := newTestGame(t, cfg)
	g.Step(core.NewInputFrame())
	if g.state.EnemySpeed != 2 {
		t.Errorf("EnemySpeed = %d at score 0, expected 2", g.state.EnemySpeed)
	}

	g.state.Score = 1600
	g.Step(core.NewInputFrame())
	if g.state.EnemySpeed != 3 {
		t.Errorf("EnemySpeed = %d at score 1600, expected 3", g.state.EnemySpeed)
	}

	// Default config keeps the classic step regardless of score.
	g = newTestGame(t, config.DefaultInvadersConfig())
	g.state.Score = 3100
	g.Step(core.NewInputFrame())
	if g.state.EnemySpeed != 2 {
		t.Errorf("EnemySpeed = %d with difficulty disabled, expected 2", g.state.EnemySpeed)
	}
}

func TestGameLoadsConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.toml")
	if err := os.WriteFile(path, []byte("[enemies]\nrows = 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	g := NewFromFile(path, config.DifficultyEasy)
	g.Reset(core.DefaultConfig())

	if len(g.state.Enemies) != 8 {
		t.Errorf("expected one row of 8 enemies, got %d", len(g.state.Enemies))
	}
	if !g.Config().Difficulty.Enabled || g.Config().Enemies.Speed != 1 {
		t.Errorf("easy preset not applied: %+v", g.Config().Difficulty)
	}
}

func TestGameReloadFailureKeepsPreviousRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.toml")
	write := func(content string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	var logs bytes.Buffer
	g := NewFromFile(path, config.DifficultyHard)
	g.SetLogger(log.New(&logs))

	write("[enemies]\nrows = 1\n")
	g.Reset(core.DefaultConfig())
	if g.LoadErr() != nil {
		t.Fatalf("LoadErr() = %v, expected nil", g.LoadErr())
	}

	write("[enemies\nrows = ")
	g.Reset(core.DefaultConfig())

	if g.LoadErr() == nil {
		t.Error("LoadErr() should report the broken file")
	}
	if len(g.state.Enemies) != 8 {
		t.Errorf("expected the previous single row of 8 enemies, got %d", len(g.state.Enemies))
	}
	if g.Config().Enemies.Drop != 30 {
		t.Errorf("Drop = %d, expected the hard preset to stay applied once", g.Config().Enemies.Drop)
	}
	if !strings.Contains(logs.String(), "keeping previous rules") {
		t.Errorf("expected a reload warning, got %q", logs.String())
	}

	write("[enemies]\nrows = 2\n")
	g.Reset(core.DefaultConfig())
	if g.LoadErr() != nil || len(g.state.Enemies) != 16 {
		t.Errorf("fixed file should load again: err=%v enemies=%d", g.LoadErr(), len(g.state.Enemies))
	}
}

func TestGameFirstLoadFailureUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	if err := os.WriteFile(path, []byte("enemies: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}

	g := NewFromFile(path, "")
	g.Reset(core.DefaultConfig())

	if g.LoadErr() == nil {
		t.Error("LoadErr() should report the broken file")
	}
	if g.Config() != config.DefaultInvadersConfig() {
		t.Errorf("Config() = %+v, expected defaults", g.Config())
	}
}
