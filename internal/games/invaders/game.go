package invaders

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game adapts State to the core.Game interface so hosts can drive it.
type Game struct {
	fixed      *config.InvadersConfig // Set by NewWithConfig; bypasses file loading
	configPath string
	preset     config.DifficultyPreset
	cfg        config.InvadersConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	state      *State
	paused     bool
	loadErr    error
	logger     *log.Logger
}

var _ core.Game = (*Game)(nil)

// New creates a game that loads its rules from the config search path on Reset.
func New() *Game {
	return &Game{}
}

// NewFromFile creates a game that loads its rules from path (or the search
// path when empty) and applies preset on every Reset.
func NewFromFile(path string, preset config.DifficultyPreset) *Game {
	return &Game{configPath: path, preset: preset}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{fixed: &cfg}
}

// SetLogger sets where config reload failures are reported. Nil silences them.
func (g *Game) SetLogger(logger *log.Logger) {
	g.logger = logger
}

// LoadErr returns the config error from the latest Reset, or nil.
func (g *Game) LoadErr() error {
	return g.loadErr
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.InvadersConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		cfg = g.loadConfig()
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.state = NewState(RulesFromConfig(cfg))
	g.paused = false
}

// loadConfig reads the rules file. On failure the previous rules stay in
// force, or the defaults on the very first Reset.
func (g *Game) loadConfig() config.InvadersConfig {
	loaded, err := config.Load(g.configPath)
	g.loadErr = err
	if err == nil {
		config.ApplyPreset(&loaded, g.preset)
		return loaded
	}

	if g.state != nil {
		g.warn("config reload failed, keeping previous rules", "path", g.configPath, "error", err)
		return g.cfg
	}
	g.warn("config load failed, using defaults", "path", g.configPath, "error", err)
	loaded = config.DefaultInvadersConfig()
	config.ApplyPreset(&loaded, g.preset)
	return loaded
}

func (g *Game) warn(msg string, keyvals ...any) {
	if g.logger != nil {
		g.logger.Warn(msg, keyvals...)
	}
}

// Config returns the rules config the current game was built from.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// Step applies one frame of input and advances the simulation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.state

	if in.Has(core.ActionPause) && !s.GameOver {
		g.paused = !g.paused
	}
	if g.paused || s.GameOver {
		return core.StepResult{State: g.State()}
	}

	g.applyHeld(in, core.ActionLeft, KeyLeft)
	g.applyHeld(in, core.ActionRight, KeyRight)

	var events []core.Event
	if in.Has(core.ActionFire) && s.Fire() {
		events = append(events, core.EventFire)
	}

	s.EnemySpeed = g.difficulty.EnemySpeed(s.Rules.EnemySpeed, s.Score, s.Ticks)
	events = append(events, s.Tick()...)

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) applyHeld(in core.InputFrame, a core.Action, k Key) {
	if in.Has(a) {
		g.state.KeyDown(k)
	} else {
		g.state.KeyUp(k)
	}
}

// Render draws the playfield scaled to fill dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	Render(g.state, core.NewSurface(dst, g.state.Rules.Width, g.state.Rules.Height))

	h := dst.Height()
	switch {
	case g.state.GameOver:
		dst.DrawTextCentered(h/2+2, "R restart | Q quit")
	case g.paused:
		dst.DrawTextCentered(h/2, "PAUSED")
		dst.DrawTextCentered(h/2+2, "P resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
		Won:      g.state.Won(),
		Paused:   g.paused,
		Ticks:    g.state.Ticks,
	}
}

// Outcome reports how the current game stands.
func (g *Game) Outcome() Outcome {
	return g.state.Outcome()
}
