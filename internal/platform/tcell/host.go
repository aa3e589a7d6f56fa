// Package tcell hosts the game on a raw tcell screen. It is the lighter
// alternative to the Bubble Tea host and shares its key bindings.
package tcell

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Options carries the optional collaborators of a Host.
type Options struct {
	Store     *storage.Store
	Sound     *audio.SoundManager
	Logger    *log.Logger
	HoldTicks int
}

// Host drives one game on a tcell screen.
type Host struct {
	screen     tcell.Screen
	buffer     *core.Screen
	game       core.Game
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	hold       *core.HoldTracker
	edges      core.InputFrame
	state      core.GameState
	scoreSaved bool
	quit       bool
}

// NewHost wraps an initialized screen. The caller owns the screen.
func NewHost(screen tcell.Screen, game core.Game, cfg core.RuntimeConfig, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	w, h := screen.Size()
	cfg.ScreenW, cfg.ScreenH = w, h

	return &Host{
		screen: screen,
		buffer: core.NewScreen(w, h),
		game:   game,
		config: cfg,
		opts:   opts,
		logger: logger,
		hold:   core.NewHoldTracker(opts.HoldTicks),
		edges:  core.NewInputFrame(),
	}
}

// Run opens the terminal and plays until the user quits.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()

	NewHost(screen, game, cfg, opts).Loop()
	return nil
}

// Loop runs the event and tick loop until a quit is requested.
func (h *Host) Loop() {
	h.game.Reset(h.config)
	h.state = h.game.State()
	h.logger.Debug("game started", "game", h.game.ID(), "renderer", "tcell")

	tickRate := h.config.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go h.pollEvents(events, done)

	h.draw()
	for !h.quit {
		select {
		case ev := <-events:
			h.HandleEvent(ev)
		case <-ticker.C:
			h.Tick()
			h.draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func (h *Host) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one terminal event.
func (h *Host) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.handleKey(ev)
	case *tcell.EventResize:
		w, ht := h.screen.Size()
		h.config.ScreenW, h.config.ScreenH = w, ht
		h.buffer.Resize(w, ht)
		h.screen.Sync()
	}
}

func (h *Host) handleKey(ev *tcell.EventKey) {
	action := MapKey(ev)
	switch action {
	case core.ActionQuit:
		h.quit = true
	case core.ActionLeft, core.ActionRight, core.ActionStop:
		h.hold.Press(action)
	case core.ActionFire, core.ActionPause:
		h.edges.Set(action)
	case core.ActionRestart:
		if h.state.GameOver {
			h.edges.Set(action)
		}
	case core.ActionBack:
		if h.state.GameOver || h.state.Paused {
			h.quit = true
		}
	}
}

// Tick advances the game by one step.
func (h *Host) Tick() {
	if h.edges.Has(core.ActionRestart) && h.state.GameOver {
		h.game.Reset(h.config)
		h.state = h.game.State()
		h.scoreSaved = false
		h.hold.ReleaseAll()
		h.edges.Clear()
		return
	}

	frame := h.edges.Clone()
	h.hold.Apply(&frame)
	h.edges.Clear()

	result := h.game.Step(frame)
	h.state = result.State
	h.opts.Sound.PlayAll(result.Events)

	if h.state.GameOver && !h.scoreSaved {
		h.scoreSaved = true
		h.logger.Info("game over", "game", h.game.ID(), "score", h.state.Score, "won", h.state.Won)
		if h.opts.Store != nil && h.state.Score > 0 {
			entry := storage.NewEntry(h.game.ID(), h.config.Player, h.state)
			if _, err := h.opts.Store.SaveScore(entry); err != nil {
				h.logger.Warn("could not save score", "error", err)
			}
		}
	}
}

// State returns the last observed game state.
func (h *Host) State() core.GameState {
	return h.state
}

// Quitting reports whether the loop will stop.
func (h *Host) Quitting() bool {
	return h.quit
}

// draw renders the game into the cell buffer and flushes it to the screen.
func (h *Host) draw() {
	h.game.Render(h.buffer)
	h.screen.Clear()
	for y := 0; y < h.buffer.Height(); y++ {
		for x := 0; x < h.buffer.Width(); x++ {
			c := h.buffer.GetCell(x, y)
			if c.Rune == ' ' || c.Rune == 0 {
				continue
			}
			h.screen.SetContent(x, y, c.Rune, nil, Style(c.Color))
		}
	}
	h.screen.Show()
}
