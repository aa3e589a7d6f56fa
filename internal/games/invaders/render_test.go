package invaders

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// shape is one recorded drawing call.
type shape struct {
	kind  string
	rect  core.Rect
	color core.Color
	text  string
}

// recordCanvas captures drawing calls in playfield units.
type recordCanvas struct {
	shapes []shape
}

func (c *recordCanvas) Size() (int, int) { return 800, 600 }

func (c *recordCanvas) FillRect(r core.Rect, b core.Cell) {
	c.shapes = append(c.shapes, shape{kind: "rect", rect: r, color: b.Color})
}

func (c *recordCanvas) FillOval(r core.Rect, b core.Cell) {
	c.shapes = append(c.shapes, shape{kind: "oval", rect: r, color: b.Color})
}

func (c *recordCanvas) FillArc(r core.Rect, b core.Cell) {
	c.shapes = append(c.shapes, shape{kind: "arc", rect: r, color: b.Color})
}

func (c *recordCanvas) FillPolygon(_ []core.Point, b core.Cell) {
	c.shapes = append(c.shapes, shape{kind: "polygon", color: b.Color})
}

func (c *recordCanvas) DrawLine(p1, p2 core.Point, b core.Cell) {
	r := core.NewRect(int(p1.X), int(p1.Y), int(p2.X-p1.X), int(p2.Y-p1.Y))
	c.shapes = append(c.shapes, shape{kind: "line", rect: r, color: b.Color})
}

func (c *recordCanvas) DrawText(x, y int, text string, color core.Color) {
	c.shapes = append(c.shapes, shape{kind: "text", rect: core.NewRect(x, y, 0, 0), color: color, text: text})
}

func (c *recordCanvas) DrawTextCentered(y int, text string, color core.Color) {
	c.shapes = append(c.shapes, shape{kind: "centered", rect: core.NewRect(0, y, 0, 0), color: color, text: text})
}

func (c *recordCanvas) count(kind string, color core.Color) int {
	n := 0
	for _, s := range c.shapes {
		if s.kind == kind && s.color == color {
			n++
		}
	}
	return n
}

func (c *recordCanvas) has(want shape) bool {
	for _, s := range c.shapes {
		if s == want {
			return true
		}
	}
	return false
}

func TestRenderShipGeometry(t *testing.T) {
	s := newEmptyState()
	s.Enemies = append(s.Enemies, Enemy{X: 100, Y: 200, Dir: 1})

	c := &recordCanvas{}
	Render(s, c)

	expected := []shape{
		{kind: "oval", rect: core.NewRect(100, 210, 50, 15), color: core.ColorLightGray},
		{kind: "arc", rect: core.NewRect(110, 200, 30, 30), color: core.ColorCyan},
		{kind: "oval", rect: core.NewRect(108, 215, 6, 6), color: core.ColorYellow},
		{kind: "oval", rect: core.NewRect(136, 215, 6, 6), color: core.ColorYellow},
		{kind: "oval", rect: core.NewRect(122, 215, 6, 6), color: core.ColorYellow},
	}
	for _, want := range expected {
		if !c.has(want) {
			t.Errorf("missing %s %+v in %s", want.kind, want.rect, want.color)
		}
	}
}

func TestRenderCannonGeometry(t *testing.T) {
	s := newEmptyState()
	c := &recordCanvas{}
	Render(s, c)

	// Cannon top-left is (400, 540).
	expected := []shape{
		{kind: "rect", rect: core.NewRect(405, 560, 40, 15), color: core.ColorDarkGray},
		{kind: "rect", rect: core.NewRect(421, 540, 8, 25), color: core.ColorGreen},
		{kind: "line", rect: core.NewRect(421, 545, 8, 0), color: core.ColorCyan},
		{kind: "line", rect: core.NewRect(421, 550, 8, 0), color: core.ColorCyan},
	}
	for _, want := range expected {
		if !c.has(want) {
			t.Errorf("missing %s %+v in %s", want.kind, want.rect, want.color)
		}
	}
	if c.count("polygon", core.ColorGray) != 1 {
		t.Error("expected one gray support triangle")
	}
}

func TestRenderEntitiesAndScore(t *testing.T) {
	s := NewState(DefaultRules())
	s.Score = 700
	s.Fire()
	s.Fire()

	c := &recordCanvas{}
	Render(s, c)

	if n := c.count("rect", core.ColorYellow); n != 2 {
		t.Errorf("expected 2 projectiles, got %d", n)
	}
	if n := c.count("arc", core.ColorCyan); n != 32 {
		t.Errorf("expected 32 ship domes, got %d", n)
	}
	if !c.has(shape{kind: "text", rect: core.NewRect(10, 25, 0, 0), color: core.ColorWhite, text: "Score: 700"}) {
		t.Error("missing score text at (10,25)")
	}
	if c.count("centered", core.ColorRed)+c.count("centered", core.ColorBrightGreen) != 0 {
		t.Error("no overlay expected while playing")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	tests := []struct {
		name     string
		enemies  []Enemy
		expected string
	}{
		{"loss", []Enemy{{X: 100, Y: 520, Dir: 1}}, "GAME OVER"},
		{"win", nil, "YOU WIN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newEmptyState()
			s.Enemies = append(s.Enemies, tc.enemies...)
			s.GameOver = true

			c := &recordCanvas{}
			Render(s, c)

			found := false
			for _, sh := range c.shapes {
				if sh.kind == "centered" && sh.text == tc.expected && sh.rect.Y == 300 {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %q centered at y=300", tc.expected)
			}
		})
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	s := NewState(DefaultRules())
	s.Fire()
	s.KeyDown(KeyRight)
	snap := s.Snapshot()
	before := snap.Hash()

	screen := core.NewScreen(80, 24)
	for range 3 {
		Render(s, core.NewSurface(screen, 800, 600))
	}

	snap = s.Snapshot()
	if snap.Hash() != before {
		t.Error("Render should not change state")
	}
}

func TestRenderOnTerminalScreen(t *testing.T) {
	s := NewState(DefaultRules())
	screen := core.NewScreen(80, 24)

	Render(s, core.NewSurface(screen, 800, 600))

	// (10,25) scales to cell (1,1).
	if !strings.Contains(screen.Row(1), "Score: 0") {
		t.Errorf("row 1 = %q, expected the score", screen.Row(1))
	}

	// First ship covers the middle of cells 5..9 on row 2.
	for x := 6; x <= 8; x++ {
		if screen.GetCell(x, 2).Rune == ' ' {
			t.Errorf("expected ship paint at (%d, 2)", x)
		}
	}

	// Cannon occupies the bottom rows around x=40..44.
	painted := 0
	for y := 21; y < 24; y++ {
		for x := 40; x < 45; x++ {
			if screen.GetCell(x, y).Rune != ' ' {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("cannon not visible on the bottom rows")
	}
}
