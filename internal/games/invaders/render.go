package invaders

import (
	"strconv"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Brushes used to paint the playfield.
var (
	brushShipBody   = core.Cell{Rune: '█', Color: core.ColorLightGray}
	brushShipDome   = core.Cell{Rune: '▄', Color: core.ColorCyan}
	brushShipLight  = core.Cell{Rune: '•', Color: core.ColorYellow}
	brushCannonBase = core.Cell{Rune: '▀', Color: core.ColorDarkGray}
	brushBarrel     = core.Cell{Rune: '█', Color: core.ColorGreen}
	brushSupport    = core.Cell{Rune: '▲', Color: core.ColorGray}
	brushDetail     = core.Cell{Rune: '─', Color: core.ColorCyan}
	brushProjectile = core.Cell{Rune: '│', Color: core.ColorYellow}
)

// Render draws the state onto a canvas in playfield units. It never mutates s.
func Render(s *State, c core.Canvas) {
	r := s.Rules

	renderCannon(c, r, s.CannonX, r.Height-r.CannonDrawOffset)

	for _, p := range s.Projectiles {
		c.FillRect(p.Bounds(r), brushProjectile)
	}

	for _, e := range s.Enemies {
		renderShip(c, r, e.X, e.Y)
	}

	c.DrawText(10, 25, "Score: "+strconv.Itoa(s.Score), core.ColorWhite)

	if s.GameOver {
		msg, color := "GAME OVER", core.ColorRed
		if s.Won() {
			msg, color = "YOU WIN", core.ColorBrightGreen
		}
		c.DrawTextCentered(r.Height/2, msg, color)
	}
}

// renderShip draws a saucer: a flat body, a dome on top and three lights.
func renderShip(c core.Canvas, r Rules, x, y int) {
	w, h := r.EnemyW, r.EnemyH

	c.FillOval(core.NewRect(x, y+h/3, w, h/2), brushShipBody)
	c.FillArc(core.NewRect(x+w/5, y, w-2*w/5, h), brushShipDome)

	lightY := y + h/2
	c.FillOval(core.NewRect(x+8, lightY, 6, 6), brushShipLight)
	c.FillOval(core.NewRect(x+w-14, lightY, 6, 6), brushShipLight)
	c.FillOval(core.NewRect(x+w/2-3, lightY, 6, 6), brushShipLight)
}

// renderCannon draws the cannon with its top-left corner at (x, y).
func renderCannon(c core.Canvas, r Rules, x, y int) {
	w := r.CannonW
	mid := x + w/2

	c.FillRect(core.NewRect(x+5, y+20, w-10, 15), brushCannonBase)
	c.FillRect(core.NewRect(mid-4, y, 8, 25), brushBarrel)
	c.FillPolygon([]core.Point{
		core.Pt(x, y+35),
		core.Pt(x+w, y+35),
		core.Pt(mid, y+20),
	}, brushSupport)

	c.DrawLine(core.Pt(mid-4, y+5), core.Pt(mid+4, y+5), brushDetail)
	c.DrawLine(core.Pt(mid-4, y+10), core.Pt(mid+4, y+10), brushDetail)
}
