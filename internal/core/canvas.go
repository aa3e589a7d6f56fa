package core

import "math"

// Canvas is a drawing surface addressed in logical playfield units.
// Every shape is painted with a brush cell (glyph and color).
type Canvas interface {
	// Size returns the logical width and height of the surface.
	Size() (w, h int)

	// FillRect paints the rectangle.
	FillRect(r Rect, brush Cell)

	// FillOval paints the ellipse inscribed in r.
	FillOval(r Rect, brush Cell)

	// FillArc paints the upper half of the ellipse inscribed in r (a dome).
	FillArc(r Rect, brush Cell)

	// FillPolygon paints the interior of a closed polygon.
	FillPolygon(points []Point, brush Cell)

	// DrawLine paints a straight segment between two points.
	DrawLine(p1, p2 Point, brush Cell)

	// DrawText writes text with its first glyph at (x, y).
	DrawText(x, y int, text string, color Color)

	// DrawTextCentered writes text centered horizontally on row y.
	DrawTextCentered(y int, text string, color Color)
}

// Surface implements Canvas on top of a Screen, scaling logical playfield
// units down to terminal cells. Any non-empty shape paints at least one cell.
type Surface struct {
	dst      *Screen
	logicalW int
	logicalH int
	scaleX   float64 // cells per logical unit, horizontally
	scaleY   float64 // cells per logical unit, vertically
}

var _ Canvas = (*Surface)(nil)

// NewSurface creates a surface mapping a logicalW x logicalH playfield onto dst.
// Non-positive logical sizes fall back to a 1:1 mapping.
func NewSurface(dst *Screen, logicalW, logicalH int) *Surface {
	if logicalW <= 0 {
		logicalW = max(dst.Width(), 1)
	}
	if logicalH <= 0 {
		logicalH = max(dst.Height(), 1)
	}
	return &Surface{
		dst:      dst,
		logicalW: logicalW,
		logicalH: logicalH,
		scaleX:   float64(dst.Width()) / float64(logicalW),
		scaleY:   float64(dst.Height()) / float64(logicalH),
	}
}

// Size returns the logical playfield size.
func (s *Surface) Size() (int, int) {
	return s.logicalW, s.logicalH
}

// CellAt converts a logical position to the cell containing it.
func (s *Surface) CellAt(x, y float64) (int, int) {
	return int(math.Floor(x * s.scaleX)), int(math.Floor(y * s.scaleY))
}

// cellSpan converts a logical rectangle to an inclusive cell range.
func (s *Surface) cellSpan(r Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(float64(r.X) * s.scaleX))
	y0 = int(math.Floor(float64(r.Y) * s.scaleY))
	x1 = int(math.Ceil(float64(r.Right())*s.scaleX)) - 1
	y1 = int(math.Ceil(float64(r.Bottom())*s.scaleY)) - 1
	x1 = max(x1, x0)
	y1 = max(y1, y0)
	return x0, y0, x1, y1
}

// cellCenter returns the logical coordinates of a cell's center.
func (s *Surface) cellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) / s.scaleX, (float64(cy) + 0.5) / s.scaleY
}

// FillRect paints every cell the rectangle touches.
func (s *Surface) FillRect(r Rect, brush Cell) {
	if r.Empty() {
		return
	}
	x0, y0, x1, y1 := s.cellSpan(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.dst.SetCell(x, y, brush)
		}
	}
}

// FillOval paints cells whose centers fall inside the inscribed ellipse.
func (s *Surface) FillOval(r Rect, brush Cell) {
	s.fillEllipse(r, brush, false)
}

// FillArc paints the upper half of the inscribed ellipse.
func (s *Surface) FillArc(r Rect, brush Cell) {
	s.fillEllipse(r, brush, true)
}

func (s *Surface) fillEllipse(r Rect, brush Cell, upperOnly bool) {
	if r.Empty() {
		return
	}
	ecx := float64(r.X) + float64(r.W)/2
	ecy := float64(r.Y) + float64(r.H)/2
	rx := float64(r.W) / 2
	ry := float64(r.H) / 2

	painted := false
	x0, y0, x1, y1 := s.cellSpan(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			lx, ly := s.cellCenter(x, y)
			if upperOnly && ly > ecy {
				continue
			}
			dx := (lx - ecx) / rx
			dy := (ly - ecy) / ry
			if dx*dx+dy*dy <= 1 {
				s.dst.SetCell(x, y, brush)
				painted = true
			}
		}
	}

	if !painted {
		anchorY := ecy
		if upperOnly {
			anchorY = float64(r.Y) + ry/2
		}
		cx, cy := s.CellAt(ecx, anchorY)
		s.dst.SetCell(cx, cy, brush)
	}
}

// FillPolygon paints cells whose centers are inside the polygon (even-odd rule).
func (s *Surface) FillPolygon(points []Point, brush Cell) {
	if len(points) < 3 {
		return
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	bounds := NewRect(int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX-minX)), int(math.Ceil(maxY-minY)))
	if bounds.Empty() {
		return
	}

	painted := false
	x0, y0, x1, y1 := s.cellSpan(bounds)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			lx, ly := s.cellCenter(x, y)
			if pointInPolygon(lx, ly, points) {
				s.dst.SetCell(x, y, brush)
				painted = true
			}
		}
	}

	if !painted {
		cx, cy := s.CellAt((minX+maxX)/2, (minY+maxY)/2)
		s.dst.SetCell(cx, cy, brush)
	}
}

// pointInPolygon is the ray casting test.
func pointInPolygon(x, y float64, points []Point) bool {
	inside := false
	n := len(points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := points[i], points[j]
		if (pi.Y > y) != (pj.Y > y) {
			crossX := pj.X + (y-pj.Y)*(pi.X-pj.X)/(pi.Y-pj.Y)
			if x < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

// DrawLine draws a segment with Bresenham's algorithm in cell space.
func (s *Surface) DrawLine(p1, p2 Point, brush Cell) {
	x1, y1 := s.CellAt(p1.X, p1.Y)
	x2, y2 := s.CellAt(p2.X, p2.Y)

	dx := Abs(x2 - x1)
	dy := Abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		s.dst.SetCell(x1, y1, brush)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawText writes text starting at the cell containing (x, y).
func (s *Surface) DrawText(x, y int, text string, color Color) {
	cx, cy := s.CellAt(float64(x), float64(y))
	s.dst.DrawColorText(cx, cy, text, color)
}

// DrawTextCentered writes text centered on the screen row containing logical y.
func (s *Surface) DrawTextCentered(y int, text string, color Color) {
	_, cy := s.CellAt(0, float64(y))
	cx := (s.dst.Width() - len([]rune(text))) / 2
	s.dst.DrawColorText(cx, cy, text, color)
}
