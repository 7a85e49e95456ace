package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"VecBoard/internal/geom"
	"VecBoard/internal/shape"
)

const ellipseSegments = 48

var (
	handleStroke = color.NRGBA{R: 30, G: 110, B: 230, A: 255}
	handleFill   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Surface is a shape.Surface that turns drawing calls into fyne canvas
// objects. The owning widget shows whatever was drawn up to the last Present.
type Surface struct {
	size      fyne.Size
	pending   []fyne.CanvasObject
	shown     []fyne.CanvasObject
	OnPresent func()
}

var _ shape.Surface = (*Surface)(nil)

func NewSurface() *Surface {
	return &Surface{}
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.size.Width), float64(s.size.Height)
}

// Resize reports whether the size changed.
func (s *Surface) Resize(size fyne.Size) bool {
	if s.size == size {
		return false
	}
	s.size = size
	return true
}

func (s *Surface) Clear() {
	s.pending = nil
}

// Present publishes everything drawn since Clear.
func (s *Surface) Present() {
	s.shown = s.pending
	s.pending = nil
	if s.OnPresent != nil {
		s.OnPresent()
	}
}

// Objects returns the canvas objects of the last presented frame.
func (s *Surface) Objects() []fyne.CanvasObject {
	return s.shown
}

func (s *Surface) Line(a, b geom.Point, st shape.Stroke) {
	l := canvas.NewLine(st.Color)
	l.StrokeWidth = st.Width
	l.Position1 = toPos(a)
	l.Position2 = toPos(b)
	s.pending = append(s.pending, l)
}

func (s *Surface) Polyline(pts []geom.Point, st shape.Stroke) {
	for i := 1; i < len(pts); i++ {
		s.Line(pts[i-1], pts[i], st)
	}
}

func (s *Surface) Rect(r geom.Rect, st shape.Stroke) {
	rc := canvas.NewRectangle(color.Transparent)
	rc.StrokeColor = st.Color
	rc.StrokeWidth = st.Width
	rc.Move(toPos(r.Min))
	rc.Resize(fyne.NewSize(float32(r.Dx()), float32(r.Dy())))
	s.pending = append(s.pending, rc)
}

func (s *Surface) Ellipse(r geom.Rect, st shape.Stroke) {
	s.Polyline(geom.EllipsePoints(r, ellipseSegments), st)
}

func (s *Surface) Handle(p geom.Point, active bool) {
	fill := handleFill
	if active {
		fill = handleStroke
	}
	const half = 4
	h := canvas.NewRectangle(fill)
	h.StrokeColor = handleStroke
	h.StrokeWidth = 1
	h.Move(fyne.NewPos(float32(p.X)-half, float32(p.Y)-half))
	h.Resize(fyne.NewSize(2*half, 2*half))
	s.pending = append(s.pending, h)
}

func toPos(p geom.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

func toPoint(p fyne.Position) geom.Point {
	return geom.Pt(float64(p.X), float64(p.Y))
}
