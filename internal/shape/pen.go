package shape

import "VecBoard/internal/geom"

// penGeom is a freehand stroke. It can be moved but has no resize handles.
type penGeom struct {
	points []geom.Point
	box    geom.Rect
}

// NewPen is the Factory for freehand strokes.
func NewPen(opts Options) (Tool, error) {
	return newFigure(KindPen, opts, &penGeom{})
}

func (g *penGeom) start(p geom.Point) {
	g.points = []geom.Point{p}
	g.box = geom.Bounds(g.points)
}

func (g *penGeom) extend(p geom.Point) {
	if n := len(g.points); n > 0 && g.points[n-1] == p {
		return
	}
	g.points = append(g.points, p)
	g.box = g.box.Union(geom.RectOf(p, p))
}

func (g *penGeom) handles() []geom.Point { return nil }
func (g *penGeom) grab(int)              {}
func (g *penGeom) resize(geom.Point)     {}

func (g *penGeom) translate(d geom.Point) {
	for i := range g.points {
		g.points[i] = g.points[i].Add(d)
	}
	g.box = g.box.Translate(d)
}

func (g *penGeom) hit(p geom.Point, tol float64) bool {
	switch len(g.points) {
	case 0:
		return false
	case 1:
		return g.points[0].Dist(p) <= tol
	}
	near := geom.RectOf(p, p).Outset(tol)
	if !g.box.Overlaps(near) {
		return false
	}
	for i := 1; i < len(g.points); i++ {
		if geom.DistToSegment(p, g.points[i-1], g.points[i]) <= tol {
			return true
		}
	}
	return false
}

func (g *penGeom) bounds() geom.Rect { return g.box }

func (g *penGeom) draw(s Surface, st Stroke) {
	if len(g.points) == 1 {
		s.Line(g.points[0], g.points[0], st)
		return
	}
	s.Polyline(g.points, st)
}
