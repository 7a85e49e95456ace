package shape

import "VecBoard/internal/geom"

type lineGeom struct {
	a, b    geom.Point
	grabbed int
}

// NewLine is the Factory for straight lines. Dragging moves the far endpoint.
func NewLine(opts Options) (Tool, error) {
	return newFigure(KindLine, opts, &lineGeom{})
}

func (l *lineGeom) start(p geom.Point)  { l.a, l.b = p, p }
func (l *lineGeom) extend(p geom.Point) { l.b = p }

func (l *lineGeom) handles() []geom.Point { return []geom.Point{l.a, l.b} }

func (l *lineGeom) grab(i int) { l.grabbed = i }

func (l *lineGeom) resize(p geom.Point) {
	if l.grabbed == 0 {
		l.a = p
	} else {
		l.b = p
	}
}

func (l *lineGeom) translate(d geom.Point) {
	l.a, l.b = l.a.Add(d), l.b.Add(d)
}

func (l *lineGeom) hit(p geom.Point, tol float64) bool {
	return geom.DistToSegment(p, l.a, l.b) <= tol
}

func (l *lineGeom) bounds() geom.Rect { return geom.RectOf(l.a, l.b) }

func (l *lineGeom) draw(s Surface, st Stroke) { s.Line(l.a, l.b, st) }
