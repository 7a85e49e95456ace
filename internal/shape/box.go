package shape

import "VecBoard/internal/geom"

// boxGeom backs both rectangles and ellipses: a box spanned by an anchor
// corner and a free corner that follows the mouse.
type boxGeom struct {
	anchor, free geom.Point
	ellipse      bool
}

// NewRect is the Factory for rectangles.
func NewRect(opts Options) (Tool, error) {
	return newFigure(KindRect, opts, &boxGeom{})
}

// NewEllipse is the Factory for ellipses inscribed in the dragged box.
func NewEllipse(opts Options) (Tool, error) {
	return newFigure(KindEllipse, opts, &boxGeom{ellipse: true})
}

func (b *boxGeom) start(p geom.Point)  { b.anchor, b.free = p, p }
func (b *boxGeom) extend(p geom.Point) { b.free = p }

func (b *boxGeom) handles() []geom.Point {
	c := b.bounds().Corners()
	return c[:]
}

// grab pins the corner opposite handle i so it stays put while resizing.
func (b *boxGeom) grab(i int) {
	c := b.bounds().Corners()
	b.anchor = c[(i+2)%4]
	b.free = c[i]
}

func (b *boxGeom) resize(p geom.Point) { b.free = p }

func (b *boxGeom) translate(d geom.Point) {
	b.anchor, b.free = b.anchor.Add(d), b.free.Add(d)
}

func (b *boxGeom) bounds() geom.Rect { return geom.RectOf(b.anchor, b.free) }

func (b *boxGeom) hit(p geom.Point, tol float64) bool {
	r := b.bounds().Outset(tol)
	if !b.ellipse {
		return r.Contains(p)
	}
	c := r.Center()
	rx, ry := r.Dx()/2, r.Dy()/2
	nx, ny := (p.X-c.X)/rx, (p.Y-c.Y)/ry
	return nx*nx+ny*ny <= 1
}

func (b *boxGeom) draw(s Surface, st Stroke) {
	if b.ellipse {
		s.Ellipse(b.bounds(), st)
		return
	}
	s.Rect(b.bounds(), st)
}
