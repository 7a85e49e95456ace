package shape

import (
	"github.com/google/uuid"

	"VecBoard/internal/geom"
)

const (
	hitSlop      = 4.0
	handleRadius = 5.0
)

type phase int

const (
	phaseNew phase = iota
	phaseCreating
	phaseIdle
	phaseMoving
	phaseResizing
)

// geometry is the variant-specific part of a shape.
type geometry interface {
	start(p geom.Point)
	extend(p geom.Point)
	handles() []geom.Point
	grab(i int)
	resize(p geom.Point)
	translate(d geom.Point)
	hit(p geom.Point, tol float64) bool
	bounds() geom.Rect
	draw(s Surface, st Stroke)
}

// figure runs the press/drag/release state machine shared by every variant.
type figure struct {
	id       string
	kind     Kind
	surface  Surface
	stroke   Stroke
	selected bool
	phase    phase
	hover    int
	last     geom.Point
	g        geometry
}

func newFigure(kind Kind, opts Options, g geometry) (*figure, error) {
	if opts.Surface == nil {
		return nil, ErrNoSurface
	}
	if opts.Stroke.Width <= 0 {
		return nil, ErrInvalidStroke
	}
	return &figure{
		id:      uuid.NewString(),
		kind:    kind,
		surface: opts.Surface,
		stroke:  opts.Stroke,
		hover:   -1,
		g:       g,
	}, nil
}

func (f *figure) ID() string     { return f.id }
func (f *figure) Kind() Kind     { return f.kind }
func (f *figure) Selected() bool { return f.selected }

func (f *figure) SetSelected(selected bool) {
	f.selected = selected
	if !selected {
		f.hover = -1
	}
}

func (f *figure) tolerance() float64 {
	return hitSlop + float64(f.stroke.Width)/2
}

func (f *figure) handleAt(p geom.Point) int {
	for i, h := range f.g.handles() {
		if h.Dist(p) <= handleRadius+hitSlop {
			return i
		}
	}
	return -1
}

// Contains reports whether p hits the shape. Handles count only while the
// shape is selected, since they are not drawn otherwise.
func (f *figure) Contains(p geom.Point) bool {
	if f.phase == phaseNew {
		return false
	}
	if f.selected && f.handleAt(p) >= 0 {
		return true
	}
	return f.g.hit(p, f.tolerance())
}

func (f *figure) MouseDown(p geom.Point) bool {
	switch f.phase {
	case phaseNew:
		f.g.start(p)
		f.phase = phaseCreating
		return true
	case phaseCreating:
		return true
	}
	if i := f.handleAt(p); i >= 0 {
		f.g.grab(i)
		f.phase = phaseResizing
		return true
	}
	if f.g.hit(p, f.tolerance()) {
		f.last = p
		f.phase = phaseMoving
		return true
	}
	return false
}

func (f *figure) MouseDrag(p geom.Point) {
	switch f.phase {
	case phaseCreating:
		f.g.extend(p)
	case phaseResizing:
		f.g.resize(p)
	case phaseMoving:
		f.g.translate(p.Sub(f.last))
		f.last = p
	}
}

func (f *figure) MouseUp(p geom.Point) {
	if f.phase != phaseNew {
		f.phase = phaseIdle
	}
}

func (f *figure) MouseMove(p geom.Point) {
	if f.phase == phaseIdle {
		f.hover = f.handleAt(p)
	}
}

func (f *figure) Render() { f.RenderTo(f.surface) }

func (f *figure) RenderTo(s Surface) {
	if f.phase == phaseNew {
		return
	}
	f.g.draw(s, f.stroke)
	if !f.selected {
		return
	}
	hs := f.g.handles()
	if len(hs) == 0 {
		for _, c := range f.g.bounds().Outset(f.tolerance()).Corners() {
			s.Handle(c, false)
		}
		return
	}
	for i, h := range hs {
		s.Handle(h, i == f.hover)
	}
}
