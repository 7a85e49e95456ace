// Package shape defines the drawable shapes ("tools") of a workspace, the
// surface they draw on, and the registry used to create them by kind.
package shape

import (
	"errors"
	"image/color"

	"VecBoard/internal/geom"
)

var (
	ErrUnknownKind   = errors.New("shape: unknown tool kind")
	ErrDuplicateKind = errors.New("shape: tool kind already registered")
	ErrInvalidStroke = errors.New("shape: stroke width must be positive")
	ErrNoSurface     = errors.New("shape: no surface")
)

// Kind identifies a shape variant. The zero value None means "no tool".
type Kind string

const (
	None        Kind = ""
	KindLine    Kind = "line"
	KindRect    Kind = "rect"
	KindEllipse Kind = "ellipse"
	KindPen     Kind = "pen"
)

// Stroke is the pen a shape is drawn with.
type Stroke struct {
	Color color.NRGBA
	Width float32
}

// DefaultStroke is a thin black pen.
var DefaultStroke = Stroke{Color: color.NRGBA{A: 255}, Width: 2}

// Surface is a 2D drawing target. Workspaces clear it, have every shape draw
// onto it in order, then present it.
type Surface interface {
	Size() (w, h float64)
	Clear()
	Line(a, b geom.Point, st Stroke)
	Polyline(pts []geom.Point, st Stroke)
	Rect(r geom.Rect, st Stroke)
	Ellipse(r geom.Rect, st Stroke)
	// Handle marks a selection handle. active is set for the handle under
	// the cursor. Non-interactive surfaces may ignore it.
	Handle(p geom.Point, active bool)
	Present()
}

// Tool is a drawable shape driven by mouse events. MouseDown reports whether
// the press landed in the shape's interactive region.
type Tool interface {
	ID() string
	Kind() Kind
	Render()
	RenderTo(s Surface)
	Contains(p geom.Point) bool
	Selected() bool
	SetSelected(selected bool)
	MouseDown(p geom.Point) bool
	MouseUp(p geom.Point)
	MouseMove(p geom.Point)
	MouseDrag(p geom.Point)
}

// Options are handed to a Factory when a new shape is created.
type Options struct {
	Surface Surface
	Stroke  Stroke
}

// Factory builds a new shape of one kind.
type Factory func(Options) (Tool, error)
