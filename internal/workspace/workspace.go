// Package workspace owns the shapes of a drawing, the current selection and
// the active tool, and turns mouse events into shape creation, selection and
// manipulation. It is not safe for concurrent use: every method is expected
// to run on the goroutine that delivers input events.
package workspace

import (
	"log"

	"VecBoard/internal/geom"
	"VecBoard/internal/shape"
)

// EventKind is the kind of a mouse event.
type EventKind int

const (
	Press EventKind = iota
	Release
	Move
	Drag
)

func (k EventKind) String() string {
	switch k {
	case Press:
		return "press"
	case Release:
		return "release"
	case Move:
		return "move"
	case Drag:
		return "drag"
	default:
		return "unknown"
	}
}

// Event is a mouse event in surface coordinates.
type Event struct {
	Kind EventKind
	Pos  geom.Point
}

// Workspace is the drawing surface's model and event dispatcher.
type Workspace struct {
	surface  shape.Surface
	registry *shape.Registry
	logger   *log.Logger
	stroke   shape.Stroke

	active   shape.Kind
	world    []shape.Tool
	selected []shape.Tool
	redraws  int
}

type Option func(*Workspace)

func WithLogger(l *log.Logger) Option {
	return func(w *Workspace) { w.logger = l }
}

// WithStroke sets the pen used for newly created shapes.
func WithStroke(st shape.Stroke) Option {
	return func(w *Workspace) { w.stroke = st }
}

// New returns an empty workspace drawing on surface. A nil registry means
// shape.DefaultRegistry.
func New(surface shape.Surface, registry *shape.Registry, opts ...Option) *Workspace {
	if registry == nil {
		registry = shape.DefaultRegistry()
	}
	w := &Workspace{
		surface:  surface,
		registry: registry,
		logger:   log.Default(),
		stroke:   shape.DefaultStroke,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SetActiveTool switches the kind of shape created by the next press. Any
// selection is dropped. It returns false, doing nothing, if kind is already
// active. shape.None switches to selection mode.
func (w *Workspace) SetActiveTool(kind shape.Kind) bool {
	if kind == w.active {
		return false
	}
	w.active = kind
	w.deselectAll()
	w.RenderWorld()
	return true
}

func (w *Workspace) ActiveTool() shape.Kind { return w.active }

// DeleteTool removes the selected shapes from the drawing.
func (w *Workspace) DeleteTool() bool {
	if len(w.selected) == 0 {
		return false
	}
	for _, t := range w.selected {
		if i := indexOf(w.world, t); i >= 0 {
			w.world = append(w.world[:i], w.world[i+1:]...)
			w.logger.Printf("[WORKSPACE] deleted %s %s", t.Kind(), t.ID())
		}
	}
	w.deselectAll()
	w.RenderWorld()
	return true
}

// ClearWorkspace removes every shape.
func (w *Workspace) ClearWorkspace() bool {
	if len(w.world) == 0 {
		return false
	}
	w.deselectAll()
	w.logger.Printf("[WORKSPACE] cleared %d shapes", len(w.world))
	w.world = nil
	w.RenderWorld()
	return true
}

// RenderWorld clears the surface and draws every shape in creation order.
func (w *Workspace) RenderWorld() {
	w.redraws++
	w.renderOnto(w.surface, shape.Tool.Render)
}

// Export draws the world onto another surface, e.g. for printing.
func (w *Workspace) Export(s shape.Surface) {
	w.renderOnto(s, func(t shape.Tool) { t.RenderTo(s) })
}

func (w *Workspace) renderOnto(s shape.Surface, render func(shape.Tool)) {
	s.Clear()
	for _, t := range w.world {
		render(t)
	}
	s.Present()
}

// Handle dispatches one mouse event and redraws.
func (w *Workspace) Handle(ev Event) {
	p := ev.Pos
	switch ev.Kind {
	case Press:
		w.press(p)
	case Release:
		for _, t := range w.selected {
			t.MouseUp(p)
		}
	case Move:
		for _, t := range w.selected {
			t.MouseMove(p)
		}
	case Drag:
		for _, t := range w.selected {
			t.MouseDrag(p)
		}
	default:
		w.logger.Printf("[WORKSPACE] ignoring %s event", ev.Kind)
	}
	w.RenderWorld()
}

func (w *Workspace) Press(p geom.Point)   { w.Handle(Event{Kind: Press, Pos: p}) }
func (w *Workspace) Release(p geom.Point) { w.Handle(Event{Kind: Release, Pos: p}) }
func (w *Workspace) Move(p geom.Point)    { w.Handle(Event{Kind: Move, Pos: p}) }
func (w *Workspace) Drag(p geom.Point)    { w.Handle(Event{Kind: Drag, Pos: p}) }

func (w *Workspace) press(p geom.Point) {
	if w.active != shape.None {
		// An existing selection takes the press instead of starting a new shape.
		if len(w.selected) == 0 {
			w.create()
		}
	} else if !w.selectionContains(p) {
		w.deselectAll()
		// First match in creation order wins, not the topmost shape.
		for _, t := range w.world {
			if t.Contains(p) {
				w.selected = append(w.selected, t)
				t.SetSelected(true)
				break
			}
		}
	}

	handled := false
	for _, t := range w.selected {
		handled = t.MouseDown(p) || handled
	}
	if !handled {
		w.deselectAll()
	}
}

func (w *Workspace) create() {
	t, err := w.registry.New(w.active, shape.Options{Surface: w.surface, Stroke: w.stroke})
	if err != nil {
		w.logger.Printf("[WORKSPACE] could not create shape: %v", err)
		return
	}
	w.world = append(w.world, t)
	w.selected = append(w.selected, t)
	t.SetSelected(true)
}

func (w *Workspace) selectionContains(p geom.Point) bool {
	for _, t := range w.selected {
		if t.Contains(p) {
			return true
		}
	}
	return false
}

func (w *Workspace) deselectAll() {
	for _, t := range w.selected {
		t.SetSelected(false)
	}
	w.selected = nil
}

// Shapes returns the shapes in creation order.
func (w *Workspace) Shapes() []shape.Tool {
	return append([]shape.Tool(nil), w.world...)
}

// Selected returns the selected shapes in selection order.
func (w *Workspace) Selected() []shape.Tool {
	return append([]shape.Tool(nil), w.selected...)
}

func (w *Workspace) Stroke() shape.Stroke { return w.stroke }

// SetStroke changes the pen for shapes created from now on.
func (w *Workspace) SetStroke(st shape.Stroke) { w.stroke = st }

// Redraws counts RenderWorld calls.
func (w *Workspace) Redraws() int { return w.redraws }

func indexOf(ts []shape.Tool, t shape.Tool) int {
	for i, x := range ts {
		if x == t {
			return i
		}
	}
	return -1
}
