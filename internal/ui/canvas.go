package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"VecBoard/internal/geom"
	"VecBoard/internal/shape"
	"VecBoard/internal/workspace"
)

// WorkspaceCanvas is the widget the user draws on. It forwards mouse input
// to its workspace and shows the workspace's surface.
type WorkspaceCanvas struct {
	widget.BaseWidget
	ws      *workspace.Workspace
	surface *Surface

	pressed bool
	last    geom.Point
}

var _ fyne.Widget = (*WorkspaceCanvas)(nil)
var _ fyne.Draggable = (*WorkspaceCanvas)(nil)
var _ desktop.Mouseable = (*WorkspaceCanvas)(nil)
var _ desktop.Hoverable = (*WorkspaceCanvas)(nil)

func NewWorkspaceCanvas(reg *shape.Registry, opts ...workspace.Option) *WorkspaceCanvas {
	c := &WorkspaceCanvas{surface: NewSurface()}
	c.ws = workspace.New(c.surface, reg, opts...)
	c.surface.OnPresent = c.Refresh
	c.ExtendBaseWidget(c)
	return c
}

func (c *WorkspaceCanvas) Workspace() *workspace.Workspace { return c.ws }

func (c *WorkspaceCanvas) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.pressed = true
	c.last = toPoint(e.Position)
	c.ws.Press(c.last)
}

func (c *WorkspaceCanvas) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.release(toPoint(e.Position))
}

func (c *WorkspaceCanvas) Dragged(e *fyne.DragEvent) {
	if !c.pressed {
		return
	}
	c.last = toPoint(e.Position)
	c.ws.Drag(c.last)
}

// DragEnd also finishes the press, since fyne does not always follow a drag
// with MouseUp.
func (c *WorkspaceCanvas) DragEnd() {
	c.release(c.last)
}

func (c *WorkspaceCanvas) release(p geom.Point) {
	if !c.pressed {
		return
	}
	c.pressed = false
	c.ws.Release(p)
}

func (c *WorkspaceCanvas) MouseMoved(e *desktop.MouseEvent) {
	if c.pressed {
		return
	}
	c.ws.Move(toPoint(e.Position))
}

func (c *WorkspaceCanvas) MouseIn(*desktop.MouseEvent) {}
func (c *WorkspaceCanvas) MouseOut()                   {}

func (c *WorkspaceCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &workspaceRenderer{
		canvas:     c,
		background: canvas.NewRectangle(color.White),
	}
}

type workspaceRenderer struct {
	canvas     *WorkspaceCanvas
	background *canvas.Rectangle
}

// Layout keeps the surface the size of the widget and redraws on change.
func (r *workspaceRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	if r.canvas.surface.Resize(size) {
		log.Printf("[CANVAS] resized to %.0fx%.0f", size.Width, size.Height)
		r.canvas.ws.RenderWorld()
	}
}

func (r *workspaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *workspaceRenderer) Objects() []fyne.CanvasObject {
	shown := r.canvas.surface.Objects()
	objects := make([]fyne.CanvasObject, 0, len(shown)+1)
	objects = append(objects, r.background)
	return append(objects, shown...)
}

func (r *workspaceRenderer) Refresh() {
	canvas.Refresh(r.canvas)
}

func (r *workspaceRenderer) Destroy() {}
