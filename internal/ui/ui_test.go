package ui

import (
	"io"
	"log"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"VecBoard/internal/config"
	"VecBoard/internal/geom"
	"VecBoard/internal/shape"
	"VecBoard/internal/workspace"
)

func quiet() workspace.Option { return workspace.WithLogger(log.New(io.Discard, "", 0)) }

func mouse(x, y float32, b desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     b,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestCanvasResizeSyncsSurface(t *testing.T) {
	test.NewTempApp(t)
	c := NewWorkspaceCanvas(nil, quiet())
	before := c.Workspace().Redraws()

	c.Resize(fyne.NewSize(400, 300))
	if w, h := c.surface.Size(); w != 400 || h != 300 {
		t.Fatalf("surface %vx%v", w, h)
	}
	if c.Workspace().Redraws() != before+1 {
		t.Fatal("resize did not redraw")
	}

	c.Resize(fyne.NewSize(400, 300))
	if c.Workspace().Redraws() != before+1 {
		t.Fatal("same size redrew")
	}
}

func TestCanvasMouseDrivesWorkspace(t *testing.T) {
	test.NewTempApp(t)
	c := NewWorkspaceCanvas(nil, quiet())
	c.Resize(fyne.NewSize(400, 300))
	ws := c.Workspace()
	ws.SetActiveTool(shape.KindRect)

	// Secondary button is ignored.
	c.MouseDown(mouse(10, 10, desktop.MouseButtonSecondary))
	if len(ws.Shapes()) != 0 {
		t.Fatal("secondary press created a shape")
	}

	c.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	c.Dragged(drag(60, 50))
	c.MouseMoved(mouse(60, 50, desktop.MouseButtonPrimary))
	c.MouseUp(mouse(60, 50, desktop.MouseButtonPrimary))
	redraws := ws.Redraws()
	c.DragEnd()
	if ws.Redraws() != redraws {
		t.Fatal("DragEnd after MouseUp released twice")
	}

	if len(ws.Shapes()) != 1 || len(ws.Selected()) != 1 {
		t.Fatalf("world %d selected %d", len(ws.Shapes()), len(ws.Selected()))
	}
	if !ws.Shapes()[0].Contains(geom.Pt(30, 30)) {
		t.Fatal("rectangle does not cover the dragged area")
	}
	// Rectangle plus four handles.
	if n := len(c.surface.Objects()); n != 5 {
		t.Fatalf("surface objects = %d", n)
	}
	r := test.WidgetRenderer(c)
	if n := len(r.Objects()); n != 6 {
		t.Fatalf("renderer objects = %d", n)
	}
}

func TestDragEndReleases(t *testing.T) {
	test.NewTempApp(t)
	c := NewWorkspaceCanvas(nil, quiet())
	ws := c.Workspace()
	ws.SetActiveTool(shape.KindLine)

	c.MouseDown(mouse(0, 0, desktop.MouseButtonPrimary))
	c.Dragged(drag(50, 0))
	c.DragEnd()
	if c.pressed {
		t.Fatal("press still active after DragEnd")
	}

	// The line is finished, so a press on it moves it instead of extending.
	c.MouseDown(mouse(25, 0, desktop.MouseButtonPrimary))
	c.Dragged(drag(25, 40))
	c.MouseUp(mouse(25, 40, desktop.MouseButtonPrimary))
	if !ws.Shapes()[0].Contains(geom.Pt(0, 40)) {
		t.Fatal("line was not moved")
	}
}

func TestAppKeysAndActions(t *testing.T) {
	a := test.NewTempApp(t)
	cfg := config.Defaults()
	cfg.DefaultTool = shape.KindEllipse
	app := NewApp(a, cfg, shape.DefaultRegistry())
	app.Canvas.Resize(fyne.NewSize(400, 300))
	ws := app.Canvas.Workspace()

	if ws.ActiveTool() != shape.KindEllipse || app.Toolbar.Tools.Selected != "Ellipse" {
		t.Fatalf("default tool %q / radio %q", ws.ActiveTool(), app.Toolbar.Tools.Selected)
	}

	app.Canvas.MouseDown(mouse(100, 100, desktop.MouseButtonPrimary))
	app.Canvas.Dragged(drag(200, 160))
	app.Canvas.MouseUp(mouse(200, 160, desktop.MouseButtonPrimary))
	if len(ws.Shapes()) != 1 {
		t.Fatalf("world %d", len(ws.Shapes()))
	}

	app.Window.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	if len(ws.Shapes()) != 0 {
		t.Fatal("backspace did not delete the selected shape")
	}
	if app.Status() != "Deleted, 0 shapes left" {
		t.Fatalf("status %q", app.Status())
	}

	app.Window.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if ws.ActiveTool() != shape.None || app.Toolbar.Tools.Selected != selectTitle {
		t.Fatal("escape did not switch to select mode")
	}

	app.Toolbar.Stroke.OnChanged(9)
	if ws.Stroke().Width != 9 {
		t.Fatalf("stroke width %v", ws.Stroke().Width)
	}

	app.Toolbar.SelectTool(shape.KindPen)
	app.Canvas.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	app.Canvas.Dragged(drag(20, 20))
	app.Canvas.MouseUp(mouse(20, 20, desktop.MouseButtonPrimary))
	app.ClearAll()
	if len(ws.Shapes()) != 0 || app.Status() != "Cleared" {
		t.Fatalf("clear left %d shapes, status %q", len(ws.Shapes()), app.Status())
	}
}
