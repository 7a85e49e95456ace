package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"VecBoard/internal/config"
	"VecBoard/internal/export"
	"VecBoard/internal/shape"
	"VecBoard/internal/workspace"
)

// App is the main window: toolbar on top, drawing canvas in the middle and a
// status line at the bottom.
type App struct {
	Window  fyne.Window
	Canvas  *WorkspaceCanvas
	Toolbar *Toolbar
	status  *widget.Label
}

func NewApp(a fyne.App, cfg config.Config, reg *shape.Registry) *App {
	w := a.NewWindow("VecBoard")
	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	app := &App{
		Window: w,
		Canvas: NewWorkspaceCanvas(reg, workspace.WithStroke(cfg.Stroke())),
		status: widget.NewLabel("Ready"),
	}
	app.Toolbar = newToolbar(app, reg)
	app.Toolbar.SelectTool(cfg.DefaultTool)

	w.Canvas().SetOnTypedKey(app.typedKey)
	w.SetContent(container.NewBorder(app.Toolbar.object(), app.status, nil, nil, app.Canvas))
	return app
}

func (a *App) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyDelete, fyne.KeyBackspace:
		a.DeleteSelected()
	case fyne.KeyEscape:
		a.Toolbar.SelectTool(shape.None)
	}
}

// SetStatus must be called on the UI goroutine.
func (a *App) SetStatus(text string) {
	a.status.SetText(text)
}

func (a *App) Status() string { return a.status.Text }

func (a *App) DeleteSelected() {
	ws := a.Canvas.Workspace()
	if ws.DeleteTool() {
		a.SetStatus("Deleted, " + shapeCount(len(ws.Shapes())) + " left")
	}
}

func (a *App) ClearAll() {
	if a.Canvas.Workspace().ClearWorkspace() {
		a.SetStatus("Cleared")
	}
}

// ExportPDF asks for a file and writes the drawing to it.
func (a *App) ExportPDF() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.Window)
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("[UI] closing %s: %v", writer.URI(), err)
			}
		}()
		size := a.Canvas.Size()
		if err := export.WritePDF(writer, a.Canvas.Workspace(), float64(size.Width), float64(size.Height)); err != nil {
			log.Printf("[UI] export failed: %v", err)
			dialog.ShowError(err, a.Window)
			return
		}
		a.SetStatus("Exported " + writer.URI().Name())
	}, a.Window)
}

func (a *App) ShowAndRun() {
	a.Window.ShowAndRun()
}
