package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"VecBoard/internal/config"
	"VecBoard/internal/shape"
)

const selectTitle = "Select"

var toolTitles = map[shape.Kind]string{
	shape.KindLine:    "Line",
	shape.KindRect:    "Rectangle",
	shape.KindEllipse: "Ellipse",
	shape.KindPen:     "Pen",
}

func toolTitle(k shape.Kind) string {
	if k == shape.None {
		return selectTitle
	}
	if t, ok := toolTitles[k]; ok {
		return t
	}
	return string(k)
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the controls that drive a workspace canvas.
type Toolbar struct {
	Tools  *widget.RadioGroup
	Stroke *widget.Slider
	kinds  map[string]shape.Kind
	app    *App
}

func newToolbar(a *App, reg *shape.Registry) *Toolbar {
	tb := &Toolbar{app: a, kinds: map[string]shape.Kind{selectTitle: shape.None}}
	ws := a.Canvas.Workspace()

	options := []string{selectTitle}
	for _, k := range reg.Kinds() {
		title := toolTitle(k)
		tb.kinds[title] = k
		options = append(options, title)
	}
	tb.Tools = widget.NewRadioGroup(options, func(title string) {
		kind, ok := tb.kinds[title]
		if !ok {
			// Deselecting the radio group means "no tool".
			kind = shape.None
		}
		if ws.SetActiveTool(kind) {
			a.SetStatus(toolTitle(kind) + " tool")
		}
	})
	tb.Tools.Horizontal = true

	tb.Stroke = widget.NewSlider(1, 40)
	tb.Stroke.SetValue(float64(ws.Stroke().Width))
	tb.Stroke.OnChanged = func(v float64) {
		st := ws.Stroke()
		st.Width = float32(v)
		ws.SetStroke(st)
	}
	return tb
}

// SelectTool switches the workspace to kind and keeps the radio group in step.
func (tb *Toolbar) SelectTool(kind shape.Kind) {
	tb.Tools.SetSelected(toolTitle(kind))
}

func (tb *Toolbar) object() fyne.CanvasObject {
	a := tb.app
	ws := a.Canvas.Workspace()

	onColorTapped := func(c color.Color) {
		st := ws.Stroke()
		st.Color = color.NRGBAModel.Convert(c).(color.NRGBA)
		ws.SetStroke(st)
		a.SetStatus("Colour " + config.ColorName(c))
	}
	colorBox := container.NewHBox()
	for _, name := range config.Palette() {
		c, _ := config.ParseColor(name)
		colorBox.Add(newColorSwatch(c, onColorTapped))
	}

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.DeleteIcon(), a.DeleteSelected),
		widget.NewToolbarAction(theme.ContentClearIcon(), a.ClearAll),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), a.ExportPDF),
	)

	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), tb.Stroke)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb.Tools,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
		actions,
	)
}

func shapeCount(n int) string {
	if n == 1 {
		return "1 shape"
	}
	return fmt.Sprintf("%d shapes", n)
}
