// Package config holds the application settings. They are stored in the
// fyne app preferences and can be overridden from the command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"net"

	"fyne.io/fyne/v2"

	"VecBoard/internal/shape"
)

var ErrInvalid = errors.New("invalid config")

const (
	keyTool          = "tool"
	keyStrokeColor   = "stroke.color"
	keyStrokeWidth   = "stroke.width"
	keyRemoteEnabled = "remote.enabled"
	keyRemoteAddr    = "remote.addr"
	keyAdvertise     = "remote.advertise"
	keyWindowWidth   = "window.width"
	keyWindowHeight  = "window.height"
)

type Config struct {
	DefaultTool   shape.Kind
	StrokeColor   string
	StrokeWidth   float64
	RemoteEnabled bool
	RemoteAddr    string
	Advertise     bool
	WindowWidth   float64
	WindowHeight  float64
}

func Defaults() Config {
	return Config{
		DefaultTool:  shape.None,
		StrokeColor:  "black",
		StrokeWidth:  2,
		RemoteAddr:   ":8888",
		WindowWidth:  1024,
		WindowHeight: 768,
	}
}

// Load reads the stored settings, falling back to Defaults for missing keys.
func Load(p fyne.Preferences) Config {
	d := Defaults()
	return Config{
		DefaultTool:   shape.Kind(p.StringWithFallback(keyTool, string(d.DefaultTool))),
		StrokeColor:   p.StringWithFallback(keyStrokeColor, d.StrokeColor),
		StrokeWidth:   p.FloatWithFallback(keyStrokeWidth, d.StrokeWidth),
		RemoteEnabled: p.BoolWithFallback(keyRemoteEnabled, d.RemoteEnabled),
		RemoteAddr:    p.StringWithFallback(keyRemoteAddr, d.RemoteAddr),
		Advertise:     p.BoolWithFallback(keyAdvertise, d.Advertise),
		WindowWidth:   p.FloatWithFallback(keyWindowWidth, d.WindowWidth),
		WindowHeight:  p.FloatWithFallback(keyWindowHeight, d.WindowHeight),
	}
}

// SaveDrawing stores the tool and pen picked in the UI and leaves every other
// key in p alone, so command line overrides last for a single run.
func SaveDrawing(p fyne.Preferences, tool shape.Kind, st shape.Stroke) {
	p.SetString(keyTool, string(tool))
	p.SetString(keyStrokeColor, ColorName(st.Color))
	p.SetFloat(keyStrokeWidth, float64(st.Width))
}

// BindFlags registers command line flags that override c's current values.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar((*string)(&c.DefaultTool), "tool", string(c.DefaultTool), "tool active at startup (empty for select)")
	fs.StringVar(&c.StrokeColor, "color", c.StrokeColor, "stroke colour name")
	fs.Float64Var(&c.StrokeWidth, "stroke", c.StrokeWidth, "stroke width")
	fs.BoolVar(&c.RemoteEnabled, "remote", c.RemoteEnabled, "accept pointer events over websocket")
	fs.StringVar(&c.RemoteAddr, "remote-addr", c.RemoteAddr, "listen address for remote input")
	fs.BoolVar(&c.Advertise, "mdns", c.Advertise, "advertise remote input over mDNS")
	fs.Float64Var(&c.WindowWidth, "width", c.WindowWidth, "initial window width")
	fs.Float64Var(&c.WindowHeight, "height", c.WindowHeight, "initial window height")
}

// Validate checks c against the shapes known to reg.
func (c Config) Validate(reg *shape.Registry) error {
	if c.DefaultTool != shape.None && !reg.Has(c.DefaultTool) {
		return fmt.Errorf("%w: unknown tool %q", ErrInvalid, c.DefaultTool)
	}
	if _, ok := ParseColor(c.StrokeColor); !ok {
		return fmt.Errorf("%w: unknown colour %q", ErrInvalid, c.StrokeColor)
	}
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("%w: stroke width %v", ErrInvalid, c.StrokeWidth)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %vx%v", ErrInvalid, c.WindowWidth, c.WindowHeight)
	}
	if c.RemoteEnabled {
		if _, _, err := net.SplitHostPort(c.RemoteAddr); err != nil {
			return fmt.Errorf("%w: remote address: %v", ErrInvalid, err)
		}
	}
	return nil
}

// Stroke is the pen for new shapes.
func (c Config) Stroke() shape.Stroke {
	col, _ := ParseColor(c.StrokeColor)
	return shape.Stroke{Color: col, Width: float32(c.StrokeWidth)}
}

var palette = []struct {
	name string
	c    color.NRGBA
}{
	{"black", color.NRGBA{A: 255}},
	{"red", color.NRGBA{R: 255, A: 255}},
	{"green", color.NRGBA{G: 255, A: 255}},
	{"blue", color.NRGBA{B: 255, A: 255}},
	{"yellow", color.NRGBA{R: 255, G: 255, A: 255}},
}

// Palette lists the colour names in toolbar order.
func Palette() []string {
	names := make([]string, len(palette))
	for i, p := range palette {
		names[i] = p.name
	}
	return names
}

func ParseColor(name string) (color.NRGBA, bool) {
	for _, p := range palette {
		if p.name == name {
			return p.c, true
		}
	}
	return color.NRGBA{}, false
}

// ColorName maps a palette colour back to its name, or "black".
func ColorName(c color.Color) string {
	want := color.NRGBAModel.Convert(c).(color.NRGBA)
	for _, p := range palette {
		if p.c == want {
			return p.name
		}
	}
	return "black"
}
