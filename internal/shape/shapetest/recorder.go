// Package shapetest provides a recording shape.Surface for tests.
package shapetest

import (
	"fmt"
	"strings"

	"VecBoard/internal/geom"
	"VecBoard/internal/shape"
)

// Recorder is a shape.Surface that remembers what was drawn since the last
// Clear, and counts clears and presents.
type Recorder struct {
	W, H     float64
	Ops      []string
	Clears   int
	Presents int
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.Clears++
	r.Ops = r.Ops[:0]
}

func (r *Recorder) Present() { r.Presents++ }

func (r *Recorder) Line(a, b geom.Point, st shape.Stroke) {
	r.Ops = append(r.Ops, fmt.Sprintf("line %v %v", a, b))
}

func (r *Recorder) Polyline(pts []geom.Point, st shape.Stroke) {
	r.Ops = append(r.Ops, fmt.Sprintf("polyline %d", len(pts)))
}

func (r *Recorder) Rect(rc geom.Rect, st shape.Stroke) {
	r.Ops = append(r.Ops, fmt.Sprintf("rect %v %v", rc.Min, rc.Max))
}

func (r *Recorder) Ellipse(rc geom.Rect, st shape.Stroke) {
	r.Ops = append(r.Ops, fmt.Sprintf("ellipse %v %v", rc.Min, rc.Max))
}

func (r *Recorder) Handle(p geom.Point, active bool) {
	if active {
		r.Ops = append(r.Ops, fmt.Sprintf("handle* %v", p))
		return
	}
	r.Ops = append(r.Ops, fmt.Sprintf("handle %v", p))
}

// Count returns how many recorded ops start with prefix.
func (r *Recorder) Count(prefix string) int {
	n := 0
	for _, op := range r.Ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}
