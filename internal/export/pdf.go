// Package export renders a workspace onto a PDF page.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"VecBoard/internal/geom"
	"VecBoard/internal/shape"
)

var ErrEmptyPage = errors.New("export: page size must be positive")

// Exporter draws its shapes onto a surface. *workspace.Workspace is one.
type Exporter interface {
	Export(s shape.Surface)
}

// PDFSurface is a shape.Surface backed by a PDF document with one point per
// surface unit. Every Clear starts a new page. Handles are not drawn.
type PDFSurface struct {
	pdf  *gofpdf.Fpdf
	w, h float64
}

var _ shape.Surface = (*PDFSurface)(nil)

func NewPDFSurface(w, h float64) (*PDFSurface, error) {
	if (geom.Rect{Max: geom.Pt(w, h)}).Empty() {
		return nil, fmt.Errorf("%w: %vx%v", ErrEmptyPage, w, h)
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	return &PDFSurface{pdf: pdf, w: w, h: h}, nil
}

func (s *PDFSurface) Size() (float64, float64) { return s.w, s.h }

func (s *PDFSurface) Clear()   { s.pdf.AddPage() }
func (s *PDFSurface) Present() {}

func (s *PDFSurface) Handle(geom.Point, bool) {}

func (s *PDFSurface) pen(st shape.Stroke) {
	s.pdf.SetDrawColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
	s.pdf.SetLineWidth(float64(st.Width))
}

func (s *PDFSurface) Line(a, b geom.Point, st shape.Stroke) {
	s.pen(st)
	s.pdf.Line(a.X, a.Y, b.X, b.Y)
}

func (s *PDFSurface) Polyline(pts []geom.Point, st shape.Stroke) {
	if len(pts) == 0 {
		return
	}
	s.pen(st)
	s.pdf.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.pdf.LineTo(p.X, p.Y)
	}
	s.pdf.DrawPath("D")
}

func (s *PDFSurface) Rect(r geom.Rect, st shape.Stroke) {
	s.pen(st)
	s.pdf.Rect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), "D")
}

func (s *PDFSurface) Ellipse(r geom.Rect, st shape.Stroke) {
	s.pen(st)
	c := r.Center()
	s.pdf.Ellipse(c.X, c.Y, r.Dx()/2, r.Dy()/2, 0, "D")
}

// Output writes the finished document.
func (s *PDFSurface) Output(w io.Writer) error {
	return s.pdf.Output(w)
}

// WritePDF renders e onto a w by h page and writes it to out.
func WritePDF(out io.Writer, e Exporter, w, h float64) error {
	s, err := NewPDFSurface(w, h)
	if err != nil {
		return err
	}
	e.Export(s)
	if err := s.Output(out); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}

// WritePDFFile is WritePDF into a new file at path.
func WritePDFFile(path string, e Exporter, w, h float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := WritePDF(f, e, w, h); err != nil {
		return err
	}
	return f.Close()
}
