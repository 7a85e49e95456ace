package export

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"VecBoard/internal/geom"
	"VecBoard/internal/shape"
	"VecBoard/internal/shape/shapetest"
	"VecBoard/internal/workspace"
)

func drawing(t *testing.T) *workspace.Workspace {
	t.Helper()
	ws := workspace.New(shapetest.NewRecorder(400, 300), nil, workspace.WithLogger(log.New(io.Discard, "", 0)))
	for _, kind := range []shape.Kind{shape.KindLine, shape.KindRect, shape.KindEllipse, shape.KindPen} {
		ws.SetActiveTool(kind)
		ws.Press(geom.Pt(20, 20))
		ws.Drag(geom.Pt(80, 60))
		ws.Drag(geom.Pt(120, 90))
		ws.Release(geom.Pt(120, 90))
		ws.Press(geom.Pt(390, 290))
	}
	if n := len(ws.Shapes()); n != 4 {
		t.Fatalf("drawing has %d shapes", n)
	}
	return ws
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, drawing(t), 400, 300); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output does not look like a PDF: %q", buf.Bytes()[:16])
	}
}

func TestWritePDFEmptyPage(t *testing.T) {
	err := WritePDF(io.Discard, drawing(t), 0, 300)
	if !errors.Is(err, ErrEmptyPage) {
		t.Fatalf("err = %v", err)
	}
	if _, err := NewPDFSurface(400, -1); !errors.Is(err, ErrEmptyPage) {
		t.Fatalf("negative height: err = %v", err)
	}
}

func TestWritePDFFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawing.pdf")
	if err := WritePDFFile(path, drawing(t), 400, 300); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("empty pdf file")
	}
}

func TestSurfaceIgnoresHandles(t *testing.T) {
	s, err := NewPDFSurface(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	s.Clear()
	s.Handle(geom.Pt(1, 1), true)
	if w, h := s.Size(); w != 100 || h != 100 {
		t.Fatalf("size %vx%v", w, h)
	}
	var buf bytes.Buffer
	if err := s.Output(&buf); err != nil {
		t.Fatal(err)
	}
}
