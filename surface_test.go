package firework

import "testing"

func TestSurfaceSize(t *testing.T) {
	s := NewSurface(320, 240)
	if w, h := s.Size(); w != 320 || h != 240 {
		t.Errorf("Size = %dx%d, want 320x240", w, h)
	}
	if b := s.Image().Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("image bounds = %v, want 320x240", b)
	}
}

func TestSurfaceResizeReplacesImage(t *testing.T) {
	s := NewSurface(100, 100)
	before := s.Image()

	s.Resize(100, 100)
	if s.Image() != before {
		t.Error("same-size Resize should keep the image")
	}

	s.Resize(200, 50)
	if s.Image() == before {
		t.Error("Resize should replace the image")
	}
	if w, h := s.Size(); w != 200 || h != 50 {
		t.Errorf("Size = %dx%d, want 200x50", w, h)
	}
}

func TestSurfaceResizeClampsToOne(t *testing.T) {
	s := NewSurface(0, -5)
	if w, h := s.Size(); w != 1 || h != 1 {
		t.Errorf("Size = %dx%d, want 1x1", w, h)
	}
}

func TestSurfaceImplementsCanvas(t *testing.T) {
	var _ Canvas = NewSurface(1, 1)
}
