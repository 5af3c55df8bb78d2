package firework

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is a Canvas backed by an offscreen Ebitengine image. Unlike the
// screen image it is never cleared between frames, so each tick composites
// over whatever the previous ticks left behind.
type Surface struct {
	img  *ebiten.Image
	w, h int
}

// NewSurface creates a black surface of the given size.
func NewSurface(width, height int) *Surface {
	s := &Surface{}
	s.Resize(width, height)
	return s
}

// Size returns the surface size in pixels.
func (s *Surface) Size() (int, int) {
	return s.w, s.h
}

// Resize replaces the backing image with a fresh black one. Contents are not
// carried over. Sizes below 1 are raised to 1 because Ebitengine rejects
// empty images.
func (s *Surface) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if s.img != nil && width == s.w && height == s.h {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(width, height)
	s.img.Fill(ColorBlack.RGBA())
	s.w, s.h = width, height
}

// FillRect composites a solid rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c.RGBA(), false)
}

// FillCircle composites an anti-aliased solid circle.
func (s *Surface) FillCircle(cx, cy, r float64, c Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c.RGBA(), true)
}

// Image returns the backing image. It is replaced on every Resize.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// DrawTo copies the surface onto dst at the origin.
func (s *Surface) DrawTo(dst *ebiten.Image) {
	dst.DrawImage(s.img, nil)
}
