package firework

// Canvas is the 2D drawing context the effect paints into. Implementations
// must keep pixels between calls: the trail effect depends on each tick
// drawing over the previous one instead of starting from a cleared surface.
type Canvas interface {
	// Size returns the current backing size in pixels.
	Size() (width, height int)
	// Resize changes the backing size. Content may be lost.
	Resize(width, height int)
	// FillRect composites a solid rectangle using source-over blending.
	FillRect(x, y, w, h float64, c Color)
	// FillCircle composites a solid circle using source-over blending.
	FillCircle(cx, cy, r float64, c Color)
}
