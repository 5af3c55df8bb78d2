package firework

import (
	"fmt"
	"image/color"
)

// Physics and rendering constants. These are fixed; nothing reads them from
// the environment.
const (
	BurstSize     = 50   // particles spawned per click
	Radius        = 2.0  // particle radius in pixels
	Friction      = 0.99 // velocity multiplier applied every update
	Gravity       = 0.2  // added to vertical velocity every update
	Decay         = 0.01 // alpha lost every update
	TrailAlpha    = 0.1  // alpha of the black overlay painted every tick
	SpeedSpread   = 8.0  // initial velocity range width per axis, centered on 0
	initialAlpha  = 1.0
	defaultWidth  = 800
	defaultHeight = 600
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to Ebitengine.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the background and overlay base color.
var ColorBlack = Color{0, 0, 0, 1}

// Palette is the fixed set of burst colors. One entry is drawn uniformly at
// random for every burst.
var Palette = [...]Color{
	hexColor(0xFF0000), // red
	hexColor(0xFFD700), // gold
	hexColor(0xFF69B4), // hot pink
	hexColor(0x00FF00), // lime
	hexColor(0x4169E1), // royal blue
	hexColor(0xFF4500), // orange red
}

// hexColor converts a 0xRRGGBB literal to an opaque Color.
func hexColor(v uint32) Color {
	return Color{
		R: float64(v>>16&0xFF) / 255,
		G: float64(v>>8&0xFF) / 255,
		B: float64(v&0xFF) / 255,
		A: 1,
	}
}

// WithAlpha returns c with its alpha component replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Hex returns the color as "#RRGGBB", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", to8(c.R), to8(c.G), to8(c.B))
}

// RGBA returns the premultiplied color.RGBA used by the vector package.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: to8(c.R * a),
		G: to8(c.G * a),
		B: to8(c.B * a),
		A: to8(a),
	}
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ToLocal converts client coordinates into coordinates relative to the
// rectangle's origin.
func (r Rect) ToLocal(clientX, clientY float64) (float64, float64) {
	return clientX - r.X, clientY - r.Y
}
