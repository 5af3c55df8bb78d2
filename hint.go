package firework

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	hintText        = "Click anywhere on the screen to create fireworks!"
	hintFadeSeconds = 1.0
	hintMarginTop   = 20
	// The debug font is 6x16 per glyph.
	hintGlyphW = 6
	hintPad    = 8
)

// hint is the instructions banner shown until the first burst, after which
// it fades out.
type hint struct {
	img   *ebiten.Image
	alpha float64
	fade  *gween.Tween
}

func newHint() *hint {
	return &hint{alpha: 1}
}

// hide removes the banner immediately.
func (h *hint) hide() {
	h.alpha = 0
	h.fade = nil
}

// visible reports whether the banner still draws anything.
func (h *hint) visible() bool {
	return h.alpha > 0
}

// update starts the fade once dismissed is true and advances it by dt seconds.
func (h *hint) update(dt float64, dismissed bool) {
	if !h.visible() {
		return
	}
	if h.fade == nil {
		if !dismissed {
			return
		}
		h.fade = gween.New(float32(h.alpha), 0, hintFadeSeconds, ease.OutQuad)
	}
	v, finished := h.fade.Update(float32(dt))
	h.alpha = float64(v)
	if finished {
		h.hide()
	}
}

func (h *hint) draw(screen *ebiten.Image) {
	if !h.visible() {
		return
	}
	if h.img == nil {
		h.img = ebiten.NewImage(len(hintText)*hintGlyphW+2*hintPad, 16+2*hintPad)
		h.img.Fill(color.RGBA{0, 0, 0, 160})
		ebitenutil.DebugPrintAt(h.img, hintText, hintPad, hintPad)
	}
	sw := screen.Bounds().Dx()
	iw := h.img.Bounds().Dx()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(sw-iw)/2, hintMarginTop)
	op.ColorScale.ScaleAlpha(float32(h.alpha))
	screen.DrawImage(h.img, op)
}
