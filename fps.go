package firework

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const hudRefresh = 0.5 // seconds between HUD redraws

// hud displays FPS, TPS and the live particle count in the top-left corner.
// The text is re-rendered about twice a second.
type hud struct {
	img       *ebiten.Image
	text      string
	sinceLast float64
	dirty     bool
}

func newHUD() *hud {
	return &hud{text: hudText(0, 0, 0), dirty: true}
}

func hudText(fps, tps float64, particles int) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nParticles: %d", fps, tps, particles)
}

// update refreshes the text when the refresh interval has elapsed.
func (h *hud) update(dt float64, particles int) {
	h.sinceLast += dt
	if h.sinceLast < hudRefresh {
		return
	}
	h.sinceLast = 0
	h.text = hudText(ebiten.ActualFPS(), ebiten.ActualTPS(), particles)
	h.dirty = true
}

func (h *hud) draw(screen *ebiten.Image) {
	if h.img == nil {
		// 120x48 fits three lines of the debug font.
		h.img = ebiten.NewImage(120, 48)
	}
	if h.dirty {
		h.img.Clear()
		// Semi-transparent background for readability
		h.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(h.img, h.text)
		h.dirty = false
	}
	screen.DrawImage(h.img, nil)
}
