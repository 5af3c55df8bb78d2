package firework

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// processInput is called from Game.Update. Injected events take precedence:
// when one is consumed, real mouse input is skipped for the frame.
func (g *Game) processInput() {
	if !g.processInjectedInput() {
		g.processMousePointer()
	}
	g.processTouchPointers()
}

// processMousePointer feeds the left mouse button through processPointer.
func (g *Game) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	g.processPointer(float64(mx), float64(my), pressed)
}

// processTouchPointers treats every touch that ended this tick as a click at
// its last known position.
func (g *Game) processTouchPointers() {
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		g.click(float64(x), float64(y))
	}
}

// processPointer tracks the press state of the primary pointer. A release
// that follows a press is a click.
func (g *Game) processPointer(x, y float64, pressed bool) {
	switch {
	case pressed && !g.pointerDown:
		g.pointerDown = true
	case !pressed && g.pointerDown:
		g.pointerDown = false
		g.click(x, y)
	}
}

// click spawns a burst when (x, y) falls on the canvas.
func (g *Game) click(x, y float64) {
	if !g.effect.Bounds().Contains(x, y) {
		return
	}
	g.effect.Spawn(x, y)
}
