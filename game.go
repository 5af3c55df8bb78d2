package firework

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds the options for Run and NewGame.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size. Zero selects 800x600.
	Width, Height int
	// ShowFPS draws the FPS / particle count overlay.
	ShowFPS bool
	// HideHint suppresses the instructions banner.
	HideHint bool
	// Debug prints per-tick stats to stderr.
	Debug bool
	// Script is an optional JSON test script (see LoadTestScript).
	Script []byte
	// ExitOnScriptDone ends the game loop once the script has finished.
	ExitOnScriptDone bool
	// ScreenshotDir is where Screenshot writes PNGs. Empty selects "screenshots".
	ScreenshotDir string
}

// Game adapts an Effect to ebiten.Game. It owns the surface, the frame
// queue driving the effect and the viewport feeding it resizes.
type Game struct {
	// ScreenshotDir is the directory for screenshot PNGs.
	ScreenshotDir string

	cfg      RunConfig
	surface  *Surface
	effect   *Effect
	frames   *FrameQueue
	viewport *Viewport
	hint     *hint
	hud      *hud
	runner   *TestRunner

	injectQueue     []syntheticPointerEvent
	pointerDown     bool
	screenshotQueue []string

	layoutW, layoutH int
	windowed         bool
	closed           bool
}

// NewGame builds a game around a freshly mounted effect. Options are passed
// through to NewEffect.
func NewGame(cfg RunConfig, opts ...Option) (*Game, error) {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	g := &Game{
		ScreenshotDir: cfg.ScreenshotDir,
		cfg:           cfg,
		surface:       NewSurface(cfg.Width, cfg.Height),
		frames:        NewFrameQueue(),
		viewport:      NewViewport(cfg.Width, cfg.Height),
		hint:          newHint(),
		hud:           newHUD(),
		layoutW:       cfg.Width,
		layoutH:       cfg.Height,
	}
	if g.ScreenshotDir == "" {
		g.ScreenshotDir = "screenshots"
	}
	if cfg.HideHint {
		g.hint.hide()
	}
	if len(cfg.Script) > 0 {
		runner, err := LoadTestScript(cfg.Script)
		if err != nil {
			return nil, err
		}
		g.runner = runner
	}

	opts = append([]Option{WithDebug(cfg.Debug)}, opts...)
	g.effect = NewEffect(g.surface, opts...)
	if err := g.effect.Mount(g.frames, g.viewport); err != nil {
		return nil, fmt.Errorf("mount effect: %w", err)
	}
	return g, nil
}

// Effect returns the effect driven by the game.
func (g *Game) Effect() *Effect {
	return g.effect
}

// Viewport returns the viewport feeding the effect's resize listener.
func (g *Game) Viewport() *Viewport {
	return g.viewport
}

// Update processes input and runs the pending frame callbacks.
func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}
	dt := 1.0 / float64(tps())

	g.viewport.SetSize(g.layoutW, g.layoutH)
	if g.runner != nil {
		g.runner.step(g)
	}
	g.processInput()
	g.frames.Flush()

	g.hint.update(dt, g.effect.Bursts() > 0)
	g.hud.update(dt, g.effect.Len())

	if g.runner != nil && g.runner.Done() && g.cfg.ExitOnScriptDone {
		return ebiten.Termination
	}
	return nil
}

// Draw presents the persistent surface and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.DrawTo(screen)
	g.hint.draw(screen)
	if g.cfg.ShowFPS {
		g.hud.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout makes the logical screen match the window. The new size is applied
// to the viewport on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Resize changes the viewport size, and the window size when running in a
// window.
func (g *Game) Resize(width, height int) {
	g.layoutW, g.layoutH = width, height
	if g.windowed {
		ebiten.SetWindowSize(width, height)
	}
	g.viewport.SetSize(width, height)
}

// Close tears the effect down and makes the next Update end the loop.
// Safe to call more than once.
func (g *Game) Close() {
	g.effect.Teardown()
	g.closed = true
}

// Run opens a resizable window and runs the effect until the window closes.
func Run(cfg RunConfig, opts ...Option) error {
	g, err := NewGame(cfg, opts...)
	if err != nil {
		return err
	}
	defer g.Close()
	g.windowed = true

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// tps returns the current ticks per second, falling back to the default when
// ticks are synced with the display.
func tps() int {
	if t := ebiten.TPS(); t > 0 {
		return t
	}
	return ebiten.DefaultTPS
}
