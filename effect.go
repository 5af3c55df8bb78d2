package firework

import (
	"errors"
	"math/rand/v2"
	"time"
)

var (
	// ErrNoCanvas is returned by Mount when the effect has no drawing surface.
	ErrNoCanvas = errors.New("firework: no canvas")
	// ErrNoScheduler is returned by Mount when no frame scheduler is given.
	ErrNoScheduler = errors.New("firework: no frame scheduler")
	// ErrMounted is returned by Mount when the effect is already running.
	ErrMounted = errors.New("firework: effect already mounted")
)

// BurstEvent describes one spawned burst.
type BurstEvent struct {
	X, Y  float64 // canvas-local spawn point
	Color Color
	Count int
}

// EventSink receives burst events. The ecs package provides a Donburi-backed
// implementation.
type EventSink interface {
	EmitBurst(event BurstEvent)
}

// Option configures an Effect.
type Option func(*Effect)

// WithRand sets the random source used for burst colors and particle
// velocities. Nil selects the package-level source.
func WithRand(rng *rand.Rand) Option {
	return func(e *Effect) { e.rng = rng }
}

// WithEventSink forwards every burst to sink.
func WithEventSink(sink EventSink) Option {
	return func(e *Effect) { e.sink = sink }
}

// WithOrigin sets the canvas's top-left corner in client coordinates. Clicks
// are translated by this offset before spawning.
func WithOrigin(x, y float64) Option {
	return func(e *Effect) { e.originX, e.originY = x, y }
}

// WithDebug enables per-tick timing stats on stderr.
func WithDebug(enabled bool) Option {
	return func(e *Effect) { e.debug = enabled }
}

// Effect owns the canvas, the live particles and the frame loop. It is
// driven entirely from the game goroutine.
type Effect struct {
	canvas    Canvas
	particles []*Particle
	rng       *rand.Rand
	sink      EventSink
	debug     bool
	bursts    int

	originX, originY float64

	// Loop state, valid between Mount and Teardown.
	frames  FrameScheduler
	frame   FrameID
	resize  ResizeHandle
	running bool
	tickFn  func()
}

// NewEffect creates an effect that paints into canvas. The effect does not
// animate until Mount is called.
func NewEffect(canvas Canvas, opts ...Option) *Effect {
	e := &Effect{canvas: canvas}
	for _, opt := range opts {
		opt(e)
	}
	e.tickFn = e.Tick
	return e
}

// Mount sizes the canvas to the viewport, subscribes to viewport resizes and
// runs the first tick, which keeps rescheduling itself through frames until
// Teardown. A nil viewport leaves the canvas at its current size.
func (e *Effect) Mount(frames FrameScheduler, vp *Viewport) error {
	if e.canvas == nil {
		return ErrNoCanvas
	}
	if frames == nil {
		return ErrNoScheduler
	}
	if e.running {
		return ErrMounted
	}
	e.frames = frames
	if vp != nil {
		e.Resize(vp.Size())
		e.resize = vp.OnResize(e.Resize)
	}
	e.running = true
	e.Tick()
	return nil
}

// Teardown stops the loop: the pending frame is cancelled and the resize
// listener removed. Safe to call repeatedly and before Mount.
func (e *Effect) Teardown() {
	if e.frame != 0 && e.frames != nil {
		e.frames.CancelFrame(e.frame)
	}
	e.frame = 0
	e.resize.Remove()
	e.resize = ResizeHandle{}
	e.running = false
}

// Running reports whether the effect is between Mount and Teardown.
func (e *Effect) Running() bool {
	return e.running
}

// Scheduled reports whether a next tick is currently pending.
func (e *Effect) Scheduled() bool {
	return e.frame != 0
}

// Spawn creates a burst at the given client coordinates. All particles of
// the burst share one color drawn uniformly from Palette.
func (e *Effect) Spawn(clientX, clientY float64) {
	x, y := e.Bounds().ToLocal(clientX, clientY)
	c := Palette[randIntN(e.rng, len(Palette))]
	for range BurstSize {
		e.particles = append(e.particles, NewParticle(x, y, c, e.rng))
	}
	e.bursts++
	if e.sink != nil {
		e.sink.EmitBurst(BurstEvent{X: x, Y: y, Color: c, Count: BurstSize})
	}
}

// Tick runs one frame: the translucent overlay, the removal of faded
// particles, then Update on every survivor. While mounted it also requests
// the next frame, replacing any request that is still pending.
func (e *Effect) Tick() {
	if e.canvas == nil {
		return
	}
	if e.frame != 0 {
		e.frames.CancelFrame(e.frame)
		e.frame = 0
	}

	var stats tickStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	w, h := e.canvas.Size()
	e.canvas.FillRect(0, 0, float64(w), float64(h), ColorBlack.WithAlpha(TrailAlpha))

	before := len(e.particles)
	live := e.particles[:0]
	for _, p := range e.particles {
		if p.Alive() {
			live = append(live, p)
		}
	}
	clear(e.particles[len(live):])
	e.particles = live

	for _, p := range e.particles {
		p.Update(e.canvas)
	}

	if e.running {
		e.frame = e.frames.RequestFrame(e.tickFn)
	}

	if e.debug {
		stats.tickTime = time.Since(t0)
		stats.live = len(e.particles)
		stats.dropped = before - len(e.particles)
		e.debugLog(stats)
	}
}

// Resize resizes the canvas. Resizing a raster clears it; the running
// particles keep their coordinates.
func (e *Effect) Resize(width, height int) {
	if e.canvas == nil {
		return
	}
	e.canvas.Resize(width, height)
	if e.debug {
		debugResize(width, height)
	}
}

// Bounds returns the canvas rectangle in client coordinates.
func (e *Effect) Bounds() Rect {
	r := Rect{X: e.originX, Y: e.originY}
	if e.canvas != nil {
		w, h := e.canvas.Size()
		r.Width, r.Height = float64(w), float64(h)
	}
	return r
}

// Particles returns the live particles. The returned slice MUST NOT be mutated.
func (e *Effect) Particles() []*Particle {
	return e.particles
}

// Len returns the number of live particles.
func (e *Effect) Len() int {
	return len(e.particles)
}

// Bursts returns the number of bursts spawned since creation.
func (e *Effect) Bursts() int {
	return e.bursts
}
