package firework

import "math/rand/v2"

// Particle is one dot of a burst. Fields are exported so callers can inspect
// simulation state; the effect is the only thing that mutates them.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Color    Color
	Alpha    float64 // opacity; starts at 1 and drops by Decay every Update
	Friction float64
	Gravity  float64
}

// NewParticle creates a particle at (x, y) with a random velocity in
// [-SpeedSpread/2, SpeedSpread/2) on each axis. A nil rng uses the
// package-level source.
func NewParticle(x, y float64, c Color, rng *rand.Rand) *Particle {
	return &Particle{
		X:        x,
		Y:        y,
		VX:       (randFloat(rng) - 0.5) * SpeedSpread,
		VY:       (randFloat(rng) - 0.5) * SpeedSpread,
		Color:    c,
		Alpha:    initialAlpha,
		Friction: Friction,
		Gravity:  Gravity,
	}
}

// Alive reports whether the particle is still visible.
func (p *Particle) Alive() bool {
	return p.Alpha > 0
}

// Draw paints the particle as a filled circle at its current position and
// opacity. It does not modify the particle.
func (p *Particle) Draw(c Canvas) {
	c.FillCircle(p.X, p.Y, Radius, p.Color.WithAlpha(p.Alpha))
}

// Update advances the particle by one tick and draws it.
// Friction is applied before gravity, and the position moves by the
// resulting velocity.
func (p *Particle) Update(c Canvas) {
	p.VX *= p.Friction
	p.VY *= p.Friction
	p.VY += p.Gravity
	p.X += p.VX
	p.Y += p.VY
	p.Alpha -= Decay

	p.Draw(c)
}

func randFloat(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}

func randIntN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
