// Package effect holds the shared visual effects: sprite particles and the
// full-screen fade used between scenes.
package effect

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hikari/internal/domain/sprite"
)

// MaxStep is the largest dt a particle update integrates in one call.
const MaxStep = 0.05

// Default emission parameters.
const (
	DefaultSpread = 200.0
	MinSize       = 10.0
	SizeRange     = 20.0
	MinDecay      = 1.2 // life per second
	DecayRange    = 1.2
)

// Rand is the random source particles draw from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// SpriteDrawer renders a sprite centred on (x, y).
type SpriteDrawer interface {
	DrawSprite(dst *ebiten.Image, id sprite.ID, x, y, size, alpha float64)
}

// Particle is a single short-lived sprite.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // 1 at birth, removed at <= 0
	Decay   float64 // life lost per second
	Size    float64
	Sprite  sprite.ID
	Gravity float64
}

// EmitOptions tunes a burst. Zero fields take their defaults.
type EmitOptions struct {
	Sprites []sprite.ID // default [sparkle]
	Spread  float64     // default DefaultSpread
	Size    float64     // default random in [MinSize, MinSize+SizeRange)
	Upward  float64
	Gravity float64
}

// ParticleSystem owns an unordered set of particles.
type ParticleSystem struct {
	particles []Particle
	rng       Rand
}

// NewParticleSystem creates an empty system drawing randomness from rng.
func NewParticleSystem(rng Rand) *ParticleSystem {
	return &ParticleSystem{rng: rng}
}

// Emit adds exactly count particles at (x, y).
func (ps *ParticleSystem) Emit(x, y float64, count int, opts EmitOptions) {
	sprites := opts.Sprites
	if len(sprites) == 0 {
		sprites = []sprite.ID{sprite.Sparkle}
	}
	spread := opts.Spread
	if spread <= 0 {
		spread = DefaultSpread
	}

	for i := 0; i < count; i++ {
		size := opts.Size
		if size <= 0 {
			size = MinSize + ps.rng.Float64()*SizeRange
		}
		ps.particles = append(ps.particles, Particle{
			X:       x,
			Y:       y,
			VX:      (ps.rng.Float64() - 0.5) * spread,
			VY:      (ps.rng.Float64()-0.5)*spread - opts.Upward,
			Life:    1,
			Decay:   MinDecay + ps.rng.Float64()*DecayRange,
			Size:    size,
			Sprite:  sprites[ps.rng.Intn(len(sprites))],
			Gravity: opts.Gravity,
		})
	}
}

// Update integrates every particle and drops the dead ones.
func (ps *ParticleSystem) Update(dt float64) {
	if dt > MaxStep {
		dt = MaxStep
	}
	if dt <= 0 {
		return
	}

	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.X += p.VX * dt
		p.VY += p.Gravity * dt
		p.Y += p.VY * dt
		p.Life -= p.Decay * dt
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}

// Draw renders each particle with its life as opacity.
func (ps *ParticleSystem) Draw(screen *ebiten.Image, d SpriteDrawer) {
	for _, p := range ps.particles {
		d.DrawSprite(screen, p.Sprite, p.X, p.Y, p.Size, clamp01(p.Life))
	}
}

// Clear removes all particles.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

// Len returns the live particle count.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Particles exposes the live particles for inspection.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
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
