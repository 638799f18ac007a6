package entity

import "math"

// Body represents the physical body of an entity.
// Position is in logical pixels, velocity in pixels per second.
type Body struct {
	X, Y   float64
	VX, VY float64
}

// Integrate applies gravity to the vertical velocity, then moves the body.
func (b *Body) Integrate(dt, gravity float64) {
	b.VY += gravity * dt
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// ClampVY limits vertical speed to [minVY, maxVY].
func (b *Body) ClampVY(minVY, maxVY float64) {
	if b.VY < minVY {
		b.VY = minVY
	}
	if b.VY > maxVY {
		b.VY = maxVY
	}
}

// BounceWithin reflects velocity off the edges of r and keeps the body inside.
func (b *Body) BounceWithin(r Rect) {
	if b.X < r.X || b.X > r.X+r.W {
		b.VX = -b.VX
	}
	if b.Y < r.Y || b.Y > r.Y+r.H {
		b.VY = -b.VY
	}
	b.X = clamp(b.X, r.X, r.X+r.W)
	b.Y = clamp(b.Y, r.Y, r.Y+r.H)
}

// DistanceTo returns the distance from the body to (x, y).
func (b *Body) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-b.X, y-b.Y)
}

// Within reports whether (x, y) is strictly closer than radius.
func (b *Body) Within(x, y, radius float64) bool {
	return WithinRadius(x, y, b.X, b.Y, radius)
}

// SetPos moves the body without touching its velocity.
func (b *Body) SetPos(x, y float64) {
	b.X = x
	b.Y = y
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
