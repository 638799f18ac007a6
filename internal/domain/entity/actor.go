package entity

import "github.com/younwookim/hikari/internal/domain/sprite"

// Actor is a sprite-backed entity with optional health.
type Actor struct {
	Body
	ID     EntityID
	Sprite sprite.ID
	Size   float64
	Active bool

	MaxHealth   float64
	Health      float64
	IframeTimer float64
	HitTimer    float64
}

// NewActor creates an active actor at (x, y).
func NewActor(id EntityID, s sprite.ID, x, y, size float64) *Actor {
	return &Actor{
		Body:   Body{X: x, Y: y},
		ID:     id,
		Sprite: s,
		Size:   size,
		Active: true,
	}
}

// WithHealth sets both current and max health.
func (a *Actor) WithHealth(hp float64) *Actor {
	a.MaxHealth = hp
	a.Health = hp
	return a
}

// TakeDamage applies damage and returns true if the actor dropped to 0.
// Health never goes below 0.
func (a *Actor) TakeDamage(damage float64) bool {
	a.Health -= damage
	if a.Health < 0 {
		a.Health = 0
	}
	a.HitTimer = 0.3
	return a.Health <= 0
}

// Heal restores health up to MaxHealth.
func (a *Actor) Heal(amount float64) {
	a.Health += amount
	if a.Health > a.MaxHealth {
		a.Health = a.MaxHealth
	}
}

// IsAlive returns true if actor is still alive.
func (a *Actor) IsAlive() bool {
	return a.Health > 0 && a.Active
}

// IsInvincible returns true while the invincibility timer runs.
func (a *Actor) IsInvincible() bool {
	return a.IframeTimer > 0
}

// HealthRatio returns Health/MaxHealth, or 0 without max health.
func (a *Actor) HealthRatio() float64 {
	if a.MaxHealth <= 0 {
		return 0
	}
	return a.Health / a.MaxHealth
}

// Tick counts down the actor's timers.
func (a *Actor) Tick(dt float64) {
	if a.IframeTimer > 0 {
		a.IframeTimer -= dt
	}
	if a.HitTimer > 0 {
		a.HitTimer -= dt
	}
}
