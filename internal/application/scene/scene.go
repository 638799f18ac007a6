// Package scene defines the Scene interface for game screens.
//
// Each game screen (title, stage select, a mini-stage, etc.) implements
// Scene to handle its own update logic, rendering and pointer input.
package scene

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hikari/internal/domain/progress"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/config"
	"github.com/younwookim/hikari/internal/infrastructure/render"
)

// Scene represents a game screen.
//
// The host owns exactly one live scene and delegates every frame and input
// event to it. Replacing a scene calls Cleanup on the old one and OnEnter
// on the new one.
type Scene interface {
	// OnEnter is called once when the scene becomes live.
	OnEnter()

	// Update advances the scene by dt seconds (already clamped by the host).
	// A returned error is a frame failure.
	Update(dt float64) error

	// Draw renders the scene. It must not change gameplay state, but may
	// cache layout rectangles consumed by the next OnClick.
	Draw(screen *ebiten.Image)

	// Pointer events in logical screen coordinates.
	OnClick(x, y float64)
	OnDragStart(x, y float64)
	OnDragMove(x, y float64)
	OnDragEnd(x, y float64)

	// Cleanup releases effects the scene started. It must be idempotent.
	Cleanup()
}

// Base provides no-op implementations of every Scene method.
// Concrete scenes embed it and override what they use.
type Base struct{}

func (Base) OnEnter()                     {}
func (Base) Update(float64) error         { return nil }
func (Base) Draw(*ebiten.Image)           {}
func (Base) OnClick(float64, float64)     {}
func (Base) OnDragStart(float64, float64) {}
func (Base) OnDragMove(float64, float64)  {}
func (Base) OnDragEnd(float64, float64)   {}
func (Base) Cleanup()                     {}

// Controller is the host as seen from a scene.
type Controller interface {
	// ScreenSize returns the logical surface size.
	ScreenSize() (w, h float64)

	// Progress is the shared save state. Scenes read it; the host mutates it.
	Progress() *progress.State

	// SetScene replaces the live scene immediately.
	SetScene(s Scene)
	// StartStage fades out and swaps to stage id.
	StartStage(id int)
	// CompleteStage records id as cleared, saves, and fades to the clear screen.
	CompleteStage(id int)
	// UnlockSecret records and saves the secret stage unlock.
	UnlockSecret()
	// ShowTitle fades back to the title screen.
	ShowTitle()

	Audio() audio.Service
	Kit() *render.Kit
	Content() *config.Content
	Tuning() *config.StageTuning
	Rand() *rand.Rand
}
