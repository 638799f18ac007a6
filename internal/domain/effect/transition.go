package effect

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DefaultFadeRate is the progress change per second of a fade.
const DefaultFadeRate = 2.0

// TransitionState is the phase of a fade.
type TransitionState int

const (
	Idle TransitionState = iota
	FadingOut
	FadingIn
)

// String returns the string representation of the state.
func (s TransitionState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case FadingOut:
		return "FadingOut"
	case FadingIn:
		return "FadingIn"
	default:
		return "Unknown"
	}
}

// Transition fades the screen to black, runs a callback at full black, then
// fades back in.
type Transition struct {
	state    TransitionState
	progress float64
	rate     float64
	callback func()
}

// NewTransition creates an idle transition. rate <= 0 uses DefaultFadeRate.
func NewTransition(rate float64) *Transition {
	if rate <= 0 {
		rate = DefaultFadeRate
	}
	return &Transition{rate: rate}
}

// Start begins a fade-out from progress 0. A callback still pending from an
// earlier Start is replaced.
func (t *Transition) Start(callback func()) {
	t.progress = 0
	t.state = FadingOut
	t.callback = callback
}

// Update advances the fade by dt seconds.
func (t *Transition) Update(dt float64) {
	switch t.state {
	case FadingOut:
		t.progress += dt * t.rate
		if t.progress >= 1 {
			t.progress = 1
			t.state = FadingIn
			cb := t.callback
			t.callback = nil
			if cb != nil {
				cb()
			}
		}
	case FadingIn:
		t.progress -= dt * t.rate
		if t.progress <= 0 {
			t.progress = 0
			t.state = Idle
		}
	}
}

// Draw overlays black with the current progress as opacity.
func (t *Transition) Draw(screen *ebiten.Image) {
	if t.state == Idle {
		return
	}
	a := uint8(clamp01(t.progress) * 255)
	b := screen.Bounds()
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, a}, false)
}

// Reset stops the transition without firing the pending callback.
func (t *Transition) Reset() {
	t.state = Idle
	t.progress = 0
	t.callback = nil
}

// Active reports whether a fade is in progress.
func (t *Transition) Active() bool {
	return t.state != Idle
}

// State returns the current phase.
func (t *Transition) State() TransitionState {
	return t.state
}

// Progress returns the fade amount in [0, 1].
func (t *Transition) Progress() float64 {
	return t.progress
}
