package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Snapshot is one tick of raw pointer and key state. Mouse and touch are
// merged into a single pointer.
type Snapshot struct {
	X, Y         float64
	Pressed      bool
	JustPressed  bool
	JustReleased bool

	SpacePressed  bool
	SpaceReleased bool
}

// InputSystem turns device state into intents.
type InputSystem struct {
	read func() Snapshot

	touch    ebiten.TouchID
	touching bool

	down         bool
	lastX, lastY float64
}

// NewInputSystem creates an input system reading Ebitengine devices.
func NewInputSystem() *InputSystem {
	s := &InputSystem{}
	s.read = s.readDevices
	return s
}

// newInputSystemFrom reads snapshots from fn (tests).
func newInputSystemFrom(fn func() Snapshot) *InputSystem {
	return &InputSystem{read: fn}
}

// Poll implements Source.
func (s *InputSystem) Poll() []Intent {
	return s.Translate(s.read())
}

// Translate converts a snapshot to intents, tracking movement between calls.
func (s *InputSystem) Translate(snap Snapshot) []Intent {
	var out []Intent

	if snap.JustPressed {
		s.down = true
		s.lastX, s.lastY = snap.X, snap.Y
		out = append(out, PointerDown{X: snap.X, Y: snap.Y})
	} else if s.down && snap.Pressed && (snap.X != s.lastX || snap.Y != s.lastY) {
		s.lastX, s.lastY = snap.X, snap.Y
		out = append(out, PointerMove{X: snap.X, Y: snap.Y})
	}

	if snap.JustReleased {
		s.down = false
		out = append(out, PointerUp{X: snap.X, Y: snap.Y})
	}

	if snap.SpacePressed {
		out = append(out, KeyDown{Key: KeySpace})
	}
	if snap.SpaceReleased {
		out = append(out, KeyUp{Key: KeySpace})
	}
	return out
}

func (s *InputSystem) readDevices() Snapshot {
	snap := Snapshot{
		SpacePressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		SpaceReleased: inpututil.IsKeyJustReleased(ebiten.KeySpace),
	}

	// The first touch drives the pointer until it lifts.
	if !s.touching {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			s.touch = ids[0]
			s.touching = true
			x, y := ebiten.TouchPosition(s.touch)
			snap.X, snap.Y = float64(x), float64(y)
			snap.JustPressed = true
			snap.Pressed = true
			return snap
		}
	} else {
		if inpututil.IsTouchJustReleased(s.touch) {
			s.touching = false
			x, y := inpututil.TouchPositionInPreviousTick(s.touch)
			snap.X, snap.Y = float64(x), float64(y)
			snap.JustReleased = true
			return snap
		}
		x, y := ebiten.TouchPosition(s.touch)
		snap.X, snap.Y = float64(x), float64(y)
		snap.Pressed = true
		return snap
	}

	x, y := ebiten.CursorPosition()
	snap.X, snap.Y = float64(x), float64(y)
	snap.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	snap.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	snap.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return snap
}
