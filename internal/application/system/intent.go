package system

// Intent represents one input event the host dispatches to the live scene.
type Intent interface {
	isIntent()
}

// Key identifies a keyboard key the game listens to.
type Key int

const (
	KeySpace Key = iota
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeySpace:
		return "Space"
	default:
		return "Unknown"
	}
}

// PointerDown is a mouse button or first touch going down.
type PointerDown struct {
	X, Y float64
}

func (PointerDown) isIntent() {}

// PointerMove is the pressed pointer moving.
type PointerMove struct {
	X, Y float64
}

func (PointerMove) isIntent() {}

// PointerUp is the pointer being released.
type PointerUp struct {
	X, Y float64
}

func (PointerUp) isIntent() {}

// KeyDown is a key being pressed.
type KeyDown struct {
	Key Key
}

func (KeyDown) isIntent() {}

// KeyUp is a key being released.
type KeyUp struct {
	Key Key
}

func (KeyUp) isIntent() {}

// Source yields the intents for one frame.
type Source interface {
	Poll() []Intent
}
