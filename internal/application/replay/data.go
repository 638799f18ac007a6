package replay

import (
	"fmt"

	"github.com/younwookim/hikari/internal/application/system"
	"github.com/younwookim/hikari/internal/domain/progress"
)

// FormatVersion is written into every recording.
const FormatVersion = "2.1"

// Event kinds.
const (
	KindDown    = "down"
	KindMove    = "move"
	KindUp      = "up"
	KindKeyDown = "keydown"
	KindKeyUp   = "keyup"
)

// Event is one recorded intent.
type Event struct {
	K string  `json:"k"`           // Kind
	X float64 `json:"x,omitempty"` // Pointer X
	Y float64 `json:"y,omitempty"` // Pointer Y
}

// FrameInput records the intents of a single frame.
type FrameInput struct {
	F int     `json:"f"`           // Frame number
	E []Event `json:"e,omitempty"` // Events in dispatch order
}

// Screen is the logical surface size a session ran at.
type Screen struct {
	W int `json:"w"`
	H int `json:"h"`
}

// ReplayData contains all data needed to replay a game session.
// Progress is the save the session started from.
type ReplayData struct {
	Version   string            `json:"version"`
	Seed      int64             `json:"seed"`
	Session   string            `json:"session"`
	StartTime string            `json:"startTime"`
	Screen    Screen            `json:"screen"`
	Progress  progress.Snapshot `json:"progress"`
	Frames    []FrameInput      `json:"frames"`
}

// EncodeIntent converts an intent to its recorded form.
func EncodeIntent(in system.Intent) (Event, error) {
	switch v := in.(type) {
	case system.PointerDown:
		return Event{K: KindDown, X: v.X, Y: v.Y}, nil
	case system.PointerMove:
		return Event{K: KindMove, X: v.X, Y: v.Y}, nil
	case system.PointerUp:
		return Event{K: KindUp, X: v.X, Y: v.Y}, nil
	case system.KeyDown:
		return Event{K: KindKeyDown}, nil
	case system.KeyUp:
		return Event{K: KindKeyUp}, nil
	default:
		return Event{}, fmt.Errorf("unknown intent %T", in)
	}
}

// DecodeEvent converts a recorded event back to an intent.
func DecodeEvent(e Event) (system.Intent, error) {
	switch e.K {
	case KindDown:
		return system.PointerDown{X: e.X, Y: e.Y}, nil
	case KindMove:
		return system.PointerMove{X: e.X, Y: e.Y}, nil
	case KindUp:
		return system.PointerUp{X: e.X, Y: e.Y}, nil
	case KindKeyDown:
		return system.KeyDown{Key: system.KeySpace}, nil
	case KindKeyUp:
		return system.KeyUp{Key: system.KeySpace}, nil
	default:
		return nil, fmt.Errorf("unknown event kind %q", e.K)
	}
}
