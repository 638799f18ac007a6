package state

// Phase represents where a stage is in its lifecycle.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseCleared
	PhaseGameOver
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseCleared:
		return "Cleared"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Finished reports whether the phase ends play.
func (p Phase) Finished() bool {
	return p == PhaseCleared || p == PhaseGameOver
}
