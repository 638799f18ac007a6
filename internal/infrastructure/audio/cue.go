// Package audio synthesises the game's sound effects and background loops.
//
// Every sound is generated from oscillator patches at runtime; there are no
// sample files.
package audio

// Cue identifies a one-shot sound effect.
type Cue int

const (
	CueTap Cue = iota
	CueCollect
	CueGolden
	CueBomb
	CueSlash
	CuePeshi
	CueJump
	CueStar
	CuePoopStep
	CueFlush
	CueGhost
	CueFart
	CueClear
	CueDrumroll
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueTap:
		return "tap"
	case CueCollect:
		return "collect"
	case CueGolden:
		return "golden"
	case CueBomb:
		return "bomb"
	case CueSlash:
		return "slash"
	case CuePeshi:
		return "peshi"
	case CueJump:
		return "jump"
	case CueStar:
		return "star"
	case CuePoopStep:
		return "poop-step"
	case CueFlush:
		return "flush"
	case CueGhost:
		return "ghost"
	case CueFart:
		return "fart"
	case CueClear:
		return "clear"
	case CueDrumroll:
		return "drumroll"
	default:
		return "unknown"
	}
}

// Track identifies a background loop. Stage tracks share the stage ID.
type Track int

// TrackTitle plays on the title and menu screens.
const TrackTitle Track = 0

// StageTrack returns the loop for a stage.
func StageTrack(stageID int) Track {
	return Track(stageID)
}

// Service plays cues and background loops.
// Update must be called once per frame to advance note sequences.
type Service interface {
	Play(c Cue)
	StartBGM(t Track)
	StopBGM()
	Update(dt float64)
}
