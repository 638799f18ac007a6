package replay

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/younwookim/hikari/internal/application/system"
	"github.com/younwookim/hikari/internal/domain/progress"
	"github.com/younwookim/hikari/internal/infrastructure/storage"
)

// Replayer feeds recorded intents back frame by frame.
// It implements system.Source.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data.
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file.
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the intents for the current frame and advances.
// ok is false once every frame has been played.
func (r *Replayer) Next() ([]system.Intent, bool) {
	if r.frame >= len(r.data.Frames) {
		return nil, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	var intents []system.Intent
	for _, e := range fi.E {
		in, err := DecodeEvent(e)
		if err != nil {
			log.Printf("Skipping frame %d event: %v", fi.F, err)
			continue
		}
		intents = append(intents, in)
	}
	return intents, true
}

// Poll implements system.Source.
func (r *Replayer) Poll() []system.Intent {
	intents, _ := r.Next()
	return intents
}

// Done reports whether playback has finished.
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number.
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames.
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay.
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Session returns the recorded session ID.
func (r *Replayer) Session() string {
	return r.data.Session
}

// Screen returns the logical surface size the session was recorded at.
func (r *Replayer) Screen() Screen {
	return r.data.Screen
}

// Store returns an in-memory save holding the progress the recording
// started from. Playback runs against it instead of the local save.
func (r *Replayer) Store() (*storage.MemoryStore, error) {
	data, err := progress.FromSnapshot(r.data.Progress).Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode recorded progress: %w", err)
	}
	return storage.NewMemoryStore(data), nil
}

// Reset resets the replayer to the beginning.
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: one tap at (x, y)
// every 10 frames.
func CreateTestReplayData(frames int, x, y float64) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Seed:      12345,
		Session:   "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
		switch i % 10 {
		case 0:
			data.Frames[i].E = []Event{{K: KindDown, X: x, Y: y}}
		case 1:
			data.Frames[i].E = []Event{{K: KindUp, X: x, Y: y}}
		}
	}

	return data
}
