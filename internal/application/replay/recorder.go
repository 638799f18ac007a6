package replay

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/younwookim/hikari/internal/application/system"
	"github.com/younwookim/hikari/internal/domain/progress"
)

// Recorder handles input recording for replay.
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed for deterministic replay.
// start is the save progress and screen the session begins from.
func NewRecorder(seed int64, session string, start progress.Snapshot, screen Screen) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Seed:      seed,
			Session:   session,
			StartTime: time.Now().Format(time.RFC3339),
			Screen:    screen,
			Progress:  start,
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's intents.
func (r *Recorder) RecordFrame(intents []system.Intent) {
	if !r.recording {
		return
	}

	fi := FrameInput{F: r.frame}
	for _, in := range intents {
		e, err := EncodeIntent(in)
		if err != nil {
			log.Printf("Skipping unrecordable input: %v", err)
			continue
		}
		fi.E = append(fi.E, e)
	}

	r.data.Frames = append(r.data.Frames, fi)
	r.frame++
}

// Save writes the replay data to a file.
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording. Frames polled afterwards pass through unrecorded.
func (r *Recorder) Stop() {
	r.recording = false
}

// FrameCount returns the number of recorded frames.
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded data.
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Tee returns a source that records every frame src yields.
func Tee(src system.Source, rec *Recorder) system.Source {
	return &teeSource{src: src, rec: rec}
}

type teeSource struct {
	src system.Source
	rec *Recorder
}

func (t *teeSource) Poll() []system.Intent {
	intents := t.src.Poll()
	t.rec.RecordFrame(intents)
	return intents
}

// GenerateFilename creates a filename based on current time.
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}

// OutputPath resolves the -record target. A directory, or a path ending in a
// separator, gets a timestamped file inside it.
func OutputPath(target string) string {
	if target == "" {
		return GenerateFilename()
	}
	if os.IsPathSeparator(target[len(target)-1]) {
		return filepath.Join(target, GenerateFilename())
	}
	if fi, err := os.Stat(target); err == nil && fi.IsDir() {
		return filepath.Join(target, GenerateFilename())
	}
	return target
}
