package audio

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/younwookim/hikari/internal/domain/schedule"
	"github.com/younwookim/hikari/internal/infrastructure/config"
)

// Output receives rendered PCM buffers.
type Output interface {
	PlayPCM(pcm []byte)
}

// ContextOutput plays buffers through an Ebitengine audio context.
type ContextOutput struct {
	ctx     *audio.Context
	playing []*audio.Player
}

// NewContextOutput wraps ctx. Only one context may exist per process.
func NewContextOutput(ctx *audio.Context) *ContextOutput {
	return &ContextOutput{ctx: ctx}
}

// PlayPCM starts a player for pcm and keeps it referenced until it ends.
func (o *ContextOutput) PlayPCM(pcm []byte) {
	live := o.playing[:0]
	for _, p := range o.playing {
		if p.IsPlaying() {
			live = append(live, p)
		} else {
			_ = p.Close()
		}
	}
	o.playing = live

	p := o.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	o.playing = append(o.playing, p)
}

// Synth renders cues on demand and sequences multi-note cues and the
// background loop on its scheduler.
type Synth struct {
	out        Output
	sched      *schedule.Scheduler
	rng        Rand
	sampleRate int
	volume     float64
	interval   float64

	bgm     schedule.TaskID
	bgmOn   bool
	melody  []Tone
	noteIdx int
}

// NewSynth creates a synth writing to out.
func NewSynth(out Output, cfg config.AudioConfig) *Synth {
	interval := cfg.BGMInterval
	if interval <= 0 {
		interval = 0.6
	}
	return &Synth{
		out:        out,
		sched:      schedule.New(),
		rng:        rand.New(rand.NewSource(1)),
		sampleRate: cfg.SampleRate,
		volume:     cfg.Volume,
		interval:   interval,
	}
}

// Play starts cue c; later notes are scheduled.
func (s *Synth) Play(c Cue) {
	for _, n := range CueNotes(c, s.rng) {
		t := n.Tone
		if n.At <= 0 {
			s.emit(t)
			continue
		}
		s.sched.After(n.At, func() { s.emit(t) })
	}
}

// StartBGM replaces any running loop with t.
func (s *Synth) StartBGM(t Track) {
	s.StopBGM()
	s.melody = Melody(t)
	s.noteIdx = 0
	s.playNext()
	s.bgm = s.sched.Every(s.interval, s.playNext)
	s.bgmOn = true
}

// StopBGM cancels the loop. It is a no-op when nothing is playing.
func (s *Synth) StopBGM() {
	if !s.bgmOn {
		return
	}
	s.sched.Cancel(s.bgm)
	s.bgmOn = false
}

// Playing reports whether a background loop is running.
func (s *Synth) Playing() bool {
	return s.bgmOn
}

// Update advances pending notes.
func (s *Synth) Update(dt float64) {
	s.sched.Update(dt)
}

// Pending returns the number of scheduled notes and loops.
func (s *Synth) Pending() int {
	return s.sched.Len()
}

func (s *Synth) playNext() {
	if len(s.melody) == 0 {
		return
	}
	s.emit(s.melody[s.noteIdx%len(s.melody)])
	s.noteIdx++
}

func (s *Synth) emit(t Tone) {
	samples := Render(t, s.sampleRate, s.rng)
	if len(samples) == 0 {
		return
	}
	s.out.PlayPCM(EncodePCM(samples, s.volume))
}

// Nop discards every request.
type Nop struct{}

func (Nop) Play(Cue)       {}
func (Nop) StartBGM(Track) {}
func (Nop) StopBGM()       {}
func (Nop) Update(float64) {}
