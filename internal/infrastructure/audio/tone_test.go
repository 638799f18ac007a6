package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCueNotes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	tests := []struct {
		cue   Cue
		count int
		last  float64 // start of the final note
	}{
		{CueTap, 1, 0},
		{CueCollect, 3, 0.12},
		{CueGolden, 4, 0.24},
		{CueBomb, 1, 0},
		{CueSlash, 1, 0},
		{CuePeshi, 2, 0.05},
		{CueJump, 1, 0},
		{CueStar, 2, 0.08},
		{CuePoopStep, 1, 0},
		{CueFlush, 1, 0},
		{CueGhost, 1, 0},
		{CueFart, 2, 0},
		{CueClear, 4, 0.9},
		{CueDrumroll, 30, 1.45},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			notes := CueNotes(tt.cue, rng)
			require.Len(t, notes, tt.count)
			assert.InDelta(t, tt.last, notes[len(notes)-1].At, 1e-9)
			for _, n := range notes {
				assert.Greater(t, n.Duration, 0.0)
			}
		})
	}
}

func TestCueNotes_Unknown(t *testing.T) {
	assert.Nil(t, CueNotes(Cue(99), rand.New(rand.NewSource(1))))
	assert.Equal(t, "unknown", Cue(99).String())
}

func TestCueNotes_DrumrollPitchRange(t *testing.T) {
	for _, n := range CueNotes(CueDrumroll, rand.New(rand.NewSource(3))) {
		assert.GreaterOrEqual(t, n.Freq, 200.0)
		assert.Less(t, n.Freq, 300.0)
	}
}

func TestMelody(t *testing.T) {
	title := Melody(TrackTitle)
	require.Len(t, title, 4)
	assert.Equal(t, 523.0, title[0].Freq)
	assert.InDelta(t, 0.4, title[0].Duration, 1e-9)
	assert.Equal(t, Triangle, title[0].Wave)

	stage := Melody(StageTrack(7))
	assert.Equal(t, 220.0, stage[0].Freq)

	assert.Equal(t, title, Melody(Track(42)), "unknown tracks fall back to the title loop")
}

func TestRender(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("length follows duration", func(t *testing.T) {
		out := Render(tone(440, 0.5, Sine, 0.1), 1000, rng)
		assert.Len(t, out, 500)
	})

	t.Run("zero duration", func(t *testing.T) {
		assert.Nil(t, Render(tone(440, 0, Sine, 0.1), 1000, rng))
	})

	t.Run("exponential envelope decays", func(t *testing.T) {
		out := Render(tone(250, 0.2, Square, 0.5), 8000, rng)
		assert.InDelta(t, 0.5, math.Abs(out[0]), 1e-9)
		assert.Less(t, math.Abs(out[len(out)-1]), 0.01)
	})

	t.Run("samples bounded", func(t *testing.T) {
		for _, w := range []Wave{Sine, Square, Sawtooth, Triangle, Noise, Swirl} {
			out := Render(Tone{Freq: 300, Duration: 0.05, Wave: w, Volume: 1, Envelope: EnvFlat}, 8000, rng)
			for _, v := range out {
				assert.LessOrEqual(t, math.Abs(v), 1.0)
			}
		}
	})
}

func TestTone_FreqSweep(t *testing.T) {
	jump := Tone{Freq: 300, EndFreq: 600, Sweep: 0.15, Duration: 0.2}
	assert.InDelta(t, 300, jump.freqAt(0), 1e-9)
	assert.InDelta(t, 600, jump.freqAt(0.15), 1e-9)
	assert.InDelta(t, 600, jump.freqAt(0.2), 1e-9, "holds after the sweep")

	flat := Tone{Freq: 440, Duration: 1}
	assert.Equal(t, 440.0, flat.freqAt(0.7))
}

func TestEncodePCM(t *testing.T) {
	pcm := EncodePCM([]float64{0, 1, -2}, 1)
	require.Len(t, pcm, 12)

	sample := func(i, ch int) int16 {
		return int16(binary.LittleEndian.Uint16(pcm[i*4+ch*2:]))
	}
	assert.Equal(t, int16(0), sample(0, 0))
	assert.Equal(t, int16(math.MaxInt16), sample(1, 0))
	assert.Equal(t, int16(math.MaxInt16), sample(1, 1))
	assert.Equal(t, int16(-math.MaxInt16), sample(2, 1), "clipped")
}
