package audio

import (
	"encoding/binary"
	"math"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Sawtooth
	Triangle
	Noise
	Swirl // noise bed over a falling sine, used by the flush cue
)

// Envelope shapes a tone's amplitude over its duration.
type Envelope int

const (
	// EnvExp ramps exponentially from Volume down to 0.001.
	EnvExp Envelope = iota
	// EnvLinear ramps linearly from Volume down to 0
	EnvLinear
	// EnvFlat holds Volume
	EnvFlat
)

const expFloor = 0.001

// Tone is a single oscillator voice.
type Tone struct {
	Freq     float64
	EndFreq  float64 // exponential sweep target; 0 disables the sweep
	Sweep    float64 // seconds to reach EndFreq; 0 uses Duration
	Duration float64
	Wave     Wave
	Volume   float64
	Envelope Envelope
}

// Note is a tone scheduled At seconds after the cue starts.
type Note struct {
	At float64
	Tone
}

// Rand is the noise source.
type Rand interface {
	Float64() float64
}

func tone(freq, dur float64, w Wave, vol float64) Tone {
	return Tone{Freq: freq, Duration: dur, Wave: w, Volume: vol}
}

// CueNotes returns the notes making up c.
func CueNotes(c Cue, rng Rand) []Note {
	switch c {
	case CueTap:
		return []Note{{0, tone(800, 0.08, Sine, 0.1)}}
	case CueCollect:
		return []Note{
			{0, tone(523, 0.1, Sine, 0.12)},
			{0.06, tone(659, 0.1, Sine, 0.12)},
			{0.12, tone(784, 0.15, Sine, 0.12)},
		}
	case CueGolden:
		notes := make([]Note, 0, 4)
		for i, f := range []float64{523, 659, 784, 1047} {
			notes = append(notes, Note{float64(i) * 0.08, tone(f, 0.15, Sine, 0.15)})
		}
		return notes
	case CueBomb:
		return []Note{{0, tone(100, 0.4, Sawtooth, 0.15)}}
	case CueSlash:
		return []Note{{0, Tone{Duration: 0.1, Wave: Noise, Volume: 0.1, Envelope: EnvLinear}}}
	case CuePeshi:
		return []Note{
			{0, tone(400, 0.05, Square, 0.1)},
			{0.05, tone(300, 0.08, Square, 0.1)},
		}
	case CueJump:
		return []Note{{0, Tone{Freq: 300, EndFreq: 600, Sweep: 0.15, Duration: 0.2, Wave: Sine, Volume: 0.1}}}
	case CueStar:
		return []Note{
			{0, tone(1047, 0.1, Sine, 0.1)},
			{0.08, tone(1319, 0.15, Sine, 0.1)},
		}
	case CuePoopStep:
		return []Note{{0, tone(150, 0.3, Sawtooth, 0.1)}}
	case CueFlush:
		return []Note{{0, Tone{Duration: 1.0, Wave: Swirl, Volume: 1, Envelope: EnvFlat}}}
	case CueGhost:
		return []Note{{0, Tone{Freq: 400, EndFreq: 200, Duration: 0.6, Wave: Sine, Volume: 0.08}}}
	case CueFart:
		return []Note{
			{0, Tone{Freq: 120, EndFreq: 60, Sweep: 0.25, Duration: 0.3, Wave: Sawtooth, Volume: 0.15}},
			{0, Tone{Freq: 80, EndFreq: 40, Sweep: 0.2, Duration: 0.25, Wave: Square, Volume: 0.06}},
		}
	case CueClear:
		return sequence([][2]float64{{523, 0.5}, {659, 0.5}, {784, 0.5}, {1047, 1}}, 200)
	case CueDrumroll:
		notes := make([]Note, 0, 30)
		for i := 0; i < 30; i++ {
			notes = append(notes, Note{float64(i) * 0.05, tone(200+rng.Float64()*100, 0.04, Square, 0.06)})
		}
		return notes
	}
	return nil
}

// sequence lays out [freq, beats] pairs; note i starts at i*beats beats.
func sequence(score [][2]float64, tempo float64) []Note {
	beat := 60 / tempo
	notes := make([]Note, 0, len(score))
	for i, n := range score {
		if n[0] <= 0 {
			continue
		}
		notes = append(notes, Note{float64(i) * beat * n[1], tone(n[0], n[1]*beat*0.9, Square, 0.08)})
	}
	return notes
}

var melodies = map[Track][][2]float64{
	TrackTitle: {{523, 1}, {587, 1}, {659, 1}, {523, 1}},
	1:          {{262, 0.5}, {294, 0.5}, {330, 0.5}, {294, 0.5}},
	2:          {{330, 0.5}, {370, 0.5}, {392, 0.5}, {370, 0.5}},
	3:          {{392, 0.5}, {440, 0.5}, {494, 0.5}, {440, 0.5}},
	4:          {{523, 0.5}, {587, 0.5}, {659, 0.5}, {784, 0.5}},
	5:          {{659, 0.5}, {784, 0.5}, {880, 0.5}, {784, 0.5}},
	6:          {{523, 0.5}, {440, 0.5}, {392, 0.5}, {330, 0.5}},
	7:          {{220, 1}, {196, 1}, {175, 1}, {165, 1}},
	8:          {{330, 0.5}, {392, 0.5}, {440, 0.5}, {523, 0.5}},
	9:          {{440, 0.5}, {523, 0.5}, {659, 0.5}, {523, 0.5}},
}

// Melody returns the looping tones for t, falling back to the title loop.
func Melody(t Track) []Tone {
	score, ok := melodies[t]
	if !ok {
		score = melodies[TrackTitle]
	}
	tones := make([]Tone, len(score))
	for i, n := range score {
		tones[i] = tone(n[0], n[1]*0.4, Triangle, 0.04)
	}
	return tones
}

// Render produces mono samples in [-1, 1].
func Render(t Tone, sampleRate int, rng Rand) []float64 {
	n := int(t.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	phase := 0.0
	for i := range out {
		sec := float64(i) / float64(sampleRate)
		var v float64
		switch t.Wave {
		case Noise:
			v = rng.Float64()*2 - 1
		case Swirl:
			v = (rng.Float64()*2-1)*math.Max(0, 1-sec)*0.3 + math.Sin(sec*200*(1-sec*0.5))*0.1
		default:
			v = oscillate(t.Wave, phase)
			phase += t.freqAt(sec) / float64(sampleRate)
			phase -= math.Floor(phase)
		}
		out[i] = v * t.gainAt(float64(i)/float64(n))
	}
	return out
}

func (t Tone) freqAt(sec float64) float64 {
	if t.EndFreq <= 0 || t.Freq <= 0 {
		return t.Freq
	}
	sweep := t.Sweep
	if sweep <= 0 {
		sweep = t.Duration
	}
	k := math.Min(1, sec/sweep)
	return t.Freq * math.Pow(t.EndFreq/t.Freq, k)
}

// gainAt takes the fraction of the tone already played.
func (t Tone) gainAt(frac float64) float64 {
	switch t.Envelope {
	case EnvLinear:
		return t.Volume * (1 - frac)
	case EnvFlat:
		return t.Volume
	default:
		if t.Volume <= expFloor {
			return t.Volume
		}
		return t.Volume * math.Pow(expFloor/t.Volume, frac)
	}
}

func oscillate(w Wave, phase float64) float64 {
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*phase - 1
	case Triangle:
		return 4*math.Abs(phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// EncodePCM converts mono samples to 16-bit little-endian stereo.
func EncodePCM(samples []float64, volume float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := s * volume
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		pcm := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], pcm)
		binary.LittleEndian.PutUint16(buf[i*4+2:], pcm)
	}
	return buf
}
