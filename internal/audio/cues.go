package audio

import (
	"math"
	"math/rand/v2"
)

// Cue IDs played by the game.
const (
	CueSelect = "select"
	CueMatch  = "match"
	CueMiss   = "miss"
	CueTimeUp = "timeup"
)

var builtinCues = []struct {
	id   string
	inst Instrument
}{
	{CueSelect, Tone{From: 880, To: 880, Seconds: 0.05, Decay: 8}},
	{CueMatch, Chime{
		Tone{From: 660, To: 660, Seconds: 0.09, Decay: 3},
		Tone{From: 990, To: 990, Seconds: 0.18, Decay: 4},
	}},
	{CueMiss, Thud{Seconds: 0.15}},
	{CueTimeUp, Tone{From: 440, To: 220, Seconds: 0.5, Decay: 3}},
}

// Tone is a sine that slides from From to To Hz under an exponential decay.
type Tone struct {
	From, To float64
	Seconds  float64
	Decay    float64
}

func (t Tone) NewVoice(sampleRate int) Voice {
	return &toneVoice{t: t, n: int(t.Seconds * float64(sampleRate)), sr: float64(sampleRate)}
}

type toneVoice struct {
	t     Tone
	i, n  int
	sr    float64
	phase float64
}

func (v *toneVoice) Sample() (float64, bool) {
	if v.i >= v.n {
		return 0, true
	}
	x := float64(v.i) / float64(v.n)
	freq := v.t.From + (v.t.To-v.t.From)*x
	v.phase += 2 * math.Pi * freq / v.sr
	out := math.Sin(v.phase) * math.Exp(-v.t.Decay*x)
	v.i++
	return out, false
}

// Chime plays its tones back to back.
type Chime []Tone

func (c Chime) NewVoice(sampleRate int) Voice {
	voices := make([]Voice, len(c))
	for i, t := range c {
		voices[i] = t.NewVoice(sampleRate)
	}
	return &seqVoice{voices: voices}
}

type seqVoice struct {
	voices []Voice
}

func (s *seqVoice) Sample() (float64, bool) {
	for len(s.voices) > 0 {
		v, done := s.voices[0].Sample()
		if !done {
			return v, false
		}
		s.voices = s.voices[1:]
	}
	return 0, true
}

// Thud is a low pitch-bent sine with a little noise on the attack.
type Thud struct {
	Seconds float64
}

func (t Thud) NewVoice(sampleRate int) Voice {
	return &thudVoice{n: int(t.Seconds * float64(sampleRate)), sr: float64(sampleRate)}
}

type thudVoice struct {
	i, n  int
	sr    float64
	phase float64
}

func (v *thudVoice) Sample() (float64, bool) {
	if v.i >= v.n {
		return 0, true
	}
	x := float64(v.i) / float64(v.n)
	v.phase += 2 * math.Pi * (180 - 90*x) / v.sr
	out := math.Sin(v.phase) * math.Exp(-5*x)
	if x < 0.1 {
		out += (rand.Float64()*2 - 1) * 0.3 * (1 - x/0.1)
	}
	v.i++
	return out, false
}
