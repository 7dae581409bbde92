package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator is a sine with an exponential decay envelope
type ToneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	decay float64
	pos   int
}

func NewToneGenerator(sr beep.SampleRate, freq, decay float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, decay: decay}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := eatAmplitude * math.Exp(-t*g.decay) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator glides linearly from one frequency to another over span
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	span     int
	pos      int
	phase    float64
}

func NewSweepGenerator(sr beep.SampleRate, from, to float64, span time.Duration) *SweepGenerator {
	n := sr.N(span)
	if n < 1 {
		n = 1
	}
	return &SweepGenerator{sr: sr, from: from, to: to, span: n}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.span), 1)
		freq := g.from + (g.to-g.from)*progress

		// Phase accumulation keeps the glide click-free
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := 1 - progress
		sample := chirpAmplitude * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// BuzzGenerator is a harmonic-rich low tone with a short fade-in
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.5*math.Sin(2*math.Pi*g.freq*t) +
			0.3*math.Sin(2*math.Pi*g.freq*2*t) +
			0.2*math.Sin(2*math.Pi*g.freq*3*t)
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * shieldBuzzAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// CrashGenerator is decaying noise over a low rumble
type CrashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func NewCrashGenerator(sr beep.SampleRate, seed int64) *CrashGenerator {
	return &CrashGenerator{sr: sr, seed: seed & 0x7fffffff}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 8)

		// LCG noise
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := crashRumbleAmplitude * math.Sin(2*math.Pi*crashRumbleHz*t)

		sample := envelope * (crashNoiseAmplitude*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}

// BeatGenerator is a kick plus bass pulse repeating every beatIntervalMs
type BeatGenerator struct {
	sr     beep.SampleRate
	pos    int
	period int
	kick   int
}

func NewBeatGenerator(sr beep.SampleRate) *BeatGenerator {
	return &BeatGenerator{
		sr:     sr,
		period: sr.N(beatIntervalMs * time.Millisecond),
		kick:   sr.N(beatKickMs * time.Millisecond),
	}
}

func (g *BeatGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.period
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < g.kick {
			env := 1.0 - float64(beatPos)/float64(g.kick)
			kick = beatKickAmplitude * env * math.Sin(2*math.Pi*beatKickHz*(1+2*env)*t)
		}
		bass := beatBassAmplitude * math.Sin(2*math.Pi*beatBassHz*t)

		samples[i][0] = kick + bass
		samples[i][1] = kick + bass
		g.pos++
	}
	return len(samples), true
}

func (g *BeatGenerator) Err() error {
	return nil
}
