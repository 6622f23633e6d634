package signal

import (
	"math"

	"github.com/caffeinepub/thunderlab/dsp/envelope"
)

// Waveform selects an oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
)

// String returns the waveform name.
func (w Waveform) String() string {
	switch w {
	case WaveTriangle:
		return "triangle"
	default:
		return "sine"
	}
}

// Oscillator is a phase-accumulating periodic source whose frequency follows
// an automated parameter. Phase starts at zero, so both shapes begin at 0
// and rise.
type Oscillator struct {
	waveform   Waveform
	freq       *envelope.Param
	sampleRate float64
	phase      float64
}

// NewOscillator returns an oscillator reading its frequency (Hz) from freq.
func NewOscillator(w Waveform, freq *envelope.Param, sampleRate float64) *Oscillator {
	return &Oscillator{waveform: w, freq: freq, sampleRate: sampleRate}
}

// Next returns the sample at time t and advances the phase by one frame.
func (o *Oscillator) Next(t float64) float64 {
	y := waveSample(o.waveform, o.phase)

	o.phase += 2 * math.Pi * o.freq.ValueAt(t) / o.sampleRate
	if o.phase >= math.Pi {
		o.phase = math.Mod(o.phase+math.Pi, 2*math.Pi) - math.Pi
	}

	return y
}

func waveSample(w Waveform, phase float64) float64 {
	switch w {
	case WaveTriangle:
		return (2 / math.Pi) * math.Asin(math.Sin(phase))
	default:
		return math.Sin(phase)
	}
}

// Buffer plays back a fixed sample buffer once, then outputs silence.
type Buffer struct {
	samples []float64
	pos     int
}

// NewBuffer returns a one-shot buffer source.
func NewBuffer(samples []float64) *Buffer {
	return &Buffer{samples: samples}
}

// Next returns the next buffered sample; t is ignored.
func (b *Buffer) Next(float64) float64 {
	if b.pos >= len(b.samples) {
		return 0
	}
	y := b.samples[b.pos]
	b.pos++
	return y
}
