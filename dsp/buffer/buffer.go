package buffer

import (
	"errors"
	"fmt"
)

// ErrShape is returned when a buffer is built from channels of unequal
// length or with no channels at all.
var ErrShape = errors.New("buffer: channels must be non-empty and equal length")

// Audio is a planar multichannel sample buffer at a fixed sample rate.
type Audio struct {
	sampleRate float64
	channels   [][]float64
}

// New returns a zero-filled Audio buffer with the given shape.
// Non-positive channel counts are raised to 1 and negative lengths to 0.
func New(channels, frames int, sampleRate float64) *Audio {
	if channels < 1 {
		channels = 1
	}
	if frames < 0 {
		frames = 0
	}
	a := &Audio{sampleRate: sampleRate, channels: make([][]float64, channels)}
	for i := range a.channels {
		a.channels[i] = make([]float64, frames)
	}
	return a
}

// FromChannels wraps existing planar channel slices without copying.
func FromChannels(sampleRate float64, channels ...[]float64) (*Audio, error) {
	if len(channels) == 0 {
		return nil, ErrShape
	}
	n := len(channels[0])
	for i, ch := range channels {
		if len(ch) != n {
			return nil, fmt.Errorf("%w: channel %d has %d frames, want %d", ErrShape, i, len(ch), n)
		}
	}
	return &Audio{sampleRate: sampleRate, channels: channels}, nil
}

// SampleRate returns the sample rate in Hz.
func (a *Audio) SampleRate() float64 { return a.sampleRate }

// NumChannels returns the channel count.
func (a *Audio) NumChannels() int { return len(a.channels) }

// Len returns the number of frames per channel.
func (a *Audio) Len() int {
	if len(a.channels) == 0 {
		return 0
	}
	return len(a.channels[0])
}

// Duration returns the buffer length in seconds.
func (a *Audio) Duration() float64 {
	if a.sampleRate <= 0 {
		return 0
	}
	return float64(a.Len()) / a.sampleRate
}

// Channel returns the samples of channel i. The slice aliases the buffer.
func (a *Audio) Channel(i int) []float64 {
	return a.channels[i]
}

// Interleave returns all samples in frame order, channel-minor:
// f0c0, f0c1, ..., f1c0, f1c1, ...
func (a *Audio) Interleave() []float64 {
	nch := len(a.channels)
	frames := a.Len()
	out := make([]float64, frames*nch)
	for ch, samples := range a.channels {
		for i, v := range samples {
			out[i*nch+ch] = v
		}
	}
	return out
}

// Copy returns a deep copy of the buffer.
func (a *Audio) Copy() *Audio {
	c := &Audio{sampleRate: a.sampleRate, channels: make([][]float64, len(a.channels))}
	for i, ch := range a.channels {
		c.channels[i] = append([]float64(nil), ch...)
	}
	return c
}
