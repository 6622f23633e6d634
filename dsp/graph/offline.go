package graph

import (
	"fmt"

	"github.com/caffeinepub/thunderlab/dsp/buffer"
	"github.com/caffeinepub/thunderlab/dsp/core"
)

// DefaultMaxFrames caps offline contexts at ten minutes of 44.1 kHz audio.
const DefaultMaxFrames = 44100 * 60 * 10

const offlineBlockSize = 1024

// Offline is a non-real-time context that renders a fixed number of frames.
type Offline struct {
	cfg      core.ProcessorConfig
	frames   int64
	bus      *Bus
	rendered bool
}

// NewOffline allocates an offline context of frames length. maxFrames <= 0
// selects DefaultMaxFrames.
func NewOffline(frames, maxFrames int64, opts ...core.ProcessorOption) (*Offline, error) {
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}
	if frames <= 0 || frames > maxFrames {
		return nil, fmt.Errorf("%w: %d frames (limit %d)", ErrContextSize, frames, maxFrames)
	}
	cfg := core.ApplyProcessorOptions(opts...)
	return &Offline{
		cfg:    cfg,
		frames: frames,
		bus:    NewBus(cfg.SampleRate, cfg.MasterGain),
	}, nil
}

// SampleRate implements Context.
func (o *Offline) SampleRate() float64 { return o.cfg.SampleRate }

// CurrentTime implements Context. Offline scheduling is absolute, so the
// clock stays at zero until rendering.
func (o *Offline) CurrentTime() float64 { return 0 }

// Connect implements Context. Voices connected after rendering are ignored.
func (o *Offline) Connect(v *Voice) {
	if o.rendered {
		return
	}
	o.bus.Add(v)
}

// Length returns the context length in frames.
func (o *Offline) Length() int64 { return o.frames }

// Pending returns the number of connected voices not yet rendered.
func (o *Offline) Pending() int { return o.bus.Active() }

// StartRendering renders every connected voice to completion. The mono bus
// output is copied to each channel.
func (o *Offline) StartRendering() (*buffer.Audio, error) {
	if o.rendered {
		return nil, ErrAlreadyRendered
	}
	o.rendered = true

	out := buffer.New(o.cfg.Channels, int(o.frames), o.cfg.SampleRate)
	mono := out.Channel(0)
	for f := int64(0); f < o.frames; f += offlineBlockSize {
		end := min(f+offlineBlockSize, o.frames)
		o.bus.Mix(mono[f:end], f)
	}
	for ch := 1; ch < out.NumChannels(); ch++ {
		copy(out.Channel(ch), mono)
	}
	return out, nil
}
