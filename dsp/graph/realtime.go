package graph

import (
	"sync"

	"github.com/caffeinepub/thunderlab/dsp/core"
)

// Realtime is a context driven by an audio device pulling interleaved
// float32 frames. Its clock is the number of frames handed out so far.
type Realtime struct {
	mu    sync.Mutex
	cfg   core.ProcessorConfig
	frame int64
	bus   *Bus
	mix   []float64
	owner any
}

// NewRealtime returns a real-time context.
func NewRealtime(opts ...core.ProcessorOption) *Realtime {
	cfg := core.ApplyProcessorOptions(opts...)
	return &Realtime{cfg: cfg, bus: NewBus(cfg.SampleRate, cfg.MasterGain)}
}

// SampleRate implements Context.
func (r *Realtime) SampleRate() float64 { return r.cfg.SampleRate }

// Channels returns the interleaved output channel count.
func (r *Realtime) Channels() int { return r.cfg.Channels }

// CurrentTime implements Context.
func (r *Realtime) CurrentTime() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return core.FrameTime(r.frame, r.cfg.SampleRate)
}

// Connect implements Context.
func (r *Realtime) Connect(v *Voice) {
	r.mu.Lock()
	r.bus.Add(v)
	r.mu.Unlock()
}

// Active returns the number of voices still sounding.
func (r *Realtime) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bus.Active()
}

// Render fills dst with interleaved frames clamped to [-1, 1] and advances
// the clock. A trailing partial frame is zeroed.
func (r *Realtime) Render(dst []float32) {
	nch := r.cfg.Channels
	frames := len(dst) / nch

	r.mu.Lock()
	if cap(r.mix) < frames {
		r.mix = make([]float64, frames)
	}
	mix := r.mix[:frames]
	r.bus.Mix(mix, r.frame)
	r.frame += int64(frames)
	r.mu.Unlock()

	for i, x := range mix {
		s := float32(core.Clamp(x, -1, 1))
		for ch := 0; ch < nch; ch++ {
			dst[i*nch+ch] = s
		}
	}
	for i := frames * nch; i < len(dst); i++ {
		dst[i] = 0
	}
}

// Claim implements Claimer.
func (r *Realtime) Claim(owner any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.owner != nil && r.owner != owner {
		return ErrBusInUse
	}
	r.owner = owner
	return nil
}

// Release implements Claimer.
func (r *Realtime) Release(owner any) {
	r.mu.Lock()
	if r.owner == owner {
		r.owner = nil
	}
	r.mu.Unlock()
}
