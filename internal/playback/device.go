package playback

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/caffeinepub/thunderlab/dsp/graph"
	"github.com/caffeinepub/thunderlab/internal/logging"
	"github.com/ebitengine/oto/v3"
)

// Option configures a Device.
type Option func(*Device)

// WithBufferSize sets the device buffer length. Zero lets oto choose.
func WithBufferSize(d time.Duration) Option {
	return func(dev *Device) {
		if d >= 0 {
			dev.bufferSize = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(dev *Device) {
		if l != nil {
			dev.logger = l
		}
	}
}

// Device plays a real-time context on the default audio output. oto allows
// one context per process, so open at most one Device.
type Device struct {
	bufferSize time.Duration
	logger     *slog.Logger

	mu      sync.Mutex
	ctx     *oto.Context
	player  *oto.Player
	started bool
}

// Open initialises the audio device for rt and waits until it is ready.
func Open(rt *graph.Realtime, opts ...Option) (*Device, error) {
	d := &Device{}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	if d.logger == nil {
		d.logger = logging.Discard()
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(rt.SampleRate()),
		ChannelCount: rt.Channels(),
		Format:       oto.FormatFloat32LE,
		BufferSize:   d.bufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("playback: open audio device: %w", err)
	}
	<-ready

	d.ctx = ctx
	d.player = ctx.NewPlayer(NewStream(rt))
	d.logger.Debug("audio device ready",
		"sample_rate", rt.SampleRate(), "channels", rt.Channels(), "buffer", d.bufferSize)
	return d, nil
}

// Start begins pulling audio. Calling it again does nothing.
func (d *Device) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.started && d.player != nil {
		d.player.Play()
		d.started = true
	}
}

// Err reports a device error, if any.
func (d *Device) Err() error {
	return d.ctx.Err()
}

// Close stops playback and releases the player.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.player == nil {
		return nil
	}
	err := d.player.Close()
	d.player = nil
	d.started = false
	return err
}
