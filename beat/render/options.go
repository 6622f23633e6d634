package render

import (
	"log/slog"

	"github.com/caffeinepub/thunderlab/beat/synth"
	"github.com/caffeinepub/thunderlab/dsp/core"
	"github.com/caffeinepub/thunderlab/dsp/graph"
	"github.com/caffeinepub/thunderlab/internal/logging"
)

// DefaultBars is the loop length of an export.
const DefaultBars = 4

type config struct {
	processor []core.ProcessorOption
	bars      int
	maxFrames int64
	synth     *synth.Synthesizer
	logger    *slog.Logger
}

// Option configures Render and Export.
type Option func(*config)

// WithSampleRate sets the render sample rate (default 44100 Hz).
func WithSampleRate(sampleRate float64) Option {
	return func(c *config) {
		c.processor = append(c.processor, core.WithSampleRate(sampleRate))
	}
}

// WithChannels sets the output channel count (default 2).
func WithChannels(channels int) Option {
	return func(c *config) {
		c.processor = append(c.processor, core.WithChannels(channels))
	}
}

// WithMasterGain overrides the master bus gain (default 0.7).
func WithMasterGain(gain float64) Option {
	return func(c *config) {
		c.processor = append(c.processor, core.WithMasterGain(gain))
	}
}

// WithBars sets how many times the pattern repeats. Values < 1 are ignored.
func WithBars(bars int) Option {
	return func(c *config) {
		if bars >= 1 {
			c.bars = bars
		}
	}
}

// WithMaxFrames caps the offline context size. Larger renders fail with
// graph.ErrContextSize.
func WithMaxFrames(frames int64) Option {
	return func(c *config) {
		if frames > 0 {
			c.maxFrames = frames
		}
	}
}

// WithSynthesizer renders with s, e.g. one built with synth.WithSeed.
func WithSynthesizer(s *synth.Synthesizer) Option {
	return func(c *config) {
		if s != nil {
			c.synth = s
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{bars: DefaultBars, maxFrames: graph.DefaultMaxFrames}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}
	if c.synth == nil {
		c.synth = synth.New(synth.WithLogger(c.logger))
	}
	return c
}
