package synth

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/caffeinepub/thunderlab/beat"
	"github.com/caffeinepub/thunderlab/dsp/core"
	"github.com/caffeinepub/thunderlab/dsp/envelope"
	"github.com/caffeinepub/thunderlab/dsp/filter/biquad"
	"github.com/caffeinepub/thunderlab/dsp/graph"
	"github.com/caffeinepub/thunderlab/dsp/signal"
	"github.com/caffeinepub/thunderlab/internal/logging"
)

// Synthesizer builds drum voices. It is safe for concurrent use.
type Synthesizer struct {
	noise  *signal.NoiseSource
	logger *slog.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithSeed makes the noise layers reproducible.
func WithSeed(seed int64) Option {
	return func(s *Synthesizer) {
		s.noise = signal.NewNoiseSource(signal.WithSeed(seed))
	}
}

// WithRand draws noise from rng.
func WithRand(rng *rand.Rand) Option {
	return func(s *Synthesizer) {
		if rng != nil {
			s.noise = signal.NewNoiseSource(signal.WithRand(rng))
		}
	}
}

// WithNoiseSource shares an existing noise source.
func WithNoiseSource(n *signal.NoiseSource) Option {
	return func(s *Synthesizer) {
		if n != nil {
			s.noise = n
		}
	}
}

// WithLogger sets the logger used for per-trigger debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Synthesizer) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Synthesizer. Without WithSeed or WithRand noise is seeded
// from the clock.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.noise == nil {
		s.noise = signal.NewNoiseSource()
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	return s
}

// Synthesize schedules sound at start (seconds, on dst's clock). On error
// nothing is connected.
func (s *Synthesizer) Synthesize(sound beat.Sound, start float64, dst graph.Context) error {
	voices, err := s.Voices(sound, start, dst.SampleRate())
	if err != nil {
		return err
	}
	for _, v := range voices {
		dst.Connect(v)
	}
	s.logger.Debug("synthesize", "sound", sound, "start", start, "voices", len(voices))
	return nil
}

// Voices builds the voices of sound without connecting them.
func (s *Synthesizer) Voices(sound beat.Sound, start, sampleRate float64) ([]*graph.Voice, error) {
	recipe, err := RecipeFor(sound)
	if err != nil {
		return nil, err
	}
	voices := make([]*graph.Voice, 0, len(recipe.Layers))
	for i, layer := range recipe.Layers {
		v, err := s.build(layer, start, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("synth: %s layer %d (%s): %w", sound, i, layer.Kind, err)
		}
		voices = append(voices, v)
	}
	return voices, nil
}

func (s *Synthesizer) build(layer Layer, start, sampleRate float64) (*graph.Voice, error) {
	gain, err := envelope.Exponential(layer.Gain.From, layer.Gain.To, start, layer.Duration)
	if err != nil {
		return nil, err
	}

	var src graph.Source
	switch layer.Kind {
	case LayerSine, LayerTriangle:
		freq, err := envelope.Exponential(layer.Freq.From, layer.Freq.To, start, layer.Duration)
		if err != nil {
			return nil, err
		}
		w := signal.WaveSine
		if layer.Kind == LayerTriangle {
			w = signal.WaveTriangle
		}
		src = signal.NewOscillator(w, freq, sampleRate)
	case LayerNoise:
		n := int(core.FrameCount(layer.Duration, sampleRate))
		samples, err := s.noise.White(1, n)
		if err != nil {
			return nil, err
		}
		src = signal.NewBuffer(samples)
	default:
		return nil, fmt.Errorf("unknown layer kind %d", int(layer.Kind))
	}

	v := graph.NewVoice(src, start, start+layer.Duration)
	v.Gain = gain
	if layer.HighpassHz > 0 {
		v.Filter = biquad.NewHighpass(layer.HighpassHz, sampleRate)
	}
	return v, nil
}
