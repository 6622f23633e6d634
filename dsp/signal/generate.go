package signal

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// NoiseSource draws uniform white-noise buffers. It is safe for concurrent
// use. Without options every source is seeded from the wall clock, so two
// renders of the same pattern differ in their noise layers.
type NoiseSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a NoiseSource.
type Option func(*NoiseSource)

// WithSeed makes the noise sequence deterministic.
func WithSeed(seed int64) Option {
	return func(n *NoiseSource) {
		n.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses an existing random generator. A nil generator is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(n *NoiseSource) {
		if rng != nil {
			n.rng = rng
		}
	}
}

// NewNoiseSource creates a noise source.
func NewNoiseSource(opts ...Option) *NoiseSource {
	n := &NoiseSource{}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	if n.rng == nil {
		n.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return n
}

// White returns samples of uniform noise in [-amplitude, amplitude).
func (n *NoiseSource) White(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)

	n.mu.Lock()
	for i := range out {
		out[i] = (n.rng.Float64()*2 - 1) * amplitude
	}
	n.mu.Unlock()

	return out, nil
}
