package testutil

import (
	"sync"

	"github.com/caffeinepub/thunderlab/dsp/graph"
)

// Recorder is a graph.Context that keeps connected voices instead of
// rendering them.
type Recorder struct {
	mu     sync.Mutex
	rate   float64
	now    float64
	voices []*graph.Voice
}

// NewRecorder returns a recorder reporting sampleRate.
func NewRecorder(sampleRate float64) *Recorder {
	return &Recorder{rate: sampleRate}
}

// SampleRate implements graph.Context.
func (r *Recorder) SampleRate() float64 { return r.rate }

// CurrentTime implements graph.Context.
func (r *Recorder) CurrentTime() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.now
}

// SetTime moves the reported clock.
func (r *Recorder) SetTime(t float64) {
	r.mu.Lock()
	r.now = t
	r.mu.Unlock()
}

// Connect implements graph.Context.
func (r *Recorder) Connect(v *graph.Voice) {
	r.mu.Lock()
	r.voices = append(r.voices, v)
	r.mu.Unlock()
}

// Voices returns a copy of the connected voices.
func (r *Recorder) Voices() []*graph.Voice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*graph.Voice, len(r.voices))
	copy(out, r.voices)
	return out
}

// Len returns the number of connected voices.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.voices)
}
