// Package playback connects a graph.Realtime context to the system audio
// device through oto.
package playback

import (
	"encoding/binary"
	"math"

	"github.com/caffeinepub/thunderlab/dsp/graph"
)

const bytesPerSample = 4

// Stream is an io.Reader of interleaved float32 little-endian frames pulled
// from a real-time context. Each Read advances the context clock.
type Stream struct {
	rt  *graph.Realtime
	buf []float32
}

// NewStream returns a reader over rt.
func NewStream(rt *graph.Realtime) *Stream {
	return &Stream{rt: rt}
}

// Read fills p with as many whole frames as fit. It never fails.
func (s *Stream) Read(p []byte) (int, error) {
	frameBytes := s.rt.Channels() * bytesPerSample
	n := len(p) / frameBytes * frameBytes
	if n == 0 {
		return 0, nil
	}
	samples := n / bytesPerSample
	if cap(s.buf) < samples {
		s.buf = make([]float32, samples)
	}
	buf := s.buf[:samples]
	s.rt.Render(buf)
	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(v))
	}
	return n, nil
}
