package graph

import (
	"github.com/caffeinepub/thunderlab/dsp/core"
	"github.com/caffeinepub/thunderlab/dsp/envelope"
)

// Source produces one sample per call for the frame at time t (seconds).
type Source interface {
	Next(t float64) float64
}

// Processor filters a stream one sample at a time.
type Processor interface {
	ProcessSample(x float64) float64
}

// Voice is a scheduled source -> filter -> gain chain that sounds on
// [Start, Stop).
type Voice struct {
	Source Source
	Filter Processor
	Gain   *envelope.Param
	Start  float64
	Stop   float64
}

// NewVoice returns a voice playing src from start until stop.
func NewVoice(src Source, start, stop float64) *Voice {
	return &Voice{Source: src, Start: start, Stop: stop}
}

func (v *Voice) sample(t float64) float64 {
	x := v.Source.Next(t)
	if v.Filter != nil {
		x = v.Filter.ProcessSample(x)
	}
	if v.Gain != nil {
		x *= v.Gain.ValueAt(t)
	}
	return x
}

// frames returns the half-open frame range the voice occupies.
func (v *Voice) frames(sampleRate float64) (start, stop int64) {
	return core.FrameAt(v.Start, sampleRate), core.FrameAt(v.Stop, sampleRate)
}
