package graph

import (
	vecmath "github.com/cwbudde/algo-vecmath"
)

type scheduledVoice struct {
	voice      *Voice
	startFrame int64
	stopFrame  int64
}

// Bus sums connected voices and applies a fixed master gain. A Bus is not
// safe for concurrent use; contexts serialize access to it.
type Bus struct {
	sampleRate float64
	gain       float64
	voices     []scheduledVoice
	scratch    []float64
}

// NewBus returns an empty bus.
func NewBus(sampleRate, gain float64) *Bus {
	return &Bus{sampleRate: sampleRate, gain: gain}
}

// Gain returns the master gain.
func (b *Bus) Gain() float64 { return b.gain }

// Add schedules v. Voices with an empty frame range are dropped.
func (b *Bus) Add(v *Voice) {
	if v == nil || v.Source == nil {
		return
	}
	start, stop := v.frames(b.sampleRate)
	if stop <= start {
		return
	}
	b.voices = append(b.voices, scheduledVoice{voice: v, startFrame: start, stopFrame: stop})
}

// Active returns the number of voices that have not finished yet.
func (b *Bus) Active() int { return len(b.voices) }

// Mix overwrites dst with the mono mix of frames [frame0, frame0+len(dst)).
// Voices that end inside the block are released afterwards.
func (b *Bus) Mix(dst []float64, frame0 int64) {
	for i := range dst {
		dst[i] = 0
	}
	if len(dst) == 0 {
		return
	}
	if cap(b.scratch) < len(dst) {
		b.scratch = make([]float64, len(dst))
	}
	scratch := b.scratch[:len(dst)]
	frameEnd := frame0 + int64(len(dst))

	keep := b.voices[:0]
	for _, sv := range b.voices {
		lo := max(sv.startFrame, frame0)
		hi := min(sv.stopFrame, frameEnd)
		if lo < hi {
			seg := scratch[lo-frame0 : hi-frame0]
			for i := range seg {
				seg[i] = sv.voice.sample(float64(lo+int64(i)) / b.sampleRate)
			}
			vecmath.AddBlockInPlace(dst[lo-frame0:hi-frame0], seg)
		}
		if sv.stopFrame > frameEnd {
			keep = append(keep, sv)
		}
	}
	for i := len(keep); i < len(b.voices); i++ {
		b.voices[i] = scheduledVoice{}
	}
	b.voices = keep

	if b.gain != 1 {
		vecmath.ScaleBlockInPlace(dst, b.gain)
	}
}
