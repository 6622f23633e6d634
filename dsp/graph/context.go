package graph

import "errors"

var (
	// ErrContextSize is returned when an offline context cannot be allocated
	// for the requested frame count.
	ErrContextSize = errors.New("graph: offline context size out of range")
	// ErrAlreadyRendered is returned when an offline context is rendered twice.
	ErrAlreadyRendered = errors.New("graph: offline context already rendered")
	// ErrBusInUse is returned when a second owner claims a real-time bus.
	ErrBusInUse = errors.New("graph: output bus already claimed")
)

// Context is a destination voices can be scheduled on.
type Context interface {
	// SampleRate returns the context sample rate in Hz.
	SampleRate() float64
	// CurrentTime returns the context clock in seconds.
	CurrentTime() float64
	// Connect schedules v on the master bus.
	Connect(v *Voice)
}

// Claimer is implemented by contexts whose output may only be driven by one
// sequencer at a time.
type Claimer interface {
	Claim(owner any) error
	Release(owner any)
}
