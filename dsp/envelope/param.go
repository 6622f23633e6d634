package envelope

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrNonPositiveTarget is returned when an exponential ramp targets a value <= 0.
	ErrNonPositiveTarget = errors.New("envelope: exponential ramp target must be > 0")
	// ErrEventOrder is returned when an event is scheduled before the last one.
	ErrEventOrder = errors.New("envelope: events must be scheduled in time order")
	// ErrInvalidTime is returned for NaN, infinite or negative event times.
	ErrInvalidTime = errors.New("envelope: event time must be finite and >= 0")
)

type eventKind int

const (
	eventSet eventKind = iota
	eventExpRamp
)

type event struct {
	kind  eventKind
	time  float64
	value float64
}

// Param is an automatable parameter such as an oscillator frequency or a
// gain. The zero value is not usable; create one with New.
type Param struct {
	defaultValue float64
	events       []event
}

// New returns a Param that evaluates to defaultValue until its first event.
func New(defaultValue float64) *Param {
	return &Param{defaultValue: defaultValue}
}

// Default returns the value used before any event takes effect.
func (p *Param) Default() float64 { return p.defaultValue }

// SetValueAtTime schedules an instantaneous change to value at time t.
func (p *Param) SetValueAtTime(value, t float64) error {
	if err := p.checkTime(t); err != nil {
		return err
	}
	p.events = append(p.events, event{kind: eventSet, time: t, value: value})
	return nil
}

// ExponentialRampToValueAtTime schedules an exponential ramp from the
// previous event's value to value, arriving at time t.
func (p *Param) ExponentialRampToValueAtTime(value, t float64) error {
	if !(value > 0) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %v", ErrNonPositiveTarget, value)
	}
	if err := p.checkTime(t); err != nil {
		return err
	}
	p.events = append(p.events, event{kind: eventExpRamp, time: t, value: value})
	return nil
}

func (p *Param) checkTime(t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTime, t)
	}
	if n := len(p.events); n > 0 && t < p.events[n-1].time {
		return fmt.Errorf("%w: %v < %v", ErrEventOrder, t, p.events[n-1].time)
	}
	return nil
}

// ValueAt evaluates the parameter at time t (seconds).
func (p *Param) ValueAt(t float64) float64 {
	// Index of the first event strictly after t.
	next := sort.Search(len(p.events), func(i int) bool {
		return p.events[i].time > t
	})

	prevValue, prevTime := p.defaultValue, 0.0
	if next > 0 {
		prev := p.events[next-1]
		prevValue, prevTime = prev.value, prev.time
	}

	if next == len(p.events) || p.events[next].kind != eventExpRamp {
		return prevValue
	}

	ramp := p.events[next]
	return expInterp(prevValue, ramp.value, prevTime, ramp.time, t)
}

// expInterp follows v0 * (v1/v0)^((t-t0)/(t1-t0)). A start value that is
// zero or of opposite sign cannot be interpolated and is held instead.
func expInterp(v0, v1, t0, t1, t float64) float64 {
	if v0 == 0 || (v0 < 0) != (v1 < 0) {
		return v0
	}
	span := t1 - t0
	if span <= 0 {
		return v1
	}
	frac := (t - t0) / span
	return v0 * math.Pow(v1/v0, frac)
}

// EndTime returns the time of the last scheduled event, or 0 if none.
func (p *Param) EndTime() float64 {
	if len(p.events) == 0 {
		return 0
	}
	return p.events[len(p.events)-1].time
}

// Exponential returns a Param that starts at from at time start and decays
// (or rises) exponentially to to over dur seconds.
func Exponential(from, to, start, dur float64) (*Param, error) {
	p := New(from)
	if err := p.SetValueAtTime(from, start); err != nil {
		return nil, err
	}
	if err := p.ExponentialRampToValueAtTime(to, start+dur); err != nil {
		return nil, err
	}
	return p, nil
}
