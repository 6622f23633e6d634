// Package envelope provides time-automated synthesis parameters.
//
// A [Param] holds a default value plus a timeline of events: instantaneous
// value changes ([Param.SetValueAtTime]) and exponential ramps
// ([Param.ExponentialRampToValueAtTime]). A ramp interpolates from the value
// of the preceding event, beginning at that event's time, and reaches its
// target exactly at its own time; afterwards the target value is held.
//
// Exponential ramps cannot cross or touch zero, so targets must be strictly
// positive. Envelopes that should fade "to silence" end at a small floor such
// as 0.01 instead.
package envelope
