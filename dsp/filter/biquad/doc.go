// Package biquad provides the second-order IIR filter used to shape the
// noise layers of the drum voices.
//
// A [Section] runs Direct Form II Transposed with normalized [Coefficients].
// [Highpass] designs the RBJ cookbook highpass with the Q convention of the
// Web Audio BiquadFilterNode (Q given in dB), so a voice built here matches
// the same voice built against a browser audio graph.
package biquad
