package biquad

import (
	"math"
	"math/cmplx"
)

// DefaultQdB is the Web Audio default quality factor for a highpass node,
// expressed in dB (resonance of 10^(1/20) ≈ 1.122).
const DefaultQdB = 1.0

// Highpass designs a second-order highpass at cutoff (Hz) with quality qDB
// given in dB. Cutoffs outside (0, nyquist) yield a passthrough.
func Highpass(cutoff, qDB, sampleRate float64) Coefficients {
	if sampleRate <= 0 || math.IsNaN(cutoff) || cutoff <= 0 || cutoff >= sampleRate/2 {
		return Coefficients{B0: 1}
	}

	w0 := 2 * math.Pi * cutoff / sampleRate
	cw := math.Cos(w0)
	q := math.Pow(10, qDB/20)
	alpha := math.Sin(w0) / (2 * q)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

// NewHighpass returns a ready-to-run highpass Section with the default Q.
func NewHighpass(cutoff, sampleRate float64) *Section {
	return NewSection(Highpass(cutoff, DefaultQdB, sampleRate))
}

// MagnitudeDB returns the magnitude response in dB at freqHz.
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	w := 2 * math.Pi * freqHz / sampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2

	return 20 * math.Log10(math.Max(cmplx.Abs(num/den), 1e-300))
}
