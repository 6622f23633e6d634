package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// ErrEmpty is returned when there is nothing to analyze.
var ErrEmpty = errors.New("spectrum: empty input")

// Spectrum is a one-sided power spectrum. Power[k] is the power of bin k,
// centred on k*BinHz.
type Spectrum struct {
	Power []float64
	BinHz float64
}

var planCache sync.Map // int -> *algofft.Plan[complex128]

func planFor(n int) (*algofft.Plan[complex128], error) {
	if p, ok := planCache.Load(n); ok {
		return p.(*algofft.Plan[complex128]), nil
	}
	p, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan %d: %w", n, err)
	}
	actual, _ := planCache.LoadOrStore(n, p)
	return actual.(*algofft.Plan[complex128]), nil
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Hann returns a periodic Hann window of length n.
func Hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return w
}

// PowerSpectrum Hann-windows x, zero-pads it to a power of two and returns
// the one-sided power spectrum.
func PowerSpectrum(x []float64, sampleRate float64) (*Spectrum, error) {
	if len(x) == 0 {
		return nil, ErrEmpty
	}
	if !(sampleRate > 0) {
		return nil, fmt.Errorf("spectrum: sample rate must be > 0: %v", sampleRate)
	}

	n := NextPowerOfTwo(len(x))
	plan, err := planFor(n)
	if err != nil {
		return nil, err
	}

	windowed := make([]float64, len(x))
	vecmath.MulBlock(windowed, x, Hann(len(x)))

	in := make([]complex128, n)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	pow := make([]float64, bins)
	vecmath.Power(pow, re, im)

	return &Spectrum{Power: pow, BinHz: sampleRate / float64(n)}, nil
}

// Total returns the summed power of all bins.
func (s *Spectrum) Total() float64 {
	return vecmath.Sum(s.Power)
}

// Centroid returns the power-weighted mean frequency in Hz, or 0 for a
// silent spectrum.
func (s *Spectrum) Centroid() float64 {
	total, weighted := 0.0, 0.0
	for k, p := range s.Power {
		total += p
		weighted += p * float64(k) * s.BinHz
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// BandEnergy returns the summed power of bins whose centre lies in
// [loHz, hiHz).
func (s *Spectrum) BandEnergy(loHz, hiHz float64) float64 {
	e := 0.0
	for k, p := range s.Power {
		f := float64(k) * s.BinHz
		if f >= loHz && f < hiHz {
			e += p
		}
	}
	return e
}

// BandEnergyRatio returns BandEnergy(loHz, hiHz) / Total(), or 0 for a
// silent spectrum.
func (s *Spectrum) BandEnergyRatio(loHz, hiHz float64) float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return s.BandEnergy(loHz, hiHz) / total
}

// PeakFrequency returns the centre frequency of the strongest bin.
func (s *Spectrum) PeakFrequency() float64 {
	best, bestK := -1.0, 0
	for k, p := range s.Power {
		if p > best {
			best, bestK = p, k
		}
	}
	return float64(bestK) * s.BinHz
}
