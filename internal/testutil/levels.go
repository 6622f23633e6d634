package testutil

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Peak returns the largest absolute sample value.
func Peak(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return vecmath.MaxAbs(x)
}

// RMS returns the root mean square of x.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(vecmath.DotProduct(x, x) / float64(len(x)))
}

// FirstAbove returns the index of the first sample whose magnitude exceeds
// threshold, or -1.
func FirstAbove(x []float64, threshold float64) int {
	for i, v := range x {
		if math.Abs(v) > threshold {
			return i
		}
	}
	return -1
}

// Onsets returns the indices where the signal rises above threshold after
// at least gap samples at or below it.
func Onsets(x []float64, threshold float64, gap int) []int {
	var out []int
	quiet := gap
	for i, v := range x {
		if math.Abs(v) > threshold {
			if quiet >= gap {
				out = append(out, i)
			}
			quiet = 0
			continue
		}
		quiet++
	}
	return out
}
