package core

import "math"

const defaultEpsilon = 1e-12

// frameEpsilon absorbs floating-point noise when a time lands exactly on a
// frame boundary, e.g. 2.0 s at 44.1 kHz.
const frameEpsilon = 1e-9

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FrameAt returns the first frame index whose timestamp is at or after
// seconds. Negative times map to frame 0.
func FrameAt(seconds, sampleRate float64) int64 {
	if seconds <= 0 || sampleRate <= 0 {
		return 0
	}
	return int64(math.Ceil(seconds*sampleRate - frameEpsilon))
}

// FrameCount returns floor(seconds * sampleRate), the number of whole frames
// that fit in a duration.
func FrameCount(seconds, sampleRate float64) int64 {
	if seconds <= 0 || sampleRate <= 0 {
		return 0
	}
	return int64(math.Floor(seconds*sampleRate + frameEpsilon))
}

// FrameTime converts a frame index to seconds.
func FrameTime(frame int64, sampleRate float64) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(frame) / sampleRate
}
