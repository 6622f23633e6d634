package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: -1, max: 1, expected: 0.5},
		{name: "below", value: -1.5, min: -1, max: 1, expected: -1},
		{name: "above", value: 1.5, min: -1, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(120) {
		t.Fatal("120 should be finite")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Fatal("NaN and Inf must not be finite")
	}
}

func TestFrameAt(t *testing.T) {
	tests := []struct {
		seconds float64
		want    int64
	}{
		{seconds: -1, want: 0},
		{seconds: 0, want: 0},
		{seconds: 2, want: 88200},
		{seconds: 0.125 * 16, want: 88200},
		{seconds: 1.0 / 44100 / 2, want: 1},
	}
	for _, tt := range tests {
		if got := FrameAt(tt.seconds, 44100); got != tt.want {
			t.Fatalf("FrameAt(%v) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}

func TestFrameCount(t *testing.T) {
	if got := FrameCount(8, 44100); got != 352800 {
		t.Fatalf("FrameCount(8) = %d, want 352800", got)
	}
	// 60/130/4*64 s is not a whole number of frames.
	want := int64(math.Floor(60.0 / 130 / 4 * 64 * 44100))
	if got := FrameCount(60.0/130/4*64, 44100); got != want {
		t.Fatalf("FrameCount = %d, want %d", got, want)
	}
}

func TestFrameTime(t *testing.T) {
	if got := FrameTime(88200, 44100); got != 2 {
		t.Fatalf("FrameTime = %v, want 2", got)
	}
}
