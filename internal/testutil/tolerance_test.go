package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.1, 3})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestPeakAndRMS(t *testing.T) {
	x := []float64{0.5, -1, 0.5, -1}
	if got := Peak(x); got != 1 {
		t.Fatalf("Peak = %v, want 1", got)
	}
	if got := RMS(x); math.Abs(got-math.Sqrt(0.625)) > 1e-12 {
		t.Fatalf("RMS = %v, want %v", got, math.Sqrt(0.625))
	}
	if Peak(nil) != 0 || RMS(nil) != 0 {
		t.Fatal("empty input not zero")
	}
}

func TestOnsets(t *testing.T) {
	x := []float64{0, 0.5, 0.4, 0, 0, 0, 0.9, 0, 0.8}
	got := Onsets(x, 0.1, 3)
	if len(got) != 2 || got[0] != 1 || got[1] != 6 {
		t.Fatalf("Onsets = %v, want [1 6]", got)
	}
	if FirstAbove(x, 0.6) != 6 {
		t.Fatalf("FirstAbove = %d, want 6", FirstAbove(x, 0.6))
	}
	if FirstAbove(x, 1) != -1 {
		t.Fatal("FirstAbove found sample above 1")
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(48000)
	r.SetTime(1.5)
	if r.SampleRate() != 48000 || r.CurrentTime() != 1.5 {
		t.Fatalf("rate/time = %v/%v", r.SampleRate(), r.CurrentTime())
	}
	r.Connect(nil)
	if r.Len() != 1 || len(r.Voices()) != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
}
