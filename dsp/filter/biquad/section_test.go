package biquad

import (
	"math"
	"testing"
)

const eps = 1e-12

func TestProcessSamplePassthrough(t *testing.T) {
	s := NewSection(Coefficients{B0: 1})
	for i, x := range []float64{1, 0, -1, 0.5, 0.25} {
		if y := s.ProcessSample(x); math.Abs(y-x) > eps {
			t.Fatalf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestProcessSampleDFIIT(t *testing.T) {
	// B0=0.25, B1=0.5, B2=0.25, A1=-0.2, A2=0.04 driven by an impulse:
	// y0 = 0.25, d0 = 0.55, d1 = 0.24
	// y1 = 0.55
	s := NewSection(Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04})
	want := []float64{0.25, 0.55}
	got := []float64{s.ProcessSample(1), s.ProcessSample(0)}
	for i := range got {
		if math.Abs(got[i]-want[i]) > eps {
			t.Fatalf("y[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestProcessBlockMatchesSample(t *testing.T) {
	c := Highpass(1000, DefaultQdB, 44100)
	a := NewSection(c)
	b := NewSection(c)

	buf := make([]float64, 64)
	for i := range buf {
		buf[i] = math.Sin(float64(i) * 0.3)
	}
	want := make([]float64, len(buf))
	for i, x := range buf {
		want[i] = a.ProcessSample(x)
	}
	b.ProcessBlock(buf)
	for i := range buf {
		if math.Abs(buf[i]-want[i]) > eps {
			t.Fatalf("index %d: block %v, sample %v", i, buf[i], want[i])
		}
	}
}

func TestReset(t *testing.T) {
	s := NewHighpass(7000, 44100)
	s.ProcessSample(1)
	s.Reset()
	if s.d0 != 0 || s.d1 != 0 {
		t.Fatalf("state not cleared: %v %v", s.d0, s.d1)
	}
}
