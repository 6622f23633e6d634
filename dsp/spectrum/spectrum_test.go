package spectrum

import (
	"errors"
	"math"
	"testing"
)

func sine(freq, sr float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / sr)
	}
	return out
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct{ in, want int }{{0, 1}, {1, 1}, {2, 2}, {3, 4}, {1000, 1024}, {1024, 1024}}
	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPowerSpectrumPeak(t *testing.T) {
	const sr = 8000.0
	s, err := PowerSpectrum(sine(1000, sr, 1024), sr)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Power) != 513 {
		t.Fatalf("bins = %d, want 513", len(s.Power))
	}
	if got := s.PeakFrequency(); math.Abs(got-1000) > s.BinHz {
		t.Fatalf("peak = %v Hz, want 1000", got)
	}
	if c := s.Centroid(); math.Abs(c-1000) > 50 {
		t.Fatalf("centroid = %v Hz, want about 1000", c)
	}
	if r := s.BandEnergyRatio(900, 1100); r < 0.99 {
		t.Fatalf("band ratio = %v, want > 0.99", r)
	}
}

func TestPowerSpectrumZeroPads(t *testing.T) {
	s, err := PowerSpectrum(sine(440, 44100, 1000), 44100)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Power) != 513 {
		t.Fatalf("bins = %d, want 513 after padding to 1024", len(s.Power))
	}
	if math.Abs(s.BinHz-44100.0/1024) > 1e-12 {
		t.Fatalf("BinHz = %v", s.BinHz)
	}
}

func TestCentroidOrdering(t *testing.T) {
	const sr = 44100.0
	lo, _ := PowerSpectrum(sine(200, sr, 4096), sr)
	hi, _ := PowerSpectrum(sine(6000, sr, 4096), sr)
	if lo.Centroid() >= hi.Centroid() {
		t.Fatalf("centroid 200 Hz tone %v >= 6 kHz tone %v", lo.Centroid(), hi.Centroid())
	}
}

func TestPowerSpectrumErrors(t *testing.T) {
	if _, err := PowerSpectrum(nil, 44100); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
	if _, err := PowerSpectrum([]float64{1}, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}

func TestSilentSpectrum(t *testing.T) {
	s, err := PowerSpectrum(make([]float64, 64), 1000)
	if err != nil {
		t.Fatal(err)
	}
	if s.Centroid() != 0 || s.BandEnergyRatio(0, 500) != 0 {
		t.Fatal("silent spectrum has non-zero features")
	}
}

func BenchmarkPowerSpectrum4096(b *testing.B) {
	x := sine(1000, 44100, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := PowerSpectrum(x, 44100); err != nil {
			b.Fatal(err)
		}
	}
}
