package buffer

import (
	"errors"
	"testing"
)

func TestNewZeroFilled(t *testing.T) {
	a := New(2, 8, 44100)
	if a.NumChannels() != 2 {
		t.Fatalf("NumChannels() = %d, want 2", a.NumChannels())
	}
	if a.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", a.Len())
	}
	for ch := 0; ch < 2; ch++ {
		for i, v := range a.Channel(ch) {
			if v != 0 {
				t.Fatalf("Channel(%d)[%d] = %v, want 0", ch, i, v)
			}
		}
	}
}

func TestNewClampsShape(t *testing.T) {
	a := New(0, -1, 44100)
	if a.NumChannels() != 1 || a.Len() != 0 {
		t.Fatalf("shape = %dx%d, want 1x0", a.NumChannels(), a.Len())
	}
}

func TestFromChannelsRejectsMismatch(t *testing.T) {
	_, err := FromChannels(44100, []float64{1, 2}, []float64{1})
	if !errors.Is(err, ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
	if _, err := FromChannels(44100); !errors.Is(err, ErrShape) {
		t.Fatalf("err = %v, want ErrShape for no channels", err)
	}
}

func TestFromChannelsSharesMemory(t *testing.T) {
	left := []float64{1, 2, 3}
	a, err := FromChannels(44100, left)
	if err != nil {
		t.Fatalf("FromChannels() error = %v", err)
	}
	a.Channel(0)[0] = 99
	if left[0] != 99 {
		t.Fatal("FromChannels should share underlying memory")
	}
}

func TestInterleaveChannelMinor(t *testing.T) {
	a, err := FromChannels(8000, []float64{1, 3, 5}, []float64{2, 4, 6})
	if err != nil {
		t.Fatalf("FromChannels() error = %v", err)
	}
	got := a.Interleave()
	want := []float64{1, 2, 3, 4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Interleave()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDuration(t *testing.T) {
	a := New(2, 88200, 44100)
	if a.Duration() != 2 {
		t.Fatalf("Duration() = %v, want 2", a.Duration())
	}
}

func TestCopyIsDeep(t *testing.T) {
	a := New(1, 3, 44100)
	c := a.Copy()
	c.Channel(0)[0] = 99
	if a.Channel(0)[0] == 99 {
		t.Fatal("Copy should not share memory")
	}
}
