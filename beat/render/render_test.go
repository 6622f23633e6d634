package render

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/caffeinepub/thunderlab/beat"
	"github.com/caffeinepub/thunderlab/beat/synth"
	"github.com/caffeinepub/thunderlab/dsp/graph"
	"github.com/caffeinepub/thunderlab/dsp/wav"
	"github.com/caffeinepub/thunderlab/internal/testutil"
)

func kickOnBeatOne(t *testing.T) *beat.Pattern {
	t.Helper()
	p := beat.NewPattern()
	if err := p.Set(beat.Kick, 0, true); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLength(t *testing.T) {
	tests := []struct {
		bpm  float64
		bars int
		want time.Duration
	}{
		{120, 4, 8 * time.Second},
		{60, 4, 16 * time.Second},
		{180, 1, time.Second + time.Second/3},
	}
	for _, tt := range tests {
		got, err := Length(tt.bpm, tt.bars)
		if err != nil {
			t.Fatal(err)
		}
		if d := got - tt.want; d < -time.Microsecond || d > time.Microsecond {
			t.Errorf("Length(%v, %d) = %v, want %v", tt.bpm, tt.bars, got, tt.want)
		}
	}
}

func TestRenderKickScenario(t *testing.T) {
	out, err := Render(kickOnBeatOne(t), 120)
	if err != nil {
		t.Fatal(err)
	}
	if out.NumChannels() != 2 || out.SampleRate() != 44100 || out.Len() != 8*44100 {
		t.Fatalf("shape = %d ch x %d frames @ %v, want 2 x 352800 @ 44100",
			out.NumChannels(), out.Len(), out.SampleRate())
	}
	left, right := out.Channel(0), out.Channel(1)
	if d, _ := testutil.MaxAbsDiff(left, right); d != 0 {
		t.Fatalf("channels differ by %v", d)
	}
	testutil.RequireFinite(t, left)

	const bar = 2 * 44100
	const tail = 44100 / 2
	for b := 0; b < 4; b++ {
		start := b * bar
		if left[start] != 0 {
			t.Fatalf("bar %d: first kick sample = %v, want 0", b, left[start])
		}
		if p := testutil.Peak(left[start : start+200]); p < 0.6 || p > 0.7 {
			t.Fatalf("bar %d: attack peak = %v, want within master gain 0.7", b, p)
		}
		testutil.RequireSilent(t, left, start+tail, start+bar, 0)
	}

	if got, want := testutil.Onsets(left, 1e-3, 20000), []int{1, bar + 1, 2*bar + 1, 3*bar + 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("onsets = %v, want %v", got, want)
	}
}

func TestRenderEmptyPatternIsSilent(t *testing.T) {
	out, err := Render(beat.NewPattern(), 90, WithBars(1))
	if err != nil {
		t.Fatal(err)
	}
	if want := int(60.0 / 90 / 4 * 16 * 44100); out.Len() != want {
		t.Fatalf("len = %d, want %d", out.Len(), want)
	}
	if p := testutil.Peak(out.Channel(0)); p != 0 {
		t.Fatalf("peak = %v, want silence", p)
	}
}

func TestRenderInvalidTempo(t *testing.T) {
	for _, bpm := range []float64{0, -10} {
		if _, err := Render(kickOnBeatOne(t), bpm); !errors.Is(err, beat.ErrInvalidTempo) {
			t.Errorf("Render(bpm=%v) err = %v, want ErrInvalidTempo", bpm, err)
		}
	}
}

func TestRenderContextTooLarge(t *testing.T) {
	_, err := Render(kickOnBeatOne(t), 120, WithMaxFrames(44100))
	if !errors.Is(err, graph.ErrContextSize) {
		t.Fatalf("err = %v, want ErrContextSize", err)
	}
}

func TestRenderOptions(t *testing.T) {
	out, err := Render(kickOnBeatOne(t), 120,
		WithSampleRate(22050), WithChannels(1), WithBars(2), WithMasterGain(1))
	if err != nil {
		t.Fatal(err)
	}
	if out.NumChannels() != 1 || out.SampleRate() != 22050 || out.Len() != 4*22050 {
		t.Fatalf("shape = %d ch x %d @ %v", out.NumChannels(), out.Len(), out.SampleRate())
	}
	if p := testutil.Peak(out.Channel(0)); p < 0.9 {
		t.Fatalf("peak with unity master gain = %v, want about 1", p)
	}
}

func TestRenderNoiseVariesWithoutSeed(t *testing.T) {
	p := beat.NewPattern()
	_ = p.Set(beat.Snare, 0, true)
	s := synth.New()
	a, err := Render(p, 120, WithBars(1), WithSynthesizer(s))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(p, 120, WithBars(1), WithSynthesizer(s))
	if err != nil {
		t.Fatal(err)
	}
	if d, _ := testutil.MaxAbsDiff(a.Channel(0), b.Channel(0)); d == 0 {
		t.Fatal("two renders produced identical noise")
	}
}

func TestExportSeededIsReproducible(t *testing.T) {
	p, err := beat.ParsePattern("kick x...x...x...x...\nsnare ....x.......x...\nhihat x.x.x.x.x.x.x.x.")
	if err != nil {
		t.Fatal(err)
	}
	at := time.Date(2026, 10, 15, 12, 34, 56, 789e6, time.UTC)

	a, err := Export(p, 120, at, WithSynthesizer(synth.New(synth.WithSeed(9))))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Export(p, 120, at, WithSynthesizer(synth.New(synth.WithSeed(9))))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Data, b.Data) {
		t.Fatal("seeded exports differ")
	}
	if a.MIMEType != "audio/wav" || a.Duration != 8*time.Second {
		t.Fatalf("MIME %q duration %v", a.MIMEType, a.Duration)
	}
	if a.Filename != "thunderlab-beat-120bpm-2026-10-15T12-34-56.wav" {
		t.Fatalf("filename = %q", a.Filename)
	}

	h, err := wav.ParseHeader(a.Data)
	if err != nil {
		t.Fatal(err)
	}
	if want := uint32(8 * 44100 * 4); h.DataSize != want || h.RIFFSize != 36+want {
		t.Fatalf("header sizes = %d/%d, want data %d", h.RIFFSize, h.DataSize, want)
	}
}

func TestFilename(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	tests := []struct {
		bpm  float64
		at   time.Time
		want string
	}{
		{120, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), "thunderlab-beat-120bpm-2026-01-02T03-04-05.wav"},
		{97.5, time.Date(2026, 1, 2, 3, 4, 5, 999e6, time.UTC), "thunderlab-beat-97.5bpm-2026-01-02T03-04-05.wav"},
		{60, time.Date(2026, 1, 2, 1, 0, 0, 0, loc), "thunderlab-beat-60bpm-2026-01-01T23-00-00.wav"},
	}
	for _, tt := range tests {
		got := Filename(tt.bpm, tt.at)
		if got != tt.want {
			t.Errorf("Filename(%v, %v) = %q, want %q", tt.bpm, tt.at, got, tt.want)
		}
		if strings.Contains(got, ":") {
			t.Errorf("filename %q contains a colon", got)
		}
	}
}

func BenchmarkRenderFullPattern(b *testing.B) {
	p, _ := beat.ParsePattern("kick x...x...x...x...\nsnare ....x.......x...\nhihat xxxxxxxxxxxxxxxx")
	s := synth.New(synth.WithSeed(1))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Render(p, 120, WithSynthesizer(s)); err != nil {
			b.Fatal(err)
		}
	}
}
