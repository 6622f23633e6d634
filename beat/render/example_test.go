package render_test

import (
	"fmt"
	"time"

	"github.com/caffeinepub/thunderlab/beat"
	"github.com/caffeinepub/thunderlab/beat/render"
	"github.com/caffeinepub/thunderlab/beat/synth"
)

func ExampleExport() {
	p := beat.NewPattern()
	_ = p.Set(beat.Kick, 0, true)
	_ = p.Set(beat.Snare, 8, true)

	at := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	f, err := render.Export(p, 120, at, render.WithSynthesizer(synth.New(synth.WithSeed(1))))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(f.Filename, f.MIMEType, f.Duration, len(f.Data))
	// Output: thunderlab-beat-120bpm-2026-10-15T09-30-00.wav audio/wav 8s 1411244
}
