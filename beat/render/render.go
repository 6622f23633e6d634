package render

import (
	"fmt"
	"time"

	"github.com/caffeinepub/thunderlab/beat"
	"github.com/caffeinepub/thunderlab/dsp/buffer"
	"github.com/caffeinepub/thunderlab/dsp/core"
	"github.com/caffeinepub/thunderlab/dsp/graph"
)

// Length returns the rendered duration of bars repetitions at bpm.
func Length(bpm float64, bars int) (time.Duration, error) {
	step, err := beat.StepDuration(bpm)
	if err != nil {
		return 0, err
	}
	return time.Duration(step * beat.StepCount * float64(bars) * float64(time.Second)), nil
}

// Render schedules every active step of pattern for the configured number of
// bars and renders the result. Noise layers differ between calls unless a
// seeded synthesizer is supplied.
func Render(pattern *beat.Pattern, bpm float64, opts ...Option) (*buffer.Audio, error) {
	c := newConfig(opts)

	step, err := beat.StepDuration(bpm)
	if err != nil {
		return nil, err
	}
	total := step * beat.StepCount * float64(c.bars)
	cfg := core.ApplyProcessorOptions(c.processor...)
	frames := core.FrameCount(total, cfg.SampleRate)

	off, err := graph.NewOffline(frames, c.maxFrames, c.processor...)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	events := 0
	for bar := 0; bar < c.bars; bar++ {
		for s := 0; s < beat.StepCount; s++ {
			at := float64(bar*beat.StepCount+s) * step
			for _, sound := range pattern.Active(s) {
				if err := c.synth.Synthesize(sound, at, off); err != nil {
					return nil, fmt.Errorf("render: bar %d step %d: %w", bar, s, err)
				}
				events++
			}
		}
	}

	c.logger.Debug("render",
		"bpm", bpm, "bars", c.bars, "frames", frames,
		"sample_rate", cfg.SampleRate, "events", events)

	out, err := off.StartRendering()
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return out, nil
}
