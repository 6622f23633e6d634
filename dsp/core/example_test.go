package core_test

import (
	"fmt"

	"github.com/caffeinepub/thunderlab/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(48000),
		core.WithChannels(1),
	)

	fmt.Printf("sampleRate=%.0f channels=%d gain=%.1f\n", cfg.SampleRate, cfg.Channels, cfg.MasterGain)

	// Output:
	// sampleRate=48000 channels=1 gain=0.7
}

func ExampleFrameAt() {
	fmt.Println(core.FrameAt(2, 44100), core.FrameCount(8, 44100))

	// Output:
	// 88200 352800
}
