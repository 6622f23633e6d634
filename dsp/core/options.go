package core

// ProcessorConfig defines the rendering settings shared by real-time and
// offline audio contexts.
type ProcessorConfig struct {
	SampleRate float64
	Channels   int
	MasterGain float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns CD-rate stereo with the beat maker's master
// bus gain.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 44100,
		Channels:   2,
		MasterGain: 0.7,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithChannels sets the number of output channels.
func WithChannels(channels int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if channels > 0 {
			cfg.Channels = channels
		}
	}
}

// WithMasterGain sets the linear gain of the master bus.
func WithMasterGain(gain float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if gain >= 0 {
			cfg.MasterGain = gain
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
