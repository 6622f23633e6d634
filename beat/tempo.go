package beat

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidTempo is returned for a non-positive or non-finite tempo.
var ErrInvalidTempo = errors.New("beat: tempo must be a positive finite BPM")

// Tempo range offered by the beat maker UI. The engine itself only requires
// a positive tempo.
const (
	MinBPM     = 60.0
	MaxBPM     = 180.0
	DefaultBPM = 120.0
)

// StepsPerBeat is the grid resolution: one step is a 16th note.
const StepsPerBeat = 4

// StepDuration returns the length of one step in seconds: 60 / bpm / 4.
func StepDuration(bpm float64) (float64, error) {
	if err := ValidateTempo(bpm); err != nil {
		return 0, err
	}
	return 60 / bpm / StepsPerBeat, nil
}

// StepInterval is StepDuration as a time.Duration for timer arming.
func StepInterval(bpm float64) (time.Duration, error) {
	sec, err := StepDuration(bpm)
	if err != nil {
		return 0, err
	}
	return time.Duration(sec * float64(time.Second)), nil
}

// ValidateTempo reports ErrInvalidTempo for bpm <= 0, NaN or Inf.
func ValidateTempo(bpm float64) error {
	if !(bpm > 0) || math.IsInf(bpm, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidTempo, bpm)
	}
	return nil
}

// ClampBPM limits bpm to [MinBPM, MaxBPM]. NaN maps to DefaultBPM.
func ClampBPM(bpm float64) float64 {
	switch {
	case math.IsNaN(bpm):
		return DefaultBPM
	case bpm < MinBPM:
		return MinBPM
	case bpm > MaxBPM:
		return MaxBPM
	}
	return bpm
}
