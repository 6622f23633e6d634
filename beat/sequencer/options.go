package sequencer

import (
	"log/slog"
	"time"

	"github.com/caffeinepub/thunderlab/beat"
)

// DefaultRestartDelay is the pause between stopping and restarting playback
// on a tempo change.
const DefaultRestartDelay = 50 * time.Millisecond

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithPattern plays p instead of a new empty pattern. The scheduler takes
// ownership; edit it through ToggleStep and SetStep afterwards.
func WithPattern(p *beat.Pattern) Option {
	return func(s *Scheduler) {
		if p != nil {
			s.pattern = p
		}
	}
}

// WithTempo sets the initial tempo. Invalid values are ignored.
func WithTempo(bpm float64) Option {
	return func(s *Scheduler) {
		if beat.ValidateTempo(bpm) == nil {
			s.bpm = bpm
		}
	}
}

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithRestartDelay sets the tempo-change restart pause. Zero restarts
// synchronously; negative values are ignored.
func WithRestartDelay(d time.Duration) Option {
	return func(s *Scheduler) {
		if d >= 0 {
			s.restartDelay = d
		}
	}
}

// WithStepHandler registers f to be called with the playhead after each
// step is triggered. f runs outside the scheduler lock and may read the
// Scheduler, but must not call Stop or SetTempo.
func WithStepHandler(f func(step int)) Option {
	return func(s *Scheduler) {
		s.onStep = f
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}
