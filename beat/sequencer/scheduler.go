package sequencer

import (
	"log/slog"
	"sync"
	"time"

	"github.com/caffeinepub/thunderlab/beat"
	"github.com/caffeinepub/thunderlab/dsp/graph"
	"github.com/caffeinepub/thunderlab/internal/logging"
)

// Synth schedules one sound on a context. *synth.Synthesizer implements it.
type Synth interface {
	Synthesize(sound beat.Sound, start float64, dst graph.Context) error
}

// pendingRestart identifies one tempo-change restart so a stale callback
// can tell it was cancelled or superseded. timer is nil for a synchronous
// restart.
type pendingRestart struct {
	timer Timer
}

// Scheduler drives live playback of a pattern. It is safe for concurrent
// use.
type Scheduler struct {
	dst   graph.Context
	synth Synth

	clock        Clock
	restartDelay time.Duration
	onStep       func(step int)
	logger       *slog.Logger

	mu      sync.Mutex
	pattern *beat.Pattern
	bpm     float64
	playing bool
	step    int
	ticker  Ticker
	quit    chan struct{}
	done    chan struct{}
	restart *pendingRestart
}

// New returns a stopped scheduler that triggers s on dst.
func New(dst graph.Context, s Synth, opts ...Option) *Scheduler {
	sc := &Scheduler{
		dst:          dst,
		synth:        s,
		clock:        SystemClock(),
		restartDelay: DefaultRestartDelay,
		pattern:      beat.NewPattern(),
		bpm:          beat.DefaultBPM,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(sc)
		}
	}
	if sc.logger == nil {
		sc.logger = logging.Discard()
	}
	return sc
}

// Play starts playback from step 0. Step 0 is triggered before Play
// returns. Calling Play while playing does nothing. If the destination is a
// graph.Claimer held by another scheduler, Play fails with
// graph.ErrBusInUse.
func (s *Scheduler) Play() error {
	s.mu.Lock()
	if s.playing {
		s.mu.Unlock()
		return nil
	}
	s.cancelRestartLocked()
	err := s.startLocked()
	s.mu.Unlock()
	if err == nil {
		s.notify(0)
	}
	return err
}

// Stop halts playback and resets the playhead. Voices already scheduled
// ring out. When Stop returns no further step is triggered.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.cancelRestartLocked()
	done := s.haltLocked()
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

// SetTempo changes the tempo. While playing, playback stops and restarts
// at the new tempo after the restart delay.
func (s *Scheduler) SetTempo(bpm float64) error {
	if err := beat.ValidateTempo(bpm); err != nil {
		return err
	}

	s.mu.Lock()
	s.bpm = bpm
	if !s.playing {
		s.mu.Unlock()
		return nil
	}
	done := s.haltLocked()
	s.logger.Debug("tempo change restart", "bpm", bpm, "delay", s.restartDelay)

	pr := &pendingRestart{}
	s.restart = pr
	if s.restartDelay > 0 {
		pr.timer = s.clock.AfterFunc(s.restartDelay, func() {
			if err := s.resume(pr); err != nil {
				s.logger.Warn("restart after tempo change failed", "error", err)
			}
		})
	}
	s.mu.Unlock()
	<-done

	if s.restartDelay > 0 {
		return nil
	}
	return s.resume(pr)
}

// resume restarts playback for pr unless it was cancelled or superseded.
func (s *Scheduler) resume(pr *pendingRestart) error {
	s.mu.Lock()
	if s.restart != pr {
		s.mu.Unlock()
		return nil
	}
	s.restart = nil
	if s.playing {
		s.mu.Unlock()
		return nil
	}
	err := s.startLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify(0)
	return nil
}

// Tempo returns the current tempo in BPM.
func (s *Scheduler) Tempo() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bpm
}

// IsPlaying reports whether playback is running or about to restart after
// a tempo change.
func (s *Scheduler) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing || s.restart != nil
}

// CurrentStep returns the playhead, 0 when stopped.
func (s *Scheduler) CurrentStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// ToggleStep flips one step of the live pattern and returns its new state.
func (s *Scheduler) ToggleStep(sound beat.Sound, step int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pattern.Toggle(sound, step)
}

// SetStep sets one step of the live pattern.
func (s *Scheduler) SetStep(sound beat.Sound, step int, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pattern.Set(sound, step, on)
}

// ClearPattern turns every step off.
func (s *Scheduler) ClearPattern() {
	s.mu.Lock()
	s.pattern.Clear()
	s.mu.Unlock()
}

// Pattern returns a snapshot of the live pattern.
func (s *Scheduler) Pattern() *beat.Pattern {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pattern.Clone()
}

func (s *Scheduler) startLocked() error {
	interval, err := beat.StepInterval(s.bpm)
	if err != nil {
		return err
	}
	if c, ok := s.dst.(graph.Claimer); ok {
		if err := c.Claim(s); err != nil {
			return err
		}
	}

	s.playing = true
	s.step = 0
	s.triggerLocked()

	s.ticker = s.clock.NewTicker(interval)
	s.quit = make(chan struct{})
	s.done = make(chan struct{})
	go s.loop(s.ticker, s.quit, s.done)

	s.logger.Debug("play", "bpm", s.bpm, "interval", interval)
	return nil
}

// haltLocked stops the tick loop and returns a channel closed once it has
// exited, or nil when not playing.
func (s *Scheduler) haltLocked() <-chan struct{} {
	if !s.playing {
		return nil
	}
	s.playing = false
	s.step = 0
	s.ticker.Stop()
	close(s.quit)
	done := s.done
	s.ticker, s.quit, s.done = nil, nil, nil
	if c, ok := s.dst.(graph.Claimer); ok {
		c.Release(s)
	}
	s.logger.Debug("stop")
	return done
}

func (s *Scheduler) cancelRestartLocked() {
	if s.restart != nil {
		if s.restart.timer != nil {
			s.restart.timer.Stop()
		}
		s.restart = nil
	}
}

func (s *Scheduler) loop(t Ticker, quit, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-quit:
			return
		case <-t.C():
		}

		s.mu.Lock()
		select {
		case <-quit:
			s.mu.Unlock()
			return
		default:
		}
		s.step = (s.step + 1) % beat.StepCount
		step := s.step
		s.triggerLocked()
		s.mu.Unlock()

		s.notify(step)
	}
}

func (s *Scheduler) triggerLocked() {
	sounds := s.pattern.Active(s.step)
	if len(sounds) == 0 {
		return
	}
	now := s.dst.CurrentTime()
	for _, sound := range sounds {
		if err := s.synth.Synthesize(sound, now, s.dst); err != nil {
			s.logger.Warn("synthesize failed", "sound", sound, "step", s.step, "error", err)
		}
	}
}

func (s *Scheduler) notify(step int) {
	if s.onStep != nil {
		s.onStep(step)
	}
}
