package beat

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

// StepCount is the number of steps per sound in a pattern (one bar of 16ths).
const StepCount = 16

var (
	// ErrStepOutOfRange is returned for a step index outside [0, StepCount).
	ErrStepOutOfRange = errors.New("beat: step out of range")
	// ErrInvalidPattern is returned when a pattern text cannot be parsed.
	ErrInvalidPattern = errors.New("beat: invalid pattern")
)

// Pattern is the on/off grid of every sound for one bar. The zero value is
// an empty pattern ready to use. Pattern is not safe for concurrent use;
// the sequencer guards its own copy.
type Pattern struct {
	steps [len(sounds)][StepCount]bool
}

// NewPattern returns an empty pattern.
func NewPattern() *Pattern {
	return &Pattern{}
}

func checkStep(step int) error {
	if step < 0 || step >= StepCount {
		return fmt.Errorf("%w: %d", ErrStepOutOfRange, step)
	}
	return nil
}

func (p *Pattern) cell(s Sound, step int) (*bool, error) {
	i := s.index()
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSound, s)
	}
	if err := checkStep(step); err != nil {
		return nil, err
	}
	return &p.steps[i][step], nil
}

// Toggle flips one step and returns its new state.
func (p *Pattern) Toggle(s Sound, step int) (bool, error) {
	c, err := p.cell(s, step)
	if err != nil {
		return false, err
	}
	*c = !*c
	return *c, nil
}

// Set sets one step.
func (p *Pattern) Set(s Sound, step int, on bool) error {
	c, err := p.cell(s, step)
	if err != nil {
		return err
	}
	*c = on
	return nil
}

// IsActive reports whether a step is on. Invalid coordinates are off.
func (p *Pattern) IsActive(s Sound, step int) bool {
	c, err := p.cell(s, step)
	return err == nil && *c
}

// Active returns the sounds that are on at step, in canonical order.
func (p *Pattern) Active(step int) []Sound {
	if checkStep(step) != nil {
		return nil
	}
	var out []Sound
	for i, s := range sounds {
		if p.steps[i][step] {
			out = append(out, s)
		}
	}
	return out
}

// Steps returns a copy of the 16 flags of one sound.
func (p *Pattern) Steps(s Sound) ([]bool, error) {
	i := s.index()
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSound, s)
	}
	out := make([]bool, StepCount)
	copy(out, p.steps[i][:])
	return out, nil
}

// Empty reports whether no step is on.
func (p *Pattern) Empty() bool {
	for i := range p.steps {
		for _, on := range p.steps[i] {
			if on {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy.
func (p *Pattern) Clone() *Pattern {
	c := *p
	return &c
}

// Clear turns every step off.
func (p *Pattern) Clear() {
	p.steps = [len(sounds)][StepCount]bool{}
}

// String renders one line per sound, e.g. "kick  x...x...x...x...".
func (p *Pattern) String() string {
	var b strings.Builder
	for i, s := range sounds {
		fmt.Fprintf(&b, "%-5s ", s)
		for _, on := range p.steps[i] {
			if on {
				b.WriteByte('x')
			} else {
				b.WriteByte('.')
			}
		}
		if i < len(sounds)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ParsePattern reads the String form. Each non-blank line is a sound name
// followed by 16 step characters: x, X or 1 for on and ., - or 0 for off.
// Whitespace inside the step field is ignored, so "x... x... x... x..." is
// accepted. Sounds that are not listed stay empty.
func ParsePattern(text string) (*Pattern, error) {
	p := NewPattern()
	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		s, err := ParseSound(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidPattern, line, err)
		}
		grid := strings.Join(fields[1:], "")
		if len(grid) != StepCount {
			return nil, fmt.Errorf("%w: line %d: %d steps, want %d", ErrInvalidPattern, line, len(grid), StepCount)
		}
		idx := s.index()
		for step, c := range []byte(grid) {
			switch c {
			case 'x', 'X', '1':
				p.steps[idx][step] = true
			case '.', '-', '0':
			default:
				return nil, fmt.Errorf("%w: line %d: unexpected %q", ErrInvalidPattern, line, c)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return p, nil
}
