package beat

import (
	"errors"
	"fmt"
)

// ErrUnsupportedSound is returned for a sound identifier outside Sounds().
var ErrUnsupportedSound = errors.New("beat: unsupported sound")

// Sound identifies one of the fixed percussive timbres.
type Sound string

const (
	Kick  Sound = "kick"
	Snare Sound = "snare"
	HiHat Sound = "hihat"
)

var sounds = [...]Sound{Kick, Snare, HiHat}

// Sounds returns the supported sounds in canonical order.
func Sounds() []Sound {
	out := make([]Sound, len(sounds))
	copy(out, sounds[:])
	return out
}

// Valid reports whether s is a supported sound.
func (s Sound) Valid() bool {
	return s.index() >= 0
}

func (s Sound) index() int {
	for i, v := range sounds {
		if v == s {
			return i
		}
	}
	return -1
}

// ParseSound validates a sound identifier.
func ParseSound(name string) (Sound, error) {
	s := Sound(name)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSound, name)
	}
	return s, nil
}
