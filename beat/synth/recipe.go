package synth

import (
	"fmt"

	"github.com/caffeinepub/thunderlab/beat"
)

// LayerKind selects the source of a layer.
type LayerKind int

const (
	LayerSine LayerKind = iota
	LayerTriangle
	LayerNoise
)

// String returns the layer kind name.
func (k LayerKind) String() string {
	switch k {
	case LayerSine:
		return "sine"
	case LayerTriangle:
		return "triangle"
	case LayerNoise:
		return "noise"
	default:
		return fmt.Sprintf("LayerKind(%d)", int(k))
	}
}

// Ramp is an exponential move from From to To over the layer duration.
// Both ends must be > 0.
type Ramp struct {
	From, To float64
}

// Layer is one voice of a recipe. Times are relative to the trigger time.
type Layer struct {
	Kind LayerKind
	// Duration is the stop offset and the length of every ramp. For noise
	// layers it is also the length of the noise buffer.
	Duration float64
	// Freq is the oscillator frequency in Hz. Unused for noise.
	Freq Ramp
	// HighpassHz applies a highpass when > 0.
	HighpassHz float64
	Gain       Ramp
}

// Recipe describes one timbre.
type Recipe struct {
	Sound  beat.Sound
	Layers []Layer
}

// Duration returns the longest layer duration.
func (r Recipe) Duration() float64 {
	d := 0.0
	for _, l := range r.Layers {
		d = max(d, l.Duration)
	}
	return d
}

// The 0.01 floors stand in for silence; exponential ramps cannot reach 0.
var recipes = map[beat.Sound]Recipe{
	beat.Kick: {
		Sound: beat.Kick,
		Layers: []Layer{
			{Kind: LayerSine, Duration: 0.5, Freq: Ramp{150, 0.01}, Gain: Ramp{1, 0.01}},
		},
	},
	beat.Snare: {
		Sound: beat.Snare,
		Layers: []Layer{
			{Kind: LayerNoise, Duration: 0.2, HighpassHz: 1000, Gain: Ramp{0.7, 0.01}},
			{Kind: LayerTriangle, Duration: 0.1, Freq: Ramp{200, 100}, Gain: Ramp{0.3, 0.01}},
		},
	},
	beat.HiHat: {
		Sound: beat.HiHat,
		Layers: []Layer{
			{Kind: LayerNoise, Duration: 0.05, HighpassHz: 7000, Gain: Ramp{0.5, 0.01}},
		},
	},
}

// RecipeFor returns the recipe of sound. The returned layers are a copy.
func RecipeFor(sound beat.Sound) (Recipe, error) {
	r, ok := recipes[sound]
	if !ok {
		return Recipe{}, fmt.Errorf("%w: %q", beat.ErrUnsupportedSound, sound)
	}
	r.Layers = append([]Layer(nil), r.Layers...)
	return r, nil
}
