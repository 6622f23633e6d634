// Package synth turns a sound identifier and a start time into scheduled
// voices on a graph.Context.
//
// Each timbre is described by a Recipe: a list of layers, each an
// oscillator or a white-noise burst with exponential frequency and gain
// ramps and an optional highpass. One builder turns recipes into voices, so
// live playback and offline export produce the same sound.
package synth
