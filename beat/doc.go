// Package beat holds the data model of the drum step sequencer: the three
// sound identifiers, the 16-step Pattern grid and tempo helpers.
//
// Synthesis lives in beat/synth, live playback in beat/sequencer and file
// export in beat/render. All three read the same Pattern type.
package beat
