// Package graph provides the audio rendering contexts that drum voices are
// scheduled on.
//
// A [Voice] is a one-shot chain: a [Source] optionally run through a
// [Processor] (the noise highpass) and scaled by an automated gain. Voices
// are connected to a [Context], which mixes them on a master [Bus].
//
// Two contexts exist:
//
//   - [Offline] renders a fixed number of frames as fast as possible and
//     returns a [buffer.Audio]; it backs file export.
//   - [Realtime] is pulled by an audio device callback and advances its
//     clock by the frames it hands out; it backs live playback.
//
// Both contexts share the same Bus implementation, so a pattern previewed
// live and the exported file are produced by identical mixing code.
package graph
