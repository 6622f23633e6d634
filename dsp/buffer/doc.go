// Package buffer provides the multichannel float64 audio buffer produced by
// offline rendering and consumed by the WAV codec. Channels are stored
// planar; Interleave produces the channel-minor frame order used on disk.
package buffer
