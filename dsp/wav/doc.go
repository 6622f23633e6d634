// Package wav writes and reads canonical 16-bit PCM RIFF/WAVE files.
//
// Encode produces the 44-byte header layout byte for byte: RIFF, WAVE, a
// 16-byte fmt chunk and a single data chunk. Decoding and header inspection
// go through github.com/go-audio/wav so exported files are checked by an
// independent reader.
package wav
