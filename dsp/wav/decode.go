package wav

import (
	"fmt"
	"io"
	"time"

	"github.com/caffeinepub/thunderlab/dsp/buffer"
	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Info describes a WAV stream as reported by the decoder.
type Info struct {
	Channels   int
	SampleRate int
	BitDepth   int
	Format     int
	Duration   time.Duration
}

// ReadInfo reads the format of a WAV stream.
func ReadInfo(r io.ReadSeeker) (Info, error) {
	d := gowav.NewDecoder(r)
	if !d.IsValidFile() {
		return Info{}, fmt.Errorf("%w: %v", ErrInvalidFile, d.Err())
	}
	dur, err := d.Duration()
	if err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return Info{
		Channels:   int(d.NumChans),
		SampleRate: int(d.SampleRate),
		BitDepth:   int(d.BitDepth),
		Format:     int(d.WavAudioFormat),
		Duration:   dur,
	}, nil
}

// Decode reads a 16-bit PCM WAV stream into a planar buffer. Sample values
// are mapped back with the same asymmetric scale Encode uses.
func Decode(r io.ReadSeeker) (*buffer.Audio, error) {
	d := gowav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, d.Err())
	}
	if d.BitDepth != bitsPerSample || d.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format %d, %d bits; want 16-bit PCM", ErrInvalidFile, d.WavAudioFormat, d.BitDepth)
	}
	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return fromPCM(pcm)
}

// fromPCM deinterleaves a 16-bit integer buffer.
func fromPCM(pcm *audio.IntBuffer) (*buffer.Audio, error) {
	if pcm.Format == nil || pcm.Format.NumChannels <= 0 {
		return nil, fmt.Errorf("%w: zero channels", ErrInvalidFile)
	}
	nch := pcm.Format.NumChannels
	frames := len(pcm.Data) / nch
	out := buffer.New(nch, frames, float64(pcm.Format.SampleRate))
	for ch := 0; ch < nch; ch++ {
		dst := out.Channel(ch)
		for i := range dst {
			dst[i] = Dequantize(int16(pcm.Data[i*nch+ch]))
		}
	}
	return out, nil
}

// Dequantize maps an int16 sample back to [-1, 1].
func Dequantize(s int16) float64 {
	if s < 0 {
		return float64(s) / 32768
	}
	return float64(s) / 32767
}
