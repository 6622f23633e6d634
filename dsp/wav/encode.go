package wav

import (
	"encoding/binary"
	"math"

	"github.com/caffeinepub/thunderlab/dsp/buffer"
)

// MIMEType is the media type of encoded files.
const MIMEType = "audio/wav"

// HeaderSize is the length of the canonical header.
const HeaderSize = 44

const (
	bitsPerSample  = 16
	bytesPerSample = bitsPerSample / 8
	formatPCM      = 1
)

// Encode returns a as 16-bit PCM WAV bytes. Samples are clamped to [-1, 1];
// negative values scale by 32768 and the rest by 32767, truncating toward
// zero. NaN encodes as 0.
func Encode(a *buffer.Audio) []byte {
	nch := a.NumChannels()
	frames := a.Len()
	dataLen := frames * nch * bytesPerSample

	out := make([]byte, HeaderSize+dataLen)
	writeHeader(out, nch, uint32(a.SampleRate()), uint32(dataLen))

	pos := HeaderSize
	for i := 0; i < frames; i++ {
		for ch := 0; ch < nch; ch++ {
			binary.LittleEndian.PutUint16(out[pos:], uint16(Quantize(a.Channel(ch)[i])))
			pos += bytesPerSample
		}
	}
	return out
}

// Quantize converts one float sample to int16 the way Encode does.
func Quantize(x float64) int16 {
	switch {
	case math.IsNaN(x):
		return 0
	case x < 0:
		return int16(max(x, -1) * 32768)
	default:
		return int16(min(x, 1) * 32767)
	}
}

func writeHeader(b []byte, channels int, sampleRate, dataLen uint32) {
	blockAlign := uint16(channels * bytesPerSample)

	copy(b[0:], "RIFF")
	binary.LittleEndian.PutUint32(b[4:], 36+dataLen)
	copy(b[8:], "WAVE")
	copy(b[12:], "fmt ")
	binary.LittleEndian.PutUint32(b[16:], 16)
	binary.LittleEndian.PutUint16(b[20:], formatPCM)
	binary.LittleEndian.PutUint16(b[22:], uint16(channels))
	binary.LittleEndian.PutUint32(b[24:], sampleRate)
	binary.LittleEndian.PutUint32(b[28:], sampleRate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(b[32:], blockAlign)
	binary.LittleEndian.PutUint16(b[34:], bitsPerSample)
	copy(b[36:], "data")
	binary.LittleEndian.PutUint32(b[40:], dataLen)
}
