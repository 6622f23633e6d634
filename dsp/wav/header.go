package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrInvalidFile is returned for data that is not a canonical PCM WAV.
var ErrInvalidFile = errors.New("wav: invalid file")

// Header holds the fields of a canonical 44-byte header.
type Header struct {
	RIFFSize      uint32
	Format        uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// ParseHeader reads the canonical header at the start of b. It does not
// accept extra chunks between fmt and data.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, want at least %d", ErrInvalidFile, len(b), HeaderSize)
	}
	for _, tag := range []struct {
		off int
		id  string
	}{{0, "RIFF"}, {8, "WAVE"}, {12, "fmt "}, {36, "data"}} {
		if got := string(b[tag.off : tag.off+4]); got != tag.id {
			return Header{}, fmt.Errorf("%w: %q at offset %d, want %q", ErrInvalidFile, got, tag.off, tag.id)
		}
	}
	if size := binary.LittleEndian.Uint32(b[16:]); size != 16 {
		return Header{}, fmt.Errorf("%w: fmt chunk size %d", ErrInvalidFile, size)
	}
	le := binary.LittleEndian
	return Header{
		RIFFSize:      le.Uint32(b[4:]),
		Format:        le.Uint16(b[20:]),
		Channels:      le.Uint16(b[22:]),
		SampleRate:    le.Uint32(b[24:]),
		ByteRate:      le.Uint32(b[28:]),
		BlockAlign:    le.Uint16(b[32:]),
		BitsPerSample: le.Uint16(b[34:]),
		DataSize:      le.Uint32(b[40:]),
	}, nil
}
