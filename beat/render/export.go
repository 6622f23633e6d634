package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/caffeinepub/thunderlab/beat"
	"github.com/caffeinepub/thunderlab/dsp/wav"
)

// FilenamePrefix starts every export file name.
const FilenamePrefix = "thunderlab-beat-"

// File is an encoded render ready to be saved or downloaded.
type File struct {
	Data     []byte
	Filename string
	MIMEType string
	Duration time.Duration
}

// Export renders pattern and encodes it as WAV, named after bpm and at.
func Export(pattern *beat.Pattern, bpm float64, at time.Time, opts ...Option) (*File, error) {
	audio, err := Render(pattern, bpm, opts...)
	if err != nil {
		return nil, err
	}
	return &File{
		Data:     wav.Encode(audio),
		Filename: Filename(bpm, at),
		MIMEType: wav.MIMEType,
		Duration: time.Duration(audio.Duration() * float64(time.Second)),
	}, nil
}

// Filename returns e.g. "thunderlab-beat-120bpm-2026-10-15T12-34-56.wav".
// The timestamp is UTC to the second.
func Filename(bpm float64, at time.Time) string {
	var b strings.Builder
	b.WriteString(FilenamePrefix)
	b.WriteString(strconv.FormatFloat(bpm, 'f', -1, 64))
	b.WriteString("bpm-")
	b.WriteString(at.UTC().Format("2006-01-02T15-04-05"))
	b.WriteString(".wav")
	return b.String()
}
