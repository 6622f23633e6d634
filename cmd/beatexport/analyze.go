package main

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/caffeinepub/thunderlab/dsp/spectrum"
	"github.com/caffeinepub/thunderlab/dsp/wav"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// brightHz splits the spectrum for the "high" column; the hi-hat and snare
// noise live above it, the kick below.
const brightHz = 5000

type analysis struct {
	info     wav.Info
	peak     float64
	rms      float64
	centroid float64
	high     float64
}

// analyzeFile reads back a written WAV and measures its first channel.
func analyzeFile(path string) (analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return analysis{}, err
	}
	info, err := wav.ReadInfo(bytes.NewReader(data))
	if err != nil {
		return analysis{}, err
	}
	audio, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return analysis{}, err
	}
	x := audio.Channel(0)
	a := analysis{info: info}
	if len(x) == 0 {
		return a, nil
	}
	a.peak = vecmath.MaxAbs(x)
	a.rms = rms(x)
	ps, err := spectrum.PowerSpectrum(x, audio.SampleRate())
	if err != nil {
		return analysis{}, err
	}
	a.centroid = ps.Centroid()
	a.high = ps.BandEnergyRatio(brightHz, audio.SampleRate()/2)
	return a, nil
}

func rms(x []float64) float64 {
	return math.Sqrt(vecmath.DotProduct(x, x) / float64(len(x)))
}

func printAnalysis(w io.Writer, results []result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "File\tBPM\tCh\tRate\tDuration\tPeak\tRMS\tCentroid [Hz]\t>5kHz\n")
	fmt.Fprintf(tw, "----\t---\t--\t----\t--------\t----\t---\t-------------\t-----\n")
	for _, r := range results {
		a, err := analyzeFile(r.path)
		if err != nil {
			return fmt.Errorf("analyze %s: %w", r.path, err)
		}
		fmt.Fprintf(tw, "%s\t%g\t%d\t%d\t%s\t%.4f\t%.4f\t%.1f\t%.1f%%\n",
			filepath.Base(r.path),
			r.bpm,
			a.info.Channels,
			a.info.SampleRate,
			a.info.Duration,
			a.peak,
			a.rms,
			a.centroid,
			100*a.high,
		)
	}
	return tw.Flush()
}
