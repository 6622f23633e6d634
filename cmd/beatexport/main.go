// Command beatexport renders step patterns to WAV files.
//
// Usage:
//
//	beatexport [flags]
//
// Without -pattern it renders a basic rock beat. One file is written per
// tempo given to -bpm.
//
// Examples:
//
//	beatexport -bpm 120
//	beatexport -bpm 90,120,140 -out ~/beats -analyze
//	beatexport -pattern groove.txt -seed 7 -bars 8
//	echo "kick x...x...x...x..." | beatexport -pattern -
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caffeinepub/thunderlab/beat"
	"github.com/caffeinepub/thunderlab/beat/render"
	"github.com/caffeinepub/thunderlab/internal/logging"
	"github.com/mitchellh/go-homedir"
)

const defaultPattern = `kick  x...x...x...x...
snare ....x.......x...
hihat x.x.x.x.x.x.x.x.`

type options struct {
	tempos  []float64
	pattern *beat.Pattern
	bars    int
	seed    int64
	outDir  string
	analyze bool
	logger  *slog.Logger
	now     time.Time
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("beatexport", flag.ContinueOnError)
	fs.SetOutput(stderr)
	bpmList := fs.String("bpm", "120", "comma-separated tempos in BPM")
	patternArg := fs.String("pattern", "", "pattern file, - for stdin, or inline pattern text")
	bars := fs.Int("bars", render.DefaultBars, "number of 16-step bars to render")
	seed := fs.Int64("seed", 0, "noise seed (0 picks a random seed)")
	out := fs.String("out", ".", "output directory")
	analyze := fs.Bool("analyze", false, "decode the written files and print level and spectral figures")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: beatexport [flags]\n\n")
		fmt.Fprintf(stderr, "Renders a 16-step drum pattern to one WAV file per tempo.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nPattern format (one line per sound, x = hit):\n\n%s\n", defaultPattern)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	logger, err := logging.New(stderr, *logLevel)
	if err != nil {
		return err
	}
	tempos, err := parseTempos(*bpmList)
	if err != nil {
		return err
	}
	if *bars < 1 {
		return fmt.Errorf("bars must be at least 1, got %d", *bars)
	}
	pattern, err := loadPattern(*patternArg, stdin)
	if err != nil {
		return err
	}
	dir, err := homedir.Expand(*out)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	opts := options{
		tempos:  tempos,
		pattern: pattern,
		bars:    *bars,
		seed:    *seed,
		outDir:  dir,
		analyze: *analyze,
		logger:  logger,
		now:     time.Now(),
	}
	results, err := exportAll(ctx, opts)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintln(stdout, r.path)
	}
	if opts.analyze {
		return printAnalysis(stdout, results)
	}
	return nil
}

// parseTempos reads a comma-separated BPM list. Duplicates are dropped since
// they would produce the same file name.
func parseTempos(list string) ([]float64, error) {
	var tempos []float64
	seen := make(map[float64]bool)
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		bpm, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", beat.ErrInvalidTempo, field)
		}
		if err := beat.ValidateTempo(bpm); err != nil {
			return nil, err
		}
		if seen[bpm] {
			continue
		}
		seen[bpm] = true
		tempos = append(tempos, bpm)
	}
	if len(tempos) == 0 {
		return nil, fmt.Errorf("%w: no tempo given", beat.ErrInvalidTempo)
	}
	return tempos, nil
}

// loadPattern resolves -pattern: empty for the default beat, "-" for stdin,
// an existing file, or else the argument itself as pattern text.
func loadPattern(arg string, stdin io.Reader) (*beat.Pattern, error) {
	switch {
	case arg == "":
		return beat.ParsePattern(defaultPattern)
	case arg == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		return beat.ParsePattern(string(data))
	}
	path, err := homedir.Expand(arg)
	if err != nil {
		return nil, err
	}
	if data, err := os.ReadFile(path); err == nil {
		return beat.ParsePattern(string(data))
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return beat.ParsePattern(strings.ReplaceAll(arg, `\n`, "\n"))
}
