// Command beatmaker is a terminal drum machine: a 3 × 16 step grid played
// live on the default audio device.
//
// Usage:
//
//	beatmaker [flags]
//
// On first start it asks for a new app password and stores its hash in
// -password-file; later starts ask for that password before opening the
// grid.
//
// Examples:
//
//	beatmaker
//	beatmaker -bpm 96 -out ~/beats
//	beatmaker -no-audio -log-file /tmp/beatmaker.log -log-level debug
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caffeinepub/thunderlab/beat"
	"github.com/caffeinepub/thunderlab/beat/sequencer"
	"github.com/caffeinepub/thunderlab/beat/synth"
	"github.com/caffeinepub/thunderlab/dsp/graph"
	"github.com/caffeinepub/thunderlab/internal/logging"
	"github.com/caffeinepub/thunderlab/internal/playback"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/term"
)

func main() {
	bpm := flag.Float64("bpm", beat.DefaultBPM, "initial tempo in BPM")
	out := flag.String("out", ".", "directory for exported WAV files")
	passwordFile := flag.String("password-file", "~/.thunderlab/password", "file holding the app password hash")
	noAudio := flag.Bool("no-audio", false, "run the grid without opening an audio device")
	bufferSize := flag.Duration("buffer", 50*time.Millisecond, "audio device buffer size")
	logFile := flag.String("log-file", "", "write logs to this file (the terminal is taken by the grid)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: beatmaker [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Terminal step sequencer with kick, snare and hi-hat.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n  %s\n", helpText)
	}
	flag.Parse()

	cfg := config{
		bpm:          *bpm,
		outDir:       *out,
		passwordFile: *passwordFile,
		noAudio:      *noAudio,
		bufferSize:   *bufferSize,
		logFile:      *logFile,
		logLevel:     *logLevel,
	}
	if err := run(context.Background(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	bpm          float64
	outDir       string
	passwordFile string
	noAudio      bool
	bufferSize   time.Duration
	logFile      string
	logLevel     string
}

func run(ctx context.Context, cfg config) error {
	logger, closeLog, err := openLogger(cfg.logFile, cfg.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	outDir, err := homedir.Expand(cfg.outDir)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	passwordFile, err := homedir.Expand(cfg.passwordFile)
	if err != nil {
		return fmt.Errorf("password file: %w", err)
	}

	b, err := openBackend(ctx, passwordFile, terminalPrompt(os.Stdin, os.Stderr))
	if err != nil {
		return err
	}

	rt := graph.NewRealtime()
	steps := make(chan int, 1)
	sched := sequencer.New(rt, synth.New(synth.WithLogger(logger)),
		sequencer.WithTempo(beat.ClampBPM(cfg.bpm)),
		sequencer.WithStepHandler(func(step int) {
			select {
			case steps <- step:
			default:
			}
		}),
		sequencer.WithLogger(logger),
	)
	defer sched.Stop()

	if !cfg.noAudio {
		dev, err := playback.Open(rt, playback.WithBufferSize(cfg.bufferSize), playback.WithLogger(logger))
		if err != nil {
			return err
		}
		defer dev.Close()
		dev.Start()
	}

	m := newModel(sched, b, steps,
		withOutDir(outDir),
		withLogger(logger),
	)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// openLogger logs to path, or nowhere when path is empty.
func openLogger(path, level string) (*slog.Logger, func(), error) {
	if _, err := logging.ResolveLogLevel(level); err != nil {
		return nil, nil, err
	}
	if path == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// terminalPrompt reads a password without echo when in is a terminal and a
// plain line otherwise.
func terminalPrompt(in *os.File, out io.Writer) promptFunc {
	r := bufio.NewReader(in)
	return func(label string) (string, error) {
		fmt.Fprint(out, label)
		fd := int(in.Fd())
		if term.IsTerminal(fd) {
			pw, err := term.ReadPassword(fd)
			fmt.Fprintln(out)
			return string(pw), err
		}
		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}
