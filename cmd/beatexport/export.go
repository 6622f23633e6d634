package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caffeinepub/thunderlab/beat/render"
	"github.com/caffeinepub/thunderlab/beat/synth"
	"golang.org/x/sync/errgroup"
)

type result struct {
	bpm  float64
	path string
	file *render.File
}

// exportAll renders one file per tempo on a bounded worker group. Results
// keep the order of opts.tempos.
func exportAll(ctx context.Context, opts options) ([]result, error) {
	results := make([]result, len(opts.tempos))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, bpm := range opts.tempos {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := exportOne(bpm, opts)
			if err != nil {
				return fmt.Errorf("%v bpm: %w", bpm, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func exportOne(bpm float64, opts options) (result, error) {
	var synthOpts []synth.Option
	if opts.seed != 0 {
		synthOpts = append(synthOpts, synth.WithSeed(opts.seed))
	}
	synthOpts = append(synthOpts, synth.WithLogger(opts.logger))

	f, err := render.Export(opts.pattern, bpm, opts.now,
		render.WithBars(opts.bars),
		render.WithSynthesizer(synth.New(synthOpts...)),
		render.WithLogger(opts.logger),
	)
	if err != nil {
		return result{}, err
	}
	path := filepath.Join(opts.outDir, f.Filename)
	if err := os.WriteFile(path, f.Data, 0o644); err != nil {
		return result{}, err
	}
	opts.logger.Info("wrote beat", "path", path, "bpm", bpm, "duration", f.Duration, "bytes", len(f.Data))
	return result{bpm: bpm, path: path, file: f}, nil
}
