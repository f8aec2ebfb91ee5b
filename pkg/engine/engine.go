package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/wildfunctions/random_art/pkg/anim"
	"github.com/wildfunctions/random_art/pkg/art"
	"github.com/wildfunctions/random_art/pkg/gen"
	"github.com/wildfunctions/random_art/pkg/raster"
)

// Engine runs one generation: trees, rasterization, sinks and report.
type Engine struct {
	cfg  Config
	seed string
}

// New creates a new engine from the given config.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == "" {
		seed = fmt.Sprintf("%016x", rand.Uint64())
	}

	return &Engine{cfg: cfg, seed: seed}, nil
}

// Seed returns the seed text in use, generated when the config left it empty.
func (e *Engine) Seed() string {
	return e.seed
}

// Run generates the channels, renders every frame, writes the requested
// files and returns the final report.
func (e *Engine) Run(ctx context.Context) (FinalReport, error) {
	start := time.Now()
	log := e.cfg.logWriter()

	g := gen.New(e.seed)
	fmt.Fprintf(log, "Starting seed %q (hash %016x), size %dx%d, depth %d, frames %d, workers %d\n",
		e.seed, g.Seed(), e.cfg.Width, e.cfg.Height, e.cfg.Depth, e.cfg.Frames, e.cfg.Workers)

	ch := g.Channels(e.cfg.Depth)
	fmt.Fprintln(log, ch.Description())

	report := newReport(e.cfg, e.seed, g.Seed(), ch)

	renderCh := ch
	if e.cfg.Fold {
		renderCh = ch.Folded()
		if e.cfg.Verbose {
			fmt.Fprintf(log, "Folded %d nodes to %d\n", ch.NodeCount(), renderCh.NodeCount())
		}
	}

	if e.cfg.Frames > 1 && !ch.UsesTime() {
		fmt.Fprintf(log, "warning: no channel reads t, all %d frames will be identical\n", e.cfg.Frames)
	}

	fn, err := anim.Easing(e.cfg.Easing)
	if err != nil {
		return report, err
	}
	report.Times = anim.Times(e.cfg.Frames, e.cfg.TimeFrom, e.cfg.TimeTo, fn)

	opts := raster.Options{
		Width:   e.cfg.Width,
		Height:  e.cfg.Height,
		Workers: e.cfg.Workers,
	}
	for i, t := range report.Times {
		if err := e.renderFrame(ctx, renderCh, opts, i, t, &report); err != nil {
			return report, err
		}
	}

	if e.cfg.DotFile != "" {
		if err := writeDot(e.cfg.DotFile, ch); err != nil {
			return report, err
		}
		report.Files = append(report.Files, e.cfg.DotFile)
		fmt.Fprintf(log, "Wrote %s\n", e.cfg.DotFile)
	}

	report.Elapsed = time.Since(start)
	return report, nil
}

func (e *Engine) renderFrame(ctx context.Context, ch art.Channels, opts raster.Options, i int, t float64, report *FinalReport) error {
	log := e.cfg.logWriter()
	frameStart := time.Now()

	opts.Time = t
	buf, err := raster.Render(ctx, ch, opts)
	if err != nil {
		return fmt.Errorf("rendering frame %d: %w", i, err)
	}
	if e.cfg.Verbose {
		fmt.Fprintf(log, "[frame %d] t=%.4f rendered in %v\n", i, t, time.Since(frameStart).Round(time.Millisecond))
	}

	if e.cfg.Output == "" {
		return nil
	}
	path := FramePath(e.cfg.Output, i, e.cfg.Frames)
	if err := SaveImage(path, buf); err != nil {
		return err
	}
	report.Files = append(report.Files, path)
	fmt.Fprintf(log, "Wrote %s\n", path)
	return nil
}

func writeDot(path string, ch art.Channels) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := ch.Graphviz(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
