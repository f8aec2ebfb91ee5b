package raster

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/wildfunctions/random_art/pkg/art"
	"github.com/wildfunctions/random_art/pkg/gen"
)

// Options controls a single render.
type Options struct {
	Width, Height int
	Time          float64 // value fed to every t leaf
	Workers       int     // row workers; <= 0 means 1
}

// Quantize maps a value in about [-1, 1] to a byte. Out-of-range values
// clamp to 0 or 255 instead of wrapping.
func Quantize(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	scaled := math.Round((v + 1) / 2 * 255)
	switch {
	case scaled <= 0:
		return 0
	case scaled >= 255:
		return 255
	default:
		return uint8(scaled)
	}
}

// Normalize maps pixel index p in [0, size) to [-1, 1).
func Normalize(p, size int) float64 {
	return float64(p)/float64(size)*2 - 1
}

// Render evaluates the three channel trees at every pixel. Rows are split
// across opts.Workers goroutines; each row writes only its own slice of the
// buffer, so the result does not depend on the worker count. Cancelling
// ctx stops dispatching rows and returns ctx.Err().
func Render(ctx context.Context, ch art.Channels, opts Options) (*Buffer, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("invalid dimensions %dx%d: width and height must be at least 1", opts.Width, opts.Height)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	buf := NewBuffer(opts.Width, opts.Height)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for py := 0; py < opts.Height; py++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			renderRow(ch, buf, py, opts.Time)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

func renderRow(ch art.Channels, buf *Buffer, py int, t float64) {
	row := buf.Row(py)
	ny := Normalize(py, buf.Height)
	for px := 0; px < buf.Width; px++ {
		nx := Normalize(px, buf.Width)
		i := 3 * px
		row[i] = Quantize(ch.R.Eval(nx, ny, t))
		row[i+1] = Quantize(ch.G.Eval(nx, ny, t))
		row[i+2] = Quantize(ch.B.Eval(nx, ny, t))
	}
}

// GenerateImage builds the R, G and B trees from seed with the given depth
// cap, renders them at t = 0 and returns the pixels with the three-line
// description. It does no file I/O. Width and height must be at least 1;
// zero panics.
func GenerateImage(seed string, width, height uint32, depth int) (*Buffer, string) {
	ch := gen.New(seed).Channels(depth)
	buf, err := Render(context.Background(), ch, Options{
		Width:   int(width),
		Height:  int(height),
		Workers: runtime.NumCPU(),
	})
	if err != nil {
		panic(err)
	}
	return buf, ch.Description()
}
