package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/wildfunctions/random_art/pkg/anim"
	"github.com/wildfunctions/random_art/pkg/engine"
)

func main() {
	cfg := engine.DefaultConfig()

	flag.StringVar(&cfg.Seed, "seed", cfg.Seed, "seed text (empty = random)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "image width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "image height in pixels")
	flag.IntVar(&cfg.Depth, "depth", cfg.Depth, "max tree depth per channel")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of parallel row workers")
	flag.IntVar(&cfg.Frames, "frames", cfg.Frames, "number of frames (1 = still image)")
	flag.StringVar(&cfg.Easing, "easing", cfg.Easing, "time easing for frames ("+strings.Join(anim.EasingNames(), ", ")+")")
	flag.Float64Var(&cfg.TimeFrom, "tfrom", cfg.TimeFrom, "t value of the first frame")
	flag.Float64Var(&cfg.TimeTo, "tto", cfg.TimeTo, "t value of the last frame")
	flag.BoolVar(&cfg.Fold, "fold", cfg.Fold, "fold constant subtrees before rendering")
	flag.StringVar(&cfg.Output, "out", cfg.Output, "output image (.png, .bmp, .tif); empty = don't save")
	flag.StringVar(&cfg.DotFile, "dot", cfg.DotFile, "write the channel trees as a Graphviz file")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "report format (text, json)")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "verbose output per frame")
	flag.Parse()

	e, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := e.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	switch cfg.Format {
	case "json":
		if err := engine.WriteJSONFinal(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "error writing JSON: %v\n", err)
			os.Exit(1)
		}
	default:
		engine.WriteTextFinal(os.Stdout, report)
	}
}
