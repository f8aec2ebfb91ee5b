package engine

import (
	"fmt"
	"io"
	"math"
	"os"
	"runtime"

	"github.com/wildfunctions/random_art/pkg/anim"
)

// Config holds all parameters for a generation run.
type Config struct {
	Seed     string  `json:"seed"` // empty = random
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Depth    int     `json:"depth"`
	Workers  int     `json:"workers"`
	Frames   int     `json:"frames"` // 1 = still image at t = TimeFrom
	Easing   string  `json:"easing"`
	TimeFrom float64 `json:"time_from"`
	TimeTo   float64 `json:"time_to"`
	Fold     bool    `json:"fold"`
	Format   string  `json:"format"` // "text" or "json"
	Output   string  `json:"output"` // image path; extension selects the encoder, empty = don't save
	DotFile  string  `json:"dot_file,omitempty"`
	Verbose  bool    `json:"verbose"`

	Log io.Writer `json:"-"` // progress lines; nil = os.Stderr
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Seed:     "",
		Width:    600,
		Height:   600,
		Depth:    18,
		Workers:  runtime.NumCPU(),
		Frames:   1,
		Easing:   "linear",
		TimeFrom: 0,
		TimeTo:   1,
		Fold:     true,
		Format:   "text",
		Output:   "output.png",
		Verbose:  false,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("invalid size %dx%d: width and height must be at least 1", c.Width, c.Height)
	}
	if c.Frames < 1 {
		return fmt.Errorf("invalid frame count %d: must be at least 1", c.Frames)
	}
	if math.IsNaN(c.TimeFrom) || math.IsInf(c.TimeFrom, 0) || math.IsNaN(c.TimeTo) || math.IsInf(c.TimeTo, 0) {
		return fmt.Errorf("invalid time range %v..%v: bounds must be finite", c.TimeFrom, c.TimeTo)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format: %s (available: text, json)", c.Format)
	}
	if _, err := anim.Easing(c.Easing); err != nil {
		return err
	}
	if c.Output != "" {
		if _, err := FormatForPath(c.Output); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) logWriter() io.Writer {
	if c.Log == nil {
		return os.Stderr
	}
	return c.Log
}
