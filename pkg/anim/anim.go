package anim

import (
	"context"
	"fmt"
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/wildfunctions/random_art/pkg/art"
	"github.com/wildfunctions/random_art/pkg/raster"
)

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"inoutsine":  ease.InOutSine,
	"outbounce":  ease.OutBounce,
	"outelastic": ease.OutElastic,
}

// Easing returns the named easing curve.
func Easing(name string) (ease.TweenFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing: %s (available: %v)", name, EasingNames())
	}
	return fn, nil
}

// EasingNames returns all easing names, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for k := range easings {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Times returns the t value for each of frames frames, sweeping from
// `from` to `to` along fn. The first frame is exactly from and the last is
// exactly to. frames <= 0 returns nil.
func Times(frames int, from, to float64, fn ease.TweenFunc) []float64 {
	if frames <= 0 {
		return nil
	}
	times := make([]float64, frames)
	times[0] = from
	if frames == 1 {
		return times
	}

	tween := gween.New(float32(from), float32(to), float32(frames-1), fn)
	for i := 1; i < frames; i++ {
		v, finished := tween.Update(1)
		times[i] = float64(v)
		if finished {
			times[i] = to
		}
	}
	return times
}

// Render renders one frame per entry in times. Frames are produced in
// order; each frame is parallel across rows per opts.Workers.
// opts.Time is ignored.
func Render(ctx context.Context, ch art.Channels, opts raster.Options, times []float64) ([]*raster.Buffer, error) {
	frames := make([]*raster.Buffer, 0, len(times))
	for i, t := range times {
		opts.Time = t
		buf, err := raster.Render(ctx, ch, opts)
		if err != nil {
			return nil, fmt.Errorf("frame %d (t=%g): %w", i, t, err)
		}
		frames = append(frames, buf)
	}
	return frames, nil
}
