package genvec

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gogpu/genvec/palette"
	"github.com/gogpu/genvec/recording"
	"github.com/gogpu/genvec/rng"
)

// EngineOption configures an Engine during creation.
//
// Example:
//
//	// Default engine: wall clock, crypto/rand or Park-Miller sources
//	eng := genvec.NewEngine()
//
//	// Fixed clock and seed (reproducible scenes in tests)
//	eng := genvec.NewEngine(genvec.WithClock(fixed), genvec.WithSeed(42))
type EngineOption func(*engineOptions)

type engineOptions struct {
	clock   func() time.Time
	sources SourceFactory
	ceiling int
	seed    *float64
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		clock:   time.Now,
		sources: DefaultSourceFactory,
		ceiling: DefaultRecursionCeiling,
	}
}

// WithClock sets the clock used for time seeding and durations.
func WithClock(clock func() time.Time) EngineOption {
	return func(o *engineOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithSourceFactory replaces the random source construction.
func WithSourceFactory(f SourceFactory) EngineOption {
	return func(o *engineOptions) {
		if f != nil {
			o.sources = f
		}
	}
}

// WithRecursionCeiling overrides DefaultRecursionCeiling.
func WithRecursionCeiling(n int) EngineOption {
	return func(o *engineOptions) {
		if n > 0 {
			o.ceiling = n
		}
	}
}

// WithSeed makes every call seeded with seed unless the call's Options
// carry their own Seed.
func WithSeed(seed float64) EngineOption {
	return func(o *engineOptions) {
		o.seed = &seed
	}
}

// Engine is the layer compositor. It is stateless between calls and safe
// for concurrent use: every Generate call allocates its own random source,
// recorder and governor.
type Engine struct {
	opts engineOptions
}

// NewEngine creates an Engine.
func NewEngine(opts ...EngineOption) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{opts: o}
}

// Generate builds one scene. The options are normalized first; an empty
// palette is replaced by palette.Safety.
//
// The selected generator runs once per layer with ForLayer options and a
// freshly reset governor. An unknown pattern falls back to scatter with a
// warning. A panic inside a generator aborts the remaining layers: the
// partial recording is returned with an inline error marker, the report
// carries the message, and the error wraps ErrGenerationFailed.
func (e *Engine) Generate(opts Options, pal palette.Palette) (*recording.Recording, *SceneReport, error) {
	start := e.opts.clock()
	o := opts.Normalize()
	if o.Seed == nil && e.opts.seed != nil {
		o.Seed = e.opts.seed
	}
	if len(pal) == 0 {
		pal = palette.Safety.Clone()
	}

	seed, seeded := seedFor(o, start)
	r := rng.New(e.opts.sources(seed, seeded))

	rec := recording.NewRecorder(o.Viewport.Width, o.Viewport.Height)
	rec.SetBackground(o.Background)
	gov := NewGovernor(e.opts.ceiling)
	fills := NewFillResolver(r, rec.Defs())

	report := &SceneReport{
		Pattern:    o.Pattern,
		LayerCount: o.LayerCount,
		Viewport:   o.Viewport,
		Layers:     make([]Report, 0, o.LayerCount),
		Seeded:     seeded,
	}
	if seeded {
		report.Seed = seed
	}

	log := Logger()
	log.Debug("genvec: generation started",
		"pattern", o.Pattern, "layers", o.LayerCount, "seeded", seeded, "seed", seed)

	gen, known := lookupGenerator(o.Pattern)
	if !known {
		log.Warn("genvec: unknown pattern, falling back to scatter", "pattern", o.Pattern)
	}

	var genErr error
	for layer := range o.LayerCount {
		rec.BeginLayer(layer)
		gov.Reset()
		c := &Canvas{
			rec:   rec,
			opts:  o.ForLayer(layer),
			pal:   pal,
			rand:  r,
			fills: fills,
			gov:   gov,
			layer: layer,
		}
		log.Debug("genvec: layer dispatch", "layer", layer,
			"complexity", c.opts.Complexity, "density", c.opts.Density)

		rep, err := runGenerator(gen, c)
		if gov.CeilingHit() {
			log.Warn("genvec: recursion ceiling hit", "layer", layer, "ceiling", gov.Ceiling())
		}
		if err != nil {
			genErr = err
			break
		}
		rep.Pattern = o.Pattern
		rep.Layer = layer
		report.TotalElements += rep.ElementCount
		report.Layers = append(report.Layers, rep)
	}

	if genErr != nil {
		rec.MarkError(genErr.Error())
		report.Error = genErr.Error()
		log.Warn("genvec: generation failed", "pattern", o.Pattern, "err", genErr)
	}
	report.Duration = e.opts.clock().Sub(start)
	log.Info("genvec: generation finished",
		"pattern", o.Pattern, "layers", len(report.Layers),
		"elements", report.TotalElements, "duration", report.Duration)

	return rec.Finish(), report, genErr
}

// runGenerator calls gen and converts a panic into an error wrapping
// ErrGenerationFailed.
func runGenerator(gen Generator, c *Canvas) (rep Report, err error) {
	defer func() {
		if v := recover(); v != nil {
			Logger().Debug("genvec: generator panic", "layer", c.layer, "stack", string(debug.Stack()))
			err = fmt.Errorf("%w: layer %d: %v", ErrGenerationFailed, c.layer, v)
		}
	}()
	return gen(c), nil
}
