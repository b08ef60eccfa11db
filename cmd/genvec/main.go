// Command genvec generates one scene and writes it as SVG, PNG or JSON
// metadata. With -frames it writes an animation as a numbered sequence.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/genvec"
	"github.com/gogpu/genvec/palette"
	"github.com/gogpu/genvec/recording"
	_ "github.com/gogpu/genvec/recording/backends/raster"
	_ "github.com/gogpu/genvec/recording/backends/svg"
	"github.com/gogpu/genvec/rng"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "genvec:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("genvec", flag.ContinueOnError)
	var (
		preset     = fs.String("preset", "", "YAML or JSON options file")
		palettes   = fs.String("palettes", "", "YAML palette catalog (default: built-in)")
		category   = fs.String("category", palette.RandomCategory, "palette category")
		selector   = fs.String("palette", "", "palette selector within the category")
		pattern    = fs.String("pattern", "random", "pattern generator")
		complexity = fs.Int("complexity", 5, "complexity 1-10")
		density    = fs.Float64("density", 50, "density 0-100")
		depth      = fs.Int("depth", 5, "maximum recursion depth 1-10")
		layers     = fs.Int("layers", 1, "layer count 1-10")
		fill       = fs.String("fill", "solid", "fill mode: solid, gradient, pattern or none")
		seed       = fs.String("seed", "", "literal seed (default: time of day)")
		width      = fs.Int("width", genvec.DefaultWidth, "viewport width")
		height     = fs.Int("height", genvec.DefaultHeight, "viewport height")
		format     = fs.String("format", "svg", "output format: svg, png or json")
		output     = fs.String("o", "", "output file (default: pattern.<format>)")
		frames     = fs.Int("frames", 0, "write this many animation frames")
		animate    = fs.String("animate", "pulse", "animation: pulse, rotate, morph or opacity")
		verbose    = fs.Bool("v", false, "log debug output to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	genvec.SetLogger(log)

	opts := genvec.DefaultOptions()
	if *preset != "" {
		var err error
		if opts, err = loadOptions(*preset); err != nil {
			return err
		}
	}

	// Flags override the preset only when given.
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		var err error
		switch f.Name {
		case "pattern":
			err = opts.Pattern.UnmarshalText([]byte(*pattern))
		case "complexity":
			opts.Complexity = *complexity
		case "density":
			opts.Density = *density
		case "depth":
			opts.MaxRecursionDepth = *depth
		case "layers":
			opts.LayerCount = *layers
		case "fill":
			err = opts.FillMode.UnmarshalText([]byte(*fill))
		case "seed":
			var v float64
			if v, err = strconv.ParseFloat(*seed, 64); err == nil {
				opts.Seed = genvec.Float(v)
			}
		case "width":
			opts.Viewport.Width = *width
		case "height":
			opts.Viewport.Height = *height
		case "animate":
			err = opts.Animation.Kind.UnmarshalText([]byte(*animate))
		}
		if err != nil {
			flagErr = errors.Join(flagErr, fmt.Errorf("-%s: %w", f.Name, err))
		}
	})
	if flagErr != nil {
		return flagErr
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	catalog := palette.DefaultCatalog()
	if *palettes != "" {
		var err error
		if catalog, err = loadCatalog(*palettes); err != nil {
			return err
		}
	}
	pal := catalog.Resolve(*category, *selector, rng.New(nil))

	engine := genvec.NewEngine()
	scene, report, genErr := engine.Generate(opts, pal)
	if genErr != nil {
		log.Warn("writing partial scene", "err", genErr)
	}

	if *output == "" {
		*output = "pattern." + *format
	}

	if *format == "json" {
		return writeJSON(*output, genvec.Snapshot{
			Timestamp:       time.Now().UTC(),
			GenerationCount: 1,
			OptionsUsed:     opts,
			Palette:         pal,
			MathProperties:  report,
		})
	}

	if *frames <= 0 {
		return writeScene(*output, *format, scene)
	}

	anim := genvec.NewAnimator(scene, opts.Animation.Kind, opts.Complexity)
	ext := filepath.Ext(*output)
	base := strings.TrimSuffix(*output, ext)
	for i := 0; i < *frames; i++ {
		anim.Apply(float64(i) / float64(*frames))
		name := fmt.Sprintf("%s-%03d%s", base, i, ext)
		err := anim.View(func(rec *recording.Recording) error {
			return writeScene(name, *format, rec)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func loadOptions(path string) (genvec.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return genvec.Options{}, err
	}
	defer f.Close()
	return genvec.LoadOptions(f)
}

func loadCatalog(path string) (*palette.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return palette.LoadCatalog(f)
}

func writeScene(path, format string, rec *recording.Recording) error {
	b, err := recording.NewBackend(format)
	if err != nil {
		return err
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot write files", format)
	}
	if err := rec.Playback(b); err != nil {
		return err
	}
	return fb.SaveToFile(path)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
