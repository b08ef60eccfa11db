package genvec

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/genvec/palette"
)

// Option limits. Normalize clamps into these ranges.
const (
	MinComplexity = 1
	MaxComplexity = 50
	MinDepth      = 1
	MaxDepth      = 16
	MinLayers     = 1
	MaxLayers     = 10
	MinRepetition = 1
	MaxRepetition = 20
	MinViewport   = 100
	MaxViewport   = 4096

	DefaultWidth  = 800
	DefaultHeight = 600
)

// FillMode selects how filled shapes are painted.
type FillMode uint8

const (
	// FillSolid paints every shape with a random palette color.
	FillSolid FillMode = iota

	// FillNone leaves shapes unfilled.
	FillNone

	// FillGradient paints about 30% of shapes with a fresh gradient.
	FillGradient

	// FillPattern paints about 30% of shapes with a fresh tile pattern.
	FillPattern
)

var fillModeNames = [...]string{
	FillSolid:    "solid",
	FillNone:     "none",
	FillGradient: "gradient",
	FillPattern:  "pattern",
}

// String returns the fill mode name.
func (m FillMode) String() string {
	if int(m) < len(fillModeNames) {
		return fillModeNames[m]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (m FillMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *FillMode) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	for i, name := range fillModeNames {
		if name == s {
			*m = FillMode(i)
			return nil
		}
	}
	return fmt.Errorf("%w: fill mode %q", ErrInvalidOptions, s)
}

// AnimationKind selects which attribute the animation driver varies.
type AnimationKind uint8

const (
	// AnimatePulse scales circle radii.
	AnimatePulse AnimationKind = iota

	// AnimateRotate spins shapes about their centers.
	AnimateRotate

	// AnimateOpacity fades shapes between 70% and 100% of their opacity.
	AnimateOpacity

	// AnimateMorph varies stroke widths.
	AnimateMorph
)

var animationKindNames = [...]string{
	AnimatePulse:   "pulse",
	AnimateRotate:  "rotate",
	AnimateOpacity: "opacity",
	AnimateMorph:   "morph",
}

// String returns the animation kind name.
func (k AnimationKind) String() string {
	if int(k) < len(animationKindNames) {
		return animationKindNames[k]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k AnimationKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AnimationKind) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	for i, name := range animationKindNames {
		if name == s {
			*k = AnimationKind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: animation kind %q", ErrInvalidOptions, s)
}

// Animation holds the animation flags.
type Animation struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	Kind    AnimationKind `json:"kind" yaml:"kind"`
}

// Viewport is the scene size in user units.
type Viewport struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// String returns the viewport as "WxH".
func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

// Point is a pointer or captured coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Options is the parameter vector of one generation call. It is a value
// object: the engine never modifies the caller's copy.
type Options struct {
	Pattern           Pattern  `json:"pattern" yaml:"pattern"`
	Complexity        int      `json:"complexity" yaml:"complexity"`
	Density           float64  `json:"density" yaml:"density"`
	MaxRecursionDepth int      `json:"maxRecursionDepth" yaml:"maxRecursionDepth"`
	StrokeWeight      float64  `json:"strokeWeight" yaml:"strokeWeight"`
	Opacity           float64  `json:"opacity" yaml:"opacity"`
	Scale             float64  `json:"scale" yaml:"scale"`
	LayerCount        int      `json:"layerCount" yaml:"layerCount"`
	Repetition        int      `json:"repetition" yaml:"repetition"`
	FillMode          FillMode `json:"fillMode" yaml:"fillMode"`
	Background        string   `json:"background" yaml:"background"`
	StrokeColor       string   `json:"strokeColor" yaml:"strokeColor"`

	UseCursorSeed bool `json:"useCursorSeed" yaml:"useCursorSeed"`
	UseTimeSeed   bool `json:"useTimeSeed" yaml:"useTimeSeed"`
	// Seed forces seeded mode with a literal seed, bypassing the time and
	// cursor derivation.
	Seed *float64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	Animation Animation `json:"animation" yaml:"animation"`
	Viewport  Viewport  `json:"viewport" yaml:"viewport"`

	// Cursor is the live pointer position, used only for cursor seeding.
	Cursor *Point `json:"cursor,omitempty" yaml:"cursor,omitempty"`
	// CapturedX, CapturedY and CapturedV are captured pointer coordinates.
	// The Bezier generator uses them as curve start and end points.
	CapturedX *float64 `json:"capturedX,omitempty" yaml:"capturedX,omitempty"`
	CapturedY *float64 `json:"capturedY,omitempty" yaml:"capturedY,omitempty"`
	CapturedV *Point   `json:"capturedV,omitempty" yaml:"capturedV,omitempty"`
}

// DefaultOptions returns the options used when a field is left unset.
func DefaultOptions() Options {
	return Options{
		Pattern:           PatternRandom,
		Complexity:        5,
		Density:           50,
		MaxRecursionDepth: 5,
		StrokeWeight:      1,
		Opacity:           0.8,
		Scale:             1,
		LayerCount:        1,
		Repetition:        1,
		FillMode:          FillSolid,
		Background:        "#ffffff",
		StrokeColor:       "#000000",
		Viewport:          Viewport{Width: DefaultWidth, Height: DefaultHeight},
	}
}

// Float returns a pointer to v. It is a convenience for Options.Seed and
// the captured coordinates.
func Float(v float64) *float64 {
	return &v
}

// Normalize returns a copy of o with every numeric field clamped into its
// documented range. Non-finite values are replaced by the defaults, and
// colors that do not parse fall back to white background and black stroke.
func (o Options) Normalize() Options {
	d := DefaultOptions()

	o.Complexity = clampInt(o.Complexity, MinComplexity, MaxComplexity)
	o.Density = clampFloat(finiteOr(o.Density, d.Density), 0, 100)
	o.MaxRecursionDepth = clampInt(o.MaxRecursionDepth, MinDepth, MaxDepth)
	o.StrokeWeight = math.Max(0.1, finiteOr(o.StrokeWeight, d.StrokeWeight))
	o.Opacity = clampFloat(finiteOr(o.Opacity, d.Opacity), 0.01, 1)
	o.Scale = math.Max(0.01, finiteOr(o.Scale, d.Scale))
	o.LayerCount = clampInt(o.LayerCount, MinLayers, MaxLayers)
	o.Repetition = clampInt(o.Repetition, MinRepetition, MaxRepetition)
	if o.FillMode > FillPattern {
		o.FillMode = FillSolid
	}
	if o.Animation.Kind > AnimateMorph {
		o.Animation.Kind = AnimatePulse
	}

	if !palette.IsHex(o.Background) {
		o.Background = d.Background
	}
	if !palette.IsHex(o.StrokeColor) {
		o.StrokeColor = d.StrokeColor
	}

	if o.Viewport.Width <= 0 {
		o.Viewport.Width = DefaultWidth
	}
	if o.Viewport.Height <= 0 {
		o.Viewport.Height = DefaultHeight
	}
	o.Viewport.Width = clampInt(o.Viewport.Width, MinViewport, MaxViewport)
	o.Viewport.Height = clampInt(o.Viewport.Height, MinViewport, MaxViewport)

	if o.Seed != nil && !isFinite(*o.Seed) {
		o.Seed = nil
	}
	return o
}

// Validate reports every out-of-range or non-finite field. Surfaces that
// take user input (flags, request bodies) call it to reject bad values;
// the engine itself only normalizes.
func (o Options) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidOptions}, args...)...))
	}

	if o.Complexity < MinComplexity || o.Complexity > MaxComplexity {
		bad("complexity %d outside [%d, %d]", o.Complexity, MinComplexity, MaxComplexity)
	}
	if !isFinite(o.Density) || o.Density < 0 || o.Density > 100 {
		bad("density %v outside [0, 100]", o.Density)
	}
	if o.MaxRecursionDepth < MinDepth || o.MaxRecursionDepth > MaxDepth {
		bad("maxRecursionDepth %d outside [%d, %d]", o.MaxRecursionDepth, MinDepth, MaxDepth)
	}
	if !isFinite(o.StrokeWeight) || o.StrokeWeight <= 0 {
		bad("strokeWeight %v must be positive", o.StrokeWeight)
	}
	if !isFinite(o.Opacity) || o.Opacity <= 0 || o.Opacity > 1 {
		bad("opacity %v outside (0, 1]", o.Opacity)
	}
	if !isFinite(o.Scale) || o.Scale <= 0 {
		bad("scale %v must be positive", o.Scale)
	}
	if o.LayerCount < MinLayers || o.LayerCount > MaxLayers {
		bad("layerCount %d outside [%d, %d]", o.LayerCount, MinLayers, MaxLayers)
	}
	if o.Repetition < MinRepetition || o.Repetition > MaxRepetition {
		bad("repetition %d outside [%d, %d]", o.Repetition, MinRepetition, MaxRepetition)
	}
	if !palette.IsHex(o.Background) {
		bad("background %q is not a hex color", o.Background)
	}
	if !palette.IsHex(o.StrokeColor) {
		bad("strokeColor %q is not a hex color", o.StrokeColor)
	}
	if o.Viewport.Width < MinViewport || o.Viewport.Width > MaxViewport ||
		o.Viewport.Height < MinViewport || o.Viewport.Height > MaxViewport {
		bad("viewport %s outside [%d, %d]", o.Viewport, MinViewport, MaxViewport)
	}
	if o.Seed != nil && !isFinite(*o.Seed) {
		bad("seed is not finite")
	}
	return errors.Join(errs...)
}

// ForLayer derives the options of layer i. Layer 0 is o itself; later
// layers attenuate complexity and density down to 1, and multiply stroke
// weight, opacity and scale by factors that never drop below 0.1.
func (o Options) ForLayer(i int) Options {
	if i <= 0 {
		return o
	}
	l := float64(i)
	o.Complexity = max(1, int(math.Floor(float64(o.Complexity)-1.5*l)))
	o.Density = math.Max(1, o.Density-15*l)
	o.StrokeWeight *= math.Max(0.1, 1-0.25*l)
	o.Opacity *= math.Max(0.1, 1-0.2*l)
	o.Scale *= math.Max(0.1, 1-0.15*l)
	return o
}

// Seeded reports whether the options select the reproducible source.
func (o Options) Seeded() bool {
	return o.Seed != nil || o.UseTimeSeed || o.UseCursorSeed
}

// LoadOptions decodes a YAML (or JSON) preset on top of DefaultOptions.
// The result is normalized.
func LoadOptions(r io.Reader) (Options, error) {
	o := DefaultOptions()
	if err := yaml.NewDecoder(r).Decode(&o); err != nil {
		if errors.Is(err, io.EOF) {
			return o, nil
		}
		return Options{}, fmt.Errorf("genvec: decode options: %w", err)
	}
	return o.Normalize(), nil
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOr(v, def float64) float64 {
	if !isFinite(v) {
		return def
	}
	return v
}
