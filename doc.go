// Package genvec is a procedural vector-pattern engine.
//
// # Overview
//
// Given a parameter vector ([Options]) and a color palette, an [Engine]
// synthesizes a scene of geometric primitives with one of ten pattern
// generators, runs it once per layer with attenuated parameters, and
// returns the resulting [recording.Recording] together with a
// [SceneReport] of element counts and pattern-specific metrics.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/genvec"
//	    "github.com/gogpu/genvec/palette"
//	    _ "github.com/gogpu/genvec/recording/backends/svg"
//	)
//
//	opts := genvec.DefaultOptions()
//	opts.Pattern = genvec.PatternRecursive
//	opts.Seed = genvec.Float(42)
//
//	eng := genvec.NewEngine()
//	scene, report, err := eng.Generate(opts, palette.DefaultCatalog().Resolve("oceanDepths", "", nil))
//
// # Randomness
//
// Every draw goes through an [rng.Source] created per Generate call and
// passed explicitly to the generators. Without seeding flags the engine uses
// a crypto/rand backed source. With UseTimeSeed, UseCursorSeed or an
// explicit Seed it uses a Park-Miller generator, and identical inputs yield
// identical scenes.
//
// # Termination
//
// The recursive generators (fractal and quadtree) share a per-call
// [Governor] capped at [DefaultRecursionCeiling] node visits, so generation
// finishes in bounded time for any depth or complexity.
//
// # Animation
//
// An [Animator] recomputes the Current attributes of a recording's
// primitives from their Base attributes on a fixed five second cycle.
// Because nothing accumulates, applying the same phase twice yields the same
// scene.
//
// # Logging
//
// genvec is silent by default. Call [SetLogger] to receive structured
// log/slog records.
package genvec

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
