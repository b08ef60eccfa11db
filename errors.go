package genvec

import "errors"

var (
	// ErrInvalidOptions is returned by Options.Validate and by option
	// decoding when a value cannot be used.
	ErrInvalidOptions = errors.New("genvec: invalid options")

	// ErrGenerationFailed wraps a failure recovered inside a pattern
	// generator. The partially drawn recording is still returned.
	ErrGenerationFailed = errors.New("genvec: generation failed")

	// ErrUnknownPattern is returned when a pattern name cannot be parsed.
	// The engine itself never fails on an unknown pattern; it falls back to
	// the scatter generator.
	ErrUnknownPattern = errors.New("genvec: unknown pattern")
)
