package recording

import "io"

// Backend is the interface that all export backends implement. Backends
// receive a recording's definitions and primitives in drawing order and
// translate them to their output format (SVG markup, raster pixels).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Draw Current attributes, never Base
type Backend interface {
	// Begin initializes the backend for a width x height viewport.
	// background is a hex color.
	Begin(width, height int, background string) error

	// Define is called once per registered definition, before any Draw.
	Define(def Definition) error

	// BeginLayer and EndLayer bracket the primitives of one layer.
	BeginLayer(index int)
	EndLayer()

	// Draw renders one primitive.
	Draw(p *Primitive)

	// DrawError renders the inline error marker.
	DrawError(msg string)

	// End finalizes the output. Output methods can be used afterwards.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}
