// Package recording is the drawing surface of the generators.
//
// Generators append primitives (circle, rect, ellipse, polygon, line, path)
// to a Recorder and register gradient and tile-pattern definitions in its
// Defs registry. Finishing the Recorder yields a Recording that can be
// played back to any registered Backend.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	rec.BeginLayer(0)
//	rec.Add(recording.Circle{CX: 400, CY: 300, R: 50}, recording.Style{
//	    Fill:        recording.Solid("#3366ff"),
//	    Stroke:      recording.Solid("#000000"),
//	    StrokeWidth: 1,
//	    Opacity:     0.8,
//	})
//	r := rec.Finish()
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/genvec/recording/backends/svg"
//
//	b, err := recording.NewBackend("svg")
//	if err != nil {
//	    return err
//	}
//	if err := r.Playback(b); err != nil {
//	    return err
//	}
//	b.(recording.WriterBackend).WriteTo(os.Stdout)
//
// # Backend Registration
//
// Backends register themselves in init(), following the database/sql
// driver pattern:
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return New()
//	    })
//	}
//
// # Animation
//
// Every Primitive keeps the attributes its generator computed in Base and
// the attributes to draw in Current. Animation only ever rewrites Current
// from Base, so it is idempotent and Recording.Reset restores the scene.
package recording
