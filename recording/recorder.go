package recording

// Layer is a contiguous run of primitives emitted by one generator pass.
type Layer struct {
	Index      int
	Start, End int // primitive index range [Start, End)
}

// Recorder is the drawing surface handed to generators. Primitives are
// appended in drawing order and grouped into layers; fill definitions live
// in the registry returned by Defs.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	rec.BeginLayer(0)
//	rec.Add(recording.Circle{CX: 100, CY: 100, R: 50}, recording.Style{
//	    Fill:        recording.Solid("#ff0000"),
//	    StrokeWidth: 1,
//	    Opacity:     1,
//	})
//	r := rec.Finish()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	background    string
	prims         []*Primitive
	layers        []Layer
	defs          *Defs
	errMsg        string
}

// NewRecorder creates a Recorder for a width x height viewport.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:      width,
		height:     height,
		background: "#ffffff",
		prims:      make([]*Primitive, 0, 256),
		defs:       NewDefs(),
	}
}

// Width returns the viewport width.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the viewport height.
func (r *Recorder) Height() int {
	return r.height
}

// SetBackground sets the background color.
func (r *Recorder) SetBackground(hex string) {
	r.background = hex
}

// Background returns the background color.
func (r *Recorder) Background() string {
	return r.background
}

// Defs returns the definitions registry.
func (r *Recorder) Defs() *Defs {
	return r.defs
}

// BeginLayer closes the current layer, if any, and starts a new one.
func (r *Recorder) BeginLayer(index int) {
	r.closeLayer()
	r.layers = append(r.layers, Layer{Index: index, Start: len(r.prims), End: -1})
}

func (r *Recorder) closeLayer() {
	if n := len(r.layers); n > 0 && r.layers[n-1].End < 0 {
		r.layers[n-1].End = len(r.prims)
	}
}

// Add appends a primitive and returns it. A layer 0 is opened implicitly
// when none is active.
func (r *Recorder) Add(shape Shape, style Style) *Primitive {
	if len(r.layers) == 0 {
		r.BeginLayer(0)
	}
	layer := r.layers[len(r.layers)-1].Index
	attrs := Attrs{
		StrokeWidth: style.StrokeWidth,
		Opacity:     style.Opacity,
		Scale:       1,
	}
	var rot *Rotation
	if style.Rotation != nil {
		cp := *style.Rotation
		rot = &cp
	}
	p := &Primitive{
		ID:       len(r.prims),
		Layer:    layer,
		Shape:    shape,
		Fill:     style.Fill,
		Stroke:   style.Stroke,
		Rotation: rot,
		Base:     attrs,
		Current:  attrs,
	}
	r.prims = append(r.prims, p)
	return p
}

// Len returns the number of primitives recorded so far.
func (r *Recorder) Len() int {
	return len(r.prims)
}

// MarkError records an inline error marker shown after all layers.
func (r *Recorder) MarkError(msg string) {
	r.errMsg = msg
}

// Clear removes every primitive, layer, definition and error marker.
func (r *Recorder) Clear() {
	r.prims = r.prims[:0]
	r.layers = r.layers[:0]
	r.defs.Clear()
	r.errMsg = ""
}

// Finish returns the Recording. The Recorder should not be used afterwards.
func (r *Recorder) Finish() *Recording {
	r.closeLayer()
	return &Recording{
		width:      r.width,
		height:     r.height,
		background: r.background,
		prims:      r.prims,
		layers:     r.layers,
		defs:       r.defs,
		errMsg:     r.errMsg,
	}
}

// Recording is a finished scene. Its geometry is immutable; only the
// Current attributes of its primitives change, during animation.
type Recording struct {
	width, height int
	background    string
	prims         []*Primitive
	layers        []Layer
	defs          *Defs
	errMsg        string
}

// Width returns the viewport width.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the viewport height.
func (r *Recording) Height() int {
	return r.height
}

// Background returns the background color.
func (r *Recording) Background() string {
	return r.background
}

// Primitives returns the primitives in drawing order.
func (r *Recording) Primitives() []*Primitive {
	return r.prims
}

// Layers returns the layer ranges.
func (r *Recording) Layers() []Layer {
	return r.layers
}

// Defs returns the definitions registry.
func (r *Recording) Defs() *Defs {
	return r.defs
}

// Err returns the inline error marker text, or "" when generation succeeded.
func (r *Recording) Err() string {
	return r.errMsg
}

// Reset restores every primitive's Current attributes from Base.
func (r *Recording) Reset() {
	for _, p := range r.prims {
		p.Reset()
	}
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height, r.background); err != nil {
		return err
	}
	for _, def := range r.defs.All() {
		if err := backend.Define(def); err != nil {
			return err
		}
	}
	for _, l := range r.layers {
		backend.BeginLayer(l.Index)
		for _, p := range r.prims[l.Start:l.End] {
			backend.Draw(p)
		}
		backend.EndLayer()
	}
	if r.errMsg != "" {
		backend.DrawError(r.errMsg)
	}
	return backend.End()
}
