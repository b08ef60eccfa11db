package recording

import (
	"errors"
	"fmt"
)

// ErrDuplicateDefinition is returned when a definition id is registered twice.
var ErrDuplicateDefinition = errors.New("recording: duplicate definition")

// Definition is a reusable fill referenced through URL paints.
// This is a sealed interface; only types in this package implement it.
type Definition interface {
	DefID() string
	definitionMarker()
}

// Stop is a gradient color stop. Offset is a percentage in [0, 100].
type Stop struct {
	Offset  uint8
	Color   string
	Opacity float64
}

// LinearGradient runs from (X1, Y1) to (X2, Y2), all percentages of the
// filled shape's bounding box.
type LinearGradient struct {
	ID             string
	X1, Y1, X2, Y2 uint8
	Stops          []Stop
}

// RadialGradient has center (CX, CY), radius R and focal point (FX, FY),
// all percentages of the filled shape's bounding box. R may exceed 100.
type RadialGradient struct {
	ID                string
	CX, CY, R, FX, FY uint8
	Stops             []Stop
}

// TileElement is one shape drawn inside a pattern tile.
type TileElement struct {
	Shape       Shape
	Fill        Paint
	Stroke      Paint
	StrokeWidth float64
}

// TilePattern is a square tile of Size user units repeated over the filled
// area, rotated by Rotate degrees and scaled by Scale.
type TilePattern struct {
	ID                string
	Size              int
	Rotate            float64
	Scale             float64
	Background        string
	BackgroundOpacity float64
	Elements          []TileElement
}

func (g *LinearGradient) DefID() string { return g.ID }
func (g *RadialGradient) DefID() string { return g.ID }
func (t *TilePattern) DefID() string    { return t.ID }

func (*LinearGradient) definitionMarker() {}
func (*RadialGradient) definitionMarker() {}
func (*TilePattern) definitionMarker()    {}

// Defs is the definitions registry for one generation pass. Definitions
// keep their insertion order for playback.
//
// Defs is not safe for concurrent use.
type Defs struct {
	order []Definition
	byID  map[string]Definition
}

// NewDefs creates an empty registry.
func NewDefs() *Defs {
	return &Defs{byID: make(map[string]Definition)}
}

// Add registers d under its id.
func (d *Defs) Add(def Definition) error {
	id := def.DefID()
	if id == "" {
		return errors.New("recording: definition without id")
	}
	if _, dup := d.byID[id]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateDefinition, id)
	}
	d.byID[id] = def
	d.order = append(d.order, def)
	return nil
}

// Get returns the definition registered under id.
func (d *Defs) Get(id string) (Definition, bool) {
	def, ok := d.byID[id]
	return def, ok
}

// All returns the definitions in insertion order.
func (d *Defs) All() []Definition {
	out := make([]Definition, len(d.order))
	copy(out, d.order)
	return out
}

// Len returns the number of definitions.
func (d *Defs) Len() int {
	return len(d.order)
}

// Clear removes every definition.
func (d *Defs) Clear() {
	d.order = d.order[:0]
	clear(d.byID)
}

// Resolve returns the definition a paint refers to, if any.
func (d *Defs) Resolve(p Paint) (Definition, bool) {
	if p.Kind != PaintRef {
		return nil, false
	}
	return d.Get(p.Ref)
}
