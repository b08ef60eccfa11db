package recording

// PaintKind distinguishes the three ways a fill or stroke can be painted.
type PaintKind uint8

// Paint kinds.
const (
	PaintNone PaintKind = iota
	PaintSolid
	PaintRef
)

// Paint is a fill or stroke reference: nothing, a solid hex color, or an
// indirection to a definition in the registry.
// The zero value is PaintNone.
type Paint struct {
	Kind  PaintKind
	Color string // hex color for PaintSolid
	Ref   string // definition id for PaintRef
}

// NoPaint returns the "no fill" marker.
func NoPaint() Paint {
	return Paint{Kind: PaintNone}
}

// Solid returns a solid color paint.
func Solid(hex string) Paint {
	return Paint{Kind: PaintSolid, Color: hex}
}

// URL returns a paint referencing the definition with the given id.
func URL(id string) Paint {
	return Paint{Kind: PaintRef, Ref: id}
}

// IsNone reports whether p paints nothing.
func (p Paint) IsNone() bool {
	return p.Kind == PaintNone
}

// String renders p as an SVG paint value: "none", the hex color, or
// "url(#id)".
func (p Paint) String() string {
	switch p.Kind {
	case PaintSolid:
		return p.Color
	case PaintRef:
		return "url(#" + p.Ref + ")"
	default:
		return "none"
	}
}
