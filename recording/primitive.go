package recording

// Rotation is a rotation by Angle degrees about (CX, CY).
type Rotation struct {
	Angle  float64
	CX, CY float64
}

// Attrs are the animatable attributes of a primitive.
type Attrs struct {
	StrokeWidth float64
	Opacity     float64
	// Scale multiplies a circle's radius. Other shapes ignore it.
	Scale float64
	// Spin is an extra rotation in degrees about the shape's bounding box
	// center, applied after the primitive's own rotation.
	Spin float64
}

// Primitive is one emitted shape.
//
// Base holds the attributes computed by the generator and is never changed
// after creation. Current starts as a copy of Base and is what backends
// draw; animation recomputes it from Base on every tick.
type Primitive struct {
	ID       int
	Layer    int
	Shape    Shape
	Fill     Paint
	Stroke   Paint
	Rotation *Rotation
	Base     Attrs
	Current  Attrs
}

// Style carries the paint and attributes of a new primitive.
type Style struct {
	Fill        Paint
	Stroke      Paint
	StrokeWidth float64
	Opacity     float64
	Rotation    *Rotation
}

// Reset restores Current from Base.
func (p *Primitive) Reset() {
	p.Current = p.Base
}

// Center returns the center of the untransformed bounding box.
func (p *Primitive) Center() (float64, float64) {
	return p.Shape.Bounds().Center()
}

// Transform returns the full transform of the primitive: its own rotation
// followed by the animated spin.
func (p *Primitive) Transform() Matrix {
	m := Identity()
	if p.Rotation != nil && p.Rotation.Angle != 0 {
		m = RotateAbout(p.Rotation.Angle, p.Rotation.CX, p.Rotation.CY)
	}
	if p.Current.Spin != 0 {
		cx, cy := p.Center()
		m = m.Multiply(RotateAbout(p.Current.Spin, cx, cy))
	}
	return m
}

// Geometry returns the shape with Current.Scale applied.
func (p *Primitive) Geometry() Shape {
	if c, ok := p.Shape.(Circle); ok && p.Current.Scale > 0 && p.Current.Scale != 1 {
		c.R *= p.Current.Scale
		return c
	}
	return p.Shape
}
