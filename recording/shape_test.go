package recording

import (
	"math"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindCircle, "circle"},
		{KindRectangle, "rect"},
		{KindEllipse, "ellipse"},
		{KindPolygon, "polygon"},
		{KindLine, "line"},
		{KindPath, "path"},
		{Kind(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestShapeBounds(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  Rect
	}{
		{"circle", Circle{CX: 10, CY: 10, R: 5}, Rect{5, 5, 15, 15}},
		{"rect", Rectangle{X: 1, Y: 2, W: 3, H: 4}, Rect{1, 2, 4, 6}},
		{"ellipse", Ellipse{CX: 0, CY: 0, RX: 2, RY: 1}, Rect{-2, -1, 2, 1}},
		{"line", Line{X1: 5, Y1: 0, X2: 0, Y2: 5}, Rect{0, 0, 5, 5}},
		{"polygon", Polygon{Points: []Point{{0, 0}, {4, 1}, {2, 3}}}, Rect{0, 0, 4, 3}},
		{"path", NewPath().MoveTo(0, 0).CubicTo(10, -5, 20, 5, 30, 0), Rect{0, -5, 30, 5}},
		{"arc", NewPath().Arc(50, 50, 10, 0, math.Pi), Rect{40, 40, 60, 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.shape.Bounds()
			if !almostEqual(got.MinX, tt.want.MinX) || !almostEqual(got.MinY, tt.want.MinY) ||
				!almostEqual(got.MaxX, tt.want.MaxX) || !almostEqual(got.MaxY, tt.want.MaxY) {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRegularPolygon(t *testing.T) {
	p := RegularPolygon(0, 0, 2, 4, 0)
	if len(p.Points) != 4 {
		t.Fatalf("len = %d, want 4", len(p.Points))
	}
	want := []Point{{2, 0}, {0, 2}, {-2, 0}, {0, -2}}
	for i, w := range want {
		if !almostEqual(p.Points[i].X, w.X) || !almostEqual(p.Points[i].Y, w.Y) {
			t.Errorf("point %d = %+v, want %+v", i, p.Points[i], w)
		}
	}
}

func TestPathArcStartsSubPath(t *testing.T) {
	p := NewPath().Arc(0, 0, 1, 0, math.Pi/2)
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	if p.Segments[0].Verb != VerbMoveTo || !almostEqual(p.Segments[0].Pts[0].X, 1) {
		t.Errorf("first segment = %+v, want MoveTo(1, 0)", p.Segments[0])
	}
	end := p.Segments[1].ArcEnd()
	if !almostEqual(end.X, 0) || !almostEqual(end.Y, 1) {
		t.Errorf("ArcEnd() = %+v, want (0, 1)", end)
	}
}

func TestPolyline(t *testing.T) {
	p := Polyline([]Point{{0, 0}, {1, 1}, {2, 0}})
	if p.Len() != 3 || p.Segments[0].Verb != VerbMoveTo || p.Segments[2].Verb != VerbLineTo {
		t.Errorf("Polyline segments = %+v", p.Segments)
	}
}

func TestPaintString(t *testing.T) {
	tests := []struct {
		paint Paint
		want  string
	}{
		{NoPaint(), "none"},
		{Paint{}, "none"},
		{Solid("#abcdef"), "#abcdef"},
		{URL("gradient-1"), "url(#gradient-1)"},
	}
	for _, tt := range tests {
		if got := tt.paint.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if !NoPaint().IsNone() {
		t.Error("NoPaint().IsNone() = false")
	}
}
