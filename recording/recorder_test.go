package recording

import (
	"errors"
	"testing"
)

// mockBackend records the calls it receives.
type mockBackend struct {
	calls   []string
	defined []string
	drawn   []int
	bg      string
	w, h    int
	errMsg  string
	failOn  string
}

func (b *mockBackend) Begin(w, h int, bg string) error {
	b.calls = append(b.calls, "begin")
	b.w, b.h, b.bg = w, h, bg
	if b.failOn == "begin" {
		return errors.New("begin failed")
	}
	return nil
}

func (b *mockBackend) Define(def Definition) error {
	b.calls = append(b.calls, "define")
	b.defined = append(b.defined, def.DefID())
	return nil
}

func (b *mockBackend) BeginLayer(int) { b.calls = append(b.calls, "layer") }
func (b *mockBackend) EndLayer()      { b.calls = append(b.calls, "endlayer") }

func (b *mockBackend) Draw(p *Primitive) {
	b.calls = append(b.calls, "draw")
	b.drawn = append(b.drawn, p.ID)
}

func (b *mockBackend) DrawError(msg string) {
	b.calls = append(b.calls, "error")
	b.errMsg = msg
}

func (b *mockBackend) End() error {
	b.calls = append(b.calls, "end")
	return nil
}

func solidStyle() Style {
	return Style{Fill: Solid("#ff0000"), Stroke: Solid("#000000"), StrokeWidth: 2, Opacity: 0.5}
}

func TestRecorderLayersAndPlayback(t *testing.T) {
	rec := NewRecorder(320, 240)
	rec.SetBackground("#101010")
	if err := rec.Defs().Add(&LinearGradient{ID: "g1"}); err != nil {
		t.Fatal(err)
	}
	rec.BeginLayer(0)
	rec.Add(Circle{CX: 1, CY: 1, R: 1}, solidStyle())
	rec.Add(Rectangle{W: 1, H: 1}, solidStyle())
	rec.BeginLayer(1)
	rec.Add(Line{X2: 1}, solidStyle())
	r := rec.Finish()

	if got := len(r.Layers()); got != 2 {
		t.Fatalf("layers = %d, want 2", got)
	}
	if l := r.Layers()[1]; l.Start != 2 || l.End != 3 || l.Index != 1 {
		t.Errorf("layer 1 = %+v", l)
	}
	if r.Primitives()[2].Layer != 1 {
		t.Errorf("primitive 2 layer = %d, want 1", r.Primitives()[2].Layer)
	}

	b := &mockBackend{}
	if err := r.Playback(b); err != nil {
		t.Fatal(err)
	}
	want := []string{"begin", "define", "layer", "draw", "draw", "endlayer", "layer", "draw", "endlayer", "end"}
	if len(b.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", b.calls, want)
	}
	for i := range want {
		if b.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", b.calls, want)
		}
	}
	if b.bg != "#101010" || b.w != 320 || b.h != 240 {
		t.Errorf("Begin got %dx%d bg %s", b.w, b.h, b.bg)
	}
}

func TestRecorderImplicitLayer(t *testing.T) {
	rec := NewRecorder(10, 10)
	p := rec.Add(Circle{R: 1}, solidStyle())
	if p.Layer != 0 || len(rec.Finish().Layers()) != 1 {
		t.Error("Add without BeginLayer should open layer 0")
	}
}

func TestRecorderErrorMarker(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.BeginLayer(0)
	rec.Add(Circle{R: 1}, solidStyle())
	rec.MarkError("boom")
	r := rec.Finish()
	if r.Err() != "boom" {
		t.Errorf("Err() = %q", r.Err())
	}
	b := &mockBackend{}
	if err := r.Playback(b); err != nil {
		t.Fatal(err)
	}
	if b.errMsg != "boom" || b.calls[len(b.calls)-2] != "error" {
		t.Errorf("error marker not drawn last: %v", b.calls)
	}
}

func TestPlaybackBeginError(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.Add(Circle{R: 1}, solidStyle())
	b := &mockBackend{failOn: "begin"}
	if err := rec.Finish().Playback(b); err == nil {
		t.Fatal("Playback() error = nil, want begin error")
	}
	if len(b.drawn) != 0 {
		t.Error("nothing should be drawn after Begin fails")
	}
}

func TestRecorderClear(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.Add(Circle{R: 1}, solidStyle())
	_ = rec.Defs().Add(&TilePattern{ID: "p"})
	rec.MarkError("x")
	rec.Clear()
	r := rec.Finish()
	if rec.Len() != 0 || r.Defs().Len() != 0 || r.Err() != "" || len(r.Layers()) != 0 {
		t.Error("Clear() left state behind")
	}
}

func TestPrimitiveBaseAndCurrent(t *testing.T) {
	rec := NewRecorder(10, 10)
	rot := &Rotation{Angle: 10, CX: 1, CY: 1}
	st := solidStyle()
	st.Rotation = rot
	p := rec.Add(Circle{CX: 5, CY: 5, R: 2}, st)
	rot.Angle = 99
	if p.Rotation.Angle != 10 {
		t.Error("Add must copy the rotation")
	}
	if p.Base != p.Current || p.Base.Scale != 1 {
		t.Errorf("Base = %+v, Current = %+v", p.Base, p.Current)
	}

	p.Current.Scale = 2
	p.Current.Spin = 45
	if c := p.Geometry().(Circle); c.R != 4 {
		t.Errorf("scaled radius = %v, want 4", c.R)
	}
	if p.Transform().IsIdentity() {
		t.Error("Transform() should include rotation and spin")
	}
	p.Reset()
	if p.Current != p.Base {
		t.Error("Reset() should restore Base")
	}
	if c := p.Geometry().(Circle); c.R != 2 {
		t.Errorf("reset radius = %v, want 2", c.R)
	}
}

func TestDefsRegistry(t *testing.T) {
	d := NewDefs()
	if err := d.Add(&RadialGradient{ID: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := d.Add(&TilePattern{ID: "b"}); err != nil {
		t.Fatal(err)
	}
	err := d.Add(&LinearGradient{ID: "a"})
	if !errors.Is(err, ErrDuplicateDefinition) {
		t.Errorf("duplicate Add() error = %v, want ErrDuplicateDefinition", err)
	}
	if err := d.Add(&LinearGradient{}); err == nil {
		t.Error("Add() without id should fail")
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
	all := d.All()
	if all[0].DefID() != "a" || all[1].DefID() != "b" {
		t.Errorf("order = %v, %v", all[0].DefID(), all[1].DefID())
	}
	if _, ok := d.Resolve(URL("b")); !ok {
		t.Error("Resolve(url(#b)) failed")
	}
	if _, ok := d.Resolve(Solid("#fff")); ok {
		t.Error("Resolve(solid) should fail")
	}
	d.Clear()
	if _, ok := d.Get("a"); ok || d.Len() != 0 {
		t.Error("Clear() left definitions")
	}
}
