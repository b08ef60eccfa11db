package genvec

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/genvec/palette"
	"github.com/gogpu/genvec/recording"
	_ "github.com/gogpu/genvec/recording/backends/raster"
)

var testCatalog = palette.NewCatalog(map[string][]palette.Color{
	"Ocean": {
		{Name: "deep", Hex: "#003366"},
		{Name: "teal", Hex: "#008080"},
		{Name: "foam", Hex: "#e0ffff"},
	},
})

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(context.Background(), NewEngine(WithClock(fixedClock)), testCatalog)
	s.SetFrameInterval(time.Millisecond)
	t.Cleanup(s.Close)
	return s
}

func seededOptions(p Pattern) Options {
	o := DefaultOptions()
	o.Pattern = p
	o.Seed = Float(42)
	return o
}

func TestSessionBeforeGenerate(t *testing.T) {
	s := newTestSession(t)
	var buf bytes.Buffer
	assert.ErrorIs(t, s.Render("svg", &buf), ErrNoScene)
	_, err := s.Snapshot()
	assert.ErrorIs(t, err, ErrNoScene)
	assert.Nil(t, s.Report())
	assert.Zero(t, s.Revision())
	assert.False(t, s.Animating())
}

func TestSessionGenerateAndRender(t *testing.T) {
	s := newTestSession(t)
	rep, err := s.Generate(seededOptions(PatternGrid), PaletteSelection{Category: "ocean"})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Generations())
	assert.Same(t, rep, s.Report())

	var svgOut bytes.Buffer
	require.NoError(t, s.Render("svg", &svgOut))
	assert.Contains(t, svgOut.String(), "<svg")
	assert.Contains(t, svgOut.String(), "#003366")

	var pngOut bytes.Buffer
	require.NoError(t, s.Render("png", &pngOut))
	assert.True(t, bytes.HasPrefix(pngOut.Bytes(), []byte("\x89PNG")))

	assert.ErrorIs(t, s.Render("pdf", &pngOut), recording.ErrUnknownBackend)

	_, err = s.Generate(seededOptions(PatternTrig), PaletteSelection{Category: "ocean"})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Generations())
}

func TestSessionSnapshot(t *testing.T) {
	s := newTestSession(t)
	s.CaptureX(12)
	_, err := s.Generate(seededOptions(PatternFibonacci), PaletteSelection{Category: "Ocean"})
	require.NoError(t, err)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, fixedClock().UTC(), snap.Timestamp)
	assert.Equal(t, 1, snap.GenerationCount)
	assert.Equal(t, PatternFibonacci, snap.OptionsUsed.Pattern)
	assert.Equal(t, palette.Palette{"#003366", "#008080", "#e0ffff"}, snap.Palette)
	require.NotNil(t, snap.MathProperties)
	assert.Equal(t, PatternFibonacci, snap.MathProperties.Pattern)
	require.NotNil(t, snap.CapturedCoordinates.X)
	assert.Equal(t, 12.0, *snap.CapturedCoordinates.X)

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "generationCount")
	assert.Contains(t, doc, "optionsUsed")
	assert.Contains(t, doc, "mathProperties")
	assert.Contains(t, doc, "capturedCoordinates")
	props := doc["mathProperties"].(map[string]any)
	assert.Equal(t, "fibonacci", props["generator"])
}

func TestSessionUnknownCategoryUsesFallback(t *testing.T) {
	s := newTestSession(t)
	_, err := s.Generate(seededOptions(PatternRandom), PaletteSelection{Category: "nope"})
	require.NoError(t, err)
	snap, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, palette.Fallback, snap.Palette)
}

func TestSessionCapturedFlowsIntoBezier(t *testing.T) {
	s := newTestSession(t)
	s.CaptureX(10)
	s.CaptureY(20)
	s.CaptureV(300, 400)

	rep, err := s.Generate(seededOptions(PatternBezier), PaletteSelection{})
	require.NoError(t, err)
	assert.Equal(t, true, rep.Layers[0].Metric("captured"))

	s.ClearCaptured()
	assert.Equal(t, Captured{}, s.Captured())
	rep, err = s.Generate(seededOptions(PatternBezier), PaletteSelection{})
	require.NoError(t, err)
	assert.Equal(t, false, rep.Layers[0].Metric("captured"))
}

func TestSessionCursorSeed(t *testing.T) {
	s := newTestSession(t)
	s.SetCursor(100, 200)
	o := DefaultOptions()
	o.UseCursorSeed = true

	rep, err := s.Generate(o, PaletteSelection{})
	require.NoError(t, err)
	want := DeriveSeed(SeedInputs{Now: fixedClock(), UseCursor: true, Cursor: &Point{X: 100, Y: 200}})
	assert.True(t, rep.Seeded)
	assert.InDelta(t, want, rep.Seed, 1e-6)
}

func TestSessionAnimation(t *testing.T) {
	s := newTestSession(t)
	o := seededOptions(PatternRandom)
	o.Animation = Animation{Enabled: true, Kind: AnimateRotate}

	_, err := s.Generate(o, PaletteSelection{})
	require.NoError(t, err)
	assert.True(t, s.Animating())

	var buf bytes.Buffer
	require.NoError(t, s.Render("svg", &buf))

	// a new generation replaces the running animation
	o.Animation.Enabled = false
	_, err = s.Generate(o, PaletteSelection{})
	require.NoError(t, err)
	assert.False(t, s.Animating())

	o.Animation.Enabled = true
	_, err = s.Generate(o, PaletteSelection{})
	require.NoError(t, err)
	assert.True(t, s.Animating())
	s.StopAnimation()
	assert.False(t, s.Animating())
}

func TestSessionFailureNotCounted(t *testing.T) {
	orig := generators[PatternPrime]
	t.Cleanup(func() { generators[PatternPrime] = orig })
	generators[PatternPrime] = func(*Canvas) Report { panic("bad prime") }

	s := newTestSession(t)
	rep, err := s.Generate(seededOptions(PatternPrime), PaletteSelection{})
	require.ErrorIs(t, err, ErrGenerationFailed)
	assert.Zero(t, s.Generations())
	assert.Equal(t, uint64(1), s.Revision())
	assert.False(t, rep.OK())

	var buf bytes.Buffer
	require.NoError(t, s.Render("svg", &buf))
	assert.Contains(t, buf.String(), "bad prime")
}
