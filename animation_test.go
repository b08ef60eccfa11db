package genvec

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/genvec/recording"
)

// animScene holds a circle, a line and a rectangle, in that order.
func animScene() *recording.Recording {
	rec := recording.NewRecorder(200, 200)
	style := recording.Style{
		Fill:        recording.Solid("#ff0000"),
		Stroke:      recording.Solid("#000000"),
		StrokeWidth: 2,
		Opacity:     0.8,
	}
	rec.Add(recording.Circle{CX: 50, CY: 50, R: 20}, style)
	rec.Add(recording.Line{X1: 0, Y1: 0, X2: 100, Y2: 100}, style)
	rec.Add(recording.Rectangle{X: 100, Y: 100, W: 40, H: 40}, style)
	return rec.Finish()
}

func TestWave(t *testing.T) {
	assert.InDelta(t, 0, wave(0), 1e-6)
	assert.InDelta(t, 1, wave(0.25), 1e-6)
	assert.InDelta(t, 0, wave(0.5), 1e-6)
	assert.InDelta(t, -1, wave(0.75), 1e-6)
}

func TestAnimatePulse(t *testing.T) {
	scene := animScene()
	a := NewAnimator(scene, AnimatePulse, 10)
	a.Apply(0.25)

	prims := scene.Primitives()
	assert.InDelta(t, 1.1, prims[0].Current.Scale, 1e-5)
	assert.Equal(t, prims[1].Base, prims[1].Current)
	assert.Equal(t, 1.0, prims[2].Current.Scale)
	assert.InDelta(t, 22, prims[0].Geometry().(recording.Circle).R, 1e-3)
}

func TestAnimateRotate(t *testing.T) {
	scene := animScene()
	NewAnimator(scene, AnimateRotate, 5).Apply(0.5)

	prims := scene.Primitives()
	assert.InDelta(t, 180, prims[0].Current.Spin, 1e-9)
	assert.Zero(t, prims[1].Current.Spin)
	assert.InDelta(t, 360, prims[2].Current.Spin, 1e-9)
}

func TestAnimateOpacity(t *testing.T) {
	scene := animScene()
	NewAnimator(scene, AnimateOpacity, 5).Apply(0.25)

	prims := scene.Primitives()
	assert.InDelta(t, 0.8, prims[0].Current.Opacity, 1e-5)
	assert.InDelta(t, 0.68, prims[2].Current.Opacity, 1e-5)
	assert.Equal(t, 0.8, prims[1].Current.Opacity)
}

func TestAnimateMorph(t *testing.T) {
	scene := animScene()
	NewAnimator(scene, AnimateMorph, 5).Apply(0.25)

	prims := scene.Primitives()
	assert.InDelta(t, 2.6, prims[0].Current.StrokeWidth, 1e-5)
	assert.InDelta(t, 2, prims[2].Current.StrokeWidth, 1e-5)
	assert.Equal(t, 2.0, prims[1].Current.StrokeWidth)
}

func TestAnimateIdempotentAndReset(t *testing.T) {
	scene := animScene()
	a := NewAnimator(scene, AnimateOpacity, 5)

	a.Apply(0.1)
	first := make([]recording.Attrs, 0, 3)
	for _, p := range scene.Primitives() {
		first = append(first, p.Current)
	}
	a.Apply(0.6)
	a.Apply(0.1)
	for i, p := range scene.Primitives() {
		assert.Equal(t, first[i], p.Current)
	}

	a.Reset()
	assert.Zero(t, a.Phase())
	for _, p := range scene.Primitives() {
		assert.Equal(t, p.Base, p.Current)
	}
}

func TestAnimatePhaseWraps(t *testing.T) {
	a := NewAnimator(animScene(), AnimatePulse, 5)
	a.Apply(1.25)
	assert.InDelta(t, 0.25, a.Phase(), 1e-9)
	a.Apply(-0.25)
	assert.InDelta(t, 0.75, a.Phase(), 1e-9)
}

func TestAnimatorUpdate(t *testing.T) {
	a := NewAnimator(animScene(), AnimatePulse, 5)
	assert.InDelta(t, 0.25, a.Update(1250*time.Millisecond), 1e-5)
	assert.InDelta(t, 0.5, a.Update(1250*time.Millisecond), 1e-5)
	// a full cycle later the phase is unchanged
	assert.InDelta(t, 0.5, a.Update(CycleSeconds*time.Second), 1e-5)
}

func TestAnimatorEmptyScene(t *testing.T) {
	a := NewAnimator(recording.NewRecorder(100, 100).Finish(), AnimateMorph, 5)
	assert.NotPanics(t, func() { a.Apply(0.3) })
}

func TestAnimatorStartStop(t *testing.T) {
	a := NewAnimator(animScene(), AnimateRotate, 5)
	require.True(t, a.Start(context.Background(), time.Millisecond))
	assert.False(t, a.Start(context.Background(), time.Millisecond))
	assert.True(t, a.Running())

	assert.Eventually(t, func() bool { return a.Phase() > 0 }, time.Second, time.Millisecond)

	a.Stop()
	assert.False(t, a.Running())
	phase := a.Phase()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, phase, a.Phase())

	a.Stop()
	assert.True(t, a.Start(context.Background(), time.Millisecond))
	a.Stop()
}

func TestAnimatorContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	a := NewAnimator(animScene(), AnimatePulse, 5)
	require.True(t, a.Start(ctx, time.Millisecond))

	cancel()
	assert.Eventually(t, func() bool { return !a.Running() }, time.Second, time.Millisecond)
	a.Stop()
}
