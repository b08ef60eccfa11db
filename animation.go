package genvec

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/gogpu/genvec/recording"
)

// Animation timing.
const (
	// CycleSeconds is the length of one animation cycle.
	CycleSeconds = 5

	// DefaultFrameInterval is the tick interval used when Start is given a
	// non-positive interval.
	DefaultFrameInterval = time.Second / 60
)

// Animator varies the Current attributes of a recording's primitives on a
// fixed cycle. Every tick recomputes Current from Base, so applying the same
// phase twice yields the same scene and Reset restores the generated one.
//
// Lines are never animated. Element i of n animated primitives runs at
// phase (p + i/n*0.5) mod 1, where p is the cycle phase.
//
// All methods are safe for concurrent use.
type Animator struct {
	mu         sync.Mutex
	rec        *recording.Recording
	kind       AnimationKind
	complexity int
	cycle      *gween.Tween
	elapsed    float64
	phase      float64

	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewAnimator returns an Animator for rec. complexity scales the pulse
// amplitude.
func NewAnimator(rec *recording.Recording, kind AnimationKind, complexity int) *Animator {
	return &Animator{
		rec:        rec,
		kind:       kind,
		complexity: complexity,
		cycle:      gween.New(0, 1, CycleSeconds, ease.Linear),
	}
}

// Kind returns the animation kind.
func (a *Animator) Kind() AnimationKind { return a.kind }

// Phase returns the current cycle phase in [0, 1).
func (a *Animator) Phase() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// Apply sets the cycle phase and recomputes every primitive.
func (a *Animator) Apply(phase float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.apply(phase)
}

// Update advances the cycle by dt and applies the new phase, which it
// returns.
func (a *Animator) Update(dt time.Duration) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.advance(dt)
	return a.phase
}

// Reset rewinds the cycle and restores every primitive's Base attributes.
func (a *Animator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.elapsed = 0
	a.phase = 0
	a.cycle.Reset()
	a.rec.Reset()
}

// View calls fn with the recording while no tick can modify it.
func (a *Animator) View(fn func(*recording.Recording) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fn(a.rec)
}

// Running reports whether the tick loop is active.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Start runs the tick loop in a goroutine until Stop is called or ctx is
// done. It returns false if the loop is already running.
func (a *Animator) Start(ctx context.Context, interval time.Duration) bool {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return false
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.running = true
	a.cancel = cancel
	a.done = done
	a.mu.Unlock()

	Logger().Info("genvec: animation started", "kind", a.kind, "interval", interval)
	go a.loop(ctx, interval, done)
	return true
}

// Stop ends the tick loop and waits for it to exit. The primitives keep
// their last animated attributes; call Reset to restore them.
func (a *Animator) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	a.running = false
	cancel, done := a.cancel, a.done
	a.mu.Unlock()

	cancel()
	<-done
	Logger().Info("genvec: animation stopped", "kind", a.kind)
}

func (a *Animator) loop(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			a.mu.Lock()
			a.running = false
			a.mu.Unlock()
			return
		case now := <-ticker.C:
			a.mu.Lock()
			if !a.running {
				a.mu.Unlock()
				return
			}
			a.advance(now.Sub(last))
			a.mu.Unlock()
			last = now
		}
	}
}

func (a *Animator) advance(dt time.Duration) {
	a.elapsed = math.Mod(a.elapsed+dt.Seconds(), CycleSeconds)
	phase, _ := a.cycle.Set(float32(a.elapsed))
	a.apply(float64(phase))
}

func (a *Animator) apply(phase float64) {
	phase = math.Mod(phase, 1)
	if phase < 0 {
		phase++
	}
	a.phase = phase

	prims := a.rec.Primitives()
	animated := make([]*recording.Primitive, 0, len(prims))
	for _, p := range prims {
		p.Reset()
		if p.Shape.Kind() != recording.KindLine {
			animated = append(animated, p)
		}
	}

	n := float64(len(animated))
	for i, p := range animated {
		own := math.Mod(phase+float64(i)/n*0.5, 1)
		s := wave(own)
		switch a.kind {
		case AnimatePulse:
			if p.Shape.Kind() == recording.KindCircle {
				p.Current.Scale = 1 + s*0.1*(float64(a.complexity)/10)
			}
		case AnimateRotate:
			p.Current.Spin = phase * 360 * float64(i%3+1)
		case AnimateOpacity:
			p.Current.Opacity = clampFloat(p.Base.Opacity*(0.7+(s+1)*0.15), 0.1, 1)
		case AnimateMorph:
			if p.Base.StrokeWidth > 0 {
				p.Current.StrokeWidth = math.Max(0.1, p.Base.StrokeWidth*(1+s*0.3))
			}
		}
	}
}

// wave returns sin(2*pi*p) built from the sine easing curve:
// InOutSine(x, 0, 1, 1) = (1 - cos(pi*x)) / 2, and
// sin(2*pi*p) = cos(pi*(2p - 0.5)).
func wave(p float64) float64 {
	return 1 - 2*float64(ease.InOutSine(float32(2*p-0.5), 0, 1, 1))
}
