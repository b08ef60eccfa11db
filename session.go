package genvec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gogpu/genvec/palette"
	"github.com/gogpu/genvec/recording"
	"github.com/gogpu/genvec/rng"
)

// ErrNoScene is returned when a session is asked for its scene before the
// first successful Generate.
var ErrNoScene = errors.New("genvec: no scene generated")

// PaletteSelection names a catalog category and a palette selector.
type PaletteSelection struct {
	Category string `json:"category" yaml:"category"`
	Selector string `json:"selector" yaml:"selector"`
}

// Captured holds the captured pointer coordinates.
type Captured struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	V *Point   `json:"v"`
}

// Snapshot is the JSON metadata export of a session.
type Snapshot struct {
	Timestamp           time.Time       `json:"timestamp"`
	GenerationCount     int             `json:"generationCount"`
	OptionsUsed         Options         `json:"optionsUsed"`
	Palette             palette.Palette `json:"palette"`
	MathProperties      *SceneReport    `json:"mathProperties"`
	CapturedCoordinates Captured        `json:"capturedCoordinates"`
}

// Session is the state a user interface keeps between generations: the
// last scene and report, the generation count, pointer and captured
// coordinates, and the running animation.
//
// A new Generate stops any running animation before building the scene.
// All methods are safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	engine   *Engine
	catalog  *palette.Catalog
	ctx      context.Context
	interval time.Duration

	generations int
	revision    uint64
	options     Options
	palette     palette.Palette
	scene       *recording.Recording
	report      *SceneReport
	animator    *Animator

	cursor   *Point
	captured Captured
}

// NewSession returns a session generating with engine and resolving
// palettes from catalog. Animations run until ctx is done or the session
// is closed. Nil arguments select context.Background, NewEngine and
// palette.DefaultCatalog.
func NewSession(ctx context.Context, engine *Engine, catalog *palette.Catalog) *Session {
	if ctx == nil {
		ctx = context.Background()
	}
	if engine == nil {
		engine = NewEngine()
	}
	if catalog == nil {
		catalog = palette.DefaultCatalog()
	}
	return &Session{
		engine:   engine,
		catalog:  catalog,
		ctx:      ctx,
		interval: DefaultFrameInterval,
	}
}

// SetFrameInterval sets the animation tick interval of later generations.
func (s *Session) SetFrameInterval(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d > 0 {
		s.interval = d
	}
}

// Catalog returns the palette catalog.
func (s *Session) Catalog() *palette.Catalog {
	return s.catalog
}

// Generate stops the running animation, resolves the palette, fills in the
// session's pointer and captured coordinates where opts has none, and
// builds a new scene. On a generation failure the partial scene still
// replaces the previous one; only successful generations are counted.
// Animation starts when opts enable it.
func (s *Session) Generate(opts Options, sel PaletteSelection) (*SceneReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopAnimation()

	if opts.Cursor == nil {
		opts.Cursor = s.cursor
	}
	if opts.CapturedX == nil {
		opts.CapturedX = s.captured.X
	}
	if opts.CapturedY == nil {
		opts.CapturedY = s.captured.Y
	}
	if opts.CapturedV == nil {
		opts.CapturedV = s.captured.V
	}
	opts = opts.Normalize()

	pal := s.catalog.Resolve(sel.Category, sel.Selector, rng.New(nil))
	scene, report, err := s.engine.Generate(opts, pal)

	s.revision++
	s.options = opts
	s.palette = pal
	s.scene = scene
	s.report = report
	s.animator = NewAnimator(scene, opts.Animation.Kind, opts.Complexity)
	if err != nil {
		return report, err
	}
	s.generations++

	if opts.Animation.Enabled {
		s.animator.Start(s.ctx, s.interval)
	}
	return report, nil
}

// Revision returns a counter that changes whenever the scene is replaced,
// including by a failed generation. It is 0 before the first Generate.
func (s *Session) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// Report returns the last report, or nil.
func (s *Session) Report() *SceneReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

// Generations returns the number of successful generations.
func (s *Session) Generations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations
}

// Animating reports whether an animation is running.
func (s *Session) Animating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.animator != nil && s.animator.Running()
}

// StopAnimation stops the running animation, if any.
func (s *Session) StopAnimation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopAnimation()
}

func (s *Session) stopAnimation() {
	if s.animator != nil {
		s.animator.Stop()
	}
}

// SetCursor records the live pointer position used for cursor seeding.
func (s *Session) SetCursor(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = &Point{X: x, Y: y}
}

// CaptureX captures an X coordinate.
func (s *Session) CaptureX(x float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.captured.X = &x
}

// CaptureY captures a Y coordinate.
func (s *Session) CaptureY(y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.captured.Y = &y
}

// CaptureV captures a two-coordinate vector.
func (s *Session) CaptureV(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.captured.V = &Point{X: x, Y: y}
}

// ClearCaptured forgets all captured coordinates.
func (s *Session) ClearCaptured() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.captured = Captured{}
}

// Captured returns the captured coordinates.
func (s *Session) Captured() Captured {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captured
}

// Render plays the last scene, in its current animation state, back to
// the named backend and writes the output to w.
func (s *Session) Render(format string, w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scene == nil {
		return ErrNoScene
	}
	b, err := recording.NewBackend(format)
	if err != nil {
		return err
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return fmt.Errorf("genvec: backend %q cannot write to a stream", format)
	}
	return s.animator.View(func(rec *recording.Recording) error {
		if err := rec.Playback(b); err != nil {
			return err
		}
		_, err := wb.WriteTo(w)
		return err
	})
}

// Snapshot returns the metadata export of the last generation.
func (s *Session) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.report == nil {
		return Snapshot{}, ErrNoScene
	}
	return Snapshot{
		Timestamp:           s.engine.opts.clock().UTC(),
		GenerationCount:     s.generations,
		OptionsUsed:         s.options,
		Palette:             s.palette.Clone(),
		MathProperties:      s.report,
		CapturedCoordinates: s.captured,
	}, nil
}

// Close stops the running animation.
func (s *Session) Close() {
	s.StopAnimation()
}
