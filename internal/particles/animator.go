package particles

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// StopFunc halts an animator. Calling it more than once is harmless.
type StopFunc func()

// Animator drives a Field on a Canvas, one frame per host frame callback.
type Animator struct {
	host    Host
	canvas  Canvas
	field   *Field
	logger  *zap.Logger
	frames  uint64
	stopped bool
}

type options struct {
	rng    *rand.Rand
	logger *zap.Logger
}

type Option func(*options)

// WithRand sets the source used for the initial particle layout.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Start sizes canvas to the host container, builds the field and begins the
// frame loop. A nil canvas makes Start a no-op: nothing is registered with
// the host and the returned animator is nil.
func Start(host Host, canvas Canvas, opts ...Option) (*Animator, StopFunc) {
	if canvas == nil {
		return nil, func() {}
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		seed := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	a := &Animator{host: host, canvas: canvas, logger: o.logger}

	w, h := host.ContainerSize()
	canvas.SetSize(w, h)
	host.OnResize(a.resize)
	a.field = NewField(o.rng, float64(w), float64(h))
	a.logger.Debug("particle field started",
		zap.Int("particles", a.field.Len()),
		zap.Int("width", w),
		zap.Int("height", h))

	host.RequestFrame(a.frame)
	return a, a.stop
}

func (a *Animator) resize(w, h int) {
	if a.stopped {
		return
	}
	a.canvas.SetSize(w, h)
	a.field.Resize(float64(w), float64(h))
	a.logger.Debug("particle field resized", zap.Int("width", w), zap.Int("height", h))
}

func (a *Animator) frame() {
	if a.stopped {
		return
	}
	a.field.Frame(a.canvas)
	a.frames++
	a.host.RequestFrame(a.frame)
}

func (a *Animator) stop() {
	if a.stopped {
		return
	}
	a.stopped = true
	a.logger.Debug("particle field stopped", zap.Uint64("frames", a.frames))
}

// Field exposes the animated field.
func (a *Animator) Field() *Field { return a.field }

// Frames reports how many frames have been rendered.
func (a *Animator) Frames() uint64 { return a.frames }
