// Package particles animates the ambient particle background: a fixed set of
// drifting points joined by faint lines when they come close to each other.
package particles

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/portfolio-fx/internal/config"
)

var palette = [2]colorful.Color{
	colorful.MustParseHex(config.Palette[0]),
	colorful.MustParseHex(config.Palette[1]),
}

// Particle is a point drifting at constant velocity.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alpha  float64
	Color  int // palette index
}

// Field owns the particle set and the bounds it wraps around.
type Field struct {
	particles     []Particle
	width, height float64
}

// NewField scatters config.ParticleCount particles over a w×h surface.
func NewField(rng *rand.Rand, w, h float64) *Field {
	f := &Field{
		particles: make([]Particle, config.ParticleCount),
		width:     w,
		height:    h,
	}
	for i := range f.particles {
		f.particles[i] = Particle{
			X:      rng.Float64() * w,
			Y:      rng.Float64() * h,
			VX:     (rng.Float64()*2 - 1) * config.MaxSpeed,
			VY:     (rng.Float64()*2 - 1) * config.MaxSpeed,
			Radius: config.MinRadius + rng.Float64()*(config.MaxRadius-config.MinRadius),
			Alpha:  config.MinAlpha + rng.Float64()*(config.MaxAlpha-config.MinAlpha),
			Color:  rng.IntN(len(palette)),
		}
	}
	return f
}

func (f *Field) Len() int { return len(f.particles) }

func (f *Field) Bounds() (w, h float64) { return f.width, f.height }

// Particles returns a copy of the current particle state.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Resize changes the wrap bounds. Particles keep their positions; anything
// left outside the new bounds is wrapped back in on the next step.
func (f *Field) Resize(w, h float64) {
	f.width, f.height = w, h
}

// Step advances every particle by its velocity.
func (f *Field) Step() {
	for i := range f.particles {
		f.advance(&f.particles[i])
	}
}

func (f *Field) advance(p *Particle) {
	p.X = wrap(p.X+p.VX, f.width)
	p.Y = wrap(p.Y+p.VY, f.height)
}

// Frame renders one animation frame: links between close particles at their
// current positions, then each particle after moving it.
func (f *Field) Frame(c Canvas) {
	c.Clear()

	link := palette[0]
	for i := 0; i < len(f.particles); i++ {
		a := &f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := &f.particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d >= config.LinkDistance {
				continue
			}
			c.StrokeLine(float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
				config.LinkWidth, withAlpha(link, LinkOpacity(d)))
		}
	}

	for i := range f.particles {
		p := &f.particles[i]
		f.advance(p)
		c.FillCircle(float32(p.X), float32(p.Y), float32(p.Radius), withAlpha(palette[p.Color], p.Alpha))
	}
}

// LinkOpacity fades a connecting line from config.LinkOpacity at distance 0
// to nothing at config.LinkDistance.
func LinkOpacity(d float64) float64 {
	if d < 0 {
		d = -d
	}
	if d >= config.LinkDistance {
		return 0
	}
	return config.LinkOpacity * (1 - d/config.LinkDistance)
}

// wrap folds v into [0, extent).
func wrap(v, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	v = math.Mod(v, extent)
	if v < 0 {
		v += extent
	}
	if v >= extent {
		v = 0
	}
	return v
}

func withAlpha(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(alpha) * 255))}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
