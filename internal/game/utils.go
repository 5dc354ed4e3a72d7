package game

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// hexColor converts a #rrggbb string to a color with the given opacity (0-1).
func hexColor(hex string, alpha float64) color.NRGBA {
	c := colorful.MustParseHex(hex)
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(alpha) * 255))}
}

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x <= r.x+r.w && y >= r.y && y <= r.y+r.h
}

// ease eases a 0-1 progress value out.
func ease(p float64) float64 {
	p = clamp01(p)
	return 1 - (1-p)*(1-p)
}
