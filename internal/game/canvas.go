package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas is an offscreen image the particle field draws onto. It is
// composited under the page on every Draw.
type canvas struct {
	img  *ebiten.Image
	w, h int
}

func (c *canvas) Size() (int, int) { return c.w, c.h }

func (c *canvas) SetSize(w, h int) {
	if c.img != nil && w == c.w && h == c.h {
		return
	}
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	c.w, c.h = w, h
	if w > 0 && h > 0 {
		c.img = ebiten.NewImage(w, h)
	}
}

func (c *canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

func (c *canvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	if c.img == nil {
		return
	}
	vector.StrokeLine(c.img, x0, y0, x1, y1, width, clr, true)
}

func (c *canvas) FillCircle(cx, cy, r float32, clr color.Color) {
	if c.img == nil {
		return
	}
	vector.DrawFilledCircle(c.img, cx, cy, r, clr, true)
}
