package particles

import (
	"image/color"
	"math/rand/v2"
)

type line struct {
	x0, y0, x1, y1 float32
	c              color.NRGBA
}

type circle struct {
	x, y, r float32
	c       color.NRGBA
}

type recordingCanvas struct {
	w, h    int
	clears  int
	lines   []line
	circles []circle
}

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }
func (c *recordingCanvas) SetSize(w, h int) { c.w, c.h = w, h }
func (c *recordingCanvas) Clear() { c.clears++; c.lines = nil; c.circles = nil }
func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, _ float32, col color.Color) {
	c.lines = append(c.lines, line{x0, y0, x1, y1, color.NRGBAModel.Convert(col).(color.NRGBA)})
}
func (c *recordingCanvas) FillCircle(x, y, r float32, col color.Color) {
	c.circles = append(c.circles, circle{x, y, r, color.NRGBAModel.Convert(col).(color.NRGBA)})
}

type fakeHost struct {
	w, h    int
	resize  []func(w, h int)
	pending []func()
}

func (h *fakeHost) ContainerSize() (int, int) { return h.w, h.h }
func (h *fakeHost) OnResize(fn func(w, h int)) { h.resize = append(h.resize, fn) }
func (h *fakeHost) RequestFrame(fn func()) { h.pending = append(h.pending, fn) }

// tick runs the callbacks queued for the current frame.
func (h *fakeHost) tick() {
	queued := h.pending
	h.pending = nil
	for _, fn := range queued {
		fn()
	}
}

func (h *fakeHost) setSize(w, hh int) {
	h.w, h.h = w, hh
	for _, fn := range h.resize {
		fn(w, hh)
	}
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}
