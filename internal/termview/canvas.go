// Package termview renders the particle field into a terminal. Each cell
// stands for a CellWidth×CellHeight block of surface pixels.
package termview

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	CellWidth  = 8
	CellHeight = 16
)

type cell struct {
	r     rune
	c     colorful.Color
	alpha float64
}

// Canvas is a particles.Canvas backed by a tcell.Screen.
type Canvas struct {
	screen     tcell.Screen
	bg         colorful.Color
	cols, rows int
	cells      []cell
}

func NewCanvas(screen tcell.Screen, background string) *Canvas {
	return &Canvas{screen: screen, bg: colorful.MustParseHex(background)}
}

// Size reports the surface size in pixels.
func (c *Canvas) Size() (int, int) {
	return c.cols * CellWidth, c.rows * CellHeight
}

func (c *Canvas) SetSize(w, h int) {
	c.cols, c.rows = max(w/CellWidth, 0), max(h/CellHeight, 0)
	c.cells = make([]cell, c.cols*c.rows)
}

func (c *Canvas) Clear() {
	clear(c.cells)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, _ float32, clr color.Color) {
	col, alpha := split(clr)
	c0, r0 := toCell(x0, y0)
	c1, r1 := toCell(x1, y1)
	steps := max(abs(c1-c0), abs(r1-r0))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		x := int(math.Round(float64(c0) + t*float64(c1-c0)))
		y := int(math.Round(float64(r0) + t*float64(r1-r0)))
		c.plot(x, y, '·', col, alpha)
	}
}

func (c *Canvas) FillCircle(cx, cy, r float32, clr color.Color) {
	col, alpha := split(clr)
	x, y := toCell(cx, cy)
	ch := '•'
	if r >= 1.5 {
		ch = '●'
	}
	c.plot(x, y, ch, col, alpha)
}

// plot keeps the most opaque mark in each cell.
func (c *Canvas) plot(x, y int, r rune, col colorful.Color, alpha float64) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	cl := &c.cells[y*c.cols+x]
	if cl.r != 0 && cl.alpha > alpha {
		return
	}
	*cl = cell{r: r, c: col, alpha: alpha}
}

// Flush writes the cells to the screen and shows them.
func (c *Canvas) Flush() {
	bg := tcellColor(c.bg)
	base := tcell.StyleDefault.Background(bg)
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			cl := c.cells[y*c.cols+x]
			if cl.r == 0 {
				c.screen.SetContent(x, y, ' ', nil, base)
				continue
			}
			fg := c.bg.BlendRgb(cl.c, cl.alpha)
			c.screen.SetContent(x, y, cl.r, nil, base.Foreground(tcellColor(fg)))
		}
	}
	c.screen.Show()
}

func split(clr color.Color) (colorful.Color, float64) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}, float64(n.A) / 255
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toCell(x, y float32) (int, int) {
	return int(math.Floor(float64(x) / CellWidth)), int(math.Floor(float64(y) / CellHeight))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
