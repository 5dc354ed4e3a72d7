package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-fx/internal/config"
)

const (
	textColor   = "#e5e7eb"
	cardColor   = "#111827"
	borderColor = "#1f2937"
	buttonColor = "#7c3aed"
)

func (g *Game) drawNav(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), config.NavHeight, hexColor(config.Background, 0.85), false)
	vector.StrokeLine(screen, 0, config.NavHeight, float32(g.width), config.NavHeight, 1, hexColor(borderColor, 1), false)
	ebitenutil.DebugPrintAt(screen, g.content.Title, 20, 20)

	rects := g.linkRects()
	if g.narrow() {
		g.drawHamburger(screen)
		if len(rects) > 0 {
			last := rects[len(rects)-1]
			vector.DrawFilledRect(screen, float32(rects[0].x), float32(rects[0].y),
				float32(rects[0].w), float32(last.y+last.h-rects[0].y), hexColor(cardColor, 0.95), false)
		}
	}
	for i, r := range rects {
		l := g.links[i]
		if l.Active {
			vector.StrokeLine(screen, float32(r.x+8), float32(r.y+r.h-2), float32(r.x+r.w-16), float32(r.y+r.h-2), 2,
				hexColor(config.Palette[0], 1), false)
		}
		ebitenutil.DebugPrintAt(screen, l.Label, int(r.x+8), int(r.y+4))
	}
}

func (g *Game) drawHamburger(screen *ebiten.Image) {
	r := g.hamburgerRect()
	bars := g.menu.Bars()
	for i, b := range bars {
		if b.Opacity == 0 {
			continue
		}
		cx := r.x + r.w/2
		cy := r.y + 3 + float64(i)*8
		half := r.w / 2
		x0, y0, x1, y1 := cx-half, cy, cx+half, cy
		if !b.Identity {
			// shift the bar, then turn it about its centre
			cx += b.TX
			cy += b.TY
			rad := b.Rotate * math.Pi / 180
			dx, dy := math.Cos(rad)*half, math.Sin(rad)*half
			x0, y0, x1, y1 = cx-dx, cy-dy, cx+dx, cy+dy
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 3, hexColor(textColor, b.Opacity), true)
	}
}

func (g *Game) drawHero(screen *ebiten.Image) {
	y := heroTop - g.scrollY
	if y < -60 {
		return
	}
	ebitenutil.DebugPrintAt(screen, g.content.Hero.Greeting, 40, int(y))
	text := g.typer.Text()
	if (g.ticks/30)%2 == 0 {
		text += "|"
	}
	ebitenutil.DebugPrintAt(screen, text, 40, int(y)+24)
}

func (g *Game) drawSections(screen *ebiten.Image) {
	now := g.observer.Now()
	for i, it := range g.sections {
		p := ease(it.Progress(now))
		if p == 0 {
			continue
		}
		// revealed cards rise 30px as they fade in
		y := it.Top - g.scrollY + 30*(1-p)
		if y > float64(g.height) || y+it.Height < 0 {
			continue
		}
		w := float64(g.width) - 80
		vector.DrawFilledRect(screen, 40, float32(y), float32(w), float32(it.Height), hexColor(cardColor, 0.8*p), false)
		vector.StrokeRect(screen, 40, float32(y), float32(w), float32(it.Height), 1, hexColor(borderColor, p), false)
		if p < 0.4 {
			continue
		}
		s := g.content.Sections[i]
		ebitenutil.DebugPrintAt(screen, s.Title, 56, int(y)+14)
		ebitenutil.DebugPrintAt(screen, s.Body, 56, int(y)+38)
		if i == len(g.sections)-1 {
			g.drawButton(screen, y-(it.Top-g.scrollY))
		}
	}
}

func (g *Game) drawButton(screen *ebiten.Image, offset float64) {
	r, ok := g.buttonRect()
	if !ok {
		return
	}
	r.y += offset

	bg := hexColor(buttonColor, 1)
	if c := g.form.Background(); c != "" {
		bg = hexColor(c, 1)
	} else if g.form.Disabled() {
		bg = hexColor(buttonColor, 0.6)
	} else if g.cursor.Hovering() && r.contains(ebitenCursor()) {
		bg = hexColor("#6d28d9", 1)
	}
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bg, false)

	label := g.form.Label()
	textWidth := len([]rune(label)) * 6
	ebitenutil.DebugPrintAt(screen, label, int(r.x)+(int(r.w)-textWidth)/2, int(r.y)+(int(r.h)-16)/2)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	if g.lastErr == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, g.height-20)
}

func (g *Game) drawCursor(screen *ebiten.Image) {
	if !g.cursor.Enabled {
		return
	}
	ring := g.cursor.Ring()
	x, y := ring.Center()
	vector.StrokeCircle(screen, float32(x), float32(y), float32(ring.Radius()), 1.5,
		hexColor(config.Palette[0], ring.Opacity), true)

	dot := g.cursor.Dot()
	x, y = dot.Center()
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(dot.Radius()), hexColor(config.Palette[1], dot.Opacity), true)
}

func ebitenCursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}
