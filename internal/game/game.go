// Package game hosts the portfolio page in an Ebiten window: the particle
// background, navbar, typed hero line, revealed sections, contact button and
// custom cursor.
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/contact"
	"github.com/iburimskiy/portfolio-fx/internal/cursor"
	"github.com/iburimskiy/portfolio-fx/internal/nav"
	"github.com/iburimskiy/portfolio-fx/internal/particles"
	"github.com/iburimskiy/portfolio-fx/internal/reveal"
	"github.com/iburimskiy/portfolio-fx/internal/typing"
)

const (
	tick = time.Second / config.TPS

	heroTop       = 140.0
	sectionTop    = 360.0
	sectionHeight = 120.0
	sectionGap    = 40.0
	narrowWidth   = 720
	navLinkWidth  = 96.0
	menuRowHeight = 32.0
)

// Options configures a Game.
type Options struct {
	Content *config.Content
	Rand    *rand.Rand
	Logger  *zap.Logger
	Width   int
	Height  int
	// Cursor enables the custom cursor. Hosts without a mouse leave it off.
	Cursor  bool
}

// Game implements ebiten.Game and particles.Host.
type Game struct {
	logger  *zap.Logger
	content *config.Content

	// host
	width, height int
	resizeFns     []func(w, h int)
	frameFns      []func()
	canvas        *canvas
	stopParticles particles.StopFunc

	// page
	links    []nav.Link
	menu     nav.Menu
	typer    *typing.Typewriter
	sections []*reveal.Item
	observer *reveal.Observer
	form     *contact.Form
	cursor   *cursor.Follower
	scrollY  float64
	ticks    int

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

// New builds the page and starts the particle animation.
func New(opts Options) (*Game, error) {
	if opts.Content == nil {
		return nil, errors.New("game: no content")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = config.WindowWidth, config.WindowHeight
	}

	typer, err := typing.New(opts.Content.Hero.Typed)
	if err != nil {
		return nil, fmt.Errorf("hero text: %w", err)
	}

	g := &Game{
		logger:   opts.Logger,
		content:  opts.Content,
		width:    opts.Width,
		height:   opts.Height,
		canvas:   &canvas{},
		typer:    typer,
		observer: reveal.NewObserver(),
		form:     contact.NewForm(),
		cursor:   cursor.New(opts.Cursor),
		prevKey:  map[ebiten.Key]bool{},
	}
	g.navigate(opts.Content.Path)

	for i := range opts.Content.Sections {
		top := sectionTop + float64(i)*(sectionHeight+sectionGap)
		g.sections = append(g.sections, &reveal.Item{Top: top, Height: sectionHeight})
	}
	g.observer.Observe(g.sections...)
	g.observer.Check(g.viewport())

	pOpts := []particles.Option{particles.WithLogger(opts.Logger)}
	if opts.Rand != nil {
		pOpts = append(pOpts, particles.WithRand(opts.Rand))
	}
	_, g.stopParticles = particles.Start(g, g.canvas, pOpts...)

	return g, nil
}

// ContainerSize is the current window size.
func (g *Game) ContainerSize() (int, int) { return g.width, g.height }

func (g *Game) OnResize(fn func(w, h int)) { g.resizeFns = append(g.resizeFns, fn) }

// RequestFrame queues fn for the next Draw.
func (g *Game) RequestFrame(fn func()) { g.frameFns = append(g.frameFns, fn) }

// Close stops the particle animation.
func (g *Game) Close() {
	g.stopParticles()
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	cx, cy := ebiten.CursorPosition()
	mouseX, mouseY := float64(cx), float64(cy)
	g.cursor.Move(mouseX, mouseY)
	g.cursor.SetHover(g.hoverTarget(mouseX, mouseY))

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.scroll(-wy * 40)
	}
	if justPressed(ebiten.KeyArrowDown) || justPressed(ebiten.KeyPageDown) {
		g.scroll(float64(g.height) / 2)
	}
	if justPressed(ebiten.KeyArrowUp) || justPressed(ebiten.KeyPageUp) {
		g.scroll(-float64(g.height) / 2)
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.click(mouseX, mouseY)
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}

	g.ticks++
	g.cursor.Step()
	g.typer.Update(tick)
	g.observer.Update(tick)
	g.observer.Check(g.viewport())
	g.form.Update(tick)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(hexColor(config.Background, 1))

	queued := g.frameFns
	g.frameFns = nil
	for _, fn := range queued {
		fn()
	}
	if g.canvas.img != nil {
		screen.DrawImage(g.canvas.img, nil)
	}

	g.drawSections(screen)
	g.drawHero(screen)
	g.drawNav(screen)
	g.drawStatus(screen)
	g.drawCursor(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		for _, fn := range g.resizeFns {
			fn(outsideWidth, outsideHeight)
		}
		g.scroll(0)
	}
	return g.width, g.height
}

func (g *Game) navigate(path string) {
	links := make([]nav.Link, len(g.content.Nav))
	for i, l := range g.content.Nav {
		links[i] = nav.Link{Label: l.Label, Href: l.Href}
	}
	g.links = nav.MarkActive(path, links)
}

func (g *Game) viewport() reveal.Viewport {
	return reveal.Viewport{Top: g.scrollY, Height: float64(g.height)}
}

func (g *Game) pageHeight() float64 {
	return sectionTop + float64(len(g.sections))*(sectionHeight+sectionGap)
}

func (g *Game) scroll(dy float64) {
	g.scrollY += dy
	limit := g.pageHeight() - float64(g.height)
	if g.scrollY > limit {
		g.scrollY = limit
	}
	if g.scrollY < 0 {
		g.scrollY = 0
	}
}

func (g *Game) narrow() bool { return g.width < narrowWidth }

func (g *Game) hamburgerRect() rect {
	return rect{x: float64(g.width) - 48, y: config.HamburgerY, w: config.HamburgerW, h: config.HamburgerH}
}

// linkRects lays out nav links: inline in the bar on wide windows, stacked
// under the hamburger on narrow ones. Nil when the menu is collapsed.
func (g *Game) linkRects() []rect {
	out := make([]rect, len(g.links))
	if g.narrow() {
		if !g.menu.Open() {
			return nil
		}
		x := float64(g.width) - 180
		for i := range g.links {
			out[i] = rect{x: x, y: config.NavHeight + float64(i)*menuRowHeight, w: 180, h: menuRowHeight}
		}
		return out
	}
	x := float64(g.width) - navLinkWidth*float64(len(g.links)) - 20
	for i := range g.links {
		out[i] = rect{x: x + float64(i)*navLinkWidth, y: 18, w: navLinkWidth, h: 20}
	}
	return out
}

// buttonRect is the contact button inside the last section, in screen space.
func (g *Game) buttonRect() (rect, bool) {
	if len(g.sections) == 0 {
		return rect{}, false
	}
	last := g.sections[len(g.sections)-1]
	y := last.Top - g.scrollY + sectionHeight - config.ButtonHeight - 12
	return rect{x: 40 + 16, y: y, w: config.ButtonWidth, h: config.ButtonHeight}, last.Visible()
}

func (g *Game) hoverTarget(x, y float64) bool {
	if g.narrow() && g.hamburgerRect().contains(x, y) {
		return true
	}
	for _, r := range g.linkRects() {
		if r.contains(x, y) {
			return true
		}
	}
	if r, ok := g.buttonRect(); ok && r.contains(x, y) {
		return true
	}
	return false
}

func (g *Game) click(x, y float64) {
	if g.narrow() && g.hamburgerRect().contains(x, y) {
		g.menu.Toggle()
		return
	}
	for i, r := range g.linkRects() {
		if r.contains(x, y) {
			g.navigate("/" + g.links[i].Href)
			if g.narrow() {
				g.menu.Toggle()
			}
			return
		}
	}
	if r, ok := g.buttonRect(); ok && r.contains(x, y) && !g.form.Disabled() {
		if err := g.openContactDialog(); err != nil {
			g.lastErr = err
			g.logger.Warn("contact dialog failed", zap.Error(err))
		}
	}
}

// openContactDialog asks for a message and submits the form. Cancelling the
// dialog leaves the form untouched.
func (g *Game) openContactDialog() error {
	msg, err := zenity.Entry("Your message",
		zenity.Title("Contact"),
		zenity.EntryText(g.form.Get("message")),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	g.form.Set("message", msg)
	if g.form.Submit() {
		g.logger.Debug("contact form submitted", zap.Int("length", len(msg)))
	}
	return nil
}
