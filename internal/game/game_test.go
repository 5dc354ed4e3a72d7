package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/nav"
)

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-1))
	assert.Equal(t, 0.25, clamp01(0.25))
	assert.Equal(t, 1.0, clamp01(3))
}

func TestHexColor(t *testing.T) {
	c := hexColor("#22c55e", 0.5)
	assert.Equal(t, uint8(0x22), c.R)
	assert.Equal(t, uint8(0xc5), c.G)
	assert.Equal(t, uint8(0x5e), c.B)
	assert.Equal(t, uint8(128), c.A)
	assert.Equal(t, uint8(255), hexColor("#000000", 2).A)
}

func TestEase(t *testing.T) {
	assert.Equal(t, 0.0, ease(0))
	assert.Equal(t, 1.0, ease(1))
	assert.Equal(t, 0.75, ease(0.5))
}

func TestRectContains(t *testing.T) {
	r := rect{x: 10, y: 10, w: 20, h: 5}
	assert.True(t, r.contains(10, 10))
	assert.True(t, r.contains(30, 15))
	assert.False(t, r.contains(31, 12))
	assert.False(t, r.contains(15, 9))
}

func TestLayoutNotifiesResize(t *testing.T) {
	g := &Game{width: 800, height: 600}
	var got [][2]int
	g.OnResize(func(w, h int) { got = append(got, [2]int{w, h}) })

	w, h := g.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Empty(t, got, "same size is not a resize")

	w, h = g.Layout(1280, 720)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
	assert.Equal(t, [][2]int{{1280, 720}}, got)

	cw, ch := g.ContainerSize()
	assert.Equal(t, 1280, cw)
	assert.Equal(t, 720, ch)
}

func TestRequestFrameQueues(t *testing.T) {
	g := &Game{}
	g.RequestFrame(func() {})
	g.RequestFrame(func() {})
	assert.Len(t, g.frameFns, 2)
}

func TestNavigateMarksActiveLink(t *testing.T) {
	g := &Game{content: &config.Content{Nav: []config.Link{
		{Label: "Home", Href: "index.html"},
		{Label: "Blog", Href: "blog.html"},
	}}}

	g.navigate("/")
	assert.Equal(t, []nav.Link{
		{Label: "Home", Href: "index.html", Active: true},
		{Label: "Blog", Href: "blog.html"},
	}, g.links)

	g.navigate("/blog.html")
	assert.False(t, g.links[0].Active)
	assert.True(t, g.links[1].Active)
}

func TestLinkRectsNarrowNeedOpenMenu(t *testing.T) {
	g := &Game{width: 600, height: 400, links: make([]nav.Link, 3)}
	assert.Nil(t, g.linkRects())

	g.menu.Toggle()
	rs := g.linkRects()
	assert.Len(t, rs, 3)
	assert.Equal(t, float64(config.NavHeight), rs[0].y)

	g.click(g.hamburgerRect().x+1, g.hamburgerRect().y+1)
	assert.False(t, g.menu.Open())
}

func TestScrollClamps(t *testing.T) {
	g := &Game{width: 800, height: 400}
	g.scroll(-100)
	assert.Zero(t, g.scrollY)

	g.scroll(1e6)
	assert.Zero(t, g.scrollY, "page shorter than the window cannot scroll")
}
