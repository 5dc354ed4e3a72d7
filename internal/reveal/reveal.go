// Package reveal fades page sections in the first time they scroll into
// view. Items that become visible together are revealed one after another.
package reveal

import (
	"time"

	"github.com/iburimskiy/portfolio-fx/internal/config"
)

// Item is a block of the page with a vertical extent in page coordinates.
type Item struct {
	Top, Height float64

	revealed   bool
	revealedAt time.Duration
}

// Visible reports whether the item has been revealed.
func (it *Item) Visible() bool { return it.revealed }

// Progress returns how far the reveal transition has run at time now, from
// 0 (hidden) to 1 (fully shown).
func (it *Item) Progress(now time.Duration) float64 {
	if !it.revealed {
		return 0
	}
	p := float64(now-it.revealedAt) / float64(config.RevealFade)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Viewport is the visible vertical window of the page.
type Viewport struct {
	Top, Height float64
}

type pending struct {
	item *Item
	at   time.Duration
}

type Observer struct {
	observed  []*Item
	last      map[*Item]bool
	pending   []pending
	now       time.Duration
	threshold float64
	stagger   time.Duration
}

func NewObserver() *Observer {
	return &Observer{
		last:      map[*Item]bool{},
		threshold: config.RevealThreshold,
		stagger:   config.RevealStagger,
	}
}

// Observe starts watching items.
func (o *Observer) Observe(items ...*Item) {
	o.observed = append(o.observed, items...)
}

// Observed reports how many items are still being watched.
func (o *Observer) Observed() int { return len(o.observed) }

// Now is the observer clock.
func (o *Observer) Now() time.Duration { return o.now }

// Check compares observed items against the viewport. Items whose
// intersection state changed since the previous check form a batch; the
// i-th intersecting entry of the batch is revealed i staggers from now and
// stops being observed.
func (o *Observer) Check(vp Viewport) {
	kept := o.observed[:0]
	i := 0
	for _, it := range o.observed {
		in := o.intersects(it, vp)
		prev, seen := o.last[it]
		if seen && prev == in {
			kept = append(kept, it)
			continue
		}
		o.last[it] = in
		if in {
			o.pending = append(o.pending, pending{item: it, at: o.now + time.Duration(i)*o.stagger})
			delete(o.last, it)
		} else {
			kept = append(kept, it)
		}
		i++
	}
	o.observed = kept
	o.flush()
}

// Update advances the clock and applies reveals that have come due.
func (o *Observer) Update(dt time.Duration) {
	o.now += dt
	o.flush()
}

func (o *Observer) flush() {
	rest := o.pending[:0]
	for _, p := range o.pending {
		if p.at <= o.now {
			p.item.revealed = true
			p.item.revealedAt = p.at
			continue
		}
		rest = append(rest, p)
	}
	o.pending = rest
}

func (o *Observer) intersects(it *Item, vp Viewport) bool {
	if it.Height <= 0 {
		return it.Top >= vp.Top && it.Top <= vp.Top+vp.Height
	}
	top := max(it.Top, vp.Top)
	bottom := min(it.Top+it.Height, vp.Top+vp.Height)
	if bottom <= top {
		return false
	}
	return (bottom-top)/it.Height >= o.threshold
}
