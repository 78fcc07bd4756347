package tween

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/spritefx/ease"
)

// Clock reports the current update tick.
type Clock interface {
	Tick() uint64
}

// List holds every tween running on one entity, in scheduling order.
type List struct {
	clock  Clock
	tweens []*Tween
	gen    int
}

// NewList returns an empty list. Tweens scheduled on tick n wait until tick
// n+1 before they step; a nil clock disables the wait.
func NewList(clock Clock) *List {
	return &List{clock: clock}
}

func (l *List) now() uint64 {
	if l.clock == nil {
		return 0
	}
	return l.clock.Tick()
}

// Len returns the number of scheduled tweens.
func (l *List) Len() int {
	return len(l.tweens)
}

// Last returns the most recently scheduled tween, or nil.
func (l *List) Last() *Tween {
	if len(l.tweens) == 0 {
		return nil
	}
	return l.tweens[len(l.tweens)-1]
}

// Animate schedules targets to be reached in duration seconds. A nil easing
// is linear.
func (l *List) Animate(targets map[string]float64, duration float64, easing ease.Func, opts ...Option) *Tween {
	if easing == nil {
		easing = ease.Linear
	}
	copied := make(map[string]float64, len(targets))
	for k, v := range targets {
		copied[k] = v
	}

	tw := &Tween{
		targets:  copied,
		duration: duration,
		easing:   easing,
	}
	if l.clock != nil {
		tw.startTick = l.clock.Tick() + 1
	}
	for _, opt := range opts {
		opt(tw)
	}
	l.tweens = append(l.tweens, tw)
	return tw
}

// Chain schedules targets to start when the last scheduled tween ends. Any
// WithDelay option adds a gap on top. Chaining onto a tween that has already
// finished, as from its own OnComplete, starts without delay.
func (l *List) Chain(targets map[string]float64, duration float64, easing ease.Func, opts ...Option) *Tween {
	if last := l.Last(); last != nil {
		opts = append([]Option{WithDelay(math.Max(0, last.Remaining()))}, opts...)
	}
	return l.Animate(targets, duration, easing, opts...)
}

// AnimateColor tweens the prefix.r, prefix.g and prefix.b properties toward
// to, blending in CIE-Lab so the midpoint keeps its lightness.
func (l *List) AnimateColor(prefix string, to colorful.Color, duration float64, easing ease.Func, opts ...Option) *Tween {
	c := &colorTarget{
		r:  prefix + ".r",
		g:  prefix + ".g",
		b:  prefix + ".b",
		to: to,
	}
	tw := l.Animate(map[string]float64{c.r: to.R, c.g: to.G, c.b: to.B}, duration, easing, opts...)
	tw.color = c
	return tw
}

// Stop drops every tween without running callbacks.
func (l *List) Stop() {
	l.tweens = nil
	l.gen++
}

// Step advances every tween by dt seconds and drops the finished ones.
// Tweens scheduled from a completion callback join the list after the
// tweens that were already running.
func (l *List) Step(p Props, dt float64) {
	if len(l.tweens) == 0 {
		return
	}
	tick := l.now()
	gen := l.gen
	running := l.tweens
	n := len(running)

	kept := make([]*Tween, 0, n)
	for _, tw := range running {
		if tw.step(p, dt, tick) {
			kept = append(kept, tw)
		}
		if l.gen != gen {
			// stopped from a callback; keep only what was scheduled after
			return
		}
	}
	l.tweens = append(kept, l.tweens[n:]...)
}
