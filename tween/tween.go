// Package tween interpolates named numeric properties toward target values
// over time, shaped by an easing curve.
package tween

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/spritefx/ease"
)

// Props is the property bag a tween reads and writes.
type Props interface {
	Has(name string) bool
	Get(name string) (float64, bool)
	Set(name string, v float64)
}

// Option configures a tween at scheduling time.
type Option func(*Tween)

// WithDelay holds the tween for d seconds before it starts.
func WithDelay(d float64) Option {
	return func(tw *Tween) {
		tw.delay += d
	}
}

// OnComplete runs fn once, on the step the tween finishes.
func OnComplete(fn func()) Option {
	return func(tw *Tween) {
		tw.onComplete = fn
	}
}

// Tween is one scheduled interpolation. Start values are captured on the
// first step the tween is active, not when it is scheduled, so a tween
// chained after another starts from wherever the first one left off.
type Tween struct {
	targets    map[string]float64
	duration   float64
	elapsed    float64
	delay      float64
	easing     ease.Func
	onComplete func()
	startTick  uint64

	started bool
	start   map[string]float64
	delta   map[string]float64
	color   *colorTarget
}

type colorTarget struct {
	r, g, b string
	to      colorful.Color
}

// Duration returns the active length of the tween in seconds.
func (tw *Tween) Duration() float64 { return tw.duration }

// Elapsed returns the active time consumed so far.
func (tw *Tween) Elapsed() float64 { return tw.elapsed }

// Delay returns the remaining delay.
func (tw *Tween) Delay() float64 { return tw.delay }

// Remaining returns the time until the tween finishes, delay included.
func (tw *Tween) Remaining() float64 {
	return tw.duration - tw.elapsed + tw.delay
}

// step advances the tween and reports whether it is still running.
func (tw *Tween) step(p Props, dt float64, tick uint64) bool {
	if tw.startTick > tick {
		return true
	}
	if tw.delay >= dt {
		tw.delay -= dt
		return true
	}
	if tw.delay > 0 {
		dt -= tw.delay
		tw.delay = 0
	}

	if !tw.started {
		tw.capture(p)
	}

	tw.elapsed += dt
	progress := 1.0
	if tw.duration > 0 && tw.elapsed < tw.duration {
		progress = tw.elapsed / tw.duration
	}
	tw.apply(p, tw.easing(progress))

	if progress >= 1 {
		if tw.onComplete != nil {
			tw.onComplete()
		}
		return false
	}
	return true
}

// capture snapshots the start value of every target the entity has. Targets
// missing now are skipped for the rest of this tween.
func (tw *Tween) capture(p Props) {
	tw.started = true
	tw.start = make(map[string]float64, len(tw.targets))
	tw.delta = make(map[string]float64, len(tw.targets))
	for name, target := range tw.targets {
		v, ok := p.Get(name)
		if !ok {
			continue
		}
		tw.start[name] = v
		tw.delta[name] = target - v
	}
}

func (tw *Tween) apply(p Props, factor float64) {
	if tw.color != nil && tw.applyColor(p, factor) {
		return
	}
	for name, start := range tw.start {
		if !p.Has(name) {
			continue
		}
		if factor == 1 {
			p.Set(name, tw.targets[name])
			continue
		}
		p.Set(name, start+tw.delta[name]*factor)
	}
}

// applyColor blends in CIE-Lab. It reports false when a channel was missing
// at capture, leaving the channels present to plain interpolation.
func (tw *Tween) applyColor(p Props, factor float64) bool {
	c := tw.color
	r, okR := tw.start[c.r]
	g, okG := tw.start[c.g]
	b, okB := tw.start[c.b]
	if !okR || !okG || !okB {
		return false
	}

	out := c.to
	if factor != 1 {
		from := colorful.Color{R: r, G: g, B: b}
		out = from.BlendLab(c.to, factor).Clamped()
	}
	if p.Has(c.r) {
		p.Set(c.r, out.R)
	}
	if p.Has(c.g) {
		p.Set(c.g, out.G)
	}
	if p.Has(c.b) {
		p.Set(c.b, out.B)
	}
	return true
}
