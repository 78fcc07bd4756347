package prefabs

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/milk9111/spritefx/ease"
	"github.com/milk9111/spritefx/ecs/component"
	"github.com/milk9111/spritefx/tween"
)

var (
	ErrUnknownPreset = errors.New("prefabs: unknown tween preset")
	ErrNoTweenList   = errors.New("prefabs: no tween list")
)

// Presets holds named tween sequences.
type Presets struct {
	mu      sync.RWMutex
	presets map[string][]TweenStepSpec
}

func NewPresets() *Presets {
	return &Presets{presets: make(map[string][]TweenStepSpec)}
}

// Replace swaps in a new preset set.
func (p *Presets) Replace(presets map[string][]TweenStepSpec) {
	copied := make(map[string][]TweenStepSpec, len(presets))
	for name, steps := range presets {
		copied[name] = append([]TweenStepSpec(nil), steps...)
	}
	p.mu.Lock()
	p.presets = copied
	p.mu.Unlock()
}

// Get returns the steps of the named preset.
func (p *Presets) Get(name string) ([]TweenStepSpec, bool) {
	if p == nil {
		return nil, false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	steps, ok := p.presets[name]
	return steps, ok
}

// Names lists preset names in sorted order.
func (p *Presets) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.presets))
	for name := range p.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadTweens reads a tween set file, registers its named curves in table and
// replaces the presets.
func LoadTweens(filename string, table *ease.Table, presets *Presets) error {
	spec, err := LoadSpec[TweenSetSpec](filename)
	if err != nil {
		return err
	}
	for name, steps := range spec.Presets {
		if len(steps) == 0 {
			return fmt.Errorf("prefabs: %s: preset %q has no steps", filename, name)
		}
		for i, step := range steps {
			if len(step.Targets) == 0 && step.Tint == nil {
				return fmt.Errorf("prefabs: %s: preset %q step %d has no targets", filename, name, i)
			}
		}
	}

	for name, key := range spec.Curves {
		table.Register(name, table.Splines().Curve(key))
	}
	presets.Replace(spec.Presets)
	return nil
}

// Apply schedules the named preset on l after delay seconds. done runs when
// the last step finishes. Easing names resolve through table, so spline keys
// work too. It returns the last tween scheduled.
func (p *Presets) Apply(l *tween.List, table *ease.Table, name string, delay float64, done func()) (*tween.Tween, error) {
	if l == nil {
		return nil, ErrNoTweenList
	}
	steps, ok := p.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	var prev *tween.Tween
	for i, step := range steps {
		opts := []tween.Option{tween.WithDelay(step.Delay)}
		switch {
		case i == 0:
			opts = append(opts, tween.WithDelay(delay))
		case step.Parallel:
			// start alongside the previous step
			opts = append(opts, tween.WithDelay(prev.Delay()))
		default:
			if last := l.Last(); last != nil {
				opts = append(opts, tween.WithDelay(math.Max(0, last.Remaining())))
			}
		}
		if i == len(steps)-1 && done != nil {
			opts = append(opts, tween.OnComplete(done))
		}
		prev = schedule(l, table, step, opts)
	}
	return prev, nil
}

func schedule(l *tween.List, table *ease.Table, step TweenStepSpec, opts []tween.Option) *tween.Tween {
	easing := table.Resolve(step.Easing)
	if step.Tint != nil {
		tw := l.AnimateColor(component.PropTint, step.Tint.Colorful(), step.Duration, easing, opts...)
		if len(step.Targets) > 0 {
			// the remaining targets run on the same timing
			l.Animate(step.Targets, step.Duration, easing, tween.WithDelay(tw.Delay()))
		}
		return tw
	}
	return l.Animate(step.Targets, step.Duration, easing, opts...)
}
