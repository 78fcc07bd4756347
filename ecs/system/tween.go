package system

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/spritefx/ease"
	"github.com/milk9111/spritefx/ecs"
	"github.com/milk9111/spritefx/ecs/component"
	"github.com/milk9111/spritefx/tween"
)

// TweenSystem steps every entity's tween list against its Props.
type TweenSystem struct{}

func NewTweenSystem() *TweenSystem {
	return &TweenSystem{}
}

func (s *TweenSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()
	ecs.ForEach2(w, component.TweensComponent.Kind(), component.PropsComponent.Kind(), func(e ecs.Entity, l *tween.List, p *component.Props) {
		l.Step(p, dt)
	})
}

// Tweens returns e's tween list, attaching an empty one clocked by the world
// if needed. It returns nil for a dead entity.
func Tweens(w *ecs.World, e ecs.Entity) *tween.List {
	if l, ok := ecs.Get(w, e, component.TweensComponent.Kind()); ok {
		return l
	}
	l := tween.NewList(w)
	if err := ecs.Add(w, e, component.TweensComponent.Kind(), l); err != nil {
		return nil
	}
	return l
}

// Animate schedules a tween on e. See tween.List.Animate.
func Animate(w *ecs.World, e ecs.Entity, targets map[string]float64, duration float64, easing ease.Func, opts ...tween.Option) *tween.Tween {
	l := Tweens(w, e)
	if l == nil {
		return nil
	}
	return l.Animate(targets, duration, easing, opts...)
}

// Chain schedules a tween on e that starts after its last one ends.
func Chain(w *ecs.World, e ecs.Entity, targets map[string]float64, duration float64, easing ease.Func, opts ...tween.Option) *tween.Tween {
	l := Tweens(w, e)
	if l == nil {
		return nil
	}
	return l.Chain(targets, duration, easing, opts...)
}

// AnimateTint blends e's tint toward to.
func AnimateTint(w *ecs.World, e ecs.Entity, to colorful.Color, duration float64, easing ease.Func, opts ...tween.Option) *tween.Tween {
	l := Tweens(w, e)
	if l == nil {
		return nil
	}
	return l.AnimateColor(component.PropTint, to, duration, easing, opts...)
}

// StopTweens drops every tween on e without running callbacks.
func StopTweens(w *ecs.World, e ecs.Entity) {
	if l, ok := ecs.Get(w, e, component.TweensComponent.Kind()); ok {
		l.Stop()
	}
}
