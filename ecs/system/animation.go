package system

import (
	"github.com/milk9111/spritefx/anim"
	"github.com/milk9111/spritefx/ecs"
	"github.com/milk9111/spritefx/ecs/component"
)

// entityHost adapts one entity to anim.Host. Events go to the world queue and
// visuals to the entity's Sprite, when it has one.
type entityHost struct {
	w      *ecs.World
	e      ecs.Entity
	sprite *component.Sprite
}

func hostFor(w *ecs.World, e ecs.Entity) *entityHost {
	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	return &entityHost{w: w, e: e, sprite: sprite}
}

func (h *entityHost) Emit(kind, name string, data any) {
	h.w.Emit(h.e, kind, name, data)
}

func (h *entityHost) SetVisual(sheet string, frame int) {
	if h.sprite == nil {
		return
	}
	if h.sprite.Sheet != sheet || h.sprite.Frame != frame {
		h.sprite.Sheet = sheet
		h.sprite.Frame = frame
		h.sprite.Dirty = true
	}
}

func (h *entityHost) SetFlip(f anim.Flip) {
	if h.sprite == nil {
		return
	}
	h.sprite.Flip = f
}

// AnimationSystem steps every entity's Animator by the world's delta time.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()
	ecs.ForEach(w, component.AnimatorComponent.Kind(), func(e ecs.Entity, a *anim.Animator) {
		a.Step(hostFor(w, e), dt)
	})
}

// Play starts name on e's animator. It reports false when e has no animator
// or the priority gate rejected the request.
func Play(w *ecs.World, e ecs.Entity, name string, priority int) bool {
	a, ok := ecs.Get(w, e, component.AnimatorComponent.Kind())
	if !ok {
		return false
	}
	return a.Play(hostFor(w, e), name, priority)
}

// PlayKeepFrame is Play without rewinding the frame index.
func PlayKeepFrame(w *ecs.World, e ecs.Entity, name string, priority int) bool {
	a, ok := ecs.Get(w, e, component.AnimatorComponent.Kind())
	if !ok {
		return false
	}
	return a.PlayKeepFrame(hostFor(w, e), name, priority)
}

// StopAnimation idles e's animator without emitting events.
func StopAnimation(w *ecs.World, e ecs.Entity) {
	if a, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
		a.Stop()
	}
}
