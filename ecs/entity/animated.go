package entity

import (
	"github.com/milk9111/spritefx/anim"
	"github.com/milk9111/spritefx/ecs"
	"github.com/milk9111/spritefx/ecs/component"
	"github.com/milk9111/spritefx/ecs/system"
)

// NewAnimated creates an entity with props, a transform, a sprite and an
// animator for spriteType. Position and appearance props default to an
// untransformed, opaque, untinted sprite.
func NewAnimated(w *ecs.World, lib *anim.Library, spriteType string, props map[string]float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	p := component.NewProps(map[string]float64{
		component.PropX:        0,
		component.PropY:        0,
		component.PropScaleX:   1,
		component.PropScaleY:   1,
		component.PropRotation: 0,
		component.PropAlpha:    1,
	})
	for k, v := range props {
		p.Set(k, v)
	}

	t := &component.Transform{}
	system.SyncTransform(p, t)

	a := anim.NewAnimator(lib, spriteType)
	a.DefaultSheet = spriteType

	if err := ecs.Add(w, e, component.PropsComponent.Kind(), p); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), t); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	if err := ecs.Add(w, e, component.AnimatorComponent.Kind(), a); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}
