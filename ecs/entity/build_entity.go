package entity

import (
	"fmt"

	"github.com/milk9111/spritefx/anim"
	"github.com/milk9111/spritefx/ease"
	"github.com/milk9111/spritefx/ecs"
	"github.com/milk9111/spritefx/ecs/component"
	"github.com/milk9111/spritefx/ecs/system"
	"github.com/milk9111/spritefx/prefabs"
)

// Deps are the shared registries prefab components are built against.
type Deps struct {
	Library *anim.Library
	Table   *ease.Table
	Presets *prefabs.Presets
}

type buildContext struct {
	PrefabPath string
	Deps       Deps
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"transform": addTransform,
	"props":     addProps,
	"sprite":    addSprite,
	"animator":  addAnimator,
	"tweens":    addTweens,
}

// props and sprite must exist before the animator and tweens touch them.
var componentBuildOrder = []string{
	"transform",
	"props",
	"sprite",
	"animator",
	"tweens",
}

// BuildEntity creates an entity from a prefab file. On error the
// half-built entity is destroyed.
func BuildEntity(w *ecs.World, deps Deps, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildFromSpec(w, deps, prefabPath, spec)
}

// BuildFromSpec creates an entity from an already decoded prefab.
func BuildFromSpec(w *ecs.World, deps Deps, prefabPath string, spec prefabs.EntityBuildSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Deps: deps}

	names := make([]string, 0, len(spec.Components))
	for _, name := range componentBuildOrder {
		if _, ok := spec.Components[name]; ok {
			names = append(names, name)
		}
	}

	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	alpha := 1.0
	if spec.Alpha != nil {
		alpha = *spec.Alpha
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
		Alpha:    alpha,
	})
}

func addProps(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PropsComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode props spec: %w", err)
	}
	return ecs.Add(w, e, component.PropsComponent.Kind(), component.NewProps(spec))
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	flip, err := prefabs.ParseFlip(spec.Flip)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Sheet:   spec.Sheet,
		Frame:   spec.Frame,
		Flip:    flip,
		OriginX: spec.OriginX,
		OriginY: spec.OriginY,
		Dirty:   spec.Sheet != "",
	})
}

type animatorSpec = prefabs.AnimatorComponentSpec

func addAnimator(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animatorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animator spec: %w", err)
	}
	if spec.SpriteType == "" {
		return anim.ErrNoSprite
	}
	if ctx.Deps.Library == nil {
		return fmt.Errorf("animator needs an animation library")
	}

	a := anim.NewAnimator(ctx.Deps.Library, spec.SpriteType)
	if spec.DefaultRate > 0 {
		a.DefaultRate = spec.DefaultRate
	}
	a.DefaultSheet = spec.DefaultSheet
	if err := ecs.Add(w, e, component.AnimatorComponent.Kind(), a); err != nil {
		return err
	}
	if spec.Play != "" {
		system.Play(w, e, spec.Play, spec.Priority)
	}
	return nil
}

type tweensSpec = prefabs.TweensComponentSpec

func addTweens(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[tweensSpec](raw)
	if err != nil {
		return fmt.Errorf("decode tweens spec: %w", err)
	}
	l := system.Tweens(w, e)
	if l == nil {
		return component.ErrEntityNotAlive
	}
	if spec.Preset == "" {
		return nil
	}
	if ctx.Deps.Presets == nil || ctx.Deps.Table == nil {
		return fmt.Errorf("tween preset %q needs presets and an easing table", spec.Preset)
	}
	_, err = ctx.Deps.Presets.Apply(l, ctx.Deps.Table, spec.Preset, spec.Delay, nil)
	return err
}
