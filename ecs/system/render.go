package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritefx/ecs"
	"github.com/milk9111/spritefx/ecs/component"
)

// RenderSystem draws every entity with a Transform and a resolved Sprite.
type RenderSystem struct {
	Zoom float64
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{Zoom: 1}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	zoom := r.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	var entities []ecs.Entity
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Transform, s *component.Sprite) {
		if s.Image != nil {
			entities = append(entities, e)
		}
	})
	sort.SliceStable(entities, func(i, j int) bool {
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		screen.DrawImage(s.Image, drawOptions(t, s, zoom))
	}
}

func drawOptions(t *component.Transform, s *component.Sprite, zoom float64) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.OriginX, -s.OriginY)

	sx := t.ScaleX
	if sx == 0 {
		sx = 1
	}
	sy := t.ScaleY
	if sy == 0 {
		sy = 1
	}
	// flipping mirrors around the origin
	if s.Flip.Horizontal() {
		sx = -sx
	}
	if s.Flip.Vertical() {
		sy = -sy
	}

	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(t.X*zoom, t.Y*zoom)

	if s.Tint != nil {
		op.ColorScale.ScaleWithColor(s.Tint)
	}
	op.ColorScale.ScaleAlpha(float32(t.Alpha))
	return op
}
