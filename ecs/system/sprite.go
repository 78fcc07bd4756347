package system

import (
	"image/color"
	"log"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/spritefx/ecs"
	"github.com/milk9111/spritefx/ecs/component"
	"github.com/milk9111/spritefx/render"
)

// SpriteSystem copies tweened properties into Transform and Sprite and
// resolves each sprite's sheet and frame to an image.
type SpriteSystem struct {
	atlas  *render.Atlas
	warned map[string]bool
}

func NewSpriteSystem(atlas *render.Atlas) *SpriteSystem {
	return &SpriteSystem{atlas: atlas, warned: make(map[string]bool)}
}

func (s *SpriteSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.PropsComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Props, t *component.Transform) {
		SyncTransform(p, t)
	})

	ecs.ForEach(w, component.SpriteComponent.Kind(), func(e ecs.Entity, sprite *component.Sprite) {
		if p, ok := ecs.Get(w, e, component.PropsComponent.Kind()); ok {
			sprite.Tint = Tint(p)
		}
		if sprite.Sheet == "" || (!sprite.Dirty && sprite.Image != nil) || s.atlas == nil {
			return
		}
		img, err := s.atlas.Frame(sprite.Sheet, sprite.Frame)
		if err != nil {
			if !s.warned[sprite.Sheet] {
				s.warned[sprite.Sheet] = true
				log.Printf("SpriteSystem: entity %s: %v", e, err)
			}
			return
		}
		sprite.Image = img
		sprite.Dirty = false
	})
}

// SyncTransform copies the well-known position, scale, rotation and alpha
// properties onto t. Missing properties leave t unchanged.
func SyncTransform(p *component.Props, t *component.Transform) {
	t.X = p.Value(component.PropX, t.X)
	t.Y = p.Value(component.PropY, t.Y)
	t.ScaleX = p.Value(component.PropScaleX, t.ScaleX)
	t.ScaleY = p.Value(component.PropScaleY, t.ScaleY)
	t.Rotation = p.Value(component.PropRotation, t.Rotation)
	t.Alpha = p.Value(component.PropAlpha, t.Alpha)
}

// Tint returns the colour held in the tint.r/g/b properties, or nil when the
// entity is not tinted.
func Tint(p *component.Props) color.Color {
	r, okR := p.Get(component.PropTintR)
	g, okG := p.Get(component.PropTintG)
	b, okB := p.Get(component.PropTintB)
	if !okR || !okG || !okB {
		return nil
	}
	return colorful.Color{R: r, G: g, B: b}.Clamped()
}
