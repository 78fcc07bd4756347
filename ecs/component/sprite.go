package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritefx/anim"
)

// Sprite is the visible frame of an entity. Sheet and Frame are written by
// the animation system; Image is resolved from them by the sprite system.
type Sprite struct {
	Sheet   string
	Frame   int
	Flip    anim.Flip
	Image   *ebiten.Image
	OriginX float64
	OriginY float64
	Tint    color.Color
	Dirty   bool
}

var SpriteComponent = NewComponent[Sprite]()
