package component

import (
	"github.com/milk9111/spritefx/anim"
	"github.com/milk9111/spritefx/tween"
)

var AnimatorComponent = NewComponent[anim.Animator]()

var TweensComponent = NewComponent[tween.List]()
