package component

// Transform is where and how an entity is drawn. Alpha is used as given, so
// a zero Transform is invisible; builders start it at 1.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	Alpha    float64
}

var TransformComponent = NewComponent[Transform]()
