package component

import "sort"

// Props is an entity's bag of named numeric properties. Tweens read and
// write it; systems copy the well-known keys into Transform and Sprite.
type Props struct {
	values map[string]float64
}

// Well-known property names.
const (
	PropX        = "x"
	PropY        = "y"
	PropScaleX   = "scaleX"
	PropScaleY   = "scaleY"
	PropRotation = "rotation"
	PropAlpha    = "alpha"
	PropTint     = "tint"
	PropTintR    = PropTint + ".r"
	PropTintG    = PropTint + ".g"
	PropTintB    = PropTint + ".b"
)

// NewProps returns a bag holding a copy of initial.
func NewProps(initial map[string]float64) *Props {
	p := &Props{values: make(map[string]float64, len(initial))}
	for k, v := range initial {
		p.values[k] = v
	}
	return p
}

func (p *Props) Has(name string) bool {
	if p == nil {
		return false
	}
	_, ok := p.values[name]
	return ok
}

func (p *Props) Get(name string) (float64, bool) {
	if p == nil {
		return 0, false
	}
	v, ok := p.values[name]
	return v, ok
}

// Value returns name, or def when it is absent.
func (p *Props) Value(name string, def float64) float64 {
	if v, ok := p.Get(name); ok {
		return v
	}
	return def
}

func (p *Props) Set(name string, v float64) {
	if p == nil {
		return
	}
	if p.values == nil {
		p.values = make(map[string]float64)
	}
	p.values[name] = v
}

func (p *Props) Delete(name string) {
	if p == nil {
		return
	}
	delete(p.values, name)
}

// Names returns the property names in sorted order.
func (p *Props) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.values))
	for k := range p.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

var PropsComponent = NewComponent[Props]()
