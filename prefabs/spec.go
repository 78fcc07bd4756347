package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/spritefx/anim"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFlip = errors.New("prefabs: unknown flip")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// AnimationSetSpec is the file format of animation definitions, keyed by
// sprite type and then animation name.
type AnimationSetSpec struct {
	SpriteTypes map[string]map[string]AnimationDefSpec `yaml:"sprite_types"`
}

type AnimationDefSpec struct {
	Frames       []int   `yaml:"frames"`
	Rate         float64 `yaml:"rate"`
	Loop         *bool   `yaml:"loop"`
	Next         string  `yaml:"next"`
	NextPriority int     `yaml:"next_priority"`
	Trigger      string  `yaml:"trigger"`
	TriggerData  any     `yaml:"trigger_data"`
	Sheet        string  `yaml:"sheet"`
	Flip         string  `yaml:"flip"`
}

// Definition converts the spec. Loop defaults to true.
func (s AnimationDefSpec) Definition() (anim.Definition, error) {
	flip, err := ParseFlip(s.Flip)
	if err != nil {
		return anim.Definition{}, err
	}
	return anim.Definition{
		Frames:       append([]int(nil), s.Frames...),
		Rate:         s.Rate,
		NoLoop:       s.Loop != nil && !*s.Loop,
		Next:         s.Next,
		NextPriority: s.NextPriority,
		Trigger:      s.Trigger,
		TriggerData:  s.TriggerData,
		Sheet:        s.Sheet,
		Flip:         flip,
	}, nil
}

// Definitions converts every sprite type's animations.
func (s AnimationSetSpec) Definitions() (map[string]map[string]anim.Definition, error) {
	out := make(map[string]map[string]anim.Definition, len(s.SpriteTypes))
	for spriteType, defs := range s.SpriteTypes {
		converted := make(map[string]anim.Definition, len(defs))
		for name, def := range defs {
			d, err := def.Definition()
			if err != nil {
				return nil, fmt.Errorf("prefabs: animation %s/%s: %w", spriteType, name, err)
			}
			converted[name] = d
		}
		out[spriteType] = converted
	}
	return out, nil
}

// ParseFlip accepts "", "none", "x", "y" and "xy".
func ParseFlip(s string) (anim.Flip, error) {
	switch f := anim.Flip(strings.ToLower(strings.TrimSpace(s))); f {
	case anim.FlipUnset, anim.FlipNone, anim.FlipX, anim.FlipY, anim.FlipXY:
		return f, nil
	default:
		return anim.FlipUnset, fmt.Errorf("%w: %q", ErrUnknownFlip, s)
	}
}

// TweenSetSpec is the file format of tween presets and named easing curves.
type TweenSetSpec struct {
	// Curves names spline keys so presets can refer to them by name.
	Curves  map[string]string          `yaml:"curves"`
	Presets map[string][]TweenStepSpec `yaml:"presets"`
}

// TweenStepSpec is one step of a preset. The first step is animated; later
// steps chain unless Parallel is set.
type TweenStepSpec struct {
	Targets  map[string]float64 `yaml:"targets"`
	Tint     *YAMLColor         `yaml:"tint"`
	Duration float64            `yaml:"duration"`
	Delay    float64            `yaml:"delay"`
	Easing   string             `yaml:"easing"`
	Parallel bool               `yaml:"parallel"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Colorful returns the colour for Lab blending. Alpha is dropped.
func (c *YAMLColor) Colorful() colorful.Color {
	if c == nil || c.Color == nil {
		return colorful.Color{}
	}
	cf, _ := colorful.MakeColor(c.Color)
	return cf
}
