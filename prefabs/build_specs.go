package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is an entity prefab: a name plus raw component specs keyed
// by component name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
	ScaleX   float64  `yaml:"scale_x"`
	ScaleY   float64  `yaml:"scale_y"`
	Rotation float64  `yaml:"rotation"`
	Alpha    *float64 `yaml:"alpha"`
}

type SpriteComponentSpec struct {
	Sheet   string  `yaml:"sheet"`
	Frame   int     `yaml:"frame"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	Flip    string  `yaml:"flip"`
}

type PropsComponentSpec map[string]float64

type AnimatorComponentSpec struct {
	SpriteType   string  `yaml:"sprite_type"`
	DefaultRate  float64 `yaml:"default_rate"`
	DefaultSheet string  `yaml:"default_sheet"`
	Play         string  `yaml:"play"`
	Priority     int     `yaml:"priority"`
}

type TweensComponentSpec struct {
	Preset string  `yaml:"preset"`
	Delay  float64 `yaml:"delay"`
}
