package prefabs

import (
	"fmt"
	"sort"

	"github.com/milk9111/spritefx/anim"
)

// LoadAnimations reads an animation set file.
func LoadAnimations(filename string) (map[string]map[string]anim.Definition, error) {
	spec, err := LoadSpec[AnimationSetSpec](filename)
	if err != nil {
		return nil, err
	}
	defs, err := spec.Definitions()
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return defs, nil
}

// RegisterAnimations loads filename into lib. Each sprite type in the file
// replaces that type's previous definitions; types not in the file are left
// alone. Nothing is registered if any definition is invalid.
func RegisterAnimations(lib *anim.Library, filename string) error {
	defs, err := LoadAnimations(filename)
	if err != nil {
		return err
	}

	// validate everything before touching lib
	scratch := anim.NewLibrary()
	spriteTypes := make([]string, 0, len(defs))
	for spriteType, set := range defs {
		if err := scratch.Register(spriteType, set); err != nil {
			return fmt.Errorf("prefabs: %s: %w", filename, err)
		}
		spriteTypes = append(spriteTypes, spriteType)
	}
	sort.Strings(spriteTypes)

	for _, spriteType := range spriteTypes {
		if err := lib.Replace(spriteType, defs[spriteType]); err != nil {
			return fmt.Errorf("prefabs: %s: %w", filename, err)
		}
	}
	return nil
}
