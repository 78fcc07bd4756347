// Package anim plays named frame animations for sprites. Definitions are
// registered per sprite type in a Library; each entity carries an Animator
// that tracks which definition is playing and advances it by elapsed time.
package anim

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrEmptyFrames = errors.New("anim: definition has no frames")
	ErrInvalidRate = errors.New("anim: rate must not be negative")
	ErrNoSprite    = errors.New("anim: sprite type is empty")
)

// Flip is a sprite orientation override.
type Flip string

const (
	// FlipUnset leaves the entity's flip untouched.
	FlipUnset Flip = ""
	FlipNone  Flip = "none"
	FlipX     Flip = "x"
	FlipY     Flip = "y"
	FlipXY    Flip = "xy"
)

// Horizontal reports whether f mirrors on the x axis.
func (f Flip) Horizontal() bool { return f == FlipX || f == FlipXY }

// Vertical reports whether f mirrors on the y axis.
func (f Flip) Vertical() bool { return f == FlipY || f == FlipXY }

// Definition describes one named animation.
type Definition struct {
	// Frames are sheet frame indices, played in order.
	Frames []int
	// Rate is seconds per frame. Zero uses the animator's DefaultRate.
	Rate float64
	// NoLoop stops on the last frame instead of wrapping.
	NoLoop bool
	// Next is played with NextPriority when this animation ends.
	// Setting Next also ends the animation instead of looping.
	Next         string
	NextPriority int
	// Trigger is emitted with TriggerData when the animation ends.
	Trigger     string
	TriggerData any
	// Sheet overrides the animator's default sheet.
	Sheet string
	Flip  Flip
}

func (d Definition) validate() error {
	if len(d.Frames) == 0 {
		return ErrEmptyFrames
	}
	if d.Rate < 0 {
		return ErrInvalidRate
	}
	return nil
}

// ends reports whether running off the last frame finishes the animation.
func (d Definition) ends() bool {
	return d.NoLoop || d.Next != ""
}

// Library stores definitions keyed by sprite type, then animation name. It
// is safe for concurrent use so definitions can be reloaded while entities
// are stepping.
type Library struct {
	mu    sync.RWMutex
	types map[string]map[string]Definition
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{types: make(map[string]map[string]Definition)}
}

// Register adds defs to spriteType, replacing definitions with the same name.
// Nothing is registered if any definition is invalid.
func (l *Library) Register(spriteType string, defs map[string]Definition) error {
	checked, err := check(spriteType, defs)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	set, ok := l.types[spriteType]
	if !ok {
		set = make(map[string]Definition, len(checked))
		l.types[spriteType] = set
	}
	for name, def := range checked {
		set[name] = def
	}
	return nil
}

// Replace swaps every definition of spriteType for defs.
func (l *Library) Replace(spriteType string, defs map[string]Definition) error {
	checked, err := check(spriteType, defs)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.types[spriteType] = checked
	l.mu.Unlock()
	return nil
}

// Lookup returns the definition of name for spriteType.
func (l *Library) Lookup(spriteType, name string) (Definition, bool) {
	if l == nil {
		return Definition{}, false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	def, ok := l.types[spriteType][name]
	return def, ok
}

// Names returns the animation names registered for spriteType.
func (l *Library) Names(spriteType string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	set := l.types[spriteType]
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	return names
}

func check(spriteType string, defs map[string]Definition) (map[string]Definition, error) {
	if spriteType == "" {
		return nil, ErrNoSprite
	}
	out := make(map[string]Definition, len(defs))
	for name, def := range defs {
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("anim: register %s/%s: %w", spriteType, name, err)
		}
		def.Frames = append([]int(nil), def.Frames...)
		out[name] = def
	}
	return out, nil
}
