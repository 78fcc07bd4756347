package prefabs

import (
	"errors"
	"log"
	"path/filepath"

	"github.com/milk9111/spritefx/anim"
	"github.com/milk9111/spritefx/ease"
)

// Reloader keeps a Library, an easing Table and tween Presets in sync with
// the prefab files.
type Reloader struct {
	Library *anim.Library
	Table   *ease.Table
	Presets *Presets

	AnimationsFile string
	TweensFile     string
}

// NewReloader returns a reloader over the default file names.
func NewReloader(lib *anim.Library, table *ease.Table, presets *Presets) *Reloader {
	return &Reloader{
		Library:        lib,
		Table:          table,
		Presets:        presets,
		AnimationsFile: AnimationsFile,
		TweensFile:     TweensFile,
	}
}

// LoadAll loads animations, easing scripts and tween presets. Scripts load
// before presets so presets may name scripted curves.
func (r *Reloader) LoadAll() error {
	var errs []error
	if err := RegisterAnimations(r.Library, r.AnimationsFile); err != nil {
		errs = append(errs, err)
	}
	if err := LoadEasingScripts(r.Table); err != nil {
		errs = append(errs, err)
	}
	if err := LoadTweens(r.TweensFile, r.Table, r.Presets); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Reload applies one changed file. Files the reloader does not own are
// ignored.
func (r *Reloader) Reload(path string) error {
	base := filepath.Base(path)
	switch {
	case isScriptFile(path):
		return LoadEasingScript(r.Table, base)
	case base == filepath.Base(r.AnimationsFile):
		return RegisterAnimations(r.Library, r.AnimationsFile)
	case base == filepath.Base(r.TweensFile):
		return LoadTweens(r.TweensFile, r.Table, r.Presets)
	}
	return nil
}

// Poll applies every change w has queued without blocking and returns how
// many files were reloaded. Failed reloads are logged and keep the previous
// definitions.
func (r *Reloader) Poll(w *Watcher) int {
	if w == nil {
		return 0
	}
	n := 0
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return n
			}
			if err := r.Reload(path); err != nil {
				log.Printf("prefabs: reload %s: %v", path, err)
				continue
			}
			log.Printf("prefabs: reloaded %s", path)
			n++
		case err, ok := <-w.Errors:
			if !ok {
				return n
			}
			log.Printf("prefabs: watch: %v", err)
		default:
			return n
		}
	}
}
