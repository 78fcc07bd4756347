// Package render resolves animation frames to drawable images.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrUnknownSheet = errors.New("render: unknown sheet")

// Sheet is a grid of equally sized frames numbered left to right, top to
// bottom.
type Sheet struct {
	Image  *ebiten.Image
	FrameW int
	FrameH int
}

// Columns returns how many frames fit on one row.
func (s Sheet) Columns() int {
	if s.Image == nil || s.FrameW <= 0 {
		return 0
	}
	return s.Image.Bounds().Dx() / s.FrameW
}

// FrameRect returns the source rectangle of frame on a sheet with cols
// columns of w x h frames. It returns the empty rectangle for invalid input.
func FrameRect(frame, cols, w, h int) image.Rectangle {
	if frame < 0 || cols <= 0 || w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	x := (frame % cols) * w
	y := (frame / cols) * h
	return image.Rect(x, y, x+w, y+h)
}

type frameKey struct {
	sheet string
	frame int
}

// Atlas stores sprite sheets by name and caches frame sub-images.
type Atlas struct {
	mu     sync.RWMutex
	sheets map[string]Sheet
	frames map[frameKey]*ebiten.Image
}

// NewAtlas creates an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{
		sheets: make(map[string]Sheet),
		frames: make(map[frameKey]*ebiten.Image),
	}
}

// Register adds or replaces a sheet, dropping any frames cut from the old one.
func (a *Atlas) Register(name string, img *ebiten.Image, frameW, frameH int) error {
	if name == "" || img == nil {
		return fmt.Errorf("render: register %q: missing name or image", name)
	}
	if frameW <= 0 || frameH <= 0 {
		return fmt.Errorf("render: register %q: invalid frame size %dx%d", name, frameW, frameH)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sheets[name] = Sheet{Image: img, FrameW: frameW, FrameH: frameH}
	for k := range a.frames {
		if k.sheet == name {
			delete(a.frames, k)
		}
	}
	return nil
}

// Load decodes a PNG sheet from fsys and registers it under name.
func (a *Atlas) Load(fsys fs.FS, path, name string, frameW, frameH int) error {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("render: load %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("render: decode %s: %w", path, err)
	}
	return a.Register(name, ebiten.NewImageFromImage(img), frameW, frameH)
}

// Sheet returns the named sheet.
func (a *Atlas) Sheet(name string) (Sheet, bool) {
	if a == nil {
		return Sheet{}, false
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	s, ok := a.sheets[name]
	return s, ok
}

// Frame returns the sub-image showing frame of sheet.
func (a *Atlas) Frame(sheet string, frame int) (*ebiten.Image, error) {
	if a == nil {
		return nil, ErrUnknownSheet
	}
	key := frameKey{sheet: sheet, frame: frame}
	a.mu.RLock()
	img, ok := a.frames[key]
	s, known := a.sheets[sheet]
	a.mu.RUnlock()
	if ok {
		return img, nil
	}
	if !known {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSheet, sheet)
	}

	rect := FrameRect(frame, s.Columns(), s.FrameW, s.FrameH)
	if rect.Empty() || !rect.In(s.Image.Bounds()) {
		return nil, fmt.Errorf("render: frame %d out of range on sheet %q", frame, sheet)
	}
	img = s.Image.SubImage(rect).(*ebiten.Image)

	a.mu.Lock()
	if cached, ok := a.frames[key]; ok {
		img = cached
	} else {
		a.frames[key] = img
	}
	a.mu.Unlock()
	return img, nil
}
