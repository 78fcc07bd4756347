package anim

import "math"

// Event kinds emitted by an Animator. Each is emitted with the animation name
// so listeners can subscribe to either the kind or "kind.name".
const (
	EventChanged = "anim"
	EventEnded   = "animEnd"
	EventLooped  = "animLoop"
	EventFrame   = "animFrame"
)

// Host is the entity an Animator drives.
type Host interface {
	// Emit notifies listeners of kind, qualified by name when name is set.
	Emit(kind, name string, data any)
	// SetVisual shows frame of sheet.
	SetVisual(sheet string, frame int)
	// SetFlip sets the sprite orientation.
	SetFlip(f Flip)
}

// Animator is the per-entity playback state. The zero value is idle but has
// no library; use NewAnimator.
type Animator struct {
	Library      *Library
	SpriteType   string
	DefaultRate  float64
	DefaultSheet string

	current     string
	priority    int
	frame       int
	elapsed     float64
	justChanged bool
}

// NewAnimator returns an idle animator for spriteType.
func NewAnimator(lib *Library, spriteType string) *Animator {
	return &Animator{
		Library:     lib,
		SpriteType:  spriteType,
		DefaultRate: 1.0 / 3,
		priority:    -1,
	}
}

// Current returns the playing animation name, or "" when idle.
func (a *Animator) Current() string { return a.current }

// Priority returns the playing priority, or -1 when idle.
func (a *Animator) Priority() int {
	if a.current == "" {
		return -1
	}
	return a.priority
}

// Frame returns the index into the playing definition's frames.
func (a *Animator) Frame() int { return a.frame }

// Elapsed returns the time spent on the current frame.
func (a *Animator) Elapsed() float64 { return a.elapsed }

// Playing reports whether an animation is active.
func (a *Animator) Playing() bool { return a.current != "" }

// Play starts name from its first frame if it differs from the playing
// animation and priority is at least the playing priority. Equal priority
// replaces, so two callers at the same priority can take turns.
func (a *Animator) Play(h Host, name string, priority int) bool {
	return a.play(h, name, priority, true)
}

// PlayKeepFrame is Play without rewinding the frame index or timer.
func (a *Animator) PlayKeepFrame(h Host, name string, priority int) bool {
	return a.play(h, name, priority, false)
}

func (a *Animator) play(h Host, name string, priority int, reset bool) bool {
	if name == a.current || priority < a.Priority() {
		return false
	}
	a.current = name
	a.priority = priority
	if reset {
		a.frame = 0
		a.elapsed = 0
		a.justChanged = true
	}
	hostOrNop(h).Emit(EventChanged, name, nil)
	return true
}

// Stop goes idle without emitting anything.
func (a *Animator) Stop() {
	a.current = ""
	a.priority = -1
	a.justChanged = false
}

// Step advances the playing animation by dt seconds. Large steps may skip
// several frames at once.
func (a *Animator) Step(h Host, dt float64) {
	if a.current == "" {
		return
	}
	h = hostOrNop(h)
	def, ok := a.Library.Lookup(a.SpriteType, a.current)
	if !ok {
		return
	}
	rate := def.Rate
	if rate == 0 {
		rate = a.DefaultRate
	}

	if a.frame >= len(def.Frames) {
		// a frame index kept by PlayKeepFrame may not fit this definition
		a.frame %= len(def.Frames)
	}

	a.elapsed += dt

	stepped := 0
	if a.justChanged {
		// the first frame stays visible for at least one step
		a.justChanged = false
	} else if rate > 0 {
		stepped = int(math.Floor(a.elapsed / rate))
		if stepped > 0 {
			a.elapsed -= float64(stepped) * rate
			a.frame += stepped
		}
	}

	if stepped > 0 {
		if a.frame >= len(def.Frames) {
			if def.ends() {
				a.end(h, def)
				return
			}
			a.frame %= len(def.Frames)
			h.Emit(EventLooped, a.current, nil)
		}
		h.Emit(EventFrame, "", nil)
	}

	a.show(h, def)
}

func (a *Animator) end(h Host, def Definition) {
	name := a.current
	a.frame = len(def.Frames) - 1
	h.Emit(EventEnded, name, nil)

	a.current = ""
	a.priority = -1
	if def.Trigger != "" {
		h.Emit(def.Trigger, "", def.TriggerData)
	}
	if def.Next != "" {
		a.Play(h, def.Next, def.NextPriority)
	}
}

func (a *Animator) show(h Host, def Definition) {
	sheet := def.Sheet
	if sheet == "" {
		sheet = a.DefaultSheet
	}
	h.SetVisual(sheet, def.Frames[a.frame])
	if def.Flip != FlipUnset {
		h.SetFlip(def.Flip)
	}
}

// nopHost stands in for a nil Host so the animator still keeps time.
type nopHost struct{}

func (nopHost) Emit(kind, name string, data any)  {}
func (nopHost) SetVisual(sheet string, frame int) {}
func (nopHost) SetFlip(f Flip)                    {}

func hostOrNop(h Host) Host {
	if h == nil {
		return nopHost{}
	}
	return h
}
