package anim

import (
	"errors"
	"testing"
)

type emitted struct {
	kind string
	name string
	data any
}

type recordingHost struct {
	events []emitted
	sheet  string
	frame  int
	flip   Flip
	shown  int
}

func (h *recordingHost) Emit(kind, name string, data any) {
	h.events = append(h.events, emitted{kind: kind, name: name, data: data})
}

func (h *recordingHost) SetVisual(sheet string, frame int) {
	h.sheet = sheet
	h.frame = frame
	h.shown++
}

func (h *recordingHost) SetFlip(f Flip) {
	h.flip = f
}

func (h *recordingHost) count(kind string) int {
	n := 0
	for _, e := range h.events {
		if e.kind == kind {
			n++
		}
	}
	return n
}

func (h *recordingHost) reset() {
	h.events = nil
}

func newTestAnimator(t *testing.T, defs map[string]Definition) *Animator {
	t.Helper()
	lib := NewLibrary()
	if err := lib.Register("hero", defs); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	a := NewAnimator(lib, "hero")
	a.DefaultSheet = "hero_sheet"
	return a
}

func TestLibraryRegister(t *testing.T) {
	lib := NewLibrary()

	cases := []struct {
		name string
		typ  string
		defs map[string]Definition
		want error
	}{
		{"ok", "hero", map[string]Definition{"run": {Frames: []int{0, 1}}}, nil},
		{"empty_frames", "hero", map[string]Definition{"bad": {}}, ErrEmptyFrames},
		{"negative_rate", "hero", map[string]Definition{"bad": {Frames: []int{0}, Rate: -1}}, ErrInvalidRate},
		{"no_sprite", "", map[string]Definition{"run": {Frames: []int{0}}}, ErrNoSprite},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := lib.Register(c.typ, c.defs)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}

	if _, ok := lib.Lookup("hero", "bad"); ok {
		t.Fatalf("invalid definition should not be registered")
	}
	def, ok := lib.Lookup("hero", "run")
	if !ok || len(def.Frames) != 2 {
		t.Fatalf("expected run with 2 frames, got %+v ok=%v", def, ok)
	}

	if err := lib.Register("hero", map[string]Definition{"jump": {Frames: []int{5}}}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, ok := lib.Lookup("hero", "run"); !ok {
		t.Fatalf("Register should keep existing definitions")
	}
	if err := lib.Replace("hero", map[string]Definition{"jump": {Frames: []int{5}}}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if _, ok := lib.Lookup("hero", "run"); ok {
		t.Fatalf("Replace should drop definitions not in the new set")
	}
}

func TestLibraryCopiesFrames(t *testing.T) {
	frames := []int{1, 2, 3}
	lib := NewLibrary()
	if err := lib.Register("hero", map[string]Definition{"run": {Frames: frames}}); err != nil {
		t.Fatal(err)
	}
	frames[0] = 99
	def, _ := lib.Lookup("hero", "run")
	if def.Frames[0] != 1 {
		t.Fatalf("library should not alias caller frames")
	}
}

func TestPlayPriority(t *testing.T) {
	a := newTestAnimator(t, map[string]Definition{
		"idle":   {Frames: []int{0}},
		"run":    {Frames: []int{1, 2}},
		"attack": {Frames: []int{3, 4}},
	})
	h := &recordingHost{}

	if a.Priority() != -1 || a.Playing() {
		t.Fatalf("new animator should be idle")
	}

	tests := []struct {
		name     string
		play     string
		priority int
		changed  bool
		current  string
	}{
		{"start_from_idle", "run", 0, true, "run"},
		{"same_name_is_noop", "run", 5, false, "run"},
		{"equal_priority_replaces", "idle", 0, true, "idle"},
		{"higher_priority_replaces", "attack", 2, true, "attack"},
		{"lower_priority_ignored", "run", 1, false, "attack"},
		{"equal_priority_after_raise", "run", 2, true, "run"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h.reset()
			if got := a.Play(h, tc.play, tc.priority); got != tc.changed {
				t.Fatalf("expected changed=%v, got %v", tc.changed, got)
			}
			if a.Current() != tc.current {
				t.Fatalf("expected current %q, got %q", tc.current, a.Current())
			}
			if tc.changed {
				if len(h.events) != 1 || h.events[0].kind != EventChanged || h.events[0].name != tc.play {
					t.Fatalf("expected one %s event for %s, got %+v", EventChanged, tc.play, h.events)
				}
			} else if len(h.events) != 0 {
				t.Fatalf("expected no events, got %+v", h.events)
			}
		})
	}
}

func TestStepJustChangedHoldsFirstFrame(t *testing.T) {
	a := newTestAnimator(t, map[string]Definition{
		"run": {Frames: []int{10, 11, 12}, Rate: 0.1},
	})
	h := &recordingHost{}
	a.Play(h, "run", 0)

	// the step right after Play never advances, whatever dt is
	a.Step(h, 0.25)
	if a.Frame() != 0 || h.frame != 10 || h.sheet != "hero_sheet" {
		t.Fatalf("expected frame 0 shown on first step, got index=%d frame=%d sheet=%q", a.Frame(), h.frame, h.sheet)
	}
	// time from that step is kept
	a.Step(h, 0)
	if a.Frame() != 2 || h.frame != 12 {
		t.Fatalf("expected accumulated time to advance to index 2, got %d", a.Frame())
	}
}

func TestStepLoopingReturnsToStart(t *testing.T) {
	rates := []float64{0.125, 0.25, 0.5, 1}
	for _, rate := range rates {
		a := newTestAnimator(t, map[string]Definition{
			"spin": {Frames: []int{0, 1, 2, 3}, Rate: rate},
		})
		h := &recordingHost{}
		a.Play(h, "spin", 0)
		a.Step(h, 0)

		// quarter-rate steps stay exact in binary for these rates
		dt := rate / 4
		for i := 0; i < 4*4; i++ {
			a.Step(h, dt)
		}
		if a.Frame() != 0 {
			t.Fatalf("rate %v: expected to wrap back to frame 0, got %d", rate, a.Frame())
		}
		if h.count(EventLooped) != 1 {
			t.Fatalf("rate %v: expected one loop event, got %d", rate, h.count(EventLooped))
		}
		if h.count(EventFrame) != 4 {
			t.Fatalf("rate %v: expected 4 frame events, got %d", rate, h.count(EventFrame))
		}
		if h.count(EventEnded) != 0 {
			t.Fatalf("rate %v: looping animation should not end", rate)
		}
	}
}

func TestStepNonLoopingEndsOnce(t *testing.T) {
	a := newTestAnimator(t, map[string]Definition{
		"die": {Frames: []int{0, 1, 2}, Rate: 0.1, NoLoop: true},
	})
	h := &recordingHost{}
	a.Play(h, "die", 3)
	a.Step(h, 0)
	h.reset()

	a.Step(h, 1.0)
	if a.Frame() != 2 {
		t.Fatalf("expected frame clamped to 2, got %d", a.Frame())
	}
	if a.Playing() || a.Priority() != -1 {
		t.Fatalf("expected idle after end")
	}
	if h.count(EventEnded) != 1 || h.count(EventLooped) != 0 {
		t.Fatalf("expected one end and no loop event, got %+v", h.events)
	}
	if h.events[0].name != "die" {
		t.Fatalf("expected end event qualified with die, got %q", h.events[0].name)
	}

	for i := 0; i < 5; i++ {
		a.Step(h, 1.0)
	}
	if h.count(EventEnded) != 1 {
		t.Fatalf("end should fire once per playback, got %d", h.count(EventEnded))
	}
}

func TestStepNonLoopingFrameNeverOverflows(t *testing.T) {
	a := newTestAnimator(t, map[string]Definition{
		"once": {Frames: []int{0, 1, 2, 3}, Rate: 0.1, NoLoop: true},
	})
	h := &recordingHost{}
	a.Play(h, "once", 0)
	for i := 0; i < 40; i++ {
		a.Step(h, 0.03)
		if a.Frame() > 3 {
			t.Fatalf("frame index %d out of range", a.Frame())
		}
	}
	if h.count(EventEnded) != 1 {
		t.Fatalf("expected exactly one end, got %d", h.count(EventEnded))
	}
}

func TestStepChainsToNext(t *testing.T) {
	a := newTestAnimator(t, map[string]Definition{
		"attack": {Frames: []int{5, 6}, Rate: 0.1, Next: "idle", NextPriority: 1, Trigger: "swing", TriggerData: 7},
		"idle":   {Frames: []int{0}, Sheet: "idle_sheet", Flip: FlipX},
	})
	h := &recordingHost{}
	a.Play(h, "attack", 4)
	a.Step(h, 0)
	h.reset()

	a.Step(h, 0.2)
	want := []emitted{
		{kind: EventEnded, name: "attack"},
		{kind: "swing", data: 7},
		{kind: EventChanged, name: "idle"},
	}
	if len(h.events) != len(want) {
		t.Fatalf("expected %d events, got %+v", len(want), h.events)
	}
	for i := range want {
		if h.events[i] != want[i] {
			t.Fatalf("event %d: expected %+v, got %+v", i, want[i], h.events[i])
		}
	}
	if a.Current() != "idle" || a.Priority() != 1 {
		t.Fatalf("expected idle at priority 1, got %q at %d", a.Current(), a.Priority())
	}

	shown := h.shown
	a.Step(h, 0.01)
	if h.shown != shown+1 || h.sheet != "idle_sheet" || h.frame != 0 || h.flip != FlipX {
		t.Fatalf("expected idle visuals next step, got sheet=%q frame=%d flip=%q", h.sheet, h.frame, h.flip)
	}
}

func TestStepNextEvenWhenLooping(t *testing.T) {
	a := newTestAnimator(t, map[string]Definition{
		"hit":  {Frames: []int{0, 1}, Rate: 0.5, Next: "idle"},
		"idle": {Frames: []int{0}},
	})
	h := &recordingHost{}
	a.Play(h, "hit", 0)
	a.Step(h, 0)
	a.Step(h, 1.0)
	if a.Current() != "idle" || h.count(EventLooped) != 0 {
		t.Fatalf("expected next to win over looping")
	}
}

func TestStepDefaultRate(t *testing.T) {
	a := newTestAnimator(t, map[string]Definition{
		"walk": {Frames: []int{0, 1, 2}},
	})
	a.DefaultRate = 0.5
	h := &recordingHost{}
	a.Play(h, "walk", 0)
	a.Step(h, 0)
	a.Step(h, 0.25)
	if a.Frame() != 0 {
		t.Fatalf("expected no advance before default rate, got %d", a.Frame())
	}
	a.Step(h, 0.25)
	if a.Frame() != 1 {
		t.Fatalf("expected advance at default rate, got %d", a.Frame())
	}
}

func TestStepFlipOnlyWhenSet(t *testing.T) {
	a := newTestAnimator(t, map[string]Definition{
		"walk": {Frames: []int{0}},
		"back": {Frames: []int{0}, Flip: FlipNone},
	})
	h := &recordingHost{flip: FlipY}
	a.Play(h, "walk", 0)
	a.Step(h, 0.1)
	if h.flip != FlipY {
		t.Fatalf("flip should be untouched, got %q", h.flip)
	}
	a.Play(h, "back", 0)
	a.Step(h, 0.1)
	if h.flip != FlipNone {
		t.Fatalf("expected explicit flip none, got %q", h.flip)
	}
}

func TestStepIdleAndUnknown(t *testing.T) {
	a := newTestAnimator(t, map[string]Definition{"run": {Frames: []int{0, 1}}})
	h := &recordingHost{}
	a.Step(h, 1)
	if h.shown != 0 || len(h.events) != 0 {
		t.Fatalf("idle step should do nothing")
	}
	a.Play(h, "missing", 0)
	h.reset()
	a.Step(h, 1)
	if h.shown != 0 || len(h.events) != 0 {
		t.Fatalf("unknown animation step should do nothing")
	}
}

func TestPlayKeepFrame(t *testing.T) {
	a := newTestAnimator(t, map[string]Definition{
		"walk":      {Frames: []int{0, 1, 2, 3}, Rate: 0.1},
		"walk_gun":  {Frames: []int{10, 11, 12, 13}, Rate: 0.1},
		"short_gun": {Frames: []int{20, 21}, Rate: 0.1},
	})
	h := &recordingHost{}
	a.Play(h, "walk", 0)
	a.Step(h, 0)
	a.Step(h, 0.1)
	a.Step(h, 0.1)
	if a.Frame() != 2 {
		t.Fatalf("expected frame 2, got %d", a.Frame())
	}

	a.PlayKeepFrame(h, "walk_gun", 0)
	a.Step(h, 0.05)
	if a.Frame() != 2 || h.frame != 12 {
		t.Fatalf("expected frame kept at 2 (12), got %d (%d)", a.Frame(), h.frame)
	}

	a.PlayKeepFrame(h, "short_gun", 0)
	a.Step(h, 0.01)
	if a.Frame() != 0 || h.frame != 20 {
		t.Fatalf("expected kept frame wrapped into shorter animation, got %d", a.Frame())
	}
}

func TestStop(t *testing.T) {
	a := newTestAnimator(t, map[string]Definition{"run": {Frames: []int{0, 1}}})
	h := &recordingHost{}
	a.Play(h, "run", 9)
	h.reset()
	a.Stop()
	if a.Playing() || a.Priority() != -1 || len(h.events) != 0 {
		t.Fatalf("expected silent stop")
	}
	if !a.Play(h, "run", 0) {
		t.Fatalf("expected play after stop to succeed at any priority")
	}
}

func TestNilHostKeepsTime(t *testing.T) {
	a := newTestAnimator(t, map[string]Definition{
		"swing": {Frames: []int{0, 1, 2}, Rate: 0.1, NoLoop: true, Next: "idle", Trigger: "hit"},
		"idle":  {Frames: []int{5}},
	})
	if !a.Play(nil, "swing", 1) {
		t.Fatalf("expected play with nil host to succeed")
	}
	a.Step(nil, 0.05)
	a.Step(nil, 0.1)
	if a.Frame() != 1 {
		t.Fatalf("expected frame 1, got %d", a.Frame())
	}
	a.Step(nil, 1)
	if a.Current() != "idle" {
		t.Fatalf("expected swing to end into idle, got %q", a.Current())
	}
}
