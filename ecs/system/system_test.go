package system

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/spritefx/anim"
	"github.com/milk9111/spritefx/ease"
	"github.com/milk9111/spritefx/ecs"
	"github.com/milk9111/spritefx/ecs/component"
	"github.com/milk9111/spritefx/tween"
)

const dt = 0.1

func newFighter(t *testing.T) (*ecs.World, ecs.Entity) {
	t.Helper()
	lib := anim.NewLibrary()
	err := lib.Register("fighter", map[string]anim.Definition{
		"idle":   {Frames: []int{0, 1}, Rate: 0.2},
		"attack": {Frames: []int{4, 5, 6}, Rate: dt, Next: "idle", Trigger: "swing", TriggerData: 7},
		"walk":   {Frames: []int{2, 3}, Rate: 0.2, Flip: anim.FlipX},
	})
	if err != nil {
		t.Fatal(err)
	}

	w := ecs.NewWorld()
	w.AddSystem(NewAnimationSystem())
	w.AddSystem(NewTweenSystem())
	w.AddSystem(NewSpriteSystem(nil))

	e := ecs.CreateEntity(w)
	a := anim.NewAnimator(lib, "fighter")
	a.DefaultSheet = "fighter"
	must(t, ecs.Add(w, e, component.AnimatorComponent.Kind(), a))
	must(t, ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}))
	must(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1, Alpha: 1}))
	must(t, ecs.Add(w, e, component.PropsComponent.Kind(), component.NewProps(map[string]float64{"x": 0, "alpha": 1})))
	return w, e
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func TestPlayWithoutAnimator(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	if Play(w, e, "idle", 0) {
		t.Fatal("expected Play to fail without an animator")
	}
	StopAnimation(w, e)
}

func TestAnimationSystemDrivesSprite(t *testing.T) {
	w, e := newFighter(t)
	if !Play(w, e, "walk", 0) {
		t.Fatal("expected walk to start")
	}

	w.Update(dt)
	s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if s.Sheet != "fighter" || s.Frame != 2 || s.Flip != anim.FlipX || !s.Dirty {
		t.Fatalf("expected first walk frame flipped, got %+v", s)
	}

	w.Update(dt)
	w.Update(dt)
	if s.Frame != 3 {
		t.Fatalf("expected second walk frame after 0.2s, got %d", s.Frame)
	}
}

func TestAnimationEvents(t *testing.T) {
	w, e := newFighter(t)

	var got []string
	w.Events().On("animEnd.attack", func(ev ecs.Event) { got = append(got, ev.Qualified()) })
	w.Events().On("swing", func(ev ecs.Event) {
		if ev.Entity != e || ev.Data != 7 {
			t.Errorf("unexpected swing event %+v", ev)
		}
		got = append(got, ev.Qualified())
	})
	w.Events().On("anim.idle", func(ev ecs.Event) { got = append(got, ev.Qualified()) })

	Play(w, e, "attack", 1)
	for i := 0; i < 4; i++ {
		w.Update(dt)
	}

	want := []string{"animEnd.attack", "swing", "anim.idle"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	a, _ := ecs.Get(w, e, component.AnimatorComponent.Kind())
	if a.Current() != "idle" || a.Priority() != 0 {
		t.Fatalf("expected idle at priority 0, got %q/%d", a.Current(), a.Priority())
	}
}

func TestTweenSystem(t *testing.T) {
	w, e := newFighter(t)
	p, _ := ecs.Get(w, e, component.PropsComponent.Kind())

	// scheduled between updates: runs on the next one
	Animate(w, e, map[string]float64{"x": 10}, 1, ease.Linear)
	w.Update(0.5)
	if got := p.Value("x", -1); got != 5 {
		t.Fatalf("expected x=5, got %v", got)
	}

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X != 5 {
		t.Fatalf("expected transform synced to 5, got %v", tr.X)
	}

	StopTweens(w, e)
	w.Update(0.5)
	if got := p.Value("x", -1); got != 5 {
		t.Fatalf("expected stopped tween to leave x at 5, got %v", got)
	}
}

func TestTweenScheduledMidUpdateWaits(t *testing.T) {
	w, e := newFighter(t)
	p, _ := ecs.Get(w, e, component.PropsComponent.Kind())

	// the animation system runs before the tween system, so this tween is
	// scheduled on the tick it would otherwise be stepped
	w.Events().On("animEnd.attack", func(ev ecs.Event) {
		Animate(w, ev.Entity, map[string]float64{"alpha": 0}, 0.2, nil)
	})
	Play(w, e, "attack", 1)
	for i := 0; i < 3; i++ {
		w.Update(dt)
	}
	if got := p.Value("alpha", -1); got != 1 {
		t.Fatalf("expected fade to wait a tick, got alpha=%v", got)
	}
	w.Update(dt)
	if got := p.Value("alpha", -1); got != 0.5 {
		t.Fatalf("expected alpha 0.5 one tick later, got %v", got)
	}
}

func TestChainHelper(t *testing.T) {
	w, e := newFighter(t)
	p, _ := ecs.Get(w, e, component.PropsComponent.Kind())
	done := false
	Animate(w, e, map[string]float64{"x": 1}, 0.2, nil)
	Chain(w, e, map[string]float64{"x": 0}, 0.2, nil, tween.OnComplete(func() { done = true }))
	for i := 0; i < 4; i++ {
		w.Update(dt)
	}
	if !done || p.Value("x", -1) != 0 {
		t.Fatalf("expected chain to return x to 0, got %v done=%v", p.Value("x", -1), done)
	}
}

func TestAnimateTint(t *testing.T) {
	w, e := newFighter(t)
	p, _ := ecs.Get(w, e, component.PropsComponent.Kind())
	p.Set(component.PropTintR, 1)
	p.Set(component.PropTintG, 1)
	p.Set(component.PropTintB, 1)

	AnimateTint(w, e, colorful.Color{R: 1, G: 0, B: 0}, 0.2, nil)
	w.Update(dt)
	w.Update(dt)

	s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	r, g, b, a := s.Tint.RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Fatalf("expected red tint, got %v", s.Tint)
	}
}

func TestTint(t *testing.T) {
	cases := []struct {
		name  string
		props map[string]float64
		want  color.Color
	}{
		{"none", map[string]float64{}, nil},
		{"partial", map[string]float64{"tint.r": 1}, nil},
		{"clamped", map[string]float64{"tint.r": 1.5, "tint.g": -1, "tint.b": 0}, colorful.Color{R: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Tint(component.NewProps(c.props))
			if got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestDestroyedEntityStopsAnimating(t *testing.T) {
	w, e := newFighter(t)
	Play(w, e, "walk", 0)
	ecs.DestroyEntity(w, e)
	w.Update(dt)
	if n := w.Events().Len(); n != 0 {
		t.Fatalf("expected no events from a destroyed entity, got %d", n)
	}
	if Tweens(w, e) != nil {
		t.Fatal("expected no tween list for a dead entity")
	}
}
