package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/spritefx/anim"
	"github.com/milk9111/spritefx/ease"
	"github.com/milk9111/spritefx/ecs"
	"github.com/milk9111/spritefx/ecs/component"
	"github.com/milk9111/spritefx/ecs/entity"
	"github.com/milk9111/spritefx/ecs/system"
	"github.com/milk9111/spritefx/prefabs"
	"github.com/milk9111/spritefx/render"
	"github.com/milk9111/spritefx/tween"
	"golang.org/x/image/font/basicfont"
)

const (
	baseWidth  = 960
	baseHeight = 540

	// animation priorities
	prioMove   = 0
	prioAttack = 1
	prioHurt   = 2
)

type Options struct {
	Orbs   int
	Watch  bool
	Easing string
	Debug  bool
}

type Game struct {
	opts Options

	world    *ecs.World
	atlas    *render.Atlas
	deps     entity.Deps
	reloader *prefabs.Reloader
	watcher  *prefabs.Watcher
	renderer *system.RenderSystem

	ui      *ebitenui.UI
	pauseUI *ebitenui.UI
	face    ebtext.Face
	paused  bool

	hero   ecs.Entity
	orbs   []ecs.Entity
	easing string
	log    []string
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{
		opts:     opts,
		world:    ecs.NewWorld(),
		atlas:    render.NewAtlas(),
		renderer: system.NewRenderSystem(),
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
		easing:   opts.Easing,
		deps: entity.Deps{
			Library: anim.NewLibrary(),
			Table:   ease.NewTable(nil),
			Presets: prefabs.NewPresets(),
		},
	}

	if err := registerSheets(g.atlas); err != nil {
		return nil, fmt.Errorf("showcase: sheets: %w", err)
	}

	g.reloader = prefabs.NewReloader(g.deps.Library, g.deps.Table, g.deps.Presets)
	if err := g.reloader.LoadAll(); err != nil {
		return nil, fmt.Errorf("showcase: prefabs: %w", err)
	}
	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("showcase: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.world.AddSystem(system.NewAnimationSystem())
	g.world.AddSystem(system.NewTweenSystem())
	g.world.AddSystem(system.NewSpriteSystem(g.atlas))

	hero, err := entity.BuildEntity(g.world, g.deps, "hero.yaml")
	if err != nil {
		return nil, fmt.Errorf("showcase: %w", err)
	}
	g.hero = hero
	g.spawnOrbs(opts.Orbs)
	g.listen()

	g.ui = NewControlsUI(g)
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) spawnOrbs(n int) {
	if n <= 0 {
		return
	}
	// the first orb comes from its prefab so edits to orb.yaml show up on restart
	lead, err := entity.BuildEntity(g.world, g.deps, "orb.yaml")
	if err != nil {
		log.Printf("showcase: orb prefab: %v", err)
	} else {
		g.orbs = append(g.orbs, lead)
		n--
	}
	for i := 0; i < n; i++ {
		x := 80 + float64(i%6)*90
		y := 300 + float64(i/6)*70
		e, err := entity.NewAnimated(g.world, g.deps.Library, "orb", map[string]float64{
			component.PropX:      x,
			component.PropY:      y,
			component.PropScaleX: 1.5,
			component.PropScaleY: 1.5,
			component.PropTintR:  1,
			component.PropTintG:  1,
			component.PropTintB:  1,
		})
		if err != nil {
			log.Printf("showcase: orb: %v", err)
			continue
		}
		s, _ := ecs.Get(g.world, e, component.SpriteComponent.Kind())
		s.OriginX, s.OriginY = frameSize/2, frameSize/2
		system.Play(g.world, e, "pulse", 0)
		g.orbs = append(g.orbs, e)
	}
}

// listen wires game reactions to animation events.
func (g *Game) listen() {
	events := g.world.Events()
	events.On("swing", func(ev ecs.Event) {
		for _, orb := range g.orbs {
			system.Play(g.world, orb, "flash", 1)
			system.AnimateTint(g.world, orb, colorful.Hcl(rand.Float64()*360, 0.7, 0.7), 0.4, g.deps.Table.Resolve(g.easing))
		}
	})
	events.On("animEnd.die", func(ev ecs.Event) {
		_, err := g.deps.Presets.Apply(system.Tweens(g.world, ev.Entity), g.deps.Table, "fade_out", 0.2, func() {
			g.respawn(ev.Entity)
		})
		if err != nil {
			log.Printf("showcase: fade out %s: %v", ev.Entity, err)
			g.respawn(ev.Entity)
		}
	})
	if g.opts.Debug {
		events.On("anim", func(ev ecs.Event) { log.Printf("event %s on %s", ev.Qualified(), ev.Entity) })
		events.On("animEnd", func(ev ecs.Event) { log.Printf("event %s on %s", ev.Qualified(), ev.Entity) })
	}
}

func (g *Game) respawn(e ecs.Entity) {
	system.StopAnimation(g.world, e)
	system.Play(g.world, e, "idle", prioMove)
	if _, err := g.deps.Presets.Apply(system.Tweens(g.world, e), g.deps.Table, "fade_in", 0, nil); err != nil {
		log.Printf("showcase: fade in %s: %v", e, err)
	}
}

func (g *Game) note(format string, args ...any) {
	g.log = append(g.log, fmt.Sprintf(format, args...))
	if len(g.log) > 6 {
		g.log = g.log[len(g.log)-6:]
	}
}

// SetEasing switches the curve used for orb moves.
func (g *Game) SetEasing(name string) {
	g.easing = name
	g.note("easing: %s", name)
}

// ApplyPreset runs a tween preset on the hero.
func (g *Game) ApplyPreset(name string) {
	if _, err := g.deps.Presets.Apply(system.Tweens(g.world, g.hero), g.deps.Table, name, 0, nil); err != nil {
		g.note("%v", err)
		return
	}
	g.note("preset: %s", name)
}

func (g *Game) scatterOrbs() {
	fn := g.deps.Table.Resolve(g.easing)
	for _, orb := range g.orbs {
		system.StopTweens(g.world, orb)
		target := map[string]float64{
			component.PropX: 60 + rand.Float64()*(baseWidth-320),
			component.PropY: 180 + rand.Float64()*(baseHeight-220),
		}
		system.Animate(g.world, orb, target, 1.2, fn, tween.WithDelay(rand.Float64()*0.2))
		system.Chain(g.world, orb, map[string]float64{component.PropRotation: rand.Float64()*2 - 1}, 0.3, ease.OutBack)
	}
}

func (g *Game) handleInput() {
	w := g.world
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		system.Play(w, g.hero, "attack", prioAttack)
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		if system.Play(w, g.hero, "hurt", prioHurt) {
			g.ApplyPreset("hurt_flash")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		system.Play(w, g.hero, "die", prioHurt)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.scatterOrbs()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.ApplyPreset("pop")
	}

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		system.PlayKeepFrame(w, g.hero, "run", prioMove)
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		system.PlayKeepFrame(w, g.hero, "run_left", prioMove)
	default:
		if a, ok := ecs.Get(w, g.hero, component.AnimatorComponent.Kind()); ok && a.Priority() <= prioMove {
			system.Play(w, g.hero, "idle", prioMove)
		}
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if n := g.reloader.Poll(g.watcher); n > 0 {
		g.note("reloaded %d file(s)", n)
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	g.ui.Update()

	g.handleInput()
	g.world.Update(1 / float64(ebiten.TPS()))
	for _, ev := range g.world.Events().Drain() {
		if ev.Entity == g.hero && ev.Kind == anim.EventEnded {
			g.note("%s", ev.Qualified())
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x18, G: 0x1c, B: 0x24, A: 0xff})
	g.renderer.Draw(g.world, screen)
	g.drawCurve(screen, 20, 20, 160, 100)
	g.drawText(screen)
	g.ui.Draw(screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// drawCurve plots the selected easing over [0,1].
func (g *Game) drawCurve(screen *ebiten.Image, x, y, w, h float32) {
	fn := g.deps.Table.Resolve(g.easing)
	vector.StrokeRect(screen, x, y, w, h, 1, color.Gray{Y: 90}, false)
	const steps = 64
	prevX, prevY := x, y+h-float32(fn(0))*h
	for i := 1; i <= steps; i++ {
		t := float64(i) / steps
		v := fn(t)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		px := x + float32(t)*w
		py := y + h - float32(v)*h
		vector.StrokeLine(screen, prevX, prevY, px, py, 2, color.NRGBA{R: 0xff, G: 0xc0, B: 0x40, A: 0xff}, true)
		prevX, prevY = px, py
	}
}

func (g *Game) drawText(screen *ebiten.Image) {
	lines := []string{
		"A attack  H hurt  K die  arrows run  S scatter  P pop  SPACE pause",
		fmt.Sprintf("easing %s   tick %d   TPS %.0f", g.easing, g.world.Tick(), ebiten.ActualTPS()),
	}
	if a, ok := ecs.Get(g.world, g.hero, component.AnimatorComponent.Kind()); ok {
		lines = append(lines, fmt.Sprintf("hero %q frame %d prio %d", a.Current(), a.Frame(), a.Priority()))
	}
	lines = append(lines, g.log...)

	for i, line := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(200, 20+float64(i)*16)
		op.ColorScale.ScaleWithColor(color.White)
		ebtext.Draw(screen, line, g.face, op)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
