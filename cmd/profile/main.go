// Profiling:
// go build ./cmd/profile
// ./profile -mode cpu
// go tool pprof -http=":8000" -nodefraction=0.001 ./profile cpu.pprof

package main

import (
	"flag"
	"fmt"
	"log"

	ref "github.com/fogleman/ease"
	"github.com/milk9111/spritefx/anim"
	"github.com/milk9111/spritefx/ease"
	"github.com/milk9111/spritefx/ecs"
	"github.com/milk9111/spritefx/ecs/component"
	"github.com/milk9111/spritefx/ecs/entity"
	"github.com/milk9111/spritefx/ecs/system"
	"github.com/pkg/profile"
)

func main() {
	mode := flag.String("mode", "cpu", "cpu or mem")
	rounds := flag.Int("rounds", 20, "worlds to build")
	ticks := flag.Int("ticks", 600, "updates per world")
	count := flag.Int("entities", 2000, "animated entities per world")
	flag.Parse()

	var opt func(*profile.Profile)
	switch *mode {
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfileAllocs
	default:
		log.Fatalf("profile: unknown mode %q", *mode)
	}

	lib, err := library()
	if err != nil {
		log.Fatal(err)
	}

	p := profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook)
	run(lib, *rounds, *ticks, *count)
	p.Stop()
}

func library() (*anim.Library, error) {
	lib := anim.NewLibrary()
	err := lib.Register("orb", map[string]anim.Definition{
		"pulse": {Frames: []int{0, 1, 2, 3, 2, 1}, Rate: 0.08},
		"flash": {Frames: []int{3, 2, 3, 2}, Rate: 0.05, Next: "pulse", Trigger: "flashed"},
	})
	return lib, err
}

func run(lib *anim.Library, rounds, ticks, numEntities int) {
	table := ease.NewTable(nil)
	lut := ease.Sample(ref.OutBounce, 256)
	curves := []ease.Func{
		table.Resolve("outQuad"),
		table.Resolve("inOutElastic"),
		table.Resolve("08f8t-4"),
		func(t float64) float64 { return ease.SampleAt(lut, t) },
	}

	flashed := 0
	for range rounds {
		w := ecs.NewWorld()
		w.AddSystem(system.NewAnimationSystem())
		w.AddSystem(system.NewTweenSystem())
		w.Events().On("flashed", func(ecs.Event) { flashed++ })

		entities := make([]ecs.Entity, 0, numEntities)
		for i := range numEntities {
			e, err := entity.NewAnimated(w, lib, "orb", map[string]float64{
				component.PropX: float64(i % 100),
				component.PropY: float64(i / 100),
			})
			if err != nil {
				log.Fatal(err)
			}
			system.Play(w, e, "pulse", 0)
			entities = append(entities, e)
		}

		for tick := range ticks {
			if tick%60 == 0 {
				for i, e := range entities {
					fn := curves[(i+tick/60)%len(curves)]
					system.Animate(w, e, map[string]float64{component.PropX: float64(tick % 200)}, 0.5, fn)
					system.Chain(w, e, map[string]float64{component.PropAlpha: 0.5}, 0.25, fn)
					if i%7 == 0 {
						system.Play(w, e, "flash", 1)
					}
				}
			}
			w.Update(1.0 / 60)
			w.Events().Drain()
		}
	}
	fmt.Printf("profile: %d rounds, %d ticks, %d entities, %d triggers\n", rounds, ticks, numEntities, flashed)
}
