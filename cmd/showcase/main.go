package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	orbs := flag.Int("orbs", 12, "number of tweened orbs to spawn")
	watch := flag.Bool("watch", false, "hot reload prefabs/ on change")
	easing := flag.String("easing", "outBounce", "initial easing name or spline key")
	debug := flag.Bool("debug", false, "log every animation event")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("spritefx showcase")

	game, err := NewGame(Options{
		Orbs:   *orbs,
		Watch:  *watch,
		Easing: *easing,
		Debug:  *debug,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
