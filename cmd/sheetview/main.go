package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spritefx/anim"
	"github.com/milk9111/spritefx/render"
)

const (
	viewSize  = 512
	sheetName = "sheet"
	animName  = "preview"
)

// viewer previews a sprite sheet through an Animator, so rate and flip
// behave as they would in game.
type viewer struct {
	atlas    *render.Atlas
	lib      *anim.Library
	animator *anim.Animator

	sheet string
	frame int
	flip  anim.Flip
	loops int
}

func (v *viewer) Emit(kind, name string, data any) {
	if kind == anim.EventLooped {
		v.loops++
	}
}

func (v *viewer) SetVisual(sheet string, frame int) {
	v.sheet, v.frame = sheet, frame
}

func (v *viewer) SetFlip(f anim.Flip) {
	v.flip = f
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		def, _ := v.lib.Lookup(sheetName, animName)
		def.Flip = nextFlip(def.Flip)
		if err := v.lib.Replace(sheetName, map[string]anim.Definition{animName: def}); err != nil {
			return err
		}
		v.animator.Stop()
		v.animator.Play(v, animName, 0)
	}
	v.animator.Step(v, 1/float64(ebiten.TPS()))
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	img, err := v.atlas.Frame(v.sheet, v.frame)
	if err != nil {
		return
	}
	fw := float64(img.Bounds().Dx())
	fh := float64(img.Bounds().Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-fw/2, -fh/2)
	sx, sy := 1.0, 1.0
	if v.flip.Horizontal() {
		sx = -1
	}
	if v.flip.Vertical() {
		sy = -1
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(viewSize/2, viewSize/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %d  loops %d  flip %q  (F to flip)", v.frame, v.loops, v.flip))
}

var flipOrder = []anim.Flip{anim.FlipNone, anim.FlipX, anim.FlipY, anim.FlipXY}

func nextFlip(f anim.Flip) anim.Flip {
	for i, o := range flipOrder {
		if o == f {
			return flipOrder[(i+1)%len(flipOrder)]
		}
	}
	return anim.FlipX
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	frameW := flag.Int("w", 128, "frame width")
	frameH := flag.Int("h", 128, "frame height")
	count := flag.Int("frames", 0, "frames to play, 0 for the whole sheet")
	fps := flag.Float64("fps", 12, "frames per second")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: sheetview [flags] sheet.png")
	}
	path := flag.Arg(0)

	atlas := render.NewAtlas()
	if err := atlas.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path), sheetName, *frameW, *frameH); err != nil {
		log.Fatal(err)
	}
	sheet, _ := atlas.Sheet(sheetName)
	maxFrames := sheet.Columns() * (sheet.Image.Bounds().Dy() / *frameH)
	if *count <= 0 || *count > maxFrames {
		*count = maxFrames
	}
	if *count == 0 {
		log.Fatalf("sheetview: %s has no %dx%d frames", path, *frameW, *frameH)
	}

	frames := make([]int, *count)
	for i := range frames {
		frames[i] = i
	}
	rate := 0.0
	if *fps > 0 {
		rate = 1 / *fps
	}

	lib := anim.NewLibrary()
	if err := lib.Register(sheetName, map[string]anim.Definition{
		animName: {Frames: frames, Rate: rate},
	}); err != nil {
		log.Fatal(err)
	}

	v := &viewer{atlas: atlas, lib: lib, animator: anim.NewAnimator(lib, sheetName)}
	v.animator.DefaultSheet = sheetName
	v.animator.Play(v, animName, 0)

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("Sprite Sheet Preview")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
