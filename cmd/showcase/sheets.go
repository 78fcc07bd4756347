package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/spritefx/render"
)

const frameSize = 16

// buildSheet paints cols x rows frames. Each frame gets its own hue so frame
// changes are visible, and a bar whose width follows the frame index.
func buildSheet(cols, rows int, hue, hueStep float64) *ebiten.Image {
	sheet := ebiten.NewImage(cols*frameSize, rows*frameSize)
	for i := 0; i < cols*rows; i++ {
		rect := render.FrameRect(i, cols, frameSize, frameSize)
		frame := sheet.SubImage(rect).(*ebiten.Image)
		frame.Fill(colorful.Hcl(hue+float64(i)*hueStep, 0.6, 0.7).Clamped())

		bar := image.Rect(rect.Min.X+2, rect.Max.Y-4, rect.Min.X+2+(i%cols+1)*(frameSize-4)/cols, rect.Max.Y-2)
		sheet.SubImage(bar).(*ebiten.Image).Fill(colorful.Hcl(hue, 0.2, 0.2).Clamped())
	}
	return sheet
}

func registerSheets(atlas *render.Atlas) error {
	if err := atlas.Register("hero", buildSheet(8, 2, 200, 12), frameSize, frameSize); err != nil {
		return err
	}
	return atlas.Register("orb", buildSheet(4, 1, 40, 25), frameSize, frameSize)
}
