package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const crosshairSize = 10

var (
	colorCrosshairEntered = color.RGBA{225, 0, 0, 255}
	colorCrosshairNew     = color.RGBA{0, 225, 0, 255}
)

// drawCrosshairs marks the screen center. It turns red when the cell in front
// of the wall being looked at has already been walked through.
func (g *Game) drawCrosshairs(screen *ebiten.Image) {
	clr := colorCrosshairNew
	if g.frame.AimedEntered {
		clr = colorCrosshairEntered
	}

	x := float32(g.screenWidth)/2 - crosshairSize/2
	y := float32(g.screenHeight)/2 - crosshairSize/2
	vector.DrawFilledRect(screen, x, y, crosshairSize, crosshairSize, clr, false)
}
