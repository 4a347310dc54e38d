// rendering.go
package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"raymaze/raycast"
)

var (
	colorBackground     = color.RGBA{0, 0, 0, 255}
	colorCeiling        = color.RGBA{95, 95, 95, 255}
	colorFloor          = color.RGBA{65, 65, 65, 255}
	colorWallVertical   = color.RGBA{195, 195, 195, 255}
	colorWallHorizontal = color.RGBA{155, 155, 155, 255}
)

// wallColor shades walls by the grid line family the ray crossed, so corners
// read as two faces.
func wallColor(o raycast.Orientation) color.RGBA {
	if o == raycast.Vertical {
		return colorWallVertical
	}
	return colorWallHorizontal
}

func (g *Game) drawFirstPerson(screen *ebiten.Image) {
	w, h := float32(g.screenWidth), float32(g.screenHeight)

	vector.DrawFilledRect(screen, 0, 0, w, h/2, colorCeiling, false)
	vector.DrawFilledRect(screen, 0, h/2, w, h/2, colorFloor, false)

	hits, heights := g.frame.Hits, g.frame.Heights
	if len(hits) == 0 {
		return
	}
	colWidth := w / float32(len(hits))

	for i, hit := range hits {
		colHeight := float32(heights[i])
		vector.DrawFilledRect(screen,
			float32(i)*colWidth, h/2-colHeight/2,
			colWidth, colHeight,
			wallColor(hit.Orientation), false)
	}
}
