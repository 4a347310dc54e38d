// minimap.go
package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"raymaze/raycast"
	"raymaze/vec"
)

var (
	colorMapWall       = color.RGBA{128, 128, 128, 255}
	colorMapEntered    = color.RGBA{40, 40, 70, 255}
	colorMapRay        = color.RGBA{125, 225, 125, 255}
	colorAimVertical   = color.RGBA{225, 0, 0, 255}
	colorAimHorizontal = color.RGBA{0, 0, 225, 255}
)

// mapScale fits the whole maze on screen, never enlarging it.
func (g *Game) mapScale() float32 {
	lvl := g.session.Level()
	world := float64(lvl.Size()) * lvl.CellSize()
	fit := math.Min(float64(g.screenWidth), float64(g.screenHeight)) / world
	return float32(math.Min(1, fit))
}

func (g *Game) drawTopDown(screen *ebiten.Image) {
	scale := g.mapScale()
	lvl := g.session.Level()
	cell := float32(lvl.CellSize()) * scale

	// cells the player has walked through
	for row := 0; row < lvl.Size(); row++ {
		for col := 0; col < lvl.Size(); col++ {
			if lvl.IsEntered(row*lvl.Size() + col) {
				vector.DrawFilledRect(screen, float32(col)*cell, float32(row)*cell, cell, cell, colorMapEntered, false)
			}
		}
	}

	for _, r := range g.frame.Walls {
		vector.DrawFilledRect(screen,
			float32(r.X)*scale, float32(r.Y)*scale,
			float32(r.W)*scale, float32(r.H)*scale,
			colorMapWall, false)
	}

	origin := g.frame.Origin
	for _, hit := range g.frame.Hits {
		drawRay(screen, origin, hit, scale, colorMapRay)
	}

	aim := colorAimHorizontal
	if g.frame.Aim.Orientation == raycast.Vertical {
		aim = colorAimVertical
	}
	drawRay(screen, origin, g.frame.Aim, scale, aim)
}

func drawRay(screen *ebiten.Image, origin vec.Vec3, hit raycast.Hit, scale float32, clr color.Color) {
	vector.StrokeLine(screen,
		float32(origin.X)*scale, float32(origin.Y)*scale,
		float32(hit.Point.X)*scale, float32(hit.Point.Y)*scale,
		1, clr, false)
}
