package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"raymaze/model"
)

func (g *Game) handleInput() (model.Intent, error) {
	// if escape, exit game
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return model.Intent{}, ebiten.Termination
	}

	// if space, toggle the top-down map
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.showMap = !g.showMap
	}

	return model.Intent{
		TurnCW:   ebiten.IsKeyPressed(ebiten.KeyRight),
		TurnCCW:  ebiten.IsKeyPressed(ebiten.KeyLeft),
		Forward:  ebiten.IsKeyPressed(ebiten.KeyUp),
		Backward: ebiten.IsKeyPressed(ebiten.KeyDown),
	}, nil
}
