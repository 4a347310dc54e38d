package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"raymaze/config"
	"raymaze/session"
)

// main game object
type Game struct {
	cfg     config.Config
	session *session.Session
	frame   session.Frame

	// window resolution
	screenWidth  int
	screenHeight int

	// showMap swaps the first-person view for the top-down one
	showMap bool

	hud *HUD
}

// NewGame sets up the window for cfg and draws its first frame from s.
func NewGame(cfg config.Config, s *session.Session) *Game {
	g := &Game{
		cfg:     cfg,
		session: s,
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	g.setResolution(cfg.Window.Width, cfg.Window.Height)

	hud, err := NewHUD()
	if err != nil {
		// the game is playable without the banner
		logrus.WithError(err).Warn("hud disabled")
	}
	g.hud = hud

	if frame, err := s.Frame(); err == nil {
		g.frame = frame
	}
	return g
}

func (g *Game) setResolution(screenWidth, screenHeight int) {
	g.screenWidth, g.screenHeight = screenWidth, screenHeight
	ebiten.SetWindowSize(screenWidth, screenHeight)
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

// Update reads the keyboard and advances the session by one frame.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	in, err := g.handleInput()
	if err != nil {
		return err
	}

	frame, err := g.session.Step(in)
	if err != nil {
		return err
	}
	g.frame = frame

	if g.hud != nil {
		g.hud.Update(frame.Won)
	}
	return nil
}

// Draw draws the game screen.
// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if g.showMap {
		g.drawTopDown(screen)
	} else {
		g.drawFirstPerson(screen)
		g.drawCrosshairs(screen)
	}

	g.drawUI(screen)
}
