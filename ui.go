// ui.go
package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const bannerFontSize = 48

var colorBanner = color.RGBA{235, 205, 60, 255}

// HUD is the win banner. It is only drawn once the maze is solved.
type HUD struct {
	ui     *ebitenui.UI
	banner *widget.Text
	shown  bool
}

func loadFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse goregular: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func NewHUD() (*HUD, error) {
	face, err := loadFace(bannerFontSize)
	if err != nil {
		return nil, err
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	banner := widget.NewText(
		widget.TextOpts.Text("", face, colorBanner),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
			Padding:            widget.Insets{Top: 60},
		})),
	)
	root.AddChild(banner)

	return &HUD{
		ui:     &ebitenui.UI{Container: root},
		banner: banner,
	}, nil
}

func (h *HUD) Update(won bool) {
	if won && !h.shown {
		h.banner.Label = "You escaped the maze!"
	}
	h.shown = won
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	if h.shown {
		h.ui.Draw(screen)
	}
}

func (g *Game) drawUI(screen *ebiten.Image) {
	if g.hud != nil {
		g.hud.Draw(screen)
	}

	view := "first person"
	if g.showMap {
		view = "map"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f  seed: %d  view: %s", ebiten.ActualFPS(), g.session.Seed(), view), 10, 10)
	ebitenutil.DebugPrintAt(screen, "arrows to move, SPACE to toggle map, ESC to exit", 10, g.screenHeight-20)
}
