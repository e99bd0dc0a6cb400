// Package game runs the animation controller inside an Ebitengine window.
package game

import (
	"bytes"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/iburimskiy/orb-burst/internal/anim"
	"github.com/iburimskiy/orb-burst/internal/config"
)

var _ ebiten.Game = (*Game)(nil)

// Game implements ebiten.Game.
type Game struct {
	ctrl   *anim.Controller
	canvas *canvas
	width  int
	height int
}

func New(cfg config.Config, opts anim.Options) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	face := &text.GoTextFace{
		Source:    src,
		Size:      cfg.Menu.FontSize,
		Direction: text.DirectionLeftToRight,
	}

	return &Game{
		ctrl:   anim.NewController(cfg, opts),
		canvas: newCanvas(face),
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}, nil
}

func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	g.ctrl.Step(anim.Input{
		Cursor:  image.Pt(x, y),
		Clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.ctrl.Render(g.canvas)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
