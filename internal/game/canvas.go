package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/orb-burst/internal/anim"
)

var _ anim.Renderer = (*canvas)(nil)

// canvas draws the controller's frame onto an Ebitengine screen.
type canvas struct {
	dst    *ebiten.Image
	face   *text.GoTextFace
	images map[image.Image]*ebiten.Image
}

func newCanvas(face *text.GoTextFace) *canvas {
	return &canvas{face: face, images: map[image.Image]*ebiten.Image{}}
}

func (c *canvas) Fill(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *canvas) FillCircle(x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(c.dst, x, y, radius, clr, false)
}

// FillRoundedRect is two overlapping rectangles plus a circle per corner.
func (c *canvas) FillRoundedRect(rect image.Rectangle, radius float32, clr color.Color) {
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())
	radius = min(radius, w/2, h/2)
	if radius <= 0 {
		vector.DrawFilledRect(c.dst, x, y, w, h, clr, false)
		return
	}

	vector.DrawFilledRect(c.dst, x+radius, y, w-2*radius, h, clr, false)
	vector.DrawFilledRect(c.dst, x, y+radius, w, h-2*radius, clr, false)
	vector.DrawFilledCircle(c.dst, x+radius, y+radius, radius, clr, false)
	vector.DrawFilledCircle(c.dst, x+w-radius, y+radius, radius, clr, false)
	vector.DrawFilledCircle(c.dst, x+radius, y+h-radius, radius, clr, false)
	vector.DrawFilledCircle(c.dst, x+w-radius, y+h-radius, radius, clr, false)
}

func (c *canvas) DrawText(s string, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, s, c.face, op)
}

func (c *canvas) DrawImage(img image.Image, cx, cy float64) {
	eimg, ok := c.images[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		c.images[img] = eimg
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(int(cx)-b.Dx()/2), float64(int(cy)-b.Dy()/2))
	c.dst.DrawImage(eimg, op)
}
