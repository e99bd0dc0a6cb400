package anim

import (
	"image"
	"image/color"
	"math/rand/v2"
)

// Vec is a point or velocity in screen pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Input is what the controller reads from the window each tick.
type Input struct {
	Cursor  image.Point
	Clicked bool // left button went down this tick
}

// Renderer is the drawing surface for one frame. Positions are in screen
// pixels; DrawText and DrawImage centre their content on (cx, cy).
type Renderer interface {
	Fill(clr color.Color)
	FillCircle(x, y, radius float32, clr color.Color)
	FillRoundedRect(rect image.Rectangle, radius float32, clr color.Color)
	DrawText(s string, cx, cy float64, clr color.Color)
	DrawImage(img image.Image, cx, cy float64)
}

// Sound plays the explosion. Implementations must not block.
type Sound interface {
	Explode()
}

type silence struct{}

func (silence) Explode() {}

// intRange returns a uniform integer in [lo, hi].
func intRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// floatRange returns a uniform float in [lo, hi).
func floatRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clampAlpha(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
