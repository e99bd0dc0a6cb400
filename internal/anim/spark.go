package anim

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/orb-burst/internal/config"
)

// Spark flies out of the centre in a straight line and fades as Life drops.
type Spark struct {
	Pos   Vec
	Vel   Vec
	Life  int // doubles as alpha, 0..255
	Color config.Color
	Size  int

	fade int
}

func NewSpark(center Vec, cfg config.Sparks, rng *rand.Rand) Spark {
	ang := rng.Float64() * 2 * math.Pi
	spd := floatRange(rng, cfg.MinSpeed, cfg.MaxSpeed)
	return Spark{
		Pos:   center,
		Vel:   Vec{X: math.Cos(ang) * spd, Y: math.Sin(ang) * spd},
		Life:  cfg.Life,
		Color: cfg.Palette[rng.IntN(len(cfg.Palette))],
		Size:  intRange(rng, cfg.MinSize, cfg.MaxSize),
		fade:  cfg.Fade,
	}
}

func (s *Spark) Update() {
	s.Pos = s.Pos.Add(s.Vel)
	s.Life -= s.fade
}

func (s Spark) Dead() bool { return s.Life <= 0 }

func (s *Spark) Draw(r Renderer) {
	if s.Dead() {
		return
	}
	r.FillCircle(float32(s.Pos.X), float32(s.Pos.Y), float32(s.Size), s.Color.WithAlpha(clampAlpha(s.Life)))
}
