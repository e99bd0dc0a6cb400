package anim

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/orb-burst/internal/config"
)

// Orb circles the screen centre during the spin and implode phases.
type Orb struct {
	Angle      float64 // radians
	Distance   float64 // pixels from the centre, never negative
	BaseRadius float64
	Radius     float64
	Speed      float64 // radians per tick

	cfg config.Orbs
}

// NewOrb places orb idx of total on the ring, evenly spaced in angle.
func NewOrb(idx, total int, cfg config.Orbs, rng *rand.Rand) Orb {
	base := float64(intRange(rng, cfg.MinRadius, cfg.MaxRadius))
	return Orb{
		Angle:      float64(idx) / float64(total) * 2 * math.Pi,
		Distance:   cfg.Distance,
		BaseRadius: base,
		Radius:     base,
		Speed:      cfg.Speed,
		cfg:        cfg,
	}
}

// Update advances the orb one tick. now is the time since the demo started
// and drives the pulse in spin mode.
func (o *Orb) Update(mode Mode, now time.Duration) {
	switch mode {
	case ModeSpin:
		o.Angle += o.Speed
		ms := float64(now) / float64(time.Millisecond)
		pulse := math.Sin(ms*o.cfg.PulseRate + o.Angle)
		o.Radius = math.Max(1, o.BaseRadius+pulse*o.cfg.PulseAmplitude)
	case ModeImplode:
		o.Angle += o.Speed * o.cfg.ImplodeSpin
		o.Distance = math.Max(0, o.Distance-o.cfg.ImplodeStep)
	case ModeMenu, ModeExplode, ModeShow:
	}
}

// Position is the orb's screen position around center.
func (o *Orb) Position(center Vec) Vec {
	return Vec{
		X: center.X + math.Cos(o.Angle)*o.Distance,
		Y: center.Y + math.Sin(o.Angle)*o.Distance,
	}
}

func (o *Orb) Draw(r Renderer, center Vec, clr color.Color) {
	p := o.Position(center)
	r.FillCircle(float32(p.X), float32(p.Y), float32(o.Radius), clr)
}
