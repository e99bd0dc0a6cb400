package anim

import (
	"image"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/iburimskiy/orb-burst/internal/config"
	"github.com/iburimskiy/orb-burst/internal/fetch"
)

// Options carries the controller's collaborators. Every field is optional.
type Options struct {
	Rand   *rand.Rand
	Sound  Sound
	Logger *slog.Logger

	// Images delivers the revealed image once it has been fetched. Until it
	// does, Image (or a placeholder built from the config) is shown.
	Images <-chan image.Image
	Image  image.Image
}

// Controller owns all animation state and is advanced one tick at a time.
// It is not safe for concurrent use.
type Controller struct {
	cfg    config.Config
	rng    *rand.Rand
	sound  Sound
	log    *slog.Logger
	images <-chan image.Image

	center Vec
	button image.Rectangle
	tick   time.Duration

	mode      Mode
	now       time.Duration
	spinStart time.Duration
	orbs      []Orb
	sparks    []Spark
	hovered   bool
	flash     bool
	image     image.Image
}

func NewController(cfg config.Config, opts Options) *Controller {
	c := &Controller{
		cfg:    cfg,
		rng:    opts.Rand,
		sound:  opts.Sound,
		log:    opts.Logger,
		images: opts.Images,
		image:  opts.Image,
		tick:   time.Second / time.Duration(cfg.TPS),
		mode:   ModeMenu,
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if c.sound == nil {
		c.sound = silence{}
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if c.image == nil {
		c.image = fetch.Placeholder(cfg.Image.PlaceholderSize, cfg.Image.PlaceholderColor)
	}

	cx, cy := cfg.Center()
	c.center = Vec{X: cx, Y: cy}
	w, h := cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight
	topLeft := image.Pt(int(cx)-w/2, int(cy)-h/2)
	c.button = image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(w, h))}
	return c
}

func (c *Controller) Mode() Mode              { return c.mode }
func (c *Controller) Orbs() []Orb             { return slices.Clone(c.orbs) }
func (c *Controller) Sparks() []Spark         { return slices.Clone(c.sparks) }
func (c *Controller) Button() image.Rectangle { return c.button }
func (c *Controller) Image() image.Image      { return c.image }
func (c *Controller) Elapsed() time.Duration  { return c.now }
func (c *Controller) Flashing() bool          { return c.flash }
func (c *Controller) Hovered() bool           { return c.hovered }

// Step advances the sequence by one tick.
func (c *Controller) Step(in Input) {
	c.now += c.tick
	c.flash = false
	c.pollImage()

	switch c.mode {
	case ModeMenu:
		c.hovered = in.Cursor.In(c.button)
		if in.Clicked && c.hovered {
			c.startSpin()
		}
	case ModeSpin:
		for i := range c.orbs {
			c.orbs[i].Update(ModeSpin, c.now)
		}
		if c.now-c.spinStart > c.cfg.Orbs.SpinDuration {
			c.enter(ModeImplode)
		}
	case ModeImplode:
		arrived := true
		for i := range c.orbs {
			c.orbs[i].Update(ModeImplode, c.now)
			if c.orbs[i].Distance > c.cfg.Orbs.Arrival {
				arrived = false
			}
		}
		if arrived {
			c.explode()
		}
	case ModeExplode:
		c.orbs = nil
		for i := range c.sparks {
			c.sparks[i].Update()
		}
		// Sparks that died in this update go now, so a burst that ends on
		// this tick shows the image instead of an empty frame.
		c.sparks = slices.DeleteFunc(c.sparks, Spark.Dead)
		if len(c.sparks) == 0 {
			c.enter(ModeShow)
		}
	case ModeShow:
	}
}

func (c *Controller) startSpin() {
	n := c.cfg.Orbs.Count
	c.orbs = make([]Orb, 0, n)
	for i := 0; i < n; i++ {
		c.orbs = append(c.orbs, NewOrb(i, n, c.cfg.Orbs, c.rng))
	}
	c.spinStart = c.now
	c.hovered = false
	c.enter(ModeSpin)
}

// explode starts the burst. The collapsed orbs stay readable until the
// next tick.
func (c *Controller) explode() {
	c.sparks = make([]Spark, 0, c.cfg.Sparks.Count)
	for i := 0; i < c.cfg.Sparks.Count; i++ {
		c.sparks = append(c.sparks, NewSpark(c.center, c.cfg.Sparks, c.rng))
	}
	c.flash = true
	c.enter(ModeExplode)
	c.sound.Explode()
}

func (c *Controller) enter(m Mode) {
	c.log.Debug("mode change", "from", c.mode.String(), "to", m.String(), "at", c.now)
	c.mode = m
}

// pollImage swaps in the fetched image without blocking the tick.
func (c *Controller) pollImage() {
	if c.images == nil {
		return
	}
	select {
	case img, ok := <-c.images:
		if ok && img != nil {
			c.image = img
		}
		c.images = nil
	default:
	}
}

// Render draws the current tick. It does not change any state.
func (c *Controller) Render(r Renderer) {
	colors := c.cfg.Colors
	if c.flash {
		r.Fill(colors.Flash)
		return
	}
	r.Fill(colors.Background)

	switch c.mode {
	case ModeMenu:
		btn := colors.Button
		if c.hovered {
			btn = colors.ButtonHover
		}
		r.FillRoundedRect(c.button, c.cfg.Menu.ButtonRadius, btn)
		titleY := float64(c.button.Min.Y - c.cfg.Menu.TitleGap)
		r.DrawText(c.cfg.Menu.Title, c.center.X, titleY, colors.Text)
		mid := c.button.Min.Add(c.button.Size().Div(2))
		r.DrawText(c.cfg.Menu.Label, float64(mid.X), float64(mid.Y), colors.Text)
	case ModeSpin, ModeImplode:
		for i := range c.orbs {
			c.orbs[i].Draw(r, c.center, colors.Orb)
		}
	case ModeExplode:
		for i := range c.sparks {
			c.sparks[i].Draw(r)
		}
	case ModeShow:
		r.DrawImage(c.image, c.center.X, c.center.Y)
	}
}
