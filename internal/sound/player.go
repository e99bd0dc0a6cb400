package sound

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/orb-burst/internal/config"
)

// Player plays a fresh boom per explosion. The speaker is opened on first
// use; if that fails the player stays silent.
type Player struct {
	cfg  config.Sound
	log  *slog.Logger
	rng  *rand.Rand
	once sync.Once
	ok   bool
}

func NewPlayer(cfg config.Sound, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{
		cfg: cfg,
		log: logger,
		rng: rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
	}
}

func (p *Player) sampleRate() beep.SampleRate {
	return beep.SampleRate(p.cfg.SampleRate)
}

func (p *Player) init() {
	if !p.cfg.Enabled {
		return
	}
	sr := p.sampleRate()
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		p.log.Warn("audio unavailable, explosion will be silent", "err", err)
		return
	}
	p.ok = true
}

// Explode queues the burst and returns immediately.
func (p *Player) Explode() {
	p.once.Do(p.init)
	if !p.ok {
		return
	}
	// Each burst gets its own source; the speaker streams on its own goroutine.
	rng := rand.New(rand.NewPCG(p.rng.Uint64(), p.rng.Uint64()))
	boom := Boom(p.sampleRate(), p.cfg.Duration, rng)
	speaker.Play(&effects.Volume{Streamer: boom, Base: 2, Volume: p.cfg.Volume})
}
