// Package sound synthesizes the explosion burst and plays it through the
// beep speaker.
package sound

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/faiface/beep"
)

// floor is the gain an envelope reaches at the end of its duration (-60dB).
const floor = 0.001

// envelope wraps a beep.Streamer and scales it by an exponentially decaying
// gain, starting at 1 and reaching floor after the configured duration.
type envelope struct {
	Source beep.Streamer
	gain   float64
	decay  float64
}

func newEnvelope(src beep.Streamer, sr beep.SampleRate, d time.Duration) *envelope {
	n := sr.N(d)
	if n < 1 {
		n = 1
	}
	return &envelope{
		Source: src,
		gain:   1,
		decay:  math.Pow(floor, 1/float64(n)),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.Source.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= e.gain
		samples[i][1] *= e.gain
		e.gain *= e.decay
	}
	return n, ok
}

func (e *envelope) Err() error { return e.Source.Err() }

// rumble is endless low-passed white noise.
func rumble(rng *rand.Rand) beep.Streamer {
	var y float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			x := rng.Float64()*2 - 1
			y += (x - y) * 0.2
			samples[i][0] = y
			samples[i][1] = y
		}
		return len(samples), true
	})
}

// Boom returns a decaying noise burst lasting d.
func Boom(sr beep.SampleRate, d time.Duration, rng *rand.Rand) beep.Streamer {
	return beep.Take(sr.N(d), newEnvelope(rumble(rng), sr, d))
}
