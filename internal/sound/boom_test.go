package sound

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/orb-burst/internal/config"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func rms(samples [][2]float64) float64 {
	var sum float64
	for _, s := range samples {
		sum += s[0] * s[0]
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func TestBoomLengthAndDecay(t *testing.T) {
	sr := beep.SampleRate(44100)
	d := 900 * time.Millisecond
	s := Boom(sr, d, rand.New(rand.NewPCG(1, 2)))

	samples := drain(s)
	if len(samples) != sr.N(d) {
		t.Fatalf("boom has %d samples, expected %d", len(samples), sr.N(d))
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v", s.Err())
	}

	for i, v := range samples {
		if math.Abs(v[0]) > 1 || v[0] != v[1] {
			t.Fatalf("sample %d = %v, expected equal channels within [-1, 1]", i, v)
		}
	}

	tenth := len(samples) / 10
	head, tail := rms(samples[:tenth]), rms(samples[len(samples)-tenth:])
	if head == 0 || tail >= head/10 {
		t.Errorf("rms head %v tail %v, expected a strong decay", head, tail)
	}
}

func TestEnvelopeGain(t *testing.T) {
	sr := beep.SampleRate(1000)
	ones := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	e := newEnvelope(ones, sr, time.Second)

	samples := drain(beep.Take(1000, e))
	if samples[0][0] != 1 {
		t.Errorf("first sample = %v, expected 1", samples[0][0])
	}
	for i := 1; i < len(samples); i++ {
		if samples[i][0] >= samples[i-1][0] {
			t.Fatalf("gain rose at sample %d: %v -> %v", i, samples[i-1][0], samples[i][0])
		}
	}
	if last := samples[len(samples)-1][0]; math.Abs(last-floor) > floor*0.05 {
		t.Errorf("last sample = %v, expected about %v", last, floor)
	}
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p := NewPlayer(config.Sound{Enabled: false, SampleRate: 44100, Duration: time.Second}, nil)
	p.Explode()
	p.Explode()
	if p.ok {
		t.Error("disabled player opened the speaker")
	}
}
