// Package audio synthesizes the short tone played on dial clicks.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

const (
	clickFreq     = 880.0
	clickDuration = 40 * time.Millisecond
	clickVolume   = 0.3
)

// tone is a sine oscillator that fades out linearly over its duration.
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

// NewTone returns a mono sine at freq lasting duration, fading to silence.
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		total: rate.N(duration),
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.total {
			return i, true
		}
		gain := 1 - float64(t.position)/float64(t.total)
		val := gain * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Click is the tone played when the dial is clicked.
func Click(rate beep.SampleRate) beep.Streamer {
	return &effects.Volume{
		Streamer: NewTone(clickFreq, clickDuration, rate),
		Base:     2,
		Volume:   math.Log2(clickVolume),
	}
}
