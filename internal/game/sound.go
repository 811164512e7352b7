package game

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/wind-dial/internal/audio"
	"github.com/iburimskiy/wind-dial/internal/config"
)

// clickSound plays the click tone, initializing the speaker on first use.
type clickSound struct {
	enabled  bool
	initDone bool
	rate     beep.SampleRate
}

func newClickSound(enabled bool) *clickSound {
	return &clickSound{enabled: enabled, rate: beep.SampleRate(config.ToneSampleRate)}
}

func (s *clickSound) play() {
	if !s.enabled {
		return
	}
	if !s.initDone {
		bufferSize := s.rate.N(time.Second / 20)
		if err := speaker.Init(s.rate, bufferSize); err != nil {
			// No audio device; stay silent for the rest of the session.
			log.Warnf("speaker init failed, sound disabled: %v", err)
			s.enabled = false
			return
		}
		s.initDone = true
	}
	speaker.Play(audio.Click(s.rate))
}
