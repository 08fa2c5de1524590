package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/decker502/rewardfx/pkg/game"
	"github.com/decker502/rewardfx/pkg/sound"
	"github.com/decker502/rewardfx/pkg/types"
)

// blipDuration 暂停/恢复提示的时长
const blipDuration = 40 * time.Millisecond

// beepChime 通过 beep speaker 播放提示音
type beepChime struct {
	rate  beep.SampleRate
	prefs *game.PreferencesStore
	ready bool
}

// newBeepChime 初始化扬声器；失败时返回静音的 chime
func newBeepChime(prefs *game.PreferencesStore) *beepChime {
	c := &beepChime{rate: beep.SampleRate(sound.DefaultSampleRate), prefs: prefs}
	if err := speaker.Init(c.rate, c.rate.N(time.Second/10)); err != nil {
		log.Printf("[Chime] Warning: audio unavailable: %v", err)
		return c
	}
	c.ready = true
	return c
}

func (c *beepChime) enabled() bool {
	return c.ready && c.prefs.Get().SoundEnabled
}

// Play 播放动画类型对应的音
func (c *beepChime) Play(at types.AnimationType) bool {
	if !c.enabled() {
		return false
	}
	tone := sound.NewTone(sound.NoteFor(at), c.prefs.Get().SoundVolume, int(c.rate), sound.NoteDuration)
	speaker.Play(toneStreamer(tone))
	return true
}

// Blip 短促的控制反馈音
func (c *beepChime) Blip() {
	if !c.enabled() {
		return
	}
	sine, err := generators.SineTone(c.rate, 440)
	if err != nil {
		log.Printf("[Chime] Warning: %v", err)
		return
	}
	speaker.Play(beep.Take(c.rate.N(blipDuration), sine))
}

func (c *beepChime) Close() {
	if c.ready {
		speaker.Close()
	}
}

// toneStreamer 把 Tone 包装为单声道复制到双声道的 beep.Streamer
func toneStreamer(tone *sound.Tone) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v, ok := tone.Next()
			if !ok {
				return i, i > 0
			}
			samples[i][0], samples[i][1] = v, v
		}
		return len(samples), true
	})
}
