package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/rewardfx/pkg/game"
	"github.com/decker502/rewardfx/pkg/sound"
	"github.com/decker502/rewardfx/pkg/types"
)

// Chime 用 ebiten/audio 播放奖励提示音，实现 scenes.Chime
//
// 每种动画类型的 PCM 在第一次播放时生成并缓存为一个 Player，
// 音量和开关从 PreferencesStore 读取。
type Chime struct {
	context *audio.Context
	prefs   *game.PreferencesStore
	players map[types.AnimationType]*audio.Player
}

// NewChime 创建提示音播放器；prefs 可为 nil（始终以默认音量播放）
func NewChime(prefs *game.PreferencesStore) *Chime {
	// audio.Context 每个进程只能创建一次
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sound.DefaultSampleRate)
	}
	return &Chime{
		context: ctx,
		prefs:   prefs,
		players: make(map[types.AnimationType]*audio.Player),
	}
}

// Play 播放动画类型对应的提示音，返回是否播放
func (c *Chime) Play(at types.AnimationType) bool {
	prefs := game.DefaultPreferences()
	if c.prefs != nil {
		prefs = c.prefs.Get()
	}
	if !prefs.SoundEnabled {
		return false
	}

	player := c.player(at)
	player.SetVolume(prefs.SoundVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[Chime] Warning: Failed to rewind %s: %v", at, err)
	}
	player.Play()
	return true
}

func (c *Chime) player(at types.AnimationType) *audio.Player {
	if p, ok := c.players[at]; ok {
		return p
	}
	pcm := sound.NewTone(sound.NoteFor(at), 1, c.context.SampleRate(), sound.NoteDuration).PCM16()
	p := c.context.NewPlayerFromBytes(pcm)
	c.players[at] = p
	return p
}

// Close 释放所有缓存的播放器
func (c *Chime) Close() {
	for at, p := range c.players {
		if err := p.Close(); err != nil {
			log.Printf("[Chime] Warning: Failed to close player %s: %v", at, err)
		}
	}
	c.players = make(map[types.AnimationType]*audio.Player)
}
