// Package sound 生成奖励提示音
//
// 每种动画类型对应五声音阶上的一个音，提示音是带起音和衰减包络的正弦波。
// 本包只产生采样，播放由宿主完成（ebiten/audio 或 beep speaker）。
package sound

import (
	"math"
	"time"

	"github.com/decker502/rewardfx/pkg/types"
)

const (
	// DefaultSampleRate 默认采样率
	DefaultSampleRate = 44100

	// NoteDuration 提示音时长
	NoteDuration = 180 * time.Millisecond

	// attackDuration 起音时长，避免波形突变产生爆音
	attackDuration = 8 * time.Millisecond
)

// pentatonic C 大调五声音阶 C5 ~ D7（Hz）
var pentatonic = [types.NumAnimationTypes]float64{
	523.25, 587.33, 659.25, 783.99, 880.00,
	1046.50, 1174.66, 1318.51, 1567.98, 1760.00,
	2093.00, 2349.32,
}

// NoteFor 返回动画类型对应的音高
func NoteFor(at types.AnimationType) float64 {
	if !at.Valid() {
		return pentatonic[0]
	}
	return pentatonic[at]
}

// Tone 一个正弦提示音的采样流
type Tone struct {
	freq   float64
	volume float64
	rate   int
	length int
	attack int
	pos    int
}

// NewTone 创建提示音；volume 限制在 [0, 1]
func NewTone(freq, volume float64, sampleRate int, d time.Duration) *Tone {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Tone{
		freq:   freq,
		volume: math.Max(0, math.Min(1, volume)),
		rate:   sampleRate,
		length: samplesFor(sampleRate, d),
		attack: samplesFor(sampleRate, attackDuration),
	}
}

func samplesFor(rate int, d time.Duration) int {
	return int(float64(rate) * d.Seconds())
}

// Len 返回总采样数
func (t *Tone) Len() int {
	return t.length
}

// Next 返回下一个采样（[-1, 1]）；结束后返回 false
func (t *Tone) Next() (float64, bool) {
	if t.pos >= t.length {
		return 0, false
	}
	phase := 2 * math.Pi * t.freq * float64(t.pos) / float64(t.rate)
	v := math.Sin(phase) * t.envelope(t.pos) * t.volume
	t.pos++
	return v, true
}

// envelope 线性起音，二次衰减到 0
func (t *Tone) envelope(pos int) float64 {
	if t.attack > 0 && pos < t.attack {
		return float64(pos) / float64(t.attack)
	}
	decay := t.length - t.attack
	if decay <= 0 {
		return 0
	}
	x := 1 - float64(pos-t.attack)/float64(decay)
	return x * x
}

// PCM16 将剩余采样渲染为 16 位小端立体声字节流（ebiten/audio 的格式）
func (t *Tone) PCM16() []byte {
	buf := make([]byte, 0, (t.length-t.pos)*4)
	for {
		v, ok := t.Next()
		if !ok {
			break
		}
		s := int16(v * math.MaxInt16)
		lo, hi := byte(s), byte(s>>8)
		buf = append(buf, lo, hi, lo, hi)
	}
	return buf
}
