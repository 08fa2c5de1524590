package systems

import (
	"math"

	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/entities"
	"github.com/decker502/rewardfx/pkg/types"
)

// 装饰性扰动参数
const (
	flutterFreq      = 0.1  // 彩纸飘动频率（弧度/帧）
	flutterAmplitude = 0.6  // 彩纸 X 抖动幅度（像素/帧）
	flutterSpin      = 3.0  // 彩纸额外旋转（度/帧）
	windDriftFreq    = 0.05 // 随风飘移频率
	windDriftAmp     = 0.5
	wobbleFreq       = 0.15 // 气泡摇摆频率
	wobbleAmpX       = 0.8
	wobbleAmpY       = 0.3
	twinkleFreq      = 0.3 // 闪烁：opacity *= 0.5 + 0.5*|sin(life*k)|
)

// PhysicsStep 单个动画实例共享的逐帧物理参数
type PhysicsStep struct {
	Type    types.AnimationType
	Physics config.PhysicsConfig
	Effects config.EffectsConfig
	Fade    entities.FadeFunc
}

// Apply 对单个粒子推进一帧，返回粒子在本帧开始时是否存活
//
// Life <= 0 的粒子直接跳过，不修改任何字段。
func (s PhysicsStep) Apply(p *particle.Particle) bool {
	if p.Life <= 0 {
		return false
	}

	// 1. 欧拉积分（固定步长：一次调用 = 一帧）
	p.X += p.VX
	p.Y += p.VY

	// 2-4. 重力、风力、摩擦
	p.VY += s.Physics.Gravity
	p.VX += s.Physics.Wind
	p.VX *= s.Physics.Friction
	p.VY *= s.Physics.Friction

	// 5. 旋转与水平速度耦合
	if !p.Aux.LockRotation {
		p.Rotation += p.VX * 2
	}

	p.Aux.Frame++

	// 6. 按帧衰减，不按真实时间缩放
	p.Life -= particle.DecayRate

	// 7. 透明度
	if s.Fade != nil {
		p.Opacity = clamp01(s.Fade(p))
	} else {
		p.Opacity = clamp01(p.Life / particle.OpacityScale)
	}
	if s.Effects.Twinkle {
		p.Opacity *= 0.5 + 0.5*math.Abs(math.Sin(p.Life*twinkleFreq))
	}

	// 8. 装饰性扰动
	s.perturb(p)
	return true
}

func (s PhysicsStep) perturb(p *particle.Particle) {
	frame := float64(p.Aux.Frame)

	switch s.Type {
	case types.AnimationConfetti:
		if s.Effects.Flutter {
			wave := math.Sin(frame*flutterFreq + p.Aux.Phase)
			p.X += wave * flutterAmplitude
			if !p.Aux.LockRotation {
				p.Rotation += wave * flutterSpin
			}
		}
	case types.AnimationSnow, types.AnimationLeaves:
		if s.Effects.WindDrift {
			p.X += math.Sin(frame*windDriftFreq+p.Aux.Phase) * windDriftAmp
		}
	case types.AnimationBubbles:
		if s.Effects.Wobble {
			p.X += math.Sin(frame*wobbleFreq+p.Aux.Phase) * wobbleAmpX
			p.Y += math.Cos(frame*wobbleFreq*2+p.Aux.Phase) * wobbleAmpY
		}
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
