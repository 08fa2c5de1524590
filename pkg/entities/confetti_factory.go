package entities

import (
	"math"

	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
)

// confettiShapes 彩纸形状变体：长条、方块、圆片
var confettiShapes = []Shape{ShapeRect, ShapeRect, ShapeCircle}

func confettiCapability() Capability {
	return Capability{
		Defaults: config.RewardConfig{
			ParticleCount: 50,
			Spread:        70,
			StartVelocity: 12,
			ElementSize:   10,
			Lifetime:      150,
			Colors:        []string{"#a864fd", "#29cdff", "#78ff44", "#ff718d", "#fdff6a"},
			Physics:       config.PhysicsConfig{Gravity: 0.35, Wind: 0, Friction: 0.98},
			Effects:       config.EffectsConfig{Flutter: true, Spin3D: true},
		},
		Create: createConfetti,
		Render: renderConfetti,
	}
}

// createConfetti 彩纸从锚点向上喷射
func createConfetti(ctx *CreateContext) []*particle.Particle {
	return burst(ctx, func(p *particle.Particle, i int) {
		ctx.launch(p, -90)
		p.Rotation = ctx.rand(0, 360)
		p.Aux.Variant = ctx.intn(len(confettiShapes))
	})
}

func renderConfetti(p *particle.Particle) VisualDescription {
	v := VisualDescription{
		Shape:  confettiShapes[p.Aux.Variant%len(confettiShapes)],
		Color:  p.Color,
		Width:  p.Size,
		Height: p.Size * 0.6,
		ScaleX: 1,
		ScaleY: 1,
	}
	if v.Shape == ShapeCircle {
		v.Height = v.Width
	}
	if effects(p).Spin3D {
		// 绕水平轴翻转：纵向缩放随旋转角周期变化
		v.ScaleY = math.Cos(p.Rotation * math.Pi / 90)
	}
	return v
}
