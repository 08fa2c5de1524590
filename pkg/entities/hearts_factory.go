package entities

import (
	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/utils"
)

func heartsCapability() Capability {
	return Capability{
		Defaults: config.RewardConfig{
			ParticleCount: 20,
			Spread:        60,
			StartVelocity: 6,
			ElementSize:   16,
			Lifetime:      150,
			Colors:        []string{"#ff4d6d", "#ff8fa3", "#c9184a", "#ffb3c1"},
			Physics:       config.PhysicsConfig{Gravity: -0.06, Wind: 0, Friction: 0.98},
			Effects:       config.EffectsConfig{Pulse: true},
		},
		Create: createHearts,
		Render: renderHearts,
		Fade:   fadeInOut,
	}
}

func createHearts(ctx *CreateContext) []*particle.Particle {
	return burst(ctx, func(p *particle.Particle, i int) {
		ctx.launch(p, -90)
		p.Size *= ctx.rand(0.7, 1.2)
		p.Rotation = ctx.rand(-15, 15)
	})
}

func renderHearts(p *particle.Particle) VisualDescription {
	// 出现时从 0.3 放大到 1.0
	grow := utils.Lerp(0.3, 1, utils.EaseOutCubic(min(1, lifeProgress(p)*5)))
	scale := grow
	if effects(p).Pulse {
		scale *= 0.9 + 0.2*pulse(p)
	}
	return VisualDescription{
		Shape:  ShapeHeart,
		Color:  p.Color,
		Glyph:  "♥",
		Width:  p.Size,
		Height: p.Size,
		ScaleX: scale,
		ScaleY: scale,
	}
}

// fadeInOutCurve 先淡入，保持，再淡出
var fadeInOutCurve = []particle.Keyframe{
	{Time: 0, Value: 0},
	{Time: 0.1, Value: 1},
	{Time: 0.7, Value: 1},
	{Time: 1, Value: 0},
}

func fadeInOut(p *particle.Particle) float64 {
	return particle.EvaluateKeyframes(fadeInOutCurve, lifeProgress(p), particle.InterpLinear)
}
