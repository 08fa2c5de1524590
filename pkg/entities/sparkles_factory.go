package entities

import (
	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
)

func sparklesCapability() Capability {
	return Capability{
		Defaults: config.RewardConfig{
			ParticleCount: 30,
			Spread:        360,
			StartVelocity: 6,
			ElementSize:   6,
			Lifetime:      100,
			Colors:        []string{"#ffffff", "#fff6a8", "#ffd700", "#ffe4f2"},
			Physics:       config.PhysicsConfig{Gravity: 0.05, Wind: 0, Friction: 0.95},
			Effects:       config.EffectsConfig{Twinkle: true, Pulse: true},
		},
		Create: createSparkles,
		Render: renderSparkles,
	}
}

// createSparkles 闪光向四周均匀散开
func createSparkles(ctx *CreateContext) []*particle.Particle {
	return burst(ctx, func(p *particle.Particle, i int) {
		ctx.launch(p, 0)
		p.Size *= ctx.rand(0.6, 1.4)
		p.Aux.LockRotation = true
	})
}

func renderSparkles(p *particle.Particle) VisualDescription {
	scale := 1.0
	if effects(p).Pulse {
		scale = 0.75 + 0.5*pulse(p)
	}
	return VisualDescription{
		Shape:  ShapeStar,
		Color:  p.Color,
		Glyph:  "✦",
		Width:  p.Size,
		Height: p.Size,
		ScaleX: scale,
		ScaleY: scale,
		Glow:   true,
	}
}
