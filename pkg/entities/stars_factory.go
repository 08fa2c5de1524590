package entities

import (
	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
)

func starsCapability() Capability {
	return Capability{
		Defaults: config.RewardConfig{
			ParticleCount: 25,
			Spread:        360,
			StartVelocity: 7,
			ElementSize:   14,
			Lifetime:      130,
			Colors:        []string{"#ffd700", "#ffec8b", "#fff8dc", "#ffa500"},
			Physics:       config.PhysicsConfig{Gravity: 0.15, Wind: 0, Friction: 0.96},
			Effects:       config.EffectsConfig{Twinkle: true},
		},
		Create: createStars,
		Render: renderStars,
	}
}

func createStars(ctx *CreateContext) []*particle.Particle {
	return burst(ctx, func(p *particle.Particle, i int) {
		ctx.launch(p, -90)
		p.Rotation = ctx.rand(0, 72)
		// 变体: 0 = 五角星, 1 = 四角星
		p.Aux.Variant = ctx.intn(2)
	})
}

func renderStars(p *particle.Particle) VisualDescription {
	glyph := "★"
	if p.Aux.Variant == 1 {
		glyph = "✧"
	}
	return VisualDescription{
		Shape:  ShapeStar,
		Color:  p.Color,
		Glyph:  glyph,
		Width:  p.Size,
		Height: p.Size,
		ScaleX: 1,
		ScaleY: 1,
		Glow:   effects(p).Twinkle,
	}
}
