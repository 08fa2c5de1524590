package entities

import (
	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
)

// emoji 类型的 Colors 字段存放的是字形本身
func emojiCapability() Capability {
	return Capability{
		Defaults: config.RewardConfig{
			ParticleCount: 20,
			Spread:        80,
			StartVelocity: 10,
			ElementSize:   24,
			Lifetime:      150,
			Colors:        []string{"🎉", "⭐", "🥳", "✨", "💖"},
			Physics:       config.PhysicsConfig{Gravity: 0.3, Wind: 0, Friction: 0.98},
		},
		Create: createEmoji,
		Render: renderEmoji,
	}
}

func createEmoji(ctx *CreateContext) []*particle.Particle {
	return burst(ctx, func(p *particle.Particle, i int) {
		ctx.launch(p, -90)
		p.Color = particle.PickColor(ctx.Config.Colors, ctx.intn(max(1, len(ctx.Config.Colors))))
		p.Rotation = ctx.rand(-20, 20)
	})
}

func renderEmoji(p *particle.Particle) VisualDescription {
	return VisualDescription{
		Shape:  ShapeGlyph,
		Glyph:  p.Color,
		Width:  p.Size,
		Height: p.Size,
		ScaleX: 1,
		ScaleY: 1,
	}
}
