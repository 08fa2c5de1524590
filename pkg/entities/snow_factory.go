package entities

import (
	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/types"
)

func snowCapability() Capability {
	return Capability{
		Defaults: config.RewardConfig{
			ParticleCount: 40,
			Spread:        240, // 水平分布宽度（像素）
			StartVelocity: 1.5,
			ElementSize:   8,
			Lifetime:      150,
			Colors:        []string{"#ffffff", "#e0f7ff", "#cfe8ff"},
			Physics:       config.PhysicsConfig{Gravity: 0.03, Wind: 0.01, Friction: 0.99},
			Effects:       config.EffectsConfig{WindDrift: true},
		},
		AnchorOffset: types.Point{X: 0, Y: -60},
		Create:       createSnow,
		Render:       renderSnow,
		Fade:         fadeInOut,
	}
}

// createSnow 雪花在锚点上方的一条水平带内生成，缓慢下落
func createSnow(ctx *CreateContext) []*particle.Particle {
	return burst(ctx, func(p *particle.Particle, i int) {
		half := ctx.Config.Spread / 2
		p.X += ctx.rand(-half, half)
		p.Y += ctx.rand(-20, 20)
		p.VX = ctx.rand(-0.3, 0.3)
		p.VY = ctx.Config.StartVelocity * ctx.rand(0.5, 1)
		p.Size *= ctx.rand(0.5, 1.2)
		p.Aux.Variant = ctx.intn(3)
	})
}

var snowGlyphs = []string{"❄", "❅", "❆"}

func renderSnow(p *particle.Particle) VisualDescription {
	return VisualDescription{
		Shape:  ShapeGlyph,
		Color:  p.Color,
		Glyph:  snowGlyphs[p.Aux.Variant%len(snowGlyphs)],
		Width:  p.Size,
		Height: p.Size,
		ScaleX: 1,
		ScaleY: 1,
	}
}
