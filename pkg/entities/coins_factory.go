package entities

import (
	"math"

	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
)

func coinsCapability() Capability {
	return Capability{
		Defaults: config.RewardConfig{
			ParticleCount: 20,
			Spread:        50,
			StartVelocity: 13,
			ElementSize:   16,
			Lifetime:      140,
			Colors:        []string{"#ffd700", "#f4c430", "#daa520"},
			Physics:       config.PhysicsConfig{Gravity: 0.45, Wind: 0, Friction: 0.99},
			Effects:       config.EffectsConfig{Spin3D: true},
		},
		Create: createCoins,
		Render: renderCoins,
	}
}

// createCoins 金币向上抛出后落下；翻转由帧计数驱动，不使用 Rotation
func createCoins(ctx *CreateContext) []*particle.Particle {
	return burst(ctx, func(p *particle.Particle, i int) {
		ctx.launch(p, -90)
		p.Aux.LockRotation = true
		// 变体决定翻转速度档位
		p.Aux.Variant = 1 + ctx.intn(3)
	})
}

func renderCoins(p *particle.Particle) VisualDescription {
	flip := 1.0
	if effects(p).Spin3D {
		flip = math.Cos(p.Aux.Phase + float64(p.Aux.Frame*p.Aux.Variant)*0.15)
	}
	return VisualDescription{
		Shape:  ShapeCircle,
		Color:  p.Color,
		Glyph:  "$",
		Width:  p.Size,
		Height: p.Size,
		ScaleX: flip,
		ScaleY: 1,
		Glow:   math.Abs(flip) > 0.95,
	}
}
