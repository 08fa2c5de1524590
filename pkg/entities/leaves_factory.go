package entities

import (
	"math"

	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/types"
)

func leavesCapability() Capability {
	return Capability{
		Defaults: config.RewardConfig{
			ParticleCount: 30,
			Spread:        200,
			StartVelocity: 2,
			ElementSize:   14,
			Lifetime:      150,
			Colors:        []string{"#d2691e", "#ff8c00", "#b22222", "#daa520", "#8b4513"},
			Physics:       config.PhysicsConfig{Gravity: 0.06, Wind: 0.04, Friction: 0.985},
			Effects:       config.EffectsConfig{WindDrift: true, Spin3D: true},
		},
		AnchorOffset: types.Point{X: 0, Y: -40},
		Create:       createLeaves,
		Render:       renderLeaves,
	}
}

func createLeaves(ctx *CreateContext) []*particle.Particle {
	return burst(ctx, func(p *particle.Particle, i int) {
		half := ctx.Config.Spread / 2
		p.X += ctx.rand(-half, half)
		p.VX = ctx.rand(-1, 1)
		p.VY = ctx.Config.StartVelocity * ctx.rand(0.3, 1)
		p.Rotation = ctx.rand(0, 360)
	})
}

func renderLeaves(p *particle.Particle) VisualDescription {
	v := VisualDescription{
		Shape:  ShapeEllipse,
		Color:  p.Color,
		Glyph:  "🍂",
		Width:  p.Size,
		Height: p.Size * 0.5,
		ScaleX: 1,
		ScaleY: 1,
	}
	if effects(p).Spin3D {
		v.ScaleX = math.Cos(p.Aux.Phase + float64(p.Aux.Frame)*0.08)
	}
	return v
}
