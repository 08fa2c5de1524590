package entities

import (
	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
)

func bubblesCapability() Capability {
	return Capability{
		Defaults: config.RewardConfig{
			ParticleCount: 20,
			Spread:        90,
			StartVelocity: 3,
			ElementSize:   18,
			Lifetime:      150,
			Colors:        []string{"#a0e9ff", "#cdf5fd", "#89cff3", "#e0f4ff"},
			Physics:       config.PhysicsConfig{Gravity: -0.05, Wind: 0, Friction: 0.99},
			Effects:       config.EffectsConfig{Wobble: true},
		},
		Create: createBubbles,
		Render: renderBubbles,
		Fade:   fadeBubbles,
	}
}

func createBubbles(ctx *CreateContext) []*particle.Particle {
	return burst(ctx, func(p *particle.Particle, i int) {
		ctx.launch(p, -90)
		p.Size *= ctx.rand(0.5, 1.3)
		p.Aux.LockRotation = true
	})
}

func renderBubbles(p *particle.Particle) VisualDescription {
	return VisualDescription{
		Shape:  ShapeRing,
		Color:  p.Color,
		Glyph:  "o",
		Width:  p.Size,
		Height: p.Size,
		ScaleX: 1,
		ScaleY: 1,
		Glow:   true,
	}
}

// fadeBubbles 气泡保持半透明，最后阶段"破裂"快速消失
func fadeBubbles(p *particle.Particle) float64 {
	return particle.EvaluateKeyframes(bubbleFade, lifeProgress(p), particle.InterpLinear)
}

var bubbleFade = []particle.Keyframe{
	{Time: 0, Value: 0.2},
	{Time: 0.1, Value: 0.7},
	{Time: 0.9, Value: 0.7},
	{Time: 1, Value: 0},
}
