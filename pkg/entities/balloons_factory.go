package entities

import (
	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/types"
)

func balloonsCapability() Capability {
	return Capability{
		Defaults: config.RewardConfig{
			ParticleCount: 10,
			Spread:        40,
			StartVelocity: 3,
			ElementSize:   28,
			Lifetime:      150,
			Colors:        []string{"#e63946", "#457b9d", "#2a9d8f", "#f4a261", "#9b5de5"},
			Physics:       config.PhysicsConfig{Gravity: -0.08, Wind: 0, Friction: 0.985},
			Effects:       config.EffectsConfig{WindDrift: true},
		},
		AnchorOffset: types.Point{X: 0, Y: 20},
		Create:       createBalloons,
		Render:       renderBalloons,
		Fade:         fadeBalloons,
	}
}

func createBalloons(ctx *CreateContext) []*particle.Particle {
	return burst(ctx, func(p *particle.Particle, i int) {
		ctx.launch(p, -90)
		p.X += ctx.rand(-30, 30)
		p.Size *= ctx.rand(0.8, 1.1)
		p.Aux.LockRotation = true
	})
}

func renderBalloons(p *particle.Particle) VisualDescription {
	return VisualDescription{
		Shape:  ShapeEllipse,
		Color:  p.Color,
		Glyph:  "🎈",
		Width:  p.Size * 0.8,
		Height: p.Size,
		ScaleX: 1,
		ScaleY: 1,
	}
}

// fadeBalloons 气球在前 70% 保持不透明
func fadeBalloons(p *particle.Particle) float64 {
	return particle.EvaluateKeyframes(balloonFade, lifeProgress(p), particle.InterpEaseIn)
}

var balloonFade = []particle.Keyframe{
	{Time: 0, Value: 1},
	{Time: 0.7, Value: 1},
	{Time: 1, Value: 0},
}
