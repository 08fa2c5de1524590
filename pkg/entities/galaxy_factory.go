package entities

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/types"
)

// galaxyPalette 星系配色：紫 → 蓝 的 HSV 渐变
var galaxyPalette = hsvPalette(220, 300, 8)

func galaxyCapability() Capability {
	radial := config.DefaultRadialConfig
	radial.Enabled = true
	radial.Pattern = types.RadialSpiral
	radial.SpiralTurns = 1.5

	return Capability{
		Defaults: config.RewardConfig{
			ParticleCount: 60,
			Spread:        360,
			StartVelocity: 5,
			ElementSize:   5,
			Lifetime:      150,
			Colors:        galaxyPalette,
			Physics:       config.PhysicsConfig{Gravity: 0, Wind: 0, Friction: 0.97},
			Effects:       config.EffectsConfig{Twinkle: true},
			Radial:        radial,
		},
		Create: createGalaxy,
		Render: renderGalaxy,
	}
}

func createGalaxy(ctx *CreateContext) []*particle.Particle {
	return burst(ctx, func(p *particle.Particle, i int) {
		ctx.launch(p, 0)
		p.Size *= ctx.rand(0.4, 1.4)
		p.Aux.LockRotation = true
	})
}

func renderGalaxy(p *particle.Particle) VisualDescription {
	return VisualDescription{
		Shape:  ShapeCircle,
		Color:  p.Color,
		Glyph:  "·",
		Width:  p.Size,
		Height: p.Size,
		ScaleX: 1,
		ScaleY: 1,
		Glow:   p.Size > 5,
	}
}

// hsvPalette 在 [fromHue, toHue] 之间均匀取 n 个颜色
func hsvPalette(fromHue, toHue float64, n int) []string {
	if n < 2 {
		return []string{colorful.Hsv(fromHue, 0.7, 1).Hex()}
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		h := fromHue + (toHue-fromHue)*float64(i)/float64(n-1)
		out = append(out, colorful.Hsv(h, 0.65, 1).Hex())
	}
	return out
}
