package entities

import (
	"math"
	"math/rand"

	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/types"
)

// CreateContext carries everything a factory needs to build a burst.
type CreateContext struct {
	Origin types.Point
	Config *config.RewardConfig
	Pool   *particle.Pool
	Rand   *rand.Rand
}

// StepContext is handed to extension hooks during the physics step.
type StepContext struct {
	Frame int
	Rand  *rand.Rand

	// Spawn acquires a record from the pool. The returned particle joins the
	// instance once the current pass over the collection is finished.
	Spawn func() *particle.Particle
}

type (
	// CreateFunc builds the initial particles of a burst.
	CreateFunc func(ctx *CreateContext) []*particle.Particle

	// RenderFunc maps particle state to a visual description. Must be pure.
	RenderFunc func(p *particle.Particle) VisualDescription

	// FadeFunc overrides the default life/100 opacity curve.
	FadeFunc func(p *particle.Particle) float64

	// ExtendFunc runs after the generic step for every active particle and may
	// spawn new particles through ctx.Spawn.
	ExtendFunc func(p *particle.Particle, ctx *StepContext)
)

// Capability is the pluggable pair (plus optional hooks) that defines one
// animation type.
type Capability struct {
	Defaults     config.RewardConfig
	AnchorOffset types.Point // 视觉锚点偏移（相对触发元素中心）
	Create       CreateFunc
	Render       RenderFunc
	Fade         FadeFunc
	Extend       ExtendFunc
}

// spawn acquires and resets a particle at the context origin with the
// configured lifetime, size and the i-th color.
func (ctx *CreateContext) spawn(i int) *particle.Particle {
	p := ctx.Pool.Acquire()
	p.Reset()

	cfg := ctx.Config
	p.X = ctx.Origin.X
	p.Y = ctx.Origin.Y
	p.Life = cfg.Lifetime
	p.Opacity = 1
	p.Size = cfg.ElementSize
	p.Color = particle.PickColor(cfg.Colors, i)
	p.Config = cfg
	p.Aux.StartLife = cfg.Lifetime
	p.Aux.Phase = ctx.rand(0, 2*math.Pi)
	return p
}

// launch gives p a velocity aimed at baseDeg (screen degrees, -90 = up)
// jittered inside the configured spread, with 60-100% of StartVelocity.
func (ctx *CreateContext) launch(p *particle.Particle, baseDeg float64) {
	spread := ctx.Config.Spread
	angle := (baseDeg + ctx.rand(-spread/2, spread/2)) * math.Pi / 180
	speed := ctx.Config.StartVelocity * ctx.rand(0.6, 1.0)

	p.VX = math.Cos(angle) * speed
	p.VY = math.Sin(angle) * speed
	p.Aux.Angle = angle
}

func (ctx *CreateContext) rand(min, max float64) float64 {
	return particle.RandomInRange(ctx.Rand, min, max)
}

func (ctx *CreateContext) intn(n int) int {
	if n <= 0 {
		return 0
	}
	if ctx.Rand == nil {
		return rand.Intn(n)
	}
	return ctx.Rand.Intn(n)
}

// burst is the common factory body: spawn ParticleCount particles and let
// init fill in type-specific state.
func burst(ctx *CreateContext, init func(p *particle.Particle, i int)) []*particle.Particle {
	n := ctx.Config.ParticleCount
	if n <= 0 {
		return nil
	}
	out := make([]*particle.Particle, 0, n)
	for i := 0; i < n; i++ {
		p := ctx.spawn(i)
		init(p, i)
		out = append(out, p)
	}
	return out
}

// lifeProgress returns how far through its life p is, in [0, 1].
func lifeProgress(p *particle.Particle) float64 {
	if p.Aux.StartLife <= 0 {
		return 1
	}
	t := 1 - p.Life/p.Aux.StartLife
	return math.Max(0, math.Min(1, t))
}

func effects(p *particle.Particle) config.EffectsConfig {
	if p.Config == nil {
		return config.EffectsConfig{}
	}
	return p.Config.Effects
}

// pulse returns a [0, 1] oscillation driven by the particle's own frame
// counter and phase.
func pulse(p *particle.Particle) float64 {
	return math.Abs(math.Sin(float64(p.Aux.Frame)*0.25 + p.Aux.Phase))
}
