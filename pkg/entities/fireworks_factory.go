package entities

import (
	"math"

	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
)

// 烟花参数
const (
	fireworksSparksPerShell = 12   // 每枚烟花弹的默认火花数
	fireworksMaxShells      = 6    // 单次触发最多烟花弹数
	fireworksExplodeMin     = 0.25 // 爆炸时机（占总帧数的比例）
	fireworksExplodeMax     = 0.4
	fireworksTrailEvery     = 3  // 每 N 帧留下一个拖尾粒子
	fireworksTrailLife      = 20 // 拖尾粒子生命值
	fireworksSparkSpeedMin  = 2.5
	fireworksSparkSpeedMax  = 5.5
)

func fireworksCapability() Capability {
	return Capability{
		Defaults: config.RewardConfig{
			ParticleCount: 36,
			Spread:        30,
			StartVelocity: 14,
			ElementSize:   5,
			Lifetime:      150,
			Colors:        []string{"#ff4d4d", "#ffd24d", "#4dff88", "#4dc3ff", "#c44dff"},
			Physics:       config.PhysicsConfig{Gravity: 0.2, Wind: 0, Friction: 0.99},
			Effects:       config.EffectsConfig{Twinkle: true},
		},
		Create: createFireworks,
		Render: renderFireworks,
		Fade:   fadeFireworks,
		Extend: extendFireworks,
	}
}

// createFireworks 发射若干烟花弹，ParticleCount 为爆炸后火花总数
func createFireworks(ctx *CreateContext) []*particle.Particle {
	total := ctx.Config.ParticleCount
	if total <= 0 {
		return nil
	}

	shells := total / fireworksSparksPerShell
	shells = max(1, min(shells, fireworksMaxShells))

	frames := ctx.Config.Lifetime / particle.DecayRate
	out := make([]*particle.Particle, 0, shells)
	for i := 0; i < shells; i++ {
		p := ctx.spawn(i)
		ctx.launch(p, -90)
		p.Aux.LockRotation = true

		sparks := total / shells
		if i < total%shells {
			sparks++
		}
		p.Kind = &particle.Shell{
			ExplodeAtFrame: int(frames * ctx.rand(fireworksExplodeMin, fireworksExplodeMax)),
			BurstCount:     sparks,
		}
		out = append(out, p)
	}
	return out
}

// extendFireworks 烟花弹升空时留下拖尾，到达爆炸帧后炸开为火花
//
// Children inherit the shell's remaining life so the burst never outlives
// the configured lifetime.
func extendFireworks(p *particle.Particle, ctx *StepContext) {
	shell, ok := p.Kind.(*particle.Shell)
	if !ok || shell.Exploded {
		return
	}
	if shell.BurstCount <= 0 || shell.ExplodeAtFrame <= 0 {
		// 数据异常：按普通粒子处理
		p.Kind = particle.Plain{}
		return
	}

	if p.Aux.Frame < shell.ExplodeAtFrame {
		if p.Aux.Frame%fireworksTrailEvery == 0 {
			t := ctx.Spawn()
			t.Reset()
			t.X, t.Y = p.X, p.Y
			t.Life = math.Min(fireworksTrailLife, p.Life)
			t.Aux.StartLife = t.Life
			t.Size = p.Size * 0.6
			t.Color = p.Color
			t.Config = p.Config
			t.Kind = particle.Trail{}
			t.Aux.LockRotation = true
		}
		return
	}

	shell.Exploded = true
	step := 2 * math.Pi / float64(shell.BurstCount)
	for i := 0; i < shell.BurstCount; i++ {
		c := ctx.Spawn()
		c.Reset()

		angle := float64(i)*step + particle.RandomInRange(ctx.Rand, -step/4, step/4)
		speed := particle.RandomInRange(ctx.Rand, fireworksSparkSpeedMin, fireworksSparkSpeedMax)

		c.X, c.Y = p.X, p.Y
		c.VX = math.Cos(angle) * speed
		c.VY = math.Sin(angle) * speed
		c.Life = p.Life
		c.Opacity = 1
		c.Size = p.Size
		c.Color = p.Color
		c.Config = p.Config
		c.Kind = particle.Burst{Generation: 1}
		c.Aux.StartLife = p.Life
		c.Aux.Angle = angle
		c.Aux.Phase = angle
	}

	// 烟花弹本身在爆炸后消失
	p.Life = 0
	p.Opacity = 0
}

// fadeFireworks 拖尾快速淡出，火花在生命末段淡出
func fadeFireworks(p *particle.Particle) float64 {
	switch p.Kind.(type) {
	case particle.Trail:
		return 0.6 * (1 - lifeProgress(p))
	case particle.Burst:
		return particle.EvaluateKeyframes(sparkFade, lifeProgress(p), particle.InterpEaseIn)
	default:
		return 1
	}
}

var sparkFade = []particle.Keyframe{
	{Time: 0, Value: 1},
	{Time: 0.6, Value: 0.9},
	{Time: 1, Value: 0},
}

func renderFireworks(p *particle.Particle) VisualDescription {
	v := VisualDescription{
		Shape:  ShapeCircle,
		Color:  p.Color,
		Glyph:  "*",
		Width:  p.Size,
		Height: p.Size,
		ScaleX: 1,
		ScaleY: 1,
	}
	switch p.Kind.(type) {
	case *particle.Shell:
		v.Glyph = "|"
		v.Height = p.Size * 2
	case particle.Trail:
		v.Glyph = "."
	case particle.Burst:
		v.Glow = true
	}
	return v
}
