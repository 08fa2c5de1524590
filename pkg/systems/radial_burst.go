package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/types"
)

const (
	degToRad = math.Pi / 180

	vortexSwirlDeg   = 60.0  // 漩涡模式初速度相对径向的偏转角
	vortexPullRange  = 100.0 // 漩涡牵引力随距离增长的参考距离（像素）
	pinwheelArmSweep = 30.0  // 风车每条臂从内到外的扫掠角（度）
	pinwheelThrust   = 2.0   // 风车切向推力倍数
)

// ApplyRadialBurst 按径向模式重写所有粒子的初速度
//
// 参数:
//   - ps: 由动画类型工厂生成的粒子
//   - cfg: 已合并的配置，使用 StartVelocity、Spread 与 Radial
//   - rng: 随机源，nil 时使用全局随机源
//
// 圆形模式下第 i 个粒子的角度为 i*360/N，叠加不超过 AngleVariation 的抖动。
func ApplyRadialBurst(ps []*particle.Particle, cfg *config.RewardConfig, rng *rand.Rand) {
	n := len(ps)
	if n == 0 || cfg == nil {
		return
	}
	r := cfg.Radial

	for i, p := range ps {
		deg, speedScale := radialAngle(r, cfg.Spread, i, n, rng)
		deg += particle.RandomInRange(rng, -r.AngleVariation, r.AngleVariation)

		speed := cfg.StartVelocity * speedScale
		if r.VelocityVariation > 0 {
			speed *= 1 + particle.RandomInRange(rng, -r.VelocityVariation, r.VelocityVariation)
		}

		angle := deg * degToRad
		p.VX = math.Cos(angle) * speed
		p.VY = math.Sin(angle) * speed
		p.Aux.Angle = angle
	}
}

// radialAngle 返回第 i 个粒子的基准角度（度）与速度倍数
func radialAngle(r config.RadialConfig, spread float64, i, n int, rng *rand.Rand) (float64, float64) {
	frac := float64(i) / float64(n)

	switch r.Pattern {
	case types.RadialCone:
		// 以正上方为中心，在 spread 内均匀分布
		if n == 1 {
			return -90, 1
		}
		return -90 - spread/2 + spread*float64(i)/float64(n-1), 1

	case types.RadialRandom:
		return particle.RandomInRange(rng, 0, 360), particle.RandomInRange(rng, 0.5, 1)

	case types.RadialSpiral:
		// 沿螺线排布，外圈速度更快
		return frac * 360 * math.Max(r.SpiralTurns, 0.1), 0.5 + 0.5*frac

	case types.RadialVortex:
		return frac*360 + vortexSwirlDeg, 1

	case types.RadialPinwheel:
		arms := max(1, r.PinwheelArms)
		arm := i % arms
		rank := float64(i/arms) / math.Max(1, float64((n-1)/arms))
		return float64(arm)*360/float64(arms) + rank*pinwheelArmSweep, 0.4 + 0.6*rank

	default:
		return frac * 360, 1
	}
}

// SteerRadial 飞行中转向（螺旋 / 漩涡 / 风车），调度器每隔一帧调用一次
func SteerRadial(p *particle.Particle, origin types.Point, r config.RadialConfig) {
	switch r.Pattern {
	case types.RadialSpiral:
		// 螺旋：速度方向持续旋转
		p.VX, p.VY = rotate(p.VX, p.VY, r.RotationSpeed)

	case types.RadialVortex:
		// 漩涡：向原点牵引，距离越远拉力越大
		dx, dy := origin.X-p.X, origin.Y-p.Y
		dist := math.Hypot(dx, dy)
		if dist < 1 {
			return
		}
		pull := r.VortexPull * (1 + dist/vortexPullRange)
		p.VX += dx / dist * pull
		p.VY += dy / dist * pull

	case types.RadialPinwheel:
		// 风车：垂直于半径方向的推力
		rx, ry := p.X-origin.X, p.Y-origin.Y
		dist := math.Hypot(rx, ry)
		if dist < 1 {
			return
		}
		thrust := r.RotationSpeed * pinwheelThrust
		p.VX += -ry / dist * thrust
		p.VY += rx / dist * thrust
	}
}

func rotate(x, y, rad float64) (float64, float64) {
	sin, cos := math.Sincos(rad)
	return x*cos - y*sin, x*sin + y*cos
}
