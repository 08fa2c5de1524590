package config

import "math"

// 受限设备（移动端 / 低功耗）的配置缩放系数
const (
	ConstrainedSizeScale     = 0.8
	ConstrainedLifetimeScale = 0.8
)

// AdjustForEnvironment 根据运行环境缩减一次触发的配置
//
// 在受限环境下按 countScale 缩减粒子数量（至少保留 1 个），
// 并缩小粒子尺寸、缩短生命值。非受限环境原样返回。
// 每次触发只调用一次，不在每帧调用。
func AdjustForEnvironment(cfg RewardConfig, constrained bool, countScale float64) RewardConfig {
	if !constrained {
		return cfg
	}
	if countScale <= 0 || countScale > 1 {
		countScale = DefaultConstrainedScale
	}

	if cfg.ParticleCount > 0 {
		cfg.ParticleCount = int(math.Max(1, math.Round(float64(cfg.ParticleCount)*countScale)))
	}
	cfg.ElementSize *= ConstrainedSizeScale
	cfg.Lifetime *= ConstrainedLifetimeScale
	return cfg
}
