package config

import (
	"fmt"
	"log"

	"github.com/decker502/rewardfx/pkg/types"
)

// PhysicsConfig 每帧统一施加的物理参数
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`  // 每帧加到 VY 上（负值表示上浮）
	Wind     float64 `yaml:"wind"`     // 每帧加到 VX 上
	Friction float64 `yaml:"friction"` // 每帧速度乘数（1 = 无阻尼）
}

// EffectsConfig 按类型启用的装饰性扰动
type EffectsConfig struct {
	Flutter   bool `yaml:"flutter"`   // 彩纸飘动（X 抖动 + 额外旋转）
	Twinkle   bool `yaml:"twinkle"`   // 闪烁（透明度乘以 sin 曲线）
	Pulse     bool `yaml:"pulse"`     // 缩放脉动（渲染器使用）
	Spin3D    bool `yaml:"spin3D"`    // 3D 翻转（渲染器使用）
	Wobble    bool `yaml:"wobble"`    // 气泡摇摆（X/Y 正弦抖动）
	WindDrift bool `yaml:"windDrift"` // 随风飘移（按粒子相位的 X 正弦抖动）
}

// RadialConfig 径向爆发覆盖参数（已解析）
type RadialConfig struct {
	Enabled           bool
	Pattern           types.RadialPattern
	AngleVariation    float64 // 角度抖动上限（度）
	VelocityVariation float64 // 速度抖动比例（0.2 = ±20%）
	SpiralTurns       float64 // 螺旋模式的总圈数
	VortexPull        float64 // 漩涡模式的向心牵引强度
	PinwheelArms      int     // 风车模式的臂数
	RotationSpeed     float64 // 螺旋/风车模式每次转向的角速度（弧度）
}

// RewardConfig 一次奖励触发的完整（已合并默认值）配置
type RewardConfig struct {
	ParticleCount int
	Spread        float64 // 发射扇区宽度（度）
	StartVelocity float64 // 初速度（像素/帧）
	ElementSize   float64 // 粒子基础尺寸（像素）
	Lifetime      float64 // 初始生命值（按 100 归一化透明度）
	Colors        []string
	Physics       PhysicsConfig
	Effects       EffectsConfig
	Radial        RadialConfig
}

// Radial defaults applied when a burst enables the radial override without
// tuning it.
var DefaultRadialConfig = RadialConfig{
	Pattern:           types.RadialCircular,
	AngleVariation:    0,
	VelocityVariation: 0.2,
	SpiralTurns:       2,
	VortexPull:        0.05,
	PinwheelArms:      4,
	RotationSpeed:     0.08,
}

// RewardOptions 调用方传入的可选参数，未设置的字段回落到动画类型默认值
type RewardOptions struct {
	ParticleCount *int            `yaml:"particleCount,omitempty"`
	Spread        *float64        `yaml:"spread,omitempty"`
	StartVelocity *float64        `yaml:"startVelocity,omitempty"`
	ElementSize   *float64        `yaml:"elementSize,omitempty"`
	Lifetime      *float64        `yaml:"lifetime,omitempty"`
	Colors        []string        `yaml:"colors,omitempty"`
	Physics       *PhysicsOptions `yaml:"physics,omitempty"`
	Effects       *EffectsOptions `yaml:"effects,omitempty"`
	Radial        *RadialOptions  `yaml:"radial,omitempty"`
}

// PhysicsOptions 可选物理参数
type PhysicsOptions struct {
	Gravity  *float64 `yaml:"gravity,omitempty"`
	Wind     *float64 `yaml:"wind,omitempty"`
	Friction *float64 `yaml:"friction,omitempty"`
}

// EffectsOptions 可选效果开关
type EffectsOptions struct {
	Flutter   *bool `yaml:"flutter,omitempty"`
	Twinkle   *bool `yaml:"twinkle,omitempty"`
	Pulse     *bool `yaml:"pulse,omitempty"`
	Spin3D    *bool `yaml:"spin3D,omitempty"`
	Wobble    *bool `yaml:"wobble,omitempty"`
	WindDrift *bool `yaml:"windDrift,omitempty"`
}

// RadialOptions 可选径向爆发参数
type RadialOptions struct {
	Enabled           *bool    `yaml:"enabled,omitempty"`
	Pattern           string   `yaml:"pattern,omitempty"`
	AngleVariation    *float64 `yaml:"angleVariation,omitempty"`
	VelocityVariation *float64 `yaml:"velocityVariation,omitempty"`
	SpiralTurns       *float64 `yaml:"spiralTurns,omitempty"`
	VortexPull        *float64 `yaml:"vortexPull,omitempty"`
	PinwheelArms      *int     `yaml:"pinwheelArms,omitempty"`
	RotationSpeed     *float64 `yaml:"rotationSpeed,omitempty"`
}

// Int, Float and Bool return pointers for building RewardOptions literals.
func Int(v int) *int           { return &v }
func Float(v float64) *float64 { return &v }
func Bool(v bool) *bool        { return &v }

// Apply 将可选参数合并到默认配置上，返回新的配置（defaults 不会被修改）
func (o RewardOptions) Apply(defaults RewardConfig) RewardConfig {
	cfg := defaults
	cfg.Colors = append([]string(nil), defaults.Colors...)

	setInt(&cfg.ParticleCount, o.ParticleCount)
	setFloat(&cfg.Spread, o.Spread)
	setFloat(&cfg.StartVelocity, o.StartVelocity)
	setFloat(&cfg.ElementSize, o.ElementSize)
	setFloat(&cfg.Lifetime, o.Lifetime)
	if len(o.Colors) > 0 {
		cfg.Colors = append([]string(nil), o.Colors...)
	}

	if p := o.Physics; p != nil {
		setFloat(&cfg.Physics.Gravity, p.Gravity)
		setFloat(&cfg.Physics.Wind, p.Wind)
		setFloat(&cfg.Physics.Friction, p.Friction)
	}

	if e := o.Effects; e != nil {
		setBool(&cfg.Effects.Flutter, e.Flutter)
		setBool(&cfg.Effects.Twinkle, e.Twinkle)
		setBool(&cfg.Effects.Pulse, e.Pulse)
		setBool(&cfg.Effects.Spin3D, e.Spin3D)
		setBool(&cfg.Effects.Wobble, e.Wobble)
		setBool(&cfg.Effects.WindDrift, e.WindDrift)
	}

	if r := o.Radial; r != nil {
		if defaults.Radial == (RadialConfig{}) {
			cfg.Radial = DefaultRadialConfig
		}
		setBool(&cfg.Radial.Enabled, r.Enabled)
		if r.Pattern != "" {
			pattern, ok := types.ParseRadialPattern(r.Pattern)
			if !ok {
				log.Printf("[RewardConfig] Warning: unknown radial pattern %q, using circular", r.Pattern)
			}
			cfg.Radial.Pattern = pattern
		}
		setFloat(&cfg.Radial.AngleVariation, r.AngleVariation)
		setFloat(&cfg.Radial.VelocityVariation, r.VelocityVariation)
		setFloat(&cfg.Radial.SpiralTurns, r.SpiralTurns)
		setFloat(&cfg.Radial.VortexPull, r.VortexPull)
		setInt(&cfg.Radial.PinwheelArms, r.PinwheelArms)
		setFloat(&cfg.Radial.RotationSpeed, r.RotationSpeed)
	}

	return cfg
}

// Validate 检查可选参数的取值范围
func (o RewardOptions) Validate() error {
	if o.ParticleCount != nil && *o.ParticleCount < 0 {
		return fmt.Errorf("particleCount must be >= 0, got %d", *o.ParticleCount)
	}
	if o.Lifetime != nil && *o.Lifetime <= 0 {
		return fmt.Errorf("lifetime must be > 0, got %.2f", *o.Lifetime)
	}
	if o.ElementSize != nil && *o.ElementSize <= 0 {
		return fmt.Errorf("elementSize must be > 0, got %.2f", *o.ElementSize)
	}
	if o.Physics != nil && o.Physics.Friction != nil {
		if f := *o.Physics.Friction; f <= 0 || f > 1 {
			return fmt.Errorf("physics.friction must be in (0, 1], got %.3f", f)
		}
	}
	if o.Radial != nil {
		if _, ok := types.ParseRadialPattern(o.Radial.Pattern); !ok {
			return fmt.Errorf("unknown radial pattern %q", o.Radial.Pattern)
		}
		if o.Radial.PinwheelArms != nil && *o.Radial.PinwheelArms < 1 {
			return fmt.Errorf("radial.pinwheelArms must be >= 1, got %d", *o.Radial.PinwheelArms)
		}
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
