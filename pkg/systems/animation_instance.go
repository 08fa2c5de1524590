package systems

import (
	"math/rand"

	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/entities"
	"github.com/decker502/rewardfx/pkg/types"
)

// AnimationInstance 一次奖励爆发的运行时状态
//
// 由 RewardController 创建，注册到 AnimationManager 后由调度器逐帧推进，
// 所有粒子 Life <= 0 时完成并被移除。
type AnimationInstance struct {
	ID        uint64
	Type      types.AnimationType
	Particles []*particle.Particle

	Physics config.PhysicsConfig
	Effects config.EffectsConfig
	Radial  config.RadialConfig
	Origin  types.Point

	Paused bool
	Frame  int

	// OnUpdate 每个渲染帧在粒子推进后调用（低功耗跳帧时不调用）
	OnUpdate func(inst *AnimationInstance)

	// OnComplete 最后一个粒子失效后调用，恰好一次；被移除的实例不会调用
	OnComplete func()

	// Surface 渲染目标，可为 nil
	Surface Surface

	capability entities.Capability
	config     *config.RewardConfig
	rng        *rand.Rand
	removed    bool
}

// NewAnimationInstance 创建实例，physics/effects/radial 取自 cfg
func NewAnimationInstance(at types.AnimationType, c entities.Capability, cfg *config.RewardConfig, particles []*particle.Particle) *AnimationInstance {
	inst := &AnimationInstance{
		Type:       at,
		Particles:  particles,
		capability: c,
		config:     cfg,
	}
	if cfg != nil {
		inst.Physics = cfg.Physics
		inst.Effects = cfg.Effects
		inst.Radial = cfg.Radial
	}
	return inst
}

// Config 返回创建该实例时的有效配置
func (inst *AnimationInstance) Config() *config.RewardConfig {
	return inst.config
}

// ActiveCount 返回仍存活的粒子数量
func (inst *AnimationInstance) ActiveCount() int {
	n := 0
	for _, p := range inst.Particles {
		if p.Active() {
			n++
		}
	}
	return n
}

// Sprites 返回所有存活粒子的渲染描述
func (inst *AnimationInstance) Sprites() []entities.Sprite {
	out := make([]entities.Sprite, 0, len(inst.Particles))
	for _, p := range inst.Particles {
		if !p.Active() {
			continue
		}
		s := entities.Sprite{
			ID: p.ID,
			Style: entities.Style{
				X:        p.X,
				Y:        p.Y,
				Opacity:  p.Opacity,
				Rotation: p.Rotation,
			},
		}
		if inst.capability.Render != nil {
			s.Visual = inst.capability.Render(p)
		}
		out = append(out, s)
	}
	return out
}

// step 推进一帧：物理 → 扩展钩子 → 径向转向，新生成的粒子在遍历结束后加入
func (inst *AnimationInstance) step(pool *particle.Pool) {
	inst.Frame++

	ps := PhysicsStep{
		Type:    inst.Type,
		Physics: inst.Physics,
		Effects: inst.Effects,
		Fade:    inst.capability.Fade,
	}

	var spawned []*particle.Particle
	sc := &entities.StepContext{
		Frame: inst.Frame,
		Rand:  inst.rng,
		Spawn: func() *particle.Particle {
			p := pool.Acquire()
			p.Reset()
			spawned = append(spawned, p)
			return p
		},
	}

	steer := inst.Radial.Enabled && inst.Radial.Pattern.Steered() && inst.Frame%2 == 0

	for _, p := range inst.Particles {
		if !ps.Apply(p) {
			continue
		}
		if p.Active() && inst.capability.Extend != nil {
			inst.capability.Extend(p, sc)
		}
		if steer && p.Active() {
			SteerRadial(p, inst.Origin, inst.Radial)
		}
	}

	if len(spawned) > 0 {
		inst.Particles = append(inst.Particles, spawned...)
	}
}
