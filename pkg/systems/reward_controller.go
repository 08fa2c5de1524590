package systems

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/entities"
	"github.com/decker502/rewardfx/pkg/types"
)

// Mode 控制器运行模式
type Mode int

const (
	// ModeSimple 私有帧循环，不支持暂停/重播
	ModeSimple Mode = iota
	// ModeControlled 注册到共享调度器，支持 Pause/Resume/Replay
	ModeControlled
)

func (m Mode) String() string {
	if m == ModeControlled {
		return "controlled"
	}
	return "simple"
}

// State 控制器状态
type State int

const (
	StateIdle State = iota
	StateAnimating
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// ControllerDeps 控制器依赖，由应用根对象统一构造后注入
type ControllerDeps struct {
	// Manager 共享调度器（ModeControlled 使用）
	Manager *AnimationManager
	// Frames 帧驱动（ModeSimple 的私有循环使用）
	Frames   FrameDriver
	Pool     *particle.Pool
	Registry *entities.Registry
	Anchors  AnchorResolver
	Env      Environment
	Surfaces SurfaceFactory
	Config   config.ManagerConfig
	Rand     *rand.Rand
}

// RewardController 单个触发元素的奖励动画入口
//
// 状态机：
//
//	Idle → Animating → Idle
//	Animating ⇄ Paused（仅 ModeControlled）
//	Animating → Animating（Replay 立即重启，仅 ModeControlled）
//
// 同一控制器同一时刻最多只有一次爆发。RewardController 不是并发安全的。
type RewardController struct {
	deps    ControllerDeps
	anchor  string
	at      types.AnimationType
	options config.RewardOptions
	mode    Mode

	manager *AnimationManager
	private bool // manager 由本控制器私有持有

	state      State
	inst       *AnimationInstance
	completion *Completion
	destroyed  bool
	bursts     int
}

// NewRewardController 创建控制器
//
// ModeSimple 会基于 deps.Frames 创建私有调度器；ModeControlled 使用
// deps.Manager，未提供时同样回落到私有调度器。
func NewRewardController(deps ControllerDeps, anchor string, at types.AnimationType, opts config.RewardOptions, mode Mode) *RewardController {
	rc := &RewardController{
		deps:    deps,
		anchor:  anchor,
		at:      at,
		options: opts,
		mode:    mode,
	}
	if rc.deps.Rand == nil {
		rc.deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if mode == ModeControlled && deps.Manager != nil {
		rc.manager = deps.Manager
	} else {
		rc.manager = NewAnimationManager(deps.Frames, deps.Pool, deps.Env, deps.Config)
		rc.private = true
	}
	// 粒子从调度器的池中取出，实例移除时归还到同一个池
	rc.deps.Pool = rc.manager.Pool()
	return rc
}

// State 返回当前状态
func (rc *RewardController) State() State {
	return rc.state
}

// Mode 返回运行模式
func (rc *RewardController) Mode() Mode {
	return rc.mode
}

// IsAnimating 是否有进行中（含暂停）的爆发
func (rc *RewardController) IsAnimating() bool {
	return rc.state != StateIdle
}

// InstanceID 返回当前实例 ID，空闲时为 0
func (rc *RewardController) InstanceID() uint64 {
	if rc.inst == nil {
		return 0
	}
	return rc.inst.ID
}

// Reward 触发一次爆发，返回完成信号
//
// 已有爆发进行中时不做任何事，返回进行中的完成信号。锚点缺失或动画类型
// 未注册时记录日志并返回已完成的信号，不创建粒子和渲染容器。
func (rc *RewardController) Reward() *Completion {
	if rc.destroyed {
		log.Printf("[RewardController] reward on destroyed controller %q ignored", rc.anchor)
		return resolvedCompletion()
	}
	if rc.state != StateIdle {
		return rc.completion
	}

	rect, ok := rc.resolveAnchor()
	if !ok {
		log.Printf("[RewardController] anchor %q not found, skipping reward", rc.anchor)
		return resolvedCompletion()
	}

	capability, ok := rc.deps.Registry.Lookup(rc.at)
	if !ok {
		log.Printf("[RewardController] Error: unknown animation type %s (%d)", rc.at, int(rc.at))
		return resolvedCompletion()
	}

	cfg := rc.options.Apply(capability.Defaults)
	constrained := rc.deps.Env != nil && rc.deps.Env.IsConstrained()
	cfg = config.AdjustForEnvironment(cfg, constrained, rc.deps.Config.ConstrainedScale)

	// 起点在触发时计算，支持在两次渲染之间移动的元素
	center := rect.Center()
	origin := types.Point{
		X: center.X + capability.AnchorOffset.X,
		Y: center.Y + capability.AnchorOffset.Y,
	}

	ps := capability.Create(&entities.CreateContext{
		Origin: origin,
		Config: &cfg,
		Pool:   rc.deps.Pool,
		Rand:   rc.deps.Rand,
	})
	if cfg.Radial.Enabled {
		ApplyRadialBurst(ps, &cfg, rc.deps.Rand)
	}

	inst := NewAnimationInstance(rc.at, capability, &cfg, ps)
	inst.Origin = origin
	inst.rng = rc.deps.Rand

	rc.bursts++
	if rc.deps.Surfaces != nil {
		inst.Surface = rc.deps.Surfaces.CreateSurface(fmt.Sprintf("reward-%s-%d", rc.anchor, rc.bursts))
	}

	c := newCompletion()
	inst.OnComplete = func() {
		if rc.inst == inst {
			rc.inst = nil
			rc.completion = nil
			rc.state = StateIdle
		}
		c.resolve()
	}

	rc.inst = inst
	rc.completion = c
	rc.state = StateAnimating
	rc.manager.AddAnimation(inst)
	return c
}

// Pause 暂停当前爆发（仅 ModeControlled）
func (rc *RewardController) Pause() bool {
	if !rc.controlsEnabled("pause") || rc.state != StateAnimating {
		return false
	}
	if !rc.manager.PauseAnimation(rc.inst.ID) {
		return false
	}
	rc.state = StatePaused
	return true
}

// Resume 从暂停处继续（仅 ModeControlled）
func (rc *RewardController) Resume() bool {
	if !rc.controlsEnabled("resume") || rc.state != StatePaused {
		return false
	}
	if !rc.manager.ResumeAnimation(rc.inst.ID) {
		return false
	}
	rc.state = StateAnimating
	return true
}

// Replay 立即拆除当前爆发并重新开始，返回新的完成信号
//
// 旧的完成信号被取消（Wait 返回 ErrCanceled），不会被标记为完成。
// ModeSimple 下不支持，返回当前完成信号（空闲时为已完成信号）。
func (rc *RewardController) Replay() *Completion {
	if !rc.controlsEnabled("replay") {
		if rc.completion != nil {
			return rc.completion
		}
		return resolvedCompletion()
	}
	rc.teardown()
	return rc.Reward()
}

// Destroy 取消待处理帧、拆除实例与渲染容器；任何状态下都可以安全调用
func (rc *RewardController) Destroy() {
	if rc.destroyed {
		return
	}
	rc.teardown()
	if rc.private {
		rc.manager.Shutdown()
	}
	rc.destroyed = true
}

func (rc *RewardController) teardown() {
	if rc.completion != nil {
		rc.completion.cancel()
		rc.completion = nil
	}
	if rc.inst != nil {
		rc.inst.OnComplete = nil
		rc.manager.RemoveAnimation(rc.inst.ID)
		rc.inst = nil
	}
	rc.state = StateIdle
}

func (rc *RewardController) controlsEnabled(op string) bool {
	if rc.destroyed {
		return false
	}
	if rc.mode != ModeControlled {
		log.Printf("[RewardController] %s is only available in controlled mode", op)
		return false
	}
	return true
}

func (rc *RewardController) resolveAnchor() (types.Rect, bool) {
	if rc.deps.Anchors == nil {
		return types.Rect{}, false
	}
	return rc.deps.Anchors.Resolve(rc.anchor)
}
