// Package game 组装奖励动画引擎
//
// Engine 是应用根对象：它统一创建帧队列、粒子池、动画注册表和共享调度器，
// 并为每个触发元素构造 RewardController。桌面端、移动端和终端演示都通过
// 它驱动动画，宿主只需每帧调用 Step。
package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/entities"
	"github.com/decker502/rewardfx/pkg/systems"
	"github.com/decker502/rewardfx/pkg/types"
)

// EngineConfig 引擎配置
type EngineConfig struct {
	// Manager 调度器配置，零值时使用 config.DefaultManagerConfig()
	Manager config.ManagerConfig

	// Profiles 奖励预设，nil 时使用 config.DefaultRewardProfiles()
	Profiles *config.RewardProfiles

	// Env 宿主环境信号，nil 视为可见、非受限
	Env systems.Environment

	// Surfaces 渲染容器工厂，nil 时动画照常推进但不绘制
	Surfaces systems.SurfaceFactory

	// Seed 随机种子，0 表示按当前时间
	Seed int64
}

// Engine 奖励动画引擎
//
// Engine 不是并发安全的：Step、NewController 以及控制器上的所有调用
// 必须发生在同一个 goroutine 上。
type Engine struct {
	cfg      config.ManagerConfig
	profiles *config.RewardProfiles

	frames   *systems.FrameQueue
	pool     *particle.Pool
	registry *entities.Registry
	manager  *systems.AnimationManager
	anchors  *StaticAnchors
	env      systems.Environment
	surfaces systems.SurfaceFactory
	rng      *rand.Rand

	controllers []*systems.RewardController
	closed      bool
}

// NewEngine 创建引擎
func NewEngine(cfg EngineConfig) (*Engine, error) {
	managerCfg := cfg.Manager
	if managerCfg == (config.ManagerConfig{}) {
		managerCfg = config.DefaultManagerConfig()
	}
	if err := managerCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manager config: %w", err)
	}

	profiles := cfg.Profiles
	if profiles == nil {
		profiles = config.DefaultRewardProfiles()
	}
	if err := profiles.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reward profiles: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	frames := systems.NewFrameQueue()
	pool := particle.NewPool(managerCfg.PoolSize)

	e := &Engine{
		cfg:      managerCfg,
		profiles: profiles,
		frames:   frames,
		pool:     pool,
		registry: entities.NewRegistry(),
		manager:  systems.NewAnimationManager(frames, pool, cfg.Env, managerCfg),
		anchors:  NewStaticAnchors(),
		env:      cfg.Env,
		surfaces: cfg.Surfaces,
		rng:      rand.New(rand.NewSource(seed)),
	}

	log.Printf("[Engine] initialized: %d animation types, %d profiles, targetFPS=%d, poolSize=%d",
		len(e.registry.Types()), len(profiles.Profiles), managerCfg.TargetFPS, managerCfg.PoolSize)
	return e, nil
}

// Anchors 返回锚点表
func (e *Engine) Anchors() *StaticAnchors {
	return e.anchors
}

// Manager 返回共享调度器
func (e *Engine) Manager() *systems.AnimationManager {
	return e.manager
}

// Registry 返回动画注册表
func (e *Engine) Registry() *entities.Registry {
	return e.registry
}

// Profiles 返回奖励预设
func (e *Engine) Profiles() *config.RewardProfiles {
	return e.profiles
}

// Pool 返回共享粒子池
func (e *Engine) Pool() *particle.Pool {
	return e.pool
}

// NewController 按预设为锚点创建控制器
//
// 预设的 controls 为 true 时使用共享调度器（ModeControlled），
// 否则控制器持有私有调度器（ModeSimple）。两者共享同一个帧队列和粒子池。
func (e *Engine) NewController(anchor, profileName string) (*systems.RewardController, error) {
	if e.closed {
		return nil, fmt.Errorf("engine is closed")
	}

	profile, ok := e.profiles.Get(profileName)
	if !ok {
		return nil, fmt.Errorf("unknown reward profile %q", profileName)
	}
	at, ok := profile.AnimationType()
	if !ok {
		return nil, fmt.Errorf("profile %q: unknown animation type %q", profileName, profile.Type)
	}

	mode := systems.ModeSimple
	if profile.Controls {
		mode = systems.ModeControlled
	}
	return e.NewControllerFor(anchor, at, profile.Options, mode)
}

// NewControllerFor 不经过预设直接创建控制器
func (e *Engine) NewControllerFor(anchor string, at types.AnimationType, opts config.RewardOptions, mode systems.Mode) (*systems.RewardController, error) {
	if e.closed {
		return nil, fmt.Errorf("engine is closed")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reward options: %w", err)
	}

	rc := systems.NewRewardController(e.deps(), anchor, at, opts, mode)
	e.controllers = append(e.controllers, rc)
	log.Printf("[Engine] controller created: anchor=%q type=%s mode=%s", anchor, at, mode)
	return rc, nil
}

// Release 销毁控制器并不再由引擎跟踪
func (e *Engine) Release(rc *systems.RewardController) {
	for i, c := range e.controllers {
		if c == rc {
			e.controllers = append(e.controllers[:i], e.controllers[i+1:]...)
			break
		}
	}
	rc.Destroy()
}

// Step 推进一帧，返回本帧执行的帧回调数量
func (e *Engine) Step(now time.Time) int {
	if e.closed {
		return 0
	}
	return e.frames.Step(now)
}

// Stats 返回共享调度器的诊断信息
func (e *Engine) Stats() systems.Stats {
	return e.manager.GetStats()
}

// Active 是否还有待执行的帧（共享或私有调度器）
func (e *Engine) Active() bool {
	return e.frames.Pending() > 0
}

// Close 销毁所有控制器、停止共享调度器并清空粒子池；可重复调用
func (e *Engine) Close() {
	if e.closed {
		return
	}
	for _, rc := range e.controllers {
		rc.Destroy()
	}
	e.controllers = nil
	e.manager.Shutdown()
	e.pool.Clear()
	e.closed = true
	log.Printf("[Engine] closed")
}

func (e *Engine) deps() systems.ControllerDeps {
	return systems.ControllerDeps{
		Manager:  e.manager,
		Frames:   e.frames,
		Pool:     e.pool,
		Registry: e.registry,
		Anchors:  e.anchors,
		Env:      e.env,
		Surfaces: e.surfaces,
		Config:   e.cfg,
		Rand:     e.rng,
	}
}
