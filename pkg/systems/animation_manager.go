package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
)

// frameTolerance 帧间隔容差，避免 16.67ms 的帧因计时抖动被误跳过
const frameTolerance = time.Millisecond

// Stats 调度器诊断信息
type Stats struct {
	ActiveAnimations int
	FPS              float64
	IsRunning        bool
	TotalParticles   int
}

// AnimationManager 用一个共享帧循环驱动所有奖励动画实例
//
// 每个 tick 分三个阶段：
//  1. 按注册顺序推进所有未暂停实例的物理
//  2. 调用渲染回调（低功耗模式下按间隔跳过）
//  3. 完成并移除没有存活粒子的实例
//
// 单个实例的 panic 会被恢复并记录，该实例被移除，其它实例继续。
// AnimationManager 不是并发安全的，所有调用必须发生在驱动帧队列的 goroutine 上。
type AnimationManager struct {
	frames FrameDriver
	pool   *particle.Pool
	env    Environment
	cfg    config.ManagerConfig
	rng    *rand.Rand

	instances []*AnimationInstance
	byID      map[uint64]*AnimationInstance
	nextID    uint64

	handle   FrameHandle
	inTick   bool
	interval time.Duration
	lastTick time.Time

	// FPS 采样（每秒一次）
	fps         float64
	fpsFrames   int
	fpsWindowAt time.Time
}

// NewAnimationManager 创建调度器
//
// 参数:
//   - frames: 宿主帧驱动
//   - pool: 粒子池，实例移除时粒子归还到这里
//   - env: 环境信号，可为 nil（视为可见、非受限）
//   - cfg: 调度器配置
func NewAnimationManager(frames FrameDriver, pool *particle.Pool, env Environment, cfg config.ManagerConfig) *AnimationManager {
	if cfg.TargetFPS <= 0 {
		cfg.TargetFPS = config.DefaultTargetFPS
	}
	if cfg.LowPowerRenderEvery < 1 {
		cfg.LowPowerRenderEvery = 1
	}
	if pool == nil {
		pool = particle.NewPool(cfg.PoolSize)
	}
	return &AnimationManager{
		frames:   frames,
		pool:     pool,
		env:      env,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		byID:     make(map[uint64]*AnimationInstance),
		interval: time.Second / time.Duration(cfg.TargetFPS),
	}
}

// Pool 返回调度器使用的粒子池
func (m *AnimationManager) Pool() *particle.Pool {
	return m.pool
}

// AddAnimation 注册实例并在需要时启动共享循环，返回分配的 ID
func (m *AnimationManager) AddAnimation(inst *AnimationInstance) uint64 {
	m.nextID++
	inst.ID = m.nextID
	inst.removed = false
	if inst.rng == nil {
		inst.rng = m.rng
	}

	m.instances = append(m.instances, inst)
	m.byID[inst.ID] = inst
	log.Printf("[AnimationManager] added animation %d (%s, %d particles)", inst.ID, inst.Type, len(inst.Particles))

	m.ensureLoop()
	return inst.ID
}

// RemoveAnimation 归还粒子、销毁渲染容器并注销实例；重复调用无副作用
func (m *AnimationManager) RemoveAnimation(id uint64) bool {
	inst, ok := m.byID[id]
	if !ok {
		return false
	}
	delete(m.byID, id)
	for i, it := range m.instances {
		if it == inst {
			m.instances = append(m.instances[:i], m.instances[i+1:]...)
			break
		}
	}

	inst.removed = true
	m.pool.ReleaseAll(inst.Particles)
	inst.Particles = nil
	if inst.Surface != nil {
		inst.Surface.Destroy()
		inst.Surface = nil
	}

	m.stopLoopIfIdle()
	return true
}

// PauseAnimation 暂停实例；所有实例都暂停时共享循环停止
func (m *AnimationManager) PauseAnimation(id uint64) bool {
	inst, ok := m.byID[id]
	if !ok {
		return false
	}
	inst.Paused = true
	m.stopLoopIfIdle()
	return true
}

// ResumeAnimation 恢复实例，必要时重启共享循环
func (m *AnimationManager) ResumeAnimation(id uint64) bool {
	inst, ok := m.byID[id]
	if !ok {
		return false
	}
	inst.Paused = false
	m.ensureLoop()
	return true
}

// Get 按 ID 查找实例
func (m *AnimationManager) Get(id uint64) (*AnimationInstance, bool) {
	inst, ok := m.byID[id]
	return inst, ok
}

// HasAnimations 是否有已注册实例（包括暂停中的）
func (m *AnimationManager) HasAnimations() bool {
	return len(m.instances) > 0
}

// IsRunning 共享循环是否在运行
func (m *AnimationManager) IsRunning() bool {
	return m.handle != 0 || m.inTick
}

// GetStats 返回诊断信息
func (m *AnimationManager) GetStats() Stats {
	total := 0
	for _, inst := range m.instances {
		total += inst.ActiveCount()
	}
	return Stats{
		ActiveAnimations: len(m.instances),
		FPS:              m.fps,
		IsRunning:        m.IsRunning(),
		TotalParticles:   total,
	}
}

// Shutdown 移除所有实例并取消待处理的帧
func (m *AnimationManager) Shutdown() {
	for len(m.instances) > 0 {
		m.RemoveAnimation(m.instances[0].ID)
	}
	if m.handle != 0 {
		m.frames.CancelFrame(m.handle)
		m.handle = 0
	}
	log.Printf("[AnimationManager] shut down")
}

func (m *AnimationManager) hasUnpaused() bool {
	for _, inst := range m.instances {
		if !inst.Paused {
			return true
		}
	}
	return false
}

func (m *AnimationManager) ensureLoop() {
	if m.inTick || m.handle != 0 || m.frames == nil || !m.hasUnpaused() {
		return
	}
	m.handle = m.frames.RequestFrame(m.tick)
}

func (m *AnimationManager) stopLoopIfIdle() {
	if m.inTick || m.handle == 0 || m.hasUnpaused() {
		return
	}
	m.frames.CancelFrame(m.handle)
	m.handle = 0
	// 重新启动后第一帧不受帧率上限限制
	m.lastTick = time.Time{}
}

// tick 共享帧回调
func (m *AnimationManager) tick(now time.Time) {
	m.handle = 0
	m.inTick = true
	defer func() {
		m.inTick = false
		if m.hasUnpaused() {
			m.ensureLoop()
		} else {
			m.lastTick = time.Time{}
		}
	}()

	// 帧率上限
	if !m.lastTick.IsZero() && now.Sub(m.lastTick) < m.interval-frameTolerance {
		return
	}
	// 不可见时整帧跳过，恢复后不追帧
	if m.env != nil && !m.env.IsVisible() {
		return
	}
	m.lastTick = now
	m.sampleFPS(now)

	// 阶段 1：物理
	stepped := make([]*AnimationInstance, 0, len(m.instances))
	var faulted []*AnimationInstance
	for _, inst := range m.instances {
		if inst.Paused {
			continue
		}
		if m.guard(inst, "step", func() { inst.step(m.pool) }) {
			stepped = append(stepped, inst)
		} else {
			faulted = append(faulted, inst)
		}
	}

	// 阶段 2：渲染
	lowPower := m.env != nil && m.env.IsConstrained() && m.cfg.LowPowerRenderEvery > 1
	for _, inst := range stepped {
		if inst.removed {
			continue
		}
		if lowPower && inst.Frame%m.cfg.LowPowerRenderEvery != 0 {
			continue
		}
		if !m.guard(inst, "render", func() { m.render(inst) }) {
			faulted = append(faulted, inst)
		}
	}

	// 阶段 3：完成与清理
	for _, inst := range faulted {
		if !inst.removed {
			log.Printf("[AnimationManager] removing faulted animation %d", inst.ID)
			m.finish(inst)
		}
	}
	for _, inst := range stepped {
		if inst.removed || inst.ActiveCount() > 0 {
			continue
		}
		m.finish(inst)
	}
}

func (m *AnimationManager) render(inst *AnimationInstance) {
	if inst.Surface != nil {
		inst.Surface.Render(inst.Sprites())
	}
	if inst.OnUpdate != nil {
		inst.OnUpdate(inst)
	}
}

// finish 移除实例后触发完成回调（回调中可以安全地注册新实例）
func (m *AnimationManager) finish(inst *AnimationInstance) {
	m.RemoveAnimation(inst.ID)
	if inst.OnComplete != nil {
		cb := inst.OnComplete
		inst.OnComplete = nil
		m.guard(inst, "complete", cb)
	}
}

// guard 执行 fn 并恢复 panic，返回是否正常完成
func (m *AnimationManager) guard(inst *AnimationInstance, phase string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[AnimationManager] animation %d (%s) panicked during %s: %v", inst.ID, inst.Type, phase, r)
			ok = false
		}
	}()
	fn()
	return true
}

func (m *AnimationManager) sampleFPS(now time.Time) {
	if m.fpsWindowAt.IsZero() {
		m.fpsWindowAt = now
	}
	m.fpsFrames++
	if elapsed := now.Sub(m.fpsWindowAt); elapsed >= time.Second {
		m.fps = float64(m.fpsFrames) / elapsed.Seconds()
		m.fpsFrames = 0
		m.fpsWindowAt = now
	}
}
