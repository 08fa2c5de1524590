package systems

import (
	"math/rand"
	"time"

	"github.com/decker502/rewardfx/internal/particle"
	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/entities"
	"github.com/decker502/rewardfx/pkg/types"
)

// recordingSurface 记录渲染调用的测试渲染容器
type recordingSurface struct {
	id        string
	renders   [][]entities.Sprite
	destroyed int
}

func (s *recordingSurface) Render(sprites []entities.Sprite) {
	s.renders = append(s.renders, sprites)
}

func (s *recordingSurface) Destroy() {
	s.destroyed++
}

type recordingFactory struct {
	surfaces []*recordingSurface
}

func (f *recordingFactory) CreateSurface(id string) Surface {
	s := &recordingSurface{id: id}
	f.surfaces = append(f.surfaces, s)
	return s
}

// anchorMap 静态锚点表
type anchorMap map[string]types.Rect

func (a anchorMap) Resolve(ref string) (types.Rect, bool) {
	r, ok := a[ref]
	return r, ok
}

// ticker 以 17ms 间隔推进帧队列（高于 60fps 上限间隔）
type ticker struct {
	q   *FrameQueue
	now time.Time
}

func newTicker(q *FrameQueue) *ticker {
	return &ticker{q: q, now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (tk *ticker) run(n int) {
	for i := 0; i < n; i++ {
		tk.now = tk.now.Add(17 * time.Millisecond)
		tk.q.Step(tk.now)
	}
}

func testCapability() entities.Capability {
	return entities.Capability{
		Create: func(ctx *entities.CreateContext) []*particle.Particle { return nil },
		Render: func(p *particle.Particle) entities.VisualDescription {
			return entities.VisualDescription{Shape: entities.ShapeCircle, Width: p.Size, Height: p.Size}
		},
	}
}

// newTestInstance 创建 n 个简单粒子组成的实例
func newTestInstance(pool *particle.Pool, n int, life float64) *AnimationInstance {
	cfg := &config.RewardConfig{
		ParticleCount: n,
		Lifetime:      life,
		ElementSize:   4,
		Physics:       config.PhysicsConfig{Gravity: 0.35, Friction: 0.98},
	}
	ps := make([]*particle.Particle, 0, n)
	for i := 0; i < n; i++ {
		p := pool.Acquire()
		p.Reset()
		p.Life = life
		p.VX = 1
		p.Size = 4
		p.Config = cfg
		ps = append(ps, p)
	}
	return NewAnimationInstance(types.AnimationConfetti, testCapability(), cfg, ps)
}

type testHarness struct {
	queue    *FrameQueue
	ticker   *ticker
	pool     *particle.Pool
	env      *FixedEnvironment
	manager  *AnimationManager
	surfaces *recordingFactory
	anchors  anchorMap
	registry *entities.Registry
}

func newHarness() *testHarness {
	q := NewFrameQueue()
	pool := particle.NewPool(2000)
	env := &FixedEnvironment{}
	h := &testHarness{
		queue:    q,
		ticker:   newTicker(q),
		pool:     pool,
		env:      env,
		manager:  NewAnimationManager(q, pool, env, config.DefaultManagerConfig()),
		surfaces: &recordingFactory{},
		anchors:  anchorMap{"btn": {X: 100, Y: 100, Width: 40, Height: 20}},
		registry: entities.NewRegistry(),
	}
	return h
}

func (h *testHarness) deps() ControllerDeps {
	return ControllerDeps{
		Manager:  h.manager,
		Frames:   h.queue,
		Pool:     h.pool,
		Registry: h.registry,
		Anchors:  h.anchors,
		Env:      h.env,
		Surfaces: h.surfaces,
		Config:   config.DefaultManagerConfig(),
		Rand:     rand.New(rand.NewSource(7)),
	}
}
