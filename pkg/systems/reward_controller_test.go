package systems

import (
	"context"
	"errors"
	"testing"

	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/types"
)

func countOptions() config.RewardOptions {
	return config.RewardOptions{
		ParticleCount: config.Int(25),
		Lifetime:      config.Float(150),
	}
}

// TestRewardController_SimpleModeAtMostOne 测试简单模式下重复触发为空操作
func TestRewardController_SimpleModeAtMostOne(t *testing.T) {
	h := newHarness()
	rc := NewRewardController(h.deps(), "btn", types.AnimationConfetti, countOptions(), ModeSimple)

	first := rc.Reward()
	created := h.pool.Created()
	second := rc.Reward()

	if first != second {
		t.Error("Second reward while animating must return the in-flight completion")
	}
	if h.pool.Created() != created {
		t.Errorf("Second reward must not create particles: created %d -> %d", created, h.pool.Created())
	}
	if len(h.surfaces.surfaces) != 1 {
		t.Errorf("Expected one surface, got %d", len(h.surfaces.surfaces))
	}
	if h.manager.HasAnimations() {
		t.Error("Simple mode must not register with the shared manager")
	}
	if !rc.IsAnimating() {
		t.Fatal("Expected animating state")
	}

	h.ticker.run(125)

	if !first.Resolved() {
		t.Error("Expected completion after 125 frames")
	}
	if rc.State() != StateIdle {
		t.Errorf("Expected idle after completion, got %s", rc.State())
	}

	// 完成后可以再次触发
	third := rc.Reward()
	if third == first || third.Resolved() {
		t.Error("Expected a fresh in-flight completion")
	}
}

func TestRewardController_MissingAnchor(t *testing.T) {
	h := newHarness()
	rc := NewRewardController(h.deps(), "gone", types.AnimationSparkles, countOptions(), ModeControlled)

	c := rc.Reward()

	if !c.Resolved() {
		t.Error("Missing anchor must resolve immediately")
	}
	if h.pool.Created() != 0 {
		t.Errorf("Expected no particles, created = %d", h.pool.Created())
	}
	if len(h.surfaces.surfaces) != 0 {
		t.Error("Expected no surface")
	}
	if rc.IsAnimating() {
		t.Error("Controller must stay idle")
	}
}

func TestRewardController_UnknownType(t *testing.T) {
	h := newHarness()
	h.registry.Unregister(types.AnimationCoins)
	other := NewRewardController(h.deps(), "btn", types.AnimationStars, countOptions(), ModeControlled)
	other.Reward()

	rc := NewRewardController(h.deps(), "btn", types.AnimationCoins, countOptions(), ModeControlled)
	c := rc.Reward()

	if !c.Resolved() {
		t.Error("Unknown type must resolve immediately")
	}
	if rc.IsAnimating() {
		t.Error("Unknown type must leave the controller idle")
	}
	if !other.IsAnimating() || h.manager.GetStats().ActiveAnimations != 1 {
		t.Error("Other instances must be unaffected")
	}
}

// TestRewardController_OriginAtTriggerTime 测试起点在触发时从锚点计算
func TestRewardController_OriginAtTriggerTime(t *testing.T) {
	h := newHarness()
	opts := countOptions()
	opts.Physics = &config.PhysicsOptions{Gravity: config.Float(0)}
	rc := NewRewardController(h.deps(), "btn", types.AnimationSparkles, opts, ModeControlled)

	// 注册后元素移动
	h.anchors["btn"] = types.Rect{X: 300, Y: 50, Width: 100, Height: 40}
	rc.Reward()

	inst, ok := h.manager.Get(rc.InstanceID())
	if !ok {
		t.Fatal("Expected registered instance")
	}
	if inst.Origin != (types.Point{X: 350, Y: 70}) {
		t.Errorf("Expected origin at the moved anchor center, got %+v", inst.Origin)
	}
	for _, p := range inst.Particles {
		if p.X != 350 || p.Y != 70 {
			t.Fatalf("Expected particles to spawn at (350, 70), got (%v, %v)", p.X, p.Y)
		}
	}
}

func TestRewardController_ConstrainedEnvironment(t *testing.T) {
	h := newHarness()
	h.env.Constrained = true
	opts := config.RewardOptions{ParticleCount: config.Int(40)}
	rc := NewRewardController(h.deps(), "btn", types.AnimationConfetti, opts, ModeControlled)

	rc.Reward()
	inst, _ := h.manager.Get(rc.InstanceID())

	if got := len(inst.Particles); got != 20 {
		t.Errorf("Expected 40 × 0.5 = 20 particles, got %d", got)
	}
	if got := inst.Config().ElementSize; got != 8 {
		t.Errorf("Expected size 10 × 0.8 = 8, got %v", got)
	}
	if got := inst.Config().Lifetime; got != 120 {
		t.Errorf("Expected lifetime 150 × 0.8 = 120, got %v", got)
	}
}

// TestRewardController_PauseResume 测试受控模式的暂停与恢复
func TestRewardController_PauseResume(t *testing.T) {
	h := newHarness()
	rc := NewRewardController(h.deps(), "btn", types.AnimationHearts, countOptions(), ModeControlled)
	c := rc.Reward()

	h.ticker.run(20)
	if !rc.Pause() {
		t.Fatal("Expected Pause to succeed")
	}
	if rc.Pause() {
		t.Error("Pausing twice must report false")
	}
	if rc.State() != StatePaused {
		t.Errorf("Expected paused, got %s", rc.State())
	}

	h.ticker.run(200)
	if c.Resolved() {
		t.Fatal("Paused burst must not complete")
	}

	if !rc.Resume() {
		t.Fatal("Expected Resume to succeed")
	}
	h.ticker.run(105)
	if !c.Resolved() {
		t.Error("Expected completion 125 active frames after trigger")
	}
	if rc.State() != StateIdle {
		t.Errorf("Expected idle, got %s", rc.State())
	}
}

func TestRewardController_SimpleModeHasNoControls(t *testing.T) {
	h := newHarness()
	rc := NewRewardController(h.deps(), "btn", types.AnimationStars, countOptions(), ModeSimple)
	c := rc.Reward()

	if rc.Pause() || rc.Resume() {
		t.Error("Simple mode must refuse pause/resume")
	}
	if rc.Replay() != c {
		t.Error("Simple mode Replay must return the in-flight completion")
	}
	if h.pool.Created() != 25 {
		t.Errorf("Replay in simple mode must not spawn, created = %d", h.pool.Created())
	}
}

// TestRewardController_Replay 测试重播取消旧的完成信号并立即重新开始
func TestRewardController_Replay(t *testing.T) {
	h := newHarness()
	rc := NewRewardController(h.deps(), "btn", types.AnimationConfetti, countOptions(), ModeControlled)

	old := rc.Reward()
	oldID := rc.InstanceID()
	h.ticker.run(30)

	fresh := rc.Replay()

	if fresh == old {
		t.Fatal("Replay must return a new completion")
	}
	if err := old.Wait(context.Background()); !errors.Is(err, ErrCanceled) {
		t.Errorf("Old completion must be canceled, got %v", err)
	}
	if old.Resolved() {
		t.Error("Old completion must never resolve")
	}
	if _, ok := h.manager.Get(oldID); ok {
		t.Error("Old instance must be removed")
	}
	if h.surfaces.surfaces[0].destroyed != 1 {
		t.Error("Old surface must be destroyed")
	}
	if h.manager.GetStats().ActiveAnimations != 1 {
		t.Errorf("Expected exactly one instance, got %d", h.manager.GetStats().ActiveAnimations)
	}

	h.ticker.run(125)
	if !fresh.Resolved() {
		t.Error("Replayed burst must complete")
	}
	if old.Resolved() {
		t.Error("Old completion must stay unresolved")
	}
}

func TestRewardController_ReplayWhilePaused(t *testing.T) {
	h := newHarness()
	rc := NewRewardController(h.deps(), "btn", types.AnimationBubbles, countOptions(), ModeControlled)
	rc.Reward()
	h.ticker.run(5)
	rc.Pause()

	rc.Replay()

	if rc.State() != StateAnimating {
		t.Errorf("Expected animating after replay, got %s", rc.State())
	}
	if !h.manager.IsRunning() {
		t.Error("Replay must restart the shared loop")
	}
}

// TestRewardController_Destroy 测试任意状态下销毁都是安全的
func TestRewardController_Destroy(t *testing.T) {
	tests := []struct {
		name  string
		setup func(rc *RewardController, h *testHarness)
	}{
		{"空闲", func(rc *RewardController, h *testHarness) {}},
		{"动画中", func(rc *RewardController, h *testHarness) { rc.Reward(); h.ticker.run(3) }},
		{"暂停", func(rc *RewardController, h *testHarness) { rc.Reward(); h.ticker.run(3); rc.Pause() }},
	}

	for _, tt := range tests {
		for _, mode := range []Mode{ModeSimple, ModeControlled} {
			t.Run(tt.name+"/"+mode.String(), func(t *testing.T) {
				h := newHarness()
				rc := NewRewardController(h.deps(), "btn", types.AnimationConfetti, countOptions(), mode)
				tt.setup(rc, h)

				rc.Destroy()
				rc.Destroy()

				if rc.IsAnimating() {
					t.Error("Expected idle after Destroy")
				}
				if h.queue.Pending() != 0 {
					t.Errorf("Expected no pending frame work, got %d", h.queue.Pending())
				}
				for _, s := range h.surfaces.surfaces {
					if s.destroyed != 1 {
						t.Errorf("Expected surface %s destroyed once, got %d", s.id, s.destroyed)
					}
				}
				if !rc.Reward().Resolved() {
					t.Error("Reward after Destroy must resolve immediately")
				}
			})
		}
	}
}

func TestRewardController_RadialOverride(t *testing.T) {
	h := newHarness()
	opts := countOptions()
	opts.Radial = &config.RadialOptions{Enabled: config.Bool(true), Pattern: "vortex"}
	rc := NewRewardController(h.deps(), "btn", types.AnimationSparkles, opts, ModeControlled)

	c := rc.Reward()
	inst, _ := h.manager.Get(rc.InstanceID())
	if !inst.Radial.Enabled || inst.Radial.Pattern != types.RadialVortex {
		t.Fatalf("Expected vortex radial config, got %+v", inst.Radial)
	}

	h.ticker.run(125)
	if !c.Resolved() {
		t.Error("Radial burst must still complete on schedule")
	}
}
