package entities

import (
	"fmt"
	"log"

	"github.com/decker502/rewardfx/pkg/types"
)

// Registry 动画类型 → 能力对 查找表
//
// 表以 types.AnimationType 为下标，在启动时一次性填满；
// NewRegistry 会为每一个枚举值注册内置实现。
type Registry struct {
	caps [types.NumAnimationTypes]Capability
	set  [types.NumAnimationTypes]bool
}

// builtins 内置动画类型表，新增枚举值时必须同步补充
var builtins = [types.NumAnimationTypes]func() Capability{
	types.AnimationConfetti:  confettiCapability,
	types.AnimationSparkles:  sparklesCapability,
	types.AnimationFireworks: fireworksCapability,
	types.AnimationHearts:    heartsCapability,
	types.AnimationStars:     starsCapability,
	types.AnimationEmoji:     emojiCapability,
	types.AnimationSnow:      snowCapability,
	types.AnimationLeaves:    leavesCapability,
	types.AnimationBubbles:   bubblesCapability,
	types.AnimationCoins:     coinsCapability,
	types.AnimationBalloons:  balloonsCapability,
	types.AnimationGalaxy:    galaxyCapability,
}

// NewRegistry 创建包含全部内置动画类型的注册表
func NewRegistry() *Registry {
	r := &Registry{}
	for i, build := range builtins {
		if build == nil {
			log.Printf("[Registry] Warning: no built-in capability for %s", types.AnimationType(i))
			continue
		}
		r.caps[i] = build()
		r.set[i] = true
	}
	return r
}

// Lookup 返回动画类型对应的能力对
func (r *Registry) Lookup(t types.AnimationType) (Capability, bool) {
	if r == nil || !t.Valid() || !r.set[t] {
		return Capability{}, false
	}
	return r.caps[t], true
}

// LookupName 按名称查找（大小写不敏感）
func (r *Registry) LookupName(name string) (types.AnimationType, Capability, bool) {
	t, ok := types.ParseAnimationType(name)
	if !ok {
		return t, Capability{}, false
	}
	c, ok := r.Lookup(t)
	return t, c, ok
}

// Register 替换某个类型的实现（测试或宿主自定义外观时使用）
func (r *Registry) Register(t types.AnimationType, c Capability) error {
	if !t.Valid() {
		return fmt.Errorf("invalid animation type %d", int(t))
	}
	if c.Create == nil || c.Render == nil {
		return fmt.Errorf("capability for %s must provide Create and Render", t)
	}
	r.caps[t] = c
	r.set[t] = true
	return nil
}

// Unregister 移除某个类型，之后对它的触发会被记录并跳过
func (r *Registry) Unregister(t types.AnimationType) {
	if !t.Valid() {
		return
	}
	r.caps[t] = Capability{}
	r.set[t] = false
}

// Types 返回已注册的类型（按枚举顺序）
func (r *Registry) Types() []types.AnimationType {
	out := make([]types.AnimationType, 0, len(r.set))
	for i, ok := range r.set {
		if ok {
			out = append(out, types.AnimationType(i))
		}
	}
	return out
}
