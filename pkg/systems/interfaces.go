package systems

import (
	"github.com/decker502/rewardfx/pkg/entities"
	"github.com/decker502/rewardfx/pkg/types"
)

// AnchorResolver 将触发元素引用解析为当前屏幕矩形
type AnchorResolver interface {
	Resolve(ref string) (types.Rect, bool)
}

// Environment 宿主环境信号
type Environment interface {
	// IsVisible 宿主表面当前是否可见（不可见时整帧跳过）
	IsVisible() bool
	// IsConstrained 是否为受限环境（移动端 / 低功耗）
	IsConstrained() bool
}

// FixedEnvironment 固定取值的环境，用于终端演示与测试
type FixedEnvironment struct {
	Hidden      bool
	Constrained bool
}

func (e FixedEnvironment) IsVisible() bool     { return !e.Hidden }
func (e FixedEnvironment) IsConstrained() bool { return e.Constrained }

// Surface 一次爆发的渲染容器
type Surface interface {
	Render(sprites []entities.Sprite)
	Destroy()
}

// SurfaceFactory 创建渲染容器
type SurfaceFactory interface {
	CreateSurface(id string) Surface
}
