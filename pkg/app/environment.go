package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/rewardfx/pkg/utils"
)

// EbitenEnvironment 从 ebiten 窗口状态读取环境信号
//
// 窗口最小化视为不可见（调度器整帧跳过）；移动端构建、
// REWARDFX_MOBILE_EMULATE=1 或 ForceConstrained 视为受限环境。
type EbitenEnvironment struct {
	ForceConstrained bool
}

// IsVisible 实现 systems.Environment
func (e *EbitenEnvironment) IsVisible() bool {
	return !ebiten.IsWindowMinimized()
}

// IsConstrained 实现 systems.Environment
func (e *EbitenEnvironment) IsConstrained() bool {
	return e.ForceConstrained || utils.IsMobile()
}
