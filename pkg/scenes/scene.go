// Package scenes 提供演示程序的场景：预设展示和单类型查看器
package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/rewardfx/pkg/types"
)

// Scene represents a demo scene (profile showcase, particle viewer).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Exiter 是一个可选接口，场景被切换掉时调用 OnExit
//
// 场景在这里销毁自己创建的控制器，避免切换后遗留的爆发继续占用粒子池。
type Exiter interface {
	OnExit()
}

// Chime 在一次新的爆发开始时播放提示音
type Chime interface {
	Play(at types.AnimationType) bool
}
