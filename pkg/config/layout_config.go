package config

import "github.com/decker502/rewardfx/pkg/types"

// 演示程序布局常量
// 所有坐标均为逻辑屏幕坐标（Layout 返回的尺寸），与实际窗口大小无关
const (
	// WindowWidth 逻辑屏幕宽度
	WindowWidth = 960

	// WindowHeight 逻辑屏幕高度
	WindowHeight = 640

	// ButtonColumns 预设按钮网格列数
	ButtonColumns = 4

	// ButtonWidth 预设按钮宽度
	ButtonWidth = 180.0

	// ButtonHeight 预设按钮高度
	ButtonHeight = 48.0

	// ButtonGap 按钮之间的间距
	ButtonGap = 24.0

	// ButtonGridTop 按钮网格顶部的Y坐标
	// 上方留出空间给向上飞的粒子（烟花、气球）
	ButtonGridTop = 300.0

	// HUDLineHeight 调试信息行高（DebugPrint 字体约 16px）
	HUDLineHeight = 16
)

// ButtonGridWidth 返回按钮网格的总宽度
func ButtonGridWidth() float64 {
	return ButtonColumns*ButtonWidth + (ButtonColumns-1)*ButtonGap
}

// ButtonRect 返回第 i 个预设按钮的屏幕矩形
//
// 按钮按行优先排列，整体水平居中：
//
//	col = i % ButtonColumns, row = i / ButtonColumns
//	x = (WindowWidth - gridWidth)/2 + col*(ButtonWidth+ButtonGap)
//	y = ButtonGridTop + row*(ButtonHeight+ButtonGap)
func ButtonRect(i int) types.Rect {
	if i < 0 {
		i = 0
	}
	col := i % ButtonColumns
	row := i / ButtonColumns
	startX := (WindowWidth - ButtonGridWidth()) / 2
	return types.Rect{
		X:      startX + float64(col)*(ButtonWidth+ButtonGap),
		Y:      ButtonGridTop + float64(row)*(ButtonHeight+ButtonGap),
		Width:  ButtonWidth,
		Height: ButtonHeight,
	}
}
