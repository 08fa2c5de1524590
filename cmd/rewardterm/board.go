package main

import (
	"github.com/decker502/rewardfx/pkg/types"
)

// 按钮布局（字符格）
const (
	buttonCells   = 22 // 按钮宽度
	buttonColumns = 4
	buttonRows    = 2 // 每个按钮占用的行数
	boardMargin   = 2
)

// cellRect 字符格矩形
type cellRect struct {
	X, Y, W, H int
}

// layoutButtons 在终端底部排布 n 个按钮
func layoutButtons(width, height, n int) []cellRect {
	cols := buttonColumns
	if fit := (width - boardMargin) / buttonCells; fit < cols {
		cols = fit
	}
	if cols < 1 {
		cols = 1
	}
	rows := (n + cols - 1) / cols
	top := height - boardMargin - rows*buttonRows
	if top < 1 {
		top = 1
	}

	rects := make([]cellRect, n)
	for i := range rects {
		rects[i] = cellRect{
			X: boardMargin + (i%cols)*buttonCells,
			Y: top + (i/cols)*buttonRows,
			W: buttonCells - 2,
			H: 1,
		}
	}
	return rects
}

// pixelRect 将字符格矩形转换为锚点使用的像素矩形
func pixelRect(r cellRect, cellWidth, cellHeight float64) types.Rect {
	return types.Rect{
		X:      float64(r.X) * cellWidth,
		Y:      float64(r.Y) * cellHeight,
		Width:  float64(r.W) * cellWidth,
		Height: float64(r.H) * cellHeight,
	}
}
