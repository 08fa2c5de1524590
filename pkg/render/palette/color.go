// Package palette 解析和混合粒子颜色，供 ebiten 与终端两种渲染共用
package palette

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/rewardfx/internal/particle"
)

var fallbackColor, _ = colorful.Hex(particle.DefaultColor)

// ParseColor 解析 #rgb / #rrggbb 颜色，失败时返回默认金色与 false
func ParseColor(hex string) (colorful.Color, bool) {
	hex = strings.TrimSpace(hex)
	if len(hex) == 4 && hex[0] == '#' {
		// #rgb → #rrggbb
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallbackColor, false
	}
	return c, true
}

// RGBA 将颜色与透明度转换为预乘 alpha 的 color.RGBA（ebiten 使用）
func RGBA(c colorful.Color, opacity float64) color.RGBA {
	opacity = clamp01(opacity)
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{
		R: uint8(float64(r) * opacity),
		G: uint8(float64(g) * opacity),
		B: uint8(float64(b) * opacity),
		A: uint8(255 * opacity),
	}
}

// Fade 按透明度把颜色向背景色混合（终端没有 alpha 通道）
func Fade(c, background colorful.Color, opacity float64) colorful.Color {
	return c.BlendRgb(background, 1-clamp01(opacity)).Clamped()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
