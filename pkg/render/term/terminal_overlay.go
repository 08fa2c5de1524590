// Package term 把奖励动画画到 tcell 终端上
//
// 本包不依赖 ebiten，终端演示只需要它和 palette。
package term

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/rewardfx/pkg/entities"
	"github.com/decker502/rewardfx/pkg/render/palette"
	"github.com/decker502/rewardfx/pkg/systems"
)

// 默认每个终端字符格对应的像素尺寸
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0

	// minTerminalOpacity 低于该透明度的粒子在终端上不绘制
	minTerminalOpacity = 0.05
)

// shapeRunes 没有字形时按形状选择字符
var shapeRunes = map[entities.Shape]rune{
	entities.ShapeRect:    '▪',
	entities.ShapeCircle:  '•',
	entities.ShapeRing:    'o',
	entities.ShapeEllipse: '0',
	entities.ShapeStar:    '*',
	entities.ShapeHeart:   '♥',
	entities.ShapeGlyph:   '?',
}

// TerminalOverlay 把奖励动画画到 tcell 终端上
//
// 粒子坐标按 CellWidth × CellHeight 像素映射到字符格。
type TerminalOverlay struct {
	screen     tcell.Screen
	CellWidth  float64
	CellHeight float64
	Background colorful.Color

	surfaces []*terminalSurface
}

// NewTerminalOverlay 创建终端叠加层
func NewTerminalOverlay(screen tcell.Screen) *TerminalOverlay {
	return &TerminalOverlay{
		screen:     screen,
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		Background: colorful.Color{R: 0, G: 0, B: 0},
	}
}

// CreateSurface 创建一个爆发的渲染容器
func (o *TerminalOverlay) CreateSurface(id string) systems.Surface {
	s := &terminalSurface{id: id, overlay: o}
	o.surfaces = append(o.surfaces, s)
	return s
}

// Len 返回当前存活的渲染容器数量
func (o *TerminalOverlay) Len() int {
	return len(o.surfaces)
}

// ToCell 将像素坐标转换为字符格坐标
func (o *TerminalOverlay) ToCell(x, y float64) (int, int) {
	return int(x / o.CellWidth), int(y / o.CellHeight)
}

// Draw 将所有容器的 sprite 写入屏幕缓冲区（不调用 Show）
func (o *TerminalOverlay) Draw() {
	w, h := o.screen.Size()
	for _, s := range o.surfaces {
		for _, sp := range s.sprites {
			if sp.Style.Opacity < minTerminalOpacity || sp.Style.X < 0 || sp.Style.Y < 0 {
				continue
			}
			cx, cy := o.ToCell(sp.Style.X, sp.Style.Y)
			if cx >= w || cy >= h {
				continue
			}
			o.screen.SetContent(cx, cy, glyphRune(sp.Visual), nil, o.style(sp))
		}
	}
}

func (o *TerminalOverlay) style(sp entities.Sprite) tcell.Style {
	c, _ := palette.ParseColor(sp.Visual.Color)
	r, g, b := palette.Fade(c, o.Background, sp.Style.Opacity).RGB255()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	if sp.Visual.Glow {
		style = style.Bold(true)
	}
	return style
}

func glyphRune(v entities.VisualDescription) rune {
	if v.Glyph != "" {
		if r, _ := utf8.DecodeRuneInString(v.Glyph); r != utf8.RuneError {
			return r
		}
	}
	if r, ok := shapeRunes[v.Shape]; ok {
		return r
	}
	return '*'
}

func (o *TerminalOverlay) remove(s *terminalSurface) {
	for i, v := range o.surfaces {
		if v == s {
			o.surfaces = append(o.surfaces[:i], o.surfaces[i+1:]...)
			return
		}
	}
}

type terminalSurface struct {
	id      string
	overlay *TerminalOverlay
	sprites []entities.Sprite
	gone    bool
}

func (s *terminalSurface) Render(sprites []entities.Sprite) {
	if !s.gone {
		s.sprites = sprites
	}
}

func (s *terminalSurface) Destroy() {
	if s.gone {
		return
	}
	s.gone = true
	s.sprites = nil
	s.overlay.remove(s)
}
