// Package render 提供奖励动画的 ebiten 渲染容器
//
// 引擎只产出 entities.Sprite（样式 + 视觉描述），EbitenOverlay 把它们画到
// ebiten 屏幕上；终端渲染见 render/term。
package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/rewardfx/pkg/entities"
	"github.com/decker502/rewardfx/pkg/render/palette"
	"github.com/decker502/rewardfx/pkg/systems"
)

// EbitenOverlay 在 ebiten 屏幕上叠加绘制所有奖励动画
//
// 实现 systems.SurfaceFactory。每个爆发对应一个 surface，调度器在渲染帧调用
// surface.Render 保存最新的 sprite 列表，宿主在 Game.Draw 中调用 Overlay.Draw。
type EbitenOverlay struct {
	surfaces []*ebitenSurface // 创建顺序，后创建的画在上层
	pixel    *ebiten.Image
}

// NewEbitenOverlay 创建 ebiten 叠加层
func NewEbitenOverlay() *EbitenOverlay {
	return &EbitenOverlay{}
}

// CreateSurface 创建一个爆发的渲染容器
func (o *EbitenOverlay) CreateSurface(id string) systems.Surface {
	s := &ebitenSurface{id: id, overlay: o}
	o.surfaces = append(o.surfaces, s)
	return s
}

// Len 返回当前存活的渲染容器数量
func (o *EbitenOverlay) Len() int {
	return len(o.surfaces)
}

// SpriteCount 返回所有容器中待绘制的 sprite 总数
func (o *EbitenOverlay) SpriteCount() int {
	n := 0
	for _, s := range o.surfaces {
		n += len(s.sprites)
	}
	return n
}

func (o *EbitenOverlay) remove(s *ebitenSurface) {
	for i, v := range o.surfaces {
		if v == s {
			o.surfaces = append(o.surfaces[:i], o.surfaces[i+1:]...)
			return
		}
	}
}

// Draw 绘制所有容器的最新 sprite
func (o *EbitenOverlay) Draw(screen *ebiten.Image) {
	if o.pixel == nil {
		o.pixel = ebiten.NewImage(1, 1)
		o.pixel.Fill(color.White)
	}
	for _, s := range o.surfaces {
		sprites := s.sprites
		// 发光的粒子画在最上层
		sort.SliceStable(sprites, func(i, j int) bool {
			return !sprites[i].Visual.Glow && sprites[j].Visual.Glow
		})
		for _, sp := range sprites {
			o.drawSprite(screen, sp)
		}
	}
}

func (o *EbitenOverlay) drawSprite(screen *ebiten.Image, sp entities.Sprite) {
	if sp.Style.Opacity <= 0 {
		return
	}
	v := sp.Visual
	c, _ := palette.ParseColor(v.Color)
	clr := palette.RGBA(c, sp.Style.Opacity)

	w := v.Width * scaleOr1(v.ScaleX)
	h := v.Height * scaleOr1(v.ScaleY)
	x, y := float32(sp.Style.X), float32(sp.Style.Y)

	switch v.Shape {
	case entities.ShapeCircle:
		r := float32(math.Max(math.Abs(w), math.Abs(h)) / 2)
		if v.Glow {
			vector.DrawFilledCircle(screen, x, y, r*1.8, palette.RGBA(c, sp.Style.Opacity*0.25), true)
		}
		vector.DrawFilledCircle(screen, x, y, r, clr, true)

	case entities.ShapeRing:
		r := float32(math.Abs(w) / 2)
		vector.StrokeCircle(screen, x, y, r, 1.5, clr, true)

	case entities.ShapeStar:
		// 两个交叉的细长矩形组成四角星
		o.drawQuad(screen, sp.Style.X, sp.Style.Y, w, h*0.3, sp.Style.Rotation, clr)
		o.drawQuad(screen, sp.Style.X, sp.Style.Y, w*0.3, h, sp.Style.Rotation, clr)

	case entities.ShapeHeart:
		r := float32(math.Abs(w) / 4)
		vector.DrawFilledCircle(screen, x-r, y-r/2, r, clr, true)
		vector.DrawFilledCircle(screen, x+r, y-r/2, r, clr, true)
		o.drawQuad(screen, sp.Style.X, sp.Style.Y+float64(r)/2, w*0.5, h*0.5, 45+sp.Style.Rotation, clr)

	case entities.ShapeGlyph:
		ebitenutil.DebugPrintAt(screen, v.Glyph, int(float64(x)-w/4), int(float64(y)-h/4))

	default: // ShapeRect, ShapeEllipse
		o.drawQuad(screen, sp.Style.X, sp.Style.Y, w, h, sp.Style.Rotation, clr)
	}
}

// drawQuad 以 (cx, cy) 为中心绘制旋转矩形（rotation 单位为度）
func (o *EbitenOverlay) drawQuad(screen *ebiten.Image, cx, cy, w, h, rotation float64, clr color.RGBA) {
	if w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(rotation * math.Pi / 180)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(o.pixel, op)
}

func scaleOr1(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}

// ebitenSurface 单个爆发的渲染容器
type ebitenSurface struct {
	id      string
	overlay *EbitenOverlay
	sprites []entities.Sprite
	gone    bool
}

func (s *ebitenSurface) Render(sprites []entities.Sprite) {
	if s.gone {
		return
	}
	s.sprites = sprites
}

func (s *ebitenSurface) Destroy() {
	if s.gone {
		return
	}
	s.gone = true
	s.sprites = nil
	s.overlay.remove(s)
}
