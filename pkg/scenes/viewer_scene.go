package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/game"
	"github.com/decker502/rewardfx/pkg/render"
	"github.com/decker502/rewardfx/pkg/systems"
	"github.com/decker502/rewardfx/pkg/types"
)

// autoPlayInterval 自动播放时切换类型的间隔（秒）
const autoPlayInterval = 3.0

var viewerBackground = color.RGBA{R: 12, G: 14, B: 22, A: 255}

// viewerPatterns 查看器可切换的径向模式；索引 -1 表示使用类型默认值
var viewerPatterns = []types.RadialPattern{
	types.RadialCircular,
	types.RadialCone,
	types.RadialRandom,
	types.RadialSpiral,
	types.RadialVortex,
	types.RadialPinwheel,
}

// ViewerOptions 查看器启动参数
type ViewerOptions struct {
	// Effect 初始动画类型（如 "fireworks"），为空时从第一个开始
	Effect string
	// Pattern 初始径向模式，为空时使用类型默认值
	Pattern string
	// AutoPlay 每 3 秒自动切换到下一个类型并在屏幕中心触发
	AutoPlay bool
}

// liveBurst 查看器触发的一次爆发
type liveBurst struct {
	anchor string
	ctrl   *systems.RewardController
}

// ViewerScene 单类型粒子查看器
//
// 每次点击在光标处创建一个临时锚点和 ModeSimple 控制器，
// 爆发结束后控制器和锚点被回收，因此可以同时存在多个爆发。
type ViewerScene struct {
	engine  *game.Engine
	overlay *render.EbitenOverlay

	kinds   []types.AnimationType
	index   int
	pattern int

	autoPlay  bool
	autoTimer float64

	live    []liveBurst
	spawned int
	chime   Chime
}

// NewViewerScene 创建查看器
func NewViewerScene(engine *game.Engine, overlay *render.EbitenOverlay, opts ViewerOptions) *ViewerScene {
	v := &ViewerScene{
		engine:   engine,
		overlay:  overlay,
		kinds:    engine.Registry().Types(),
		pattern:  -1,
		autoPlay: opts.AutoPlay,
	}

	if opts.Effect != "" {
		if at, ok := types.ParseAnimationType(opts.Effect); ok {
			for i, t := range v.kinds {
				if t == at {
					v.index = i
				}
			}
		} else {
			log.Printf("[ViewerScene] Warning: unknown effect %q, starting with %s", opts.Effect, v.current())
		}
	}
	if opts.Pattern != "" {
		if p, ok := types.ParseRadialPattern(opts.Pattern); ok {
			for i, vp := range viewerPatterns {
				if vp == p {
					v.pattern = i
				}
			}
		} else {
			log.Printf("[ViewerScene] Warning: unknown radial pattern %q, using type default", opts.Pattern)
		}
	}
	return v
}

// SetChime 设置提示音，nil 表示静音
func (v *ViewerScene) SetChime(c Chime) {
	v.chime = c
}

// Selection 返回当前类型和径向模式名称；使用类型默认值时模式为空
func (v *ViewerScene) Selection() (effect, pattern string) {
	if v.pattern >= 0 {
		pattern = viewerPatterns[v.pattern].String()
	}
	return v.current().String(), pattern
}

// Update 回收已结束的爆发并处理输入
func (v *ViewerScene) Update(deltaTime float64) {
	v.reap()

	if v.autoPlay {
		v.autoTimer += deltaTime
		if v.autoTimer >= autoPlayInterval {
			v.autoTimer = 0
			v.next(1)
			v.spawnCenter()
		}
	}

	if pressed, x, y := IsPointerJustPressed(); pressed {
		v.spawn(float64(x), float64(y))
	}

	key, ok := IsAnyKeyJustPressed(
		ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeySpace,
		ebiten.KeyBracketLeft, ebiten.KeyBracketRight, ebiten.KeyBackslash,
		ebiten.KeyR, ebiten.KeyP,
	)
	if !ok {
		return
	}
	switch key {
	case ebiten.KeyArrowLeft:
		v.next(-1)
	case ebiten.KeyArrowRight:
		v.next(1)
	case ebiten.KeySpace:
		v.spawnCenter()
	case ebiten.KeyBracketLeft:
		v.cyclePattern(-1)
	case ebiten.KeyBracketRight:
		v.cyclePattern(1)
	case ebiten.KeyBackslash:
		v.pattern = -1
	case ebiten.KeyR:
		v.clear()
	case ebiten.KeyP:
		v.autoPlay = !v.autoPlay
		v.autoTimer = 0
	}
}

func (v *ViewerScene) current() types.AnimationType {
	if len(v.kinds) == 0 {
		return types.AnimationConfetti
	}
	return v.kinds[v.index]
}

// patternName 当前径向模式名称，"default" 表示使用类型默认值
func (v *ViewerScene) patternName() string {
	if v.pattern < 0 {
		return "default"
	}
	return viewerPatterns[v.pattern].String()
}

func (v *ViewerScene) next(step int) {
	if len(v.kinds) == 0 {
		return
	}
	v.index = (v.index + step + len(v.kinds)) % len(v.kinds)
}

// cyclePattern 在 default 和各个径向模式之间循环
func (v *ViewerScene) cyclePattern(step int) {
	n := len(viewerPatterns) + 1
	v.pattern = (v.pattern+1+step+n)%n - 1
}

func (v *ViewerScene) options() config.RewardOptions {
	if v.pattern < 0 {
		return config.RewardOptions{}
	}
	return config.RewardOptions{
		Radial: &config.RadialOptions{
			Enabled: config.Bool(true),
			Pattern: viewerPatterns[v.pattern].String(),
		},
	}
}

func (v *ViewerScene) spawnCenter() {
	v.spawn(config.WindowWidth/2, config.WindowHeight/2)
}

// spawn 在 (x, y) 触发当前类型的一次爆发
func (v *ViewerScene) spawn(x, y float64) bool {
	v.spawned++
	anchor := fmt.Sprintf("viewer:%d", v.spawned)
	v.engine.Anchors().Set(anchor, types.Rect{X: x - 1, Y: y - 1, Width: 2, Height: 2})

	ctrl, err := v.engine.NewControllerFor(anchor, v.current(), v.options(), systems.ModeSimple)
	if err != nil {
		log.Printf("[ViewerScene] Error: %v", err)
		v.engine.Anchors().Remove(anchor)
		return false
	}
	if c := ctrl.Reward(); !c.Resolved() && v.chime != nil {
		v.chime.Play(v.current())
	}
	v.live = append(v.live, liveBurst{anchor: anchor, ctrl: ctrl})
	return true
}

// reap 回收已经结束的爆发
func (v *ViewerScene) reap() {
	kept := v.live[:0]
	for _, b := range v.live {
		if b.ctrl.IsAnimating() {
			kept = append(kept, b)
			continue
		}
		v.release(b)
	}
	v.live = kept
}

// clear 立即拆除所有爆发
func (v *ViewerScene) clear() {
	for _, b := range v.live {
		v.release(b)
	}
	v.live = nil
}

func (v *ViewerScene) release(b liveBurst) {
	v.engine.Release(b.ctrl)
	v.engine.Anchors().Remove(b.anchor)
}

// OnExit 拆除所有爆发
func (v *ViewerScene) OnExit() {
	v.clear()
}

// Draw 绘制粒子和当前设置
func (v *ViewerScene) Draw(screen *ebiten.Image) {
	screen.Fill(viewerBackground)
	v.overlay.Draw(screen)

	auto := ""
	if v.autoPlay {
		auto = "  [auto]"
	}
	lines := []string{
		fmt.Sprintf("type: %s (%d/%d)   radial: %s%s", v.current(), v.index+1, len(v.kinds), v.patternName(), auto),
		fmt.Sprintf("bursts %d   surfaces %d   sprites %d   pooled %d   FPS %.1f",
			len(v.live), v.overlay.Len(), v.overlay.SpriteCount(), v.engine.Pool().Len(), ebiten.ActualFPS()),
		"click/Space: burst   Left/Right: type   [ ]: radial   \\: default   R: clear   P: auto-play   M: sound   Tab: showcase",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 12, 10+i*config.HUDLineHeight)
	}
}
