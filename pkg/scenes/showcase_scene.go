package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/game"
	"github.com/decker502/rewardfx/pkg/render"
	"github.com/decker502/rewardfx/pkg/systems"
	"github.com/decker502/rewardfx/pkg/types"
	"github.com/decker502/rewardfx/pkg/utils"
)

// pressDuration 按钮按下反馈时长（秒）
const pressDuration = 0.25

var (
	showcaseBackground = color.RGBA{R: 24, G: 26, B: 38, A: 255}
	buttonIdle         = color.RGBA{R: 58, G: 64, B: 92, A: 255}
	buttonAnimating    = color.RGBA{R: 70, G: 130, B: 90, A: 255}
	buttonPaused       = color.RGBA{R: 150, G: 120, B: 50, A: 255}
	buttonSelected     = color.RGBA{R: 240, G: 240, B: 255, A: 255}
)

// profileButton 一个预设对应的触发按钮
type profileButton struct {
	profile config.RewardProfile
	anchor  string
	rect    types.Rect
	ctrl    *systems.RewardController
	press   float64 // 剩余按下反馈时间
}

// ShowcaseScene 预设展示场景
//
// 每个奖励预设一个按钮，点击触发爆发。P/R 作用于最后点击的按钮
// （仅 controls: true 的预设），S 打印调度器统计。
type ShowcaseScene struct {
	engine   *game.Engine
	overlay  *render.EbitenOverlay
	buttons  []*profileButton
	selected int
	chime    Chime
}

// NewShowcaseScene 为引擎中的每个预设创建按钮和控制器
func NewShowcaseScene(engine *game.Engine, overlay *render.EbitenOverlay) (*ShowcaseScene, error) {
	s := &ShowcaseScene{
		engine:   engine,
		overlay:  overlay,
		selected: -1,
	}

	for i, p := range engine.Profiles().Profiles {
		anchor := "profile:" + p.Name
		rect := config.ButtonRect(i)
		engine.Anchors().Set(anchor, rect)

		ctrl, err := engine.NewController(anchor, p.Name)
		if err != nil {
			s.OnExit()
			return nil, fmt.Errorf("failed to create controller for profile %q: %w", p.Name, err)
		}
		s.buttons = append(s.buttons, &profileButton{
			profile: p,
			anchor:  anchor,
			rect:    rect,
			ctrl:    ctrl,
		})
	}

	log.Printf("[ShowcaseScene] %d profile buttons created", len(s.buttons))
	return s, nil
}

// SetChime 设置提示音，nil 表示静音
func (s *ShowcaseScene) SetChime(c Chime) {
	s.chime = c
}

// Update 处理输入
func (s *ShowcaseScene) Update(deltaTime float64) {
	for _, b := range s.buttons {
		if b.press > 0 {
			b.press -= deltaTime
		}
	}

	if pressed, x, y := IsPointerJustPressed(); pressed {
		if i := s.hitTest(float64(x), float64(y)); i >= 0 {
			s.fire(i)
		}
	}

	key, ok := IsAnyKeyJustPressed(
		ebiten.KeyP, ebiten.KeyR, ebiten.KeyS, ebiten.KeySpace,
		ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
		ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	)
	if !ok {
		return
	}
	switch {
	case key == ebiten.KeyP:
		s.togglePause()
	case key == ebiten.KeyR:
		s.replay()
	case key == ebiten.KeyS:
		s.logStats()
	case key == ebiten.KeySpace:
		if s.selected >= 0 {
			s.fire(s.selected)
		}
	case key >= ebiten.KeyDigit1 && key <= ebiten.KeyDigit9:
		s.fire(int(key - ebiten.KeyDigit1))
	}
}

// hitTest 返回包含该点的按钮索引，没有时返回 -1
func (s *ShowcaseScene) hitTest(x, y float64) int {
	for i, b := range s.buttons {
		if b.rect.Contains(x, y) {
			return i
		}
	}
	return -1
}

// fire 触发第 i 个按钮的奖励；爆发进行中时 Reward 不做任何事
func (s *ShowcaseScene) fire(i int) *systems.Completion {
	if i < 0 || i >= len(s.buttons) {
		return nil
	}
	b := s.buttons[i]
	s.selected = i
	b.press = pressDuration

	idle := b.ctrl.State() == systems.StateIdle
	c := b.ctrl.Reward()
	if idle && !c.Resolved() {
		s.playChime(b)
	}
	return c
}

func (s *ShowcaseScene) playChime(b *profileButton) {
	if s.chime == nil {
		return
	}
	if at, ok := b.profile.AnimationType(); ok {
		s.chime.Play(at)
	}
}

func (s *ShowcaseScene) togglePause() bool {
	b := s.selectedButton()
	if b == nil {
		return false
	}
	switch b.ctrl.State() {
	case systems.StateAnimating:
		return b.ctrl.Pause()
	case systems.StatePaused:
		return b.ctrl.Resume()
	}
	return false
}

func (s *ShowcaseScene) replay() *systems.Completion {
	b := s.selectedButton()
	if b == nil {
		return nil
	}
	b.press = pressDuration
	c := b.ctrl.Replay()
	if b.ctrl.Mode() == systems.ModeControlled && !c.Resolved() {
		s.playChime(b)
	}
	return c
}

func (s *ShowcaseScene) selectedButton() *profileButton {
	if s.selected < 0 || s.selected >= len(s.buttons) {
		return nil
	}
	return s.buttons[s.selected]
}

func (s *ShowcaseScene) logStats() {
	st := s.engine.Stats()
	log.Printf("[ShowcaseScene] stats: running=%v active=%d particles=%d fps=%.1f pooled=%d surfaces=%d",
		st.IsRunning, st.ActiveAnimations, st.TotalParticles, st.FPS, s.engine.Pool().Len(), s.overlay.Len())
}

// OnExit 销毁所有按钮的控制器并注销锚点
func (s *ShowcaseScene) OnExit() {
	for _, b := range s.buttons {
		s.engine.Release(b.ctrl)
		s.engine.Anchors().Remove(b.anchor)
	}
	s.buttons = nil
	s.selected = -1
}

// Draw 绘制按钮、粒子和统计信息
func (s *ShowcaseScene) Draw(screen *ebiten.Image) {
	screen.Fill(showcaseBackground)

	for i, b := range s.buttons {
		s.drawButton(screen, i, b)
	}

	s.overlay.Draw(screen)

	st := s.engine.Stats()
	hud := fmt.Sprintf("FPS %.1f  shared animations %d  particles %d  pooled %d",
		ebiten.ActualFPS(), st.ActiveAnimations, st.TotalParticles, s.engine.Pool().Len())
	ebitenutil.DebugPrintAt(screen, hud, 12, 10)
	ebitenutil.DebugPrintAt(screen, "click / 1-9: reward   P: pause/resume   R: replay   S: log stats   M: sound   Tab: viewer   F11: fullscreen", 12, 10+config.HUDLineHeight)
}

func (s *ShowcaseScene) drawButton(screen *ebiten.Image, i int, b *profileButton) {
	fill := buttonIdle
	label := "idle"
	switch b.ctrl.State() {
	case systems.StateAnimating:
		fill, label = buttonAnimating, "animating"
	case systems.StatePaused:
		fill, label = buttonPaused, "paused"
	}

	// 按下时按钮先缩小再回弹
	scale := 1.0
	if b.press > 0 {
		t := 1 - b.press/pressDuration
		scale = utils.Lerp(0.9, 1, utils.EaseOutBack(utils.Clamp01(t)))
	}
	w := b.rect.Width * scale
	h := b.rect.Height * scale
	c := b.rect.Center()
	x, y := float32(c.X-w/2), float32(c.Y-h/2)

	vector.DrawFilledRect(screen, x, y, float32(w), float32(h), fill, true)
	if i == s.selected {
		vector.StrokeRect(screen, x, y, float32(w), float32(h), 2, buttonSelected, true)
	}

	mode := ""
	if b.profile.Controls {
		mode = " [ctl]"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d %s%s", i+1, b.profile.Name, mode), int(x)+10, int(y)+8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s - %s", b.profile.Type, label), int(x)+10, int(y)+8+config.HUDLineHeight)
}
