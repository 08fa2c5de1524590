// rewardterm 在终端里演示奖励动画
//
// 使用方法：
//
//	go run ./cmd/rewardterm [flags]
//
// 参数：
//
//	--profiles string  奖励预设 YAML 文件（默认使用内置预设）
//	--constrained      受限模式（粒子减半、低功耗渲染）
//	--log string       日志文件（终端被 tcell 占用，默认不输出日志）
//
// 操作：
//
//	1-9 / 鼠标点击  触发对应预设
//	p              暂停/恢复最后触发的预设（仅 controls 预设）
//	r              重放最后触发的预设
//	m              提示音开关
//	q / Esc        退出
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/game"
	"github.com/decker502/rewardfx/pkg/render/term"
	"github.com/decker502/rewardfx/pkg/systems"
)

var (
	profilesFlag    = flag.String("profiles", "", "Reward profiles YAML file (default: built-in profiles)")
	constrainedFlag = flag.Bool("constrained", false, "Force constrained (low-power) mode")
	logFlag         = flag.String("log", "", "Write logs to this file")
)

// termButton 一个预设按钮
type termButton struct {
	profile config.RewardProfile
	anchor  string
	cell    cellRect
	ctrl    *systems.RewardController
}

// termDemo 终端演示状态
type termDemo struct {
	screen  tcell.Screen
	overlay *term.TerminalOverlay
	engine  *game.Engine
	prefs   *game.PreferencesStore
	chime   *beepChime

	buttons  []*termButton
	selected int
}

func newTermDemo(screen tcell.Screen, profiles *config.RewardProfiles) (*termDemo, error) {
	overlay := term.NewTerminalOverlay(screen)
	engine, err := game.NewEngine(game.EngineConfig{
		Profiles: profiles,
		Env:      systems.FixedEnvironment{Constrained: *constrainedFlag},
		Surfaces: overlay,
	})
	if err != nil {
		return nil, err
	}

	gm, err := game.OpenPreferencesGdata()
	if err != nil {
		log.Printf("[RewardTerm] Warning: %v", err)
	}
	prefs := game.NewPreferencesStore(gm)

	d := &termDemo{
		screen:   screen,
		overlay:  overlay,
		engine:   engine,
		prefs:    prefs,
		chime:    newBeepChime(prefs),
		selected: -1,
	}

	for _, p := range engine.Profiles().Profiles {
		anchor := "term:" + p.Name
		d.buttons = append(d.buttons, &termButton{profile: p, anchor: anchor})
	}
	d.layout()

	for _, b := range d.buttons {
		ctrl, err := engine.NewController(b.anchor, b.profile.Name)
		if err != nil {
			d.close()
			return nil, fmt.Errorf("failed to create controller for profile %q: %w", b.profile.Name, err)
		}
		b.ctrl = ctrl
	}
	return d, nil
}

// layout 按终端尺寸重新排布按钮并更新锚点
func (d *termDemo) layout() {
	w, h := d.screen.Size()
	rects := layoutButtons(w, h, len(d.buttons))
	for i, b := range d.buttons {
		b.cell = rects[i]
		d.engine.Anchors().Set(b.anchor, pixelRect(b.cell, d.overlay.CellWidth, d.overlay.CellHeight))
	}
}

func (d *termDemo) fire(i int) {
	if i < 0 || i >= len(d.buttons) {
		return
	}
	b := d.buttons[i]
	d.selected = i

	idle := b.ctrl.State() == systems.StateIdle
	if c := b.ctrl.Reward(); idle && !c.Resolved() {
		if at, ok := b.profile.AnimationType(); ok {
			d.chime.Play(at)
		}
	}
}

func (d *termDemo) togglePause() {
	if d.selected < 0 {
		return
	}
	ctrl := d.buttons[d.selected].ctrl
	switch ctrl.State() {
	case systems.StateAnimating:
		if ctrl.Pause() {
			d.chime.Blip()
		}
	case systems.StatePaused:
		if ctrl.Resume() {
			d.chime.Blip()
		}
	}
}

func (d *termDemo) replay() {
	if d.selected < 0 {
		return
	}
	b := d.buttons[d.selected]
	// 简单模式的 Replay 不会重新开始，不播放提示音
	if c := b.ctrl.Replay(); b.ctrl.Mode() == systems.ModeControlled && !c.Resolved() {
		if at, ok := b.profile.AnimationType(); ok {
			d.chime.Play(at)
		}
	}
}

// handleInput 处理一个事件，返回 false 表示退出
func (d *termDemo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch r := ev.Rune(); {
		case r == 'q':
			return false
		case r >= '1' && r <= '9':
			d.fire(int(r - '1'))
		case r == 'p':
			d.togglePause()
		case r == 'r':
			d.replay()
		case r == 'm':
			log.Printf("[RewardTerm] Sound enabled: %v", d.prefs.ToggleSound())
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return true
		}
		cx, cy := ev.Position()
		x := (float64(cx) + 0.5) * d.overlay.CellWidth
		y := (float64(cy) + 0.5) * d.overlay.CellHeight
		if name, ok := d.engine.Anchors().HitTest(x, y); ok {
			for i, b := range d.buttons {
				if b.anchor == name {
					d.fire(i)
				}
			}
		}
	case *tcell.EventResize:
		d.screen.Sync()
		d.layout()
	}
	return true
}

func (d *termDemo) draw() {
	d.screen.Clear()

	for i, b := range d.buttons {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
		switch b.ctrl.State() {
		case systems.StateAnimating:
			style = style.Background(tcell.ColorDarkGreen)
		case systems.StatePaused:
			style = style.Background(tcell.ColorOlive)
		}
		if i == d.selected {
			style = style.Bold(true)
		}
		label := fmt.Sprintf(" %d %s", i+1, b.profile.Name)
		if b.profile.Controls {
			label += " *"
		}
		d.drawText(b.cell.X, b.cell.Y, b.cell.W, label, style)
	}

	d.overlay.Draw()

	st := d.engine.Stats()
	sound := "on"
	if !d.prefs.Get().SoundEnabled {
		sound = "off"
	}
	hud := fmt.Sprintf("shared %d  particles %d  pooled %d  sound %s", st.ActiveAnimations, st.TotalParticles, d.engine.Pool().Len(), sound)
	d.drawText(0, 0, len(hud), hud, tcell.StyleDefault.Foreground(tcell.ColorGray))
	help := "1-9/click: reward  p: pause/resume  r: replay  m: sound  q: quit  (* = controls)"
	d.drawText(0, 1, len(help), help, tcell.StyleDefault.Foreground(tcell.ColorGray))

	d.screen.Show()
}

// drawText 写入一行文本，不足 width 时用空格填充
func (d *termDemo) drawText(x, y, width int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		if col >= width {
			break
		}
		d.screen.SetContent(x+col, y, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		d.screen.SetContent(x+col, y, ' ', nil, style)
	}
}

func (d *termDemo) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(d.screen.PollEvent, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			d.engine.Step(now)
			d.draw()
		}
	}
}

// forwardEvents 把 poll 的结果转发到 events，poll 返回 nil 或 done 关闭时退出
func forwardEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (d *termDemo) close() {
	d.engine.Close()
	d.chime.Close()
	if err := d.prefs.Save(); err != nil {
		log.Printf("[RewardTerm] Warning: %v", err)
	}
}

func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

func main() {
	flag.Parse()

	logFile, err := setupLogging(*logFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	var profiles *config.RewardProfiles
	if *profilesFlag != "" {
		profiles, err = config.LoadRewardProfiles(*profilesFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load profiles: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	demo, err := newTermDemo(screen, profiles)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	demo.run()
	demo.close()
	screen.Fini()
}
