// Package app 提供演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/game"
	"github.com/decker502/rewardfx/pkg/render"
	"github.com/decker502/rewardfx/pkg/scenes"
)

// 场景名称
const (
	SceneShowcase = "showcase"
	SceneViewer   = "viewer"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Scene 启动场景（SceneShowcase 或 SceneViewer），为空时为 SceneShowcase
	Scene string
	// Viewer 查看器场景参数
	Viewer scenes.ViewerOptions
	// Constrained 强制受限模式（粒子减半、低功耗渲染）
	Constrained bool
	// Ephemeral 不读写持久化偏好
	Ephemeral bool
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	engine       *game.Engine
	overlay      *render.EbitenOverlay
	sceneManager *scenes.SceneManager
	viewerOpts   scenes.ViewerOptions
	viewer       *scenes.ViewerScene // 最近创建的查看器，用于记录偏好
	prefs        *game.PreferencesStore
	chime        *Chime
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 嵌入数据（embedded.Init）可选：未初始化时使用内置默认配置。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settings, err := LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	prefs := game.NewPreferencesStore(openPreferences(cfg.Ephemeral))
	p := prefs.Get()
	if cfg.Viewer.Effect == "" {
		cfg.Viewer.Effect = p.ViewerEffect
	}
	if cfg.Viewer.Pattern == "" {
		cfg.Viewer.Pattern = p.ViewerPattern
	}
	if p.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	overlay := render.NewEbitenOverlay()
	engine, err := game.NewEngine(game.EngineConfig{
		Manager:  settings.Manager,
		Profiles: settings.Profiles,
		Env:      &EbitenEnvironment{ForceConstrained: cfg.Constrained},
		Surfaces: overlay,
	})
	if err != nil {
		return nil, fmt.Errorf("引擎初始化失败: %w", err)
	}

	a := &App{
		engine:       engine,
		overlay:      overlay,
		sceneManager: scenes.NewSceneManager(),
		viewerOpts:   cfg.Viewer,
		prefs:        prefs,
		chime:        NewChime(prefs),
		verbose:      cfg.Verbose,
	}
	a.sceneManager.SetSceneFactory(a.newScene)

	start := cfg.Scene
	if start == "" {
		start = SceneShowcase
	}
	if !a.sceneManager.Load(start) {
		engine.Close()
		return nil, fmt.Errorf("unknown scene %q", start)
	}

	log.Printf("[App] Started with scene %s (constrained=%v persistent=%v)", start, cfg.Constrained, prefs.Persistent())
	return a, nil
}

// openPreferences 打开偏好存储；失败时返回 nil，偏好只保留在内存中
func openPreferences(ephemeral bool) *gdata.Manager {
	if ephemeral {
		return nil
	}
	m, err := game.OpenPreferencesGdata()
	if err != nil {
		log.Printf("[App] Warning: %v (preferences will not be saved)", err)
		return nil
	}
	return m
}

func (a *App) newScene(name string) scenes.Scene {
	switch name {
	case SceneShowcase:
		s, err := scenes.NewShowcaseScene(a.engine, a.overlay)
		if err != nil {
			log.Printf("[App] Error: %v", err)
			return nil
		}
		s.SetChime(a.chime)
		return s
	case SceneViewer:
		v := scenes.NewViewerScene(a.engine, a.overlay, a.viewerOpts)
		v.SetChime(a.chime)
		a.viewer = v
		return v
	}
	return nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次），动画帧在这里推进
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.prefs.SetFullscreen(ebiten.IsFullscreen())
	}

	// M 切换提示音
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		log.Printf("[App] Sound enabled: %v", a.prefs.ToggleSound())
	}

	// Tab 在展示场景和查看器之间切换
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		next := SceneViewer
		if a.sceneManager.CurrentName() == SceneViewer {
			next = SceneShowcase
			a.rememberViewer()
		}
		a.sceneManager.Load(next)
	}

	a.engine.Step(time.Now())

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// rememberViewer 记录查看器当前的类型和模式，下次打开查看器时沿用
func (a *App) rememberViewer() {
	if a.viewer == nil {
		return
	}
	effect, pattern := a.viewer.Selection()
	a.prefs.SetViewer(effect, pattern)
	a.viewerOpts.Effect, a.viewerOpts.Pattern = effect, pattern
}

// Close 退出当前场景、保存偏好并关闭引擎
func (a *App) Close() {
	if a.sceneManager.CurrentName() == SceneViewer {
		a.rememberViewer()
	}
	a.sceneManager.Close()
	a.engine.Close()
	a.chime.Close()

	if err := a.prefs.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Engine 返回奖励动画引擎
func (a *App) Engine() *game.Engine {
	return a.engine
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
