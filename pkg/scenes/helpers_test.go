package scenes

import (
	"testing"
	"time"

	"github.com/decker502/rewardfx/pkg/game"
	"github.com/decker502/rewardfx/pkg/render"
	"github.com/decker502/rewardfx/pkg/types"
)

// newTestEngine 创建绑定 ebiten 叠加层的引擎（不需要运行游戏循环）
func newTestEngine(t *testing.T) (*game.Engine, *render.EbitenOverlay) {
	t.Helper()
	overlay := render.NewEbitenOverlay()
	engine, err := game.NewEngine(game.EngineConfig{Surfaces: overlay, Seed: 7})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	t.Cleanup(engine.Close)
	return engine, overlay
}

// runFrames 以 17ms 间隔推进 n 帧
func runFrames(engine *game.Engine, start time.Time, n int) time.Time {
	now := start
	for i := 0; i < n; i++ {
		now = now.Add(17 * time.Millisecond)
		engine.Step(now)
	}
	return now
}

// recordingChime 记录播放过的类型
type recordingChime struct {
	played []types.AnimationType
}

func (c *recordingChime) Play(at types.AnimationType) bool {
	c.played = append(c.played, at)
	return true
}
