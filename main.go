package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/rewardfx/pkg/app"
	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/embedded"
)

var (
	verboseFlag     = flag.Bool("verbose", false, "Enable verbose logging")
	sceneFlag       = flag.String("scene", app.SceneShowcase, "Start scene: showcase or viewer")
	constrainedFlag = flag.Bool("constrained", false, "Force constrained (low-power) mode")
	noSaveFlag      = flag.Bool("no-save", false, "Do not load or save preferences")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	rewardApp, err := app.NewApp(app.Config{
		Verbose:     *verboseFlag,
		Scene:       *sceneFlag,
		Constrained: *constrainedFlag,
		Ephemeral:   *noSaveFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer rewardApp.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Reward FX")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(rewardApp); err != nil {
		log.Fatal(err)
	}
}
