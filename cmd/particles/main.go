// Package main provides a reward particle viewer for tuning and debugging
// animation types and radial patterns.
//
// Usage:
//
//	go run ./cmd/particles [flags]
//
// Flags:
//
//	--effect <name>       Start with a specific animation type (e.g., --effect=fireworks)
//	--pattern <name>      Start with a radial pattern (circular, cone, random, spiral, vortex, pinwheel)
//	--auto-play           Automatically cycle through types every 3 seconds
//	--constrained         Force constrained (low-power) mode
//	--verbose             Enable verbose logging
//
// Controls:
//
//	Mouse Click       - Spawn a burst at the cursor position
//	Space             - Spawn a burst at screen center
//	Left/Right Arrow  - Switch to previous/next animation type
//	[ / ]             - Previous/next radial pattern
//	\                 - Back to the type's default pattern
//	R                 - Clear all active bursts
//	P                 - Toggle auto-play
//	Tab               - Switch to the profile showcase
//	F11               - Toggle fullscreen
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/rewardfx/pkg/app"
	"github.com/decker502/rewardfx/pkg/config"
	"github.com/decker502/rewardfx/pkg/scenes"
)

var (
	effectFlag      = flag.String("effect", "", "Start with specific animation type")
	patternFlag     = flag.String("pattern", "", "Start with specific radial pattern")
	autoPlayFlag    = flag.Bool("auto-play", false, "Auto cycle through types every 3 seconds")
	constrainedFlag = flag.Bool("constrained", false, "Force constrained (low-power) mode")
	verboseFlag     = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	viewer, err := app.NewApp(app.Config{
		Verbose:     *verboseFlag,
		Scene:       app.SceneViewer,
		Constrained: *constrainedFlag,
		// 查看器是开发工具，不覆盖主程序保存的偏好
		Ephemeral: true,
		Viewer: scenes.ViewerOptions{
			Effect:   *effectFlag,
			Pattern:  *patternFlag,
			AutoPlay: *autoPlayFlag,
		},
	})
	if err != nil {
		log.Fatalf("Failed to start viewer: %v", err)
	}
	defer viewer.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Reward FX - Particle Viewer")

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
