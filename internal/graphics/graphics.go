package graphics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shapes-demo/internal/config"
	"shapes-demo/internal/demo"
	"shapes-demo/internal/logger"
	"shapes-demo/internal/resource"
)

// Run opens the window and drives game until the exit key, the window close button,
// or a render error. Each frame it calls game.Update with the frame delta, then
// game.Render. Device-dependent resources are dropped while the window is minimised
// and recreated on first use after it is restored.
func Run(cfg config.Config, game *demo.Game, log *logger.Logger) error {
	if cfg.Window.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC is polled by the game so it can log before leaving
	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))
	log.Logf("window %dx%d open", rl.GetScreenWidth(), rl.GetScreenHeight())

	var res resource.Set
	defer res.CloseAll()
	font := newFontHandle(cfg.Font, log)
	res.Add(font)

	camera := newCamera(rl.GetScreenWidth(), rl.GetScreenHeight())
	r := newRenderer(&camera, font)
	game.Overlay().FPS = rl.GetFPS

	minimized := false
	for !rl.WindowShouldClose() && !game.Done() {
		if rl.IsWindowMinimized() {
			if !minimized {
				minimized = true
				game.Suspend()
				res.InvalidateAll()
			}
			// Keep pumping events so the restore is noticed.
			rl.BeginDrawing()
			rl.EndDrawing()
			continue
		}
		if minimized {
			minimized = false
			game.Resume()
		}
		if rl.IsWindowResized() {
			camera = newCamera(rl.GetScreenWidth(), rl.GetScreenHeight())
		}

		game.Update(float64(rl.GetFrameTime()))
		if err := game.Render(r); err != nil {
			return fmt.Errorf("graphics: %w", err)
		}
	}
	log.Logf("closing after %d frames, %.1fs", game.Timer().FrameCount(), game.Timer().TotalSeconds())
	return nil
}
