// Package demo drives one frame of the shapes demo: advance time, build the star and
// the animated circle, hand them to a Renderer.
package demo

import (
	"fmt"

	"golang.org/x/image/colornames"

	"shapes-demo/internal/config"
	"shapes-demo/internal/easing"
	"shapes-demo/internal/geometry"
	"shapes-demo/internal/logger"
	"shapes-demo/internal/overlay"
	"shapes-demo/internal/timer"
)

var (
	clearColor = geometry.ColorFrom(colornames.Cornflowerblue)
	starColor  = geometry.ColorFrom(colornames.Yellow)
	textColor  = geometry.ColorFrom(colornames.Yellow)
)

// Renderer is the drawing service a frame is submitted to. Errors are fatal to the loop.
type Renderer interface {
	overlay.TextDrawer
	BeginFrame(clear geometry.Color)
	DrawIndexed(m geometry.Mesh) error
	EndFrame() error
}

// Input reports the single digital signal the demo reacts to.
type Input interface {
	ExitRequested() bool
}

// Game owns the animation state. All methods run on the window thread.
type Game struct {
	cfg     config.Config
	palette *geometry.Palette
	input   Input
	log     *logger.Logger
	overlay *overlay.Overlay
	timer   timer.StepTimer

	sides     int
	done      bool
	suspended bool
}

// New returns a game using palette for the circle colour. input may be nil (never exits).
func New(cfg config.Config, palette *geometry.Palette, input Input, log *logger.Logger) *Game {
	ov := overlay.New(cfg.Window.Title, textColor)
	ov.ShowFPS = cfg.Debug.ShowFPS
	ov.ShowMemAlloc = cfg.Debug.ShowMemAlloc
	return &Game{
		cfg:     cfg,
		palette: palette,
		input:   input,
		log:     log,
		overlay: ov,
		sides:   cfg.Animation.MinSides,
	}
}

// Overlay exposes the text overlay so the window layer can hook up FPS reporting.
func (g *Game) Overlay() *overlay.Overlay { return g.overlay }

// Done reports whether the exit key has been pressed.
func (g *Game) Done() bool { return g.done }

// Sides is the side count used by the last rendered frame.
func (g *Game) Sides() int { return g.sides }

// Timer exposes elapsed time and frame count.
func (g *Game) Timer() *timer.StepTimer { return &g.timer }

// Update advances time by dt seconds and polls input. Suspended games do not advance.
func (g *Game) Update(dt float64) {
	if g.suspended {
		return
	}
	g.timer.Tick(dt, func(*timer.StepTimer) {
		if g.input != nil && !g.done && g.input.ExitRequested() {
			g.done = true
			g.log.Log("exit requested")
		}
	})
}

// Render draws one frame. Nothing is drawn before the first Update.
func (g *Game) Render(r Renderer) error {
	if g.timer.FrameCount() == 0 {
		return nil
	}
	r.BeginFrame(clearColor)

	g.sides = easing.SideCount(g.timer.TotalSeconds(), g.cfg.Animation)
	g.overlay.Draw(r, g.sides)

	star := geometry.Star(g.cfg.Star.X, g.cfg.Star.Y, starColor)
	if err := r.DrawIndexed(star); err != nil {
		return fmt.Errorf("draw star: %w", err)
	}

	c := g.cfg.Circle
	circle, err := geometry.Polygon(g.sides, c.Radius, geometry.Vec3{X: c.X, Y: c.Y, Z: c.Z}, g.palette.At(0))
	if err != nil {
		return fmt.Errorf("build circle: %w", err)
	}
	if err := r.DrawIndexed(circle); err != nil {
		return fmt.Errorf("draw circle: %w", err)
	}
	if err := r.EndFrame(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// Suspend stops time from advancing (window minimised).
func (g *Game) Suspend() {
	if g.suspended {
		return
	}
	g.suspended = true
	g.log.Log("suspended")
}

// Resume restarts time without counting the suspended interval.
func (g *Game) Resume() {
	if !g.suspended {
		return
	}
	g.suspended = false
	g.timer.ResetElapsed()
	g.log.Log("resumed")
}
