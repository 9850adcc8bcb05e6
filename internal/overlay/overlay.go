package overlay

import (
	"fmt"
	"runtime"
	"strconv"

	"shapes-demo/internal/geometry"
)

const (
	left       = 10
	top        = 10
	lineHeight = 40
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// TextDrawer is the part of the renderer the overlay needs.
type TextDrawer interface {
	DrawText(text string, x, y float32, col geometry.Color)
}

// Overlay draws the title, the current circle side count and the optional FPS/heap
// lines in the top-left corner. FPS and heap lines are off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	Color        geometry.Color
	// FPS reports frames per second; the window layer sets it to rl.GetFPS.
	FPS func() int32

	title       string
	frameCount  uint32
	sides       int
	sidesText   string
	lastFpsText string
	lastMemText string
	memStats    runtime.MemStats
}

// New returns an overlay headed by title, drawn in col.
func New(title string, col geometry.Color) *Overlay {
	return &Overlay{title: title, Color: col, sides: -1}
}

// Draw renders the overlay. The side-count string is rebuilt only when sides changes;
// FPS/Mem text only every updateInterval frames.
func (o *Overlay) Draw(d TextDrawer, sides int) {
	o.frameCount++
	update := o.frameCount%updateInterval == 0
	if o.ShowFPS && o.lastFpsText == "" {
		update = true
	}
	if o.ShowMemAlloc && o.lastMemText == "" {
		update = true
	}

	y := float32(top)
	d.DrawText(o.title, left, y, o.Color)
	y += lineHeight

	if sides != o.sides {
		o.sides = sides
		o.sidesText = "Sides: " + strconv.Itoa(sides)
	}
	d.DrawText(o.sidesText, left, y, o.Color)
	y += lineHeight

	if o.ShowFPS {
		if update {
			var fps int32
			if o.FPS != nil {
				fps = o.FPS()
			}
			o.lastFpsText = fmt.Sprintf("FPS: %d", fps)
		}
		d.DrawText(o.lastFpsText, left, y, o.Color)
		y += lineHeight
	}

	if o.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&o.memStats)
			mb := float64(o.memStats.Alloc) / (1024 * 1024)
			o.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.DrawText(o.lastMemText, left, y, o.Color)
	}
}
