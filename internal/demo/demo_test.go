package demo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapes-demo/internal/config"
	"shapes-demo/internal/geometry"
	"shapes-demo/internal/logger"
)

type fakeRenderer struct {
	ops     []string
	meshes  []geometry.Mesh
	texts   []string
	clear   geometry.Color
	drawErr error
	endErr  error
}

func (f *fakeRenderer) BeginFrame(c geometry.Color) {
	f.ops = append(f.ops, "begin")
	f.clear = c
}

func (f *fakeRenderer) DrawIndexed(m geometry.Mesh) error {
	f.ops = append(f.ops, "mesh")
	f.meshes = append(f.meshes, m)
	return f.drawErr
}

func (f *fakeRenderer) DrawText(text string, _, _ float32, _ geometry.Color) {
	f.ops = append(f.ops, "text")
	f.texts = append(f.texts, text)
}

func (f *fakeRenderer) EndFrame() error {
	f.ops = append(f.ops, "end")
	return f.endErr
}

type keyState struct{ pressed bool }

func (k *keyState) ExitRequested() bool { return k.pressed }

func newGame(t *testing.T, input Input) *Game {
	t.Helper()
	cfg := config.Default()
	return New(cfg, geometry.NewSeededPalette(cfg.PaletteSize, cfg.Seed), input, logger.New(""))
}

func TestRenderSkipsBeforeFirstUpdate(t *testing.T) {
	g := newGame(t, nil)
	var r fakeRenderer
	require.NoError(t, g.Render(&r))
	assert.Empty(t, r.ops)
}

func TestRenderFrame(t *testing.T) {
	g := newGame(t, nil)
	g.Update(0.016)

	var r fakeRenderer
	require.NoError(t, g.Render(&r))

	assert.Equal(t, []string{"begin", "text", "text", "mesh", "mesh", "end"}, r.ops)
	assert.Equal(t, clearColor, r.clear)
	assert.Equal(t, []string{"Shapes Demo Window", "Sides: 3"}, r.texts)

	require.Len(t, r.meshes, 2)
	star, circle := r.meshes[0], r.meshes[1]
	assert.Len(t, star.Vertices, 6)
	assert.Equal(t, float32(-1), star.Vertices[0].Position.X)
	assert.Len(t, circle.Vertices, 4)
	assert.Equal(t, geometry.Vec3{X: 1.5, Y: 0, Z: 1}, circle.Vertices[0].Position)
	assert.Equal(t, g.palette.At(0), circle.Vertices[0].Color)
}

func TestSidesFollowEasing(t *testing.T) {
	g := newGame(t, nil)
	for i := 0; i < 50; i++ {
		g.Update(0.1)
	}
	var r fakeRenderer
	require.NoError(t, g.Render(&r))
	assert.InDelta(t, 53, g.Sides(), 1)
	assert.Len(t, r.meshes[1].Indices, 3*g.Sides())
	assert.Equal(t, "Sides: "+strconv.Itoa(g.Sides()), r.texts[1])
}

func TestRenderPropagatesErrors(t *testing.T) {
	boom := errors.New("device removed")

	g := newGame(t, nil)
	g.Update(0.016)
	err := g.Render(&fakeRenderer{drawErr: boom})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "draw star")

	err = g.Render(&fakeRenderer{endErr: boom})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "present")
}

func TestExitKey(t *testing.T) {
	k := &keyState{}
	g := newGame(t, k)
	g.Update(0.016)
	assert.False(t, g.Done())
	k.pressed = true
	g.Update(0.016)
	assert.True(t, g.Done())
}

func TestSuspendResume(t *testing.T) {
	g := newGame(t, nil)
	g.Update(0.05)
	g.Suspend()
	g.Update(0.05)
	assert.InDelta(t, 0.05, g.Timer().TotalSeconds(), 1e-9)
	assert.Equal(t, uint64(1), g.Timer().FrameCount())

	g.Resume()
	g.Update(0.09) // covers the time spent minimised
	g.Update(0.02)
	assert.InDelta(t, 0.07, g.Timer().TotalSeconds(), 1e-9)
}
