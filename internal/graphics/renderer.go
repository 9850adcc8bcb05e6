package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"shapes-demo/internal/fonts"
	"shapes-demo/internal/geometry"
	"shapes-demo/internal/logger"
	"shapes-demo/internal/resource"
)

const (
	fontSize    = 32
	fontSpacing = 1
)

type queuedText struct {
	text string
	pos  rl.Vector2
	col  rl.Color
}

// renderer submits meshes through rlgl immediate mode inside a 3D camera pass.
// Text is queued and drawn after the 3D pass, on top.
type renderer struct {
	camera *rl.Camera3D
	font   *resource.Handle[rl.Font]
	texts  []queuedText
}

func newRenderer(camera *rl.Camera3D, font *resource.Handle[rl.Font]) *renderer {
	return &renderer{camera: camera, font: font}
}

func toRL(c geometry.Color) rl.Color {
	r, g, b, a := c.RGBA8()
	return rl.NewColor(r, g, b, a)
}

func (r *renderer) BeginFrame(clear geometry.Color) {
	r.texts = r.texts[:0]
	rl.BeginDrawing()
	rl.ClearBackground(toRL(clear))
	rl.BeginMode3D(*r.camera)
}

func (r *renderer) DrawIndexed(m geometry.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	rl.Begin(rl.Triangles)
	for _, idx := range m.Indices {
		v := m.Vertices[idx]
		cr, cg, cb, ca := v.Color.RGBA8()
		rl.Color4ub(cr, cg, cb, ca)
		rl.Vertex3f(v.Position.X, v.Position.Y, v.Position.Z)
	}
	rl.End()
	return nil
}

func (r *renderer) DrawText(text string, x, y float32, col geometry.Color) {
	r.texts = append(r.texts, queuedText{text: text, pos: rl.NewVector2(x, y), col: toRL(col)})
}

func (r *renderer) EndFrame() error {
	rl.EndMode3D()
	font, err := r.font.Get()
	if err != nil {
		rl.EndDrawing()
		return err
	}
	for _, t := range r.texts {
		rl.DrawTextEx(font, t.text, t.pos, fontSize, fontSpacing, t.col)
	}
	rl.EndDrawing()
	return nil
}

// newFontHandle loads the configured font on first use, falling back to raylib's
// built-in font when none is configured or it cannot be found/loaded.
func newFontHandle(name string, log *logger.Logger) *resource.Handle[rl.Font] {
	create := func() (rl.Font, error) {
		if name == "" {
			return rl.GetFontDefault(), nil
		}
		path, err := fonts.Find(name, fonts.BaseDirs()...)
		if err != nil {
			log.Logf("%v; using default font", err)
			return rl.GetFontDefault(), nil
		}
		f := rl.LoadFont(path)
		if f.Texture.ID == 0 {
			log.Logf("font %s failed to load; using default font", path)
			return rl.GetFontDefault(), nil
		}
		log.Logf("font %s loaded", path)
		return f, nil
	}
	release := func(f rl.Font) {
		if f.Texture.ID != rl.GetFontDefault().Texture.ID {
			rl.UnloadFont(f)
		}
	}
	return resource.NewHandle("font", create, release)
}
