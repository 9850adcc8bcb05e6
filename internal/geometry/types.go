package geometry

import (
	"fmt"
	"image/color"
)

// Vec3 is a position in world space.
type Vec3 struct {
	X, Y, Z float32
}

// Color is a straight (non-premultiplied) RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// ColorFrom converts any image/color value (e.g. colornames.Yellow) to a Color.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// RGBA8 returns the colour as 8-bit channels, clamping out-of-range components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vertex is a coloured point. Meshes are rebuilt every frame, so vertices are never mutated.
type Vertex struct {
	Position Vec3
	Color    Color
}

// Mesh is an indexed triangle list: every three indices form one triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Triangles returns the number of triangles described by the index list.
func (m Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Validate checks that the index list is whole triangles and only references existing vertices.
func (m Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%d indices is not a triangle list: %w", len(m.Indices), ErrInvalidGeometry)
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("index %d references vertex %d of %d: %w", i, idx, len(m.Vertices), ErrInvalidGeometry)
		}
	}
	return nil
}
