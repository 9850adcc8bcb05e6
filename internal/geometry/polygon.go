package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// ErrInvalidGeometry is returned when a shape cannot be built from the given parameters.
var ErrInvalidGeometry = errors.New("invalid geometry")

// MinSides is the smallest side count that describes a closed polygon.
const MinSides = 3

// MaxSides keeps every vertex addressable by a uint16 index (centre + ring).
const MaxSides = math.MaxUint16 - 1

// Polygon builds a regular polygon as a triangle fan around center.
// Vertex 0 is the centre; vertices 1..sides lie on the circle, vertex 1 at angle 0 and
// each following vertex 360°/sides further counter-clockwise.
// Triangle i is (0, i, i+1), except the last one which closes back to vertex 1.
// All vertices share col.
func Polygon(sides int, radius float32, center Vec3, col Color) (Mesh, error) {
	if sides < MinSides || sides > MaxSides {
		return Mesh{}, fmt.Errorf("polygon with %d sides: %w", sides, ErrInvalidGeometry)
	}
	vertices := make([]Vertex, sides+1)
	indices := make([]uint16, 0, sides*3)

	vertices[0] = Vertex{Position: center, Color: col}
	step := 360 / float32(sides)
	for i := 1; i <= sides; i++ {
		angle := degToRad(step * float32(i-1))
		vertices[i] = Vertex{
			Position: Vec3{
				X: center.X + radius*math32.Cos(angle),
				Y: center.Y + radius*math32.Sin(angle),
				Z: center.Z,
			},
			Color: col,
		}
		next := i + 1
		if i == sides {
			next = 1
		}
		indices = append(indices, 0, uint16(i), uint16(next))
	}
	return Mesh{Vertices: vertices, Indices: indices}, nil
}

func degToRad(deg float32) float32 {
	return deg * (math32.Pi / 180)
}
