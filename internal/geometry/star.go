package geometry

// StarDepth is the Z coordinate of every star vertex.
const StarDepth = 0.5

// starOffsets are the two overlapping triangles of the star, relative to its origin:
// an upright triangle followed by an inverted one.
var starOffsets = [6][2]float32{
	{0, 0.5}, {-0.5, -0.5}, {0.5, -0.5},
	{0, -0.85}, {0.5, 0.15}, {-0.5, 0.15},
}

// Star returns the six-vertex, two-triangle star translated to (x, y).
func Star(x, y float32, col Color) Mesh {
	vertices := make([]Vertex, len(starOffsets))
	indices := make([]uint16, len(starOffsets))
	for i, o := range starOffsets {
		vertices[i] = Vertex{Position: Vec3{X: x + o[0], Y: y + o[1], Z: StarDepth}, Color: col}
		indices[i] = uint16(i)
	}
	return Mesh{Vertices: vertices, Indices: indices}
}
