package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const fovyDegrees = 70

// newCamera looks from (0,0,5) at the origin with a 70° vertical field of view,
// doubled for portrait windows so the shapes stay in view.
func newCamera(width, height int) rl.Camera3D {
	fovy := float32(fovyDegrees)
	if height > 0 && float32(width)/float32(height) < 1 {
		fovy *= 2
	}
	return rl.Camera3D{
		Position:   rl.NewVector3(0, 0, 5),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       fovy,
		Projection: rl.CameraPerspective,
	}
}
