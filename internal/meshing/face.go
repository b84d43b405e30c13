package meshing

import (
	"voxelgame/internal/world"
)

// Sampler returns the voxel type at chunk-local coordinates. The mesher
// takes this as a parameter instead of reaching into chunk storage.
type Sampler func(x, y, z int) world.VoxelType

// Visibility reports whether the face of the voxel at chunk-local
// (x, y, z) toward dir must be drawn.
type Visibility func(x, y, z int, dir world.Direction) bool

// Face describes one visible unit quad of a voxel, anchored at its voxel's
// world-space position.
type Face struct {
	Direction world.Direction
	Type      world.VoxelType
	X, Y, Z   int
}

// MergedFace describes a rectangle of coplanar, same-type, same-direction
// faces. Width and Height extend along the two axes orthogonal to
// Direction: Front/Back span (x, y), Top/Bottom span (x, z), Right/Left
// span (z, y).
type MergedFace struct {
	Direction     world.Direction
	Type          world.VoxelType
	X, Y, Z       int
	Width, Height int
}

// Area returns the number of unit faces covered by the rectangle.
func (f MergedFace) Area() int {
	return f.Width * f.Height
}
