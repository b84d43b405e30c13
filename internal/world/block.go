package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VoxelType identifies the material stored in one cell of a chunk. It is a
// plain tag with no payload; Air is the universal empty sentinel.
type VoxelType uint8

const (
	Air VoxelType = iota
	Grass
	Dirt
	Stone
	Sand
	Water
	Wood
	Leaves
)

// voxelDef holds the fixed display properties of a voxel type.
type voxelDef struct {
	name        string
	color       mgl32.Vec4
	transparent bool
}

var voxelDefs = map[VoxelType]voxelDef{
	Air:    {"air", mgl32.Vec4{0.0, 0.0, 0.0, 0.0}, true},
	Grass:  {"grass", mgl32.Vec4{0.4, 0.8, 0.2, 1.0}, false},
	Dirt:   {"dirt", mgl32.Vec4{0.6, 0.4, 0.2, 1.0}, false},
	Stone:  {"stone", mgl32.Vec4{0.7, 0.7, 0.7, 1.0}, false},
	Sand:   {"sand", mgl32.Vec4{0.95, 0.95, 0.5, 1.0}, false},
	Water:  {"water", mgl32.Vec4{0.2, 0.5, 0.9, 0.7}, true},
	Wood:   {"wood", mgl32.Vec4{0.5, 0.3, 0.1, 1.0}, false},
	Leaves: {"leaves", mgl32.Vec4{0.2, 0.6, 0.1, 0.9}, true},
}

// FallbackColor is returned for unregistered voxel types. Magenta makes bad
// data visible on screen instead of failing the mesh build.
var FallbackColor = mgl32.Vec4{1.0, 0.0, 1.0, 1.0}

// Color returns the display color for this voxel type.
func (t VoxelType) Color() mgl32.Vec4 {
	if def, ok := voxelDefs[t]; ok {
		return def.color
	}
	return FallbackColor
}

// Transparent reports whether faces behind this voxel type remain visible.
// Unregistered types are treated as opaque.
func (t VoxelType) Transparent() bool {
	def, ok := voxelDefs[t]
	return ok && def.transparent
}

func (t VoxelType) String() string {
	if def, ok := voxelDefs[t]; ok {
		return def.name
	}
	return "unknown"
}
