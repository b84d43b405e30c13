package meshing

import (
	"voxelgame/internal/world"
)

// BuildNaiveMesh emits one face per visible voxel face without any merging.
// Kept alongside the greedy path as the reference output: greedy meshing
// must cover exactly the faces this produces, with fewer or equal quads.
func BuildNaiveMesh(sample Sampler, visible Visibility, origin [3]int) []Face {
	var faces []Face
	for y := 0; y < world.ChunkSizeY; y++ {
		for z := 0; z < world.ChunkSizeZ; z++ {
			for x := 0; x < world.ChunkSizeX; x++ {
				t := sample(x, y, z)
				if t == world.Air {
					continue
				}
				for _, dir := range world.Directions {
					if visible(x, y, z, dir) {
						faces = append(faces, Face{
							Direction: dir,
							Type:      t,
							X:         origin[0] + x,
							Y:         origin[1] + y,
							Z:         origin[2] + z,
						})
					}
				}
			}
		}
	}
	return faces
}
