package meshing

import (
	"voxelgame/internal/world"
)

// BuildChunkMesh rebuilds the full geometry buffer for one chunk, wiring
// the chunk's voxel lookup and face-visibility oracle into the greedy
// mesher. The rebuild is synchronous and wholesale; a fully enclosed or
// all-air chunk yields an empty buffer.
func BuildChunkMesh(c *world.Chunk) *Buffer {
	if c == nil || c.Empty() {
		return &Buffer{}
	}
	ox, oy, oz := c.Origin()
	faces := BuildGreedyMesh(c.GetVoxel, c.ShouldRenderFace, [3]int{ox, oy, oz})
	return BuildBuffer(faces)
}

// BuildChunkMeshNaive is the unmerged counterpart of BuildChunkMesh, one
// quad per visible face.
func BuildChunkMeshNaive(c *world.Chunk) *Buffer {
	if c == nil || c.Empty() {
		return &Buffer{}
	}
	ox, oy, oz := c.Origin()
	faces := BuildNaiveMesh(c.GetVoxel, c.ShouldRenderFace, [3]int{ox, oy, oz})
	buf := &Buffer{
		Vertices: make([]Vertex, 0, len(faces)*4),
		Indices:  make([]uint32, 0, len(faces)*6),
	}
	for _, f := range faces {
		buf.AppendFace(f)
	}
	return buf
}
