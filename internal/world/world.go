package world

import (
	"voxelgame/internal/profiling"
)

// World owns every chunk, keyed by packed chunk coordinate. Chunks are
// created lazily on first access and never evicted. All access is
// single-threaded; callers serialize.
type World struct {
	chunks map[uint64]*Chunk
}

// New creates an empty world.
func New() *World {
	return &World{
		chunks: make(map[uint64]*Chunk),
	}
}

// Chunk returns the chunk at the given chunk coordinate, or nil.
func (w *World) Chunk(coord ChunkCoord) *Chunk {
	return w.chunks[coord.Key()]
}

// GetOrCreateChunk returns the chunk at the given chunk coordinate,
// creating an all-air one on first access.
func (w *World) GetOrCreateChunk(coord ChunkCoord) *Chunk {
	key := coord.Key()
	if c, ok := w.chunks[key]; ok {
		return c
	}
	c := NewChunk(coord)
	w.chunks[key] = c
	return c
}

// ChunkFromVoxelCoords returns the chunk containing the world voxel
// position, or nil if it was never created.
func (w *World) ChunkFromVoxelCoords(x, y, z int) *Chunk {
	return w.Chunk(WorldToChunkCoords(x, y, z))
}

// GetVoxel returns the voxel at a world position. Positions in chunks that
// were never created read as Air.
func (w *World) GetVoxel(x, y, z int) VoxelType {
	c := w.ChunkFromVoxelCoords(x, y, z)
	if c == nil {
		return Air
	}
	lx, ly, lz := WorldToLocalCoords(x, y, z)
	return c.GetVoxel(lx, ly, lz)
}

// SetVoxel writes the voxel at a world position, creating the containing
// chunk if needed. A write on a chunk border also marks the adjacent chunk
// dirty, since its face culling may have changed; remeshing stays an
// explicit caller-driven pass.
func (w *World) SetVoxel(x, y, z int, t VoxelType) {
	c := w.GetOrCreateChunk(WorldToChunkCoords(x, y, z))
	lx, ly, lz := WorldToLocalCoords(x, y, z)
	c.SetVoxel(lx, ly, lz, t)

	if lx == 0 {
		w.markDirtyAt(x-1, y, z)
	} else if lx == ChunkSizeX-1 {
		w.markDirtyAt(x+1, y, z)
	}
	if ly == 0 {
		w.markDirtyAt(x, y-1, z)
	} else if ly == ChunkSizeY-1 {
		w.markDirtyAt(x, y+1, z)
	}
	if lz == 0 {
		w.markDirtyAt(x, y, z-1)
	} else if lz == ChunkSizeZ-1 {
		w.markDirtyAt(x, y, z+1)
	}
}

func (w *World) markDirtyAt(x, y, z int) {
	if c := w.ChunkFromVoxelCoords(x, y, z); c != nil {
		c.MarkDirty()
	}
}

// LinkNeighbors wires the six-direction neighbor links of every chunk to
// whatever chunks currently exist. Chunks adjacent to newly linked
// neighbors must be rebuilt afterwards; callers typically MarkAllDirty and
// run a rebuild pass.
func (w *World) LinkNeighbors() {
	defer profiling.Track("world.LinkNeighbors")()
	for _, c := range w.chunks {
		for _, dir := range Directions {
			if neighbor, ok := w.chunks[c.Coord().Offset(dir).Key()]; ok {
				c.SetNeighbor(dir, neighbor)
			}
		}
	}
}

// MarkAllDirty flags every chunk for remeshing.
func (w *World) MarkAllDirty() {
	for _, c := range w.chunks {
		c.MarkDirty()
	}
}

// All returns every chunk in the world, in map order.
func (w *World) All() []*Chunk {
	chunks := make([]*Chunk, 0, len(w.chunks))
	for _, c := range w.chunks {
		chunks = append(chunks, c)
	}
	return chunks
}

// Len returns the number of chunks.
func (w *World) Len() int {
	return len(w.chunks)
}
