package world

const (
	ChunkSizeX = 16
	ChunkSizeY = 256
	ChunkSizeZ = 16

	ChunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// occupancy is the cached answer to "does this chunk hold any non-air
// voxel". A write can leave it unknown; the next Empty call rescans.
type occupancy uint8

const (
	occupancyUnknown occupancy = iota
	occupancyEmpty
	occupancyNonEmpty
)

// Chunk is a fixed 16x256x16 block of voxel storage, the unit of mesh
// rebuilds. It owns its voxel array exclusively and keeps non-owning links
// to the six adjacent chunks for boundary visibility queries.
type Chunk struct {
	coord     ChunkCoord
	voxels    [ChunkVolume]VoxelType
	neighbors [DirectionCount]*Chunk
	occupancy occupancy
	dirty     bool
}

// NewChunk creates an all-air chunk at the given chunk coordinate.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{
		coord:     coord,
		occupancy: occupancyEmpty,
		dirty:     true,
	}
}

// Coord returns the chunk's immutable grid address.
func (c *Chunk) Coord() ChunkCoord {
	return c.coord
}

// Origin returns the world-space position of the chunk's (0,0,0) corner.
func (c *Chunk) Origin() (x, y, z int) {
	return c.coord.Origin()
}

func voxelIndex(x, y, z int) int {
	return (y*ChunkSizeZ+z)*ChunkSizeX + x
}

// IsValidPosition reports whether (x, y, z) lies inside the chunk.
func (c *Chunk) IsValidPosition(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX &&
		y >= 0 && y < ChunkSizeY &&
		z >= 0 && z < ChunkSizeZ
}

// GetVoxel returns the voxel at local coordinates. Out-of-bounds reads
// answer Air: the chunk edge behaves as if surrounded by empty space unless
// a neighbor link says otherwise (see VoxelWorldSpace).
func (c *Chunk) GetVoxel(x, y, z int) VoxelType {
	if !c.IsValidPosition(x, y, z) {
		return Air
	}
	return c.voxels[voxelIndex(x, y, z)]
}

// SetVoxel overwrites the voxel at local coordinates. Out-of-bounds writes
// are silently ignored. Any change marks the chunk dirty; a non-air write
// settles the occupancy cache immediately, an air write leaves it to be
// recomputed lazily.
func (c *Chunk) SetVoxel(x, y, z int, t VoxelType) {
	if !c.IsValidPosition(x, y, z) {
		return
	}
	idx := voxelIndex(x, y, z)
	if c.voxels[idx] == t {
		return
	}
	c.voxels[idx] = t
	c.dirty = true
	if t != Air {
		c.occupancy = occupancyNonEmpty
	} else {
		c.occupancy = occupancyUnknown
	}
}

// SetNeighbor records a non-owning link to the adjacent chunk across dir.
// Links are lookup-only; the world index owns all chunks.
func (c *Chunk) SetNeighbor(dir Direction, neighbor *Chunk) {
	c.neighbors[dir] = neighbor
}

// Neighbor returns the linked chunk across dir, or nil.
func (c *Chunk) Neighbor(dir Direction) *Chunk {
	return c.neighbors[dir]
}

// VoxelWorldSpace resolves a possibly out-of-range local coordinate through
// the neighbor links. Callers only ever step one voxel past the edge, so at
// most one axis is out of range; anything reaching past an unlinked or
// diagonal neighbor reads as Air.
func (c *Chunk) VoxelWorldSpace(x, y, z int) VoxelType {
	if c.IsValidPosition(x, y, z) {
		return c.GetVoxel(x, y, z)
	}

	dx, dy, dz := 0, 0, 0
	if x < 0 {
		dx = -1
		x += ChunkSizeX
	} else if x >= ChunkSizeX {
		dx = 1
		x -= ChunkSizeX
	}
	if y < 0 {
		dy = -1
		y += ChunkSizeY
	} else if y >= ChunkSizeY {
		dy = 1
		y -= ChunkSizeY
	}
	if z < 0 {
		dz = -1
		z += ChunkSizeZ
	} else if z >= ChunkSizeZ {
		dz = 1
		z -= ChunkSizeZ
	}

	dir, ok := directionFromOffset(dx, dy, dz)
	if !ok {
		return Air
	}
	neighbor := c.neighbors[dir]
	if neighbor == nil {
		return Air
	}
	return neighbor.GetVoxel(x, y, z)
}

// ShouldRenderFace decides whether the face of the voxel at (x, y, z)
// toward dir must be drawn. A face is drawn exactly when its neighbor is
// transparent or empty, except between two voxels of the same transparent
// type, which would otherwise show seams inside water or leaf volumes.
func (c *Chunk) ShouldRenderFace(x, y, z int, dir Direction) bool {
	current := c.GetVoxel(x, y, z)
	if current == Air {
		return false
	}

	dx, dy, dz := dir.Offset()
	neighbor := c.VoxelWorldSpace(x+dx, y+dy, z+dz)

	transparent := neighbor.Transparent()
	if transparent && neighbor == current {
		return false
	}
	return transparent
}

// Empty reports whether the chunk holds no non-air voxel. When the answer
// is stale after an air write it rescans the voxel array and caches the
// result until the next write.
func (c *Chunk) Empty() bool {
	switch c.occupancy {
	case occupancyEmpty:
		return true
	case occupancyNonEmpty:
		return false
	}
	c.occupancy = occupancyEmpty
	for _, v := range c.voxels {
		if v != Air {
			c.occupancy = occupancyNonEmpty
			break
		}
	}
	return c.occupancy == occupancyEmpty
}

// IsDirty reports whether the chunk was modified since the last SetClean.
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// MarkDirty flags the chunk for remeshing.
func (c *Chunk) MarkDirty() {
	c.dirty = true
}

// SetClean clears the dirty flag, typically after a mesh rebuild.
func (c *Chunk) SetClean() {
	c.dirty = false
}
