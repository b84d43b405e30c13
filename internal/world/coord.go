package world

// ChunkCoord is a chunk's integer grid address.
type ChunkCoord struct {
	X, Y, Z int
}

const (
	chunkKeyAxisBits = 21
	chunkKeyAxisMask = (1 << chunkKeyAxisBits) - 1
	chunkKeySignBit  = 1 << (chunkKeyAxisBits - 1)
)

// Key packs the coordinate into a single integer, 21 bits per axis with
// two's-complement masking so negative coordinates round-trip. Gives a range
// of roughly ±1,048,576 chunks per axis.
func (c ChunkCoord) Key() uint64 {
	return uint64(c.X&chunkKeyAxisMask) |
		uint64(c.Y&chunkKeyAxisMask)<<chunkKeyAxisBits |
		uint64(c.Z&chunkKeyAxisMask)<<(2*chunkKeyAxisBits)
}

// ChunkCoordFromKey reverses Key, sign-extending each axis.
func ChunkCoordFromKey(key uint64) ChunkCoord {
	return ChunkCoord{
		X: signExtend(int(key & chunkKeyAxisMask)),
		Y: signExtend(int((key >> chunkKeyAxisBits) & chunkKeyAxisMask)),
		Z: signExtend(int((key >> (2 * chunkKeyAxisBits)) & chunkKeyAxisMask)),
	}
}

func signExtend(v int) int {
	if v >= chunkKeySignBit {
		v -= chunkKeyAxisMask + 1
	}
	return v
}

// Origin returns the world-space position of the chunk's (0,0,0) corner.
func (c ChunkCoord) Origin() (x, y, z int) {
	return c.X * ChunkSizeX, c.Y * ChunkSizeY, c.Z * ChunkSizeZ
}

// Offset returns the coordinate of the adjacent chunk across dir.
func (c ChunkCoord) Offset(dir Direction) ChunkCoord {
	dx, dy, dz := dir.Offset()
	return ChunkCoord{c.X + dx, c.Y + dy, c.Z + dz}
}

// floorDiv divides rounding toward negative infinity, unlike Go's
// truncating division. Needed so that world voxel -1 lands in chunk -1.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// mod returns the always-non-negative remainder of a/b.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// WorldToChunkCoords maps a world voxel position to the coordinate of the
// chunk containing it.
func WorldToChunkCoords(x, y, z int) ChunkCoord {
	return ChunkCoord{
		X: floorDiv(x, ChunkSizeX),
		Y: floorDiv(y, ChunkSizeY),
		Z: floorDiv(z, ChunkSizeZ),
	}
}

// WorldToLocalCoords maps a world voxel position to its offset within the
// containing chunk. Results are always in [0, size) per axis.
func WorldToLocalCoords(x, y, z int) (lx, ly, lz int) {
	return mod(x, ChunkSizeX), mod(y, ChunkSizeY), mod(z, ChunkSizeZ)
}
