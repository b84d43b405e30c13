package gen

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"voxelgame/internal/world"
)

// hashChunkVoxels folds every voxel of a chunk into a digest so whole-chunk
// comparisons stay cheap to express.
func hashChunkVoxels(c *world.Chunk) [32]byte {
	h := sha256.New()
	buf := make([]byte, world.ChunkSizeX)
	for y := 0; y < world.ChunkSizeY; y++ {
		for z := 0; z < world.ChunkSizeZ; z++ {
			for x := 0; x < world.ChunkSizeX; x++ {
				buf[x] = byte(c.GetVoxel(x, y, z))
			}
			h.Write(buf)
		}
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func TestGenerateDeterministic(t *testing.T) {
	w1 := world.New()
	NewGenerator(12345).Generate(w1, 3, 3)

	w2 := world.New()
	NewGenerator(12345).Generate(w2, 3, 3)

	require.Equal(t, w1.Len(), w2.Len())
	for _, c1 := range w1.All() {
		c2 := w2.Chunk(c1.Coord())
		require.NotNil(t, c2, "chunk %+v missing in second world", c1.Coord())
		require.Equal(t, hashChunkVoxels(c1), hashChunkVoxels(c2),
			"chunk %+v differs between identically seeded runs", c1.Coord())
	}
}

func TestGenerateChunkCount(t *testing.T) {
	w := world.New()
	NewGenerator(1).Generate(w, 4, 3)
	require.Equal(t, 12, w.Len())

	for _, c := range w.All() {
		require.Equal(t, 0, c.Coord().Y, "terrain generates in the y=0 chunk layer")
		require.False(t, c.Empty(), "generated chunks hold terrain")
	}
}

func TestGenerateChunkFloorAndSurface(t *testing.T) {
	w := world.New()
	c := w.GetOrCreateChunk(world.ChunkCoord{})
	NewGenerator(7).GenerateChunk(c)

	// Every column carries at least two solid-or-water layers above bedrock
	// depth, whatever the biome decided.
	for x := 0; x < world.ChunkSizeX; x++ {
		for z := 0; z < world.ChunkSizeZ; z++ {
			require.NotEqual(t, world.Air, c.GetVoxel(x, 0, z), "column (%d,%d) floor", x, z)
			require.NotEqual(t, world.Air, c.GetVoxel(x, 1, z), "column (%d,%d) above floor", x, z)
		}
	}
}

func TestWaterStaysBelowSeaLevel(t *testing.T) {
	w := world.New()
	NewGenerator(99).Generate(w, 4, 4)

	for _, c := range w.All() {
		for x := 0; x < world.ChunkSizeX; x++ {
			for z := 0; z < world.ChunkSizeZ; z++ {
				for y := WaterLevel; y < world.ChunkSizeY; y++ {
					require.NotEqual(t, world.Water, c.GetVoxel(x, y, z),
						"water above sea level at chunk %+v (%d,%d,%d)", c.Coord(), x, y, z)
				}
			}
		}
	}
}

func TestBiomeAtDeterministic(t *testing.T) {
	g1 := NewGenerator(5)
	g2 := NewGenerator(5)
	for cx := -4; cx <= 4; cx++ {
		for cz := -4; cz <= 4; cz++ {
			require.Equal(t, g1.biomeAt(cx, cz), g2.biomeAt(cx, cz), "chunk (%d,%d)", cx, cz)
		}
	}
}

func TestBiomeString(t *testing.T) {
	require.Equal(t, "plains", BiomePlains.String())
	require.Equal(t, "mountains", BiomeMountains.String())
	require.Equal(t, "unknown", Biome(99).String())
}

func TestSurfaceHeight(t *testing.T) {
	c := world.NewChunk(world.ChunkCoord{})
	require.Equal(t, 0, surfaceHeight(c, 0, 0))

	c.SetVoxel(4, 0, 4, world.Stone)
	c.SetVoxel(4, 1, 4, world.Stone)
	require.Equal(t, 2, surfaceHeight(c, 4, 4))

	// Water does not count as surface.
	c.SetVoxel(4, 2, 4, world.Water)
	require.Equal(t, 2, surfaceHeight(c, 4, 4))
}
