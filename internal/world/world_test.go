package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorldLazyChunkCreation(t *testing.T) {
	w := New()
	coord := ChunkCoord{2, 0, -3}

	require.Nil(t, w.Chunk(coord))
	require.Equal(t, 0, w.Len())

	c := w.GetOrCreateChunk(coord)
	require.NotNil(t, c)
	require.Equal(t, coord, c.Coord())
	require.Equal(t, 1, w.Len())

	require.Same(t, c, w.GetOrCreateChunk(coord))
	require.Equal(t, 1, w.Len())
}

func TestWorldVoxelAccessNegativeCoords(t *testing.T) {
	w := New()

	require.Equal(t, Air, w.GetVoxel(-1, 10, -1))

	w.SetVoxel(-1, 10, -1, Stone)
	require.Equal(t, Stone, w.GetVoxel(-1, 10, -1))

	c := w.Chunk(ChunkCoord{-1, 0, -1})
	require.NotNil(t, c)
	require.Equal(t, Stone, c.GetVoxel(ChunkSizeX-1, 10, ChunkSizeZ-1))
}

func TestWorldBorderWriteDirtiesNeighbor(t *testing.T) {
	w := New()
	left := w.GetOrCreateChunk(ChunkCoord{0, 0, 0})
	right := w.GetOrCreateChunk(ChunkCoord{1, 0, 0})
	left.SetClean()
	right.SetClean()

	// Interior write only dirties its own chunk.
	w.SetVoxel(8, 10, 8, Stone)
	require.True(t, left.IsDirty())
	require.False(t, right.IsDirty())
	left.SetClean()

	// Border write dirties the chunk across the face too.
	w.SetVoxel(ChunkSizeX-1, 10, 8, Stone)
	require.True(t, left.IsDirty())
	require.True(t, right.IsDirty())
}

func TestWorldBorderWriteMissingNeighbor(t *testing.T) {
	w := New()
	// No chunk at x=-1; the write must not create one.
	w.SetVoxel(0, 10, 8, Stone)
	require.Nil(t, w.Chunk(ChunkCoord{-1, 0, 0}))
	require.Equal(t, 1, w.Len())
}

func TestLinkNeighbors(t *testing.T) {
	w := New()
	center := w.GetOrCreateChunk(ChunkCoord{0, 0, 0})
	east := w.GetOrCreateChunk(ChunkCoord{1, 0, 0})
	north := w.GetOrCreateChunk(ChunkCoord{0, 0, 1})

	w.LinkNeighbors()

	require.Same(t, east, center.Neighbor(Right))
	require.Same(t, center, east.Neighbor(Left))
	require.Same(t, north, center.Neighbor(Front))
	require.Same(t, center, north.Neighbor(Back))
	require.Nil(t, center.Neighbor(Top))
	require.Nil(t, center.Neighbor(Back))
}

func TestMarkAllDirty(t *testing.T) {
	w := New()
	a := w.GetOrCreateChunk(ChunkCoord{0, 0, 0})
	b := w.GetOrCreateChunk(ChunkCoord{5, 0, 5})
	a.SetClean()
	b.SetClean()

	w.MarkAllDirty()

	require.True(t, a.IsDirty())
	require.True(t, b.IsDirty())
}

func TestWorldAll(t *testing.T) {
	w := New()
	w.GetOrCreateChunk(ChunkCoord{0, 0, 0})
	w.GetOrCreateChunk(ChunkCoord{1, 0, 0})
	w.GetOrCreateChunk(ChunkCoord{0, 0, 1})

	require.Len(t, w.All(), 3)
}
