package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkKeyRoundTrip(t *testing.T) {
	coords := []ChunkCoord{
		{0, 0, 0},
		{1, 2, 3},
		{-1, 0, 0},
		{0, -1, 0},
		{0, 0, -1},
		{-5, -7, -9},
		{1000, -1000, 500},
		{-1048576, 1048575, -1048576},
	}
	for _, c := range coords {
		require.Equal(t, c, ChunkCoordFromKey(c.Key()), "coord %+v", c)
	}
}

func TestChunkKeyUnique(t *testing.T) {
	seen := make(map[uint64]ChunkCoord)
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			for z := -3; z <= 3; z++ {
				c := ChunkCoord{x, y, z}
				key := c.Key()
				prev, dup := seen[key]
				require.False(t, dup, "key collision between %+v and %+v", prev, c)
				seen[key] = c
			}
		}
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 1},
		{-1, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
		{31, 16, 1},
	}
	for _, c := range cases {
		require.Equal(t, c.want, floorDiv(c.a, c.b), "floorDiv(%d, %d)", c.a, c.b)
	}
}

func TestMod(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{0, 16, 0},
		{15, 16, 15},
		{16, 16, 0},
		{-1, 16, 15},
		{-16, 16, 0},
		{-17, 16, 15},
	}
	for _, c := range cases {
		require.Equal(t, c.want, mod(c.a, c.b), "mod(%d, %d)", c.a, c.b)
	}
}

func TestWorldToChunkCoords(t *testing.T) {
	require.Equal(t, ChunkCoord{0, 0, 0}, WorldToChunkCoords(0, 0, 0))
	require.Equal(t, ChunkCoord{0, 0, 0}, WorldToChunkCoords(15, 255, 15))
	require.Equal(t, ChunkCoord{1, 0, 1}, WorldToChunkCoords(16, 0, 16))
	require.Equal(t, ChunkCoord{-1, 0, -1}, WorldToChunkCoords(-1, 0, -1))
	require.Equal(t, ChunkCoord{-1, -1, -2}, WorldToChunkCoords(-16, -1, -17))
}

func TestWorldToLocalCoords(t *testing.T) {
	lx, ly, lz := WorldToLocalCoords(0, 0, 0)
	require.Equal(t, [3]int{0, 0, 0}, [3]int{lx, ly, lz})

	lx, ly, lz = WorldToLocalCoords(-1, -1, -1)
	require.Equal(t, [3]int{15, 255, 15}, [3]int{lx, ly, lz})

	lx, ly, lz = WorldToLocalCoords(17, 256, 33)
	require.Equal(t, [3]int{1, 0, 1}, [3]int{lx, ly, lz})
}

func TestWorldLocalRoundTrip(t *testing.T) {
	for _, p := range [][3]int{{0, 0, 0}, {-1, 5, -33}, {100, 300, -100}, {-256, 511, 16}} {
		cc := WorldToChunkCoords(p[0], p[1], p[2])
		lx, ly, lz := WorldToLocalCoords(p[0], p[1], p[2])
		ox, oy, oz := cc.Origin()
		require.Equal(t, p, [3]int{ox + lx, oy + ly, oz + lz})
	}
}

func TestCoordOffset(t *testing.T) {
	c := ChunkCoord{1, 0, -2}
	require.Equal(t, ChunkCoord{1, 0, -1}, c.Offset(Front))
	require.Equal(t, ChunkCoord{1, 0, -3}, c.Offset(Back))
	require.Equal(t, ChunkCoord{1, 1, -2}, c.Offset(Top))
	require.Equal(t, ChunkCoord{1, -1, -2}, c.Offset(Bottom))
	require.Equal(t, ChunkCoord{2, 0, -2}, c.Offset(Right))
	require.Equal(t, ChunkCoord{0, 0, -2}, c.Offset(Left))
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		dx, dy, dz := d.Offset()
		ox, oy, oz := d.Opposite().Offset()
		require.Equal(t, [3]int{-dx, -dy, -dz}, [3]int{ox, oy, oz}, "direction %v", d)
	}
}
