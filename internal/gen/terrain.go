package gen

import (
	"math"
	"math/rand"

	"github.com/ojrac/opensimplex-go"

	"voxelgame/internal/world"
)

// Biome selects the terrain profile and structures of one chunk column.
type Biome int

const (
	BiomePlains Biome = iota
	BiomeHills
	BiomeMountains
	BiomeDesert
	BiomeForest
)

func (b Biome) String() string {
	switch b {
	case BiomePlains:
		return "plains"
	case BiomeHills:
		return "hills"
	case BiomeMountains:
		return "mountains"
	case BiomeDesert:
		return "desert"
	case BiomeForest:
		return "forest"
	}
	return "unknown"
}

// WaterLevel is the fixed sea level; terrain below it floods.
const WaterLevel = 5

const maxTerrainHeight = 40

// Generator produces deterministic terrain and structures from a single
// seed. All randomness flows through the explicit rand.Rand so repeated
// runs with the same seed build identical worlds.
type Generator struct {
	noise opensimplex.Noise32
	rng   *rand.Rand
}

// NewGenerator creates a generator for the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		noise: opensimplex.New32(seed),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// heightNoise layers three octaves into a rolling height offset, roughly
// in the range [-10, 10].
func (g *Generator) heightNoise(x, z float32) float32 {
	return g.noise.Eval2(x*0.1, z*0.1)*3 +
		g.noise.Eval2(x*0.05, z*0.05)*5 +
		g.noise.Eval2(x*0.02, z*0.03)*2
}

// biomeAt picks the biome for a chunk from coarse noise.
func (g *Generator) biomeAt(cx, cz int) Biome {
	n := g.heightNoise(float32(cx)*100, float32(cz)*100)
	switch {
	case n > 4:
		return BiomeMountains
	case n > 2:
		return BiomeHills
	case n > 0:
		return BiomePlains
	case n > -2:
		return BiomeForest
	default:
		return BiomeDesert
	}
}

// Generate fills a chunksX by chunksZ area of chunks at chunk layer y=0
// with biome terrain and structures. It only writes voxels; meshing,
// neighbor linking, and rebuilds stay with the caller.
func (g *Generator) Generate(w *world.World, chunksX, chunksZ int) {
	for cz := 0; cz < chunksZ; cz++ {
		for cx := 0; cx < chunksX; cx++ {
			g.GenerateChunk(w.GetOrCreateChunk(world.ChunkCoord{X: cx, Y: 0, Z: cz}))
		}
	}
}

// GenerateChunk fills a single chunk with terrain for its biome and places
// that biome's structures.
func (g *Generator) GenerateChunk(c *world.Chunk) {
	coord := c.Coord()
	biome := g.biomeAt(coord.X, coord.Z)

	for x := 0; x < world.ChunkSizeX; x++ {
		for z := 0; z < world.ChunkSizeZ; z++ {
			worldX := float32(coord.X*world.ChunkSizeX + x)
			worldZ := float32(coord.Z*world.ChunkSizeZ + z)

			baseHeight := 4
			offset := g.heightNoise(worldX, worldZ)

			switch biome {
			case BiomeMountains:
				offset *= 2.5
				baseHeight = 8
			case BiomeHills:
				offset *= 1.5
				baseHeight = 6
			case BiomePlains:
				offset *= 0.5
				baseHeight = 4
			case BiomeForest:
				offset *= 0.8
				baseHeight = 5
			case BiomeDesert:
				offset = float32(math.Abs(float64(offset))) * 0.3
				baseHeight = 3
			}

			height := baseHeight + int(offset)
			if height < 1 {
				height = 1
			}
			if height > maxTerrainHeight {
				height = maxTerrainHeight
			}

			// Bedrock-style floor, then stone up to the top layers.
			c.SetVoxel(x, 0, z, world.Stone)
			for y := 1; y < height-2; y++ {
				c.SetVoxel(x, y, z, world.Stone)
			}

			switch {
			case biome == BiomeDesert:
				c.SetVoxel(x, height-2, z, world.Sand)
				c.SetVoxel(x, height-1, z, world.Sand)
			case biome == BiomeMountains && height > 15:
				c.SetVoxel(x, height-2, z, world.Stone)
				c.SetVoxel(x, height-1, z, world.Stone)
			default:
				c.SetVoxel(x, height-2, z, world.Dirt)
				c.SetVoxel(x, height-1, z, world.Grass)
			}

			// Flood low terrain up to sea level, with sandy beds.
			if height < WaterLevel {
				for y := height; y < WaterLevel; y++ {
					c.SetVoxel(x, y, z, world.Water)
				}
				if height >= 2 {
					c.SetVoxel(x, height-1, z, world.Sand)
				}
			}
		}
	}

	switch biome {
	case BiomeForest:
		g.addTrees(c, 15, 4, 7)
	case BiomePlains:
		g.addTrees(c, 5, 3, 5)
	case BiomeHills:
		g.addTrees(c, 8, 4, 6)
		if (coord.X+coord.Z)%3 == 0 {
			g.addHouse(c)
		}
	case BiomeMountains:
		if (coord.X+coord.Z)%4 == 0 {
			g.addTower(c, true)
		}
	case BiomeDesert:
		if (coord.X+coord.Z)%5 == 0 {
			g.addTemple(c)
		}
	}
}

// surfaceHeight returns the y just above the highest solid voxel of a
// column, scanning down past air and water.
func surfaceHeight(c *world.Chunk, x, z int) int {
	for y := world.ChunkSizeY - 1; y >= 0; y-- {
		v := c.GetVoxel(x, y, z)
		if v != world.Air && v != world.Water {
			return y + 1
		}
	}
	return 0
}
