package gen

import (
	"math"

	"voxelgame/internal/world"
)

// addTrees scatters count trees over the chunk at random columns, each
// with a wood trunk and a spherical leaf canopy. Underwater columns are
// skipped.
func (g *Generator) addTrees(c *world.Chunk, count, minHeight, maxHeight int) {
	for i := 0; i < count; i++ {
		x := g.rng.Intn(world.ChunkSizeX)
		z := g.rng.Intn(world.ChunkSizeZ)

		y := surfaceHeight(c, x, z)
		if c.GetVoxel(x, y, z) == world.Water {
			continue
		}

		treeHeight := minHeight + g.rng.Intn(maxHeight-minHeight+1)

		for dy := 0; dy < treeHeight; dy++ {
			c.SetVoxel(x, y+dy, z, world.Wood)
		}

		for dy := treeHeight - 3; dy < treeHeight+2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				for dz := -2; dz <= 2; dz++ {
					lx, ly, lz := x+dx, y+dy, z+dz
					if !c.IsValidPosition(lx, ly, lz) {
						continue
					}
					dist := math.Sqrt(float64(dx*dx + (dy-treeHeight+1)*(dy-treeHeight+1) + dz*dz))
					if dist <= 2.5 {
						// Leave the trunk intact.
						if !(dx == 0 && dz == 0 && dy < treeHeight) {
							c.SetVoxel(lx, ly, lz, world.Leaves)
						}
					}
				}
			}
		}
	}
}

// addHouse places a hollow wood house with a door and pyramid roof at the
// chunk center.
func (g *Generator) addHouse(c *world.Chunk) {
	centerX := world.ChunkSizeX / 2
	centerZ := world.ChunkSizeZ / 2

	baseY := surfaceHeight(c, centerX, centerZ)
	if c.GetVoxel(centerX, baseY, centerZ) == world.Water {
		return
	}

	width := 5
	depth := 6
	height := 4

	for y := baseY; y < baseY+height; y++ {
		for x := centerX - width/2; x <= centerX+width/2; x++ {
			for z := centerZ - depth/2; z <= centerZ+depth/2; z++ {
				if x == centerX-width/2 || x == centerX+width/2 ||
					z == centerZ-depth/2 || z == centerZ+depth/2 {
					c.SetVoxel(x, y, z, world.Wood)
				}
			}
		}
	}

	// Door opening on the near wall.
	c.SetVoxel(centerX, baseY, centerZ-depth/2, world.Air)
	c.SetVoxel(centerX, baseY+1, centerZ-depth/2, world.Air)

	for layer := 0; layer <= width/2+1; layer++ {
		for x := centerX - width/2 + layer; x <= centerX+width/2-layer; x++ {
			for z := centerZ - depth/2 + layer; z <= centerZ+depth/2-layer; z++ {
				c.SetVoxel(x, baseY+height+layer, z, world.Wood)
			}
		}
	}
}

// addTower places a hollow stone-and-sand tower with window openings and
// battlements; mountain towers are taller.
func (g *Generator) addTower(c *world.Chunk, mountain bool) {
	centerX := world.ChunkSizeX / 2
	centerZ := world.ChunkSizeZ / 2

	baseY := surfaceHeight(c, centerX, centerZ)
	if c.GetVoxel(centerX, baseY, centerZ) == world.Water {
		return
	}

	width := 5
	towerHeight := 8
	if mountain {
		towerHeight = 12
	}

	for y := baseY; y < baseY+towerHeight; y++ {
		for x := centerX - width/2; x <= centerX+width/2; x++ {
			for z := centerZ - width/2; z <= centerZ+width/2; z++ {
				if x != centerX-width/2 && x != centerX+width/2 &&
					z != centerZ-width/2 && z != centerZ+width/2 {
					continue
				}

				if y%2 == 0 {
					c.SetVoxel(x, y, z, world.Stone)
				} else {
					c.SetVoxel(x, y, z, world.Sand)
				}

				// Window slots on the wall midlines.
				if y%3 == 0 && y > baseY+1 &&
					((x == centerX && (z == centerZ-width/2 || z == centerZ+width/2)) ||
						(z == centerZ && (x == centerX-width/2 || x == centerX+width/2))) {
					c.SetVoxel(x, y, z, world.Air)
				}
			}
		}
	}

	for x := centerX - width/2; x <= centerX+width/2; x++ {
		for z := centerZ - width/2; z <= centerZ+width/2; z++ {
			if x == centerX-width/2 || x == centerX+width/2 ||
				z == centerZ-width/2 || z == centerZ+width/2 {
				if (x+z)%2 == 0 {
					c.SetVoxel(x, baseY+towerHeight, z, world.Stone)
				}
			}
		}
	}
}

// addTemple places a hollow-shelled sand pyramid with an entrance on a
// platform at the chunk center.
func (g *Generator) addTemple(c *world.Chunk) {
	centerX := world.ChunkSizeX / 2
	centerZ := world.ChunkSizeZ / 2

	baseY := surfaceHeight(c, centerX, centerZ)
	if c.GetVoxel(centerX, baseY, centerZ) == world.Water {
		return
	}

	width := 9
	height := 6

	for x := centerX - width/2; x <= centerX+width/2; x++ {
		for z := centerZ - width/2; z <= centerZ+width/2; z++ {
			c.SetVoxel(x, baseY, z, world.Sand)
		}
	}

	for layer := 0; layer < height; layer++ {
		for x := centerX - width/2 + layer; x <= centerX+width/2-layer; x++ {
			for z := centerZ - width/2 + layer; z <= centerZ+width/2-layer; z++ {
				// Outer shell only.
				if layer == height-1 || x == centerX-width/2+layer || x == centerX+width/2-layer ||
					z == centerZ-width/2+layer || z == centerZ+width/2-layer {
					c.SetVoxel(x, baseY+1+layer, z, world.Sand)
				}
			}
		}
	}

	entranceWidth := 2
	for x := centerX - entranceWidth/2; x <= centerX+entranceWidth/2; x++ {
		for y := baseY + 1; y < baseY+4; y++ {
			c.SetVoxel(x, y, centerZ-width/2, world.Air)
		}
	}
}
