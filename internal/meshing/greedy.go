package meshing

import (
	"voxelgame/internal/world"
)

type axis uint8

const (
	axisX axis = iota
	axisY
	axisZ
)

// basis maps a direction's mask coordinates (u, v) and slice index w back
// onto (x, y, z). w is the axis normal to the face, u and v span the face
// plane. Merging is always 2D within one slice; this permutation lets a
// single merge loop serve all six directions.
type basis struct {
	u, v, w axis
}

var directionBasis = [world.DirectionCount]basis{
	world.Front:  {axisX, axisY, axisZ},
	world.Back:   {axisX, axisY, axisZ},
	world.Top:    {axisX, axisZ, axisY},
	world.Bottom: {axisX, axisZ, axisY},
	world.Right:  {axisZ, axisY, axisX},
	world.Left:   {axisZ, axisY, axisX},
}

func (b basis) toXYZ(u, v, w int) (x, y, z int) {
	var p [3]int
	p[b.u] = u
	p[b.v] = v
	p[b.w] = w
	return p[0], p[1], p[2]
}

var chunkSizes = [3]int{world.ChunkSizeX, world.ChunkSizeY, world.ChunkSizeZ}

// BuildGreedyMesh merges the chunk's visible faces into maximal same-type
// rectangles. For each of the six directions it scans 2D slices
// perpendicular to the face normal, builds a visibility+type mask, and
// greedily grows each unvisited cell first along u, then along v. The scan
// is row-major and never backtracks, so the partition is deterministic but
// not necessarily the global minimum rectangle count.
//
// origin is the chunk's world-space corner; emitted faces carry world
// coordinates.
func BuildGreedyMesh(sample Sampler, visible Visibility, origin [3]int) []MergedFace {
	var faces []MergedFace
	for _, dir := range world.Directions {
		faces = appendGreedyFaces(faces, dir, sample, visible, origin)
	}
	return faces
}

func appendGreedyFaces(faces []MergedFace, dir world.Direction, sample Sampler, visible Visibility, origin [3]int) []MergedFace {
	b := directionBasis[dir]
	sizeU := chunkSizes[b.u]
	sizeV := chunkSizes[b.v]
	sizeW := chunkSizes[b.w]

	mask := make([]bool, sizeU*sizeV)
	types := make([]world.VoxelType, sizeU*sizeV)

	for w := 0; w < sizeW; w++ {
		// Build the slice mask: which faces in this plane need rendering,
		// and of what type.
		for v := 0; v < sizeV; v++ {
			for u := 0; u < sizeU; u++ {
				x, y, z := b.toXYZ(u, v, w)
				i := v*sizeU + u
				if visible(x, y, z, dir) {
					mask[i] = true
					types[i] = sample(x, y, z)
				} else {
					mask[i] = false
				}
			}
		}

		// Merge: row-major scan, grow width along u, then height along v.
		for v := 0; v < sizeV; v++ {
			for u := 0; u < sizeU; u++ {
				i := v*sizeU + u
				if !mask[i] {
					continue
				}
				t := types[i]

				width := 1
				for u+width < sizeU && mask[i+width] && types[i+width] == t {
					width++
				}

				height := 1
			grow:
				for v+height < sizeV {
					row := (v+height)*sizeU + u
					for k := 0; k < width; k++ {
						if !mask[row+k] || types[row+k] != t {
							break grow
						}
					}
					height++
				}

				x, y, z := b.toXYZ(u, v, w)
				faces = append(faces, MergedFace{
					Direction: dir,
					Type:      t,
					X:         origin[0] + x,
					Y:         origin[1] + y,
					Z:         origin[2] + z,
					Width:     width,
					Height:    height,
				})

				// Mark the merged rectangle visited.
				for dv := 0; dv < height; dv++ {
					row := (v+dv)*sizeU + u
					for du := 0; du < width; du++ {
						mask[row+du] = false
					}
				}
			}
		}
	}
	return faces
}
