package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelgame/internal/world"
)

// Vertex is one corner of an emitted quad.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
	Color    mgl32.Vec4
}

// FloatsPerVertex is the interleaved float32 stride of a Vertex
// (position 3 + normal 3 + uv 2 + color 4).
const FloatsPerVertex = 12

// Buffer is GPU-ready geometry: a vertex list plus triangle-list indices,
// two CCW triangles per quad. It is rebuilt wholesale on every mesh build;
// an empty buffer is a valid outcome.
type Buffer struct {
	Vertices []Vertex
	Indices  []uint32
}

// QuadCount returns the number of emitted quads.
func (b *Buffer) QuadCount() int {
	return len(b.Vertices) / 4
}

// Empty reports whether the buffer holds no geometry.
func (b *Buffer) Empty() bool {
	return len(b.Indices) == 0
}

func (b *Buffer) appendQuad(quad [4]Vertex) {
	base := uint32(len(b.Vertices))
	b.Vertices = append(b.Vertices, quad[:]...)
	b.Indices = append(b.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

// AppendFace emits the 4 vertices and 6 indices of a single unit face.
func (b *Buffer) AppendFace(f Face) {
	b.AppendMergedFace(MergedFace{
		Direction: f.Direction,
		Type:      f.Type,
		X:         f.X,
		Y:         f.Y,
		Z:         f.Z,
		Width:     1,
		Height:    1,
	})
}

// AppendMergedFace emits a merged rectangle as one quad. The two in-plane
// edges are scaled by (Width, Height); the along-normal offset stays one
// voxel. UVs cover (Width, Height) so a tiled texture would repeat per
// voxel; the vertex layout per direction keeps outward normals and
// consistent orientation.
func (b *Buffer) AppendMergedFace(f MergedFace) {
	x := float32(f.X)
	y := float32(f.Y)
	z := float32(f.Z)
	w := float32(f.Width)
	h := float32(f.Height)

	normal := f.Direction.Normal()
	color := f.Type.Color()

	vert := func(px, py, pz, u, v float32) Vertex {
		return Vertex{
			Position: mgl32.Vec3{px, py, pz},
			Normal:   normal,
			UV:       mgl32.Vec2{u, v},
			Color:    color,
		}
	}

	var quad [4]Vertex
	switch f.Direction {
	case world.Front: // +Z, width on x, height on y
		quad = [4]Vertex{
			vert(x, y, z+1, 0, 0),
			vert(x+w, y, z+1, w, 0),
			vert(x+w, y+h, z+1, w, h),
			vert(x, y+h, z+1, 0, h),
		}
	case world.Back: // -Z
		quad = [4]Vertex{
			vert(x, y, z, 0, 0),
			vert(x, y+h, z, 0, h),
			vert(x+w, y+h, z, w, h),
			vert(x+w, y, z, w, 0),
		}
	case world.Top: // +Y, width on x, height on z
		quad = [4]Vertex{
			vert(x, y+1, z, 0, 0),
			vert(x, y+1, z+h, 0, h),
			vert(x+w, y+1, z+h, w, h),
			vert(x+w, y+1, z, w, 0),
		}
	case world.Bottom: // -Y
		quad = [4]Vertex{
			vert(x, y, z, 0, 0),
			vert(x+w, y, z, w, 0),
			vert(x+w, y, z+h, w, h),
			vert(x, y, z+h, 0, h),
		}
	case world.Right: // +X, width on z, height on y
		quad = [4]Vertex{
			vert(x+1, y, z, 0, 0),
			vert(x+1, y+h, z, 0, h),
			vert(x+1, y+h, z+w, w, h),
			vert(x+1, y, z+w, w, 0),
		}
	default: // world.Left, -X
		quad = [4]Vertex{
			vert(x, y, z+w, 0, 0),
			vert(x, y, z, w, 0),
			vert(x, y+h, z, w, h),
			vert(x, y+h, z+w, 0, h),
		}
	}

	b.appendQuad(quad)
}

// BuildBuffer converts merged face descriptors into a vertex/index buffer.
func BuildBuffer(faces []MergedFace) *Buffer {
	buf := &Buffer{
		Vertices: make([]Vertex, 0, len(faces)*4),
		Indices:  make([]uint32, 0, len(faces)*6),
	}
	for _, f := range faces {
		buf.AppendMergedFace(f)
	}
	return buf
}

// Interleave flattens the buffer into the position/normal/uv/color float
// layout the renderer uploads.
func (b *Buffer) Interleave() []float32 {
	out := make([]float32, 0, len(b.Vertices)*FloatsPerVertex)
	for _, v := range b.Vertices {
		out = append(out,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Normal.X(), v.Normal.Y(), v.Normal.Z(),
			v.UV.X(), v.UV.Y(),
			v.Color.X(), v.Color.Y(), v.Color.Z(), v.Color.W(),
		)
	}
	return out
}
