package meshing

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxelgame/internal/world"
)

func TestAppendMergedFaceQuadShape(t *testing.T) {
	var buf Buffer
	buf.AppendMergedFace(MergedFace{
		Direction: world.Top,
		Type:      world.Grass,
		X:         3, Y: 7, Z: 2,
		Width: 4, Height: 5,
	})

	if len(buf.Vertices) != 4 {
		t.Fatalf("expected 4 vertices per quad, got %d", len(buf.Vertices))
	}
	if len(buf.Indices) != 6 {
		t.Fatalf("expected 6 indices per quad, got %d", len(buf.Indices))
	}
	want := []uint32{0, 1, 2, 0, 2, 3}
	for i, idx := range buf.Indices {
		if idx != want[i] {
			t.Fatalf("index %d: expected %d, got %d", i, want[i], idx)
		}
	}
}

func TestAppendMergedFaceIndexBase(t *testing.T) {
	var buf Buffer
	buf.AppendFace(Face{Direction: world.Front, Type: world.Stone})
	buf.AppendFace(Face{Direction: world.Back, Type: world.Stone})

	if len(buf.Indices) != 12 {
		t.Fatalf("expected 12 indices, got %d", len(buf.Indices))
	}
	// Second quad indexes its own four vertices.
	for _, idx := range buf.Indices[6:] {
		if idx < 4 || idx > 7 {
			t.Fatalf("second quad index out of range: %d", idx)
		}
	}
}

func TestFaceNormals(t *testing.T) {
	for _, dir := range world.Directions {
		var buf Buffer
		buf.AppendMergedFace(MergedFace{Direction: dir, Type: world.Stone, Width: 1, Height: 1})
		for _, v := range buf.Vertices {
			if v.Normal != dir.Normal() {
				t.Errorf("%v: expected normal %v, got %v", dir, dir.Normal(), v.Normal)
			}
		}
	}
}

// Each direction's quad must lie in the plane one voxel along its normal
// for positive directions, at the anchor for negative ones, and span
// (Width, Height) across the two in-plane axes.
func TestMergedFaceExtents(t *testing.T) {
	const w, h = 3, 2
	cases := []struct {
		dir          world.Direction
		planeAxis    int
		planeValue   float32
		spanX, spanY float32
		spanZ        float32
	}{
		{world.Front, 2, 1, w, h, 0},
		{world.Back, 2, 0, w, h, 0},
		{world.Top, 1, 1, w, 0, h},
		{world.Bottom, 1, 0, w, 0, h},
		{world.Right, 0, 1, 0, h, w},
		{world.Left, 0, 0, 0, h, w},
	}

	for _, tc := range cases {
		var buf Buffer
		buf.AppendMergedFace(MergedFace{Direction: tc.dir, Type: world.Stone, Width: w, Height: h})

		min := mgl32.Vec3{1e9, 1e9, 1e9}
		max := mgl32.Vec3{-1e9, -1e9, -1e9}
		for _, v := range buf.Vertices {
			for i := 0; i < 3; i++ {
				if v.Position[i] < min[i] {
					min[i] = v.Position[i]
				}
				if v.Position[i] > max[i] {
					max[i] = v.Position[i]
				}
			}
		}

		if min[tc.planeAxis] != tc.planeValue || max[tc.planeAxis] != tc.planeValue {
			t.Errorf("%v: expected flat plane at %v on axis %d, got [%v, %v]",
				tc.dir, tc.planeValue, tc.planeAxis, min[tc.planeAxis], max[tc.planeAxis])
		}
		span := max.Sub(min)
		want := mgl32.Vec3{tc.spanX, tc.spanY, tc.spanZ}
		if span != want {
			t.Errorf("%v: expected span %v, got %v", tc.dir, want, span)
		}
	}
}

func TestFaceUVsCoverExtent(t *testing.T) {
	var buf Buffer
	buf.AppendMergedFace(MergedFace{Direction: world.Top, Type: world.Grass, Width: 4, Height: 7})

	var maxU, maxV float32
	for _, v := range buf.Vertices {
		if v.UV[0] > maxU {
			maxU = v.UV[0]
		}
		if v.UV[1] > maxV {
			maxV = v.UV[1]
		}
	}
	if maxU != 4 || maxV != 7 {
		t.Errorf("expected UVs to reach (4, 7), got (%v, %v)", maxU, maxV)
	}
}

func TestFaceColors(t *testing.T) {
	var buf Buffer
	buf.AppendFace(Face{Direction: world.Front, Type: world.Water})
	buf.AppendFace(Face{Direction: world.Front, Type: world.VoxelType(200)})

	if got := buf.Vertices[0].Color; got != (mgl32.Vec4{0.2, 0.5, 0.9, 0.7}) {
		t.Errorf("water color: got %v", got)
	}
	// Unregistered types fall back to magenta instead of failing.
	if got := buf.Vertices[4].Color; got != world.FallbackColor {
		t.Errorf("unknown type color: got %v, want %v", got, world.FallbackColor)
	}
}

func TestInterleaveLayout(t *testing.T) {
	var buf Buffer
	buf.AppendMergedFace(MergedFace{
		Direction: world.Front,
		Type:      world.Stone,
		X:         1, Y: 2, Z: 3,
		Width: 1, Height: 1,
	})

	data := buf.Interleave()
	if len(data) != 4*FloatsPerVertex {
		t.Fatalf("expected %d floats, got %d", 4*FloatsPerVertex, len(data))
	}

	v := buf.Vertices[0]
	want := []float32{
		v.Position[0], v.Position[1], v.Position[2],
		v.Normal[0], v.Normal[1], v.Normal[2],
		v.UV[0], v.UV[1],
		v.Color[0], v.Color[1], v.Color[2], v.Color[3],
	}
	for i, f := range want {
		if data[i] != f {
			t.Fatalf("float %d: expected %v, got %v", i, f, data[i])
		}
	}
}

func TestBuildBuffer(t *testing.T) {
	faces := []MergedFace{
		{Direction: world.Top, Type: world.Grass, Width: 2, Height: 2},
		{Direction: world.Front, Type: world.Dirt, Width: 1, Height: 3},
		{Direction: world.Left, Type: world.Stone, Width: 4, Height: 1},
	}
	buf := BuildBuffer(faces)

	if buf.QuadCount() != len(faces) {
		t.Errorf("expected %d quads, got %d", len(faces), buf.QuadCount())
	}
	if buf.Empty() {
		t.Error("buffer with faces must not be empty")
	}
}
