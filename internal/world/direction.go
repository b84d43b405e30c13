package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Direction identifies one of the six faces of a voxel.
type Direction uint8

const (
	Front  Direction = iota // +Z
	Back                    // -Z
	Top                     // +Y
	Bottom                  // -Y
	Right                   // +X
	Left                    // -X

	DirectionCount = 6
)

// Directions lists the six face directions in mesh emission order.
var Directions = [DirectionCount]Direction{Front, Back, Top, Bottom, Right, Left}

// Offset returns the unit step toward the neighbor cell across this face.
func (d Direction) Offset() (dx, dy, dz int) {
	switch d {
	case Front:
		return 0, 0, 1
	case Back:
		return 0, 0, -1
	case Top:
		return 0, 1, 0
	case Bottom:
		return 0, -1, 0
	case Right:
		return 1, 0, 0
	default: // Left
		return -1, 0, 0
	}
}

// Normal returns the outward face normal.
func (d Direction) Normal() mgl32.Vec3 {
	dx, dy, dz := d.Offset()
	return mgl32.Vec3{float32(dx), float32(dy), float32(dz)}
}

// Opposite returns the direction facing back at this one.
func (d Direction) Opposite() Direction {
	switch d {
	case Front:
		return Back
	case Back:
		return Front
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Right:
		return Left
	default:
		return Right
	}
}

// directionFromOffset maps a unit axis step to its direction. Diagonal or
// zero offsets report false.
func directionFromOffset(dx, dy, dz int) (Direction, bool) {
	for _, d := range Directions {
		ox, oy, oz := d.Offset()
		if dx == ox && dy == oy && dz == oz {
			return d, true
		}
	}
	return Front, false
}

func (d Direction) String() string {
	switch d {
	case Front:
		return "front"
	case Back:
		return "back"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	case Left:
		return "left"
	}
	return "invalid"
}
