package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a free-flying perspective camera driven by yaw/pitch angles.
type Camera struct {
	Position mgl32.Vec3

	Yaw   float32 // degrees, -90 looks down -Z
	Pitch float32 // degrees, clamped to avoid gimbal flip

	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
}

// NewCamera creates a camera with the given projection parameters.
func NewCamera(fov, aspect, near, far float32) *Camera {
	c := &Camera{
		FOV:         fov,
		AspectRatio: aspect,
		NearPlane:   near,
		FarPlane:    far,
		Yaw:         -90,
	}
	c.updateVectors()
	return c
}

// SetRotation sets yaw and pitch directly, in degrees.
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = pitch
	c.clampPitch()
	c.updateVectors()
}

// Rotate applies mouse-look deltas, in degrees.
func (c *Camera) Rotate(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	c.clampPitch()
	c.updateVectors()
}

func (c *Camera) clampPitch() {
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	c.front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// MoveForward moves along the view direction.
func (c *Camera) MoveForward(distance float32) {
	c.Position = c.Position.Add(c.front.Mul(distance))
}

// MoveRight strafes along the camera's right vector.
func (c *Camera) MoveRight(distance float32) {
	c.Position = c.Position.Add(c.right.Mul(distance))
}

// MoveUp moves along world up.
func (c *Camera) MoveUp(distance float32) {
	c.Position = c.Position.Add(mgl32.Vec3{0, distance, 0})
}

// ViewMatrix returns the look-at view transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	target := c.Position.Add(c.front)
	return mgl32.LookAtV(c.Position, target, c.up)
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}
