package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const depthVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;

uniform mat4 lightSpaceMatrix;
uniform mat4 model;

void main() {
    gl_Position = lightSpaceMatrix * model * vec4(aPos, 1.0);
}
`

const depthFragmentShader = `#version 410 core
void main() {
}
`

// ShadowMap renders the scene depth from the sun's point of view into a
// dedicated framebuffer, for sampling during the main pass.
type ShadowMap struct {
	width, height int32

	fbo          uint32
	depthTexture uint32
	shader       *Shader

	lightSpace mgl32.Mat4

	savedViewport [4]int32
}

// NewShadowMap allocates the depth texture and framebuffer.
func NewShadowMap(width, height int32) (*ShadowMap, error) {
	sm := &ShadowMap{width: width, height: height}

	gl.GenTextures(1, &sm.depthTexture)
	gl.BindTexture(gl.TEXTURE_2D, sm.depthTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT, width, height,
		0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	// Everything outside the light frustum reads as fully lit.
	border := [4]float32{1, 1, 1, 1}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])

	gl.GenFramebuffers(1, &sm.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, sm.depthTexture, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		sm.Delete()
		return nil, fmt.Errorf("shadow framebuffer incomplete: 0x%x", status)
	}

	shader, err := NewShader(depthVertexShader, depthFragmentShader)
	if err != nil {
		sm.Delete()
		return nil, fmt.Errorf("depth shader: %w", err)
	}
	sm.shader = shader

	return sm, nil
}

// UpdateLightSpace recomputes the light-space transform for a directional
// light shining along lightDir onto a scene bounded by a sphere at center
// with the given radius.
func (sm *ShadowMap) UpdateLightSpace(lightDir, center mgl32.Vec3, radius float32) {
	dir := lightDir.Normalize()

	// lightDir points from the light toward the scene, so the light sits
	// back along the opposite direction.
	lightPos := center.Add(dir.Mul(radius * 3.0))
	lightView := mgl32.LookAtV(lightPos, center, mgl32.Vec3{0, 1, 0})

	// Wider than the scene radius so long evening shadows stay inside
	// the frustum.
	orthoSize := radius * 2.2
	lightProjection := mgl32.Ortho(-orthoSize, orthoSize, -orthoSize, orthoSize, 0.1, radius*8.0)

	sm.lightSpace = lightProjection.Mul4(lightView)
}

// LightSpaceMatrix returns the current light projection * view transform.
func (sm *ShadowMap) LightSpaceMatrix() mgl32.Mat4 {
	return sm.lightSpace
}

// Begin switches rendering to the depth framebuffer. Meshes drawn until End
// only need their model matrix set on Shader().
func (sm *ShadowMap) Begin() {
	gl.GetIntegerv(gl.VIEWPORT, &sm.savedViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, sm.fbo)
	gl.Viewport(0, 0, sm.width, sm.height)
	gl.Clear(gl.DEPTH_BUFFER_BIT)

	// Slope-scaled offset against shadow acne.
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(4.0, 4.0)

	sm.shader.Use()
	sm.shader.SetMat4("lightSpaceMatrix", sm.lightSpace)
}

// End restores the default framebuffer and viewport.
func (sm *ShadowMap) End() {
	gl.Disable(gl.POLYGON_OFFSET_FILL)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(sm.savedViewport[0], sm.savedViewport[1], sm.savedViewport[2], sm.savedViewport[3])
}

// Shader returns the depth-only shader bound during the shadow pass.
func (sm *ShadowMap) Shader() *Shader {
	return sm.shader
}

// BindTexture binds the depth texture to the given texture unit.
func (sm *ShadowMap) BindTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, sm.depthTexture)
}

// Delete frees the GL objects.
func (sm *ShadowMap) Delete() {
	if sm.shader != nil {
		sm.shader.Delete()
		sm.shader = nil
	}
	if sm.fbo != 0 {
		gl.DeleteFramebuffers(1, &sm.fbo)
		sm.fbo = 0
	}
	if sm.depthTexture != 0 {
		gl.DeleteTextures(1, &sm.depthTexture)
		sm.depthTexture = 0
	}
}
