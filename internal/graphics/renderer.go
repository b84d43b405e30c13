package graphics

import (
	"fmt"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"voxelgame/internal/config"
	"voxelgame/internal/meshing"
	"voxelgame/internal/profiling"
	"voxelgame/internal/world"
)

const sceneVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoords;
layout (location = 3) in vec4 aColor;

out vec3 FragPos;
out vec3 Normal;
out vec2 TexCoords;
out vec4 Color;
out vec4 FragPosLightSpace;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform mat4 lightSpaceMatrix;

void main() {
    FragPos = vec3(model * vec4(aPos, 1.0));
    Normal = mat3(transpose(inverse(model))) * aNormal;
    TexCoords = aTexCoords;
    Color = aColor;
    FragPosLightSpace = lightSpaceMatrix * vec4(FragPos, 1.0);

    gl_Position = projection * view * model * vec4(aPos, 1.0);
}
`

const sceneFragmentShader = `#version 410 core
in vec3 FragPos;
in vec3 Normal;
in vec2 TexCoords;
in vec4 Color;
in vec4 FragPosLightSpace;

out vec4 FragColor;

uniform vec3 lightDir;
uniform vec3 lightColor;
uniform vec3 viewPos;
uniform bool shadowsEnabled;
uniform sampler2D shadowMap;

float ShadowCalculation(vec4 fragPosLightSpace, vec3 norm, vec3 lightDirection) {
    vec3 projCoords = fragPosLightSpace.xyz / fragPosLightSpace.w;
    projCoords = projCoords * 0.5 + 0.5;
    if (projCoords.z > 1.0) {
        return 0.0;
    }

    float closestDepth = texture(shadowMap, projCoords.xy).r;
    float currentDepth = projCoords.z;

    float bias = max(0.002 * (1.0 - dot(norm, lightDirection)), 0.0005);
    return currentDepth - bias > closestDepth ? 1.0 : 0.0;
}

void main() {
    // Ambient
    float ambientStrength = 0.3;
    vec3 ambient = ambientStrength * lightColor;

    // Diffuse
    vec3 norm = normalize(Normal);
    vec3 lightDirection = normalize(lightDir);
    float diff = max(dot(norm, lightDirection), 0.0);
    vec3 diffuse = diff * lightColor;

    // Specular
    float specularStrength = 0.1;
    vec3 viewDir = normalize(viewPos - FragPos);
    vec3 reflectDir = reflect(-lightDirection, norm);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), 32);
    vec3 specular = specularStrength * spec * lightColor;

    float shadow = 0.0;
    if (shadowsEnabled) {
        shadow = ShadowCalculation(FragPosLightSpace, norm, lightDirection);
    }

    vec3 result = (ambient + (1.0 - shadow) * (diffuse + specular)) * Color.rgb;
    FragColor = vec4(result, Color.a);
}
`

// Renderer draws the world's chunk meshes with a directional sun light and
// a depth-mapped shadow pass.
type Renderer struct {
	shader *Shader
	shadow *ShadowMap

	meshes map[world.ChunkCoord]*Mesh

	lightDir   mgl32.Vec3
	lightColor mgl32.Vec3

	sceneCenter mgl32.Vec3
	sceneRadius float32
}

// NewRenderer compiles the scene shader and allocates the shadow map. The
// caller must have a current GL context.
func NewRenderer(shadowSize int32) (*Renderer, error) {
	shader, err := NewShader(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}

	shadow, err := NewShadowMap(shadowSize, shadowSize)
	if err != nil {
		shader.Delete()
		return nil, fmt.Errorf("shadow map: %w", err)
	}

	return &Renderer{
		shader:     shader,
		shadow:     shadow,
		meshes:     make(map[world.ChunkCoord]*Mesh),
		lightDir:   mgl32.Vec3{0.5, 1, 0.3}.Normalize(),
		lightColor: mgl32.Vec3{1, 0.95, 0.9},
	}, nil
}

// SetLightDirection sets the direction from the scene toward the sun.
func (r *Renderer) SetLightDirection(dir mgl32.Vec3) {
	r.lightDir = dir.Normalize()
}

// LightDirection returns the current sun direction.
func (r *Renderer) LightDirection() mgl32.Vec3 {
	return r.lightDir
}

// UploadChunk meshes the chunk and replaces its GPU geometry. Empty chunks
// drop their mesh entirely. The chunk is marked clean afterwards.
func (r *Renderer) UploadChunk(c *world.Chunk) {
	coord := c.Coord()
	if old, ok := r.meshes[coord]; ok {
		old.Delete()
		delete(r.meshes, coord)
	}

	buf := meshing.BuildChunkMesh(c)
	if mesh := NewMesh(buf); mesh != nil {
		r.meshes[coord] = mesh
	}
	c.SetClean()
	r.updateSceneBounds()
}

// RebuildDirty re-uploads every dirty chunk and returns how many it rebuilt.
func (r *Renderer) RebuildDirty(w *world.World) int {
	defer profiling.Track("renderer.RebuildDirty")()

	rebuilt := 0
	for _, c := range w.All() {
		if c.IsDirty() {
			r.UploadChunk(c)
			rebuilt++
		}
	}
	return rebuilt
}

// updateSceneBounds recomputes the bounding sphere of all uploaded chunks,
// used to fit the shadow frustum.
func (r *Renderer) updateSceneBounds() {
	if len(r.meshes) == 0 {
		r.sceneCenter = mgl32.Vec3{}
		r.sceneRadius = 1
		return
	}

	minX, minZ := math.MaxInt, math.MaxInt
	maxX, maxZ := math.MinInt, math.MinInt
	for coord := range r.meshes {
		if coord.X < minX {
			minX = coord.X
		}
		if coord.X > maxX {
			maxX = coord.X
		}
		if coord.Z < minZ {
			minZ = coord.Z
		}
		if coord.Z > maxZ {
			maxZ = coord.Z
		}
	}

	lowX := float32(minX * world.ChunkSizeX)
	lowZ := float32(minZ * world.ChunkSizeZ)
	highX := float32((maxX + 1) * world.ChunkSizeX)
	highZ := float32((maxZ + 1) * world.ChunkSizeZ)
	highY := float32(world.ChunkSizeY)

	r.sceneCenter = mgl32.Vec3{(lowX + highX) / 2, highY / 4, (lowZ + highZ) / 2}
	half := mgl32.Vec3{(highX - lowX) / 2, highY / 4, (highZ - lowZ) / 2}
	r.sceneRadius = half.Len()
	if r.sceneRadius < 1 {
		r.sceneRadius = 1
	}
}

// Render draws all chunk meshes from the camera, running the shadow depth
// pass first when enabled.
func (r *Renderer) Render(cam *Camera) {
	defer profiling.Track("renderer.Render")()

	shadows := config.ShadowsEnabled()
	if shadows {
		r.renderShadowPass()
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	// Quad winding is authored for visibility from both sides.
	gl.Disable(gl.CULL_FACE)

	r.shader.Use()
	r.shader.SetMat4("model", mgl32.Ident4())
	r.shader.SetMat4("view", cam.ViewMatrix())
	r.shader.SetMat4("projection", cam.ProjectionMatrix())
	r.shader.SetMat4("lightSpaceMatrix", r.shadow.LightSpaceMatrix())
	r.shader.SetVec3("lightDir", r.lightDir)
	r.shader.SetVec3("lightColor", r.lightColor)
	r.shader.SetVec3("viewPos", cam.Position)
	r.shader.SetBool("shadowsEnabled", shadows)
	r.shader.SetInt("shadowMap", 0)
	r.shadow.BindTexture(0)

	for _, mesh := range r.meshes {
		mesh.Draw()
	}

	gl.Disable(gl.BLEND)
}

func (r *Renderer) renderShadowPass() {
	defer profiling.Track("renderer.ShadowPass")()

	// The sun shines opposite to lightDir.
	r.shadow.UpdateLightSpace(r.lightDir, r.sceneCenter, r.sceneRadius)

	r.shadow.Begin()
	r.shadow.Shader().SetMat4("model", mgl32.Ident4())
	for _, mesh := range r.meshes {
		mesh.Draw()
	}
	r.shadow.End()
}

// MeshCount returns the number of uploaded chunk meshes.
func (r *Renderer) MeshCount() int {
	return len(r.meshes)
}

// Delete frees every GPU resource owned by the renderer.
func (r *Renderer) Delete() {
	for coord, mesh := range r.meshes {
		mesh.Delete()
		delete(r.meshes, coord)
	}
	r.shadow.Delete()
	r.shader.Delete()
}
