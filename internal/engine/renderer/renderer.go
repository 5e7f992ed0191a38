// Package renderer draws mesh models with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/trimesh/internal/engine/camera"
	"github.com/Faultbox/trimesh/internal/engine/mesh"
	"github.com/Faultbox/trimesh/internal/engine/shader"
	"github.com/Faultbox/trimesh/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// floats per vertex: position 3, normal 3, uv 2, rgba 4
const vertexStride = 12

// meshBuffers is the GPU side of one model: a VAO/VBO pair plus the
// generation it was last built from.
type meshBuffers struct {
	vao        uint32
	vbo        uint32
	count      int32
	generation uint64
}

// Renderer owns the shader program, per-model buffer cache, and the white
// fallback texture used for untextured models.
type Renderer struct {
	config Config

	program      uint32
	uModel       int32
	uNormal      int32
	uViewProj    int32
	uLightDir    int32
	whiteTexture uint32

	buffers map[*mesh.Model]*meshBuffers
}

// New creates a renderer. Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:  cfg,
		buffers: make(map[*mesh.Model]*meshBuffers),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	program, err := shader.CompileProgram(meshVertexShader, meshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program
	r.uModel = shader.MustUniform(program, "uModel")
	r.uNormal = shader.MustUniform(program, "uNormal")
	r.uViewProj = shader.MustUniform(program, "uViewProj")
	r.uLightDir = shader.MustUniform(program, "uLightDir")

	r.createWhiteTexture()

	return r, nil
}

// Close releases all GPU resources owned by the renderer.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for m, b := range r.buffers {
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
		delete(r.buffers, m)
	}
	if r.whiteTexture != 0 {
		gl.DeleteTextures(1, &r.whiteTexture)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Draw renders one model with the camera's matrices. Geometry buffers are
// re-uploaded only when the model's generation counter moved.
func (r *Renderer) Draw(m *mesh.Model, cam *camera.MeshCamera) {
	b := r.buffers[m]
	if b == nil {
		b = &meshBuffers{generation: ^uint64(0)}
		gl.GenVertexArrays(1, &b.vao)
		gl.GenBuffers(1, &b.vbo)
		r.buffers[m] = b
	}
	if b.generation != m.Generation() {
		r.upload(m, b)
	}
	if b.count == 0 {
		return
	}

	gl.UseProgram(r.program)

	model := m.WorldMatrix()
	normal := m.NormalMatrix()
	viewProj := cam.ViewProjection()
	gl.UniformMatrix4fv(r.uModel, 1, false, model.Ptr())
	gl.UniformMatrix4fv(r.uNormal, 1, false, normal.Ptr())
	gl.UniformMatrix4fv(r.uViewProj, 1, false, viewProj.Ptr())
	gl.Uniform3f(r.uLightDir, 0.4, 0.8, 0.5)

	if m.Texture != nil {
		m.Texture.Bind(0)
	} else {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.whiteTexture)
	}

	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, b.count)
	gl.BindVertexArray(0)
}

// Forget drops the cached buffers of a destroyed model.
func (r *Renderer) Forget(m *mesh.Model) {
	b := r.buffers[m]
	if b == nil {
		return
	}
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	delete(r.buffers, m)
}

// upload flattens the model's faces into an interleaved vertex buffer with
// flat per-face normals.
func (r *Renderer) upload(m *mesh.Model, b *meshBuffers) {
	verts := m.Vertices()
	faces := m.Faces()

	data := make([]float32, 0, len(faces)*3*vertexStride)
	for _, f := range faces {
		v0, ok0 := m.Vertex(f.A)
		v1, ok1 := m.Vertex(f.B)
		v2, ok2 := m.Vertex(f.C)
		if !ok0 || !ok1 || !ok2 {
			logger.Warn("face references out-of-range vertex",
				zap.Int("a", f.A), zap.Int("b", f.B), zap.Int("c", f.C),
				zap.Int("vertices", len(verts)),
			)
			continue
		}

		n := v1.Pos.Sub(v0.Pos).Cross(v2.Pos.Sub(v0.Pos)).Normalize()
		for _, v := range [3]mesh.Vertex{v0, v1, v2} {
			cr := float32((v.Color>>16)&0xff) / 255
			cg := float32((v.Color>>8)&0xff) / 255
			cb := float32(v.Color&0xff) / 255
			data = append(data,
				v.Pos.X, v.Pos.Y, v.Pos.Z,
				n.X, n.Y, n.Z,
				v.UV.X, v.UV.Y,
				cr, cg, cb, v.Alpha,
			)
		}
	}

	b.count = int32(len(data) / vertexStride)
	b.generation = m.Generation()

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.DYNAMIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	}

	stride := int32(vertexStride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, uintptr(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, uintptr(6*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(3, 4, gl.FLOAT, false, stride, uintptr(8*4))
	gl.EnableVertexAttribArray(3)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Int32("vertices", b.count),
		zap.Uint64("generation", b.generation),
	)
}

// createWhiteTexture builds the 1x1 white fallback bound for untextured
// models so the shader can sample unconditionally.
func (r *Renderer) createWhiteTexture() {
	white := [4]uint8{255, 255, 255, 255}
	gl.GenTextures(1, &r.whiteTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.whiteTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&white[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;
layout (location = 3) in vec4 aColor;

uniform mat4 uModel;
uniform mat4 uNormal;
uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vUV;
out vec4 vColor;

void main() {
	gl_Position = uViewProj * uModel * vec4(aPos, 1.0);
	vNormal = mat3(uNormal) * aNormal;
	vUV = aUV;
	vColor = aColor;
}
`

const meshFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec2 vUV;
in vec4 vColor;

uniform sampler2D uTexture;
uniform vec3 uLightDir;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	float lambert = max(dot(n, normalize(uLightDir)), 0.0);
	float light = 0.3 + 0.7 * lambert;
	vec4 base = texture(uTexture, vUV) * vColor;
	FragColor = vec4(base.rgb * light, base.a);
}
`
