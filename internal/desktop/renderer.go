package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl64"

	"racer/internal/game"
)

// Scene lighting.
var (
	LightDir     = mgl64.Vec3{5, 10, 7.5}.Normalize()
	AmbientLight = 0.6
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type gpuMesh struct {
	vao, vbo, nbo, ebo uint32
	count              int32
	refs               int
}

// Renderer is the GL render boundary. It keeps the retained object list in
// a MemoryScene and uploads each distinct Mesh once, freeing it when the
// last renderable using it is removed.
type Renderer struct {
	scene  *game.MemoryScene
	meshes map[*game.Mesh]*gpuMesh

	prog       uint32
	uViewProj  int32
	uModel     int32
	uColor     int32
	uLightDir  int32
	uAmbient   int32
	fbW, fbH   int
	clearColor game.RGB
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	r := &Renderer{
		scene:      game.NewMemoryScene(),
		meshes:     make(map[*game.Mesh]*gpuMesh),
		prog:       prog,
		clearColor: game.Palette.Sky,
	}
	gl.UseProgram(prog)
	r.uViewProj = gl.GetUniformLocation(prog, gl.Str("uViewProj\x00"))
	r.uModel = gl.GetUniformLocation(prog, gl.Str("uModel\x00"))
	r.uColor = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))
	r.uLightDir = gl.GetUniformLocation(prog, gl.Str("uLightDir\x00"))
	r.uAmbient = gl.GetUniformLocation(prog, gl.Str("uAmbient\x00"))
	gl.Uniform3f(r.uLightDir, float32(LightDir.X()), float32(LightDir.Y()), float32(LightDir.Z()))
	gl.Uniform1f(r.uAmbient, float32(AmbientLight))
	return r, nil
}

func (r *Renderer) Add(obj *game.Renderable) {
	before := r.scene.Len()
	r.scene.Add(obj)
	if r.scene.Len() == before {
		return
	}
	gm, ok := r.meshes[obj.Mesh]
	if !ok {
		gm = uploadMesh(obj.Mesh)
		r.meshes[obj.Mesh] = gm
	}
	gm.refs++
}

func (r *Renderer) Remove(obj *game.Renderable) {
	before := r.scene.Len()
	r.scene.Remove(obj)
	if r.scene.Len() == before {
		return
	}
	gm, ok := r.meshes[obj.Mesh]
	if !ok {
		return
	}
	gm.refs--
	if gm.refs <= 0 {
		gm.delete()
		delete(r.meshes, obj.Mesh)
	}
}

// Resize sets the viewport for subsequent frames.
func (r *Renderer) Resize(fbW, fbH int) {
	r.fbW, r.fbH = fbW, fbH
}

// Render draws every live renderable from the camera's viewpoint.
func (r *Renderer) Render(cam *game.FollowCamera) {
	cr, cg, cb := r.clearColor.Floats()
	gl.Viewport(0, 0, int32(r.fbW), int32(r.fbH))
	gl.ClearColor(cr, cg, cb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	gl.UseProgram(r.prog)
	vp := mat32(cam.ViewProjection())
	gl.UniformMatrix4fv(r.uViewProj, 1, false, &vp[0])

	for _, obj := range r.scene.Items() {
		gm := r.meshes[obj.Mesh]
		if gm == nil {
			continue
		}
		model := mat32(obj.Model())
		gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
		cr, cg, cb := obj.Color.Floats()
		gl.Uniform3f(r.uColor, cr, cg, cb)
		gl.BindVertexArray(gm.vao)
		gl.DrawElements(gl.TRIANGLES, gm.count, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) Destroy() {
	for m, gm := range r.meshes {
		gm.delete()
		delete(r.meshes, m)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

func uploadMesh(m *game.Mesh) *gpuMesh {
	gm := &gpuMesh{count: int32(len(m.Indices))}
	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Positions)*4, gl.Ptr(m.Positions), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, glOffset(0))

	gl.GenBuffers(1, &gm.nbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.nbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Normals)*4, gl.Ptr(m.Normals), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, glOffset(0))

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return gm
}

func (gm *gpuMesh) delete() {
	for _, id := range []uint32{gm.vbo, gm.nbo, gm.ebo} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	if gm.vao != 0 {
		gl.DeleteVertexArrays(1, &gm.vao)
	}
}

// mat32 narrows a column-major mgl64 matrix for glUniformMatrix4fv.
func mat32(m mgl64.Mat4) [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
