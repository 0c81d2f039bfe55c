package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/google/uuid"
	"github.com/spaghettifunk/gllabs/engine/core"
	"github.com/spaghettifunk/gllabs/engine/math"
	"github.com/spaghettifunk/gllabs/engine/renderer"
	"github.com/spaghettifunk/gllabs/engine/systems"
)

// Vertex attribute locations shared with assets/shaders/shader_vertex.glsl.
const (
	positionLocation = 0
	colourLocation   = 1
)

type Options struct {
	// Enables the depth test, needed by the 3D scenes.
	DepthTest bool
}

type geometry struct {
	vao        uint32
	positions  uint32
	colours    uint32
	indices    uint32
	indexCount int
}

type uniforms struct {
	model         int32
	view          int32
	projection    int32
	renderAsBlack int32
}

/**
 * @brief OpenGL 3.3 core implementation of renderer.RendererBackend. The
 * context must be current on the calling thread before Initialize.
 */
type Backend struct {
	options    Options
	program    uint32
	uniforms   uniforms
	geometries map[renderer.GeometryID]*geometry
	current    *geometry
	overlay    *overlay
	info       renderer.DeviceInfo
	ready      bool
}

var _ renderer.RendererBackend = (*Backend)(nil)

func New(options Options) *Backend {
	return &Backend{
		options:    options,
		geometries: make(map[renderer.GeometryID]*geometry),
	}
}

func (b *Backend) Initialize(shaders renderer.ShaderSources) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("%w: %s", core.ErrContextInit, err)
	}
	b.ready = true

	b.info = renderer.DeviceInfo{
		Vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:     gl.GoStr(gl.GetString(gl.VERSION)),
		GLSLVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}

	// Compile and link failures are reported but do not stop the program.
	program, err := newProgram(shaders.VertexPath, shaders.VertexSource, shaders.FragmentPath, shaders.FragmentSource)
	if err != nil {
		core.LogError("failed to build the GPU program: %s", err)
	}
	b.useProgram(program)

	if b.overlay, err = newOverlay(); err != nil {
		core.LogError("text overlay disabled: %s", err)
	}

	if b.options.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	}
	CheckError("Initialize")
	return nil
}

func (b *Backend) useProgram(program uint32) {
	b.program = program
	gl.UseProgram(program)
	b.uniforms = uniforms{
		model:         uniformLocation(program, "model"),
		view:          uniformLocation(program, "view"),
		projection:    uniformLocation(program, "projection"),
		renderAsBlack: uniformLocation(program, "render_as_black"),
	}
	identity := math.NewMat4Identity()
	b.SetModel(identity)
	b.SetView(identity)
	b.SetProjection(identity)
	b.SetRenderAsBlack(false)
}

// Shutdown releases every GPU object. It is a no-op before Initialize succeeded.
func (b *Backend) Shutdown() error {
	if !b.ready {
		return nil
	}
	for id := range b.geometries {
		b.DestroyGeometry(id)
	}
	if b.overlay != nil {
		b.overlay.destroy()
		b.overlay = nil
	}
	gl.DeleteProgram(b.program)
	b.program = 0
	b.ready = false
	return nil
}

func (b *Backend) Resized(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *Backend) BeginFrame(clear math.Vec4) {
	gl.ClearColor(clear.X, clear.Y, clear.Z, clear.W)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(b.program)
	if b.current != nil {
		gl.BindVertexArray(b.current.vao)
	}
}

func (b *Backend) EndFrame() {
	CheckError("EndFrame")
}

func uploadAttribute(location uint32, data []math.Vec4) uint32 {
	var vbo uint32
	flat := math.Flatten(data)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(flat)*4, gl.Ptr(flat), gl.STATIC_DRAW)
	gl.VertexAttribPointer(location, 4, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(location)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vbo
}

/**
 * @brief Creates a vertex array with one buffer per attribute and an element
 * buffer of uint32 indices. The vertex array stays bound.
 */
func (b *Backend) UploadMesh(mesh math.Mesh) (renderer.GeometryID, error) {
	if len(mesh.Positions) == 0 || len(mesh.Indices) == 0 {
		return renderer.GeometryID{}, fmt.Errorf("cannot upload an empty mesh")
	}
	g := &geometry{indexCount: len(mesh.Indices)}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	g.positions = uploadAttribute(positionLocation, mesh.Positions)
	g.colours = uploadAttribute(colourLocation, mesh.Colours)

	gl.GenBuffers(1, &g.indices)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.indices)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	if n := CheckError("UploadMesh"); n > 0 {
		b.destroy(g)
		return renderer.GeometryID{}, fmt.Errorf("mesh upload raised %d OpenGL errors", n)
	}

	id := uuid.New()
	b.geometries[id] = g
	b.current = g
	return id, nil
}

func (b *Backend) destroy(g *geometry) {
	gl.BindVertexArray(0)
	gl.DeleteBuffers(1, &g.positions)
	gl.DeleteBuffers(1, &g.colours)
	gl.DeleteBuffers(1, &g.indices)
	gl.DeleteVertexArrays(1, &g.vao)
}

func (b *Backend) DestroyGeometry(id renderer.GeometryID) {
	g, ok := b.geometries[id]
	if !ok {
		return
	}
	b.destroy(g)
	delete(b.geometries, id)
	if b.current == g {
		b.current = nil
	}
}

func (b *Backend) UseGeometry(id renderer.GeometryID) error {
	g, ok := b.geometries[id]
	if !ok {
		return fmt.Errorf("geometry %s is not uploaded", id)
	}
	gl.BindVertexArray(g.vao)
	b.current = g
	return nil
}

func setMatrix(location int32, m math.Mat4) {
	if location < 0 {
		return
	}
	gl.UniformMatrix4fv(location, 1, false, &m.Data[0])
}

func (b *Backend) SetModel(m math.Mat4) {
	setMatrix(b.uniforms.model, m)
}

func (b *Backend) SetView(m math.Mat4) {
	setMatrix(b.uniforms.view, m)
}

func (b *Backend) SetProjection(m math.Mat4) {
	setMatrix(b.uniforms.projection, m)
}

func (b *Backend) SetRenderAsBlack(black bool) {
	if b.uniforms.renderAsBlack < 0 {
		return
	}
	var v int32
	if black {
		v = 1
	}
	gl.Uniform1i(b.uniforms.renderAsBlack, v)
}

func (b *Backend) SetLineWidth(width float32) {
	gl.LineWidth(width)
}

func (b *Backend) SetPointSize(size float32) {
	gl.PointSize(size)
}

func primitive(t math.Topology) uint32 {
	switch t {
	case math.TopologyTriangleStrip:
		return gl.TRIANGLE_STRIP
	case math.TopologyTriangleFan:
		return gl.TRIANGLE_FAN
	case math.TopologyLines:
		return gl.LINES
	case math.TopologyPoints:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

func (b *Backend) Draw(obj systems.SceneObject) {
	if b.current == nil {
		core.LogWarn("draw of %q without a bound geometry", obj.Name)
		return
	}
	if int(obj.FirstIndex+obj.IndexCount) > b.current.indexCount {
		core.LogError("scene object %q overruns the index buffer (%d+%d > %d)", obj.Name, obj.FirstIndex, obj.IndexCount, b.current.indexCount)
		return
	}
	gl.DrawElements(primitive(obj.Topology), int32(obj.IndexCount), gl.UNSIGNED_INT, gl.PtrOffset(obj.ByteOffset()))
}

func (b *Backend) DrawOverlay(img *image.RGBA) {
	if b.overlay == nil {
		return
	}
	b.overlay.draw(img)

	gl.UseProgram(b.program)
	if b.current != nil {
		gl.BindVertexArray(b.current.vao)
	}
}

func (b *Backend) ReloadShaders(shaders renderer.ShaderSources) error {
	program, err := newProgram(shaders.VertexPath, shaders.VertexSource, shaders.FragmentPath, shaders.FragmentSource)
	if err != nil {
		gl.DeleteProgram(program)
		gl.UseProgram(b.program)
		return err
	}
	old := b.program
	b.useProgram(program)
	gl.DeleteProgram(old)
	return nil
}

func (b *Backend) Info() renderer.DeviceInfo {
	return b.info
}
