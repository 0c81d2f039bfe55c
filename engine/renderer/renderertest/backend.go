// Package renderertest provides a renderer backend that records what it is
// asked to draw, for tests of code built on the renderer.
package renderertest

import (
	"image"

	"github.com/google/uuid"
	"github.com/spaghettifunk/gllabs/engine/math"
	"github.com/spaghettifunk/gllabs/engine/renderer"
	"github.com/spaghettifunk/gllabs/engine/systems"
)

// DrawCall is one Draw with the pipeline state it was issued under.
type DrawCall struct {
	Object        systems.SceneObject
	Geometry      renderer.GeometryID
	Model         math.Mat4
	View          math.Mat4
	Projection    math.Mat4
	RenderAsBlack bool
	LineWidth     float32
	PointSize     float32
}

type Backend struct {
	Meshes   map[renderer.GeometryID]math.Mesh
	Draws    []DrawCall
	Overlays []*image.RGBA
	Frames   int
	Width    int
	Height   int

	state DrawCall
}

var _ renderer.RendererBackend = (*Backend)(nil)

func NewBackend() *Backend {
	return &Backend{
		Meshes: make(map[renderer.GeometryID]math.Mesh),
		state:  DrawCall{LineWidth: 1, PointSize: 1},
	}
}

func (b *Backend) Initialize(renderer.ShaderSources) error { return nil }

func (b *Backend) Shutdown() error { return nil }

func (b *Backend) Resized(width, height int) {
	b.Width, b.Height = width, height
}

// BeginFrame forgets the draws of the previous frame.
func (b *Backend) BeginFrame(math.Vec4) {
	b.Frames++
	b.Draws = b.Draws[:0]
	b.Overlays = b.Overlays[:0]
}

func (b *Backend) EndFrame() {}

func (b *Backend) UploadMesh(mesh math.Mesh) (renderer.GeometryID, error) {
	id := uuid.New()
	b.Meshes[id] = mesh
	return id, nil
}

func (b *Backend) DestroyGeometry(id renderer.GeometryID) {
	delete(b.Meshes, id)
}

func (b *Backend) UseGeometry(id renderer.GeometryID) error {
	b.state.Geometry = id
	return nil
}

func (b *Backend) SetModel(m math.Mat4) { b.state.Model = m }

func (b *Backend) SetView(m math.Mat4) { b.state.View = m }

func (b *Backend) SetProjection(m math.Mat4) { b.state.Projection = m }

func (b *Backend) SetRenderAsBlack(black bool) { b.state.RenderAsBlack = black }

func (b *Backend) SetLineWidth(width float32) { b.state.LineWidth = width }

func (b *Backend) SetPointSize(size float32) { b.state.PointSize = size }

func (b *Backend) Draw(obj systems.SceneObject) {
	call := b.state
	call.Object = obj
	b.Draws = append(b.Draws, call)
}

func (b *Backend) DrawOverlay(img *image.RGBA) {
	b.Overlays = append(b.Overlays, img)
}

func (b *Backend) ReloadShaders(renderer.ShaderSources) error { return nil }

func (b *Backend) Info() renderer.DeviceInfo {
	return renderer.DeviceInfo{Vendor: "renderertest"}
}

// Drawn lists the names of the objects drawn this frame, in order.
func (b *Backend) Drawn() []string {
	out := make([]string, len(b.Draws))
	for i, d := range b.Draws {
		out[i] = d.Object.Name
	}
	return out
}
