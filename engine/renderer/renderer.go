package renderer

import (
	"fmt"

	"github.com/spaghettifunk/gllabs/engine/core"
	"github.com/spaghettifunk/gllabs/engine/math"
	"github.com/spaghettifunk/gllabs/engine/renderer/text"
	"github.com/spaghettifunk/gllabs/engine/systems"
)

/**
 * @brief The renderer frontend. It owns the uploaded geometry, resolves scene
 * objects to index ranges and forwards draw calls to the backend.
 */
type Renderer struct {
	backend  RendererBackend
	scene    *systems.SceneSystem
	overlay  *text.Rasterizer
	width    int
	height   int
	uploaded []GeometryID
	bound    GeometryID
}

// New creates a renderer. overlay may be nil when the lab draws no text.
func New(backend RendererBackend, scene *systems.SceneSystem, overlay *text.Rasterizer) *Renderer {
	return &Renderer{
		backend: backend,
		scene:   scene,
		overlay: overlay,
	}
}

func (r *Renderer) Initialize(shaders ShaderSources, width, height int) error {
	if err := r.backend.Initialize(shaders); err != nil {
		return fmt.Errorf("failed to initialize the renderer backend: %w", err)
	}
	info := r.backend.Info()
	core.LogInfo("GPU: %s, %s, OpenGL %s, GLSL %s", info.Vendor, info.Renderer, info.Version, info.GLSLVersion)
	r.OnResize(width, height)
	return nil
}

func (r *Renderer) Shutdown() error {
	for _, id := range r.uploaded {
		r.backend.DestroyGeometry(id)
	}
	r.uploaded = nil
	return r.backend.Shutdown()
}

// OnResize records the framebuffer size and updates the viewport.
func (r *Renderer) OnResize(width, height int) {
	r.width = width
	r.height = height
	r.backend.Resized(width, height)
}

func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// AspectRatio returns width/height, or 1 while the framebuffer is empty.
func (r *Renderer) AspectRatio() float32 {
	if r.width <= 0 || r.height <= 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}

func (r *Renderer) Scene() *systems.SceneSystem {
	return r.scene
}

func (r *Renderer) BeginFrame(clear math.Vec4) {
	r.backend.BeginFrame(clear)
}

func (r *Renderer) EndFrame() {
	r.backend.EndFrame()
}

/**
 * @brief Uploads a mesh and binds it. Scene objects registered afterwards
 * address ranges of its index buffer.
 */
func (r *Renderer) Upload(mesh math.Mesh) (GeometryID, error) {
	if len(mesh.Positions) != len(mesh.Colours) {
		return GeometryID{}, fmt.Errorf("mesh has %d positions but %d colours", len(mesh.Positions), len(mesh.Colours))
	}
	id, err := r.backend.UploadMesh(mesh)
	if err != nil {
		return GeometryID{}, err
	}
	r.uploaded = append(r.uploaded, id)
	core.LogDebug("uploaded geometry %s: %d vertices, %d indices", id, len(mesh.Positions), len(mesh.Indices))
	return id, r.Bind(id)
}

func (r *Renderer) Bind(id GeometryID) error {
	if id == r.bound {
		return nil
	}
	if err := r.backend.UseGeometry(id); err != nil {
		return err
	}
	r.bound = id
	return nil
}

func (r *Renderer) SetModel(m math.Mat4) {
	r.backend.SetModel(m)
}

func (r *Renderer) SetView(m math.Mat4) {
	r.backend.SetView(m)
}

func (r *Renderer) SetProjection(m math.Mat4) {
	r.backend.SetProjection(m)
}

func (r *Renderer) SetRenderAsBlack(black bool) {
	r.backend.SetRenderAsBlack(black)
}

func (r *Renderer) SetLineWidth(width float32) {
	r.backend.SetLineWidth(width)
}

func (r *Renderer) SetPointSize(size float32) {
	r.backend.SetPointSize(size)
}

// DrawObject draws a registered scene object. Unknown ids panic.
func (r *Renderer) DrawObject(id systems.ObjectID) {
	r.backend.Draw(r.scene.MustGet(id))
}

// DrawText rasterizes items at the current framebuffer size and blends them on top.
func (r *Renderer) DrawText(items []text.Item) {
	if r.overlay == nil || len(items) == 0 {
		return
	}
	img := r.overlay.Render(r.width, r.height, items)
	if img == nil {
		return
	}
	r.backend.DrawOverlay(img)
}

// ReloadShaders swaps in a new program. On failure the old program keeps running.
func (r *Renderer) ReloadShaders(shaders ShaderSources) error {
	if err := r.backend.ReloadShaders(shaders); err != nil {
		core.LogWarn("shader reload failed, keeping the previous program: %s", err)
		return err
	}
	core.LogInfo("shaders reloaded from %s and %s", shaders.VertexPath, shaders.FragmentPath)
	return nil
}
