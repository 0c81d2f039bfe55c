package renderer

import (
	"image"

	"github.com/google/uuid"
	"github.com/spaghettifunk/gllabs/engine/math"
	"github.com/spaghettifunk/gllabs/engine/systems"
)

// GeometryID names a vertex array uploaded to the GPU.
type GeometryID = uuid.UUID

// ShaderSources holds the GLSL text of the single program used by the labs.
type ShaderSources struct {
	VertexPath     string
	VertexSource   string
	FragmentPath   string
	FragmentSource string
}

// DeviceInfo describes the active GPU and driver.
type DeviceInfo struct {
	Vendor      string
	Renderer    string
	Version     string
	GLSLVersion string
}

/**
 * @brief Low level drawing API implemented per graphics library. All methods
 * must be called from the thread owning the context.
 */
type RendererBackend interface {
	Initialize(shaders ShaderSources) error
	Shutdown() error
	Resized(width, height int)
	BeginFrame(clear math.Vec4)
	EndFrame()
	UploadMesh(mesh math.Mesh) (GeometryID, error)
	DestroyGeometry(id GeometryID)
	UseGeometry(id GeometryID) error
	SetModel(m math.Mat4)
	SetView(m math.Mat4)
	SetProjection(m math.Mat4)
	/** @brief When set, the fragment shader ignores vertex colours and outputs black. */
	SetRenderAsBlack(black bool)
	SetLineWidth(width float32)
	SetPointSize(size float32)
	Draw(obj systems.SceneObject)
	/** @brief Blends img over the whole framebuffer. Row 0 of img is the top of the window. */
	DrawOverlay(img *image.RGBA)
	/** @brief Rebuilds the program. The previous program stays active if the new one fails. */
	ReloadShaders(shaders ShaderSources) error
	Info() DeviceInfo
}
