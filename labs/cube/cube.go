package cube

import (
	"fmt"
	"time"

	"github.com/spaghettifunk/gllabs/engine"
	"github.com/spaghettifunk/gllabs/engine/core"
	"github.com/spaghettifunk/gllabs/engine/math"
	"github.com/spaghettifunk/gllabs/engine/renderer"
	"github.com/spaghettifunk/gllabs/engine/renderer/components"
	"github.com/spaghettifunk/gllabs/engine/renderer/text"
	"github.com/spaghettifunk/gllabs/engine/systems"
	"github.com/spaghettifunk/gllabs/labs/shapes"
)

const (
	Title  = "Cube"
	Width  = 800
	Height = 800

	AxesLineWidth      float32 = 4
	WorldAxesLineWidth float32 = 10
	CornerPointSize    float32 = 15

	// WorldCameraName is the camera the lab acquires for its lifetime.
	WorldCameraName = "world"
)

var (
	// Initial camera placement, restored by R (the distance is kept).
	FirstCameraPosition          = math.NewPoint(3, 2, 3.5)
	FirstCameraDistance  float32 = 2.5
	FirstCameraPhi       float32 = 0.4
	FirstCameraTheta     float32 = -2.45
	// ProbePoint is the model space point followed through every space in the overlay.
	ProbePoint = math.NewPoint(0.5, 0.5, 0.5)
)

type CubeGame struct {
	*engine.Game
}

type gameState struct {
	*State
	camera   *components.Camera
	geometry renderer.GeometryID
	width    int
	height   int
}

// DefaultConfig is the cube window: 800x800 with depth testing.
func DefaultConfig() engine.ApplicationConfig {
	cfg := engine.DefaultConfig(Title, Width, Height)
	cfg.DepthTest = true
	return cfg
}

func NewGame(cfg *engine.ApplicationConfig) *CubeGame {
	g := &CubeGame{
		Game: &engine.Game{
			ApplicationConfig: cfg,
			SystemConfig: systems.SystemManagerConfig{
				Position: FirstCameraPosition,
				Distance: FirstCameraDistance,
				Phi:      FirstCameraPhi,
				Theta:    FirstCameraTheta,
			},
			State: &gameState{State: NewState()},
		},
	}
	g.FnInitialize = g.Initialize
	g.FnRender = g.Render
	g.FnOnResize = g.OnResize
	g.FnShutdown = g.Shutdown
	return g
}

func (g *CubeGame) Initialize() error {
	core.LogDebug("CubeGame Initialize fn....")

	if g.Renderer == nil || g.SystemManager == nil || g.Events == nil {
		return fmt.Errorf("the engine is not yet initialized with all the system managers")
	}
	state := g.State.(*gameState)
	cam, err := g.SystemManager.ActivateCamera(WorldCameraName)
	if err != nil {
		return err
	}
	state.camera = cam
	state.width, state.height = g.Renderer.Size()

	mdl := shapes.Cube()
	if err := mdl.Validate(); err != nil {
		return err
	}
	id, err := g.Renderer.Upload(mdl.Mesh)
	if err != nil {
		return err
	}
	state.geometry = id
	if err := mdl.Register(g.SystemManager.SceneSystem); err != nil {
		return err
	}

	g.Events.Register(core.EVENT_CODE_KEY_PRESSED, g, g.onKey)
	return nil
}

/**
 * @brief Draws the three cubes and the world axes, then the overlay. Each
 * cube gets coloured faces, its model axes, and black edges; the animated
 * cube also shows the corner point.
 */
func (g *CubeGame) Render(deltaTime time.Duration) error {
	state := g.State.(*gameState)
	if err := g.Renderer.Bind(state.geometry); err != nil {
		return err
	}

	view := state.camera.View()
	projection := state.Projection(state.camera.Distance, g.Renderer.AspectRatio())
	g.Renderer.SetView(view)
	g.Renderer.SetProjection(projection)

	instances := state.Instances()
	for i, model := range instances {
		g.Renderer.SetModel(model)

		g.Renderer.SetRenderAsBlack(false)
		g.Renderer.DrawObject(systems.ObjectCubeFaces)

		g.Renderer.SetLineWidth(AxesLineWidth)
		g.Renderer.DrawObject(systems.ObjectAxes)

		g.Renderer.SetRenderAsBlack(true)
		g.Renderer.DrawObject(systems.ObjectCubeEdges)

		if i == len(instances)-1 {
			g.Renderer.SetPointSize(CornerPointSize)
			g.Renderer.DrawObject(systems.ObjectCubeCorner)
		}
	}

	g.Renderer.SetModel(math.NewMat4Identity())
	g.Renderer.SetLineWidth(WorldAxesLineWidth)
	g.Renderer.SetRenderAsBlack(false)
	g.Renderer.DrawObject(systems.ObjectAxes)

	if state.ShowInfo {
		g.Renderer.DrawText(g.overlay(projection, view, instances[len(instances)-1]))
	}
	return nil
}

func (g *CubeGame) overlay(projection, view, model math.Mat4) []text.Item {
	state := g.State.(*gameState)
	items := text.ModelViewProjection(projection, view, model, ProbePoint, state.width, state.height)
	items = append(items,
		text.EulerAngles(state.AngleX, state.AngleY, state.AngleZ),
		text.ProjectionName(state.Perspective),
	)
	if g.Metrics != nil {
		items = append(items, text.FramesPerSecond(g.Metrics.FPSLabel()))
	}
	return items
}

func (g *CubeGame) OnResize(width int, height int) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	return nil
}

func (g *CubeGame) Shutdown() error {
	if g.Events != nil {
		g.Events.Unregister(core.EVENT_CODE_KEY_PRESSED, g)
	}
	if g.SystemManager != nil {
		g.SystemManager.ReleaseCamera()
	}
	return nil
}

func (g *CubeGame) onKey(code core.SystemEventCode, sender interface{}, listener interface{}, context core.EventContext) bool {
	state := g.State.(*gameState)
	if state.HandleKey(context.Key, context.Mods) {
		core.LogDebug("'%d' key pressed: euler (%.2f, %.2f, %.2f), perspective %t",
			context.Key, state.AngleX, state.AngleY, state.AngleZ, state.Perspective)
	}
	// Other listeners still get to see the key.
	return false
}
