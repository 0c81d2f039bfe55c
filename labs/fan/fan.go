package fan

import (
	"fmt"
	"time"

	"github.com/spaghettifunk/gllabs/engine"
	"github.com/spaghettifunk/gllabs/engine/core"
	"github.com/spaghettifunk/gllabs/engine/math"
	"github.com/spaghettifunk/gllabs/engine/renderer"
	"github.com/spaghettifunk/gllabs/engine/systems"
	"github.com/spaghettifunk/gllabs/labs/shapes"
)

const (
	Title  = "Circle Fan"
	Width  = 500
	Height = 500

	// Sides of the polygon approximating the circle.
	Sides = 16
	// Radius of the circle in normalized device coordinates.
	Radius float32 = 0.7
)

type FanGame struct {
	*engine.Game
}

type gameState struct {
	geometry renderer.GeometryID
}

// DefaultConfig is the fan window: 500x500 on a white background, no overlay.
func DefaultConfig() engine.ApplicationConfig {
	cfg := engine.DefaultConfig(Title, Width, Height)
	cfg.Overlay.Show = false
	return cfg
}

func NewGame(cfg *engine.ApplicationConfig) *FanGame {
	g := &FanGame{
		Game: &engine.Game{
			ApplicationConfig: cfg,
			State:             &gameState{},
		},
	}
	g.FnInitialize = g.Initialize
	g.FnRender = g.Render
	return g
}

// Model is the vertex array uploaded by the lab: a single fan.
func Model() shapes.Model {
	var mdl shapes.Model
	mdl.AddMesh(systems.ObjectFan, shapes.CircleFan(Sides, Radius), math.TopologyTriangleFan)
	return mdl
}

func (g *FanGame) Initialize() error {
	core.LogDebug("FanGame Initialize fn....")

	if g.Renderer == nil || g.SystemManager == nil {
		return fmt.Errorf("the engine is not yet initialized with all the system managers")
	}
	state := g.State.(*gameState)

	mdl := Model()
	if err := mdl.Validate(); err != nil {
		return err
	}
	id, err := g.Renderer.Upload(mdl.Mesh)
	if err != nil {
		return err
	}
	state.geometry = id
	return mdl.Register(g.SystemManager.SceneSystem)
}

// Render draws the fan straight in normalized device coordinates.
func (g *FanGame) Render(deltaTime time.Duration) error {
	state := g.State.(*gameState)
	if err := g.Renderer.Bind(state.geometry); err != nil {
		return err
	}
	identity := math.NewMat4Identity()
	g.Renderer.SetModel(identity)
	g.Renderer.SetView(identity)
	g.Renderer.SetProjection(identity)
	g.Renderer.SetRenderAsBlack(false)
	g.Renderer.DrawObject(systems.ObjectFan)
	return nil
}
