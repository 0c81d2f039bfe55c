package digits

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
	Title  = "Binary Clock"
	Width  = 1000
	Height = 1000

	// Sides of the ellipses that outline a zero.
	ZeroSides = 16
)

type DigitsGame struct {
	*engine.Game
}

/**
 * @brief What the clock shows. Ones[i] is true when digit i, counted from
 * the left, is a one.
 */
type State struct {
	Seconds  uint8
	Ones     [shapes.DigitCount]bool
	geometry renderer.GeometryID
}

// Tick decodes the whole seconds elapsed; only the low eight bits are kept.
func (s *State) Tick(elapsed int64) {
	s.Seconds = uint8(elapsed)
	s.Ones = shapes.BinaryDigits(s.Seconds)
}

// Glyph returns the object to draw at digit i.
func (s *State) Glyph(i int) systems.ObjectID {
	if s.Ones[i] {
		return systems.ObjectDigitOne
	}
	return systems.ObjectDigitZero
}

func DefaultConfig() engine.ApplicationConfig {
	cfg := engine.DefaultConfig(Title, Width, Height)
	cfg.Overlay.Show = false
	return cfg
}

func NewGame(cfg *engine.ApplicationConfig) *DigitsGame {
	g := &DigitsGame{
		Game: &engine.Game{
			ApplicationConfig: cfg,
			State:             &State{},
		},
	}
	g.FnInitialize = g.Initialize
	g.FnUpdate = g.Update
	g.FnRender = g.Render
	return g
}

/**
 * @brief Both glyphs centred on the origin in one vertex array. Each digit
 * is placed by its model matrix.
 */
func Model() shapes.Model {
	var mdl shapes.Model
	mdl.AddMesh(systems.ObjectDigitZero, shapes.DigitZero(ZeroSides, 0, 0), math.TopologyTriangleStrip)
	mdl.AddMesh(systems.ObjectDigitOne, shapes.DigitOne(0, 0), math.TopologyTriangleStrip)
	return mdl
}

func (g *DigitsGame) Initialize() error {
	core.LogDebug("DigitsGame Initialize fn....")

	if g.Renderer == nil || g.SystemManager == nil || g.Clock == nil {
		return fmt.Errorf("the engine is not yet initialized with all the system managers")
	}
	state := g.State.(*State)

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

func (g *DigitsGame) Update(deltaTime time.Duration) error {
	state := g.State.(*State)
	before := state.Seconds
	state.Tick(g.Clock.Seconds())
	if state.Seconds != before {
		core.LogDebug("binary clock: %04b", state.Seconds&0x0F)
	}
	return nil
}

func (g *DigitsGame) Render(deltaTime time.Duration) error {
	state := g.State.(*State)
	if err := g.Renderer.Bind(state.geometry); err != nil {
		return err
	}
	identity := math.NewMat4Identity()
	g.Renderer.SetView(identity)
	g.Renderer.SetProjection(identity)
	g.Renderer.SetRenderAsBlack(false)
	for i := 0; i < shapes.DigitCount; i++ {
		g.Renderer.SetModel(math.NewMat4Translation(shapes.DigitX(i), 0, 0))
		g.Renderer.DrawObject(state.Glyph(i))
	}
	return nil
}
