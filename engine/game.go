package engine

import (
	"time"

	"github.com/spaghettifunk/gllabs/engine/core"
	"github.com/spaghettifunk/gllabs/engine/renderer"
	"github.com/spaghettifunk/gllabs/engine/systems"
)

/**
 * @brief A lab program. The engine fills SystemManager, Renderer, Input and
 * Events before FnInitialize is called; State is owned by the game.
 */
type Game struct {
	ApplicationConfig *ApplicationConfig
	// Initial camera placement for the default camera.
	SystemConfig  systems.SystemManagerConfig
	SystemManager *systems.SystemManager
	Renderer      *renderer.Renderer
	Input         *core.Input
	Events        *core.EventBus
	Metrics       *core.Metrics
	Clock         *core.Clock
	State         interface{}
	FnInitialize  Initialize
	FnUpdate      Update
	FnRender      Render
	FnOnResize    OnResize
	FnShutdown    Shutdown
}

type Initialize func() error
type Update func(deltaTime time.Duration) error
type Render func(deltaTime time.Duration) error
type OnResize func(width int, height int) error
type Shutdown func() error
