package engine

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/spaghettifunk/gllabs/engine/assets"
	"github.com/spaghettifunk/gllabs/engine/containers"
	"github.com/spaghettifunk/gllabs/engine/core"
	"github.com/spaghettifunk/gllabs/engine/renderer"
	"github.com/spaghettifunk/gllabs/engine/renderer/text"
	"github.com/spaghettifunk/gllabs/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// InputQueueSize bounds the window events recorded between two frames.
const InputQueueSize = 256

// How long a suspended (minimized) engine sleeps between polls.
const suspendedPoll = 50 * time.Millisecond

// Platform is the window system the engine runs on.
type Platform interface {
	Startup(applicationName string, x, y, width, height int) error
	Shutdown() error
	PumpMessages(queue *containers.RingQueue[core.InputEvent])
	ShouldClose() bool
	SetShouldClose(value bool)
	SwapBuffers()
	FramebufferSize() (int, int)
	SetTitle(title string)
}

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	isRunning     bool
	isSuspended   bool
	platform      Platform
	renderer      *renderer.Renderer
	systemManager *systems.SystemManager
	input         *core.Input
	events        *core.EventBus
	queue         *containers.RingQueue[core.InputEvent]
	watcher       *assets.AssetWatcher
	width         int
	height        int
	clock         *core.Clock
	metrics       *core.Metrics
	lastTime      time.Duration
	title         string
}

/**
 * @brief Creates the engine for g on the given platform and renderer backend.
 * Nothing touches the window system until Initialize.
 */
func New(g *Game, p Platform, backend renderer.RendererBackend) (*Engine, error) {
	cfg := g.ApplicationConfig
	if cfg == nil {
		return nil, fmt.Errorf("%w: missing application config", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := core.SetLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	sysCfg := g.SystemConfig
	sysCfg.FlySpeed = cfg.Camera.Speed
	sm, err := systems.NewSystemManager(sysCfg)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	var overlay *text.Rasterizer
	if cfg.Overlay.Show {
		face, err := text.LoadFace(cfg.Overlay.FontPath, cfg.Overlay.FontSize, color.Black)
		if err != nil {
			core.LogWarn("falling back to the built-in font: %s", err)
			face = text.NewBasicFace(color.Black)
		}
		overlay = text.NewRasterizer(face)
	}

	events := core.NewEventBus()
	clock := g.Clock
	if clock == nil {
		clock = core.NewClock()
	}
	e := &Engine{
		currentStage:  EngineStageUninitialized,
		gameInstance:  g,
		platform:      p,
		renderer:      renderer.New(backend, sm.SceneSystem, overlay),
		systemManager: sm,
		input:         core.NewInput(events),
		events:        events,
		queue:         containers.NewRingQueue[core.InputEvent](InputQueueSize),
		clock:         clock,
		metrics:       core.NewMetrics(),
		isRunning:     true,
		isSuspended:   false,
		width:         cfg.Window.Width,
		height:        cfg.Window.Height,
		title:         cfg.Window.Title,
	}

	g.SystemManager = sm
	g.Renderer = e.renderer
	g.Input = e.input
	g.Events = events
	g.Metrics = e.metrics
	g.Clock = clock
	return e, nil
}

/**
 * @brief Creates the engine for g, initializes it and runs it until it
 * stops. The engine is shut down on every path once created; shutdown
 * failures are logged.
 */
func Start(ctx context.Context, g *Game, p Platform, backend renderer.RendererBackend) error {
	e, err := New(g, p, backend)
	if err != nil {
		return err
	}
	defer func() {
		if err := e.Shutdown(); err != nil {
			core.LogWarn("shutdown: %s", err)
		}
	}()

	if err := e.Initialize(); err != nil {
		return err
	}
	return e.Run(ctx)
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	cfg := e.gameInstance.ApplicationConfig

	// Shader files are checked before any window shows up.
	shaders, err := assets.LoadShaderSources(cfg.Shaders.Dir, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return err
	}

	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	e.events.Register(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)
	e.events.Register(core.EVENT_CODE_RESIZED, e, e.onResized)

	if err := e.platform.Startup(cfg.Window.Title, cfg.Window.PosX, cfg.Window.PosY, cfg.Window.Width, cfg.Window.Height); err != nil {
		return err
	}
	e.width, e.height = e.platform.FramebufferSize()

	if err := e.renderer.Initialize(shaders, e.width, e.height); err != nil {
		return err
	}

	if cfg.Shaders.Watch {
		if err := e.watchShaders(cfg.Shaders.Dir); err != nil {
			core.LogWarn("shader hot reload disabled: %s", err)
		}
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}
	e.systemManager.SceneSystem.Freeze()

	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}
	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) watchShaders(dir string) error {
	w, err := assets.NewAssetWatcher(assets.ShaderExtensions...)
	if err != nil {
		return err
	}
	if err := w.Watch(dir); err != nil {
		w.Close()
		return err
	}
	e.watcher = w
	core.LogInfo("watching %s for shader changes", dir)
	return nil
}

/**
 * @brief Runs the frame loop until the window is closed, ESC is pressed, a
 * hook fails or ctx is cancelled.
 */
func (e *Engine) Run(ctx context.Context) error {
	e.currentStage = EngineStageRunning
	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	for e.isRunning {
		// Previous state is the state at the end of the last frame.
		e.input.Update()
		e.platform.PumpMessages(e.queue)
		e.queue.Drain(e.input.Dispatch)

		if ctx.Err() != nil {
			core.LogInfo("interrupted, shutting down.")
			e.platform.SetShouldClose(true)
		}
		if e.platform.ShouldClose() {
			e.isRunning = false
		}
		if !e.isRunning {
			break
		}

		if e.isSuspended {
			time.Sleep(suspendedPoll)
			continue
		}

		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime
		e.lastTime = currentTime

		e.systemManager.Update(e.input)

		if e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogError("Game update failed, shutting down.")
				return err
			}
		}

		e.renderer.BeginFrame(e.gameInstance.ApplicationConfig.ClearColour())
		if e.gameInstance.FnRender != nil {
			if err := e.gameInstance.FnRender(delta); err != nil {
				core.LogError("Game render failed, shutting down.")
				return err
			}
		}
		e.renderer.EndFrame()
		e.platform.SwapBuffers()

		e.updateMetrics(delta)
		e.pollShaderChanges()
	}
	return nil
}

// updateMetrics records the frame and shows the rate in the window title
// whenever its label changes.
func (e *Engine) updateMetrics(delta time.Duration) {
	before := e.metrics.FPSLabel()
	e.metrics.Update(delta)
	if after := e.metrics.FPSLabel(); after != before {
		e.platform.SetTitle(fmt.Sprintf("%s - %s", e.title, after))
	}
}

func (e *Engine) pollShaderChanges() {
	if e.watcher == nil {
		return
	}
	select {
	case path := <-e.watcher.Changes():
		core.LogInfo("shader source %s changed", path)
		e.events.Fire(core.EVENT_CODE_SHADER_CHANGED, e, core.EventContext{Path: path})

		cfg := e.gameInstance.ApplicationConfig
		shaders, err := assets.LoadShaderSources(cfg.Shaders.Dir, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
		if err != nil {
			core.LogWarn("cannot reload shaders: %s", err)
			return
		}
		if err := e.renderer.ReloadShaders(shaders); err != nil {
			core.LogDebug("keeping the previous program after a failed reload of %s: %s", path, err)
		}
	default:
	}
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	var errs []error
	if e.gameInstance.FnShutdown != nil {
		errs = append(errs, e.gameInstance.FnShutdown())
	}
	if e.watcher != nil {
		errs = append(errs, e.watcher.Close())
		e.watcher = nil
	}
	errs = append(errs, e.renderer.Shutdown())
	errs = append(errs, e.systemManager.Shutdown())
	e.events.Clear()
	errs = append(errs, e.platform.Shutdown())
	if dropped := e.queue.Dropped(); dropped > 0 {
		core.LogWarn("%d input events were dropped", dropped)
	}
	return errors.Join(errs...)
}

// GetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (int, int) {
	return e.width, e.height
}

func (e *Engine) onEvent(code core.SystemEventCode, sender interface{}, listener interface{}, context core.EventContext) bool {
	if code == core.EVENT_CODE_APPLICATION_QUIT {
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
		e.platform.SetShouldClose(true)
		return true
	}
	return false
}

func (e *Engine) onKey(code core.SystemEventCode, sender interface{}, listener interface{}, context core.EventContext) bool {
	if context.Key == core.KEY_ESCAPE {
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		e.events.Fire(core.EVENT_CODE_APPLICATION_QUIT, e, core.EventContext{})
		// Block anything else from processing this.
		return true
	}
	return false
}

func (e *Engine) onResized(code core.SystemEventCode, sender interface{}, listener interface{}, context core.EventContext) bool {
	width := context.Width
	height := context.Height
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height

	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	e.renderer.OnResize(width, height)
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(width, height); err != nil {
			core.LogError(err.Error())
		}
	}
	return true
}
