package platform

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/gllabs/engine/containers"
	"github.com/spaghettifunk/gllabs/engine/core"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

/**
 * @brief GLFW window with an OpenGL 3.3 core context. Window callbacks record
 * input events into the queue handed to PumpMessages; the grading shortcut is
 * the only event acted upon inside a callback.
 */
type Platform struct {
	Window *glfw.Window
	// Exit terminates the process. Replaced in tests.
	Exit  func(code int)
	queue *containers.RingQueue[core.InputEvent]
}

func New() *Platform {
	return &Platform{
		Window: nil,
		Exit:   os.Exit,
	}
}

func (p *Platform) Startup(applicationName string, x, y, width, height int) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %s", core.ErrWindowInit, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(width, height, applicationName, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("%w: %s", core.ErrWindowInit, err)
	}
	window.MakeContextCurrent()
	p.Window = window

	p.Window.SetKeyCallback(p.keyCallback)
	p.Window.SetMouseButtonCallback(p.mouseButtonCallback)
	p.Window.SetCursorPosCallback(p.cursorPosCallback)
	p.Window.SetScrollCallback(p.scrollCallback)
	p.Window.SetFramebufferSizeCallback(p.framebufferSizeCallback)
	if x > 0 || y > 0 {
		p.Window.SetPos(x, y)
	}
	p.Window.Show()

	return nil
}

func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	glfw.Terminate()
	return nil
}

// PumpMessages polls the window system. Events raised meanwhile are appended
// to queue.
func (p *Platform) PumpMessages(queue *containers.RingQueue[core.InputEvent]) {
	p.queue = queue
	glfw.PollEvents()
	p.queue = nil
}

func (p *Platform) ShouldClose() bool {
	return p.Window.ShouldClose()
}

func (p *Platform) SetShouldClose(value bool) {
	p.Window.SetShouldClose(value)
}

func (p *Platform) SwapBuffers() {
	p.Window.SwapBuffers()
}

func (p *Platform) FramebufferSize() (int, int) {
	return p.Window.GetFramebufferSize()
}

func (p *Platform) SetTitle(title string) {
	p.Window.SetTitle(title)
}

func (p *Platform) enqueue(ev core.InputEvent) {
	if p.queue == nil {
		return
	}
	if err := p.queue.Enqueue(ev); err != nil {
		core.LogWarn("input event dropped: %s", err)
	}
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	keyCode := translateKey(key)
	m := translateMods(mods)

	if code, ok := core.GradingExitCode(keyCode, m, action == glfw.Press); ok {
		p.Exit(code)
		return
	}
	if action == glfw.Repeat {
		return
	}
	p.enqueue(core.InputEvent{
		Kind:    core.InputKey,
		Key:     keyCode,
		Mods:    m,
		Pressed: action == glfw.Press,
	})
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	var b core.Button
	switch button {
	case glfw.MouseButtonLeft:
		b = core.BUTTON_LEFT
	case glfw.MouseButtonRight:
		b = core.BUTTON_RIGHT
	case glfw.MouseButtonMiddle:
		b = core.BUTTON_MIDDLE
	default:
		return
	}
	p.enqueue(core.InputEvent{
		Kind:    core.InputButton,
		Button:  b,
		Mods:    translateMods(mods),
		Pressed: action == glfw.Press,
	})
}

func (p *Platform) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	p.enqueue(core.InputEvent{Kind: core.InputCursor, X: xpos, Y: ypos})
}

func (p *Platform) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	p.enqueue(core.InputEvent{Kind: core.InputScroll, X: xoff, Y: yoff})
}

func (p *Platform) framebufferSizeCallback(w *glfw.Window, width, height int) {
	p.enqueue(core.InputEvent{Kind: core.InputResize, Width: width, Height: height})
}
