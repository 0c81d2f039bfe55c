package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/gllabs/engine/core"
)

var namedKeys = map[glfw.Key]core.KeyCode{
	glfw.KeyBackspace:    core.KEY_BACKSPACE,
	glfw.KeyTab:          core.KEY_TAB,
	glfw.KeyEnter:        core.KEY_ENTER,
	glfw.KeyEscape:       core.KEY_ESCAPE,
	glfw.KeySpace:        core.KEY_SPACE,
	glfw.KeyLeft:         core.KEY_LEFT,
	glfw.KeyUp:           core.KEY_UP,
	glfw.KeyRight:        core.KEY_RIGHT,
	glfw.KeyDown:         core.KEY_DOWN,
	glfw.KeyLeftShift:    core.KEY_LSHIFT,
	glfw.KeyRightShift:   core.KEY_RSHIFT,
	glfw.KeyLeftControl:  core.KEY_LCONTROL,
	glfw.KeyRightControl: core.KEY_RCONTROL,
	glfw.KeyLeftAlt:      core.KEY_LMENU,
	glfw.KeyRightAlt:     core.KEY_RMENU,
	glfw.KeyLeftSuper:    core.KEY_LSUPER,
	glfw.KeyRightSuper:   core.KEY_RSUPER,
}

// translateKey maps a GLFW key to the engine key code. Digits and letters
// share their ASCII values in both tables.
func translateKey(key glfw.Key) core.KeyCode {
	switch {
	case key >= glfw.Key0 && key <= glfw.Key9:
		return core.KEY_0 + core.KeyCode(key-glfw.Key0)
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return core.KEY_A + core.KeyCode(key-glfw.KeyA)
	case key >= glfw.KeyF1 && key <= glfw.KeyF12:
		return core.KEY_F1 + core.KeyCode(key-glfw.KeyF1)
	}
	if k, ok := namedKeys[key]; ok {
		return k
	}
	return core.KEY_UNKNOWN
}

func translateMods(mods glfw.ModifierKey) core.Mods {
	var m core.Mods
	if mods&glfw.ModShift != 0 {
		m |= core.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= core.ModControl
	}
	if mods&glfw.ModAlt != 0 {
		m |= core.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= core.ModSuper
	}
	return m
}
