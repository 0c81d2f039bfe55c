package core

type Button uint16

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_MAX_BUTTONS
)

// Key code definitions
type KeyCode uint16

const (
	KEY_UNKNOWN   KeyCode = 0x00
	KEY_BACKSPACE KeyCode = 0x08
	KEY_TAB       KeyCode = 0x09
	KEY_ENTER     KeyCode = 0x0D
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_0         KeyCode = 0x30
	KEY_1         KeyCode = 0x31
	KEY_2         KeyCode = 0x32
	KEY_3         KeyCode = 0x33
	KEY_4         KeyCode = 0x34
	KEY_5         KeyCode = 0x35
	KEY_6         KeyCode = 0x36
	KEY_7         KeyCode = 0x37
	KEY_8         KeyCode = 0x38
	KEY_9         KeyCode = 0x39
	KEY_A         KeyCode = 0x41
	KEY_B         KeyCode = 0x42
	KEY_C         KeyCode = 0x43
	KEY_D         KeyCode = 0x44
	KEY_E         KeyCode = 0x45
	KEY_F         KeyCode = 0x46
	KEY_G         KeyCode = 0x47
	KEY_H         KeyCode = 0x48
	KEY_I         KeyCode = 0x49
	KEY_J         KeyCode = 0x4A
	KEY_K         KeyCode = 0x4B
	KEY_L         KeyCode = 0x4C
	KEY_M         KeyCode = 0x4D
	KEY_N         KeyCode = 0x4E
	KEY_O         KeyCode = 0x4F
	KEY_P         KeyCode = 0x50
	KEY_Q         KeyCode = 0x51
	KEY_R         KeyCode = 0x52
	KEY_S         KeyCode = 0x53
	KEY_T         KeyCode = 0x54
	KEY_U         KeyCode = 0x55
	KEY_V         KeyCode = 0x56
	KEY_W         KeyCode = 0x57
	KEY_X         KeyCode = 0x58
	KEY_Y         KeyCode = 0x59
	KEY_Z         KeyCode = 0x5A
	KEY_F1        KeyCode = 0x70
	KEY_F2        KeyCode = 0x71
	KEY_F3        KeyCode = 0x72
	KEY_F4        KeyCode = 0x73
	KEY_F5        KeyCode = 0x74
	KEY_F6        KeyCode = 0x75
	KEY_F7        KeyCode = 0x76
	KEY_F8        KeyCode = 0x77
	KEY_F9        KeyCode = 0x78
	KEY_F10       KeyCode = 0x79
	KEY_F11       KeyCode = 0x7A
	KEY_F12       KeyCode = 0x7B
	KEY_LSHIFT    KeyCode = 0xA0
	KEY_RSHIFT    KeyCode = 0xA1
	KEY_LCONTROL  KeyCode = 0xA2
	KEY_RCONTROL  KeyCode = 0xA3
	KEY_LMENU     KeyCode = 0xA4
	KEY_RMENU     KeyCode = 0xA5
	KEY_LSUPER    KeyCode = 0xA6
	KEY_RSUPER    KeyCode = 0xA7
	KEYS_MAX_KEYS KeyCode = 0x100
)

// Digit returns the value of a number-row key.
func (k KeyCode) Digit() (int, bool) {
	if k >= KEY_0 && k <= KEY_9 {
		return int(k - KEY_0), true
	}
	return 0, false
}

// Mods is the set of modifier keys held when a key or button event happened.
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

func (m Mods) Has(mod Mods) bool {
	return m&mod == mod
}

// Mouse state structure
type MouseState struct {
	X       float64
	Y       float64
	Buttons [BUTTON_MAX_BUTTONS]bool
}

// Keyboard state structure
type KeyboardState struct {
	Keys [KEYS_MAX_KEYS]bool
}

type InputEventKind uint8

const (
	InputKey InputEventKind = iota
	InputButton
	InputCursor
	InputScroll
	InputResize
)

// InputEvent is what window callbacks record. Events are queued and replayed
// into Input at the start of a frame.
type InputEvent struct {
	Kind    InputEventKind
	Key     KeyCode
	Button  Button
	Mods    Mods
	Pressed bool
	X, Y    float64
	Width   int
	Height  int
}

// Input holds current and previous states for keyboard and mouse. The
// previous state is the snapshot taken by the last call to Update.
type Input struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
	MouseCurrent     MouseState
	MousePrevious    MouseState

	mods             Mods
	scrollX, scrollY float64
	events           *EventBus
}

// NewInput creates the input state. Events are fired on bus when it is not nil.
func NewInput(bus *EventBus) *Input {
	return &Input{events: bus}
}

// Update copies current states to previous states and clears the scroll
// accumulated during the last frame. Call it before replaying the frame's events.
func (in *Input) Update() {
	in.KeyboardPrevious = in.KeyboardCurrent
	in.MousePrevious = in.MouseCurrent
	in.scrollX, in.scrollY = 0, 0
}

// Dispatch replays a recorded window event.
func (in *Input) Dispatch(ev InputEvent) {
	switch ev.Kind {
	case InputKey:
		in.ProcessKey(ev.Key, ev.Mods, ev.Pressed)
	case InputButton:
		in.ProcessButton(ev.Button, ev.Mods, ev.Pressed)
	case InputCursor:
		in.ProcessMouseMove(ev.X, ev.Y)
	case InputScroll:
		in.ProcessMouseWheel(ev.X, ev.Y)
	case InputResize:
		in.fire(EVENT_CODE_RESIZED, EventContext{Width: ev.Width, Height: ev.Height})
	}
}

func (in *Input) fire(code SystemEventCode, ctx EventContext) {
	if in.events != nil {
		in.events.Fire(code, in, ctx)
	}
}

// keyboard input
func (in *Input) IsKeyDown(key KeyCode) bool {
	return key < KEYS_MAX_KEYS && in.KeyboardCurrent.Keys[key]
}

func (in *Input) IsKeyUp(key KeyCode) bool {
	return !in.IsKeyDown(key)
}

func (in *Input) WasKeyDown(key KeyCode) bool {
	return key < KEYS_MAX_KEYS && in.KeyboardPrevious.Keys[key]
}

// KeyPressed reports a key that went down during the current frame.
func (in *Input) KeyPressed(key KeyCode) bool {
	return in.IsKeyDown(key) && !in.WasKeyDown(key)
}

// Mods returns the modifiers of the most recent key or button event.
func (in *Input) Mods() Mods {
	return in.mods
}

func (in *Input) ProcessKey(key KeyCode, mods Mods, pressed bool) {
	if key >= KEYS_MAX_KEYS {
		return
	}
	in.mods = mods
	// Only handle this if the state actually changed.
	if in.KeyboardCurrent.Keys[key] == pressed {
		return
	}
	in.KeyboardCurrent.Keys[key] = pressed

	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}
	in.fire(code, EventContext{Key: key, Mods: mods})
}

// mouse input
func (in *Input) IsButtonDown(button Button) bool {
	return button < BUTTON_MAX_BUTTONS && in.MouseCurrent.Buttons[button]
}

func (in *Input) WasButtonDown(button Button) bool {
	return button < BUTTON_MAX_BUTTONS && in.MousePrevious.Buttons[button]
}

func (in *Input) MousePosition() (float64, float64) {
	return in.MouseCurrent.X, in.MouseCurrent.Y
}

func (in *Input) PreviousMousePosition() (float64, float64) {
	return in.MousePrevious.X, in.MousePrevious.Y
}

// Scroll returns the wheel offsets accumulated since the last Update.
func (in *Input) Scroll() (float64, float64) {
	return in.scrollX, in.scrollY
}

func (in *Input) ProcessButton(button Button, mods Mods, pressed bool) {
	if button >= BUTTON_MAX_BUTTONS {
		return
	}
	in.mods = mods
	if in.MouseCurrent.Buttons[button] == pressed {
		return
	}
	in.MouseCurrent.Buttons[button] = pressed

	code := EVENT_CODE_BUTTON_RELEASED
	if pressed {
		code = EVENT_CODE_BUTTON_PRESSED
	}
	in.fire(code, EventContext{
		Button: button,
		Mods:   mods,
		X:      in.MouseCurrent.X,
		Y:      in.MouseCurrent.Y,
	})
}

func (in *Input) ProcessMouseMove(x, y float64) {
	// Only process if actually different
	if in.MouseCurrent.X == x && in.MouseCurrent.Y == y {
		return
	}
	in.MouseCurrent.X = x
	in.MouseCurrent.Y = y
	in.fire(EVENT_CODE_MOUSE_MOVED, EventContext{X: x, Y: y})
}

func (in *Input) ProcessMouseWheel(xoffset, yoffset float64) {
	in.scrollX += xoffset
	in.scrollY += yoffset
	in.fire(EVENT_CODE_MOUSE_WHEEL, EventContext{X: xoffset, Y: yoffset})
}

/**
 * @brief Maps the grading shortcut to a process exit status. A number-row
 * digit N pressed while exactly Shift is held (no other modifier) yields
 * ExitGradingBase+N. Releases, repeats and every other combination yield false.
 */
func GradingExitCode(key KeyCode, mods Mods, pressed bool) (int, bool) {
	if !pressed || mods != ModShift {
		return 0, false
	}
	n, ok := key.Digit()
	if !ok {
		return 0, false
	}
	return ExitGradingBase + n, true
}
