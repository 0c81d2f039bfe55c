package engine

import (
	"github.com/spaghettifunk/gllabs/engine/math"
)

type WindowConfig struct {
	// Window starting position x axis, if applicable.
	PosX int `toml:"pos_x"`
	// Window starting position y axis, if applicable.
	PosY int `toml:"pos_y"`
	// The application name used in windowing.
	Title string `toml:"title"`
	// The window size is fixed per lab and cannot be overridden.
	Width  int `toml:"-"`
	Height int `toml:"-"`
}

type ShaderConfig struct {
	Dir      string `toml:"dir"`
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	// Rebuild the program when a file in Dir changes.
	Watch bool `toml:"watch"`
}

type OverlayConfig struct {
	Show bool `toml:"show"`
	// Empty selects the built-in face. Otherwise a .fnt, .ttf or .otf file.
	FontPath string  `toml:"font_path"`
	FontSize float64 `toml:"font_size"`
}

type CameraConfig struct {
	Speed float32 `toml:"speed"`
}

type ApplicationConfig struct {
	Window     WindowConfig  `toml:"window"`
	LogLevel   string        `toml:"log_level"`
	ClearColor [4]float32    `toml:"clear_color"`
	DepthTest  bool          `toml:"-"`
	Shaders    ShaderConfig  `toml:"shaders"`
	Overlay    OverlayConfig `toml:"overlay"`
	Camera     CameraConfig  `toml:"camera"`
}

// DefaultConfig returns the settings shared by every lab for a window of the given size.
func DefaultConfig(title string, width, height int) ApplicationConfig {
	return ApplicationConfig{
		Window: WindowConfig{
			PosX:   100,
			PosY:   100,
			Title:  title,
			Width:  width,
			Height: height,
		},
		LogLevel:   "info",
		ClearColor: [4]float32{1, 1, 1, 1},
		Shaders: ShaderConfig{
			Dir:      "assets/shaders",
			Vertex:   "shader_vertex.glsl",
			Fragment: "shader_fragment.glsl",
		},
		Overlay: OverlayConfig{
			Show:     true,
			FontSize: 16,
		},
		Camera: CameraConfig{
			Speed: 0.02,
		},
	}
}

func (c *ApplicationConfig) ClearColour() math.Vec4 {
	return math.NewVec4(c.ClearColor[0], c.ClearColor[1], c.ClearColor[2], c.ClearColor[3])
}
