package opengl

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/spaghettifunk/gllabs/engine/core"
)

const overlayVertexShader = `
#version 330 core
layout (location = 0) in vec2 position;
layout (location = 1) in vec2 uv;
uniform mat4 projection;
out vec2 texcoord;
void main()
{
    gl_Position = projection * vec4(position, 0.0, 1.0);
    texcoord = uv;
}
`

const overlayFragmentShader = `
#version 330 core
in vec2 texcoord;
uniform sampler2D overlay;
out vec4 color;
void main()
{
    color = texture(overlay, texcoord);
}
`

// x, y, u, v for a unit quad drawn as a triangle strip. Image row 0 is the
// top of the window, so v grows downwards.
var overlayQuad = []float32{
	0, 0, 0, 1,
	1, 0, 1, 1,
	0, 1, 0, 0,
	1, 1, 1, 0,
}

/**
 * @brief A full screen textured quad used to blend text rasterized on the
 * CPU over the scene.
 */
type overlay struct {
	name    uuid.UUID
	program uint32
	vao     uint32
	vbo     uint32
	texture uint32
	width   int
	height  int
}

func newOverlay() (*overlay, error) {
	program, err := newProgram("overlay vertex shader", overlayVertexShader, "overlay fragment shader", overlayFragmentShader)
	if err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}

	o := &overlay{name: uuid.New(), program: program}

	gl.UseProgram(program)
	projection := mgl32.Ortho2D(0, 1, 0, 1)
	gl.UniformMatrix4fv(uniformLocation(program, "projection"), 1, false, &projection[0])
	gl.Uniform1i(uniformLocation(program, "overlay"), 0)

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)

	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(overlayQuad)*4, gl.Ptr(overlayQuad), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.BindVertexArray(0)

	gl.GenTextures(1, &o.texture)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	core.LogDebug("overlay texture %s created (id %d)", o.name, o.texture)
	return o, nil
}

func (o *overlay) upload(img *image.RGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	if w != o.width || h != o.height {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		o.width, o.height = w, h
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
}

// draw blends img over the framebuffer. image.RGBA holds premultiplied alpha.
func (o *overlay) draw(img *image.RGBA) {
	if img == nil || len(img.Pix) == 0 {
		return
	}
	o.upload(img)

	depth := gl.IsEnabled(gl.DEPTH_TEST)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(o.program)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	gl.Disable(gl.BLEND)
	if depth {
		gl.Enable(gl.DEPTH_TEST)
	}
}

func (o *overlay) destroy() {
	gl.DeleteTextures(1, &o.texture)
	gl.DeleteBuffers(1, &o.vbo)
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteProgram(o.program)
}
