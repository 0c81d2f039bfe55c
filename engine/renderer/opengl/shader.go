package opengl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/spaghettifunk/gllabs/engine/assets"
	"github.com/spaghettifunk/gllabs/engine/core"
)

var (
	ErrCompileFailed = errors.New("shader compilation failed")
	ErrLinkFailed    = errors.New("program linking failed")
)

/**
 * @brief Compiles one shader stage. The compiler log is reported on the
 * terminal, as an error when compilation failed and as a warning otherwise.
 * The shader object is returned even when compilation failed.
 */
func compileShader(path, source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)

	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

	var log string
	if logLength > 0 {
		log = strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	}

	ok := status == gl.TRUE
	if report := assets.CompileReport(path, log, ok); report != "" {
		if ok {
			core.LogWarn("%s", report)
		} else {
			core.LogError("%s", report)
		}
	}
	if !ok {
		return shader, fmt.Errorf("%s: %w", path, ErrCompileFailed)
	}
	return shader, nil
}

/**
 * @brief Links a program from a vertex and a fragment shader and deletes the
 * shader objects. A failed link is reported with its log and returned as an
 * error together with the program handle.
 */
func linkProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		core.LogError("%s", assets.LinkReport(log))
		return program, ErrLinkFailed
	}
	return program, nil
}

// newProgram compiles both stages and links them. Failures of every step are
// reported and returned joined.
func newProgram(vertexPath, vertexSource, fragmentPath, fragmentSource string) (uint32, error) {
	vertexShader, vErr := compileShader(vertexPath, vertexSource, gl.VERTEX_SHADER)
	fragmentShader, fErr := compileShader(fragmentPath, fragmentSource, gl.FRAGMENT_SHADER)

	program, lErr := linkProgram(vertexShader, fragmentShader)
	if err := errors.Join(vErr, fErr, lErr); err != nil {
		return program, err
	}
	return program, nil
}

func uniformLocation(program uint32, name string) int32 {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	if loc < 0 {
		core.LogDebug("uniform %q is not active in program %d", name, program)
	}
	return loc
}
