package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/spaghettifunk/gllabs/engine/core"
)

// ErrorName returns the symbolic name of a glGetError code.
func ErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "UNKNOWN"
	}
}

/**
 * @brief Drains the OpenGL error queue, logging every pending error with the
 * place it was detected. Returns the number of errors found.
 */
func CheckError(where string) int {
	count := 0
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		core.LogError("OpenGL error %s (0x%04x) in %s", ErrorName(code), code, where)
		count++
		// A lost context reports the same error forever.
		if count >= 32 {
			break
		}
	}
	return count
}
