package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/gllabs/engine/core"
	"github.com/spaghettifunk/gllabs/engine/renderer"
)

// LoadShaderSources reads the vertex and fragment shader files from dir.
// A missing file yields an error wrapping core.ErrShaderMissing.
func LoadShaderSources(dir, vertex, fragment string) (renderer.ShaderSources, error) {
	vertexPath := filepath.Join(dir, vertex)
	fragmentPath := filepath.Join(dir, fragment)

	vs, err := readShader(vertexPath)
	if err != nil {
		return renderer.ShaderSources{}, err
	}
	frag, err := readShader(fragmentPath)
	if err != nil {
		return renderer.ShaderSources{}, err
	}
	return renderer.ShaderSources{
		VertexPath:     vertexPath,
		VertexSource:   vs,
		FragmentPath:   fragmentPath,
		FragmentSource: frag,
	}, nil
}

func readShader(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("cannot open file %q: %w", path, core.ErrShaderMissing)
		}
		return "", fmt.Errorf("cannot read file %q: %w", path, err)
	}
	return string(data), nil
}

/**
 * @brief Formats a shader compiler log the way it is reported on the terminal.
 * An empty log produces an empty report. A failed compilation is reported as
 * such, a successful one with a non empty log is a warning.
 */
func CompileReport(path, log string, ok bool) string {
	log = strings.TrimRight(log, "\x00")
	if log == "" {
		return ""
	}
	var sb strings.Builder
	if ok {
		fmt.Fprintf(&sb, "OpenGL compilation of %q.\n", path)
	} else {
		fmt.Fprintf(&sb, "OpenGL compilation of %q failed.\n", path)
	}
	sb.WriteString("== Start of compilation log\n")
	sb.WriteString(log)
	if !strings.HasSuffix(log, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("== End of compilation log\n")
	return sb.String()
}

// LinkReport formats a program link log.
func LinkReport(log string) string {
	log = strings.TrimRight(log, "\x00\n")
	return "OpenGL linking of program failed.\n== Start of link log\n" + log + "\n== End of link log\n"
}
