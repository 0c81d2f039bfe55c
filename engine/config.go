package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/gllabs/engine/core"
)

const (
	// ConfigEnv names a configuration file explicitly.
	ConfigEnv = "GLLABS_CONFIG"
	// ConfigFile is looked up in the working directory when ConfigEnv is unset.
	ConfigFile = "gllabs.toml"
)

var ErrInvalidConfig = errors.New("invalid configuration")

/**
 * @brief Returns the configuration file to load: $GLLABS_CONFIG when set,
 * otherwise gllabs.toml in the working directory if it exists, otherwise an
 * empty string.
 */
func ConfigPath() string {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	if _, err := os.Stat(ConfigFile); err == nil {
		return ConfigFile
	}
	return ""
}

/**
 * @brief Overlays the TOML file at path on defaults. Keys missing from the
 * file keep their default value. An empty path or a missing file yields the
 * defaults, a malformed file an error. The shader directory is made absolute.
 */
func LoadConfig(defaults ApplicationConfig, path string) (*ApplicationConfig, error) {
	cfg := defaults
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			core.LogWarn("configuration file %s not found, using defaults", path)
		case err != nil:
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				var derr *toml.DecodeError
				if errors.As(err, &derr) {
					row, col := derr.Position()
					return nil, fmt.Errorf("%s:%d:%d: %w", path, row, col, err)
				}
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			core.LogDebug("configuration loaded from %s", path)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dir, err := filepath.Abs(cfg.Shaders.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve shader directory %q: %w", cfg.Shaders.Dir, err)
	}
	cfg.Shaders.Dir = dir
	return &cfg, nil
}

func (c *ApplicationConfig) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return fmt.Errorf("%w: shader file names must be set", ErrInvalidConfig)
	}
	if c.Overlay.FontSize <= 0 {
		return fmt.Errorf("%w: overlay font_size %v", ErrInvalidConfig, c.Overlay.FontSize)
	}
	if c.Camera.Speed <= 0 {
		return fmt.Errorf("%w: camera speed %v", ErrInvalidConfig, c.Camera.Speed)
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: clear_color[%d] = %v", ErrInvalidConfig, i, v)
		}
	}
	return nil
}
