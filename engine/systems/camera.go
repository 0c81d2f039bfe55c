package systems

import (
	"fmt"

	"github.com/spaghettifunk/gllabs/engine/core"
	"github.com/spaghettifunk/gllabs/engine/math"
	"github.com/spaghettifunk/gllabs/engine/renderer/components"
)

/** @brief The camera system configuration. */
type CameraSystemConfig struct {
	/**
	 * @brief NOTE: The maximum number of cameras that can be managed by
	 * the system.
	 */
	MaxCameraCount uint16
	/** @brief Distance covered per frame while a move key is held. */
	FlySpeed float32
	/** @brief Initial state of every camera created by the system. */
	Position math.Vec4
	Distance float32
	Phi      float32
	Theta    float32
}

type CameraSystem struct {
	Config *CameraSystemConfig
	Lookup map[string]*components.CameraLookup
	// A default, non-registered camera that always exists as a fallback.
	DefaultCamera *components.Camera

	nextID uint16
}

/**
 * @brief Initializes the camera system.
 *
 * @param config The configuration for this system.
 * @return The system, or an error if the configuration is invalid.
 */
func NewCameraSystem(config *CameraSystemConfig) (*CameraSystem, error) {
	if config.MaxCameraCount == 0 {
		err := fmt.Errorf("func NewCameraSystem - config.MaxCameraCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}
	if config.FlySpeed <= 0 {
		config.FlySpeed = components.DefaultFlySpeed
	}
	cs := &CameraSystem{
		Config: config,
		Lookup: make(map[string]*components.CameraLookup, config.MaxCameraCount),
	}
	cs.DefaultCamera = cs.newCamera()
	return cs, nil
}

func (cs *CameraSystem) newCamera() *components.Camera {
	return components.NewCamera(cs.Config.Position, cs.Config.Distance, cs.Config.Phi, cs.Config.Theta)
}

/**
 * @brief Shuts down the camera system.
 */
func (cs *CameraSystem) Shutdown() error {
	cs.Lookup = nil
	return nil
}

/**
 * @brief Acquires a pointer to a camera by name.
 * If one is not found, a new one is created and retuned.
 * Internal reference counter is incremented.
 *
 * @param name The name of the camera to acquire.
 * @return A pointer to a camera if successful; an error if no slot is left.
 */
func (cs *CameraSystem) Acquire(name string) (*components.Camera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}
	lookup, ok := cs.Lookup[name]
	if !ok {
		if len(cs.Lookup) >= int(cs.Config.MaxCameraCount) {
			err := fmt.Errorf("func CameraSystem.Acquire failed to acquire new slot for '%s'. Adjust camera system config to allow more", name)
			core.LogError(err.Error())
			return nil, err
		}
		core.LogDebug("Creating new camera named '%s'...", name)
		lookup = &components.CameraLookup{
			ID:     cs.nextID,
			Camera: cs.newCamera(),
		}
		cs.nextID++
		cs.Lookup[name] = lookup
	}
	lookup.ReferenceCount++
	return lookup.Camera, nil
}

/**
 * @brief Releases a camera with the given name. Internal reference
 * counter is decremented. If this reaches 0, the camera is dropped
 * and the slot is usable by a new camera.
 *
 * @param name The name of the camera to release.
 */
func (cs *CameraSystem) Release(name string) {
	if name == components.DEFAULT_CAMERA_NAME {
		core.LogDebug("Cannot release default camera. Nothing was done.")
		return
	}
	lookup, ok := cs.Lookup[name]
	if !ok {
		core.LogWarn("CameraSystem.Release failed lookup for '%s'. Nothing was done.", name)
		return
	}
	lookup.ReferenceCount--
	if lookup.ReferenceCount < 1 {
		delete(cs.Lookup, name)
	}
}

/**
 * @brief Gets a pointer to the default camera.
 */
func (cs *CameraSystem) GetDefault() *components.Camera {
	return cs.DefaultCamera
}

/**
 * @brief Applies one frame of input to cam: dragging with the left button
 * orbits by the cursor delta, the wheel zooms, W/A/S/D fly while held and R
 * resets position and angles.
 */
func (cs *CameraSystem) Update(in *core.Input, cam *components.Camera) {
	if in.IsButtonDown(core.BUTTON_LEFT) && in.WasButtonDown(core.BUTTON_LEFT) {
		x, y := in.MousePosition()
		px, py := in.PreviousMousePosition()
		if x != px || y != py {
			cam.Orbit(float32(x-px), float32(y-py))
		}
	}

	if _, dy := in.Scroll(); dy != 0 {
		cam.Zoom(float32(dy))
	}

	cam.Fly(
		in.IsKeyDown(core.KEY_W),
		in.IsKeyDown(core.KEY_S),
		in.IsKeyDown(core.KEY_A),
		in.IsKeyDown(core.KEY_D),
		cs.Config.FlySpeed,
	)

	if in.KeyPressed(core.KEY_R) {
		cam.Reset()
	}
}
