package systems

import (
	"github.com/spaghettifunk/gllabs/engine/core"
	"github.com/spaghettifunk/gllabs/engine/math"
	"github.com/spaghettifunk/gllabs/engine/renderer/components"
)

type SystemManagerConfig struct {
	FlySpeed float32
	// Initial camera placement.
	Position math.Vec4
	Distance float32
	Phi      float32
	Theta    float32
}

type SystemManager struct {
	CameraSystem *CameraSystem
	SceneSystem  *SceneSystem

	// Name and camera driven by Update; empty means the default camera.
	activeName string
	active     *components.Camera
}

func NewSystemManager(config SystemManagerConfig) (*SystemManager, error) {
	cs, err := NewCameraSystem(&CameraSystemConfig{
		MaxCameraCount: 4,
		FlySpeed:       config.FlySpeed,
		Position:       config.Position,
		Distance:       config.Distance,
		Phi:            config.Phi,
		Theta:          config.Theta,
	})
	if err != nil {
		return nil, err
	}
	return &SystemManager{
		CameraSystem: cs,
		SceneSystem:  NewSceneSystem(),
	}, nil
}

/**
 * @brief Acquires the camera called name and makes it the one driven by
 * Update. The previously active camera is released.
 *
 * @param name The name of the camera to activate.
 * @return The camera, or an error if the camera system has no slot left.
 */
func (sm *SystemManager) ActivateCamera(name string) (*components.Camera, error) {
	cam, err := sm.CameraSystem.Acquire(name)
	if err != nil {
		return nil, err
	}
	sm.ReleaseCamera()
	if name != components.DEFAULT_CAMERA_NAME {
		sm.activeName = name
		sm.active = cam
	}
	return cam, nil
}

// ActiveCamera returns the activated camera, or the default one.
func (sm *SystemManager) ActiveCamera() *components.Camera {
	if sm.active != nil {
		return sm.active
	}
	return sm.CameraSystem.GetDefault()
}

// ReleaseCamera releases the active camera and falls back to the default.
func (sm *SystemManager) ReleaseCamera() {
	if sm.active == nil {
		return
	}
	sm.CameraSystem.Release(sm.activeName)
	sm.activeName = ""
	sm.active = nil
}

// Update applies this frame's input to the active camera.
func (sm *SystemManager) Update(in *core.Input) {
	sm.CameraSystem.Update(in, sm.ActiveCamera())
}

func (sm *SystemManager) Shutdown() error {
	sm.ReleaseCamera()
	return sm.CameraSystem.Shutdown()
}
