package cube

import (
	"github.com/spaghettifunk/gllabs/engine/core"
	"github.com/spaghettifunk/gllabs/engine/math"
)

const (
	// EulerStep is the rotation added by one press of X, Y or Z (22.5 degrees).
	EulerStep = math.Pi / 16
	// FieldOfView is the vertical field of view of the perspective projection.
	FieldOfView = math.Pi / 3
	// Near and far planes as camera space depths.
	NearPlane float32 = -0.1
	FarPlane  float32 = -10
)

/**
 * @brief Per-lab state driven by the keyboard: the Euler angles of the
 * animated cube, the projection in use and whether the overlay is shown.
 */
type State struct {
	AngleX      float32
	AngleY      float32
	AngleZ      float32
	Perspective bool
	ShowInfo    bool
}

func NewState() *State {
	return &State{
		Perspective: true,
		ShowInfo:    true,
	}
}

/**
 * @brief Applies a key press. X, Y and Z rotate by EulerStep, backwards while
 * Shift is held; Space zeroes the angles; P and O pick the projection and H
 * toggles the overlay. Returns false for keys the lab does not use.
 */
func (s *State) HandleKey(key core.KeyCode, mods core.Mods) bool {
	step := EulerStep
	if mods.Has(core.ModShift) {
		step = -step
	}
	switch key {
	case core.KEY_X:
		s.AngleX += step
	case core.KEY_Y:
		s.AngleY += step
	case core.KEY_Z:
		s.AngleZ += step
	case core.KEY_SPACE:
		s.AngleX, s.AngleY, s.AngleZ = 0, 0, 0
	case core.KEY_P:
		s.Perspective = true
	case core.KEY_O:
		s.Perspective = false
	case core.KEY_H:
		s.ShowInfo = !s.ShowInfo
	default:
		return false
	}
	return true
}

/**
 * @brief Returns the active projection. The orthographic box grows with the
 * camera distance so zooming keeps working without perspective:
 * t = 1.5 * distance / 2.5 and r = t * aspect.
 */
func (s *State) Projection(distance, aspect float32) math.Mat4 {
	if s.Perspective {
		return math.NewMat4Perspective(FieldOfView, aspect, NearPlane, FarPlane)
	}
	t := 1.5 * distance / 2.5
	b := -t
	r := t * aspect
	l := -r
	return math.NewMat4Orthographic(l, r, b, t, NearPlane, FarPlane)
}

// Instances returns the model matrices of the three cubes. The last one is
// rotated by the Euler angles.
func (s *State) Instances() [3]math.Mat4 {
	return [3]math.Mat4{
		math.NewMat4Identity(),
		math.NewTransform().
			Scale(2, 0.5, 0.5).
			Rotate(math.Pi/8, math.NewDirection(1, 1, 1)).
			Translate(0, 0, -2).
			Matrix(),
		math.NewTransform().
			Euler(s.AngleX, s.AngleY, s.AngleZ).
			Translate(-2, 0, 0).
			Matrix(),
	}
}
