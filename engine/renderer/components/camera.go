package components

import (
	"github.com/spaghettifunk/gllabs/engine/math"
)

const (
	// OrbitSensitivity converts a cursor delta in pixels to radians.
	OrbitSensitivity float32 = 0.01
	// ZoomSensitivity converts one scroll step to a distance change.
	ZoomSensitivity float32 = 0.1
	// DefaultFlySpeed is the distance covered per frame while a move key is held.
	DefaultFlySpeed float32 = 0.02
)

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

// WorldUp is the reference upward direction of every camera.
var WorldUp = math.NewDirection(0, 1, 0)

/**
 * @brief A camera placed at Position looking along a view vector given in
 * spherical coordinates: Distance is its length, Phi the polar angle (clamped
 * to [-π/2, π/2]) and Theta the azimuth.
 */
type Camera struct {
	/** @brief Length of the view vector, always > 0. */
	Distance float32
	/** @brief Polar angle in radians. */
	Phi float32
	/** @brief Azimuthal angle in radians. */
	Theta float32
	/** @brief The position of this camera. */
	Position math.Vec4

	initialPosition math.Vec4
	initialPhi      float32
	initialTheta    float32
}

type CameraLookup struct {
	ID             uint16
	ReferenceCount uint16
	Camera         *Camera
}

/**
 * @brief Creates a camera. The position, phi and theta given here are the
 * values Reset returns to.
 */
func NewCamera(position math.Vec4, distance, phi, theta float32) *Camera {
	c := &Camera{
		Distance:        math.ClampPositive(distance),
		initialPosition: position,
		initialPhi:      phi,
		initialTheta:    theta,
	}
	c.Reset()
	return c
}

// Reset restores position and angles. The distance is kept.
func (c *Camera) Reset() {
	c.Position = c.initialPosition
	c.Phi = math.Clamp(c.initialPhi, -math.HalfPi, math.HalfPi)
	c.Theta = c.initialTheta
}

/**
 * @brief Returns Distance * (cos φ sin θ, -sin φ, cos φ cos θ, 0).
 */
func (c *Camera) ViewVector() math.Vec4 {
	cp, sp := math.Cos(c.Phi), math.Sin(c.Phi)
	ct, st := math.Cos(c.Theta), math.Sin(c.Theta)
	return math.NewDirection(cp*st, -sp, cp*ct).MulScalar(c.Distance)
}

// Right returns up x view. With the camera looking down -z it points to the
// left of the screen.
func (c *Camera) Right() math.Vec4 {
	return math.Cross(WorldUp, c.ViewVector())
}

// Up returns view x right.
func (c *Camera) Up() math.Vec4 {
	return math.Cross(c.ViewVector(), c.Right())
}

// Forward returns the unit view direction.
func (c *Camera) Forward() math.Vec4 {
	return c.ViewVector().Normalized()
}

/**
 * @brief Rotates the view vector from a cursor delta in pixels. Phi stops at
 * the poles.
 */
func (c *Camera) Orbit(dx, dy float32) {
	c.Theta -= OrbitSensitivity * dx
	c.Phi = math.Clamp(c.Phi+OrbitSensitivity*dy, -math.HalfPi, math.HalfPi)
}

// Zoom shortens the view vector by one scroll offset; it never reaches zero.
func (c *Camera) Zoom(yoffset float32) {
	c.SetDistance(c.Distance - ZoomSensitivity*yoffset)
}

func (c *Camera) SetDistance(d float32) {
	c.Distance = math.ClampPositive(d)
}

/**
 * @brief Moves the camera by speed along the held directions. Forward and
 * backward follow the view vector, left and right follow Right().
 */
func (c *Camera) Fly(forward, backward, left, right bool, speed float32) {
	view := c.ViewVector()
	side := c.Right()
	if forward {
		c.Position = c.Position.Add(view.MulScalar(speed))
	}
	if backward {
		c.Position = c.Position.Sub(view.MulScalar(speed))
	}
	if right {
		c.Position = c.Position.Sub(side.MulScalar(speed))
	}
	if left {
		c.Position = c.Position.Add(side.MulScalar(speed))
	}
}

// View returns the world to camera matrix.
func (c *Camera) View() math.Mat4 {
	return math.NewMat4CameraView(c.Position, c.ViewVector(), c.Up())
}
