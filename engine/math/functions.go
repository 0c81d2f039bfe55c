package math

import (
	"errors"
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	Pi float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI divided by 2. */
	HalfPi float32 = 0.5 * Pi
	/** @brief A multiplier used to convert degrees to radians. */
	Deg2RadMultiplier float32 = Pi / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	Rad2DegMultiplier float32 = 180.0 / Pi
	/** @brief Smallest positive number where 1.0 + FloatEpsilon != 1.0 */
	FloatEpsilon float32 = 1.192092896e-07
)

// ErrDegenerateView is returned when a camera basis cannot be built, either
// because the view vector has zero length or because it is parallel to up.
var ErrDegenerateView = errors.New("degenerate camera view: view vector is zero or parallel to up")

func ksin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func kcos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func ktan(x float32) float32 {
	return float32(m.Tan(float64(x)))
}

func ksqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func kabs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

// Sin is the float32 sine.
func Sin(x float32) float32 {
	return ksin(x)
}

// Cos is the float32 cosine.
func Cos(x float32) float32 {
	return kcos(x)
}

// ------------------------------------------
// Vector 2
// ------------------------------------------

// NewVec2 creates a new 2-element vector using the supplied values.
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// NewPoint returns the homogeneous point (x, y, z, 1).
func NewPoint(x, y, z float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 1}
}

// NewDirection returns the homogeneous direction (x, y, z, 0).
func NewDirection(x, y, z float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 0}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

/**
 * @brief Multiplies every component, w included, by scalar.
 */
func (v Vec4) MulScalar(scalar float32) Vec4 {
	return Vec4{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
		W: v.W * scalar,
	}
}

/**
 * @brief Performs the perspective division, returning v / v.W.
 * A zero w yields infinities, exactly as the GPU would clip them.
 */
func (v Vec4) DivW() Vec4 {
	return v.MulScalar(1.0 / v.W)
}

/**
 * @brief Returns the dot product of the x, y and z components.
 * Directions and points are mixed freely in camera code, so w never takes part.
 */
func Dot(a, b Vec4) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Dot4 is the dot product over all four components.
func Dot4(a, b Vec4) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

/**
 * @brief Calculates the cross product of a and b ignoring w. The result is
 * a direction (w = 0).
 */
func Cross(a, b Vec4) Vec4 {
	return Vec4{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
		W: 0,
	}
}

// Norm returns the euclidean length of the x, y and z components.
func (v Vec4) Norm() float32 {
	return ksqrt(Dot(v, v))
}

/**
 * @brief Returns v scaled to unit length over x, y and z. The w component is
 * kept as-is. A zero vector is returned unchanged.
 */
func (v Vec4) Normalized() Vec4 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return Vec4{X: v.X / n, Y: v.Y / n, Z: v.Z / n, W: v.W}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is not more than tolerance.
 */
func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	return kabs(v.X-other.X) <= tolerance &&
		kabs(v.Y-other.Y) <= tolerance &&
		kabs(v.Z-other.Z) <= tolerance &&
		kabs(v.W-other.W) <= tolerance
}

// ------------------------------------------
// Matrix 4
// ------------------------------------------

/**
 * @brief Creates a matrix from its 16 elements given in reading order, i.e. row
 * by row as the matrix is written on paper. Storage is column-major.
 */
func NewMat4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) Mat4 {
	return Mat4{Data: [16]float32{
		m00, m10, m20, m30,
		m01, m11, m21, m31,
		m02, m12, m22, m32,
		m03, m13, m23, m33,
	}}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 */
func NewMat4Identity() Mat4 {
	out := Mat4{}
	out.Data[0] = 1.0
	out.Data[5] = 1.0
	out.Data[10] = 1.0
	out.Data[15] = 1.0
	return out
}

// At returns the element on the given row and column.
func (mt Mat4) At(row, col int) float32 {
	return mt.Data[col*4+row]
}

// Row returns the given row as a vector.
func (mt Mat4) Row(row int) Vec4 {
	return Vec4{mt.At(row, 0), mt.At(row, 1), mt.At(row, 2), mt.At(row, 3)}
}

/**
 * @brief Returns mt * other. The transform of other is applied first when the
 * product is used on a vector.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out := Mat4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += mt.Data[k*4+row] * other.Data[col*4+k]
			}
			out.Data[col*4+row] = sum
		}
	}
	return out
}

// MulVec4 returns mt * v.
func (mt Mat4) MulVec4(v Vec4) Vec4 {
	d := mt.Data
	return Vec4{
		X: d[0]*v.X + d[4]*v.Y + d[8]*v.Z + d[12]*v.W,
		Y: d[1]*v.X + d[5]*v.Y + d[9]*v.Z + d[13]*v.W,
		Z: d[2]*v.X + d[6]*v.Y + d[10]*v.Z + d[14]*v.W,
		W: d[3]*v.X + d[7]*v.Y + d[11]*v.Z + d[15]*v.W,
	}
}

/**
 * @brief Returns a transposed copy of the matrix (rows->colums)
 */
func (mt Mat4) Transpose() Mat4 {
	out := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.Data[row*4+col] = mt.Data[col*4+row]
		}
	}
	return out
}

// Compare reports whether every element differs by at most tolerance.
func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

/**
 * @brief Creates and returns a translation matrix.
 */
func NewMat4Translation(dx, dy, dz float32) Mat4 {
	return NewMat4(
		1, 0, 0, dx,
		0, 1, 0, dy,
		0, 0, 1, dz,
		0, 0, 0, 1,
	)
}

/**
 * @brief Returns a scale matrix using the provided per-axis factors.
 */
func NewMat4Scale(sx, sy, sz float32) Mat4 {
	return NewMat4(
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	)
}

/**
 * @brief Creates a rotation matrix around the x axis (right-hand rule).
 *
 * @param angle_radians The x angle in radians.
 */
func NewMat4RotateX(angleRadians float32) Mat4 {
	c := kcos(angleRadians)
	s := ksin(angleRadians)
	return NewMat4(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

/**
 * @brief Creates a rotation matrix around the y axis (right-hand rule).
 *
 * @param angle_radians The y angle in radians.
 */
func NewMat4RotateY(angleRadians float32) Mat4 {
	c := kcos(angleRadians)
	s := ksin(angleRadians)
	return NewMat4(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

/**
 * @brief Creates a rotation matrix around the z axis (right-hand rule).
 *
 * @param angle_radians The z angle in radians.
 */
func NewMat4RotateZ(angleRadians float32) Mat4 {
	c := kcos(angleRadians)
	s := ksin(angleRadians)
	return NewMat4(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

/**
 * @brief Creates a rotation of angle radians around an arbitrary axis using
 * Rodrigues' formula. The axis is normalized first and its w is ignored.
 */
func NewMat4RotateAxis(angleRadians float32, axis Vec4) Mat4 {
	c := kcos(angleRadians)
	s := ksin(angleRadians)
	v := axis.Normalized()
	vx, vy, vz := v.X, v.Y, v.Z
	t := 1 - c

	return NewMat4(
		vx*vx*t+c, vx*vy*t-vz*s, vx*vz*t+vy*s, 0,
		vx*vy*t+vz*s, vy*vy*t+c, vy*vz*t-vx*s, 0,
		vx*vz*t-vy*s, vy*vz*t+vx*s, vz*vz*t+c, 0,
		0, 0, 0, 1,
	)
}

/**
 * @brief Creates the Euler rotation Z(z) * Y(y) * X(x): x is applied first.
 */
func NewMat4EulerZYX(x, y, z float32) Mat4 {
	return NewMat4RotateZ(z).Mul(NewMat4RotateY(y)).Mul(NewMat4RotateX(x))
}

/**
 * @brief Creates the view matrix of a camera placed at position, looking
 * along view, with up as the reference upward direction. The camera looks
 * down its own -z axis: w = -view, u = up x w, v = w x u.
 *
 * Nothing is checked; a zero view vector or one parallel to up produces NaNs.
 * Use NewMat4CameraViewChecked when the input is not known to be valid.
 */
func NewMat4CameraView(position, view, up Vec4) Mat4 {
	w := view.MulScalar(-1)
	u := Cross(up, w)

	w = w.Normalized()
	u = u.Normalized()
	v := Cross(w, u)

	c := Vec4{position.X, position.Y, position.Z, 0}

	return NewMat4(
		u.X, u.Y, u.Z, -Dot(u, c),
		v.X, v.Y, v.Z, -Dot(v, c),
		w.X, w.Y, w.Z, -Dot(w, c),
		0, 0, 0, 1,
	)
}

// NewMat4CameraViewChecked is NewMat4CameraView that reports ErrDegenerateView
// instead of producing NaNs.
func NewMat4CameraViewChecked(position, view, up Vec4) (Mat4, error) {
	if view.Norm() <= FloatEpsilon {
		return Mat4{}, ErrDegenerateView
	}
	if Cross(up, view).Norm() <= FloatEpsilon*view.Norm()*up.Norm() {
		return Mat4{}, ErrDegenerateView
	}
	return NewMat4CameraView(position, view, up), nil
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of eye.
 */
func NewMat4LookAt(eye, target, up Vec4) Mat4 {
	return NewMat4CameraView(eye, target.Sub(eye), up)
}

// NewMat4LookAtChecked is the checked variant of NewMat4LookAt.
func NewMat4LookAtChecked(eye, target, up Vec4) (Mat4, error) {
	return NewMat4CameraViewChecked(eye, target.Sub(eye), up)
}

/**
 * @brief Creates an orthographic projection matrix. near and far are camera
 * space z coordinates, so both are negative for a camera looking down -z;
 * near is mapped to NDC z = -1 and far to z = +1.
 */
func NewMat4Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	return NewMat4(
		2/(right-left), 0, 0, -(right+left)/(right-left),
		0, 2/(top-bottom), 0, -(top+bottom)/(top-bottom),
		0, 0, 2/(far-near), -(far+near)/(far-near),
		0, 0, 0, 1,
	)
}

/**
 * @brief Creates a perspective projection matrix. Same depth convention as
 * NewMat4Orthographic: near and far are negative camera space depths.
 *
 * @param fovY The vertical field of view in radians.
 * @param aspect Width over height.
 */
func NewMat4Perspective(fovY, aspect, near, far float32) Mat4 {
	t := kabs(near) * ktan(fovY/2)
	b := -t
	r := t * aspect
	l := -r

	p := NewMat4(
		near, 0, 0, 0,
		0, near, 0, 0,
		0, 0, near+far, -far*near,
		0, 0, 1, 0,
	)
	ortho := NewMat4Orthographic(l, r, b, t, near, far)

	out := ortho.Mul(p)
	for i := range out.Data {
		out.Data[i] = -out.Data[i]
	}
	return out
}

/**
 * @brief Creates the viewport mapping from the NDC rectangle [a, b] to the
 * pixel rectangle [p, q]. Depth is left untouched.
 */
func NewMat4Viewport(a, b, p, q Vec2) Mat4 {
	return NewMat4(
		(q.X-p.X)/(b.X-a.X), 0, 0, (b.X*p.X-a.X*q.X)/(b.X-a.X),
		0, (q.Y-p.Y)/(b.Y-a.Y), 0, (b.Y*p.Y-a.Y*q.Y)/(b.Y-a.Y),
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

/**
 * @brief Converts provided degrees to radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * Deg2RadMultiplier
}

/**
 * @brief Converts provided radians to degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * Rad2DegMultiplier
}
