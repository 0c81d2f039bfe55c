package math

import (
	m "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardTol = float32(1.0e-5)

func assertVec4(t *testing.T, want, got Vec4) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, float64(standardTol), "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, float64(standardTol), "y of %v", got)
	assert.InDelta(t, want.Z, got.Z, float64(standardTol), "z of %v", got)
	assert.InDelta(t, want.W, got.W, float64(standardTol), "w of %v", got)
}

func assertMat4(t *testing.T, want mgl32.Mat4, got Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got.Data[i], float64(standardTol), "element %d", i)
	}
}

func TestNewMat4Layout(t *testing.T) {
	mt := NewMat4(
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	)
	assert.Equal(t, float32(1), mt.At(0, 1))
	assert.Equal(t, float32(4), mt.At(1, 0))
	assert.Equal(t, float32(4), mt.Data[1])
	assert.Equal(t, NewVec4(8, 9, 10, 11), mt.Row(2))
	assert.Equal(t, float32(1), mt.Transpose().At(1, 0))
}

func TestIdentityIsUnit(t *testing.T) {
	mt := NewMat4Translation(1, 2, 3).Mul(NewMat4RotateAxis(0.7, NewDirection(1, 2, 3))).Mul(NewMat4Scale(2, 3, 4))
	id := NewMat4Identity()

	assert.True(t, id.Mul(mt).Compare(mt, 0))
	assert.True(t, mt.Mul(id).Compare(mt, 0))
}

func TestRotations(t *testing.T) {
	for _, angle := range []float32{0, 0.3, Pi / 2, Pi, -1.2, 2 * Pi} {
		c := float32(m.Cos(float64(angle)))
		s := float32(m.Sin(float64(angle)))

		assertVec4(t, NewPoint(c, s, 0), NewMat4RotateZ(angle).MulVec4(NewPoint(1, 0, 0)))
		assertVec4(t, NewPoint(0, c, s), NewMat4RotateX(angle).MulVec4(NewPoint(0, 1, 0)))
		assertVec4(t, NewPoint(s, 0, c), NewMat4RotateY(angle).MulVec4(NewPoint(0, 0, 1)))
	}
}

func TestRotateAxisMatchesMathgl(t *testing.T) {
	tests := []struct {
		name  string
		angle float32
		axis  Vec4
	}{
		{"x", 0.5, NewDirection(1, 0, 0)},
		{"y", -1.1, NewDirection(0, 1, 0)},
		{"z", 2.0, NewDirection(0, 0, 1)},
		{"diagonal", Pi / 8, NewDirection(1, 1, 1)},
		{"unnormalized", 0.9, NewDirection(3, -2, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := mgl32.HomogRotate3D(tt.angle, mgl32.Vec3{tt.axis.X, tt.axis.Y, tt.axis.Z}.Normalize())
			assertMat4(t, want, NewMat4RotateAxis(tt.angle, tt.axis))
		})
	}

	assert.True(t, NewMat4RotateAxis(0.4, NewDirection(0, 0, 1)).Compare(NewMat4RotateZ(0.4), standardTol))
}

func TestMulOrderMatchesMathgl(t *testing.T) {
	ours := NewMat4Translation(1, -2, 3).Mul(NewMat4RotateY(0.25)).Mul(NewMat4Scale(2, 2, 0.5))
	want := mgl32.Translate3D(1, -2, 3).Mul4(mgl32.HomogRotate3DY(0.25)).Mul4(mgl32.Scale3D(2, 2, 0.5))
	assertMat4(t, want, ours)

	a := NewMat4RotateX(0.3)
	b := NewMat4Translation(0, 1, 0)
	assert.False(t, a.Mul(b).Compare(b.Mul(a), standardTol))
}

func TestGoldenModelPoint(t *testing.T) {
	model := NewMat4Translation(0, 0, -2).
		Mul(NewMat4RotateAxis(Pi/8, NewDirection(1, 1, 1))).
		Mul(NewMat4Scale(2, 0.5, 0.5))

	got := model.MulVec4(NewPoint(0.5, 0.5, 0.5))
	assertVec4(t, NewVec4(0.9619398, 0.4347369, -1.8966767, 1), got)
}

func TestVectorOps(t *testing.T) {
	x := NewDirection(1, 0, 0)
	y := NewDirection(0, 1, 0)

	assert.Equal(t, NewDirection(0, 0, 1), Cross(x, y))
	assert.Equal(t, NewDirection(0, 0, -1), Cross(y, x))
	assert.Equal(t, float32(0), Dot(x, y))
	assert.Equal(t, float32(1), Dot(NewPoint(1, 0, 0), NewPoint(1, 0, 0)))
	assert.Equal(t, float32(2), Dot4(NewPoint(1, 0, 0), NewPoint(1, 0, 0)))
	assert.InDelta(t, 5, NewDirection(3, 4, 0).Norm(), 1e-6)
	assertVec4(t, NewDirection(0.6, 0.8, 0), NewDirection(3, 4, 0).Normalized())
	assert.Equal(t, Vec4{}, Vec4{}.Normalized())
	assertVec4(t, NewPoint(1, 2, 3), NewVec4(2, 4, 6, 2).DivW())
}

func TestCameraView(t *testing.T) {
	tests := []struct {
		name    string
		eye     Vec4
		forward Vec4
		up      Vec4
	}{
		{"axis aligned", NewPoint(0, 0, 5), NewDirection(0, 0, -1), NewDirection(0, 1, 0)},
		{"lab default", NewPoint(3, 2, 3.5), NewDirection(-1.5, -1, -2), NewDirection(0, 1, 0)},
		{"tilted up", NewPoint(-1, 4, 2), NewDirection(0.3, -0.2, 0.9), NewDirection(0.1, 1, 0.2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewMat4LookAt(tt.eye, tt.eye.Add(tt.forward), tt.up)
			assertVec4(t, NewPoint(0, 0, 0), view.MulVec4(tt.eye))

			// The camera looks down -z.
			ahead := view.MulVec4(tt.eye.Add(tt.forward.Normalized()))
			assertVec4(t, NewPoint(0, 0, -1), ahead)

			want := mgl32.LookAtV(
				mgl32.Vec3{tt.eye.X, tt.eye.Y, tt.eye.Z},
				mgl32.Vec3{tt.eye.X + tt.forward.X, tt.eye.Y + tt.forward.Y, tt.eye.Z + tt.forward.Z},
				mgl32.Vec3{tt.up.X, tt.up.Y, tt.up.Z},
			)
			assertMat4(t, want, view)
		})
	}
}

func TestCameraViewChecked(t *testing.T) {
	up := NewDirection(0, 1, 0)

	_, err := NewMat4CameraViewChecked(NewPoint(0, 0, 0), NewDirection(0, 0, 0), up)
	require.ErrorIs(t, err, ErrDegenerateView)

	_, err = NewMat4LookAtChecked(NewPoint(0, 0, 0), NewPoint(0, 3, 0), up)
	require.ErrorIs(t, err, ErrDegenerateView)

	got, err := NewMat4LookAtChecked(NewPoint(0, 0, 5), NewPoint(0, 0, 0), up)
	require.NoError(t, err)
	assert.True(t, got.Compare(NewMat4Translation(0, 0, -5), standardTol))
}

func TestProjections(t *testing.T) {
	fov := Pi / 3
	aspect := float32(800.0 / 600.0)

	persp := NewMat4Perspective(fov, aspect, -0.1, -10)
	assertMat4(t, mgl32.Perspective(fov, aspect, 0.1, 10), persp)

	near := persp.MulVec4(NewPoint(0, 0, -0.1)).DivW()
	far := persp.MulVec4(NewPoint(0, 0, -10)).DivW()
	assert.InDelta(t, -1, near.Z, 1e-5)
	assert.InDelta(t, 1, far.Z, 1e-4)

	ortho := NewMat4Orthographic(-2, 2, -1.5, 1.5, -0.1, -10)
	assertMat4(t, mgl32.Ortho(-2, 2, -1.5, 1.5, 0.1, 10), ortho)
	assert.InDelta(t, -1, ortho.MulVec4(NewPoint(0, 0, -0.1)).Z, 1e-5)
	assert.InDelta(t, 1, ortho.MulVec4(NewPoint(2, 1.5, -10)).Z, 1e-5)
}

func TestViewport(t *testing.T) {
	vp := NewMat4Viewport(NewVec2(-1, -1), NewVec2(1, 1), NewVec2(0, 0), NewVec2(800, 600))

	assertVec4(t, NewPoint(400, 300, 0.25), vp.MulVec4(NewPoint(0, 0, 0.25)))
	assertVec4(t, NewPoint(0, 0, 0), vp.MulVec4(NewPoint(-1, -1, 0)))
	assertVec4(t, NewPoint(800, 600, 0), vp.MulVec4(NewPoint(1, 1, 0)))
}

func TestAngles(t *testing.T) {
	assert.InDelta(t, Pi, DegToRad(180), 1e-6)
	assert.InDelta(t, 90, RadToDeg(HalfPi), 1e-4)
}
