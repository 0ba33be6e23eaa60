package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertMat4(t *testing.T, expected, got Mat4, delta float64) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], got[i], delta, "element %d", i)
	}
}

func TestMat4Inverse(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"translate", Translate(1, -2, 3)},
		{"scale", Scale(2, 3, 4)},
		{"rotate", Rotate(V3(1, 2, 3), 0.7)},
		{"compose", Compose(V3(4, 5, 6), QuatFromEuler(Euler{X: 0.5, Y: 0.1}), V3(1, 2, 0.5))},
		{"perspective", Perspective(math.Pi/4, 16.0/9, 0.1, 100)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertMat4(t, Identity(), tc.m.Mul(tc.m.Inverse()), 1e-9)
		})
	}
}

func TestMat4SingularInverse(t *testing.T) {
	assert.Equal(t, Identity(), Mat4{}.Inverse())
}

func TestMat4Determinant(t *testing.T) {
	assert.InDelta(t, 24, Scale(2, 3, 4).Determinant(), 1e-12)
	assert.InDelta(t, 1, Rotate(V3(0, 1, 1), 2).Determinant(), 1e-12)
	assert.Equal(t, 0.0, Mat4{}.Determinant())
}

func TestMat4GetSetTranslation(t *testing.T) {
	m := Translate(7, 8, 9)
	assert.Equal(t, 7.0, m.Get(0, 3))
	assertVec(t, []float64{7, 8, 9}, m.Translation(), 0)
	assert.False(t, m.Translation().Dirty())

	m.Set(1, 3, -1)
	m.SetTranslation(V3(1, 2, m.Get(2, 3)))
	assertVec(t, []float64{1, 2, 9}, m.Translation(), 0)
}

func TestMat4Transpose(t *testing.T) {
	m := Rotate(V3(1, 0, 1), 0.3)
	assertMat4(t, m.Inverse(), m.Transpose(), 1e-12)
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := V3(3, 4, 5)
	view := LookAt(eye, Zero3(), Up())
	assertVec(t, []float64{0, 0, 0}, eye.Clone().ApplyMatrix4(view), 1e-12)

	// The target lies straight ahead, on -Z.
	target := Zero3().ApplyMatrix4(view)
	assert.InDelta(t, 0, target.X(), 1e-12)
	assert.InDelta(t, 0, target.Y(), 1e-12)
	assert.InDelta(t, -eye.Length(), target.Z(), 1e-12)
	assert.False(t, eye.Dirty(), "LookAt does not mutate its arguments")
}

func TestOrthographic(t *testing.T) {
	m := Orthographic(-2, 2, -1, 1, 0.1, 10)
	assertVec(t, []float64{1, 1, -1}, V3(2, 1, -0.1).ApplyMatrix4(m), 1e-12)
	assertVec(t, []float64{-1, -1, 1}, V3(-2, -1, -10).ApplyMatrix4(m), 1e-12)
}

func TestMat3(t *testing.T) {
	m := Mat3FromMat4(Rotate(V3(0, 0, 1), 0.6)).Mul(Mat3FromMat4(Scale(2, 2, 2)))
	inv := m.Inverse()
	prod := m.Mul(inv)
	for i, want := range Identity3() {
		assert.InDelta(t, want, prod[i], 1e-12)
	}

	assert.InDelta(t, 8, m.Determinant(), 1e-12)
	assert.Equal(t, Identity3(), Mat3{}.Inverse())
	assert.Equal(t, Mat3{1, 4, 7, 2, 5, 8, 3, 6, 9}, Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}.Transpose())

	n := NormalMatrix(Scale(2, 2, 2))
	for i, want := range (Mat3{0.5, 0, 0, 0, 0.5, 0, 0, 0, 0.5}) {
		assert.InDelta(t, want, n[i], 1e-12)
	}
}

func TestQuat(t *testing.T) {
	a := QuatFromAxisAngle(Up(), 0.3)
	b := QuatFromAxisAngle(Up(), 0.5)
	ab := a.Mul(b)
	want := QuatFromAxisAngle(Up(), 0.8)
	assert.InDelta(t, want.Y, ab.Y, 1e-12)
	assert.InDelta(t, want.W, ab.W, 1e-12)

	back := V3(1, 2, 3).ApplyQuaternion(a).ApplyQuaternion(a.Conjugate())
	assertVec(t, []float64{1, 2, 3}, back, 1e-12)

	assert.InDelta(t, 1, Quat{1, 2, 3, 4}.Normalize().Length(), 1e-12)
	assert.Equal(t, IdentityQuat(), Quat{}.Normalize())
}

func TestEulerOrderString(t *testing.T) {
	assert.Equal(t, "XYZ", OrderXYZ.String())
	assert.Equal(t, "ZYX", OrderZYX.String())
	assert.Equal(t, "XZY", OrderXZY.String())
}
