package math3d

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/vek/pkg/mathutil"
)

type stubAttr struct{ data [][4]float64 }

func (a stubAttr) GetX(i int) float64 { return a.data[i][0] }
func (a stubAttr) GetY(i int) float64 { return a.data[i][1] }
func (a stubAttr) GetZ(i int) float64 { return a.data[i][2] }
func (a stubAttr) GetW(i int) float64 { return a.data[i][3] }

// checkMutators runs every mutator on a fresh observed vector and requires
// exactly one notification and a dirty flag afterwards.
func checkMutators[T Vector](t *testing.T, fresh func() T, observe func(T, func()), mutators map[string]func(T)) {
	t.Helper()
	for name, mutate := range mutators {
		t.Run(name, func(t *testing.T) {
			v := fresh()
			require.False(t, v.Dirty())

			calls := 0
			observe(v, func() { calls++ })
			mutate(v)

			assert.True(t, v.Dirty(), "dirty after %s", name)
			assert.Equal(t, 1, calls, "notifications for %s", name)
		})
	}
}

func TestVector2MutatorsNotifyOnce(t *testing.T) {
	a, b := V2(3, -4), V2(0.5, 2)
	attr := stubAttr{data: [][4]float64{{1, 2, 3, 4}}}

	checkMutators(t,
		func() *Vector2 { return V2(1, 2) },
		func(v *Vector2, f func()) { v.OnChange = func(*Vector2) { f() } },
		map[string]func(*Vector2){
			"Set":             func(v *Vector2) { v.Set(5, 6) },
			"SetScalar":       func(v *Vector2) { v.SetScalar(2) },
			"SetX":            func(v *Vector2) { v.SetX(2) },
			"SetY":            func(v *Vector2) { v.SetY(2) },
			"SetWidth":        func(v *Vector2) { v.SetWidth(2) },
			"SetHeight":       func(v *Vector2) { v.SetHeight(2) },
			"SetComponent":    func(v *Vector2) { _, _ = v.SetComponent(1, 9) },
			"Copy":            func(v *Vector2) { v.Copy(a) },
			"Add":             func(v *Vector2) { v.Add(a) },
			"AddScalar":       func(v *Vector2) { v.AddScalar(1) },
			"AddVectors":      func(v *Vector2) { v.AddVectors(a, b) },
			"AddScaledVector": func(v *Vector2) { v.AddScaledVector(a, 2) },
			"Sub":             func(v *Vector2) { v.Sub(a) },
			"SubScalar":       func(v *Vector2) { v.SubScalar(1) },
			"SubVectors":      func(v *Vector2) { v.SubVectors(a, b) },
			"Multiply":        func(v *Vector2) { v.Multiply(a) },
			"MultiplyScalar":  func(v *Vector2) { v.MultiplyScalar(2) },
			"Divide":          func(v *Vector2) { v.Divide(b) },
			"DivideScalar":    func(v *Vector2) { v.DivideScalar(2) },
			"ApplyMatrix3":    func(v *Vector2) { v.ApplyMatrix3(Rotate2D(1)) },
			"Min":             func(v *Vector2) { v.Min(a) },
			"Max":             func(v *Vector2) { v.Max(a) },
			"Clamp":           func(v *Vector2) { v.Clamp(V2(0, 0), V2(1, 1)) },
			"ClampScalar":     func(v *Vector2) { v.ClampScalar(0, 1) },
			"ClampLength":     func(v *Vector2) { v.ClampLength(5, 6) },
			"Floor":           func(v *Vector2) { v.Floor() },
			"Ceil":            func(v *Vector2) { v.Ceil() },
			"Round":           func(v *Vector2) { v.Round() },
			"RoundToZero":     func(v *Vector2) { v.RoundToZero() },
			"Negate":          func(v *Vector2) { v.Negate() },
			"Normalize":       func(v *Vector2) { v.Normalize() },
			"SetLength":       func(v *Vector2) { v.SetLength(3) },
			"Lerp":            func(v *Vector2) { v.Lerp(a, 0.5) },
			"LerpVectors":     func(v *Vector2) { v.LerpVectors(a, b, 0.5) },
			"FromArray":       func(v *Vector2) { v.FromArray([]float64{1, 2, 3}, 1) },
			"FromAttribute":   func(v *Vector2) { v.FromBufferAttribute(attr, 0) },
			"RotateAround":    func(v *Vector2) { v.RotateAround(b, 1) },
			"Random":          func(v *Vector2) { v.Random() },
			"RandomWith":      func(v *Vector2) { v.RandomWith(mathutil.NewRand(1)) },
		})
}

func TestVector3MutatorsNotifyOnce(t *testing.T) {
	a, b := V3(3, -4, 12), V3(0.5, 2, -1)
	attr := stubAttr{data: [][4]float64{{1, 2, 3, 4}}}
	cam := newTestCamera()

	checkMutators(t,
		func() *Vector3 { return V3(1, 2, 3) },
		func(v *Vector3, f func()) { v.OnChange = func(*Vector3) { f() } },
		map[string]func(*Vector3){
			"Set":                  func(v *Vector3) { v.Set(5, 6) },
			"SetScalar":            func(v *Vector3) { v.SetScalar(2) },
			"SetX":                 func(v *Vector3) { v.SetX(2) },
			"SetY":                 func(v *Vector3) { v.SetY(2) },
			"SetZ":                 func(v *Vector3) { v.SetZ(2) },
			"SetComponent":         func(v *Vector3) { _, _ = v.SetComponent(2, 9) },
			"Copy":                 func(v *Vector3) { v.Copy(a) },
			"Add":                  func(v *Vector3) { v.Add(a) },
			"AddScalar":            func(v *Vector3) { v.AddScalar(1) },
			"AddVectors":           func(v *Vector3) { v.AddVectors(a, b) },
			"AddScaledVector":      func(v *Vector3) { v.AddScaledVector(a, 2) },
			"Sub":                  func(v *Vector3) { v.Sub(a) },
			"SubScalar":            func(v *Vector3) { v.SubScalar(1) },
			"SubVectors":           func(v *Vector3) { v.SubVectors(a, b) },
			"Multiply":             func(v *Vector3) { v.Multiply(a) },
			"MultiplyScalar":       func(v *Vector3) { v.MultiplyScalar(2) },
			"MultiplyVectors":      func(v *Vector3) { v.MultiplyVectors(a, b) },
			"Divide":               func(v *Vector3) { v.Divide(b) },
			"DivideScalar":         func(v *Vector3) { v.DivideScalar(2) },
			"ApplyEuler":           func(v *Vector3) { v.ApplyEuler(Euler{X: 0.1, Y: 0.2, Z: 0.3}) },
			"ApplyAxisAngle":       func(v *Vector3) { v.ApplyAxisAngle(Up(), 1) },
			"ApplyMatrix3":         func(v *Vector3) { v.ApplyMatrix3(Mat3FromMat4(RotateX(1))) },
			"ApplyNormalMatrix":    func(v *Vector3) { v.ApplyNormalMatrix(NormalMatrix(Scale(1, 2, 3))) },
			"ApplyMatrix4":         func(v *Vector3) { v.ApplyMatrix4(Translate(1, 2, 3)) },
			"ApplyQuaternion":      func(v *Vector3) { v.ApplyQuaternion(QuatFromAxisAngle(Up(), 1)) },
			"Project":              func(v *Vector3) { v.Project(cam) },
			"Unproject":            func(v *Vector3) { v.Unproject(cam) },
			"TransformDirection":   func(v *Vector3) { v.TransformDirection(RotateY(1)) },
			"Min":                  func(v *Vector3) { v.Min(a) },
			"Max":                  func(v *Vector3) { v.Max(a) },
			"Clamp":                func(v *Vector3) { v.Clamp(Zero3(), V3(1, 1, 1)) },
			"ClampScalar":          func(v *Vector3) { v.ClampScalar(0, 1) },
			"ClampLength":          func(v *Vector3) { v.ClampLength(5, 6) },
			"Floor":                func(v *Vector3) { v.Floor() },
			"Ceil":                 func(v *Vector3) { v.Ceil() },
			"Round":                func(v *Vector3) { v.Round() },
			"RoundToZero":          func(v *Vector3) { v.RoundToZero() },
			"Negate":               func(v *Vector3) { v.Negate() },
			"Normalize":            func(v *Vector3) { v.Normalize() },
			"SetLength":            func(v *Vector3) { v.SetLength(3) },
			"Lerp":                 func(v *Vector3) { v.Lerp(a, 0.5) },
			"LerpVectors":          func(v *Vector3) { v.LerpVectors(a, b, 0.5) },
			"Cross":                func(v *Vector3) { v.Cross(a) },
			"CrossVectors":         func(v *Vector3) { v.CrossVectors(a, b) },
			"ProjectOnVector":      func(v *Vector3) { v.ProjectOnVector(a) },
			"ProjectOnPlane":       func(v *Vector3) { v.ProjectOnPlane(Up()) },
			"Reflect":              func(v *Vector3) { v.Reflect(Up()) },
			"SetFromSpherical":     func(v *Vector3) { v.SetFromSpherical(Spherical{Radius: 1, Phi: 1, Theta: 1}) },
			"SetFromCylindrical":   func(v *Vector3) { v.SetFromCylindrical(Cylindrical{Radius: 1, Theta: 1, Y: 2}) },
			"SetFromMatrixPos":     func(v *Vector3) { v.SetFromMatrixPosition(Translate(1, 2, 3)) },
			"SetFromMatrixScale":   func(v *Vector3) { v.SetFromMatrixScale(Scale(1, 2, 3)) },
			"SetFromMatrixColumn":  func(v *Vector3) { v.SetFromMatrixColumn(Identity(), 1) },
			"SetFromMatrix3Column": func(v *Vector3) { v.SetFromMatrix3Column(Identity3(), 2) },
			"SetFromEuler":         func(v *Vector3) { v.SetFromEuler(Euler{X: 1}) },
			"SetFromColor":         func(v *Vector3) { v.SetFromColor(ColorFromHex(0xff8000)) },
			"FromArray":            func(v *Vector3) { v.FromArray([]float64{1, 2, 3}, 0) },
			"FromAttribute":        func(v *Vector3) { v.FromBufferAttribute(attr, 0) },
			"Random":               func(v *Vector3) { v.Random() },
			"RandomWith":           func(v *Vector3) { v.RandomWith(mathutil.NewRand(1)) },
			"RandomDirection":      func(v *Vector3) { v.RandomDirection() },
			"RandomDirectionWith":  func(v *Vector3) { v.RandomDirectionWith(mathutil.NewRand(1)) },
		})
}

func TestVector4MutatorsNotifyOnce(t *testing.T) {
	a, b := V4(3, -4, 12, 1), V4(0.5, 2, -1, 2)
	attr := stubAttr{data: [][4]float64{{1, 2, 3, 4}}}

	checkMutators(t,
		func() *Vector4 { return V4(1, 2, 3, 4) },
		func(v *Vector4, f func()) { v.OnChange = func(*Vector4) { f() } },
		map[string]func(*Vector4){
			"Set":             func(v *Vector4) { v.Set(5, 6, 7, 8) },
			"SetScalar":       func(v *Vector4) { v.SetScalar(2) },
			"SetX":            func(v *Vector4) { v.SetX(2) },
			"SetY":            func(v *Vector4) { v.SetY(2) },
			"SetZ":            func(v *Vector4) { v.SetZ(2) },
			"SetW":            func(v *Vector4) { v.SetW(2) },
			"SetComponent":    func(v *Vector4) { _, _ = v.SetComponent(3, 9) },
			"CopyVector2":     func(v *Vector4) { v.Copy(V2(1, 1)) },
			"CopyVector3":     func(v *Vector4) { v.Copy(V3(1, 1, 1)) },
			"CopyVector4":     func(v *Vector4) { v.Copy(a) },
			"Add":             func(v *Vector4) { v.Add(a) },
			"AddScalar":       func(v *Vector4) { v.AddScalar(1) },
			"AddVectors":      func(v *Vector4) { v.AddVectors(a, b) },
			"AddScaledVector": func(v *Vector4) { v.AddScaledVector(a, 2) },
			"Sub":             func(v *Vector4) { v.Sub(a) },
			"SubScalar":       func(v *Vector4) { v.SubScalar(1) },
			"SubVectors":      func(v *Vector4) { v.SubVectors(a, b) },
			"Multiply":        func(v *Vector4) { v.Multiply(a) },
			"MultiplyScalar":  func(v *Vector4) { v.MultiplyScalar(2) },
			"Divide":          func(v *Vector4) { v.Divide(b) },
			"DivideScalar":    func(v *Vector4) { v.DivideScalar(2) },
			"ApplyMatrix4":    func(v *Vector4) { v.ApplyMatrix4(Translate(1, 2, 3)) },
			"AxisAngleQuat":   func(v *Vector4) { v.SetAxisAngleFromQuaternion(QuatFromAxisAngle(Up(), 1)) },
			"AxisAngleMatrix": func(v *Vector4) { v.SetAxisAngleFromRotationMatrix(RotateZ(1)) },
			"SetFromMatrix":   func(v *Vector4) { v.SetFromMatrixPosition(Translate(1, 2, 3)) },
			"Min":             func(v *Vector4) { v.Min(a) },
			"Max":             func(v *Vector4) { v.Max(a) },
			"Clamp":           func(v *Vector4) { v.Clamp(V4(0, 0, 0, 0), V4(1, 1, 1, 1)) },
			"ClampScalar":     func(v *Vector4) { v.ClampScalar(0, 1) },
			"ClampLength":     func(v *Vector4) { v.ClampLength(5, 6) },
			"Floor":           func(v *Vector4) { v.Floor() },
			"Ceil":            func(v *Vector4) { v.Ceil() },
			"Round":           func(v *Vector4) { v.Round() },
			"RoundToZero":     func(v *Vector4) { v.RoundToZero() },
			"Negate":          func(v *Vector4) { v.Negate() },
			"Normalize":       func(v *Vector4) { v.Normalize() },
			"SetLength":       func(v *Vector4) { v.SetLength(3) },
			"Lerp":            func(v *Vector4) { v.Lerp(a, 0.5) },
			"LerpVectors":     func(v *Vector4) { v.LerpVectors(a, b, 0.5) },
			"FromArray":       func(v *Vector4) { v.FromArray([]float64{1, 2, 3, 4}, 0) },
			"FromAttribute":   func(v *Vector4) { v.FromBufferAttribute(attr, 0) },
			"Random":          func(v *Vector4) { v.Random() },
			"RandomWith":      func(v *Vector4) { v.RandomWith(mathutil.NewRand(1)) },
		})
}

// checkQueries runs queries on an observed vector and requires that none
// of them marks it dirty or notifies.
func checkQueries[T Vector](t *testing.T, v T, observe func(T, func()), queries func(T)) {
	t.Helper()
	calls := 0
	observe(v, func() { calls++ })
	queries(v)
	assert.False(t, v.Dirty())
	assert.Zero(t, calls)
}

func TestQueriesLeaveVectorClean(t *testing.T) {
	t.Run("Vector2", func(t *testing.T) {
		o := V2(-1, 4)
		checkQueries(t, V2(1, 2),
			func(v *Vector2, f func()) { v.OnChange = func(*Vector2) { f() } },
			func(v *Vector2) {
				_ = v.Length()
				_ = v.LengthSq()
				_ = v.ManhattanLength()
				_ = v.Dot(o)
				_ = v.Cross(o)
				_ = v.Angle()
				_ = v.AngleTo(o)
				_ = v.DistanceTo(o)
				_ = v.DistanceToSquared(o)
				_ = v.ManhattanDistanceTo(o)
				_ = v.Equals(o)
				_ = v.Width() + v.Height()
				_ = v.ToArray(nil, 0)
				_ = v.Components()
				_ = v.String()
				_, _ = v.Component(1)
				_ = v.Clone()
				for range v.All() {
				}
			})
	})

	t.Run("Vector3", func(t *testing.T) {
		o := V3(-1, 0, 4)
		checkQueries(t, V3(1, 2, 3),
			func(v *Vector3, f func()) { v.OnChange = func(*Vector3) { f() } },
			func(v *Vector3) {
				_ = v.Length()
				_ = v.LengthSq()
				_ = v.ManhattanLength()
				_ = v.Dot(o)
				_ = v.AngleTo(o)
				_ = v.DistanceTo(o)
				_ = v.DistanceToSquared(o)
				_ = v.ManhattanDistanceTo(o)
				_ = v.Equals(o)
				_ = v.ToArray(nil, 0)
				_ = v.Components()
				_ = v.String()
				_, _ = v.Component(1)
				_ = SphericalFromVector(v)
				_ = CylindricalFromVector(v)
				_ = v.Clone()
				for range v.All() {
				}
			})
	})

	t.Run("Vector4", func(t *testing.T) {
		o := V4(-1, 0, 4, 2)
		checkQueries(t, V4(1, 2, 3, 2),
			func(v *Vector4, f func()) { v.OnChange = func(*Vector4) { f() } },
			func(v *Vector4) {
				_ = v.Length()
				_ = v.LengthSq()
				_ = v.ManhattanLength()
				_ = v.Dot(o)
				_ = v.Equals(o)
				_ = v.ToArray(nil, 0)
				_ = v.Components()
				_ = v.String()
				_, _ = v.Component(3)
				_ = v.XYZ()
				_ = v.PerspectiveDivide()
				_ = v.Clone()
				for range v.All() {
				}
			})
	})
}

func TestDirtyIsSticky(t *testing.T) {
	v := V2(1, 1)
	v.Add(V2(1, 1))
	v.Sub(V2(1, 1))
	assert.True(t, v.Dirty(), "stays dirty even when the value returns to the original")

	v.ClearDirty()
	assert.False(t, v.Dirty())

	v.Set(1, 1)
	assert.True(t, v.Dirty(), "setting the same value still marks dirty")
}

func TestObserverSeesNewValue(t *testing.T) {
	v := V3(1, 2, 3)
	var seen []float64
	v.OnChange = func(got *Vector3) {
		assert.Same(t, v, got)
		seen = got.Components()
	}
	v.MultiplyScalar(2)
	assert.Equal(t, []float64{2, 4, 6}, seen)
}

func TestCloneIsFreshAndClean(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
	}{
		{"Vector2", V2(1, 2).Negate()},
		{"Vector3", V3(1, 2, 3).Negate()},
		{"Vector4", V4(1, 2, 3, 4).Negate()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, tc.v.Dirty())

			c := tc.v.CloneVector()
			assert.IsType(t, tc.v, c)
			assert.Equal(t, tc.name, c.Origin())
			assert.Equal(t, tc.v.Dim(), c.Dim())
			assert.False(t, c.Dirty())
			assert.NotEqual(t, tc.v.ID(), c.ID())
			assert.Equal(t, slices.Collect(tc.v.All()), slices.Collect(c.All()))
		})
	}
}

func TestCloneDropsObserver(t *testing.T) {
	calls := 0
	v := V3(1, 2, 3)
	v.OnChange = func(*Vector3) { calls++ }

	c := v.Clone()
	assert.Nil(t, c.OnChange)
	c.AddScalar(1)
	assert.Zero(t, calls)
	assert.Equal(t, 1.0, v.X())
}

func TestComponentIndexOutOfRange(t *testing.T) {
	tests := []struct {
		v     Vector
		index int
	}{
		{V2(1, 2), 2},
		{V2(1, 2), -1},
		{V3(1, 2, 3), 3},
		{V4(1, 2, 3, 4), 4},
	}

	for _, tc := range tests {
		_, err := tc.v.Component(tc.index)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Contains(t, err.Error(), tc.v.Origin())
	}

	v := V3(1, 2, 3)
	_, err := v.SetComponent(7, 1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.False(t, v.Dirty(), "failed SetComponent does not mutate")
}

func TestArrayRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
	}{
		{"Vector2", V2(1.5, -2)},
		{"Vector3", V3(1.5, -2, 3)},
		{"Vector4", V4(1.5, -2, 3, 0.25)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := slices.Collect(tc.v.All())
			const offset = 2

			var arr []float64
			var got []float64
			switch v := tc.v.(type) {
			case *Vector2:
				arr = v.ToArray(nil, offset)
				got = NewVector2().FromArray(arr, offset).Components()
			case *Vector3:
				arr = v.ToArray(nil, offset)
				got = NewVector3().FromArray(arr, offset).Components()
			case *Vector4:
				arr = v.ToArray(nil, offset)
				got = NewVector4().FromArray(arr, offset).Components()
			}

			assert.Len(t, arr, offset+tc.v.Dim())
			assert.Equal(t, []float64{0, 0}, arr[:offset])
			assert.Equal(t, want, got)
		})
	}
}

func TestToArrayKeepsLongerSlice(t *testing.T) {
	dst := []float64{9, 9, 9, 9, 9}
	out := V2(1, 2).ToArray(dst, 1)
	assert.Equal(t, []float64{9, 1, 2, 9, 9}, out)
}

func TestFromArrayShortSlicePanics(t *testing.T) {
	assert.Panics(t, func() { NewVector3().FromArray([]float64{1, 2}, 0) })
}

func TestAllStopsEarly(t *testing.T) {
	var got []float64
	for c := range V4(1, 2, 3, 4).All() {
		if c > 2 {
			break
		}
		got = append(got, c)
	}
	assert.Equal(t, []float64{1, 2}, got)
}

func TestNormalizeZeroStaysZero(t *testing.T) {
	assert.Equal(t, []float64{0, 0}, NewVector2().Normalize().Components())
	assert.Equal(t, []float64{0, 0, 0}, NewVector3().Normalize().Components())
	assert.Equal(t, []float64{0, 0, 0, 0}, V4(0, 0, 0, 0).Normalize().Components())
}

func TestClampLength(t *testing.T) {
	tests := []struct {
		name     string
		in       *Vector3
		expected []float64
	}{
		{"too long", V3(10, 0, 0), []float64{5, 0, 0}},
		{"too short", V3(0, 1, 0), []float64{0, 2, 0}},
		{"within", V3(0, 0, 3), []float64{0, 0, 3}},
		{"zero", V3(0, 0, 0), []float64{0, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.in.ClampLength(2, 5).Components())
		})
	}
}

func TestRandomWithSeededSource(t *testing.T) {
	v := NewVector3().RandomWith(mathutil.NewRand(mathutil.DefaultSeed))
	assert.Equal(t, []float64{0.6074679309967905, 0.19144689152017236, 0.43751312675885856}, v.Components())

	d := NewVector3().RandomDirectionWith(mathutil.NewRand(42))
	assert.InDelta(t, 1, d.Length(), 1e-12)

	for range 100 {
		r := NewVector4().Random()
		for c := range r.All() {
			assert.GreaterOrEqual(t, c, 0.0)
			assert.Less(t, c, 1.0)
		}
	}
}

func TestIDsAreUnique(t *testing.T) {
	seen := make(map[uint64]bool)
	for range 50 {
		id := NewVector2().ID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func assertVec(t *testing.T, expected []float64, got Vector, delta float64) {
	t.Helper()
	comps := slices.Collect(got.All())
	require.Len(t, comps, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i], comps[i], delta, "component %d of %v", i, comps)
	}
}
