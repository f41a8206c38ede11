package math

import (
	gomath "math"
	"testing"
)

const epsilon = 1e-5

func approxEqual(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < epsilon
}

func approxEqualPoint(a, b [3]float32) bool {
	return approxEqual(a[0], b[0]) && approxEqual(a[1], b[1]) && approxEqual(a[2], b[2])
}

func TestIdentityTransformPoint(t *testing.T) {
	p := [3]float32{1, 2, 3}
	got := Identity().TransformPoint(p)
	if got != p {
		t.Errorf("identity transform changed point: got %v, want %v", got, p)
	}
}

func TestTranslateTransformPoint(t *testing.T) {
	m := Translate(10, -5, 2)
	got := m.TransformPoint([3]float32{1, 1, 1})
	want := [3]float32{11, -4, 3}
	if !approxEqualPoint(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScaleTransformPoint(t *testing.T) {
	m := Scale(2, 3, 4)
	got := m.TransformPoint([3]float32{1, 1, 1})
	want := [3]float32{2, 3, 4}
	if !approxEqualPoint(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMulComposition(t *testing.T) {
	// Translation applied after scale: T * S maps (1,1,1) to (2,3,4)+(1,1,1).
	m := Translate(1, 1, 1).Mul(Scale(2, 3, 4))
	got := m.TransformPoint([3]float32{1, 1, 1})
	want := [3]float32{3, 4, 5}
	if !approxEqualPoint(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(4, 5, 6).Mul(Scale(2, 2, 2))
	if got := m.Mul(Identity()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
}

func TestTransformPointProjectiveDivide(t *testing.T) {
	// A matrix with a projective row divides by w.
	m := Identity()
	m[3] = 1 // w = x + 1
	got := m.TransformPoint([3]float32{1, 0, 0})
	want := [3]float32{0.5, 0, 0}
	if !approxEqualPoint(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTransformPointZeroW(t *testing.T) {
	// A degenerate matrix with w == 0 must behave as if w were 1,
	// producing finite coordinates.
	var m Mat4
	m[12], m[13], m[14] = 5, 6, 7
	got := m.TransformPoint([3]float32{1, 2, 3})
	want := [3]float32{5, 6, 7}
	if !approxEqualPoint(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, v := range got {
		if gomath.IsNaN(float64(v)) || gomath.IsInf(float64(v), 0) {
			t.Fatalf("degenerate matrix produced non-finite value: %v", got)
		}
	}
}

func TestComposeTRS(t *testing.T) {
	// 90 degrees around Y, scale 2, then translate (1,2,3).
	half := float32(gomath.Pi / 4)
	r := Quat{X: 0, Y: float32(gomath.Sin(float64(half))), Z: 0, W: float32(gomath.Cos(float64(half)))}
	m := Compose(Vec3{X: 1, Y: 2, Z: 3}, r, Vec3{X: 2, Y: 2, Z: 2})

	got := m.TransformPoint([3]float32{1, 0, 0})
	want := [3]float32{1, 2, 1} // (1,0,0) -> scaled (2,0,0) -> rotated (0,0,-2) -> translated
	if !approxEqualPoint(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestComposeIdentity(t *testing.T) {
	m := Compose(Vec3{}, QuatIdentity(), Vec3{X: 1, Y: 1, Z: 1})
	if !m.IsIdentity() {
		t.Errorf("identity TRS composed to %v", m)
	}
}

func TestQuatMat4Identity(t *testing.T) {
	if got := QuatIdentity().Mat4(); !got.IsIdentity() {
		t.Errorf("identity quaternion produced %v", got)
	}
}

func TestQuatNormalizeDegenerate(t *testing.T) {
	if got := (Quat{}).Normalize(); got != QuatIdentity() {
		t.Errorf("zero quaternion normalized to %v, want identity", got)
	}
}
