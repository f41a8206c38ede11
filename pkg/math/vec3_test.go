package math

import "testing"

func TestVec3SubCross(t *testing.T) {
	a := Vec3{X: 1, Y: 0, Z: 0}
	b := Vec3{X: 0, Y: 1, Z: 0}

	got := a.Cross(b)
	want := Vec3{X: 0, Y: 0, Z: 1}
	if got != want {
		t.Errorf("x cross y = %v, want %v", got, want)
	}

	d := Vec3{X: 3, Y: 5, Z: 7}.Sub(Vec3{X: 1, Y: 2, Z: 3})
	if (d != Vec3{X: 2, Y: 3, Z: 4}) {
		t.Errorf("Sub = %v, want {2 3 4}", d)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{X: 0, Y: 3, Z: 4}.Normalize()
	if !approxEqual(v.Length(), 1) {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}
	if !approxEqual(v.Y, 0.6) || !approxEqual(v.Z, 0.8) {
		t.Errorf("normalized = %v, want {0 0.6 0.8}", v)
	}

	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector normalized to %v, want zero", got)
	}
}

func TestTriangleNormalDirection(t *testing.T) {
	// Counter-clockwise seen from above: the cross of the edges points up.
	a := Vec3{X: 0, Y: 0, Z: 0}
	b := Vec3{X: 0, Y: 0, Z: 1}
	c := Vec3{X: 1, Y: 0, Z: 0}

	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	if !approxEqual(n.Y, 1) {
		t.Errorf("upward face normal = %v, want +Y unit", n)
	}
}
