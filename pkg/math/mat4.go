package math

// Mat4 is a 4x4 matrix in column-major order (glTF/OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Compose builds a local transform from translation, rotation and scale,
// applied in the glTF node order: T * R * S.
func Compose(t Vec3, r Quat, s Vec3) Mat4 {
	m := r.Mat4()

	// Scale the rotation columns, then set the translation column.
	m[0] *= s.X
	m[1] *= s.X
	m[2] *= s.X
	m[4] *= s.Y
	m[5] *= s.Y
	m[6] *= s.Y
	m[8] *= s.Z
	m[9] *= s.Z
	m[10] *= s.Z
	m[12] = t.X
	m[13] = t.Y
	m[14] = t.Z
	return m
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// TransformPoint transforms a 3D point by this matrix, applying the full
// homogeneous divide. A w of zero is treated as 1 so a degenerate matrix
// yields finite coordinates instead of NaN/Inf.
func (m Mat4) TransformPoint(p [3]float32) [3]float32 {
	w := m[3]*p[0] + m[7]*p[1] + m[11]*p[2] + m[15]
	if w == 0 {
		w = 1
	}
	return [3]float32{
		(m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12]) / w,
		(m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13]) / w,
		(m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14]) / w,
	}
}

// IsIdentity reports whether the matrix is exactly the identity.
func (m Mat4) IsIdentity() bool {
	return m == Identity()
}
