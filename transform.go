package lottie

import (
	"math"
	"sync"
)

// Matrix is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Matrix [6]float64

// IdentityMatrix is the identity affine matrix.
var IdentityMatrix = Matrix{1, 0, 0, 1, 0, 0}

// TranslateMatrix returns a translation by (x, y).
func TranslateMatrix(x, y float64) Matrix {
	return Matrix{1, 0, 0, 1, x, y}
}

// ScaleMatrix returns a scale by (sx, sy).
func ScaleMatrix(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// RotateMatrix returns a rotation by deg degrees. With Y pointing down a
// positive angle turns clockwise on screen.
func RotateMatrix(deg float64) Matrix {
	sin, cos := math.Sincos(degToRad(deg))
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// ShearMatrix returns a horizontal shear: x' = x + sh*y.
func ShearMatrix(sh float64) Matrix {
	return Matrix{1, 0, sh, 1, 0, 0}
}

// Multiply returns m * c: c is applied first, then m.
func (m Matrix) Multiply(c Matrix) Matrix {
	return Matrix{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Invert returns the inverse of m. ok is false when m collapses the plane
// to a line or a point.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det) < 1e-12 {
		return Matrix{}, false
	}
	inv[0] = m[3] / det
	inv[1] = -m[1] / det
	inv[2] = -m[2] / det
	inv[3] = m[0] / det
	inv[4] = (m[2]*m[5] - m[3]*m[4]) / det
	inv[5] = (m[1]*m[4] - m[0]*m[5]) / det
	return inv, true
}

// Apply maps p through m.
func (m Matrix) Apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == IdentityMatrix
}

// Transform holds the animatable placement of a layer, group or repeater
// copy. Rotation, Skew and SkewAxis are in degrees; Scale is in percent with
// 100 as identity; Opacity runs 0-100.
//
// Position is either the single point property Position or, when Separate
// is set, the two scalar properties X and Y.
type Transform struct {
	Rotation Animatable[float64]
	Scale    Animatable[Vec2]
	Position Animatable[Vec2]
	X, Y     Animatable[float64]
	Separate bool
	Anchor   Animatable[Vec2]
	Opacity  Animatable[float64]
	Skew     Animatable[float64]
	SkewAxis Animatable[float64]

	// static is fixed by Composition.Resolve. A static transform computes
	// its matrix once; the cache is written under once and is never
	// invalidated.
	static bool
	once   sync.Once
	cached Matrix
}

// NewTransform creates an identity transform: scale 100%, opacity 100.
func NewTransform() *Transform {
	return &Transform{
		Scale:   Static(Vec2{100, 100}),
		Opacity: Static(100.0),
	}
}

// IsStatic reports whether the transform was found to have no keyframes.
// It is false until the owning composition is resolved.
func (t *Transform) IsStatic() bool {
	return t.static
}

// hasKeyframes reports whether any property of t is animated.
func (t *Transform) hasKeyframes() bool {
	if !t.Rotation.IsStatic() || !t.Scale.IsStatic() || !t.Anchor.IsStatic() ||
		!t.Opacity.IsStatic() || !t.Skew.IsStatic() || !t.SkewAxis.IsStatic() {
		return true
	}
	if t.Separate {
		return !t.X.IsStatic() || !t.Y.IsStatic()
	}
	return !t.Position.IsStatic()
}

// Matrix returns the local matrix at frame. A static transform computes it
// on the first call and returns that same matrix for every later frame.
func (t *Transform) Matrix(frame float64) Matrix {
	if t.static {
		t.once.Do(func() { t.cached = t.computeMatrix(frame) })
		return t.cached
	}
	return t.computeMatrix(frame)
}

// OpacityAt returns the opacity at frame as a fraction.
func (t *Transform) OpacityAt(frame float64) float64 {
	return t.Opacity.Value(frame) / 100
}

// PositionAt returns the position at frame, honoring Separate.
func (t *Transform) PositionAt(frame float64) Vec2 {
	if t.Separate {
		return Vec2{t.X.Value(frame), t.Y.Value(frame)}
	}
	return t.Position.Value(frame)
}

// computeMatrix builds the local matrix. Points are mapped in this order:
//
//	Translate(-anchor) -> Scale(s/100) -> Rotate(+skewAxis) -> Shear(tan skew)
//	  -> Rotate(-skewAxis) -> Rotate(rotation) -> Translate(position)
func (t *Transform) computeMatrix(frame float64) Matrix {
	anchor := t.Anchor.Value(frame)
	scale := t.Scale.Value(frame)

	m := ScaleMatrix(scale.X/100, scale.Y/100).Multiply(TranslateMatrix(-anchor.X, -anchor.Y))

	if skew := t.Skew.Value(frame); skew != 0 {
		axis := t.SkewAxis.Value(frame)
		m = RotateMatrix(axis).Multiply(m)
		m = ShearMatrix(math.Tan(degToRad(skew))).Multiply(m)
		m = RotateMatrix(-axis).Multiply(m)
	}

	if rot := t.Rotation.Value(frame); rot != 0 {
		m = RotateMatrix(rot).Multiply(m)
	}

	pos := t.PositionAt(frame)
	return TranslateMatrix(pos.X, pos.Y).Multiply(m)
}

// warm populates the static matrix cache.
func (t *Transform) warm() {
	if t.static {
		t.Matrix(0)
	}
}
