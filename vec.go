package bounding

import "golang.org/x/exp/constraints"

// Float matches the scalar field types a region can be measured over.
type Float interface {
	constraints.Float
}

// Vector is the componentwise contract Bounds requires of a point type:
// NaN-recovering minimum and maximum, subtraction, and an all-components
// ordered comparison. Vec1, Vec2 and Vec3 satisfy it; so does any
// caller-defined fixed-dimension type with the same method set.
type Vector[V any] interface {
	Min(V) V
	Max(V) V
	Sub(V) V
	LessEq(V) bool
}

// Uniform is a Vector that can also be filled from a single scalar. It is
// what the scalar-seeded constructors (FromValue, FromValues) require.
type Uniform[V, T any] interface {
	Vector[V]
	Repeat(T) V
}

// nanMin returns the smaller of a and b, discarding NaN: a NaN operand is
// "not yet a real bound" and loses to any concrete value. Both NaN yields
// NaN.
func nanMin[T Float](a, b T) T {
	switch {
	case a != a:
		return b
	case b != b:
		return a
	case a < b:
		return a
	}
	return b
}

// nanMax is the symmetric maximum with the same NaN tie-break.
func nanMax[T Float](a, b T) T {
	switch {
	case a != a:
		return b
	case b != b:
		return a
	case a > b:
		return a
	}
	return b
}

// Vec1 is a one-component vector over T.
type Vec1[T Float] [1]T

// X returns the first component.
func (v Vec1[T]) X() T { return v[0] }

// Repeat returns the vector with its component set to s. The receiver is
// ignored; the method exists so scalar-seeded constructors can name the
// dimension through the type.
func (Vec1[T]) Repeat(s T) Vec1[T] { return Vec1[T]{s} }

// Min returns the componentwise NaN-recovering minimum of v and o.
func (v Vec1[T]) Min(o Vec1[T]) Vec1[T] {
	for i := range v {
		v[i] = nanMin(v[i], o[i])
	}
	return v
}

// Max returns the componentwise NaN-recovering maximum of v and o.
func (v Vec1[T]) Max(o Vec1[T]) Vec1[T] {
	for i := range v {
		v[i] = nanMax(v[i], o[i])
	}
	return v
}

// Sub returns v - o componentwise.
func (v Vec1[T]) Sub(o Vec1[T]) Vec1[T] {
	for i := range v {
		v[i] -= o[i]
	}
	return v
}

// LessEq reports whether every component of v is <= the corresponding
// component of o. Any NaN on either side fails that component's comparison.
func (v Vec1[T]) LessEq(o Vec1[T]) bool {
	for i := range v {
		if !(v[i] <= o[i]) {
			return false
		}
	}
	return true
}

// Vec2 is a two-component vector over T. The representation matches
// mgl64.Vec2 ([2]float64) so conversions are free.
type Vec2[T Float] [2]T

// X returns the first component.
func (v Vec2[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec2[T]) Y() T { return v[1] }

// Repeat returns the vector with every component set to s.
func (Vec2[T]) Repeat(s T) Vec2[T] { return Vec2[T]{s, s} }

// Min returns the componentwise NaN-recovering minimum of v and o.
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] {
	for i := range v {
		v[i] = nanMin(v[i], o[i])
	}
	return v
}

// Max returns the componentwise NaN-recovering maximum of v and o.
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] {
	for i := range v {
		v[i] = nanMax(v[i], o[i])
	}
	return v
}

// Sub returns v - o componentwise.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	for i := range v {
		v[i] -= o[i]
	}
	return v
}

// LessEq reports whether every component of v is <= the corresponding
// component of o. Any NaN on either side fails that component's comparison.
func (v Vec2[T]) LessEq(o Vec2[T]) bool {
	for i := range v {
		if !(v[i] <= o[i]) {
			return false
		}
	}
	return true
}

// Vec3 is a three-component vector over T. The representation matches
// mgl64.Vec3 ([3]float64) so conversions are free.
type Vec3[T Float] [3]T

// X returns the first component.
func (v Vec3[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec3[T]) Z() T { return v[2] }

// Repeat returns the vector with every component set to s.
func (Vec3[T]) Repeat(s T) Vec3[T] { return Vec3[T]{s, s, s} }

// Min returns the componentwise NaN-recovering minimum of v and o.
func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] {
	for i := range v {
		v[i] = nanMin(v[i], o[i])
	}
	return v
}

// Max returns the componentwise NaN-recovering maximum of v and o.
func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	for i := range v {
		v[i] = nanMax(v[i], o[i])
	}
	return v
}

// Sub returns v - o componentwise.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	for i := range v {
		v[i] -= o[i]
	}
	return v
}

// LessEq reports whether every component of v is <= the corresponding
// component of o. Any NaN on either side fails that component's comparison.
func (v Vec3[T]) LessEq(o Vec3[T]) bool {
	for i := range v {
		if !(v[i] <= o[i]) {
			return false
		}
	}
	return true
}
