package bounding

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Conversions to and from the gonum spatial types, so regions can flow into
// gonum-based geometry code without hand-copying components.

// R2 converts v to a gonum plane vector.
func (v Vec2[T]) R2() r2.Vec {
	return r2.Vec{X: float64(v[0]), Y: float64(v[1])}
}

// R3 converts v to a gonum space vector.
func (v Vec3[T]) R3() r3.Vec {
	return r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// V2FromR2 converts a gonum plane vector.
func V2FromR2(v r2.Vec) Vec2[float64] {
	return Vec2[float64]{v.X, v.Y}
}

// V3FromR3 converts a gonum space vector.
func V3FromR3(v r3.Vec) Vec3[float64] {
	return Vec3[float64]{v.X, v.Y, v.Z}
}

// R2Box converts a region to a gonum r2.Box with the same corners.
func R2Box(r Rect[float64]) r2.Box {
	return r2.Box{Min: r.Lower.R2(), Max: r.Upper.R2()}
}

// R3Box converts a region to a gonum r3.Box with the same corners.
func R3Box(b Box[float64]) r3.Box {
	return r3.Box{Min: b.Lower.R3(), Max: b.Upper.R3()}
}

// RectFromR2 converts a gonum r2.Box, corners verbatim.
func RectFromR2(b r2.Box) Rect[float64] {
	return New(V2FromR2(b.Min), V2FromR2(b.Max))
}

// BoxFromR3 converts a gonum r3.Box, corners verbatim.
func BoxFromR3(b r3.Box) Box[float64] {
	return New(V3FromR3(b.Min), V3FromR3(b.Max))
}
