package bounding

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Conversions to and from the mathgl vector types. The representations are
// identical fixed-size arrays, so these are plain type conversions.

// V2FromMgl64 converts an mgl64 plane vector.
func V2FromMgl64(v mgl64.Vec2) Vec2[float64] { return Vec2[float64](v) }

// V3FromMgl64 converts an mgl64 space vector.
func V3FromMgl64(v mgl64.Vec3) Vec3[float64] { return Vec3[float64](v) }

// V2FromMgl32 converts an mgl32 plane vector.
func V2FromMgl32(v mgl32.Vec2) Vec2[float32] { return Vec2[float32](v) }

// V3FromMgl32 converts an mgl32 space vector.
func V3FromMgl32(v mgl32.Vec3) Vec3[float32] { return Vec3[float32](v) }

// Mgl64Vec2 converts back to an mgl64 plane vector.
func Mgl64Vec2(v Vec2[float64]) mgl64.Vec2 { return mgl64.Vec2(v) }

// Mgl64Vec3 converts back to an mgl64 space vector.
func Mgl64Vec3(v Vec3[float64]) mgl64.Vec3 { return mgl64.Vec3(v) }

// Mgl32Vec2 converts back to an mgl32 plane vector.
func Mgl32Vec2(v Vec2[float32]) mgl32.Vec2 { return mgl32.Vec2(v) }

// Mgl32Vec3 converts back to an mgl32 space vector.
func Mgl32Vec3(v Vec3[float32]) mgl32.Vec3 { return mgl32.Vec3(v) }

// RectFromMgl64 builds a region from mgl64 corner vectors, stored verbatim.
func RectFromMgl64(lower, upper mgl64.Vec2) Rect[float64] {
	return New(V2FromMgl64(lower), V2FromMgl64(upper))
}

// BoxFromMgl64 builds a region from mgl64 corner vectors, stored verbatim.
func BoxFromMgl64(lower, upper mgl64.Vec3) Box[float64] {
	return New(V3FromMgl64(lower), V3FromMgl64(upper))
}
