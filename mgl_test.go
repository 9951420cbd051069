package bounding

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestMglConversionsRoundTrip(t *testing.T) {
	t.Parallel()

	v2 := mgl64.Vec2{1.5, -2.5}
	assert.Equal(t, v2, Mgl64Vec2(V2FromMgl64(v2)))

	v3 := mgl64.Vec3{1, 2, 3}
	assert.Equal(t, v3, Mgl64Vec3(V3FromMgl64(v3)))

	f2 := mgl32.Vec2{0.5, 4}
	assert.Equal(t, f2, Mgl32Vec2(V2FromMgl32(f2)))

	f3 := mgl32.Vec3{-1, 0, 1}
	assert.Equal(t, f3, Mgl32Vec3(V3FromMgl32(f3)))
}

func TestRegionFromMglCorners(t *testing.T) {
	t.Parallel()

	r := RectFromMgl64(mgl64.Vec2{-1, -1}, mgl64.Vec2{1, 1})
	assert.True(t, r.Contains(Vec2[float64]{0, 0}))
	assert.False(t, r.Contains(Vec2[float64]{2, 0}))

	b := BoxFromMgl64(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	assert.Equal(t, Vec3[float64]{1, 1, 1}, b.Diagonal())
}

func TestExpandWithMglPoints(t *testing.T) {
	t.Parallel()

	r := FromValue[Vec2[float64]](math.NaN())
	for _, p := range []mgl64.Vec2{{1, 4}, {-2, 0.5}, {3, -1}} {
		r.Expand(V2FromMgl64(p))
	}

	assert.Equal(t, Vec2[float64]{-2, -1}, r.Lower)
	assert.Equal(t, Vec2[float64]{3, 4}, r.Upper)
}
