package bounding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestR2BoxRoundTrip(t *testing.T) {
	want := New(Vec2[float64]{-1, -2}, Vec2[float64]{3, 4})
	got := RectFromR2(R2Box(want))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("r2 round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestR3BoxRoundTrip(t *testing.T) {
	want := New(Vec3[float64]{-1, -2, -3}, Vec3[float64]{1, 2, 3})
	got := BoxFromR3(R3Box(want))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("r3 round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestR2BoxCorners(t *testing.T) {
	b := R2Box(New(Vec2[float64]{-1, 0}, Vec2[float64]{2, 5}))
	want := r2.Box{Min: r2.Vec{X: -1, Y: 0}, Max: r2.Vec{X: 2, Y: 5}}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("r2.Box mismatch (-want +got):\n%s", diff)
	}
}

func TestVecConversions(t *testing.T) {
	if got, want := V2FromR2(r2.Vec{X: 1, Y: 2}), (Vec2[float64]{1, 2}); got != want {
		t.Errorf("V2FromR2 = %v, want %v", got, want)
	}
	if got, want := V3FromR3(r3.Vec{X: 1, Y: 2, Z: 3}), (Vec3[float64]{1, 2, 3}); got != want {
		t.Errorf("V3FromR3 = %v, want %v", got, want)
	}
	if got, want := (Vec2[float32]{1, 2}).R2(), (r2.Vec{X: 1, Y: 2}); got != want {
		t.Errorf("Vec2.R2 = %v, want %v", got, want)
	}
	if got, want := (Vec3[float64]{1, 2, 3}).R3(), (r3.Vec{X: 1, Y: 2, Z: 3}); got != want {
		t.Errorf("Vec3.R3 = %v, want %v", got, want)
	}
}
