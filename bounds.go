// Package bounding provides an axis-aligned bounding region over a float
// field: an interval, rectangle or box that can be grown incrementally to
// enclose a stream of points and queried for containment.
//
// The dimension is fixed at the type level: a Bounds is instantiated with a
// concrete vector type (Vec1, Vec2, Vec3, or any type satisfying Vector), so
// mixing dimensions is a compile error rather than a runtime check.
//
// Corners are never validated. A region whose Lower exceeds its Upper on
// some axis is a legal, if non-geometric, value. The supported
// initialisation idiom for folding an unknown point set exploits this:
//
//	r := bounding.FromValue[bounding.Vec2[float64]](math.NaN())
//	for _, p := range points {
//		r.Expand(p)
//	}
//
// The NaN-seeded corners compare false against everything, so the region
// contains nothing, and the NaN-recovering minimum and maximum used by
// Expand discard the sentinel in favour of the first real point. Relying on
// this requires the Vector implementation's Min and Max to treat NaN as
// absent (min(NaN, x) == x); the bundled vector types do.
package bounding

// Bounds is an axis-aligned bounding region with inclusive corners. The
// zero value is the degenerate region at the origin, containing exactly the
// origin.
//
// Bounds is a plain value: copy it freely, but serialise concurrent calls
// to the Expand methods on a shared instance externally.
type Bounds[V Vector[V]] struct {
	Lower V
	Upper V
}

// Convenience aliases for the common dimensions.
type (
	Range[T Float] = Bounds[Vec1[T]]
	Rect[T Float]  = Bounds[Vec2[T]]
	Box[T Float]   = Bounds[Vec3[T]]
)

// New returns the region with the given corners, stored verbatim. Corner
// ordering is not checked: reversed corners produce an inverted region,
// which is a valid sentinel state.
func New[V Vector[V]](lower, upper V) Bounds[V] {
	return Bounds[V]{Lower: lower, Upper: upper}
}

// FromPoint returns the degenerate zero-volume region containing exactly p.
func FromPoint[V Vector[V]](p V) Bounds[V] {
	return Bounds[V]{Lower: p, Upper: p}
}

// FromValue returns the degenerate region whose every corner component is
// v. Seeding with NaN gives the canonical "not yet initialised" region
// described in the package documentation. The vector type must be named
// explicitly: FromValue[Vec3[float64]](math.NaN()).
func FromValue[V Uniform[V, T], T Float](v T) Bounds[V] {
	var p V
	return FromPoint(p.Repeat(v))
}

// FromValues returns the region spanning lower..upper uniformly on every
// axis. No ordering check is applied.
func FromValues[V Uniform[V, T], T Float](lower, upper T) Bounds[V] {
	var p V
	return Bounds[V]{Lower: p.Repeat(lower), Upper: p.Repeat(upper)}
}

// Diagonal returns Upper - Lower componentwise. An inverted region yields
// negative components; no validation is applied.
func (b Bounds[V]) Diagonal() V {
	return b.Upper.Sub(b.Lower)
}

// Contains reports whether p lies within the region, boundaries included.
// A NaN component in either corner or in p fails that axis test, so the
// result is false.
func (b Bounds[V]) Contains(p V) bool {
	return b.Lower.LessEq(p) && p.LessEq(b.Upper)
}

// ExpandLower moves each Lower component down to p's where p is smaller.
// A NaN Lower component is displaced by p's value outright.
func (b *Bounds[V]) ExpandLower(p V) {
	b.Lower = b.Lower.Min(p)
}

// ExpandUpper moves each Upper component up to p's where p is larger.
// A NaN Upper component is displaced by p's value outright.
func (b *Bounds[V]) ExpandUpper(p V) {
	b.Upper = b.Upper.Max(p)
}

// Expand grows the region minimally so that it also encloses p. Expanding
// with a point already inside leaves the region unchanged.
func (b *Bounds[V]) Expand(p V) {
	b.ExpandLower(p)
	b.ExpandUpper(p)
}
