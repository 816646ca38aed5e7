// Package rmath provides the small set of float32 helpers the coarse and
// fine rasterizers need to match GPU floating-point semantics: min/max that
// propagate the non-NaN operand (as WGSL's min/max do), and a signum that
// treats signed zero the way the shaders do.
package rmath

import "math"

// Vec2 is a two-component float32 vector, matching the layout of a WGSL
// vec2<f32> for the fields read out of Segment.Origin/Delta.
type Vec2 struct {
	X, Y float32
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 { return float32(math.Sqrt(float64(v.Dot(v)))) }

// Floor32 matches WGSL floor().
func Floor32(x float32) float32 { return float32(math.Floor(float64(x))) }

// Ceil32 matches WGSL ceil().
func Ceil32(x float32) float32 { return float32(math.Ceil(float64(x))) }

// Abs32 matches WGSL abs().
func Abs32(x float32) float32 { return float32(math.Abs(float64(x))) }

// Min32 matches WGSL min(): if either operand is NaN, the other is returned.
func Min32(a, b float32) float32 {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	if a < b {
		return a
	}
	return b
}

// Max32 matches WGSL max(): if either operand is NaN, the other is returned.
func Max32(a, b float32) float32 {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	if a > b {
		return a
	}
	return b
}

// Clamp32 clamps x to [lo, hi].
func Clamp32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Signum32 matches WGSL sign(): positive -> 1, negative -> -1, any zero
// (either sign) -> 0. WGSL's sign(0.0) and sign(-0.0) both evaluate to
// 0.0, unlike Rust's f32::signum(), which gives signed zero its operand's
// sign bit; callers porting the sign(delta.x) term from the fine
// rasterizer's shader (spec ch.4.2) need the WGSL behavior, not Rust's.
func Signum32(x float32) float32 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// MinU32 returns the smaller of a and b.
func MinU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

// MaxU32 returns the larger of a and b.
func MaxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// ClampI returns x clamped to [lo, hi] (inclusive), all in int.
func ClampI(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
