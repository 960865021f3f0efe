package laser

import "math"

// epsilon is the absolute tolerance used throughout the planner for
// collapsing near-zero values and near-collinear/near-reversed corners.
const epsilon = 1e-9

// epsilonRel is the relative tolerance factor used by ApproxGE when
// comparing two speeds that may both be large.
const epsilonRel = 1e-9

// infiniteSpeed is the sentinel used for "effectively unbounded" speed or
// acceleration: a collinear corner, or a direction with a zero component
// against an axis limit, both saturate this value instead of actual
// infinity so downstream arithmetic (squaring, comparing) stays finite.
const infiniteSpeed = 1e9

// IsZero reports whether x is within epsilon of zero.
func IsZero(x float64) bool {
	return math.Abs(x) < epsilon
}

// ApproxGE reports whether a >= b, tolerating both absolute and relative
// floating point error: a >= b - epsilonRel*max(1, |a|, |b|).
func ApproxGE(a, b float64) bool {
	tol := epsilonRel * math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return a >= b-tol
}
