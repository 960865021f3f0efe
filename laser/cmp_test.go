package laser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approxEq is shared by this package's tests for comparing floats and
// Vec2/SpeedPoint/Profile values within the planner's own epsilon,
// following the cmp.Diff-based helper in dominikh-go-curve/util_test.go.
var approxEq = cmpopts.EquateApprox(0, 1e-6)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	opts = append(opts, approxEq)
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}
