package value

import (
	"fmt"
	"math"
)

// powRule is the local gradient rule for z = x^k with a constant real
// exponent k (the exponent is not a graph node).
//
// Backward pass:
//   - d(x^k)/dx = k * x^(k-1), so x.grad += k * x^(k-1) * out.grad
type powRule struct {
	exponent float64
}

func (r powRule) apply(out *Value) {
	x := out.prev[0]
	x.grad += r.exponent * math.Pow(x.data, r.exponent-1) * out.grad
}

// Pow returns a new node computing v raised to the constant exponent k.
//
// The single parent is [v]. Degenerate bases (negative base with a
// fractional exponent, zero base with a negative exponent) follow
// math.Pow semantics and propagate NaN or Inf through the graph.
func (v *Value) Pow(k float64) *Value {
	out := newFromOp(math.Pow(v.data, k), []*Value{v}, fmt.Sprintf("**%g", k))
	out.rule = powRule{exponent: k}
	return out
}
