package value

import "math"

// expRule is the local gradient rule for z = exp(x).
//
// Since d(exp(x))/dx = exp(x) and exp(x) is exactly the output's forward
// value, the rule reuses out.data instead of recomputing the exponential:
// x.grad += out.data * out.grad.
type expRule struct{}

func (expRule) apply(out *Value) {
	out.prev[0].grad += out.data * out.grad
}

// Exp returns a new node computing e raised to v.
func (v *Value) Exp() *Value {
	out := newFromOp(math.Exp(v.data), []*Value{v}, "exp")
	out.rule = expRule{}
	return out
}
