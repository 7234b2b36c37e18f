package value

import "math"

// tanhRule is the local gradient rule for z = tanh(x).
//
// d(tanh(x))/dx = 1 - tanh²(x). The output's forward value is tanh(x)
// already, so the rule is expressed in terms of it:
// x.grad += (1 - out.data²) * out.grad.
type tanhRule struct{}

func (tanhRule) apply(out *Value) {
	out.prev[0].grad += (1 - out.data*out.data) * out.grad
}

// Tanh returns a new node computing the hyperbolic tangent of v.
//
// Tanh is the squashing nonlinearity used by the nn package; its output
// lies in (-1, 1).
func (v *Value) Tanh() *Value {
	out := newFromOp(math.Tanh(v.data), []*Value{v}, "tanh")
	out.rule = tanhRule{}
	return out
}
