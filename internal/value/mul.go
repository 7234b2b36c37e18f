package value

// mulRule is the local gradient rule for z = x * y.
//
// Backward pass:
//   - d(x*y)/dx = y, so x.grad += y.data * out.grad
//   - d(x*y)/dy = x, so y.grad += x.data * out.grad
//
// The rule reads the operands' forward values at replay time; operands are
// never mutated by the engine, so these are the values from construction.
type mulRule struct{}

func (mulRule) apply(out *Value) {
	x, y := out.prev[0], out.prev[1]
	x.grad += y.data * out.grad
	y.grad += x.data * out.grad
}

// Mul returns a new node computing v * other.
//
// Parents are [v, other]. Squaring via v.Mul(v) is legal; the shared
// operand accumulates both contributions, giving the expected 2x factor.
func (v *Value) Mul(other *Value) *Value {
	out := newFromOp(v.data*other.data, []*Value{v, other}, "*")
	out.rule = mulRule{}
	return out
}

// MulScalar returns a new node computing v * c, promoting c to a
// freshly allocated constant leaf.
func (v *Value) MulScalar(c float64) *Value {
	return v.Mul(Constant(c))
}
