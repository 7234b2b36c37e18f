package value

// addRule is the local gradient rule for z = x + y.
//
// Backward pass:
//   - d(x+y)/dx = 1, so x.grad += out.grad
//   - d(x+y)/dy = 1, so y.grad += out.grad
type addRule struct{}

func (addRule) apply(out *Value) {
	out.prev[0].grad += out.grad
	out.prev[1].grad += out.grad
}

// Add returns a new node computing v + other.
//
// Parents are [v, other]. The operands are never mutated; using the same
// node for both operands is legal and its gradient receives both
// contributions.
func (v *Value) Add(other *Value) *Value {
	out := newFromOp(v.data+other.data, []*Value{v, other}, "+")
	out.rule = addRule{}
	return out
}

// AddScalar returns a new node computing v + c, promoting c to a
// freshly allocated constant leaf.
func (v *Value) AddScalar(c float64) *Value {
	return v.Add(Constant(c))
}
