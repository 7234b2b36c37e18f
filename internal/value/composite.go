package value

// Negation, subtraction and division are expressed in terms of Add, Mul
// and Pow rather than given their own gradient rules. This keeps the set
// of hand-derived derivative formulas minimal, at the cost of extra
// intermediate nodes per operation. The graph is scalar and small, so the
// extra nodes are cheap, and the composite gradients are correct by
// construction of the primitives.

// Neg returns a new node computing -v, built as v * (-1).
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Sub returns a new node computing v - other, built as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// SubScalar returns a new node computing v - c, promoting c to a
// freshly allocated constant leaf.
func (v *Value) SubScalar(c float64) *Value {
	return v.Sub(Constant(c))
}

// Div returns a new node computing v / other, built as v * other^(-1).
//
// Division by a zero-valued node follows math.Pow semantics: the
// reciprocal is +Inf or -Inf and propagates through the graph.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}

// DivScalar returns a new node computing v / c, promoting c to a
// freshly allocated constant leaf.
func (v *Value) DivScalar(c float64) *Value {
	return v.Div(Constant(c))
}
