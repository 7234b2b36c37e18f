// Package value implements the scalar computation graph at the heart of
// the Ember framework.
//
// A Value is a float64 with memory: every arithmetic operation on Values
// allocates a new node that remembers its operands and the local derivative
// rule of the operation that produced it. Calling Backward on the final
// node of an expression replays those rules in reverse topological order,
// accumulating d(output)/d(node) into every node of the graph.
//
// The graph is a DAG by construction: a node can only reference nodes that
// already existed when it was created.
package value

// Value is a node in the scalar computation graph.
//
// Fields are unexported; callers read results through Data and Grad.
// The gradient accumulator is written only by the backward engine, apart
// from ZeroGrad and ZeroGradGraph which reset it.
type Value struct {
	data  float64
	grad  float64
	rule  rule     // local gradient rule; nil for leaf nodes
	prev  []*Value // ordered parents (operands), 0-2 for the built-in ops
	op    string   // provenance tag ("+", "*", "tanh", ...), diagnostics only
	label string   // user-assigned name, diagnostics only
}

// New creates a leaf node holding data.
//
// Leaves have no parents and a no-op gradient rule; they represent
// constants and independent inputs.
func New(data float64) *Value {
	return &Value{data: data}
}

// Constant is an alias for New, used when promoting a raw scalar into
// the graph (e.g. by the *Scalar convenience methods).
func Constant(data float64) *Value {
	return New(data)
}

// newFromOp allocates the output node of an operation. Every builder goes
// through here: parents are the operands in their documented order, and
// the rule is installed afterwards because it closes over the output.
func newFromOp(data float64, prev []*Value, op string) *Value {
	return &Value{data: data, prev: prev, op: op}
}

// Data returns the forward value at this node.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the gradient accumulated at this node, d(output)/d(v)
// with respect to whichever node Backward was called on.
func (v *Value) Grad() float64 {
	return v.grad
}

// Op returns the provenance tag of the operation that produced this node.
// Empty for leaves.
func (v *Value) Op() string {
	return v.op
}

// Parents returns the operand nodes this node was derived from, in the
// order documented by the operation that created it. The returned slice
// must not be modified.
func (v *Value) Parents() []*Value {
	return v.prev
}

// Label returns the user-assigned name of this node, if any.
func (v *Value) Label() string {
	return v.label
}

// SetLabel assigns a diagnostic name to this node and returns the node,
// so it can be chained onto a builder call.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// SetData overwrites the forward value of this node.
//
// It exists for optimizers, which update leaf parameters in place between
// training iterations. Calling it on an interior node desynchronizes the
// node from its parents; the graph is not re-evaluated.
func (v *Value) SetData(data float64) {
	v.data = data
}

// ZeroGrad resets this node's gradient accumulator to zero.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// ZeroGradGraph resets the gradient accumulator of every node reachable
// from v, including v itself.
//
// Backward accumulates across calls (see Backward); callers that want a
// fresh gradient computation over a previously-used graph call this first.
func (v *Value) ZeroGradGraph() {
	visited := make(map[*Value]bool)
	var walk func(*Value)
	walk = func(n *Value) {
		if visited[n] {
			return
		}
		visited[n] = true
		n.grad = 0
		for _, p := range n.prev {
			walk(p)
		}
	}
	walk(v)
}
