package value

// rule is the local gradient rule attached to a non-leaf node.
//
// apply reads out.grad (already final when the backward engine reaches
// this node) and accumulates the chain-rule contribution into each of the
// node's operands. Implementations live one per operation next to their
// builder, mirroring how each operation owns its backward formula.
type rule interface {
	apply(out *Value)
}

// Backward computes d(v)/d(n) for every node n reachable from v and
// accumulates it into n's gradient.
//
// Algorithm:
//  1. Build a topological order of the reachable subgraph by post-order
//     DFS: a node is appended only after all of its parents. The visited
//     set is keyed by pointer identity, so a node reachable along several
//     paths (diamond dependency) is ordered exactly once, and two distinct
//     nodes holding equal values are never conflated.
//  2. Seed v.grad = 1 (d(v)/d(v)).
//  3. Walk the order in reverse, invoking each node's rule. Reverse
//     post-order guarantees a node's rule runs only after every consumer
//     has finished contributing to its gradient, which is what makes a
//     single pass correct for graphs with shared substructure.
//
// Gradients accumulate: a second Backward over an overlapping graph adds
// on top of existing values. Callers wanting a fresh computation reset
// with ZeroGradGraph first.
//
// Calling Backward on a leaf is legal and only seeds its own gradient.
func (v *Value) Backward() {
	var topo []*Value
	visited := make(map[*Value]bool)

	var build func(*Value)
	build = func(n *Value) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, p := range n.prev {
			build(p)
		}
		topo = append(topo, n)
	}
	build(v)

	v.grad = 1

	for i := len(topo) - 1; i >= 0; i-- {
		if r := topo[i].rule; r != nil {
			r.apply(topo[i])
		}
	}
}
