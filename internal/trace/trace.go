// Package trace renders scalar computation graphs for inspection.
//
// It consumes only the diagnostic surface of a Value (op tag, label,
// forward value, gradient) and never affects computation. Two renderers
// are provided: Graphviz DOT for visualization and a plain-text listing
// in topological order for terminal output.
package trace

import (
	"fmt"
	"io"
	"sort"

	"github.com/ember-ml/ember/internal/value"
)

// collect gathers every node reachable from root in topological order
// (parents before children), keyed by pointer identity like the backward
// engine's own traversal.
func collect(root *value.Value) []*value.Value {
	var topo []*value.Value
	visited := make(map[*value.Value]bool)

	var walk func(*value.Value)
	walk = func(n *value.Value) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, p := range n.Parents() {
			walk(p)
		}
		topo = append(topo, n)
	}
	walk(root)
	return topo
}

// nodeName returns a stable identifier for a node within one rendering.
func nodeName(ids map[*value.Value]int, n *value.Value) string {
	return fmt.Sprintf("n%d", ids[n])
}

// WriteDOT writes the subgraph reachable from root as a Graphviz digraph.
//
// Each node is a record showing its label (if set), forward value and
// gradient; operation nodes are drawn as separate ellipses the way
// expression-graph visualizations usually do, so shared operands are
// visibly shared.
func WriteDOT(w io.Writer, root *value.Value) error {
	topo := collect(root)

	ids := make(map[*value.Value]int, len(topo))
	for i, n := range topo {
		ids[n] = i
	}

	if _, err := fmt.Fprintln(w, "digraph {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  rankdir=LR;"); err != nil {
		return err
	}

	for _, n := range topo {
		label := n.Label()
		if label != "" {
			label += " | "
		}
		if _, err := fmt.Fprintf(w, "  %s [shape=record, label=\"{ %sdata %.4f | grad %.4f }\"];\n",
			nodeName(ids, n), label, n.Data(), n.Grad()); err != nil {
			return err
		}

		if n.Op() == "" {
			continue
		}
		// Operation node between the operands and their result.
		opName := nodeName(ids, n) + "_op"
		if _, err := fmt.Fprintf(w, "  %s [label=%q];\n", opName, n.Op()); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  %s -> %s;\n", opName, nodeName(ids, n)); err != nil {
			return err
		}
		for _, p := range n.Parents() {
			if _, err := fmt.Fprintf(w, "  %s -> %s;\n", nodeName(ids, p), opName); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// WriteSummary writes a plain-text listing of the reachable subgraph in
// topological order, one node per line.
func WriteSummary(w io.Writer, root *value.Value) error {
	topo := collect(root)

	for _, n := range topo {
		name := n.Label()
		if name == "" {
			name = "(unnamed)"
		}
		op := n.Op()
		if op == "" {
			op = "leaf"
		}
		if _, err := fmt.Fprintf(w, "%-12s %-6s data=%-12.6g grad=%-12.6g\n",
			name, op, n.Data(), n.Grad()); err != nil {
			return err
		}
	}
	return nil
}

// Counts reports how many nodes of each operation tag are reachable from
// root; leaves are counted under "leaf". Keys are returned sorted so the
// output is stable.
func Counts(root *value.Value) ([]string, map[string]int) {
	counts := make(map[string]int)
	for _, n := range collect(root) {
		op := n.Op()
		if op == "" {
			op = "leaf"
		}
		counts[op]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, counts
}
