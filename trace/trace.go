// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package trace renders scalar computation graphs for inspection.
//
// It reads only the diagnostic surface of a node (op tag, label, value,
// gradient) and never affects computation.
//
// Example:
//
//	loss := a.Mul(b).Add(c).Tanh()
//	loss.Backward()
//
//	f, _ := os.Create("graph.dot")
//	defer f.Close()
//	trace.WriteDOT(f, loss)
package trace

import (
	"io"

	"github.com/ember-ml/ember/internal/trace"
	"github.com/ember-ml/ember/internal/value"
)

// WriteDOT writes the subgraph reachable from root as a Graphviz digraph.
func WriteDOT(w io.Writer, root *value.Value) error {
	return trace.WriteDOT(w, root)
}

// WriteSummary writes a plain-text listing of the reachable subgraph in
// topological order, one node per line.
func WriteSummary(w io.Writer, root *value.Value) error {
	return trace.WriteSummary(w, root)
}

// Counts reports how many nodes of each operation tag are reachable from
// root, plus the sorted tag list for stable iteration.
func Counts(root *value.Value) ([]string, map[string]int) {
	return trace.Counts(root)
}
