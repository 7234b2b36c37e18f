// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package value provides the scalar automatic differentiation engine.
//
// This package implements reverse-mode automatic differentiation
// (backpropagation) over a dynamically built graph of scalar values.
// Every arithmetic operation extends the graph; Backward on the final
// node computes d(output)/d(node) for everything that fed into it.
//
// Example:
//
//	import "github.com/ember-ml/ember/value"
//
//	func main() {
//	    a := value.New(2.0).SetLabel("a")
//	    b := value.New(-3.0).SetLabel("b")
//	    c := value.New(10.0).SetLabel("c")
//
//	    loss := a.Mul(b).Add(c).Tanh()
//	    loss.Backward()
//
//	    fmt.Println(a.Grad(), b.Grad(), c.Grad())
//	}
package value

import "github.com/ember-ml/ember/internal/value"

// Value is a node in the scalar computation graph.
type Value = value.Value

// New creates a leaf node holding data.
//
// Example:
//
//	x := value.New(3.0)
//	y := x.Mul(x) // y.Data() == 9
func New(data float64) *Value {
	return value.New(data)
}

// Constant promotes a raw scalar into a constant leaf node.
func Constant(data float64) *Value {
	return value.Constant(data)
}
