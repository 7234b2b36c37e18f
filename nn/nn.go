// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/value"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// Neuron is a single unit computing tanh(w · x + b).
type Neuron = nn.Neuron

// Layer is a fully connected layer of neurons.
type Layer = nn.Layer

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewNeuron creates a neuron with nin inputs. nonlinear selects the tanh
// activation; pass false for linear output units.
func NewNeuron(nin int, nonlinear bool) *Neuron {
	return nn.NewNeuron(nin, nonlinear)
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(nin, nout int, nonlinear bool) *Layer {
	return nn.NewLayer(nin, nout, nonlinear)
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
// Hidden layers use tanh; the final layer is linear.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1})
func NewMLP(nin int, nouts []int) *MLP {
	return nn.NewMLP(nin, nouts)
}

// MSELoss computes the mean squared error between predictions and targets.
func MSELoss(predictions []*value.Value, targets []float64) *value.Value {
	return nn.MSELoss(predictions, targets)
}
