// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks for the Ember
// framework.
//
// # Overview
//
// This package contains:
//   - Neuron: single tanh unit over scalar Values
//   - Layer: fully connected layer
//   - MLP: multi-layer perceptron
//   - MSELoss: mean squared error loss
//   - Module interface for custom components
//
// # Basic Usage
//
//	import (
//	    "github.com/ember-ml/ember/nn"
//	    "github.com/ember-ml/ember/optim"
//	    "github.com/ember-ml/ember/value"
//	)
//
//	func main() {
//	    model := nn.NewMLP(3, []int{4, 4, 1})
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	    for epoch := 0; epoch < 100; epoch++ {
//	        preds := forwardAll(model, samples)
//	        loss := nn.MSELoss(preds, targets)
//
//	        optimizer.ZeroGrad()
//	        loss.Backward()
//	        optimizer.Step()
//	    }
//	}
//
// Every weight and bias is an individual value.Value, so the whole
// training step forms one scalar expression graph ending in the loss.
package nn
