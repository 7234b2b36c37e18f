// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training models
// built on Ember's scalar autodiff engine.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Training Loop Pattern
//
//	model := nn.NewMLP(3, []int{4, 4, 1})
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := 0; epoch < numEpochs; epoch++ {
//	    // 1. Zero gradients (the engine accumulates otherwise)
//	    optimizer.ZeroGrad()
//
//	    // 2. Forward pass builds the expression graph
//	    loss := nn.MSELoss(forwardAll(model, xs), ys)
//
//	    // 3. Backward pass populates parameter gradients
//	    loss.Backward()
//
//	    // 4. Update parameters in place
//	    optimizer.Step()
//	}
package optim
