// Package optim implements optimization algorithms for training models
// built on the scalar autodiff engine.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Design inspired by PyTorch's torch.optim. Gradients live on the
// parameters themselves (populated by Backward on the loss node), so Step
// takes no arguments.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := range epochs {
//	    loss := computeLoss(model, data)
//
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import "github.com/ember-ml/ember/internal/value"

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one gradient update to all parameters in place,
	// reading each parameter's accumulated gradient.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Call before each backward pass; the engine accumulates gradients
	// across Backward calls and never resets them on its own.
	ZeroGrad()

	// GetLR returns the current learning rate, for monitoring and
	// scheduling.
	GetLR() float64
}

// zeroGrad clears the gradients of a parameter slice.
func zeroGrad(params []*value.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
