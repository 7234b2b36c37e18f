// Package nn implements neural network building blocks on top of the
// scalar autodiff engine.
//
// This package provides:
//   - Module interface: common surface for all NN components
//   - Neuron: single unit with weights, bias and optional tanh activation
//   - Layer: a slice of neurons sharing an input
//   - MLP: multi-layer perceptron stacking layers
//   - MSELoss: mean squared error over prediction slices
//
// Design inspired by PyTorch's nn.Module, reduced to scalar Values: every
// weight and bias is an individual graph node, so an entire training step
// is one expression graph ending in the loss.
package nn

import "github.com/ember-ml/ember/internal/value"

// Module is the base interface for all neural network components.
type Module interface {
	// Parameters returns all trainable parameters of this module,
	// including those of nested modules. Optimizers consume this
	// slice directly.
	//
	// Returns an empty slice for modules without trainable parameters.
	Parameters() []*value.Value

	// ZeroGrad resets the gradient accumulator of every parameter.
	//
	// Call before each backward pass to prevent gradients accumulating
	// across training iterations.
	ZeroGrad()
}

// zeroGrad resets the gradients of a parameter slice; shared by all
// Module implementations.
func zeroGrad(params []*value.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
