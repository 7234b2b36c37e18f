package nn

import "github.com/ember-ml/ember/internal/value"

// Neuron is a single unit computing tanh(w · x + b), or the raw affine
// value when the activation is disabled (used for output layers).
//
// Every weight and the bias is a leaf Value, so gradients land directly
// on them after Backward on the loss.
type Neuron struct {
	weights   []*value.Value
	bias      *value.Value
	nonlinear bool
}

// NewNeuron creates a neuron with nin inputs.
//
// Weights are initialized from U(-1, 1), bias to zero. nonlinear selects
// the tanh activation; pass false for linear output units.
func NewNeuron(nin int, nonlinear bool) *Neuron {
	weights := make([]*value.Value, nin)
	for i := range weights {
		weights[i] = value.New(uniformWeight())
	}
	return &Neuron{
		weights:   weights,
		bias:      value.New(0),
		nonlinear: nonlinear,
	}
}

// Forward computes the neuron's activation for the given inputs.
//
// len(inputs) must equal the neuron's input size.
func (n *Neuron) Forward(inputs []*value.Value) *value.Value {
	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(inputs[i]))
	}
	if n.nonlinear {
		return act.Tanh()
	}
	return act
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*value.Value {
	return append(append([]*value.Value{}, n.weights...), n.bias)
}

// ZeroGrad resets the gradients of all parameters.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n.Parameters())
}
