package nn

import "github.com/ember-ml/ember/internal/value"

// Layer is a fully connected layer: nout neurons reading the same nin
// inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons with nin inputs each.
// nonlinear applies to every neuron in the layer.
func NewLayer(nin, nout int, nonlinear bool) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, nonlinear)
	}
	return &Layer{neurons: neurons}
}

// Forward computes the activation of every neuron for the given inputs.
func (l *Layer) Forward(inputs []*value.Value) []*value.Value {
	outputs := make([]*value.Value, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Forward(inputs)
	}
	return outputs
}

// Parameters returns the parameters of all neurons in the layer.
func (l *Layer) Parameters() []*value.Value {
	var params []*value.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of all parameters.
func (l *Layer) ZeroGrad() {
	zeroGrad(l.Parameters())
}
