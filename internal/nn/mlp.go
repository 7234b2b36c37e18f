package nn

import "github.com/ember-ml/ember/internal/value"

// MLP is a multi-layer perceptron: a stack of fully connected layers with
// tanh activations on every layer except the last, which stays linear so
// the network can produce unbounded outputs.
//
// Example:
//
//	// 3 inputs, two hidden layers of 4, one output
//	model := nn.NewMLP(3, []int{4, 4, 1})
//	out := model.Forward(inputs)
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
func NewMLP(nin int, nouts []int) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		last := i == len(nouts)-1
		layers[i] = NewLayer(sizes[i], sizes[i+1], !last)
	}
	return &MLP{layers: layers}
}

// Forward runs the inputs through every layer in order.
func (m *MLP) Forward(inputs []*value.Value) []*value.Value {
	outputs := inputs
	for _, l := range m.layers {
		outputs = l.Forward(outputs)
	}
	return outputs
}

// Parameters returns the parameters of all layers.
func (m *MLP) Parameters() []*value.Value {
	var params []*value.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of all parameters.
func (m *MLP) ZeroGrad() {
	zeroGrad(m.Parameters())
}
