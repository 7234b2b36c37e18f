package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/value"
)

func inputs(vals ...float64) []*value.Value {
	out := make([]*value.Value, len(vals))
	for i, v := range vals {
		out[i] = value.New(v)
	}
	return out
}

// TestNeuron_ParameterCount checks weights + bias.
func TestNeuron_ParameterCount(t *testing.T) {
	n := nn.NewNeuron(3, true)
	assert.Len(t, n.Parameters(), 4)
}

// TestNeuron_ForwardBounded checks the tanh neuron output stays in [-1, 1]
// even for inputs far outside the linear regime.
func TestNeuron_ForwardBounded(t *testing.T) {
	n := nn.NewNeuron(2, true)
	out := n.Forward(inputs(100.0, -50.0))

	assert.LessOrEqual(t, out.Data(), 1.0)
	assert.GreaterOrEqual(t, out.Data(), -1.0)
}

// TestNeuron_LinearOutput checks the affine computation with activation
// disabled by driving gradients through known inputs.
func TestNeuron_LinearOutput(t *testing.T) {
	n := nn.NewNeuron(2, false)
	x := inputs(1.0, 2.0)

	out := n.Forward(x)
	out.Backward()

	// d(out)/d(x_i) = w_i for a linear unit.
	params := n.Parameters()
	assert.InDelta(t, params[0].Data(), x[0].Grad(), 1e-12)
	assert.InDelta(t, params[1].Data(), x[1].Grad(), 1e-12)
	// d(out)/d(bias) = 1.
	assert.InDelta(t, 1.0, params[2].Grad(), 1e-12)
}

// TestLayer_Shapes checks output and parameter counts.
func TestLayer_Shapes(t *testing.T) {
	l := nn.NewLayer(3, 5, true)

	out := l.Forward(inputs(0.1, 0.2, 0.3))
	assert.Len(t, out, 5)
	assert.Len(t, l.Parameters(), 5*(3+1))
}

// TestMLP_Shapes checks the layer stack wiring.
func TestMLP_Shapes(t *testing.T) {
	m := nn.NewMLP(3, []int{4, 4, 1})

	out := m.Forward(inputs(1.0, -1.0, 0.5))
	require.Len(t, out, 1)

	// (3+1)*4 + (4+1)*4 + (4+1)*1 parameters.
	assert.Len(t, m.Parameters(), 16+20+5)
}

// TestMLP_GradientsFlow runs a backward pass through the full stack and
// checks every parameter received some gradient signal.
func TestMLP_GradientsFlow(t *testing.T) {
	m := nn.NewMLP(2, []int{3, 1})

	out := m.Forward(inputs(0.5, -0.25))
	loss := nn.MSELoss(out, []float64{1.0})
	loss.Backward()

	nonZero := 0
	for _, p := range m.Parameters() {
		if p.Grad() != 0 {
			nonZero++
		}
	}
	// Bias-path gradients are always nonzero unless the loss is exactly 0;
	// require a majority of parameters to have signal.
	assert.Greater(t, nonZero, len(m.Parameters())/2)

	m.ZeroGrad()
	for _, p := range m.Parameters() {
		assert.Zero(t, p.Grad())
	}
}

// TestMSELoss_Value checks the loss formula on fixed predictions.
func TestMSELoss_Value(t *testing.T) {
	preds := inputs(1.0, 2.0, 3.0)
	loss := nn.MSELoss(preds, []float64{0.0, 2.0, 5.0})

	// ((1-0)² + (2-2)² + (3-5)²) / 3 = 5/3
	assert.InDelta(t, 5.0/3.0, loss.Data(), 1e-12)

	loss.Backward()
	// d(loss)/d(pred_0) = 2*(1-0)/3
	assert.InDelta(t, 2.0/3.0, preds[0].Grad(), 1e-12)
	assert.InDelta(t, 0.0, preds[1].Grad(), 1e-12)
	assert.InDelta(t, -4.0/3.0, preds[2].Grad(), 1e-12)
}

// TestMLP_TrainsOnToyProblem fits a tiny regression set with plain
// gradient descent and expects the loss to drop well below its start.
func TestMLP_TrainsOnToyProblem(t *testing.T) {
	rand.Seed(7)

	xs := [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	ys := []float64{1.0, -1.0, -1.0, 1.0}

	m := nn.NewMLP(3, []int{4, 4, 1})

	var firstLoss, lastLoss float64
	for step := 0; step < 200; step++ {
		preds := make([]*value.Value, len(xs))
		for i, x := range xs {
			preds[i] = m.Forward(inputs(x...))[0]
		}
		loss := nn.MSELoss(preds, ys)

		m.ZeroGrad()
		loss.Backward()
		for _, p := range m.Parameters() {
			p.SetData(p.Data() - 0.05*p.Grad())
		}

		if step == 0 {
			firstLoss = loss.Data()
		}
		lastLoss = loss.Data()
	}

	require.False(t, math.IsNaN(lastLoss))
	assert.Less(t, lastLoss, firstLoss)
	assert.Less(t, lastLoss, 0.5)
}
